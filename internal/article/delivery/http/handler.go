package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pandamarket/api/internal/article/domain"
	"github.com/pandamarket/api/internal/article/usecase/command"
	"github.com/pandamarket/api/internal/article/usecase/query"
	"github.com/pandamarket/api/internal/metrics"
	"github.com/pandamarket/api/internal/middleware"
	"github.com/pandamarket/api/pkg/apperr"
	"github.com/pandamarket/api/pkg/httpx"
)

// ArticleHandler handles HTTP requests for board articles
type ArticleHandler struct {
	createHandler *command.CreateArticleHandler
	updateHandler *command.UpdateArticleHandler
	deleteHandler *command.DeleteArticleHandler
	likeHandler   *command.LikeArticleHandler
	unlikeHandler *command.UnlikeArticleHandler

	getArticleHandler *query.GetArticleHandler
	listHandler       *query.ListArticlesHandler

	repo    domain.ArticleRepository
	metrics *metrics.Metrics
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(repo domain.ArticleRepository, m *metrics.Metrics) *ArticleHandler {
	return &ArticleHandler{
		createHandler:     command.NewCreateArticleHandler(repo),
		updateHandler:     command.NewUpdateArticleHandler(repo),
		deleteHandler:     command.NewDeleteArticleHandler(repo),
		likeHandler:       command.NewLikeArticleHandler(repo),
		unlikeHandler:     command.NewUnlikeArticleHandler(repo),
		getArticleHandler: query.NewGetArticleHandler(repo),
		listHandler:       query.NewListArticlesHandler(repo),
		repo:              repo,
		metrics:           m,
	}
}

func articleID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, apperr.BadRequest("유효하지 않은 게시글 ID입니다.")
	}
	return uint(id), nil
}

// CreateArticle handles POST /articles
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) error {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return apperr.Unauthorized("로그인이 필요합니다.")
	}
	nickname, _ := middleware.Nickname(r.Context())

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Image   string `json:"image"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}

	article, err := h.createHandler.Handle(r.Context(), command.CreateArticleCommand{
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
		UserID:  userID,
		Writer:  nickname,
	})
	if err != nil {
		return err
	}

	h.updateArticlesMetric(r)
	httpx.RespondMessage(w, http.StatusCreated, "게시글이 등록되었습니다.", article)
	return nil
}

// ListArticles handles GET /articles
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) error {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	result, err := h.listHandler.Handle(r.Context(), query.ListArticlesQuery{
		Page:     page,
		PageSize: pageSize,
		OrderBy:  r.URL.Query().Get("order_by"),
		Keyword:  r.URL.Query().Get("keyword"),
	})
	if err != nil {
		return err
	}

	httpx.RespondData(w, http.StatusOK, result)
	return nil
}

// GetArticle handles GET /articles/{id}
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) error {
	id, err := articleID(r)
	if err != nil {
		return err
	}
	userID, _ := middleware.UserID(r.Context())

	detail, err := h.getArticleHandler.Handle(r.Context(), query.GetArticleQuery{ID: id, UserID: userID})
	if err != nil {
		return err
	}

	httpx.RespondData(w, http.StatusOK, detail)
	return nil
}

// UpdateArticle handles PATCH /articles/{id}
func (h *ArticleHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) error {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return apperr.Unauthorized("로그인이 필요합니다.")
	}
	id, err := articleID(r)
	if err != nil {
		return err
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Image   string `json:"image"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}

	article, err := h.updateHandler.Handle(r.Context(), command.UpdateArticleCommand{
		ID:      id,
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
	})
	if err != nil {
		return err
	}

	httpx.RespondMessage(w, http.StatusOK, "게시글이 수정되었습니다.", article)
	return nil
}

// DeleteArticle handles DELETE /articles/{id}
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) error {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return apperr.Unauthorized("로그인이 필요합니다.")
	}
	id, err := articleID(r)
	if err != nil {
		return err
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteArticleCommand{ID: id, UserID: userID}); err != nil {
		return err
	}

	h.updateArticlesMetric(r)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// LikeArticle handles POST /articles/{id}/like
func (h *ArticleHandler) LikeArticle(w http.ResponseWriter, r *http.Request) error {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return apperr.Unauthorized("로그인이 필요합니다.")
	}
	id, err := articleID(r)
	if err != nil {
		return err
	}

	article, err := h.likeHandler.Handle(r.Context(), command.LikeArticleCommand{UserID: userID, ArticleID: id})
	if err != nil {
		return err
	}

	httpx.RespondMessage(w, http.StatusOK, "게시글에 좋아요를 눌렀습니다.", article)
	return nil
}

// UnlikeArticle handles DELETE /articles/{id}/like
func (h *ArticleHandler) UnlikeArticle(w http.ResponseWriter, r *http.Request) error {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return apperr.Unauthorized("로그인이 필요합니다.")
	}
	id, err := articleID(r)
	if err != nil {
		return err
	}

	article, err := h.unlikeHandler.Handle(r.Context(), command.UnlikeArticleCommand{UserID: userID, ArticleID: id})
	if err != nil {
		return err
	}

	httpx.RespondMessage(w, http.StatusOK, "게시글 좋아요를 취소했습니다.", article)
	return nil
}

func (h *ArticleHandler) updateArticlesMetric(r *http.Request) {
	if count, err := h.repo.Count(r.Context()); err == nil {
		h.metrics.ArticlesTotal.Set(float64(count))
	}
}

// RegisterRoutes registers all article routes
func (h *ArticleHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/articles", middleware.RequireAuth(httpx.Handle(h.CreateArticle))).Methods("POST")
	router.HandleFunc("/articles", httpx.Handle(h.ListArticles)).Methods("GET")
	router.HandleFunc("/articles/{id}", middleware.OptionalAuth(httpx.Handle(h.GetArticle))).Methods("GET")
	router.HandleFunc("/articles/{id}", middleware.RequireAuth(httpx.Handle(h.UpdateArticle))).Methods("PATCH")
	router.HandleFunc("/articles/{id}", middleware.RequireAuth(httpx.Handle(h.DeleteArticle))).Methods("DELETE")

	router.HandleFunc("/articles/{id}/like", middleware.RequireAuth(httpx.Handle(h.LikeArticle))).Methods("POST")
	router.HandleFunc("/articles/{id}/like", middleware.RequireAuth(httpx.Handle(h.UnlikeArticle))).Methods("DELETE")
}
