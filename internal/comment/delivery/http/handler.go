package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	articledomain "github.com/pandamarket/api/internal/article/domain"
	"github.com/pandamarket/api/internal/comment/domain"
	"github.com/pandamarket/api/internal/comment/usecase/command"
	"github.com/pandamarket/api/internal/comment/usecase/query"
	"github.com/pandamarket/api/internal/middleware"
	productdomain "github.com/pandamarket/api/internal/product/domain"
	"github.com/pandamarket/api/pkg/apperr"
	"github.com/pandamarket/api/pkg/httpx"
)

// CommentHandler handles HTTP requests for product and article comments
type CommentHandler struct {
	createHandler *command.CreateCommentHandler
	updateHandler *command.UpdateCommentHandler
	deleteHandler *command.DeleteCommentHandler
	listHandler   *query.ListCommentsHandler
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(
	comments domain.CommentRepository,
	products productdomain.ProductRepository,
	articles articledomain.ArticleRepository,
) *CommentHandler {
	return &CommentHandler{
		createHandler: command.NewCreateCommentHandler(comments, products, articles),
		updateHandler: command.NewUpdateCommentHandler(comments),
		deleteHandler: command.NewDeleteCommentHandler(comments),
		listHandler:   query.NewListCommentsHandler(comments),
	}
}

func cursorParams(r *http.Request) (cursor uint, limit int) {
	c, _ := strconv.ParseUint(r.URL.Query().Get("cursor"), 10, 32)
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return uint(c), limit
}

func parentID(r *http.Request, badIDMessage string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, apperr.BadRequest(badIDMessage)
	}
	return uint(id), nil
}

func (h *CommentHandler) create(w http.ResponseWriter, r *http.Request, productID, articleID *uint) error {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return apperr.Unauthorized("로그인이 필요합니다.")
	}
	nickname, _ := middleware.Nickname(r.Context())

	var req struct {
		Content string `json:"content"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}

	comment, err := h.createHandler.Handle(r.Context(), command.CreateCommentCommand{
		Content:   req.Content,
		UserID:    userID,
		Writer:    nickname,
		ProductID: productID,
		ArticleID: articleID,
	})
	if err != nil {
		return err
	}

	httpx.RespondMessage(w, http.StatusCreated, "댓글이 등록되었습니다.", comment)
	return nil
}

// CreateProductComment handles POST /products/{id}/comments
func (h *CommentHandler) CreateProductComment(w http.ResponseWriter, r *http.Request) error {
	id, err := parentID(r, "유효하지 않은 상품 ID입니다.")
	if err != nil {
		return err
	}
	return h.create(w, r, &id, nil)
}

// CreateArticleComment handles POST /articles/{id}/comments
func (h *CommentHandler) CreateArticleComment(w http.ResponseWriter, r *http.Request) error {
	id, err := parentID(r, "유효하지 않은 게시글 ID입니다.")
	if err != nil {
		return err
	}
	return h.create(w, r, nil, &id)
}

// ListProductComments handles GET /products/{id}/comments
func (h *CommentHandler) ListProductComments(w http.ResponseWriter, r *http.Request) error {
	id, err := parentID(r, "유효하지 않은 상품 ID입니다.")
	if err != nil {
		return err
	}
	cursor, limit := cursorParams(r)

	result, err := h.listHandler.Handle(r.Context(), query.ListCommentsQuery{
		ProductID: &id,
		Cursor:    cursor,
		Limit:     limit,
	})
	if err != nil {
		return err
	}

	httpx.RespondData(w, http.StatusOK, result)
	return nil
}

// ListArticleComments handles GET /articles/{id}/comments
func (h *CommentHandler) ListArticleComments(w http.ResponseWriter, r *http.Request) error {
	id, err := parentID(r, "유효하지 않은 게시글 ID입니다.")
	if err != nil {
		return err
	}
	cursor, limit := cursorParams(r)

	result, err := h.listHandler.Handle(r.Context(), query.ListCommentsQuery{
		ArticleID: &id,
		Cursor:    cursor,
		Limit:     limit,
	})
	if err != nil {
		return err
	}

	httpx.RespondData(w, http.StatusOK, result)
	return nil
}

// UpdateComment handles PATCH /comments/{id}
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) error {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return apperr.Unauthorized("로그인이 필요합니다.")
	}
	// A bad id becomes zero here; the usecase answers it with the fixed
	// 400 message.
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)

	var req struct {
		Content string `json:"content"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}

	comment, err := h.updateHandler.Handle(r.Context(), command.UpdateCommentCommand{
		ID:      uint(id),
		UserID:  userID,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	httpx.RespondMessage(w, http.StatusOK, "댓글이 수정되었습니다.", comment)
	return nil
}

// DeleteComment handles DELETE /comments/{id}
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) error {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return apperr.Unauthorized("로그인이 필요합니다.")
	}
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteCommentCommand{ID: uint(id), UserID: userID}); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// RegisterRoutes registers all comment routes
func (h *CommentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/products/{id}/comments", middleware.RequireAuth(httpx.Handle(h.CreateProductComment))).Methods("POST")
	router.HandleFunc("/products/{id}/comments", httpx.Handle(h.ListProductComments)).Methods("GET")
	router.HandleFunc("/articles/{id}/comments", middleware.RequireAuth(httpx.Handle(h.CreateArticleComment))).Methods("POST")
	router.HandleFunc("/articles/{id}/comments", httpx.Handle(h.ListArticleComments)).Methods("GET")

	router.HandleFunc("/comments/{id}", middleware.RequireAuth(httpx.Handle(h.UpdateComment))).Methods("PATCH")
	router.HandleFunc("/comments/{id}", middleware.RequireAuth(httpx.Handle(h.DeleteComment))).Methods("DELETE")
}
