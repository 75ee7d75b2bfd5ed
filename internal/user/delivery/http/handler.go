package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pandamarket/api/internal/metrics"
	"github.com/pandamarket/api/internal/middleware"
	"github.com/pandamarket/api/internal/user/domain"
	"github.com/pandamarket/api/internal/user/usecase/command"
	"github.com/pandamarket/api/internal/user/usecase/query"
	"github.com/pandamarket/api/pkg/apperr"
	"github.com/pandamarket/api/pkg/httpx"
)

// UserHandler handles HTTP requests for accounts and sessions
type UserHandler struct {
	registerHandler *command.RegisterUserHandler
	loginHandler    *command.LoginUserHandler
	updateHandler   *command.UpdateProfileHandler

	getUserHandler *query.GetUserHandler

	repo    domain.UserRepository
	metrics *metrics.Metrics
}

// NewUserHandler creates a new user handler
func NewUserHandler(repo domain.UserRepository, m *metrics.Metrics) *UserHandler {
	return &UserHandler{
		registerHandler: command.NewRegisterUserHandler(repo),
		loginHandler:    command.NewLoginUserHandler(repo),
		updateHandler:   command.NewUpdateProfileHandler(repo),
		getUserHandler:  query.NewGetUserHandler(repo),
		repo:            repo,
		metrics:         m,
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) error {
	var req struct {
		Email    string `json:"email"`
		Nickname string `json:"nickname"`
		Password string `json:"password"`
		Image    string `json:"image"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}

	cmd := command.RegisterUserCommand{
		Email:    req.Email,
		Nickname: req.Nickname,
		Password: req.Password,
		Image:    req.Image,
	}

	user, err := h.registerHandler.Handle(r.Context(), cmd)
	if err != nil {
		return err
	}

	h.updateUsersMetric(r)
	httpx.RespondMessage(w, http.StatusCreated, "회원가입이 완료되었습니다.", user)
	return nil
}

// Login handles POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}

	cmd := command.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	res, err := h.loginHandler.Handle(r.Context(), cmd)
	if err != nil {
		return err
	}

	httpx.RespondData(w, http.StatusOK, res)
	return nil
}

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) error {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return apperr.Unauthorized("로그인이 필요합니다.")
	}

	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{ID: userID})
	if err != nil {
		return err
	}

	httpx.RespondData(w, http.StatusOK, user)
	return nil
}

// UpdateMe handles PATCH /users/me
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) error {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return apperr.Unauthorized("로그인이 필요합니다.")
	}

	var req struct {
		Nickname string `json:"nickname"`
		Image    string `json:"image"`
		Password string `json:"password"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}

	cmd := command.UpdateProfileCommand{
		ID:       userID,
		Nickname: req.Nickname,
		Image:    req.Image,
		Password: req.Password,
	}

	user, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		return err
	}

	httpx.RespondMessage(w, http.StatusOK, "회원 정보가 수정되었습니다.", user)
	return nil
}

func (h *UserHandler) updateUsersMetric(r *http.Request) {
	if count, err := h.repo.Count(r.Context()); err == nil {
		h.metrics.UsersTotal.Set(float64(count))
	}
}

// RegisterRoutes registers account and session routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/register", httpx.Handle(h.Register)).Methods("POST")
	router.HandleFunc("/auth/login", httpx.Handle(h.Login)).Methods("POST")

	router.HandleFunc("/users/me", middleware.RequireAuth(httpx.Handle(h.GetMe))).Methods("GET")
	router.HandleFunc("/users/me", middleware.RequireAuth(httpx.Handle(h.UpdateMe))).Methods("PATCH")
}
