package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pandamarket/api/internal/metrics"
	"github.com/pandamarket/api/internal/middleware"
	"github.com/pandamarket/api/internal/product/domain"
	"github.com/pandamarket/api/internal/product/usecase/command"
	"github.com/pandamarket/api/internal/product/usecase/query"
	"github.com/pandamarket/api/pkg/apperr"
	"github.com/pandamarket/api/pkg/httpx"
)

// ProductHandler handles HTTP requests for market products
type ProductHandler struct {
	createHandler     *command.CreateProductHandler
	updateHandler     *command.UpdateProductHandler
	deleteHandler     *command.DeleteProductHandler
	favoriteHandler   *command.FavoriteProductHandler
	unfavoriteHandler *command.UnfavoriteProductHandler

	getProductHandler    *query.GetProductHandler
	listHandler          *query.ListProductsHandler
	listMineHandler      *query.ListMyProductsHandler
	listFavoritesHandler *query.ListMyFavoritesHandler

	repo    domain.ProductRepository
	metrics *metrics.Metrics
}

// NewProductHandler creates a new product handler
func NewProductHandler(repo domain.ProductRepository, m *metrics.Metrics) *ProductHandler {
	return &ProductHandler{
		createHandler:        command.NewCreateProductHandler(repo),
		updateHandler:        command.NewUpdateProductHandler(repo),
		deleteHandler:        command.NewDeleteProductHandler(repo),
		favoriteHandler:      command.NewFavoriteProductHandler(repo),
		unfavoriteHandler:    command.NewUnfavoriteProductHandler(repo),
		getProductHandler:    query.NewGetProductHandler(repo),
		listHandler:          query.NewListProductsHandler(repo),
		listMineHandler:      query.NewListMyProductsHandler(repo),
		listFavoritesHandler: query.NewListMyFavoritesHandler(repo),
		repo:                 repo,
		metrics:              m,
	}
}

func productID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, apperr.BadRequest("유효하지 않은 상품 ID입니다.")
	}
	return uint(id), nil
}

func pageParams(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
	return page, pageSize
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) error {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return apperr.Unauthorized("로그인이 필요합니다.")
	}
	nickname, _ := middleware.Nickname(r.Context())

	var req struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       int64    `json:"price"`
		Images      []string `json:"images"`
		Tags        []string `json:"tags"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}

	cmd := command.CreateProductCommand{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Tags:        req.Tags,
		UserID:      userID,
		Writer:      nickname,
	}

	product, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		return err
	}

	h.updateProductsMetric(r)
	httpx.RespondMessage(w, http.StatusCreated, "상품이 등록되었습니다.", product)
	return nil
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) error {
	page, pageSize := pageParams(r)
	q := query.ListProductsQuery{
		Page:     page,
		PageSize: pageSize,
		OrderBy:  r.URL.Query().Get("order_by"),
		Keyword:  r.URL.Query().Get("keyword"),
	}

	result, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		return err
	}

	httpx.RespondData(w, http.StatusOK, result)
	return nil
}

// GetProduct handles GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := productID(r)
	if err != nil {
		return err
	}
	userID, _ := middleware.UserID(r.Context())

	detail, err := h.getProductHandler.Handle(r.Context(), query.GetProductQuery{ID: id, UserID: userID})
	if err != nil {
		return err
	}

	httpx.RespondData(w, http.StatusOK, detail)
	return nil
}

// UpdateProduct handles PATCH /products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) error {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return apperr.Unauthorized("로그인이 필요합니다.")
	}
	id, err := productID(r)
	if err != nil {
		return err
	}

	var req struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       int64    `json:"price"`
		Images      []string `json:"images"`
		Tags        []string `json:"tags"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}

	cmd := command.UpdateProductCommand{
		ID:          id,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Tags:        req.Tags,
	}

	product, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		return err
	}

	httpx.RespondMessage(w, http.StatusOK, "상품이 수정되었습니다.", product)
	return nil
}

// DeleteProduct handles DELETE /products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) error {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return apperr.Unauthorized("로그인이 필요합니다.")
	}
	id, err := productID(r)
	if err != nil {
		return err
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteProductCommand{ID: id, UserID: userID}); err != nil {
		return err
	}

	h.updateProductsMetric(r)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// FavoriteProduct handles POST /products/{id}/favorite
func (h *ProductHandler) FavoriteProduct(w http.ResponseWriter, r *http.Request) error {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return apperr.Unauthorized("로그인이 필요합니다.")
	}
	id, err := productID(r)
	if err != nil {
		return err
	}

	product, err := h.favoriteHandler.Handle(r.Context(), command.FavoriteProductCommand{UserID: userID, ProductID: id})
	if err != nil {
		return err
	}

	httpx.RespondMessage(w, http.StatusOK, "찜한 상품에 추가되었습니다.", product)
	return nil
}

// UnfavoriteProduct handles DELETE /products/{id}/favorite
func (h *ProductHandler) UnfavoriteProduct(w http.ResponseWriter, r *http.Request) error {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return apperr.Unauthorized("로그인이 필요합니다.")
	}
	id, err := productID(r)
	if err != nil {
		return err
	}

	product, err := h.unfavoriteHandler.Handle(r.Context(), command.UnfavoriteProductCommand{UserID: userID, ProductID: id})
	if err != nil {
		return err
	}

	httpx.RespondMessage(w, http.StatusOK, "찜한 상품에서 삭제되었습니다.", product)
	return nil
}

// ListMyProducts handles GET /users/me/products
func (h *ProductHandler) ListMyProducts(w http.ResponseWriter, r *http.Request) error {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return apperr.Unauthorized("로그인이 필요합니다.")
	}
	page, pageSize := pageParams(r)

	result, err := h.listMineHandler.Handle(r.Context(), query.ListMyProductsQuery{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return err
	}

	httpx.RespondData(w, http.StatusOK, result)
	return nil
}

// ListMyFavorites handles GET /users/me/favorites
func (h *ProductHandler) ListMyFavorites(w http.ResponseWriter, r *http.Request) error {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		return apperr.Unauthorized("로그인이 필요합니다.")
	}
	page, pageSize := pageParams(r)

	result, err := h.listFavoritesHandler.Handle(r.Context(), query.ListMyFavoritesQuery{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return err
	}

	httpx.RespondData(w, http.StatusOK, result)
	return nil
}

func (h *ProductHandler) updateProductsMetric(r *http.Request) {
	if count, err := h.repo.Count(r.Context()); err == nil {
		h.metrics.ProductsTotal.Set(float64(count))
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/products", middleware.RequireAuth(httpx.Handle(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/products", httpx.Handle(h.ListProducts)).Methods("GET")
	router.HandleFunc("/products/{id}", middleware.OptionalAuth(httpx.Handle(h.GetProduct))).Methods("GET")
	router.HandleFunc("/products/{id}", middleware.RequireAuth(httpx.Handle(h.UpdateProduct))).Methods("PATCH")
	router.HandleFunc("/products/{id}", middleware.RequireAuth(httpx.Handle(h.DeleteProduct))).Methods("DELETE")

	router.HandleFunc("/products/{id}/favorite", middleware.RequireAuth(httpx.Handle(h.FavoriteProduct))).Methods("POST")
	router.HandleFunc("/products/{id}/favorite", middleware.RequireAuth(httpx.Handle(h.UnfavoriteProduct))).Methods("DELETE")

	router.HandleFunc("/users/me/products", middleware.RequireAuth(httpx.Handle(h.ListMyProducts))).Methods("GET")
	router.HandleFunc("/users/me/favorites", middleware.RequireAuth(httpx.Handle(h.ListMyFavorites))).Methods("GET")
}
