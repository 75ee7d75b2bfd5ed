package query

import (
	"context"

	"github.com/pandamarket/api/internal/product/domain"
)

// ListMyFavoritesQuery lists the products the caller has favorited
type ListMyFavoritesQuery struct {
	UserID   uint
	Page     int
	PageSize int
}

// ListMyFavoritesHandler handles listing the caller's favorites
type ListMyFavoritesHandler struct {
	repo domain.ProductRepository
}

// NewListMyFavoritesHandler creates a new list my favorites handler
func NewListMyFavoritesHandler(repo domain.ProductRepository) *ListMyFavoritesHandler {
	return &ListMyFavoritesHandler{repo: repo}
}

// Handle executes the list my favorites query
func (h *ListMyFavoritesHandler) Handle(ctx context.Context, q ListMyFavoritesQuery) (*ListProductsResult, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = 10
	}
	if q.PageSize > 100 {
		q.PageSize = 100
	}

	products, total, err := h.repo.FindFavoritesByUser(ctx, q.UserID, q.PageSize, (q.Page-1)*q.PageSize)
	if err != nil {
		return nil, err
	}

	if products == nil {
		products = []domain.Product{}
	}
	return &ListProductsResult{
		Products: products,
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}
