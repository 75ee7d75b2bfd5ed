package query

import (
	"context"

	"github.com/pandamarket/api/internal/product/domain"
)

// ListMyProductsQuery lists the products the caller has listed
type ListMyProductsQuery struct {
	UserID   uint
	Page     int
	PageSize int
}

// ListMyProductsHandler handles listing the caller's products
type ListMyProductsHandler struct {
	repo domain.ProductRepository
}

// NewListMyProductsHandler creates a new list my products handler
func NewListMyProductsHandler(repo domain.ProductRepository) *ListMyProductsHandler {
	return &ListMyProductsHandler{repo: repo}
}

// Handle executes the list my products query
func (h *ListMyProductsHandler) Handle(ctx context.Context, q ListMyProductsQuery) (*ListProductsResult, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = 10
	}
	if q.PageSize > 100 {
		q.PageSize = 100
	}

	products, total, err := h.repo.FindByUser(ctx, q.UserID, q.PageSize, (q.Page-1)*q.PageSize)
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
