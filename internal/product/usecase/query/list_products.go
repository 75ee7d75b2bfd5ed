package query

import (
	"context"

	"github.com/pandamarket/api/internal/product/domain"
)

// ListProductsQuery represents the query to list products
type ListProductsQuery struct {
	Page     int
	PageSize int
	OrderBy  string // recent (default) or favorite
	Keyword  string // Optional: match against name and description
}

// ListProductsResult is one page of products plus paging metadata
type ListProductsResult struct {
	Products []domain.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) (*ListProductsResult, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = 10
	}
	if q.PageSize > 100 {
		q.PageSize = 100
	}
	if q.OrderBy != domain.OrderFavorite {
		q.OrderBy = domain.OrderRecent
	}

	products, total, err := h.repo.FindAll(ctx, domain.ListOptions{
		Keyword: q.Keyword,
		OrderBy: q.OrderBy,
		Limit:   q.PageSize,
		Offset:  (q.Page - 1) * q.PageSize,
	})
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
