package query

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/product/domain"
	"github.com/pandamarket/api/pkg/apperr"
)

// GetProductQuery represents the query to get a product by ID. UserID is
// zero for anonymous requests.
type GetProductQuery struct {
	ID     uint
	UserID uint
}

// ProductDetail is a product plus whether the requesting user picked it.
type ProductDetail struct {
	*domain.Product
	IsFavorite bool `json:"is_favorite"`
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*ProductDetail, error) {
	product, err := h.repo.FindByID(ctx, q.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("존재하지 않는 상품입니다.")
		}
		return nil, err
	}

	detail := &ProductDetail{Product: product}
	if q.UserID != 0 {
		favorited, err := h.repo.IsFavorite(ctx, q.UserID, q.ID)
		if err != nil {
			return nil, err
		}
		detail.IsFavorite = favorited
	}

	return detail, nil
}
