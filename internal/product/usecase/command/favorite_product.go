package command

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/product/domain"
	"github.com/pandamarket/api/pkg/apperr"
)

// FavoriteProductCommand represents the command to favorite a product
type FavoriteProductCommand struct {
	UserID    uint
	ProductID uint
}

// FavoriteProductHandler handles favoriting a product
type FavoriteProductHandler struct {
	repo domain.ProductRepository
}

// NewFavoriteProductHandler creates a new favorite product handler
func NewFavoriteProductHandler(repo domain.ProductRepository) *FavoriteProductHandler {
	return &FavoriteProductHandler{repo: repo}
}

// Handle executes the favorite product command and returns the product
// with its updated favorite count.
func (h *FavoriteProductHandler) Handle(ctx context.Context, cmd FavoriteProductCommand) (*domain.Product, error) {
	if _, err := h.repo.FindByID(ctx, cmd.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("존재하지 않는 상품입니다.")
		}
		return nil, err
	}

	favorited, err := h.repo.IsFavorite(ctx, cmd.UserID, cmd.ProductID)
	if err != nil {
		return nil, err
	}
	if favorited {
		return nil, apperr.Conflict("이미 찜한 상품입니다.")
	}

	if err := h.repo.AddFavorite(ctx, cmd.UserID, cmd.ProductID); err != nil {
		// Concurrent request won the insert; same outcome as the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("이미 찜한 상품입니다.")
		}
		return nil, err
	}

	return h.repo.FindByID(ctx, cmd.ProductID)
}
