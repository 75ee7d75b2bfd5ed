package command

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/product/domain"
	"github.com/pandamarket/api/pkg/apperr"
)

// UnfavoriteProductCommand represents the command to remove a favorite
type UnfavoriteProductCommand struct {
	UserID    uint
	ProductID uint
}

// UnfavoriteProductHandler handles removing a favorite
type UnfavoriteProductHandler struct {
	repo domain.ProductRepository
}

// NewUnfavoriteProductHandler creates a new unfavorite product handler
func NewUnfavoriteProductHandler(repo domain.ProductRepository) *UnfavoriteProductHandler {
	return &UnfavoriteProductHandler{repo: repo}
}

// Handle executes the unfavorite product command and returns the product
// with its updated favorite count.
func (h *UnfavoriteProductHandler) Handle(ctx context.Context, cmd UnfavoriteProductCommand) (*domain.Product, error) {
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
	if !favorited {
		return nil, apperr.Conflict("찜하지 않은 상품입니다.")
	}

	if err := h.repo.RemoveFavorite(ctx, cmd.UserID, cmd.ProductID); err != nil {
		// Concurrent request removed it first; same outcome as the pre-check.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Conflict("찜하지 않은 상품입니다.")
		}
		return nil, err
	}

	return h.repo.FindByID(ctx, cmd.ProductID)
}
