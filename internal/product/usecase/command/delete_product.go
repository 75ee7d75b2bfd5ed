package command

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/product/domain"
	"github.com/pandamarket/api/pkg/apperr"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID     uint
	UserID uint
}

// DeleteProductHandler handles product deletion
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle executes the delete product command. Only the listing owner may
// delete a product.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	product, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("존재하지 않는 상품입니다.")
		}
		return err
	}

	if err := apperr.RequireOwner(product, cmd.UserID); err != nil {
		return err
	}

	return h.repo.Delete(ctx, cmd.ID)
}
