package command

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/product/domain"
	"github.com/pandamarket/api/pkg/apperr"
)

// UpdateProductCommand represents a partial update of a product. Zero
// fields and nil slices are left unchanged.
type UpdateProductCommand struct {
	ID          uint
	UserID      uint
	Name        string
	Description string
	Price       int64
	Images      []string
	Tags        []string
}

// UpdateProductHandler handles product updates
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command. Only the listing owner may
// update a product.
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	product, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("존재하지 않는 상품입니다.")
		}
		return nil, err
	}

	if err := apperr.RequireOwner(product, cmd.UserID); err != nil {
		return nil, err
	}

	if cmd.Name != "" {
		product.Name = cmd.Name
	}
	if cmd.Description != "" {
		product.Description = cmd.Description
	}
	if cmd.Price != 0 {
		if cmd.Price < 0 {
			return nil, apperr.BadRequest("가격은 0보다 큰 값이어야 합니다.")
		}
		product.Price = cmd.Price
	}
	if cmd.Images != nil {
		product.Images = cmd.Images
	}
	if cmd.Tags != nil {
		product.Tags = cmd.Tags
	}

	if err := h.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}
