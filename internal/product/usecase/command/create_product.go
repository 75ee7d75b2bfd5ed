package command

import (
	"context"

	"github.com/pandamarket/api/internal/product/domain"
	"github.com/pandamarket/api/pkg/apperr"
)

// CreateProductCommand represents the command to list a new product
type CreateProductCommand struct {
	Name        string
	Description string
	Price       int64
	Images      []string
	Tags        []string
	UserID      uint
	Writer      string
}

// CreateProductHandler handles product creation
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, apperr.BadRequest("상품명은 필수값입니다.")
	}
	if cmd.Description == "" {
		return nil, apperr.BadRequest("상품 설명은 필수값입니다.")
	}
	if cmd.Price <= 0 {
		return nil, apperr.BadRequest("가격은 0보다 큰 값이어야 합니다.")
	}

	product := &domain.Product{
		Name:        cmd.Name,
		Description: cmd.Description,
		Price:       cmd.Price,
		Images:      cmd.Images,
		Tags:        cmd.Tags,
		UserID:      cmd.UserID,
		Writer:      cmd.Writer,
	}

	if err := h.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}
