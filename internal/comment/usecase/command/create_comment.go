package command

import (
	"context"
	"errors"

	"gorm.io/gorm"

	articledomain "github.com/pandamarket/api/internal/article/domain"
	"github.com/pandamarket/api/internal/comment/domain"
	productdomain "github.com/pandamarket/api/internal/product/domain"
	"github.com/pandamarket/api/pkg/apperr"
)

// CreateCommentCommand represents the command to comment on a product or
// an article. Exactly one of ProductID and ArticleID is set by the caller.
type CreateCommentCommand struct {
	Content   string
	UserID    uint
	Writer    string
	ProductID *uint
	ArticleID *uint
}

// CreateCommentHandler handles comment creation. It checks the parent
// exists before writing, so comments can never point at nothing.
type CreateCommentHandler struct {
	comments domain.CommentRepository
	products productdomain.ProductRepository
	articles articledomain.ArticleRepository
}

// NewCreateCommentHandler creates a new create comment handler
func NewCreateCommentHandler(
	comments domain.CommentRepository,
	products productdomain.ProductRepository,
	articles articledomain.ArticleRepository,
) *CreateCommentHandler {
	return &CreateCommentHandler{comments: comments, products: products, articles: articles}
}

// Handle executes the create comment command
func (h *CreateCommentHandler) Handle(ctx context.Context, cmd CreateCommentCommand) (*domain.Comment, error) {
	if cmd.Content == "" {
		return nil, apperr.BadRequest("댓글 내용은 필수값입니다.")
	}

	switch {
	case cmd.ProductID != nil:
		if _, err := h.products.FindByID(ctx, *cmd.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("존재하지 않는 상품입니다.")
			}
			return nil, err
		}
	case cmd.ArticleID != nil:
		if _, err := h.articles.FindByID(ctx, *cmd.ArticleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("존재하지 않는 게시글입니다.")
			}
			return nil, err
		}
	default:
		return nil, apperr.BadRequest("댓글을 달 대상이 없습니다.")
	}

	comment := &domain.Comment{
		Content:   cmd.Content,
		UserID:    cmd.UserID,
		Writer:    cmd.Writer,
		ProductID: cmd.ProductID,
		ArticleID: cmd.ArticleID,
	}

	if err := h.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}
