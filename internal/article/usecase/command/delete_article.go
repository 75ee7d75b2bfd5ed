package command

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/article/domain"
	"github.com/pandamarket/api/pkg/apperr"
)

// DeleteArticleCommand represents the command to delete an article
type DeleteArticleCommand struct {
	ID     uint
	UserID uint
}

// DeleteArticleHandler handles article deletion
type DeleteArticleHandler struct {
	repo domain.ArticleRepository
}

// NewDeleteArticleHandler creates a new delete article handler
func NewDeleteArticleHandler(repo domain.ArticleRepository) *DeleteArticleHandler {
	return &DeleteArticleHandler{repo: repo}
}

// Handle executes the delete article command. Only the author may delete.
func (h *DeleteArticleHandler) Handle(ctx context.Context, cmd DeleteArticleCommand) error {
	article, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("존재하지 않는 게시글입니다.")
		}
		return err
	}

	if err := apperr.RequireOwner(article, cmd.UserID); err != nil {
		return err
	}

	return h.repo.Delete(ctx, cmd.ID)
}
