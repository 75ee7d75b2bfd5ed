package command

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/article/domain"
	"github.com/pandamarket/api/pkg/apperr"
)

// UpdateArticleCommand represents a partial update of an article. Zero
// fields are left unchanged.
type UpdateArticleCommand struct {
	ID      uint
	UserID  uint
	Title   string
	Content string
	Image   string
}

// UpdateArticleHandler handles article updates
type UpdateArticleHandler struct {
	repo domain.ArticleRepository
}

// NewUpdateArticleHandler creates a new update article handler
func NewUpdateArticleHandler(repo domain.ArticleRepository) *UpdateArticleHandler {
	return &UpdateArticleHandler{repo: repo}
}

// Handle executes the update article command. Only the author may update.
func (h *UpdateArticleHandler) Handle(ctx context.Context, cmd UpdateArticleCommand) (*domain.Article, error) {
	article, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("존재하지 않는 게시글입니다.")
		}
		return nil, err
	}

	if err := apperr.RequireOwner(article, cmd.UserID); err != nil {
		return nil, err
	}

	if cmd.Title != "" {
		article.Title = cmd.Title
	}
	if cmd.Content != "" {
		article.Content = cmd.Content
	}
	if cmd.Image != "" {
		article.Image = cmd.Image
	}

	if err := h.repo.Update(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}
