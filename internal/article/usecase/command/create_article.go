package command

import (
	"context"

	"github.com/pandamarket/api/internal/article/domain"
	"github.com/pandamarket/api/pkg/apperr"
)

// CreateArticleCommand represents the command to post a new article
type CreateArticleCommand struct {
	Title   string
	Content string
	Image   string
	UserID  uint
	Writer  string
}

// CreateArticleHandler handles article creation
type CreateArticleHandler struct {
	repo domain.ArticleRepository
}

// NewCreateArticleHandler creates a new create article handler
func NewCreateArticleHandler(repo domain.ArticleRepository) *CreateArticleHandler {
	return &CreateArticleHandler{repo: repo}
}

// Handle executes the create article command
func (h *CreateArticleHandler) Handle(ctx context.Context, cmd CreateArticleCommand) (*domain.Article, error) {
	if cmd.Title == "" {
		return nil, apperr.BadRequest("제목은 필수값입니다.")
	}
	if cmd.Content == "" {
		return nil, apperr.BadRequest("내용은 필수값입니다.")
	}

	article := &domain.Article{
		Title:   cmd.Title,
		Content: cmd.Content,
		Image:   cmd.Image,
		UserID:  cmd.UserID,
		Writer:  cmd.Writer,
	}

	if err := h.repo.Create(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}
