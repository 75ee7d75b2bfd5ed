package command

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/article/domain"
	"github.com/pandamarket/api/pkg/apperr"
)

// UnlikeArticleCommand represents the command to remove an article like
type UnlikeArticleCommand struct {
	UserID    uint
	ArticleID uint
}

// UnlikeArticleHandler handles removing an article like
type UnlikeArticleHandler struct {
	repo domain.ArticleRepository
}

// NewUnlikeArticleHandler creates a new unlike article handler
func NewUnlikeArticleHandler(repo domain.ArticleRepository) *UnlikeArticleHandler {
	return &UnlikeArticleHandler{repo: repo}
}

// Handle executes the unlike article command and returns the article with
// its updated like count.
func (h *UnlikeArticleHandler) Handle(ctx context.Context, cmd UnlikeArticleCommand) (*domain.Article, error) {
	if _, err := h.repo.FindByID(ctx, cmd.ArticleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("존재하지 않는 게시글입니다.")
		}
		return nil, err
	}

	liked, err := h.repo.IsLiked(ctx, cmd.UserID, cmd.ArticleID)
	if err != nil {
		return nil, err
	}
	if !liked {
		return nil, apperr.Conflict("좋아요하지 않은 게시글입니다.")
	}

	if err := h.repo.RemoveLike(ctx, cmd.UserID, cmd.ArticleID); err != nil {
		// Concurrent request removed it first; same outcome as the pre-check.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Conflict("좋아요하지 않은 게시글입니다.")
		}
		return nil, err
	}

	return h.repo.FindByID(ctx, cmd.ArticleID)
}
