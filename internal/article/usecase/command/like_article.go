package command

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/article/domain"
	"github.com/pandamarket/api/pkg/apperr"
)

// LikeArticleCommand represents the command to like an article
type LikeArticleCommand struct {
	UserID    uint
	ArticleID uint
}

// LikeArticleHandler handles liking an article
type LikeArticleHandler struct {
	repo domain.ArticleRepository
}

// NewLikeArticleHandler creates a new like article handler
func NewLikeArticleHandler(repo domain.ArticleRepository) *LikeArticleHandler {
	return &LikeArticleHandler{repo: repo}
}

// Handle executes the like article command and returns the article with
// its updated like count.
func (h *LikeArticleHandler) Handle(ctx context.Context, cmd LikeArticleCommand) (*domain.Article, error) {
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
	if liked {
		return nil, apperr.Conflict("이미 좋아요한 게시글입니다.")
	}

	if err := h.repo.AddLike(ctx, cmd.UserID, cmd.ArticleID); err != nil {
		// Concurrent request won the insert; same outcome as the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("이미 좋아요한 게시글입니다.")
		}
		return nil, err
	}

	return h.repo.FindByID(ctx, cmd.ArticleID)
}
