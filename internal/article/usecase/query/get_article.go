package query

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/article/domain"
	"github.com/pandamarket/api/pkg/apperr"
)

// GetArticleQuery represents the query to get an article by ID. UserID is
// zero for anonymous requests.
type GetArticleQuery struct {
	ID     uint
	UserID uint
}

// ArticleDetail is an article plus whether the requesting user liked it.
type ArticleDetail struct {
	*domain.Article
	IsLiked bool `json:"is_liked"`
}

// GetArticleHandler handles get article query
type GetArticleHandler struct {
	repo domain.ArticleRepository
}

// NewGetArticleHandler creates a new get article handler
func NewGetArticleHandler(repo domain.ArticleRepository) *GetArticleHandler {
	return &GetArticleHandler{repo: repo}
}

// Handle executes the get article query
func (h *GetArticleHandler) Handle(ctx context.Context, q GetArticleQuery) (*ArticleDetail, error) {
	article, err := h.repo.FindByID(ctx, q.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("존재하지 않는 게시글입니다.")
		}
		return nil, err
	}

	detail := &ArticleDetail{Article: article}
	if q.UserID != 0 {
		liked, err := h.repo.IsLiked(ctx, q.UserID, q.ID)
		if err != nil {
			return nil, err
		}
		detail.IsLiked = liked
	}

	return detail, nil
}
