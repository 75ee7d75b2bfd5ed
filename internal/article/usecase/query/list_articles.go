package query

import (
	"context"

	"github.com/pandamarket/api/internal/article/domain"
)

// ListArticlesQuery represents the query to list articles
type ListArticlesQuery struct {
	Page     int
	PageSize int
	OrderBy  string // recent (default) or like
	Keyword  string // Optional: match against title and content
}

// ListArticlesResult is one page of articles plus paging metadata
type ListArticlesResult struct {
	Articles []domain.Article `json:"articles"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// ListArticlesHandler handles list articles query
type ListArticlesHandler struct {
	repo domain.ArticleRepository
}

// NewListArticlesHandler creates a new list articles handler
func NewListArticlesHandler(repo domain.ArticleRepository) *ListArticlesHandler {
	return &ListArticlesHandler{repo: repo}
}

// Handle executes the list articles query
func (h *ListArticlesHandler) Handle(ctx context.Context, q ListArticlesQuery) (*ListArticlesResult, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = 10
	}
	if q.PageSize > 100 {
		q.PageSize = 100
	}
	if q.OrderBy != domain.OrderLike {
		q.OrderBy = domain.OrderRecent
	}

	articles, total, err := h.repo.FindAll(ctx, domain.ListOptions{
		Keyword: q.Keyword,
		OrderBy: q.OrderBy,
		Limit:   q.PageSize,
		Offset:  (q.Page - 1) * q.PageSize,
	})
	if err != nil {
		return nil, err
	}

	if articles == nil {
		articles = []domain.Article{}
	}
	return &ListArticlesResult{
		Articles: articles,
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}
