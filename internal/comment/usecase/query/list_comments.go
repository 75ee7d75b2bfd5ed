package query

import (
	"context"

	"github.com/pandamarket/api/internal/comment/domain"
)

// ListCommentsQuery walks a parent's comments newest-first. Cursor zero
// starts at the newest comment; exactly one of ProductID and ArticleID is
// set.
type ListCommentsQuery struct {
	ProductID *uint
	ArticleID *uint
	Cursor    uint
	Limit     int
}

// ListCommentsResult is one page of comments. NextCursor is zero when the
// walk is complete, otherwise it is passed back as the next request's
// cursor.
type ListCommentsResult struct {
	Comments   []domain.Comment `json:"comments"`
	NextCursor uint             `json:"next_cursor"`
}

// ListCommentsHandler handles cursor-paginated comment listings
type ListCommentsHandler struct {
	repo domain.CommentRepository
}

// NewListCommentsHandler creates a new list comments handler
func NewListCommentsHandler(repo domain.CommentRepository) *ListCommentsHandler {
	return &ListCommentsHandler{repo: repo}
}

// Handle executes the list comments query. It fetches one row beyond the
// page size to decide whether a next cursor exists.
func (h *ListCommentsHandler) Handle(ctx context.Context, q ListCommentsQuery) (*ListCommentsResult, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	var (
		comments []domain.Comment
		err      error
	)
	switch {
	case q.ProductID != nil:
		comments, err = h.repo.FindByProduct(ctx, *q.ProductID, q.Cursor, q.Limit+1)
	case q.ArticleID != nil:
		comments, err = h.repo.FindByArticle(ctx, *q.ArticleID, q.Cursor, q.Limit+1)
	default:
		comments = nil
	}
	if err != nil {
		return nil, err
	}

	var nextCursor uint
	if len(comments) > q.Limit {
		comments = comments[:q.Limit]
		nextCursor = comments[q.Limit-1].ID
	}
	if comments == nil {
		comments = []domain.Comment{}
	}

	return &ListCommentsResult{Comments: comments, NextCursor: nextCursor}, nil
}
