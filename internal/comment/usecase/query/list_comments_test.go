package query

import (
	"context"
	"fmt"
	"testing"

	"github.com/pandamarket/api/internal/comment/domain"
	"github.com/pandamarket/api/internal/comment/repository"
)

func seedProductComments(t *testing.T, repo domain.CommentRepository, productID uint, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		c := &domain.Comment{
			Content:   fmt.Sprintf("댓글 %d", i+1),
			Writer:    "판다",
			UserID:    1,
			ProductID: &productID,
		}
		if err := repo.Create(context.Background(), c); err != nil {
			t.Fatalf("seed comment %d: %v", i, err)
		}
	}
}

func TestListCommentsCursorWalk(t *testing.T) {
	repo := repository.NewMemoryCommentRepository()
	seedProductComments(t, repo, 1, 25)
	h := NewListCommentsHandler(repo)
	ctx := context.Background()
	productID := uint(1)

	var (
		cursor uint
		seen   []uint
		pages  int
	)
	for {
		result, err := h.Handle(ctx, ListCommentsQuery{ProductID: &productID, Cursor: cursor, Limit: 10})
		if err != nil {
			t.Fatalf("Handle: %v", err)
		}
		pages++
		for _, c := range result.Comments {
			seen = append(seen, c.ID)
		}
		if result.NextCursor == 0 {
			break
		}
		cursor = result.NextCursor
		if pages > 10 {
			t.Fatal("cursor walk does not terminate")
		}
	}

	if pages != 3 {
		t.Errorf("pages = %d, want 3", pages)
	}
	if len(seen) != 25 {
		t.Fatalf("walked %d comments, want 25", len(seen))
	}
	for i := 1; i < len(seen); i++ {
		if seen[i] >= seen[i-1] {
			t.Fatalf("ids not strictly descending at %d: %d then %d", i, seen[i-1], seen[i])
		}
	}
}

func TestListCommentsExactPage(t *testing.T) {
	repo := repository.NewMemoryCommentRepository()
	seedProductComments(t, repo, 1, 10)
	h := NewListCommentsHandler(repo)
	productID := uint(1)

	result, err := h.Handle(context.Background(), ListCommentsQuery{ProductID: &productID, Limit: 10})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(result.Comments) != 10 {
		t.Errorf("len = %d, want 10", len(result.Comments))
	}
	if result.NextCursor != 0 {
		t.Errorf("NextCursor = %d, want 0 when everything fit on one page", result.NextCursor)
	}
}

func TestListCommentsEmptyParent(t *testing.T) {
	h := NewListCommentsHandler(repository.NewMemoryCommentRepository())
	productID := uint(42)

	result, err := h.Handle(context.Background(), ListCommentsQuery{ProductID: &productID})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if result.Comments == nil {
		t.Error("Comments is nil, want empty slice")
	}
	if len(result.Comments) != 0 || result.NextCursor != 0 {
		t.Errorf("got %d comments, cursor %d", len(result.Comments), result.NextCursor)
	}
}

func TestListCommentsSeparatesParents(t *testing.T) {
	repo := repository.NewMemoryCommentRepository()
	ctx := context.Background()

	productID, articleID := uint(1), uint(1)
	seedProductComments(t, repo, productID, 3)
	for i := 0; i < 2; i++ {
		c := &domain.Comment{Content: "게시글 댓글", Writer: "판다", UserID: 1, ArticleID: &articleID}
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("seed article comment: %v", err)
		}
	}

	h := NewListCommentsHandler(repo)

	fromProduct, err := h.Handle(ctx, ListCommentsQuery{ProductID: &productID})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(fromProduct.Comments) != 3 {
		t.Errorf("product comments = %d, want 3", len(fromProduct.Comments))
	}

	fromArticle, err := h.Handle(ctx, ListCommentsQuery{ArticleID: &articleID})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(fromArticle.Comments) != 2 {
		t.Errorf("article comments = %d, want 2", len(fromArticle.Comments))
	}
}
