package command

import (
	"context"
	"net/http"
	"testing"

	"github.com/pandamarket/api/internal/article/domain"
	"github.com/pandamarket/api/internal/article/repository"
	"github.com/pandamarket/api/pkg/apperr"
)

func seedArticle(t *testing.T, repo domain.ArticleRepository, userID uint) *domain.Article {
	t.Helper()
	h := NewCreateArticleHandler(repo)
	article, err := h.Handle(context.Background(), CreateArticleCommand{
		Title:   "판다마켓 이용 후기",
		Content: "잘 쓰고 있습니다.",
		UserID:  userID,
		Writer:  "판다",
	})
	if err != nil {
		t.Fatalf("seed article: %v", err)
	}
	return article
}

func TestLikeToggle(t *testing.T) {
	repo := repository.NewMemoryArticleRepository()
	article := seedArticle(t, repo, 1)
	like := NewLikeArticleHandler(repo)
	unlike := NewUnlikeArticleHandler(repo)
	ctx := context.Background()

	updated, err := like.Handle(ctx, LikeArticleCommand{UserID: 2, ArticleID: article.ID})
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if updated.LikeCount != 1 {
		t.Errorf("LikeCount after like = %d, want 1", updated.LikeCount)
	}

	if _, err := like.Handle(ctx, LikeArticleCommand{UserID: 2, ArticleID: article.ID}); apperr.StatusOf(err) != http.StatusConflict {
		t.Fatalf("second like: got %v, want 409", err)
	}

	updated, err = unlike.Handle(ctx, UnlikeArticleCommand{UserID: 2, ArticleID: article.ID})
	if err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if updated.LikeCount != 0 {
		t.Errorf("LikeCount after unlike = %d, want 0", updated.LikeCount)
	}

	_, err = unlike.Handle(ctx, UnlikeArticleCommand{UserID: 2, ArticleID: article.ID})
	if apperr.StatusOf(err) != http.StatusConflict {
		t.Fatalf("second unlike: got %v, want 409", err)
	}
	if err.Error() != "좋아요하지 않은 게시글입니다." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestLikeCountMatchesDistinctUsers(t *testing.T) {
	repo := repository.NewMemoryArticleRepository()
	article := seedArticle(t, repo, 1)
	like := NewLikeArticleHandler(repo)
	ctx := context.Background()

	for userID := uint(2); userID <= 6; userID++ {
		if _, err := like.Handle(ctx, LikeArticleCommand{UserID: userID, ArticleID: article.ID}); err != nil {
			t.Fatalf("like by user %d: %v", userID, err)
		}
	}

	stored, _ := repo.FindByID(ctx, article.ID)
	if stored.LikeCount != 5 {
		t.Errorf("LikeCount = %d, want 5", stored.LikeCount)
	}
}

func TestLikeUnknownArticle(t *testing.T) {
	like := NewLikeArticleHandler(repository.NewMemoryArticleRepository())

	_, err := like.Handle(context.Background(), LikeArticleCommand{UserID: 2, ArticleID: 999})
	if apperr.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("got %v, want 404", err)
	}
	if err.Error() != "존재하지 않는 게시글입니다." {
		t.Errorf("message = %q", err.Error())
	}
}
