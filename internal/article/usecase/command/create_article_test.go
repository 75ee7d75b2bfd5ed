package command

import (
	"context"
	"net/http"
	"testing"

	"github.com/pandamarket/api/internal/article/repository"
	"github.com/pandamarket/api/pkg/apperr"
)

func TestCreateArticleValidation(t *testing.T) {
	h := NewCreateArticleHandler(repository.NewMemoryArticleRepository())

	cases := []struct {
		name    string
		cmd     CreateArticleCommand
		message string
	}{
		{"missing title", CreateArticleCommand{Content: "내용"}, "제목은 필수값입니다."},
		{"missing content", CreateArticleCommand{Title: "제목"}, "내용은 필수값입니다."},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := h.Handle(context.Background(), c.cmd)
			if apperr.StatusOf(err) != http.StatusBadRequest {
				t.Fatalf("got %v, want 400", err)
			}
			if err.Error() != c.message {
				t.Errorf("message = %q, want %q", err.Error(), c.message)
			}
		})
	}
}

func TestUpdateArticleRejectsNonAuthor(t *testing.T) {
	repo := repository.NewMemoryArticleRepository()
	article := seedArticle(t, repo, 1)
	h := NewUpdateArticleHandler(repo)

	_, err := h.Handle(context.Background(), UpdateArticleCommand{
		ID:     article.ID,
		UserID: 99,
		Title:  "남의 글",
	})
	if apperr.StatusOf(err) != http.StatusForbidden {
		t.Fatalf("got %v, want 403", err)
	}

	stored, _ := repo.FindByID(context.Background(), article.ID)
	if stored.Title != article.Title {
		t.Errorf("title changed despite 403: %q", stored.Title)
	}
}

func TestDeleteArticleAuthorOnly(t *testing.T) {
	repo := repository.NewMemoryArticleRepository()
	article := seedArticle(t, repo, 1)
	h := NewDeleteArticleHandler(repo)
	ctx := context.Background()

	if err := h.Handle(ctx, DeleteArticleCommand{ID: article.ID, UserID: 99}); apperr.StatusOf(err) != http.StatusForbidden {
		t.Fatalf("non-author delete: got %v, want 403", err)
	}
	if err := h.Handle(ctx, DeleteArticleCommand{ID: article.ID, UserID: 1}); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, article.ID); err == nil {
		t.Error("article still found after delete")
	}
}
