package command

import (
	"context"
	"net/http"
	"testing"

	"github.com/pandamarket/api/internal/comment/domain"
	"github.com/pandamarket/api/internal/comment/repository"
	"github.com/pandamarket/api/pkg/apperr"
)

func seedComment(t *testing.T, repo domain.CommentRepository, userID uint) *domain.Comment {
	t.Helper()
	productID := uint(1)
	comment := &domain.Comment{
		Content:   "저도 갖고 싶네요.",
		Writer:    "판다",
		UserID:    userID,
		ProductID: &productID,
	}
	if err := repo.Create(context.Background(), comment); err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	return comment
}

func TestUpdateCommentZeroID(t *testing.T) {
	h := NewUpdateCommentHandler(repository.NewMemoryCommentRepository())

	_, err := h.Handle(context.Background(), UpdateCommentCommand{ID: 0, UserID: 1, Content: "수정"})
	if apperr.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("got %v, want 400", err)
	}
	if err.Error() != "존재하지 않는 댓글입니다." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestUpdateCommentEmptyContent(t *testing.T) {
	repo := repository.NewMemoryCommentRepository()
	comment := seedComment(t, repo, 1)
	h := NewUpdateCommentHandler(repo)

	_, err := h.Handle(context.Background(), UpdateCommentCommand{ID: comment.ID, UserID: 1})
	if apperr.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("got %v, want 400", err)
	}
	if err.Error() != "댓글 내용은 필수값입니다." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestUpdateCommentRejectsNonAuthor(t *testing.T) {
	repo := repository.NewMemoryCommentRepository()
	comment := seedComment(t, repo, 1)
	h := NewUpdateCommentHandler(repo)

	_, err := h.Handle(context.Background(), UpdateCommentCommand{ID: comment.ID, UserID: 99, Content: "바꾼 내용"})
	if apperr.StatusOf(err) != http.StatusForbidden {
		t.Fatalf("got %v, want 403", err)
	}

	stored, _ := repo.FindByID(context.Background(), comment.ID)
	if stored.Content != comment.Content {
		t.Errorf("content changed despite 403: %q", stored.Content)
	}
}

func TestUpdateComment(t *testing.T) {
	repo := repository.NewMemoryCommentRepository()
	comment := seedComment(t, repo, 1)
	h := NewUpdateCommentHandler(repo)

	updated, err := h.Handle(context.Background(), UpdateCommentCommand{ID: comment.ID, UserID: 1, Content: "가격 좀 깎아주세요."})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if updated.Content != "가격 좀 깎아주세요." {
		t.Errorf("Content = %q", updated.Content)
	}
}

func TestDeleteCommentAuthorOnly(t *testing.T) {
	repo := repository.NewMemoryCommentRepository()
	comment := seedComment(t, repo, 1)
	h := NewDeleteCommentHandler(repo)
	ctx := context.Background()

	if err := h.Handle(ctx, DeleteCommentCommand{ID: comment.ID, UserID: 99}); apperr.StatusOf(err) != http.StatusForbidden {
		t.Fatalf("non-author delete: got %v, want 403", err)
	}
	if _, err := repo.FindByID(ctx, comment.ID); err != nil {
		t.Fatalf("comment gone after rejected delete: %v", err)
	}

	if err := h.Handle(ctx, DeleteCommentCommand{ID: comment.ID, UserID: 1}); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, comment.ID); err == nil {
		t.Error("comment still found after delete")
	}
}

func TestDeleteCommentZeroID(t *testing.T) {
	h := NewDeleteCommentHandler(repository.NewMemoryCommentRepository())

	err := h.Handle(context.Background(), DeleteCommentCommand{ID: 0, UserID: 1})
	if apperr.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("got %v, want 400", err)
	}
	if err.Error() != "존재하지 않는 댓글입니다." {
		t.Errorf("message = %q", err.Error())
	}
}
