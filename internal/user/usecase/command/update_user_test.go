package command

import (
	"context"
	"net/http"
	"testing"

	"github.com/pandamarket/api/internal/user/repository"
	"github.com/pandamarket/api/pkg/apperr"
)

func TestUpdateProfilePartial(t *testing.T) {
	repo := registeredRepo(t)
	h := NewUpdateProfileHandler(repo)
	ctx := context.Background()

	before, err := repo.FindByNickname(ctx, "판다")
	if err != nil {
		t.Fatalf("FindByNickname: %v", err)
	}

	updated, err := h.Handle(ctx, UpdateProfileCommand{ID: before.ID, Image: "https://img.market.com/me.png"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if updated.Image != "https://img.market.com/me.png" {
		t.Errorf("image = %q", updated.Image)
	}
	if updated.Nickname != "판다" {
		t.Errorf("nickname changed unexpectedly: %q", updated.Nickname)
	}
	if updated.Password != before.Password {
		t.Error("password changed unexpectedly")
	}
}

func TestUpdateProfileNicknameConflict(t *testing.T) {
	repo := registeredRepo(t)
	register := NewRegisterUserHandler(repo)
	ctx := context.Background()

	other, err := register.Handle(ctx, RegisterUserCommand{
		Email:    "b@market.com",
		Nickname: "곰",
		Password: "bear12345",
	})
	if err != nil {
		t.Fatalf("register second user: %v", err)
	}

	h := NewUpdateProfileHandler(repo)
	_, err = h.Handle(ctx, UpdateProfileCommand{ID: other.ID, Nickname: "판다"})
	if apperr.StatusOf(err) != http.StatusConflict {
		t.Fatalf("got %v, want 409", err)
	}
	if err.Error() != "이미 사용 중인 닉네임입니다." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	h := NewUpdateProfileHandler(repository.NewMemoryUserRepository())

	_, err := h.Handle(context.Background(), UpdateProfileCommand{ID: 99, Nickname: "판다"})
	if apperr.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("got %v, want 404", err)
	}
	if err.Error() != "존재하지 않는 유저입니다." {
		t.Errorf("message = %q", err.Error())
	}
}
