package command

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/user/domain"
	"github.com/pandamarket/api/pkg/apperr"
	"github.com/pandamarket/api/pkg/auth"
)

// UpdateProfileCommand represents a partial update of the caller's
// profile. Empty fields are left unchanged.
type UpdateProfileCommand struct {
	ID       uint
	Nickname string
	Image    string
	Password string
}

// UpdateProfileHandler handles profile updates
type UpdateProfileHandler struct {
	repo domain.UserRepository
}

// NewUpdateProfileHandler creates a new update profile handler
func NewUpdateProfileHandler(repo domain.UserRepository) *UpdateProfileHandler {
	return &UpdateProfileHandler{repo: repo}
}

// Handle executes the update profile command
func (h *UpdateProfileHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*domain.User, error) {
	user, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("존재하지 않는 유저입니다.")
		}
		return nil, err
	}

	if cmd.Nickname != "" && cmd.Nickname != user.Nickname {
		if existing, _ := h.repo.FindByNickname(ctx, cmd.Nickname); existing != nil {
			return nil, apperr.Conflict("이미 사용 중인 닉네임입니다.")
		}
		user.Nickname = cmd.Nickname
	}
	if cmd.Image != "" {
		user.Image = cmd.Image
	}
	if cmd.Password != "" {
		if len(cmd.Password) < 8 {
			return nil, apperr.BadRequest("비밀번호는 8자 이상이어야 합니다.")
		}
		hashed, err := auth.HashPassword(cmd.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := h.repo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("이미 사용 중인 닉네임입니다.")
		}
		return nil, err
	}

	return user, nil
}
