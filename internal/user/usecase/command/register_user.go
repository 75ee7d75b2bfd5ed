package command

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/user/domain"
	"github.com/pandamarket/api/pkg/apperr"
	"github.com/pandamarket/api/pkg/auth"
)

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Email    string
	Nickname string
	Password string
	Image    string
}

// RegisterUserHandler handles user registration
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*domain.User, error) {
	if cmd.Email == "" {
		return nil, apperr.BadRequest("이메일은 필수값입니다.")
	}
	if cmd.Nickname == "" {
		return nil, apperr.BadRequest("닉네임은 필수값입니다.")
	}
	if cmd.Password == "" {
		return nil, apperr.BadRequest("비밀번호는 필수값입니다.")
	}
	if len(cmd.Password) < 8 {
		return nil, apperr.BadRequest("비밀번호는 8자 이상이어야 합니다.")
	}

	if existing, _ := h.repo.FindByEmail(ctx, cmd.Email); existing != nil {
		return nil, apperr.Conflict("이미 사용 중인 이메일입니다.")
	}
	if existing, _ := h.repo.FindByNickname(ctx, cmd.Nickname); existing != nil {
		return nil, apperr.Conflict("이미 사용 중인 닉네임입니다.")
	}

	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:    cmd.Email,
		Nickname: cmd.Nickname,
		Password: hashedPassword,
		Image:    cmd.Image,
	}

	if err := h.repo.Create(ctx, user); err != nil {
		// Lost the pre-check race against a concurrent registration.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("이미 사용 중인 이메일 또는 닉네임입니다.")
		}
		return nil, err
	}

	return user, nil
}
