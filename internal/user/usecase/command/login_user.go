package command

import (
	"context"

	"github.com/pandamarket/api/internal/user/domain"
	"github.com/pandamarket/api/pkg/apperr"
	"github.com/pandamarket/api/pkg/auth"
)

// LoginUserCommand represents the command to login a user
type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// LoginUserHandler handles user login
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle executes the login user command. Unknown emails and wrong
// passwords return the same message so accounts cannot be enumerated.
func (h *LoginUserHandler) Handle(ctx context.Context, cmd LoginUserCommand) (*LoginResponse, error) {
	if cmd.Email == "" {
		return nil, apperr.BadRequest("이메일은 필수값입니다.")
	}
	if cmd.Password == "" {
		return nil, apperr.BadRequest("비밀번호는 필수값입니다.")
	}

	user, err := h.repo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, apperr.Unauthorized("이메일 또는 비밀번호가 일치하지 않습니다.")
	}

	if err := auth.CheckPassword(user.Password, cmd.Password); err != nil {
		return nil, apperr.Unauthorized("이메일 또는 비밀번호가 일치하지 않습니다.")
	}

	token, err := auth.GenerateToken(user.ID, user.Nickname)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		User:  user,
	}, nil
}
