package command

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/comment/domain"
	"github.com/pandamarket/api/pkg/apperr"
)

// UpdateCommentCommand represents the command to edit a comment
type UpdateCommentCommand struct {
	ID      uint
	UserID  uint
	Content string
}

// UpdateCommentHandler handles comment updates
type UpdateCommentHandler struct {
	repo domain.CommentRepository
}

// NewUpdateCommentHandler creates a new update comment handler
func NewUpdateCommentHandler(repo domain.CommentRepository) *UpdateCommentHandler {
	return &UpdateCommentHandler{repo: repo}
}

// Handle executes the update comment command. Only the comment author may
// edit. An unparsable id reaches here as zero and is rejected up front.
func (h *UpdateCommentHandler) Handle(ctx context.Context, cmd UpdateCommentCommand) (*domain.Comment, error) {
	if cmd.ID == 0 {
		return nil, apperr.BadRequest("존재하지 않는 댓글입니다.")
	}
	if cmd.Content == "" {
		return nil, apperr.BadRequest("댓글 내용은 필수값입니다.")
	}

	comment, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("존재하지 않는 댓글입니다.")
		}
		return nil, err
	}

	if err := apperr.RequireOwner(comment, cmd.UserID); err != nil {
		return nil, err
	}

	comment.Content = cmd.Content
	if err := h.repo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}
