package command

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/comment/domain"
	"github.com/pandamarket/api/pkg/apperr"
)

// DeleteCommentCommand represents the command to delete a comment
type DeleteCommentCommand struct {
	ID     uint
	UserID uint
}

// DeleteCommentHandler handles comment deletion
type DeleteCommentHandler struct {
	repo domain.CommentRepository
}

// NewDeleteCommentHandler creates a new delete comment handler
func NewDeleteCommentHandler(repo domain.CommentRepository) *DeleteCommentHandler {
	return &DeleteCommentHandler{repo: repo}
}

// Handle executes the delete comment command. Only the comment author may
// delete.
func (h *DeleteCommentHandler) Handle(ctx context.Context, cmd DeleteCommentCommand) error {
	if cmd.ID == 0 {
		return apperr.BadRequest("존재하지 않는 댓글입니다.")
	}

	comment, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("존재하지 않는 댓글입니다.")
		}
		return err
	}

	if err := apperr.RequireOwner(comment, cmd.UserID); err != nil {
		return err
	}

	return h.repo.Delete(ctx, cmd.ID)
}
