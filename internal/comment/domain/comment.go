package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a product or an article. Exactly one of
// ProductID and ArticleID is set; the nested creation routes make any other
// combination unreachable.
type Comment struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	Writer    string         `json:"writer" gorm:"not null"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	ProductID *uint          `json:"product_id,omitempty" gorm:"index"`
	ArticleID *uint          `json:"article_id,omitempty" gorm:"index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Comment) TableName() string {
	return "comments"
}

// OwnerID identifies the commenting user for ownership checks
func (c *Comment) OwnerID() uint {
	return c.UserID
}

// CommentRepository defines the contract for comment data access. The
// FindBy listings walk id-descending: cursor zero starts from the newest
// comment, any other value returns comments with smaller ids.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	FindByID(ctx context.Context, id uint) (*Comment, error)
	FindByProduct(ctx context.Context, productID uint, cursor uint, limit int) ([]Comment, error)
	FindByArticle(ctx context.Context, articleID uint, cursor uint, limit int) ([]Comment, error)
	Update(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, id uint) error
}
