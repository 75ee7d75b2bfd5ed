package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Ordering options for article listings
const (
	OrderRecent = "recent"
	OrderLike   = "like"
)

// Article represents a community board post
type Article struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Title     string         `json:"title" gorm:"not null"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	Image     string         `json:"image"`
	LikeCount int64          `json:"like_count" gorm:"not null;default:0"`
	Writer    string         `json:"writer" gorm:"not null"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Article) TableName() string {
	return "articles"
}

// OwnerID identifies the posting user for ownership checks
func (a *Article) OwnerID() uint {
	return a.UserID
}

// ListOptions narrows and orders an article listing
type ListOptions struct {
	Keyword string
	OrderBy string
	Limit   int
	Offset  int
}

// ArticleRepository defines the contract for article data access
type ArticleRepository interface {
	Create(ctx context.Context, article *Article) error
	FindByID(ctx context.Context, id uint) (*Article, error)
	FindAll(ctx context.Context, opts ListOptions) ([]Article, int64, error)
	Update(ctx context.Context, article *Article) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)

	// Likes. Add and Remove adjust the article's like_count in the same
	// transaction as the likes row.
	AddLike(ctx context.Context, userID, articleID uint) error
	RemoveLike(ctx context.Context, userID, articleID uint) error
	IsLiked(ctx context.Context, userID, articleID uint) (bool, error)
}
