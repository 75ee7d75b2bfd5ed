package domain

import (
	"context"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Ordering options for product listings
const (
	OrderRecent   = "recent"
	OrderFavorite = "favorite"
)

// Product represents an item listed on the market
type Product struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"not null"`
	Description   string         `json:"description" gorm:"type:text;not null"`
	Price         int64          `json:"price" gorm:"not null"`
	FavoriteCount int64          `json:"favorite_count" gorm:"not null;default:0"`
	Writer        string         `json:"writer" gorm:"not null"`
	UserID        uint           `json:"user_id" gorm:"not null;index"`
	Images        pq.StringArray `json:"images" gorm:"type:text[]"`
	Tags          pq.StringArray `json:"tags" gorm:"type:text[]"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// OwnerID identifies the listing user for ownership checks
func (p *Product) OwnerID() uint {
	return p.UserID
}

// ListOptions narrows and orders a product listing
type ListOptions struct {
	Keyword string
	OrderBy string
	Limit   int
	Offset  int
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindAll(ctx context.Context, opts ListOptions) ([]Product, int64, error)
	FindByUser(ctx context.Context, userID uint, limit, offset int) ([]Product, int64, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)

	// Favorites. Add and Remove adjust the product's favorite_count in the
	// same transaction as the favorites row.
	AddFavorite(ctx context.Context, userID, productID uint) error
	RemoveFavorite(ctx context.Context, userID, productID uint) error
	IsFavorite(ctx context.Context, userID, productID uint) (bool, error)
	FindFavoritesByUser(ctx context.Context, userID uint, limit, offset int) ([]Product, int64, error)
}
