package domain

import "time"

// Favorite links a user to a product they picked. The composite unique
// index makes double-favoriting impossible even under concurrent requests.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_favorites_user_product"`
	ProductID uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_favorites_user_product"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Favorite) TableName() string {
	return "favorites"
}
