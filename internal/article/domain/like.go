package domain

import "time"

// ArticleLike links a user to an article they liked. Same shape as the
// product favorite: the composite unique index is the race guard.
type ArticleLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_article_likes_user_article"`
	ArticleID uint      `json:"article_id" gorm:"not null;uniqueIndex:idx_article_likes_user_article"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (ArticleLike) TableName() string {
	return "article_likes"
}
