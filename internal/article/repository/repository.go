package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/article/domain"
)

type GormArticleRepository struct {
	db *gorm.DB
}

func NewGormArticleRepository(db *gorm.DB) *GormArticleRepository {
	return &GormArticleRepository{db: db}
}

func keywordFilter(keyword string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if keyword == "" {
			return tx
		}
		pattern := "%" + keyword + "%"
		return tx.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}
}

func (r *GormArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *GormArticleRepository) FindByID(ctx context.Context, id uint) (*domain.Article, error) {
	var article domain.Article
	if err := r.db.WithContext(ctx).First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *GormArticleRepository) FindAll(ctx context.Context, opts domain.ListOptions) ([]domain.Article, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.Article{}).
		Scopes(keywordFilter(opts.Keyword)).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).Scopes(keywordFilter(opts.Keyword))
	switch opts.OrderBy {
	case domain.OrderLike:
		q = q.Order("like_count DESC, id DESC")
	default:
		q = q.Order("created_at DESC, id DESC")
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}

	var articles []domain.Article
	if err := q.Find(&articles).Error; err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *GormArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *GormArticleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Article{}, id).Error
}

func (r *GormArticleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Article{}).Count(&count).Error
	return count, err
}

// AddLike inserts the likes row and bumps like_count in one transaction,
// mirroring the product favorite contract.
func (r *GormArticleRepository) AddLike(ctx context.Context, userID, articleID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		like := domain.ArticleLike{UserID: userID, ArticleID: articleID}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Article{}).
			Where("id = ?", articleID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error
	})
}

// RemoveLike deletes the likes row and decrements like_count in one
// transaction. Absent rows return gorm.ErrRecordNotFound.
func (r *GormArticleRepository) RemoveLike(ctx context.Context, userID, articleID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND article_id = ?", userID, articleID).
			Delete(&domain.ArticleLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&domain.Article{}).
			Where("id = ? AND like_count > 0", articleID).
			UpdateColumn("like_count", gorm.Expr("like_count - ?", 1)).Error
	})
}

func (r *GormArticleRepository) IsLiked(ctx context.Context, userID, articleID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ArticleLike{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
