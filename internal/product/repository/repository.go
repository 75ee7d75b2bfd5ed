package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/product/domain"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// keywordFilter narrows a product query to rows whose name or description
// contains the keyword.
func keywordFilter(keyword string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if keyword == "" {
			return tx
		}
		pattern := "%" + keyword + "%"
		return tx.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
}

func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(ctx context.Context, opts domain.ListOptions) ([]domain.Product, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Scopes(keywordFilter(opts.Keyword)).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).Scopes(keywordFilter(opts.Keyword))
	switch opts.OrderBy {
	case domain.OrderFavorite:
		q = q.Order("favorite_count DESC, id DESC")
	default:
		q = q.Order("created_at DESC, id DESC")
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}

	var products []domain.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *GormProductRepository) FindByUser(ctx context.Context, userID uint, limit, offset int) ([]domain.Product, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var products []domain.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *GormProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Product{}, id).Error
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error
	return count, err
}

// AddFavorite inserts the favorites row and bumps the denormalized
// favorite_count inside one transaction, so the counter can never drift
// from the rows. A duplicate insert surfaces as gorm.ErrDuplicatedKey.
func (r *GormProductRepository) AddFavorite(ctx context.Context, userID, productID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		favorite := domain.Favorite{UserID: userID, ProductID: productID}
		if err := tx.Create(&favorite).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Product{}).
			Where("id = ?", productID).
			UpdateColumn("favorite_count", gorm.Expr("favorite_count + ?", 1)).Error
	})
}

// RemoveFavorite deletes the favorites row and decrements favorite_count
// in one transaction. Removing a favorite that does not exist returns
// gorm.ErrRecordNotFound.
func (r *GormProductRepository) RemoveFavorite(ctx context.Context, userID, productID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&domain.Favorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&domain.Product{}).
			Where("id = ? AND favorite_count > 0", productID).
			UpdateColumn("favorite_count", gorm.Expr("favorite_count - ?", 1)).Error
	})
}

func (r *GormProductRepository) IsFavorite(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormProductRepository) FindFavoritesByUser(ctx context.Context, userID uint, limit, offset int) ([]domain.Product, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Joins("JOIN favorites ON favorites.product_id = products.id").
		Where("favorites.user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.product_id = products.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var products []domain.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
