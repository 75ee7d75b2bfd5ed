package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/comment/domain"
)

type GormCommentRepository struct {
	db *gorm.DB
}

func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *GormCommentRepository) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *GormCommentRepository) findPage(ctx context.Context, parent string, parentID, cursor uint, limit int) ([]domain.Comment, error) {
	q := r.db.WithContext(ctx).Where(parent+" = ?", parentID)
	if cursor > 0 {
		q = q.Where("id < ?", cursor)
	}
	q = q.Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var comments []domain.Comment
	if err := q.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *GormCommentRepository) FindByProduct(ctx context.Context, productID uint, cursor uint, limit int) ([]domain.Comment, error) {
	return r.findPage(ctx, "product_id", productID, cursor, limit)
}

func (r *GormCommentRepository) FindByArticle(ctx context.Context, articleID uint, cursor uint, limit int) ([]domain.Comment, error) {
	return r.findPage(ctx, "article_id", articleID, cursor, limit)
}

func (r *GormCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *GormCommentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Comment{}, id).Error
}
