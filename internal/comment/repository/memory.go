package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/comment/domain"
)

// MemoryCommentRepository is an in-memory CommentRepository used in tests.
type MemoryCommentRepository struct {
	mu       sync.RWMutex
	comments map[uint]*domain.Comment
	nextID   uint
}

// NewMemoryCommentRepository creates an empty in-memory comment repository
func NewMemoryCommentRepository() *MemoryCommentRepository {
	return &MemoryCommentRepository{
		comments: make(map[uint]*domain.Comment),
		nextID:   1,
	}
}

func (r *MemoryCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment.ID = r.nextID
	r.nextID++
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	stored := *comment
	r.comments[comment.ID] = &stored
	return nil
}

func (r *MemoryCommentRepository) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *c
	return &found, nil
}

func (r *MemoryCommentRepository) findPage(match func(*domain.Comment) bool, cursor uint, limit int) []domain.Comment {
	var page []domain.Comment
	for _, c := range r.comments {
		if !match(c) {
			continue
		}
		if cursor > 0 && c.ID >= cursor {
			continue
		}
		page = append(page, *c)
	}
	sort.Slice(page, func(i, j int) bool { return page[i].ID > page[j].ID })
	if limit > 0 && limit < len(page) {
		page = page[:limit]
	}
	return page
}

func (r *MemoryCommentRepository) FindByProduct(ctx context.Context, productID uint, cursor uint, limit int) ([]domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.findPage(func(c *domain.Comment) bool {
		return c.ProductID != nil && *c.ProductID == productID
	}, cursor, limit), nil
}

func (r *MemoryCommentRepository) FindByArticle(ctx context.Context, articleID uint, cursor uint, limit int) ([]domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.findPage(func(c *domain.Comment) bool {
		return c.ArticleID != nil && *c.ArticleID == articleID
	}, cursor, limit), nil
}

func (r *MemoryCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[comment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	comment.UpdatedAt = time.Now()
	stored := *comment
	r.comments[comment.ID] = &stored
	return nil
}

func (r *MemoryCommentRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.comments, id)
	return nil
}
