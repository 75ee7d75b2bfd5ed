package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/article/domain"
)

// MemoryArticleRepository is an in-memory ArticleRepository used in tests.
type MemoryArticleRepository struct {
	mu       sync.RWMutex
	articles map[uint]*domain.Article
	likes    map[[2]uint]struct{} // [userID, articleID]
	nextID   uint
}

// NewMemoryArticleRepository creates an empty in-memory article repository
func NewMemoryArticleRepository() *MemoryArticleRepository {
	return &MemoryArticleRepository{
		articles: make(map[uint]*domain.Article),
		likes:    make(map[[2]uint]struct{}),
		nextID:   1,
	}
}

func (r *MemoryArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	article.ID = r.nextID
	r.nextID++
	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now

	stored := *article
	r.articles[article.ID] = &stored
	return nil
}

func (r *MemoryArticleRepository) FindByID(ctx context.Context, id uint) (*domain.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *a
	return &found, nil
}

func (r *MemoryArticleRepository) FindAll(ctx context.Context, opts domain.ListOptions) ([]domain.Article, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(opts.Keyword)
	var matched []domain.Article
	for _, a := range r.articles {
		if needle == "" ||
			strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.Content), needle) {
			matched = append(matched, *a)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if opts.OrderBy == domain.OrderLike && matched[i].LikeCount != matched[j].LikeCount {
			return matched[i].LikeCount > matched[j].LikeCount
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	if opts.Offset >= len(matched) {
		return []domain.Article{}, total, nil
	}
	matched = matched[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(matched) {
		matched = matched[:opts.Limit]
	}
	return matched, total, nil
}

func (r *MemoryArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[article.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	article.UpdatedAt = time.Now()
	stored := *article
	r.articles[article.ID] = &stored
	return nil
}

func (r *MemoryArticleRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.articles, id)
	return nil
}

func (r *MemoryArticleRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.articles)), nil
}

func (r *MemoryArticleRepository) AddLike(ctx context.Context, userID, articleID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]uint{userID, articleID}
	if _, ok := r.likes[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	a, ok := r.articles[articleID]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	r.likes[key] = struct{}{}
	a.LikeCount++
	return nil
}

func (r *MemoryArticleRepository) RemoveLike(ctx context.Context, userID, articleID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]uint{userID, articleID}
	if _, ok := r.likes[key]; !ok {
		return gorm.ErrRecordNotFound
	}

	delete(r.likes, key)
	if a, ok := r.articles[articleID]; ok && a.LikeCount > 0 {
		a.LikeCount--
	}
	return nil
}

func (r *MemoryArticleRepository) IsLiked(ctx context.Context, userID, articleID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.likes[[2]uint{userID, articleID}]
	return ok, nil
}
