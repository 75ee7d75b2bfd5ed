package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/product/domain"
)

// MemoryProductRepository is an in-memory ProductRepository used in tests.
// It mirrors the GORM implementation's behavior: favorite bookkeeping is
// atomic under its lock, double favorites fail with gorm.ErrDuplicatedKey
// and removing an absent favorite fails with gorm.ErrRecordNotFound.
type MemoryProductRepository struct {
	mu        sync.RWMutex
	products  map[uint]*domain.Product
	favorites map[[2]uint]time.Time // [userID, productID] -> created at
	nextID    uint
}

// NewMemoryProductRepository creates an empty in-memory product repository
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products:  make(map[uint]*domain.Product),
		favorites: make(map[[2]uint]time.Time),
		nextID:    1,
	}
}

func (r *MemoryProductRepository) Create(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	stored := *product
	r.products[product.ID] = &stored
	return nil
}

func (r *MemoryProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *p
	return &found, nil
}

func matchesKeyword(p *domain.Product, keyword string) bool {
	if keyword == "" {
		return true
	}
	needle := strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

func paginate(products []domain.Product, limit, offset int) []domain.Product {
	if offset >= len(products) {
		return []domain.Product{}
	}
	products = products[offset:]
	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}
	return products
}

func (r *MemoryProductRepository) FindAll(ctx context.Context, opts domain.ListOptions) ([]domain.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.Product
	for _, p := range r.products {
		if matchesKeyword(p, opts.Keyword) {
			matched = append(matched, *p)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if opts.OrderBy == domain.OrderFavorite {
			if matched[i].FavoriteCount != matched[j].FavoriteCount {
				return matched[i].FavoriteCount > matched[j].FavoriteCount
			}
		} else if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	return paginate(matched, opts.Limit, opts.Offset), total, nil
}

func (r *MemoryProductRepository) FindByUser(ctx context.Context, userID uint, limit, offset int) ([]domain.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var owned []domain.Product
	for _, p := range r.products {
		if p.UserID == userID {
			owned = append(owned, *p)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID > owned[j].ID })

	return paginate(owned, limit, offset), int64(len(owned)), nil
}

func (r *MemoryProductRepository) Update(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	product.UpdatedAt = time.Now()
	stored := *product
	r.products[product.ID] = &stored
	return nil
}

func (r *MemoryProductRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
	return nil
}

func (r *MemoryProductRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

func (r *MemoryProductRepository) AddFavorite(ctx context.Context, userID, productID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]uint{userID, productID}
	if _, ok := r.favorites[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	p, ok := r.products[productID]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	r.favorites[key] = time.Now()
	p.FavoriteCount++
	return nil
}

func (r *MemoryProductRepository) RemoveFavorite(ctx context.Context, userID, productID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]uint{userID, productID}
	if _, ok := r.favorites[key]; !ok {
		return gorm.ErrRecordNotFound
	}

	delete(r.favorites, key)
	if p, ok := r.products[productID]; ok && p.FavoriteCount > 0 {
		p.FavoriteCount--
	}
	return nil
}

func (r *MemoryProductRepository) IsFavorite(ctx context.Context, userID, productID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.favorites[[2]uint{userID, productID}]
	return ok, nil
}

func (r *MemoryProductRepository) FindFavoritesByUser(ctx context.Context, userID uint, limit, offset int) ([]domain.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type picked struct {
		product domain.Product
		at      time.Time
	}
	var picks []picked
	for key, at := range r.favorites {
		if key[0] != userID {
			continue
		}
		if p, ok := r.products[key[1]]; ok {
			picks = append(picks, picked{product: *p, at: at})
		}
	}
	sort.Slice(picks, func(i, j int) bool { return picks[i].at.After(picks[j].at) })

	products := make([]domain.Product, 0, len(picks))
	for _, pk := range picks {
		products = append(products, pk.product)
	}
	return paginate(products, limit, offset), int64(len(products)), nil
}
