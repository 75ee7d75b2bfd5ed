package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/user/domain"
)

// MemoryUserRepository is an in-memory UserRepository used in tests. It
// mirrors the GORM implementation's behavior, including unique email and
// nickname enforcement via gorm.ErrDuplicatedKey.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[uint]*domain.User
	nextID uint
}

// NewMemoryUserRepository creates an empty in-memory user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[uint]*domain.User), nextID: 1}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email || u.Nickname == user.Nickname {
			return fmt.Errorf("failed to create user: %w", gorm.ErrDuplicatedKey)
		}
	}

	user.ID = r.nextID
	r.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("failed to find user: %w", gorm.ErrRecordNotFound)
	}
	found := *u
	return &found, nil
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, fmt.Errorf("failed to find user: %w", gorm.ErrRecordNotFound)
}

func (r *MemoryUserRepository) FindByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Nickname == nickname {
			found := *u
			return &found, nil
		}
	}
	return nil, fmt.Errorf("failed to find user: %w", gorm.ErrRecordNotFound)
}

func (r *MemoryUserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("failed to update user: %w", gorm.ErrRecordNotFound)
	}
	user.UpdatedAt = time.Now()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *MemoryUserRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}
