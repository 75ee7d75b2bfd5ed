//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/metrics"
	"github.com/pandamarket/api/internal/user/delivery/http"
	"github.com/pandamarket/api/internal/user/domain"
	"github.com/pandamarket/api/internal/user/repository"
)

// ProvideUserRepository provides the traced user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepositoryWithTracing(db)
}

// InitializeHandler wires the user HTTP handler with all dependencies
func InitializeHandler(db *gorm.DB, m *metrics.Metrics) (*http.UserHandler, error) {
	wire.Build(
		ProvideUserRepository,
		http.NewUserHandler,
	)
	return nil, nil
}
