//go:build wireinject
// +build wireinject

package product

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/metrics"
	"github.com/pandamarket/api/internal/product/delivery/http"
	"github.com/pandamarket/api/internal/product/domain"
	"github.com/pandamarket/api/internal/product/repository"
)

// ProvideProductRepository provides the traced product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepositoryWithTracing(db)
}

// InitializeHandler wires the product HTTP handler with all dependencies
func InitializeHandler(db *gorm.DB, m *metrics.Metrics) (*http.ProductHandler, error) {
	wire.Build(
		ProvideProductRepository,
		http.NewProductHandler,
	)
	return nil, nil
}
