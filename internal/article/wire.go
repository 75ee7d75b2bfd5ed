//go:build wireinject
// +build wireinject

package article

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/article/delivery/http"
	"github.com/pandamarket/api/internal/article/domain"
	"github.com/pandamarket/api/internal/article/repository"
	"github.com/pandamarket/api/internal/metrics"
)

// ProvideArticleRepository provides the article repository
func ProvideArticleRepository(db *gorm.DB) domain.ArticleRepository {
	return repository.NewGormArticleRepository(db)
}

// InitializeHandler wires the article HTTP handler with all dependencies
func InitializeHandler(db *gorm.DB, m *metrics.Metrics) (*http.ArticleHandler, error) {
	wire.Build(
		ProvideArticleRepository,
		http.NewArticleHandler,
	)
	return nil, nil
}
