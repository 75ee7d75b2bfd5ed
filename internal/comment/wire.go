//go:build wireinject
// +build wireinject

package comment

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	articledomain "github.com/pandamarket/api/internal/article/domain"
	articlerepository "github.com/pandamarket/api/internal/article/repository"
	"github.com/pandamarket/api/internal/comment/delivery/http"
	"github.com/pandamarket/api/internal/comment/domain"
	"github.com/pandamarket/api/internal/comment/repository"
	productdomain "github.com/pandamarket/api/internal/product/domain"
	productrepository "github.com/pandamarket/api/internal/product/repository"
)

// ProvideCommentRepository provides the comment repository
func ProvideCommentRepository(db *gorm.DB) domain.CommentRepository {
	return repository.NewGormCommentRepository(db)
}

// ProvideProductRepository provides the product repository used for parent checks
func ProvideProductRepository(db *gorm.DB) productdomain.ProductRepository {
	return productrepository.NewGormProductRepositoryWithTracing(db)
}

// ProvideArticleRepository provides the article repository used for parent checks
func ProvideArticleRepository(db *gorm.DB) articledomain.ArticleRepository {
	return articlerepository.NewGormArticleRepository(db)
}

// InitializeHandler wires the comment HTTP handler with all dependencies
func InitializeHandler(db *gorm.DB) (*http.CommentHandler, error) {
	wire.Build(
		ProvideCommentRepository,
		ProvideProductRepository,
		ProvideArticleRepository,
		http.NewCommentHandler,
	)
	return nil, nil
}
