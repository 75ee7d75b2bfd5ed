package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/pandamarket/api/internal/product/domain"
)

var tracer = otel.Tracer("product-repository")

// GormProductRepositoryWithTracing wraps GormProductRepository, recording
// one span per repository call.
type GormProductRepositoryWithTracing struct {
	*GormProductRepository
}

// NewGormProductRepositoryWithTracing creates a traced product repository
func NewGormProductRepositoryWithTracing(db *gorm.DB) *GormProductRepositoryWithTracing {
	return &GormProductRepositoryWithTracing{
		GormProductRepository: NewGormProductRepository(db),
	}
}

func (r *GormProductRepositoryWithTracing) Create(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("product.name", product.Name),
			attribute.Int64("product.price", product.Price),
			attribute.Int("product.user_id", int(product.UserID)),
		),
	)
	defer span.End()

	if err := r.GormProductRepository.Create(ctx, product); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	return nil
}

func (r *GormProductRepositoryWithTracing) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	product, err := r.GormProductRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.name", product.Name),
		attribute.Int64("product.favorite_count", product.FavoriteCount),
	)
	return product, nil
}

func (r *GormProductRepositoryWithTracing) FindAll(ctx context.Context, opts domain.ListOptions) ([]domain.Product, int64, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.String("query.keyword", opts.Keyword),
			attribute.String("query.order_by", opts.OrderBy),
			attribute.Int("query.limit", opts.Limit),
			attribute.Int("query.offset", opts.Offset),
		),
	)
	defer span.End()

	products, total, err := r.GormProductRepository.FindAll(ctx, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetAttributes(
		attribute.Int("result.count", len(products)),
		attribute.Int64("result.total", total),
	)
	return products, total, nil
}

func (r *GormProductRepositoryWithTracing) FindByUser(ctx context.Context, userID uint, limit, offset int) ([]domain.Product, int64, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByUser",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	products, total, err := r.GormProductRepository.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, total, nil
}

func (r *GormProductRepositoryWithTracing) Update(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("product.id", int(product.ID)),
			attribute.String("product.name", product.Name),
		),
	)
	defer span.End()

	if err := r.GormProductRepository.Update(ctx, product); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *GormProductRepositoryWithTracing) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	if err := r.GormProductRepository.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *GormProductRepositoryWithTracing) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.Count")
	defer span.End()

	count, err := r.GormProductRepository.Count(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}

func (r *GormProductRepositoryWithTracing) AddFavorite(ctx context.Context, userID, productID uint) error {
	ctx, span := tracer.Start(ctx, "repository.AddFavorite",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.Int("product.id", int(productID)),
		),
	)
	defer span.End()

	if err := r.GormProductRepository.AddFavorite(ctx, userID, productID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *GormProductRepositoryWithTracing) RemoveFavorite(ctx context.Context, userID, productID uint) error {
	ctx, span := tracer.Start(ctx, "repository.RemoveFavorite",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.Int("product.id", int(productID)),
		),
	)
	defer span.End()

	if err := r.GormProductRepository.RemoveFavorite(ctx, userID, productID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *GormProductRepositoryWithTracing) IsFavorite(ctx context.Context, userID, productID uint) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.IsFavorite",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.Int("product.id", int(productID)),
		),
	)
	defer span.End()

	favorited, err := r.GormProductRepository.IsFavorite(ctx, userID, productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}

	span.SetAttributes(attribute.Bool("result.favorited", favorited))
	return favorited, nil
}

func (r *GormProductRepositoryWithTracing) FindFavoritesByUser(ctx context.Context, userID uint, limit, offset int) ([]domain.Product, int64, error) {
	ctx, span := tracer.Start(ctx, "repository.FindFavoritesByUser",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	products, total, err := r.GormProductRepository.FindFavoritesByUser(ctx, userID, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, total, nil
}
