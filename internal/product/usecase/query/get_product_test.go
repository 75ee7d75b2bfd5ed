package query

import (
	"context"
	"net/http"
	"testing"

	"github.com/pandamarket/api/internal/product/repository"
	"github.com/pandamarket/api/pkg/apperr"
)

func TestGetProductDetail(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	ids := seedProducts(t, repo, 1, 1)
	ctx := context.Background()

	if err := repo.AddFavorite(ctx, 5, ids[0]); err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}

	h := NewGetProductHandler(repo)

	detail, err := h.Handle(ctx, GetProductQuery{ID: ids[0], UserID: 5})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !detail.IsFavorite {
		t.Error("IsFavorite = false for favoriting user")
	}
	if detail.FavoriteCount != 1 {
		t.Errorf("FavoriteCount = %d, want 1", detail.FavoriteCount)
	}

	detail, err = h.Handle(ctx, GetProductQuery{ID: ids[0], UserID: 6})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if detail.IsFavorite {
		t.Error("IsFavorite = true for user who never favorited")
	}
}

func TestGetProductAnonymous(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	ids := seedProducts(t, repo, 1, 1)
	h := NewGetProductHandler(repo)

	detail, err := h.Handle(context.Background(), GetProductQuery{ID: ids[0]})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if detail.IsFavorite {
		t.Error("IsFavorite = true for anonymous request")
	}
}

func TestGetUnknownProduct(t *testing.T) {
	h := NewGetProductHandler(repository.NewMemoryProductRepository())

	_, err := h.Handle(context.Background(), GetProductQuery{ID: 999})
	if apperr.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("got %v, want 404", err)
	}
	if err.Error() != "존재하지 않는 상품입니다." {
		t.Errorf("message = %q", err.Error())
	}
}
