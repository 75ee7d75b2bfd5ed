package command

import (
	"context"
	"net/http"
	"testing"

	"github.com/pandamarket/api/internal/product/repository"
	"github.com/pandamarket/api/pkg/apperr"
)

func TestFavoriteToggle(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	product := seedProduct(t, repo, 1)
	favorite := NewFavoriteProductHandler(repo)
	unfavorite := NewUnfavoriteProductHandler(repo)
	ctx := context.Background()

	updated, err := favorite.Handle(ctx, FavoriteProductCommand{UserID: 2, ProductID: product.ID})
	if err != nil {
		t.Fatalf("favorite: %v", err)
	}
	if updated.FavoriteCount != 1 {
		t.Errorf("FavoriteCount after favorite = %d, want 1", updated.FavoriteCount)
	}

	favorited, err := repo.IsFavorite(ctx, 2, product.ID)
	if err != nil || !favorited {
		t.Errorf("IsFavorite = %v, %v, want true", favorited, err)
	}

	updated, err = unfavorite.Handle(ctx, UnfavoriteProductCommand{UserID: 2, ProductID: product.ID})
	if err != nil {
		t.Fatalf("unfavorite: %v", err)
	}
	if updated.FavoriteCount != 0 {
		t.Errorf("FavoriteCount after unfavorite = %d, want 0", updated.FavoriteCount)
	}
}

func TestFavoriteTwiceConflicts(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	product := seedProduct(t, repo, 1)
	favorite := NewFavoriteProductHandler(repo)
	ctx := context.Background()

	if _, err := favorite.Handle(ctx, FavoriteProductCommand{UserID: 2, ProductID: product.ID}); err != nil {
		t.Fatalf("first favorite: %v", err)
	}

	_, err := favorite.Handle(ctx, FavoriteProductCommand{UserID: 2, ProductID: product.ID})
	if apperr.StatusOf(err) != http.StatusConflict {
		t.Fatalf("second favorite: got %v, want 409", err)
	}
	if err.Error() != "이미 찜한 상품입니다." {
		t.Errorf("message = %q", err.Error())
	}

	stored, _ := repo.FindByID(ctx, product.ID)
	if stored.FavoriteCount != 1 {
		t.Errorf("FavoriteCount = %d, want 1 after rejected duplicate", stored.FavoriteCount)
	}
}

func TestUnfavoriteWithoutFavorite(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	product := seedProduct(t, repo, 1)
	unfavorite := NewUnfavoriteProductHandler(repo)

	_, err := unfavorite.Handle(context.Background(), UnfavoriteProductCommand{UserID: 2, ProductID: product.ID})
	if apperr.StatusOf(err) != http.StatusConflict {
		t.Fatalf("got %v, want 409", err)
	}
	if err.Error() != "찜하지 않은 상품입니다." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestFavoriteUnknownProduct(t *testing.T) {
	favorite := NewFavoriteProductHandler(repository.NewMemoryProductRepository())

	_, err := favorite.Handle(context.Background(), FavoriteProductCommand{UserID: 2, ProductID: 999})
	if apperr.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("got %v, want 404", err)
	}
	if err.Error() != "존재하지 않는 상품입니다." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestFavoritesAreIndependentPerUser(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	product := seedProduct(t, repo, 1)
	favorite := NewFavoriteProductHandler(repo)
	ctx := context.Background()

	for userID := uint(2); userID <= 4; userID++ {
		if _, err := favorite.Handle(ctx, FavoriteProductCommand{UserID: userID, ProductID: product.ID}); err != nil {
			t.Fatalf("favorite by user %d: %v", userID, err)
		}
	}

	stored, _ := repo.FindByID(ctx, product.ID)
	if stored.FavoriteCount != 3 {
		t.Errorf("FavoriteCount = %d, want 3", stored.FavoriteCount)
	}
}
