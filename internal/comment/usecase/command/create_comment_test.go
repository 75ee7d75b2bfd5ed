package command

import (
	"context"
	"net/http"
	"testing"

	articledomain "github.com/pandamarket/api/internal/article/domain"
	articlerepository "github.com/pandamarket/api/internal/article/repository"
	"github.com/pandamarket/api/internal/comment/repository"
	productdomain "github.com/pandamarket/api/internal/product/domain"
	productrepository "github.com/pandamarket/api/internal/product/repository"
	"github.com/pandamarket/api/pkg/apperr"
)

func newCreateHandler(t *testing.T) (*CreateCommentHandler, *productdomain.Product, *articledomain.Article) {
	t.Helper()
	ctx := context.Background()

	products := productrepository.NewMemoryProductRepository()
	product := &productdomain.Product{Name: "인형", Description: "설명", Price: 1000, UserID: 1, Writer: "판다"}
	if err := products.Create(ctx, product); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	articles := articlerepository.NewMemoryArticleRepository()
	article := &articledomain.Article{Title: "제목", Content: "내용", UserID: 1, Writer: "판다"}
	if err := articles.Create(ctx, article); err != nil {
		t.Fatalf("seed article: %v", err)
	}

	h := NewCreateCommentHandler(repository.NewMemoryCommentRepository(), products, articles)
	return h, product, article
}

func TestCreateCommentRequiresContent(t *testing.T) {
	h, product, _ := newCreateHandler(t)

	_, err := h.Handle(context.Background(), CreateCommentCommand{UserID: 2, ProductID: &product.ID})
	if apperr.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("got %v, want 400", err)
	}
	if err.Error() != "댓글 내용은 필수값입니다." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestCreateCommentOnProduct(t *testing.T) {
	h, product, _ := newCreateHandler(t)

	comment, err := h.Handle(context.Background(), CreateCommentCommand{
		Content:   "관심 있어요.",
		UserID:    2,
		Writer:    "곰",
		ProductID: &product.ID,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if comment.ProductID == nil || *comment.ProductID != product.ID {
		t.Error("ProductID not set on product comment")
	}
	if comment.ArticleID != nil {
		t.Error("ArticleID set on product comment")
	}
	if comment.Writer != "곰" {
		t.Errorf("Writer = %q", comment.Writer)
	}
}

func TestCreateCommentOnArticle(t *testing.T) {
	h, _, article := newCreateHandler(t)

	comment, err := h.Handle(context.Background(), CreateCommentCommand{
		Content:   "공감합니다.",
		UserID:    2,
		Writer:    "곰",
		ArticleID: &article.ID,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if comment.ArticleID == nil || *comment.ArticleID != article.ID {
		t.Error("ArticleID not set on article comment")
	}
	if comment.ProductID != nil {
		t.Error("ProductID set on article comment")
	}
}

func TestCreateCommentUnknownParent(t *testing.T) {
	h, _, _ := newCreateHandler(t)
	missing := uint(999)

	_, err := h.Handle(context.Background(), CreateCommentCommand{Content: "내용", UserID: 2, ProductID: &missing})
	if apperr.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("product parent: got %v, want 404", err)
	}
	if err.Error() != "존재하지 않는 상품입니다." {
		t.Errorf("message = %q", err.Error())
	}

	_, err = h.Handle(context.Background(), CreateCommentCommand{Content: "내용", UserID: 2, ArticleID: &missing})
	if apperr.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("article parent: got %v, want 404", err)
	}
	if err.Error() != "존재하지 않는 게시글입니다." {
		t.Errorf("message = %q", err.Error())
	}
}
