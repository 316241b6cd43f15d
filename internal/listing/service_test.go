package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/pc-store/internal/model"
)

type stubStore struct {
	products []model.Product
	total    int
	findErr  error
	countErr error

	lastQuery Query
}

func (s *stubStore) FindPage(ctx context.Context, q Query) ([]model.Product, error) {
	s.lastQuery = q
	return s.products, s.findErr
}

func (s *stubStore) Count(ctx context.Context, q Query) (int, error) {
	return s.total, s.countErr
}

func makeProducts(n int, category string) []model.Product {
	products := make([]model.Product, n)
	for i := range products {
		products[i] = model.Product{Name: "product", Category: category}
	}
	return products
}

func TestListPagination(t *testing.T) {
	// 15 matches in the store, page 1 holds 10.
	store := &stubStore{products: makeProducts(10, "CPU"), total: 15}
	svc := NewService(store)

	q := BuildQuery("1", "10", "", "CPU")
	result, err := svc.List(context.Background(), q)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if !result.Status {
		t.Error("status = false, want true")
	}
	if len(result.Data) != 10 {
		t.Errorf("len(data) = %d, want 10", len(result.Data))
	}
	pg := result.Pagination
	if pg.CurrentPage != 1 {
		t.Errorf("currentPage = %d, want 1", pg.CurrentPage)
	}
	if pg.TotalPages != 2 {
		t.Errorf("totalPages = %d, want 2", pg.TotalPages)
	}
	if pg.TotalProducts != 15 {
		t.Errorf("totalProducts = %d, want 15", pg.TotalProducts)
	}
	if pg.ProductsPerPage != 10 {
		t.Errorf("productsPerPage = %d, want 10", pg.ProductsPerPage)
	}
}

func TestListExactPageBoundary(t *testing.T) {
	store := &stubStore{products: makeProducts(10, "GPU"), total: 20}
	svc := NewService(store)

	result, err := svc.List(context.Background(), Query{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Pagination.TotalPages != 2 {
		t.Errorf("totalPages = %d, want 2", result.Pagination.TotalPages)
	}
	if result.Pagination.CurrentPage != 2 {
		t.Errorf("currentPage = %d, want 2", result.Pagination.CurrentPage)
	}
}

func TestListEmptyZeroesTotals(t *testing.T) {
	// The store would report 12 matches overall, but the requested page
	// is empty. The envelope intentionally zeroes the totals.
	store := &stubStore{products: nil, total: 12}
	svc := NewService(store)

	result, err := svc.List(context.Background(), Query{Page: 5, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if result.Status {
		t.Error("status = true, want false")
	}
	if result.Data == nil || len(result.Data) != 0 {
		t.Errorf("data = %v, want empty non-nil slice", result.Data)
	}
	pg := result.Pagination
	if pg.TotalPages != 0 || pg.TotalProducts != 0 {
		t.Errorf("totals = (%d, %d), want zeroed", pg.TotalPages, pg.TotalProducts)
	}
	if pg.CurrentPage != 5 {
		t.Errorf("currentPage = %d, want 5", pg.CurrentPage)
	}
	if pg.ProductsPerPage != 10 {
		t.Errorf("productsPerPage = %d, want 10", pg.ProductsPerPage)
	}
}

func TestListCountError(t *testing.T) {
	store := &stubStore{countErr: errors.New("connection refused")}
	svc := NewService(store)

	result, err := svc.List(context.Background(), Query{Page: 1, Limit: 10})
	if err == nil {
		t.Fatal("List: want error")
	}
	if result != nil {
		t.Errorf("result = %v, want nil on store fault", result)
	}
}

func TestListFindError(t *testing.T) {
	store := &stubStore{total: 3, findErr: errors.New("connection reset")}
	svc := NewService(store)

	if _, err := svc.List(context.Background(), Query{Page: 1, Limit: 10}); err == nil {
		t.Fatal("List: want error")
	}
}

func TestListPassesQueryThrough(t *testing.T) {
	store := &stubStore{products: makeProducts(1, "CPU"), total: 1}
	svc := NewService(store)

	q := BuildQuery("2", "5", "ryzen", "CPU")
	if _, err := svc.List(context.Background(), q); err != nil {
		t.Fatalf("List: %v", err)
	}

	got := store.lastQuery
	if got.Page != 2 || got.Limit != 5 {
		t.Errorf("query page/limit = %d/%d, want 2/5", got.Page, got.Limit)
	}
	if got.Search != "ryzen" || got.Category != "CPU" {
		t.Errorf("query filters = %q/%q, want ryzen/CPU", got.Search, got.Category)
	}
}
