package listing

import (
	"context"
	"fmt"

	"github.com/pc-store/internal/model"
)

// ProductStore is the slice of the product store the listing service
// needs: one page of matches and the total match count.
type ProductStore interface {
	FindPage(ctx context.Context, q Query) ([]model.Product, error)
	Count(ctx context.Context, q Query) (int, error)
}

// Service executes listing queries and composes the paginated
// response envelope.
type Service struct {
	store ProductStore
}

func NewService(store ProductStore) *Service {
	return &Service{store: store}
}

// List runs the query against the store. The match count is taken
// independently of skip/limit.
//
// When the requested page is empty the envelope reports status=false
// and zeroed totals even if other pages would match. Clients key off
// this exact shape, so it is kept as-is.
func (s *Service) List(ctx context.Context, q Query) (*model.ProductList, error) {
	total, err := s.store.Count(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	products, err := s.store.FindPage(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	if len(products) == 0 {
		return &model.ProductList{
			Status: false,
			Error:  "No products found",
			Data:   []model.Product{},
			Pagination: model.Pagination{
				CurrentPage:     q.Page,
				TotalPages:      0,
				TotalProducts:   0,
				ProductsPerPage: q.Limit,
			},
		}, nil
	}

	totalPages := (total + q.Limit - 1) / q.Limit

	return &model.ProductList{
		Status: true,
		Data:   products,
		Pagination: model.Pagination{
			CurrentPage:     q.Page,
			TotalPages:      totalPages,
			TotalProducts:   total,
			ProductsPerPage: q.Limit,
		},
	}, nil
}
