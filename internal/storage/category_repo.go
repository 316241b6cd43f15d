package storage

import (
	"context"
	"fmt"

	"github.com/pc-store/internal/model"
)

type CategoryRepository struct {
	db *Database
}

func NewCategoryRepository(db *Database) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	query := `SELECT id, name, image, product_count, created_at FROM categories ORDER BY name`
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}
	return categories, nil
}

// RefreshProductCounts recomputes per-category product counts from the
// products table. Categories with no products are zeroed.
func (r *CategoryRepository) RefreshProductCounts(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE categories SET product_count = 0`); err != nil {
		return fmt.Errorf("failed to reset category counts: %w", err)
	}

	query := `
		UPDATE categories c SET product_count = sub.cnt
		FROM (SELECT category, COUNT(*) AS cnt FROM products GROUP BY category) sub
		WHERE sub.category = c.name
	`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to refresh category counts: %w", err)
	}

	return nil
}
