package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pc-store/internal/listing"
	"github.com/pc-store/internal/model"
)

const productColumns = `id, name, category, image, description, price, status, rating, created_at, updated_at`

type ProductRepository struct {
	db *Database
}

func NewProductRepository(db *Database) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	status := req.Status
	if status == "" {
		status = "In Stock"
	}

	var product model.Product
	query := `
		INSERT INTO products (name, category, image, description, price, status, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + productColumns
	err := r.db.QueryRowxContext(ctx, query,
		req.Name, req.Category, req.Image, req.Description, req.Price, status, req.Rating).
		StructScan(&product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &product, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	var product model.Product
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	err := r.db.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// FindPage returns one page of matches, newest first.
func (r *ProductRepository) FindPage(ctx context.Context, q listing.Query) ([]model.Product, error) {
	where, args := listingFilter(q)

	query := fmt.Sprintf(
		`SELECT `+productColumns+` FROM products%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	args = append(args, q.Limit, q.Skip())

	products := []model.Product{}
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	return products, nil
}

// Count returns the number of matches, ignoring pagination.
func (r *ProductRepository) Count(ctx context.Context, q listing.Query) (int, error) {
	where, args := listingFilter(q)

	var count int
	query := `SELECT COUNT(*) FROM products` + where
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// listingFilter builds the WHERE clause for a listing query. Patterns
// arrive pre-escaped, so ILIKE matches them literally.
func listingFilter(q listing.Query) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if p := q.NamePattern(); p != "" {
		args = append(args, p)
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if p := q.CategoryPattern(); p != "" {
		args = append(args, p)
		conds = append(conds, fmt.Sprintf("category ILIKE $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// EstimatedCount reads the planner's row estimate instead of scanning
// the table, mirroring a document store's estimated count.
func (r *ProductRepository) EstimatedCount(ctx context.Context) (int, error) {
	var count int
	query := `SELECT reltuples::bigint FROM pg_class WHERE relname = 'products'`
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to estimate product count: %w", err)
	}
	if count < 0 {
		count = 0
	}
	return count, nil
}

// FindAll returns the full catalog, newest first. Used by the admin
// export.
func (r *ProductRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	return products, nil
}

// AddComment appends a comment to a product. Returns ErrNotFound when
// the product does not exist.
func (r *ProductRepository) AddComment(ctx context.Context, productID, body string) error {
	if _, err := uuid.Parse(productID); err != nil {
		return ErrNotFound
	}

	query := `
		INSERT INTO comments (product_id, body)
		SELECT $1, $2 WHERE EXISTS (SELECT 1 FROM products WHERE id = $1)
	`
	result, err := r.db.ExecContext(ctx, query, productID, body)
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *ProductRepository) Comments(ctx context.Context, productID string) ([]model.Comment, error) {
	if _, err := uuid.Parse(productID); err != nil {
		return nil, ErrNotFound
	}

	comments := []model.Comment{}
	query := `SELECT id, product_id, body, created_at FROM comments WHERE product_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &comments, query, productID); err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}
	return comments, nil
}
