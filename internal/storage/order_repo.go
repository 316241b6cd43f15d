package storage

import (
	"context"
	"fmt"

	"github.com/pc-store/internal/model"
)

type OrderRepository struct {
	db *Database
}

func NewOrderRepository(db *Database) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, email string, req *model.PlaceOrderRequest) (*model.Order, error) {
	var order model.Order
	query := `
		INSERT INTO orders (email, items, total, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, items, total, status, created_at
	`
	err := r.db.QueryRowxContext(ctx, query, email, model.OrderItems(req.Items), req.Total, model.OrderStatusPending).
		StructScan(&order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &order, nil
}

func (r *OrderRepository) FindByEmail(ctx context.Context, email string) ([]model.Order, error) {
	orders := []model.Order{}
	query := `SELECT id, email, items, total, status, created_at FROM orders WHERE email = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &orders, query, email); err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	return orders, nil
}
