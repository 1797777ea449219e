package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/boxpack/boxpack/internal/models"
	"github.com/boxpack/boxpack/internal/utils"
	"github.com/google/uuid"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetOrderByPaymentIntentID(ctx context.Context, paymentIntentID string) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus, paymentIntentID string) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	addressJSON, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping address: %w", err)
	}

	orderQuery := `
		INSERT INTO orders (id, user_id, status, total_amount, payment_status, payment_intent_id, shipping_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	if err := tx.QueryRowContext(dbCtx, orderQuery,
		order.ID, order.UserID, order.Status, order.TotalAmount,
		order.PaymentStatus, order.PaymentIntentID, addressJSON,
	).Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, snapshot, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	for i := range order.Items {
		item := &order.Items[i]

		snapshotJSON, err := json.Marshal(item.Snapshot)
		if err != nil {
			return fmt.Errorf("failed to marshal order item snapshot: %w", err)
		}

		if err := tx.QueryRowContext(dbCtx, itemQuery,
			item.ID, order.ID, snapshotJSON, item.Quantity, item.UnitPrice,
		).Scan(&item.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, status, total_amount, payment_status, payment_intent_id, shipping_address, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	order := &models.Order{}

	var addressJSON []byte

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&order.ID, &order.UserID, &order.Status, &order.TotalAmount,
		&order.PaymentStatus, &order.PaymentIntentID, &addressJSON,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	if len(addressJSON) > 0 {
		if err := json.Unmarshal(addressJSON, &order.ShippingAddress); err != nil {
			return nil, fmt.Errorf("failed to unmarshal shipping address: %w", err)
		}
	}

	items, err := r.listOrderItems(dbCtx, id)
	if err != nil {
		return nil, err
	}

	order.Items = items

	return order, nil
}

func (r *orderRepository) GetOrderByPaymentIntentID(ctx context.Context, paymentIntentID string) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var id uuid.UUID

	err := r.DB.QueryRowContext(dbCtx, `SELECT id FROM orders WHERE payment_intent_id = $1`, paymentIntentID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return r.GetOrderByID(ctx, id)
}

func (r *orderRepository) listOrderItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	query := `
		SELECT id, order_id, snapshot, quantity, unit_price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}
	defer rows.Close()

	var items []models.OrderItem

	for rows.Next() {
		var item models.OrderItem

		var snapshotJSON []byte

		if err := rows.Scan(&item.ID, &item.OrderID, &snapshotJSON, &item.Quantity, &item.UnitPrice, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		if err := json.Unmarshal(snapshotJSON, &item.Snapshot); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order item snapshot: %w", err)
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting orders: %w", err)
	}

	query := `
		SELECT id, user_id, status, total_amount, payment_status, payment_intent_id, shipping_address, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID, size, (page-1)*size)
	if err != nil {
		return nil, 0, fmt.Errorf("querying database: %w", err)
	}
	defer rows.Close()

	var orders []models.Order

	for rows.Next() {
		var order models.Order

		var addressJSON []byte

		if err := rows.Scan(
			&order.ID, &order.UserID, &order.Status, &order.TotalAmount,
			&order.PaymentStatus, &order.PaymentIntentID, &addressJSON,
			&order.CreatedAt, &order.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning row: %w", err)
		}

		if len(addressJSON) > 0 {
			if err := json.Unmarshal(addressJSON, &order.ShippingAddress); err != nil {
				return nil, 0, fmt.Errorf("failed to unmarshal shipping address: %w", err)
			}
		}

		orders = append(orders, order)
	}

	return orders, total, rows.Err()
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus, paymentIntentID string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`UPDATE orders SET payment_status = $1, payment_intent_id = $2, updated_at = NOW() WHERE id = $3`,
		status, paymentIntentID, id,
	)
	if err != nil {
		return fmt.Errorf("updating payment status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
