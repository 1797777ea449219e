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

type CartRepository interface {
	CreateCart(ctx context.Context, cart *models.Cart) error
	GetCartByUserID(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	UpdateCart(ctx context.Context, cart *models.Cart) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	linesJSON, err := json.Marshal(cart.Lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart lines: %w", err)
	}

	query := `
		INSERT INTO carts (id, user_id, lines, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, cart.ID, cart.UserID, linesJSON, cart.TotalAmount).
		Scan(&cart.ID, &cart.CreatedAt, &cart.UpdatedAt)
}

func (r *cartRepository) GetCartByUserID(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, lines, total_amount, created_at, updated_at
		FROM carts
		WHERE user_id = $1
	`

	cart := &models.Cart{}

	var linesJSON []byte

	err := r.DB.QueryRowContext(dbCtx, query, userID).Scan(
		&cart.ID, &cart.UserID, &linesJSON, &cart.TotalAmount, &cart.CreatedAt, &cart.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	if len(linesJSON) > 0 {
		if err := json.Unmarshal(linesJSON, &cart.Lines); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cart lines: %w", err)
		}
	}

	return cart, nil
}

func (r *cartRepository) UpdateCart(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	linesJSON, err := json.Marshal(cart.Lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart lines: %w", err)
	}

	query := `
		UPDATE carts
		SET lines = $1, total_amount = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, linesJSON, cart.TotalAmount, cart.ID).Scan(&cart.UpdatedAt)
}
