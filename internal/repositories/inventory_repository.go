package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/boxpack/boxpack/internal/models"
	"github.com/boxpack/boxpack/internal/utils"
)

type InventoryRepository interface {
	CreateMovement(ctx context.Context, movement *models.StockMovement) error
	ListMovementsByMaterial(ctx context.Context, materialID int64, page, size int) ([]models.StockMovement, int, error)
}

type inventoryRepository struct {
	DB *sql.DB
}

func NewInventoryRepo(db *sql.DB) InventoryRepository {
	return &inventoryRepository{DB: db}
}

func (r *inventoryRepository) CreateMovement(ctx context.Context, movement *models.StockMovement) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO stock_movements (material_id, type, quantity, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		movement.MaterialID, movement.Type, movement.Quantity, movement.Note,
	).Scan(&movement.ID, &movement.CreatedAt)
}

func (r *inventoryRepository) ListMovementsByMaterial(ctx context.Context, materialID int64, page, size int) ([]models.StockMovement, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM stock_movements WHERE material_id = $1`, materialID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting stock movements: %w", err)
	}

	query := `
		SELECT id, material_id, type, quantity, note, created_at
		FROM stock_movements
		WHERE material_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(dbCtx, query, materialID, size, (page-1)*size)
	if err != nil {
		return nil, 0, fmt.Errorf("querying database: %w", err)
	}
	defer rows.Close()

	var movements []models.StockMovement

	for rows.Next() {
		var m models.StockMovement

		if err := rows.Scan(&m.ID, &m.MaterialID, &m.Type, &m.Quantity, &m.Note, &m.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scanning row: %w", err)
		}

		movements = append(movements, m)
	}

	return movements, total, rows.Err()
}
