package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/boxpack/boxpack/internal/models"
	"github.com/boxpack/boxpack/internal/utils"
)

type MaterialRepository interface {
	CreateMaterial(ctx context.Context, material *models.Material) error
	GetMaterialByID(ctx context.Context, id int64) (*models.Material, error)
	ListMaterials(ctx context.Context, activeOnly bool) ([]models.Material, error)
	UpdateMaterial(ctx context.Context, material *models.Material) error

	CreateThickness(ctx context.Context, thickness *models.MaterialThickness) error
	GetThicknessByID(ctx context.Context, id int64) (*models.MaterialThickness, error)
	ListThicknessesByMaterial(ctx context.Context, materialID int64) ([]models.MaterialThickness, error)
	UpdateThickness(ctx context.Context, thickness *models.MaterialThickness) error
}

type materialRepository struct {
	DB *sql.DB
}

func NewMaterialRepo(db *sql.DB) MaterialRepository {
	return &materialRepository{DB: db}
}

func (r *materialRepository) CreateMaterial(ctx context.Context, material *models.Material) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO materials (name, description, class, base_price, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		material.Name, material.Description, material.Class, material.BasePrice, material.IsActive, material.SortOrder,
	).Scan(&material.ID, &material.CreatedAt, &material.UpdatedAt)
}

func (r *materialRepository) GetMaterialByID(ctx context.Context, id int64) (*models.Material, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, description, class, base_price, is_active, sort_order, created_at, updated_at
		FROM materials
		WHERE id = $1
	`

	material := &models.Material{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&material.ID, &material.Name, &material.Description, &material.Class,
		&material.BasePrice, &material.IsActive, &material.SortOrder,
		&material.CreatedAt, &material.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return material, nil
}

func (r *materialRepository) ListMaterials(ctx context.Context, activeOnly bool) ([]models.Material, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, description, class, base_price, is_active, sort_order, created_at, updated_at
		FROM materials
		WHERE ($1 = false OR is_active = true)
		ORDER BY sort_order, id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}
	defer rows.Close()

	var materials []models.Material

	for rows.Next() {
		var m models.Material

		if err := rows.Scan(
			&m.ID, &m.Name, &m.Description, &m.Class,
			&m.BasePrice, &m.IsActive, &m.SortOrder,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		materials = append(materials, m)
	}

	return materials, rows.Err()
}

func (r *materialRepository) UpdateMaterial(ctx context.Context, material *models.Material) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE materials
		SET name = $1, description = $2, class = $3, base_price = $4, is_active = $5, sort_order = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		material.Name, material.Description, material.Class, material.BasePrice,
		material.IsActive, material.SortOrder, material.ID,
	).Scan(&material.UpdatedAt)
}

func (r *materialRepository) CreateThickness(ctx context.Context, thickness *models.MaterialThickness) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO material_thicknesses (material_id, thickness_mm, price, sheet_size, is_available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		thickness.MaterialID, thickness.ThicknessMM, thickness.Price, thickness.SheetSize, thickness.IsAvailable,
	).Scan(&thickness.ID, &thickness.CreatedAt, &thickness.UpdatedAt)
}

func (r *materialRepository) GetThicknessByID(ctx context.Context, id int64) (*models.MaterialThickness, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, material_id, thickness_mm, price, sheet_size, is_available, created_at, updated_at
		FROM material_thicknesses
		WHERE id = $1
	`

	thickness := &models.MaterialThickness{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&thickness.ID, &thickness.MaterialID, &thickness.ThicknessMM, &thickness.Price,
		&thickness.SheetSize, &thickness.IsAvailable, &thickness.CreatedAt, &thickness.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return thickness, nil
}

func (r *materialRepository) ListThicknessesByMaterial(ctx context.Context, materialID int64) ([]models.MaterialThickness, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, material_id, thickness_mm, price, sheet_size, is_available, created_at, updated_at
		FROM material_thicknesses
		WHERE material_id = $1
		ORDER BY thickness_mm
	`

	rows, err := r.DB.QueryContext(dbCtx, query, materialID)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}
	defer rows.Close()

	var thicknesses []models.MaterialThickness

	for rows.Next() {
		var th models.MaterialThickness

		if err := rows.Scan(
			&th.ID, &th.MaterialID, &th.ThicknessMM, &th.Price,
			&th.SheetSize, &th.IsAvailable, &th.CreatedAt, &th.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		thicknesses = append(thicknesses, th)
	}

	return thicknesses, rows.Err()
}

func (r *materialRepository) UpdateThickness(ctx context.Context, thickness *models.MaterialThickness) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE material_thicknesses
		SET price = $1, sheet_size = $2, is_available = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		thickness.Price, thickness.SheetSize, thickness.IsAvailable, thickness.ID,
	).Scan(&thickness.UpdatedAt)
}
