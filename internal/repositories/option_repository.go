package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/boxpack/boxpack/internal/models"
	"github.com/boxpack/boxpack/internal/utils"
)

type OptionRepository interface {
	CreateOption(ctx context.Context, option *models.Option) error
	GetOptionByID(ctx context.Context, id int64) (*models.Option, error)
	ListOptions(ctx context.Context, activeOnly bool) ([]models.Option, error)
	UpdateOption(ctx context.Context, option *models.Option) error
}

type optionRepository struct {
	DB *sql.DB
}

func NewOptionRepo(db *sql.DB) OptionRepository {
	return &optionRepository{DB: db}
}

func (r *optionRepository) CreateOption(ctx context.Context, option *models.Option) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO options (name, price, option_type, unit, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		option.Name, option.Price, option.OptionType, option.Unit, option.IsActive, option.SortOrder,
	).Scan(&option.ID, &option.CreatedAt, &option.UpdatedAt)
}

func (r *optionRepository) GetOptionByID(ctx context.Context, id int64) (*models.Option, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, price, option_type, unit, is_active, sort_order, created_at, updated_at
		FROM options
		WHERE id = $1
	`

	option := &models.Option{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&option.ID, &option.Name, &option.Price, &option.OptionType,
		&option.Unit, &option.IsActive, &option.SortOrder,
		&option.CreatedAt, &option.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return option, nil
}

func (r *optionRepository) ListOptions(ctx context.Context, activeOnly bool) ([]models.Option, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, price, option_type, unit, is_active, sort_order, created_at, updated_at
		FROM options
		WHERE ($1 = false OR is_active = true)
		ORDER BY sort_order, id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}
	defer rows.Close()

	var options []models.Option

	for rows.Next() {
		var o models.Option

		if err := rows.Scan(
			&o.ID, &o.Name, &o.Price, &o.OptionType,
			&o.Unit, &o.IsActive, &o.SortOrder,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		options = append(options, o)
	}

	return options, rows.Err()
}

func (r *optionRepository) UpdateOption(ctx context.Context, option *models.Option) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE options
		SET name = $1, price = $2, unit = $3, is_active = $4, sort_order = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		option.Name, option.Price, option.Unit, option.IsActive, option.SortOrder, option.ID,
	).Scan(&option.UpdatedAt)
}
