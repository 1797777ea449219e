package repository

import (
	"database/sql"
	"fmt"

	"github.com/boxpack/boxpack/internal/config"

	_ "github.com/lib/pq"
)

type Repositories struct {
	DB *sql.DB

	Material  MaterialRepository
	Option    OptionRepository
	Cart      CartRepository
	Order     OrderRepository
	Inventory InventoryRepository
}

func New(cfg *config.Config) (*Repositories, error) {
	db, err := sql.Open("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repositories{
		DB:        db,
		Material:  NewMaterialRepo(db),
		Option:    NewOptionRepo(db),
		Cart:      NewCartRepo(db),
		Order:     NewOrderRepo(db),
		Inventory: NewInventoryRepo(db),
	}, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
