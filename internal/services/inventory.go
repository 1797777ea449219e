package service

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/boxpack/boxpack/internal/errors"
	"github.com/boxpack/boxpack/internal/models"
	repository "github.com/boxpack/boxpack/internal/repositories"
)

type InventoryService interface {
	RecordMovement(ctx context.Context, req *models.CreateStockMovementRequest) (*models.StockMovement, error)
	ListMovements(ctx context.Context, materialID int64, page, size int) (*models.StockMovementHistoryResponse, error)
}

type inventoryService struct {
	inventory repository.InventoryRepository
	materials repository.MaterialRepository
}

func NewInventoryService(inventory repository.InventoryRepository, materials repository.MaterialRepository) InventoryService {
	return &inventoryService{inventory: inventory, materials: materials}
}

func (s *inventoryService) RecordMovement(ctx context.Context, req *models.CreateStockMovementRequest) (*models.StockMovement, error) {
	if _, err := s.materials.GetMaterialByID(ctx, req.MaterialID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Material not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch material").WithError(err)
	}

	movement := &models.StockMovement{
		MaterialID: req.MaterialID,
		Type:       models.MovementType(req.Type),
		Quantity:   req.Quantity,
		Note:       req.Note,
	}

	if err := s.inventory.CreateMovement(ctx, movement); err != nil {
		return nil, appErrors.DatabaseError("Failed to record stock movement").WithError(err)
	}

	return movement, nil
}

func (s *inventoryService) ListMovements(ctx context.Context, materialID int64, page, size int) (*models.StockMovementHistoryResponse, error) {
	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 20
	}

	movements, total, err := s.inventory.ListMovementsByMaterial(ctx, materialID, page, size)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list stock movements").WithError(err)
	}

	return &models.StockMovementHistoryResponse{
		Movements: movements,
		Total:     total,
		Page:      page,
		Size:      size,
	}, nil
}
