package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strconv"

	"github.com/boxpack/boxpack/internal/cache"
	appErrors "github.com/boxpack/boxpack/internal/errors"
	"github.com/boxpack/boxpack/internal/models"
	repository "github.com/boxpack/boxpack/internal/repositories"
)

// CatalogService serves the material and option catalog. Reads go through
// redis; every write invalidates the affected keys.
type CatalogService interface {
	CreateMaterial(ctx context.Context, req *models.CreateMaterialRequest) (*models.Material, error)
	GetMaterial(ctx context.Context, id int64) (*models.Material, error)
	ListMaterials(ctx context.Context, activeOnly bool) ([]models.Material, error)
	UpdateMaterial(ctx context.Context, id int64, req *models.UpdateMaterialRequest) (*models.Material, error)

	CreateThickness(ctx context.Context, materialID int64, req *models.CreateThicknessRequest) (*models.MaterialThickness, error)
	ListThicknesses(ctx context.Context, materialID int64) ([]models.MaterialThickness, error)
	UpdateThickness(ctx context.Context, id int64, req *models.UpdateThicknessRequest) (*models.MaterialThickness, error)

	CreateOption(ctx context.Context, req *models.CreateOptionRequest) (*models.Option, error)
	GetOption(ctx context.Context, id int64) (*models.Option, error)
	ListOptions(ctx context.Context, activeOnly bool) ([]models.Option, error)
	UpdateOption(ctx context.Context, id int64, req *models.UpdateOptionRequest) (*models.Option, error)
}

type catalogService struct {
	materials repository.MaterialRepository
	options   repository.OptionRepository
	cache     cache.Cache
	logger    *slog.Logger
}

func NewCatalogService(materials repository.MaterialRepository, options repository.OptionRepository, c cache.Cache, logger *slog.Logger) CatalogService {
	return &catalogService{materials: materials, options: options, cache: c, logger: logger}
}

func (s *catalogService) CreateMaterial(ctx context.Context, req *models.CreateMaterialRequest) (*models.Material, error) {
	material := &models.Material{
		Name:        req.Name,
		Class:       models.MaterialClass(req.Class),
		Description: req.Description,
		BasePrice:   req.BasePrice,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}

	if err := s.materials.CreateMaterial(ctx, material); err != nil {
		return nil, appErrors.DatabaseError("Failed to create material").WithError(err)
	}

	s.invalidate(ctx, cache.MaterialListKey)

	return material, nil
}

func (s *catalogService) GetMaterial(ctx context.Context, id int64) (*models.Material, error) {
	key := cache.Key(cache.MaterialKeyPrefix, strconv.FormatInt(id, 10))

	var cached models.Material
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	material, err := s.materials.GetMaterialByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Material not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch material").WithError(err)
	}

	if err := s.cache.Set(ctx, key, material, 0); err != nil {
		s.logger.Warn("failed to cache material", slog.Int64("id", id), slog.Any("error", err))
	}

	return material, nil
}

func (s *catalogService) ListMaterials(ctx context.Context, activeOnly bool) ([]models.Material, error) {
	if activeOnly {
		var cached []models.Material
		if found, err := s.cache.Get(ctx, cache.MaterialListKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	materials, err := s.materials.ListMaterials(ctx, activeOnly)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list materials").WithError(err)
	}

	if activeOnly {
		if err := s.cache.Set(ctx, cache.MaterialListKey, materials, 0); err != nil {
			s.logger.Warn("failed to cache material list", slog.Any("error", err))
		}
	}

	return materials, nil
}

func (s *catalogService) UpdateMaterial(ctx context.Context, id int64, req *models.UpdateMaterialRequest) (*models.Material, error) {
	material, err := s.materials.GetMaterialByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Material not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch material").WithError(err)
	}

	if req.Name != nil {
		material.Name = *req.Name
	}

	if req.Description != nil {
		material.Description = *req.Description
	}

	if req.Class != nil {
		material.Class = models.MaterialClass(*req.Class)
	}

	if req.BasePrice != nil {
		material.BasePrice = *req.BasePrice
	}

	if req.IsActive != nil {
		material.IsActive = *req.IsActive
	}

	if req.SortOrder != nil {
		material.SortOrder = *req.SortOrder
	}

	if err := s.materials.UpdateMaterial(ctx, material); err != nil {
		return nil, appErrors.DatabaseError("Failed to update material").WithError(err)
	}

	s.invalidate(ctx, cache.Key(cache.MaterialKeyPrefix, strconv.FormatInt(id, 10)))
	s.invalidate(ctx, cache.MaterialListKey)

	return material, nil
}

func (s *catalogService) CreateThickness(ctx context.Context, materialID int64, req *models.CreateThicknessRequest) (*models.MaterialThickness, error) {
	if _, err := s.materials.GetMaterialByID(ctx, materialID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Material not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch material").WithError(err)
	}

	thickness := &models.MaterialThickness{
		MaterialID:  materialID,
		ThicknessMM: req.ThicknessMM,
		Price:       req.Price,
		SheetSize:   req.SheetSize,
		IsAvailable: true,
	}

	if err := s.materials.CreateThickness(ctx, thickness); err != nil {
		return nil, appErrors.DatabaseError("Failed to create thickness").WithError(err)
	}

	return thickness, nil
}

func (s *catalogService) ListThicknesses(ctx context.Context, materialID int64) ([]models.MaterialThickness, error) {
	thicknesses, err := s.materials.ListThicknessesByMaterial(ctx, materialID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list thicknesses").WithError(err)
	}

	return thicknesses, nil
}

func (s *catalogService) UpdateThickness(ctx context.Context, id int64, req *models.UpdateThicknessRequest) (*models.MaterialThickness, error) {
	thickness, err := s.materials.GetThicknessByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Thickness not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch thickness").WithError(err)
	}

	if req.Price != nil {
		thickness.Price = *req.Price
	}

	if req.SheetSize != nil {
		thickness.SheetSize = *req.SheetSize
	}

	if req.IsAvailable != nil {
		thickness.IsAvailable = *req.IsAvailable
	}

	if err := s.materials.UpdateThickness(ctx, thickness); err != nil {
		return nil, appErrors.DatabaseError("Failed to update thickness").WithError(err)
	}

	s.invalidate(ctx, cache.Key(cache.ThicknessKeyPrefix, strconv.FormatInt(id, 10)))

	return thickness, nil
}

func (s *catalogService) CreateOption(ctx context.Context, req *models.CreateOptionRequest) (*models.Option, error) {
	option := &models.Option{
		Name:       req.Name,
		OptionType: models.OptionType(req.OptionType),
		Price:      req.Price,
		Unit:       req.Unit,
		SortOrder:  req.SortOrder,
		IsActive:   true,
	}

	if err := s.options.CreateOption(ctx, option); err != nil {
		return nil, appErrors.DatabaseError("Failed to create option").WithError(err)
	}

	s.invalidate(ctx, cache.OptionListKey)

	return option, nil
}

func (s *catalogService) GetOption(ctx context.Context, id int64) (*models.Option, error) {
	key := cache.Key(cache.OptionKeyPrefix, strconv.FormatInt(id, 10))

	var cached models.Option
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	option, err := s.options.GetOptionByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Option not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch option").WithError(err)
	}

	if err := s.cache.Set(ctx, key, option, 0); err != nil {
		s.logger.Warn("failed to cache option", slog.Int64("id", id), slog.Any("error", err))
	}

	return option, nil
}

func (s *catalogService) ListOptions(ctx context.Context, activeOnly bool) ([]models.Option, error) {
	if activeOnly {
		var cached []models.Option
		if found, err := s.cache.Get(ctx, cache.OptionListKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	options, err := s.options.ListOptions(ctx, activeOnly)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list options").WithError(err)
	}

	if activeOnly {
		if err := s.cache.Set(ctx, cache.OptionListKey, options, 0); err != nil {
			s.logger.Warn("failed to cache option list", slog.Any("error", err))
		}
	}

	return options, nil
}

func (s *catalogService) UpdateOption(ctx context.Context, id int64, req *models.UpdateOptionRequest) (*models.Option, error) {
	option, err := s.options.GetOptionByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Option not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch option").WithError(err)
	}

	if req.Name != nil {
		option.Name = *req.Name
	}

	if req.Price != nil {
		option.Price = *req.Price
	}

	if req.Unit != nil {
		option.Unit = *req.Unit
	}

	if req.IsActive != nil {
		option.IsActive = *req.IsActive
	}

	if req.SortOrder != nil {
		option.SortOrder = *req.SortOrder
	}

	if err := s.options.UpdateOption(ctx, option); err != nil {
		return nil, appErrors.DatabaseError("Failed to update option").WithError(err)
	}

	s.invalidate(ctx, cache.Key(cache.OptionKeyPrefix, strconv.FormatInt(id, 10)))
	s.invalidate(ctx, cache.OptionListKey)

	return option, nil
}

func (s *catalogService) invalidate(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to invalidate cache key", slog.String("key", key), slog.Any("error", err))
	}
}
