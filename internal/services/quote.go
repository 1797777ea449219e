package service

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/boxpack/boxpack/internal/errors"
	"github.com/boxpack/boxpack/internal/models"
	"github.com/boxpack/boxpack/internal/pricing"
	repository "github.com/boxpack/boxpack/internal/repositories"
)

type QuoteService interface {
	PriceQuote(ctx context.Context, req *models.PriceQuoteRequest) (*models.PriceQuoteResponse, error)
	BuildSnapshot(ctx context.Context, req *models.PriceQuoteRequest) (*models.QuoteSnapshot, error)
}

type quoteService struct {
	materials repository.MaterialRepository
	options   repository.OptionRepository
}

func NewQuoteService(materials repository.MaterialRepository, options repository.OptionRepository) QuoteService {
	return &quoteService{materials: materials, options: options}
}

// PriceQuote produces a live breakdown plus advisory sheet warnings while a
// quote is being edited. Warnings never block; hard validation failures do.
func (s *quoteService) PriceQuote(ctx context.Context, req *models.PriceQuoteRequest) (*models.PriceQuoteResponse, error) {
	snapshot, err := s.BuildSnapshot(ctx, req)
	if err != nil {
		return nil, err
	}

	warnings := pricing.CheckSheetConstraints(snapshot.Material.Class, req.WidthMM, req.DepthMM, req.HeightMM)

	return &models.PriceQuoteResponse{
		Breakdown:       &snapshot.Breakdown,
		Warnings:        warnings,
		SelectedOptions: snapshot.SelectedOptions,
		BendBuckle:      snapshot.BendBuckle,
	}, nil
}

// BuildSnapshot resolves catalog records, derives every fitting and
// bend-buckle position for the current dimensions, prices the configuration
// and freezes the result. The cart service commits the returned snapshot
// as-is; nothing is re-derived from live catalog data afterwards.
func (s *quoteService) BuildSnapshot(ctx context.Context, req *models.PriceQuoteRequest) (*models.QuoteSnapshot, error) {
	material, err := s.materials.GetMaterialByID(ctx, req.MaterialID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Material not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to load material").WithError(err)
	}

	if !material.IsActive {
		return nil, appErrors.BadRequestError("Material is not available")
	}

	thickness, err := s.materials.GetThicknessByID(ctx, req.ThicknessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Thickness not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to load thickness").WithError(err)
	}

	if thickness.MaterialID != material.ID {
		return nil, appErrors.BadRequestError("Thickness does not belong to the selected material")
	}

	if !thickness.IsAvailable {
		return nil, appErrors.BadRequestError("Thickness is not available")
	}

	selections, err := s.resolveSelections(ctx, req.Options)
	if err != nil {
		return nil, err
	}

	for i := range selections {
		pricing.RecomputeOptionFittings(&selections[i], req.WidthMM, req.DepthMM, req.HeightMM)
	}

	bendBuckle := cloneBendBuckle(req.BendBuckle)
	pricing.RecomputeBendBuckle(bendBuckle, req.WidthMM, req.DepthMM, req.HeightMM)

	breakdown, err := pricing.Calculate(pricing.QuoteInput{
		WidthMM:         req.WidthMM,
		DepthMM:         req.DepthMM,
		HeightMM:        req.HeightMM,
		Material:        material,
		Thickness:       thickness,
		SelectedOptions: selections,
		Quantity:        req.Quantity,
	})
	if err != nil {
		return nil, mapPricingError(err)
	}

	return &models.QuoteSnapshot{
		WidthMM:         req.WidthMM,
		DepthMM:         req.DepthMM,
		HeightMM:        req.HeightMM,
		Material:        *material,
		Thickness:       *thickness,
		SelectedOptions: selections,
		Quantity:        req.Quantity,
		Breakdown:       *breakdown,
		BendBuckle:      bendBuckle,
	}, nil
}

// resolveSelections loads the referenced options and merges duplicate ids:
// selecting an already-selected option increments its quantity instead of
// duplicating the entry.
func (s *quoteService) resolveSelections(ctx context.Context, reqs []models.QuoteOptionRequest) ([]models.SelectedOption, error) {
	var selections []models.SelectedOption

	index := make(map[int64]int, len(reqs))

	for _, optReq := range reqs {
		if pos, ok := index[optReq.OptionID]; ok {
			selections[pos].Quantity += optReq.Quantity

			continue
		}

		option, err := s.options.GetOptionByID(ctx, optReq.OptionID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.NotFoundError("Option not found").WithError(err)
			}

			return nil, appErrors.DatabaseError("Failed to load option").WithError(err)
		}

		if !option.IsActive {
			return nil, appErrors.BadRequestError("Option is not available: " + option.Name)
		}

		selections = append(selections, models.SelectedOption{
			OptionID:   option.ID,
			Name:       option.Name,
			OptionType: option.OptionType,
			Price:      option.Price,
			Quantity:   optReq.Quantity,

			ReinforcementLength: optReq.ReinforcementLength,
			ReinforcementWidth:  optReq.ReinforcementWidth,

			FittingDistanceWidth:  optReq.FittingDistanceWidth,
			FittingDistanceDepth:  optReq.FittingDistanceDepth,
			FittingDistanceHeight: optReq.FittingDistanceHeight,

			FittingCountWidth:  optReq.FittingCountWidth,
			FittingCountDepth:  optReq.FittingCountDepth,
			FittingCountHeight: optReq.FittingCountHeight,
		})

		index[option.ID] = len(selections) - 1
	}

	return selections, nil
}

func cloneBendBuckle(cfg *models.BendBuckleConfig) *models.BendBuckleConfig {
	if cfg == nil {
		return nil
	}

	clone := *cfg

	return &clone
}

func mapPricingError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrInvalidDimension):
		return appErrors.InvalidDimensionError("Dimensions must be positive").WithError(err)
	case errors.Is(err, pricing.ErrDimensionTooLarge):
		return appErrors.DimensionTooLargeError("Dimensions exceed the maximum crate size").WithError(err)
	case errors.Is(err, pricing.ErrIncompleteQuote):
		return appErrors.IncompleteQuoteError("Quote is missing required selections").WithError(err)
	case errors.Is(err, pricing.ErrDuplicateExpress):
		return appErrors.BadRequestError("Only one express option can be selected").WithError(err)
	case errors.Is(err, pricing.ErrDuplicateOption):
		return appErrors.BadRequestError("Option selected more than once").WithError(err)
	default:
		return appErrors.InternalError("Failed to compute price").WithError(err)
	}
}
