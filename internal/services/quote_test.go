package service_test

import (
	"context"
	"database/sql"
	"testing"

	appErrors "github.com/boxpack/boxpack/internal/errors"
	"github.com/boxpack/boxpack/internal/models"
	"github.com/boxpack/boxpack/internal/repositories/mocks"
	service "github.com/boxpack/boxpack/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuoteFixtures() (*mocks.MaterialRepository, *mocks.OptionRepository, service.QuoteService) {
	materials := new(mocks.MaterialRepository)
	options := new(mocks.OptionRepository)

	return materials, options, service.NewQuoteService(materials, options)
}

func lauanMaterial() *models.Material {
	return &models.Material{ID: 1, Name: "Lauan plywood", Class: models.MaterialClassLauan, IsActive: true}
}

func lauanThickness() *models.MaterialThickness {
	return &models.MaterialThickness{ID: 2, MaterialID: 1, ThicknessMM: 9, Price: 10.5, IsAvailable: true}
}

func TestPriceQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - breakdown for plain box", func(t *testing.T) {
		materials, _, quotes := newQuoteFixtures()

		materials.On("GetMaterialByID", ctx, int64(1)).Return(lauanMaterial(), nil).Once()
		materials.On("GetThicknessByID", ctx, int64(2)).Return(lauanThickness(), nil).Once()

		resp, err := quotes.PriceQuote(ctx, &models.PriceQuoteRequest{
			WidthMM: 500, DepthMM: 400, HeightMM: 303,
			MaterialID: 1, ThicknessID: 2, Quantity: 1,
		})

		require.NoError(t, err)
		require.NotNil(t, resp.Breakdown)

		// (500+400+303) * 10.5 = 12631.5, VAT 1263, total 13895
		assert.Equal(t, 12631.5, resp.Breakdown.MaterialCost)
		assert.Equal(t, float64(1263), resp.Breakdown.VAT)
		assert.Equal(t, float64(13895), resp.Breakdown.TotalPrice)
		assert.Empty(t, resp.Warnings)
		materials.AssertExpectations(t)
	})

	t.Run("Success - advisory warning when two sides exceed the sheet", func(t *testing.T) {
		materials, _, quotes := newQuoteFixtures()

		materials.On("GetMaterialByID", ctx, int64(1)).Return(lauanMaterial(), nil).Once()
		materials.On("GetThicknessByID", ctx, int64(2)).Return(lauanThickness(), nil).Once()

		resp, err := quotes.PriceQuote(ctx, &models.PriceQuoteRequest{
			WidthMM: 1300, DepthMM: 1300, HeightMM: 400,
			MaterialID: 1, ThicknessID: 2, Quantity: 1,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Warnings)
		assert.NotNil(t, resp.Breakdown)
	})

	t.Run("Failure - material not found", func(t *testing.T) {
		materials, _, quotes := newQuoteFixtures()

		materials.On("GetMaterialByID", ctx, int64(99)).Return(nil, sql.ErrNoRows).Once()

		resp, err := quotes.PriceQuote(ctx, &models.PriceQuoteRequest{
			WidthMM: 500, DepthMM: 400, HeightMM: 300,
			MaterialID: 99, ThicknessID: 2, Quantity: 1,
		})

		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Failure - thickness of a different material", func(t *testing.T) {
		materials, _, quotes := newQuoteFixtures()

		other := lauanThickness()
		other.MaterialID = 7

		materials.On("GetMaterialByID", ctx, int64(1)).Return(lauanMaterial(), nil).Once()
		materials.On("GetThicknessByID", ctx, int64(2)).Return(other, nil).Once()

		resp, err := quotes.PriceQuote(ctx, &models.PriceQuoteRequest{
			WidthMM: 500, DepthMM: 400, HeightMM: 300,
			MaterialID: 1, ThicknessID: 2, Quantity: 1,
		})

		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})

	t.Run("Failure - oversized dimension maps to its own code", func(t *testing.T) {
		materials, _, quotes := newQuoteFixtures()

		materials.On("GetMaterialByID", ctx, int64(1)).Return(lauanMaterial(), nil).Once()
		materials.On("GetThicknessByID", ctx, int64(2)).Return(lauanThickness(), nil).Once()

		resp, err := quotes.PriceQuote(ctx, &models.PriceQuoteRequest{
			WidthMM: 3000, DepthMM: 400, HeightMM: 300,
			MaterialID: 1, ThicknessID: 2, Quantity: 1,
		})

		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDimensionTooLarge, appErr.Code)
	})

	t.Run("Failure - two express selections rejected", func(t *testing.T) {
		materials, options, quotes := newQuoteFixtures()

		materials.On("GetMaterialByID", ctx, int64(1)).Return(lauanMaterial(), nil).Once()
		materials.On("GetThicknessByID", ctx, int64(2)).Return(lauanThickness(), nil).Once()

		options.On("GetOptionByID", ctx, int64(10)).
			Return(&models.Option{ID: 10, Name: "Express", OptionType: models.OptionTypeExpress, IsActive: true}, nil).Once()
		options.On("GetOptionByID", ctx, int64(11)).
			Return(&models.Option{ID: 11, Name: "Express rush", OptionType: models.OptionTypeExpress, IsActive: true}, nil).Once()

		resp, err := quotes.PriceQuote(ctx, &models.PriceQuoteRequest{
			WidthMM: 500, DepthMM: 400, HeightMM: 300,
			MaterialID: 1, ThicknessID: 2, Quantity: 1,
			Options: []models.QuoteOptionRequest{
				{OptionID: 10, Quantity: 1},
				{OptionID: 11, Quantity: 1},
			},
		})

		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})
}

func TestBuildSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - re-adding an option merges into one selection", func(t *testing.T) {
		materials, options, quotes := newQuoteFixtures()

		materials.On("GetMaterialByID", ctx, int64(1)).Return(lauanMaterial(), nil).Once()
		materials.On("GetThicknessByID", ctx, int64(2)).Return(lauanThickness(), nil).Once()
		options.On("GetOptionByID", ctx, int64(5)).
			Return(&models.Option{ID: 5, Name: "Handle", OptionType: models.OptionTypeHandle, Price: 250, IsActive: true}, nil).Once()

		snapshot, err := quotes.BuildSnapshot(ctx, &models.PriceQuoteRequest{
			WidthMM: 500, DepthMM: 400, HeightMM: 300,
			MaterialID: 1, ThicknessID: 2, Quantity: 1,
			Options: []models.QuoteOptionRequest{
				{OptionID: 5, Quantity: 2},
				{OptionID: 5, Quantity: 1},
			},
		})

		require.NoError(t, err)
		require.Len(t, snapshot.SelectedOptions, 1)
		assert.Equal(t, 3, snapshot.SelectedOptions[0].Quantity)
		assert.Equal(t, float64(250*3), snapshot.Breakdown.OptionsCost)
		options.AssertExpectations(t)
	})

	t.Run("Success - fitting positions derived from dimensions", func(t *testing.T) {
		materials, options, quotes := newQuoteFixtures()

		materials.On("GetMaterialByID", ctx, int64(1)).Return(lauanMaterial(), nil).Once()
		materials.On("GetThicknessByID", ctx, int64(2)).Return(lauanThickness(), nil).Once()
		options.On("GetOptionByID", ctx, int64(6)).
			Return(&models.Option{ID: 6, Name: "Buckle", OptionType: models.OptionTypeBuckle, Price: 120, IsActive: true}, nil).Once()

		snapshot, err := quotes.BuildSnapshot(ctx, &models.PriceQuoteRequest{
			WidthMM: 1000, DepthMM: 400, HeightMM: 300,
			MaterialID: 1, ThicknessID: 2, Quantity: 1,
			Options: []models.QuoteOptionRequest{
				{OptionID: 6, Quantity: 1, FittingDistanceWidth: 100, FittingCountWidth: 3},
			},
		})

		require.NoError(t, err)
		require.Len(t, snapshot.SelectedOptions, 1)
		assert.Equal(t, []float64{100, 500, 900}, snapshot.SelectedOptions[0].FittingPositionsWidth)
	})

	t.Run("Success - bend-buckle positions recomputed per group", func(t *testing.T) {
		materials, _, quotes := newQuoteFixtures()

		materials.On("GetMaterialByID", ctx, int64(1)).Return(lauanMaterial(), nil).Once()
		materials.On("GetThicknessByID", ctx, int64(2)).Return(lauanThickness(), nil).Once()

		cfg := &models.BendBuckleConfig{
			Top: models.BendBuckleGroup{
				Enabled: true,
				Edge1:   models.BendBuckleEdge{FirstDistance: 100, Count: 2},
			},
		}

		snapshot, err := quotes.BuildSnapshot(ctx, &models.PriceQuoteRequest{
			WidthMM: 1000, DepthMM: 400, HeightMM: 300,
			MaterialID: 1, ThicknessID: 2, Quantity: 1,
			BendBuckle: cfg,
		})

		require.NoError(t, err)
		require.NotNil(t, snapshot.BendBuckle)
		// Edge1 of the top group spans the width.
		assert.Equal(t, []float64{100, 900}, snapshot.BendBuckle.Top.Edge1.Positions)
		// The request config is cloned, not mutated.
		assert.Nil(t, cfg.Top.Edge1.Positions)
	})

	t.Run("Failure - inactive option rejected", func(t *testing.T) {
		materials, options, quotes := newQuoteFixtures()

		materials.On("GetMaterialByID", ctx, int64(1)).Return(lauanMaterial(), nil).Once()
		materials.On("GetThicknessByID", ctx, int64(2)).Return(lauanThickness(), nil).Once()
		options.On("GetOptionByID", ctx, int64(5)).
			Return(&models.Option{ID: 5, Name: "Handle", OptionType: models.OptionTypeHandle, IsActive: false}, nil).Once()

		snapshot, err := quotes.BuildSnapshot(ctx, &models.PriceQuoteRequest{
			WidthMM: 500, DepthMM: 400, HeightMM: 300,
			MaterialID: 1, ThicknessID: 2, Quantity: 1,
			Options: []models.QuoteOptionRequest{{OptionID: 5, Quantity: 1}},
		})

		assert.Nil(t, snapshot)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})
}
