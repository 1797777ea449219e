package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	appErrors "github.com/boxpack/boxpack/internal/errors"
	"github.com/boxpack/boxpack/internal/models"
	"github.com/boxpack/boxpack/internal/repositories/mocks"
	service "github.com/boxpack/boxpack/internal/services"
	serviceMocks "github.com/boxpack/boxpack/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCartFixtures() (*mocks.CartRepository, *serviceMocks.QuoteService, service.CartService) {
	cartRepo := new(mocks.CartRepository)
	quotes := new(serviceMocks.QuoteService)

	return cartRepo, quotes, service.NewCartService(cartRepo, quotes)
}

func sampleSnapshot(total float64) *models.QuoteSnapshot {
	return &models.QuoteSnapshot{
		WidthMM:  600,
		DepthMM:  400,
		HeightMM: 400,
		Material: models.Material{ID: 1, Name: "Lauan plywood", Class: models.MaterialClassLauan},
		Thickness: models.MaterialThickness{
			ID: 2, MaterialID: 1, ThicknessMM: 9, Price: 10.5,
		},
		Quantity:  1,
		Breakdown: models.PriceBreakdown{TotalPrice: total},
	}
}

func sampleQuoteRequest() models.PriceQuoteRequest {
	return models.PriceQuoteRequest{
		WidthMM: 600, DepthMM: 400, HeightMM: 400,
		MaterialID: 1, ThicknessID: 2, Quantity: 1,
	}
}

func TestAddLine(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success - identical configurations become distinct lines", func(t *testing.T) {
		cartRepo, quotes, cartService := newCartFixtures()

		existing := &models.Cart{ID: uuid.New(), UserID: userID}
		cartRepo.On("GetCartByUserID", ctx, userID).Return(existing, nil).Twice()
		cartRepo.On("UpdateCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Twice()

		req := &models.AddCartLineRequest{Quote: sampleQuoteRequest()}
		quotes.On("BuildSnapshot", ctx, &req.Quote).Return(sampleSnapshot(13895), nil).Twice()

		first, err := cartService.AddLine(ctx, userID, req)
		assert.NoError(t, err)
		assert.Len(t, first.Lines, 1)

		second, err := cartService.AddLine(ctx, userID, req)
		assert.NoError(t, err)
		assert.Len(t, second.Lines, 2)

		assert.NotEqual(t, second.Lines[0].ID, second.Lines[1].ID)
		assert.Equal(t, float64(13895*2), second.TotalAmount)
		cartRepo.AssertExpectations(t)
		quotes.AssertExpectations(t)
	})

	t.Run("Success - creates cart on first use", func(t *testing.T) {
		cartRepo, quotes, cartService := newCartFixtures()

		cartRepo.On("GetCartByUserID", ctx, userID).Return(nil, sql.ErrNoRows).Once()
		cartRepo.On("CreateCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()
		cartRepo.On("UpdateCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()

		req := &models.AddCartLineRequest{Quote: sampleQuoteRequest()}
		quotes.On("BuildSnapshot", ctx, &req.Quote).Return(sampleSnapshot(5000), nil).Once()

		cart, err := cartService.AddLine(ctx, userID, req)

		assert.NoError(t, err)
		assert.Equal(t, userID, cart.UserID)
		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, 1, cart.Lines[0].Quantity)
		assert.Equal(t, float64(5000), cart.TotalAmount)
		cartRepo.AssertExpectations(t)
	})

	t.Run("Failure - incomplete quote is rejected", func(t *testing.T) {
		cartRepo, quotes, cartService := newCartFixtures()

		cartRepo.On("GetCartByUserID", ctx, userID).Return(&models.Cart{ID: uuid.New(), UserID: userID}, nil).Once()

		req := &models.AddCartLineRequest{Quote: sampleQuoteRequest()}
		quotes.On("BuildSnapshot", ctx, &req.Quote).
			Return(nil, appErrors.IncompleteQuoteError("Quote is missing required selections")).Once()

		cart, err := cartService.AddLine(ctx, userID, req)

		assert.Error(t, err)
		assert.Nil(t, cart)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeIncompleteQuote, appErr.Code)
		cartRepo.AssertExpectations(t)
	})
}

func TestUpdateLineQuantity(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success - quantity change refolds the total", func(t *testing.T) {
		cartRepo, _, cartService := newCartFixtures()

		lineID := uuid.New()
		existing := &models.Cart{
			ID:     uuid.New(),
			UserID: userID,
			Lines: []models.CartLine{
				{ID: lineID, Snapshot: *sampleSnapshot(13895), Quantity: 1},
				{ID: uuid.New(), Snapshot: *sampleSnapshot(5000), Quantity: 2},
			},
		}

		cartRepo.On("GetCartByUserID", ctx, userID).Return(existing, nil).Once()
		cartRepo.On("UpdateCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()

		cart, err := cartService.UpdateLineQuantity(ctx, userID, &models.UpdateLineQuantityRequest{
			LineID:   lineID,
			Quantity: 3,
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, cart.Lines[0].Quantity)
		assert.Equal(t, float64(13895*3+5000*2), cart.TotalAmount)
		cartRepo.AssertExpectations(t)
	})

	t.Run("Success - zero quantity removes the line", func(t *testing.T) {
		cartRepo, _, cartService := newCartFixtures()

		lineID := uuid.New()
		keptID := uuid.New()
		existing := &models.Cart{
			ID:     uuid.New(),
			UserID: userID,
			Lines: []models.CartLine{
				{ID: lineID, Snapshot: *sampleSnapshot(13895), Quantity: 1},
				{ID: keptID, Snapshot: *sampleSnapshot(5000), Quantity: 1},
			},
		}

		cartRepo.On("GetCartByUserID", ctx, userID).Return(existing, nil).Once()
		cartRepo.On("UpdateCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()

		cart, err := cartService.UpdateLineQuantity(ctx, userID, &models.UpdateLineQuantityRequest{
			LineID:   lineID,
			Quantity: 0,
		})

		assert.NoError(t, err)
		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, keptID, cart.Lines[0].ID)
		assert.Equal(t, float64(5000), cart.TotalAmount)
		cartRepo.AssertExpectations(t)
	})

	t.Run("Failure - unknown line", func(t *testing.T) {
		cartRepo, _, cartService := newCartFixtures()

		cartRepo.On("GetCartByUserID", ctx, userID).Return(&models.Cart{ID: uuid.New(), UserID: userID}, nil).Once()

		cart, err := cartService.UpdateLineQuantity(ctx, userID, &models.UpdateLineQuantityRequest{
			LineID:   uuid.New(),
			Quantity: 2,
		})

		assert.Error(t, err)
		assert.Nil(t, cart)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestRemoveLine(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		cartRepo, _, cartService := newCartFixtures()

		lineID := uuid.New()
		existing := &models.Cart{
			ID:     uuid.New(),
			UserID: userID,
			Lines:  []models.CartLine{{ID: lineID, Snapshot: *sampleSnapshot(13895), Quantity: 1}},
		}

		cartRepo.On("GetCartByUserID", ctx, userID).Return(existing, nil).Once()
		cartRepo.On("UpdateCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()

		cart, err := cartService.RemoveLine(ctx, userID, lineID)

		assert.NoError(t, err)
		assert.Empty(t, cart.Lines)
		assert.Equal(t, float64(0), cart.TotalAmount)
		cartRepo.AssertExpectations(t)
	})

	t.Run("Failure - database error fetching cart", func(t *testing.T) {
		cartRepo, _, cartService := newCartFixtures()

		dbError := errors.New("database connection failed")
		cartRepo.On("GetCartByUserID", ctx, userID).Return(nil, dbError).Once()

		cart, err := cartService.RemoveLine(ctx, userID, uuid.New())

		assert.Error(t, err)
		assert.Nil(t, cart)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		assert.ErrorIs(t, err, dbError)
	})
}

func TestFoldCartTotal(t *testing.T) {
	lines := []models.CartLine{
		{Snapshot: *sampleSnapshot(13895), Quantity: 2},
		{Snapshot: *sampleSnapshot(5000), Quantity: 1},
		{Snapshot: *sampleSnapshot(320), Quantity: 10},
	}

	assert.Equal(t, float64(13895*2+5000+320*10), service.FoldCartTotal(lines))
	assert.Equal(t, float64(0), service.FoldCartTotal(nil))
}
