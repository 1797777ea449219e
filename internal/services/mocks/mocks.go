package mocks

import (
	"context"

	"github.com/boxpack/boxpack/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type QuoteService struct {
	mock.Mock
}

func (m *QuoteService) PriceQuote(ctx context.Context, req *models.PriceQuoteRequest) (*models.PriceQuoteResponse, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.PriceQuoteResponse), args.Error(1)
}

func (m *QuoteService) BuildSnapshot(ctx context.Context, req *models.PriceQuoteRequest) (*models.QuoteSnapshot, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.QuoteSnapshot), args.Error(1)
}

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) CreateMaterial(ctx context.Context, req *models.CreateMaterialRequest) (*models.Material, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Material), args.Error(1)
}

func (m *CatalogService) GetMaterial(ctx context.Context, id int64) (*models.Material, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Material), args.Error(1)
}

func (m *CatalogService) ListMaterials(ctx context.Context, activeOnly bool) ([]models.Material, error) {
	args := m.Called(ctx, activeOnly)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Material), args.Error(1)
}

func (m *CatalogService) UpdateMaterial(ctx context.Context, id int64, req *models.UpdateMaterialRequest) (*models.Material, error) {
	args := m.Called(ctx, id, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Material), args.Error(1)
}

func (m *CatalogService) CreateThickness(ctx context.Context, materialID int64, req *models.CreateThicknessRequest) (*models.MaterialThickness, error) {
	args := m.Called(ctx, materialID, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.MaterialThickness), args.Error(1)
}

func (m *CatalogService) ListThicknesses(ctx context.Context, materialID int64) ([]models.MaterialThickness, error) {
	args := m.Called(ctx, materialID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.MaterialThickness), args.Error(1)
}

func (m *CatalogService) UpdateThickness(ctx context.Context, id int64, req *models.UpdateThicknessRequest) (*models.MaterialThickness, error) {
	args := m.Called(ctx, id, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.MaterialThickness), args.Error(1)
}

func (m *CatalogService) CreateOption(ctx context.Context, req *models.CreateOptionRequest) (*models.Option, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Option), args.Error(1)
}

func (m *CatalogService) GetOption(ctx context.Context, id int64) (*models.Option, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Option), args.Error(1)
}

func (m *CatalogService) ListOptions(ctx context.Context, activeOnly bool) ([]models.Option, error) {
	args := m.Called(ctx, activeOnly)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Option), args.Error(1)
}

func (m *CatalogService) UpdateOption(ctx context.Context, id int64, req *models.UpdateOptionRequest) (*models.Option, error) {
	args := m.Called(ctx, id, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Option), args.Error(1)
}

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, userID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) AddLine(ctx context.Context, userID uuid.UUID, req *models.AddCartLineRequest) (*models.Cart, error) {
	args := m.Called(ctx, userID, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) UpdateLineQuantity(ctx context.Context, userID uuid.UUID, req *models.UpdateLineQuantityRequest) (*models.Cart, error) {
	args := m.Called(ctx, userID, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) RemoveLine(ctx context.Context, userID uuid.UUID, lineID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, userID, lineID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

type OrderService struct {
	mock.Mock
}

func (m *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID, email string, req *models.CreateOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, userID, email, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *OrderService) GetOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, userID, orderID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *OrderService) ListOrders(ctx context.Context, userID uuid.UUID, page, size int) (*models.OrderHistoryResponse, error) {
	args := m.Called(ctx, userID, page, size)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.OrderHistoryResponse), args.Error(1)
}

func (m *OrderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, orderID, status)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *OrderService) HandlePaymentSucceeded(ctx context.Context, paymentIntentID string) error {
	args := m.Called(ctx, paymentIntentID)

	return args.Error(0)
}

func (m *OrderService) HandlePaymentFailed(ctx context.Context, paymentIntentID string) error {
	args := m.Called(ctx, paymentIntentID)

	return args.Error(0)
}

type InventoryService struct {
	mock.Mock
}

func (m *InventoryService) RecordMovement(ctx context.Context, req *models.CreateStockMovementRequest) (*models.StockMovement, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.StockMovement), args.Error(1)
}

func (m *InventoryService) ListMovements(ctx context.Context, materialID int64, page, size int) (*models.StockMovementHistoryResponse, error) {
	args := m.Called(ctx, materialID, page, size)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.StockMovementHistoryResponse), args.Error(1)
}
