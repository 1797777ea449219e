package mocks

import (
	"context"

	"github.com/boxpack/boxpack/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MaterialRepository struct {
	mock.Mock
}

func (m *MaterialRepository) CreateMaterial(ctx context.Context, material *models.Material) error {
	args := m.Called(ctx, material)

	return args.Error(0)
}

func (m *MaterialRepository) GetMaterialByID(ctx context.Context, id int64) (*models.Material, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Material), args.Error(1)
}

func (m *MaterialRepository) ListMaterials(ctx context.Context, activeOnly bool) ([]models.Material, error) {
	args := m.Called(ctx, activeOnly)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Material), args.Error(1)
}

func (m *MaterialRepository) UpdateMaterial(ctx context.Context, material *models.Material) error {
	args := m.Called(ctx, material)

	return args.Error(0)
}

func (m *MaterialRepository) CreateThickness(ctx context.Context, thickness *models.MaterialThickness) error {
	args := m.Called(ctx, thickness)

	return args.Error(0)
}

func (m *MaterialRepository) GetThicknessByID(ctx context.Context, id int64) (*models.MaterialThickness, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.MaterialThickness), args.Error(1)
}

func (m *MaterialRepository) ListThicknessesByMaterial(ctx context.Context, materialID int64) ([]models.MaterialThickness, error) {
	args := m.Called(ctx, materialID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.MaterialThickness), args.Error(1)
}

func (m *MaterialRepository) UpdateThickness(ctx context.Context, thickness *models.MaterialThickness) error {
	args := m.Called(ctx, thickness)

	return args.Error(0)
}

type OptionRepository struct {
	mock.Mock
}

func (m *OptionRepository) CreateOption(ctx context.Context, option *models.Option) error {
	args := m.Called(ctx, option)

	return args.Error(0)
}

func (m *OptionRepository) GetOptionByID(ctx context.Context, id int64) (*models.Option, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Option), args.Error(1)
}

func (m *OptionRepository) ListOptions(ctx context.Context, activeOnly bool) ([]models.Option, error) {
	args := m.Called(ctx, activeOnly)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Option), args.Error(1)
}

func (m *OptionRepository) UpdateOption(ctx context.Context, option *models.Option) error {
	args := m.Called(ctx, option)

	return args.Error(0)
}

type CartRepository struct {
	mock.Mock
}

func (m *CartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {
	args := m.Called(ctx, cart)

	return args.Error(0)
}

func (m *CartRepository) GetCartByUserID(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, userID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartRepository) UpdateCart(ctx context.Context, cart *models.Cart) error {
	args := m.Called(ctx, cart)

	return args.Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *OrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *OrderRepository) GetOrderByPaymentIntentID(ctx context.Context, paymentIntentID string) (*models.Order, error) {
	args := m.Called(ctx, paymentIntentID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *OrderRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error) {
	args := m.Called(ctx, userID, page, size)

	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]models.Order), args.Int(1), args.Error(2)
}

func (m *OrderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

func (m *OrderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus, paymentIntentID string) error {
	args := m.Called(ctx, id, status, paymentIntentID)

	return args.Error(0)
}

type InventoryRepository struct {
	mock.Mock
}

func (m *InventoryRepository) CreateMovement(ctx context.Context, movement *models.StockMovement) error {
	args := m.Called(ctx, movement)

	return args.Error(0)
}

func (m *InventoryRepository) ListMovementsByMaterial(ctx context.Context, materialID int64, page, size int) ([]models.StockMovement, int, error) {
	args := m.Called(ctx, materialID, page, size)

	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]models.StockMovement), args.Int(1), args.Error(2)
}
