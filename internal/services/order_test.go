package service_test

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"

	appErrors "github.com/boxpack/boxpack/internal/errors"
	"github.com/boxpack/boxpack/internal/models"
	"github.com/boxpack/boxpack/internal/repositories/mocks"
	service "github.com/boxpack/boxpack/internal/services"
	serviceMocks "github.com/boxpack/boxpack/internal/services/mocks"
	"github.com/boxpack/boxpack/pkg/sendgrid"
	stripeClient "github.com/boxpack/boxpack/pkg/stripe"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
)

type stripeMock struct {
	mock.Mock
}

func (m *stripeMock) CreatePaymentIntent(amount int64, currency string, description string) (*stripe.PaymentIntent, error) {
	args := m.Called(amount, currency, description)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*stripe.PaymentIntent), args.Error(1)
}

func (m *stripeMock) ConfirmPaymentIntent(paymentIntentID string) (*stripe.PaymentIntent, error) {
	args := m.Called(paymentIntentID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*stripe.PaymentIntent), args.Error(1)
}

func (m *stripeMock) RefundPayment(paymentIntentID string, amount int64) (*stripe.Refund, error) {
	args := m.Called(paymentIntentID, amount)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*stripe.Refund), args.Error(1)
}

func (m *stripeMock) VerifyWebhookSignature(payload []byte, signature string) (stripeClient.Event, error) {
	args := m.Called(payload, signature)

	return args.Get(0).(stripeClient.Event), args.Error(1)
}

type emailMock struct {
	mock.Mock
}

func (m *emailMock) Send(ctx context.Context, msg *sendgrid.Message) error {
	args := m.Called(ctx, msg)

	return args.Error(0)
}

func newOrderFixtures() (*mocks.OrderRepository, *serviceMocks.CartService, *stripeMock, *emailMock, service.OrderService) {
	orderRepo := new(mocks.OrderRepository)
	carts := new(serviceMocks.CartService)
	payments := new(stripeMock)
	emails := new(emailMock)

	svc := service.NewOrderService(orderRepo, carts, payments, emails, "jpy", slog.Default())

	return orderRepo, carts, payments, emails, svc
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success - snapshots copied and cart cleared", func(t *testing.T) {
		orderRepo, carts, payments, emails, svc := newOrderFixtures()

		cart := &models.Cart{
			ID:     uuid.New(),
			UserID: userID,
			Lines: []models.CartLine{
				{ID: uuid.New(), Snapshot: *sampleSnapshot(13895), Quantity: 2},
				{ID: uuid.New(), Snapshot: *sampleSnapshot(5000), Quantity: 1},
			},
			TotalAmount: 13895*2 + 5000,
		}

		carts.On("GetCart", ctx, userID).Return(cart, nil).Once()
		payments.On("CreatePaymentIntent", int64(32790), "jpy", mock.AnythingOfType("string")).
			Return(&stripe.PaymentIntent{ID: "pi_123"}, nil).Once()
		orderRepo.On("CreateOrder", ctx, mock.AnythingOfType("*models.Order")).Return(nil).Once()
		carts.On("ClearCart", ctx, userID).Return(nil).Once()
		emails.On("Send", ctx, mock.AnythingOfType("*sendgrid.Message")).Return(nil).Once()

		order, err := svc.CreateOrder(ctx, userID, "buyer@example.com", &models.CreateOrderRequest{
			ShippingAddress: models.Address{
				PostalCode: "150-0001", Prefecture: "Tokyo", City: "Shibuya", Line1: "1-2-3",
			},
		})

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
		assert.Equal(t, "pi_123", order.PaymentIntentID)
		require.Len(t, order.Items, 2)
		assert.Equal(t, 2, order.Items[0].Quantity)
		assert.Equal(t, float64(13895), order.Items[0].UnitPrice)
		orderRepo.AssertExpectations(t)
		carts.AssertExpectations(t)
		payments.AssertExpectations(t)
	})

	t.Run("Failure - empty cart", func(t *testing.T) {
		orderRepo, carts, _, _, svc := newOrderFixtures()

		carts.On("GetCart", ctx, userID).Return(&models.Cart{ID: uuid.New(), UserID: userID}, nil).Once()

		order, err := svc.CreateOrder(ctx, userID, "buyer@example.com", &models.CreateOrderRequest{
			ShippingAddress: models.Address{
				PostalCode: "150-0001", Prefecture: "Tokyo", City: "Shibuya", Line1: "1-2-3",
			},
		})

		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		orderRepo.AssertNotCalled(t, "CreateOrder")
	})

	t.Run("Failure - payment intent creation fails", func(t *testing.T) {
		orderRepo, carts, payments, _, svc := newOrderFixtures()

		cart := &models.Cart{
			ID:          uuid.New(),
			UserID:      userID,
			Lines:       []models.CartLine{{ID: uuid.New(), Snapshot: *sampleSnapshot(5000), Quantity: 1}},
			TotalAmount: 5000,
		}

		carts.On("GetCart", ctx, userID).Return(cart, nil).Once()
		payments.On("CreatePaymentIntent", int64(5000), "jpy", mock.AnythingOfType("string")).
			Return(nil, assert.AnError).Once()

		order, err := svc.CreateOrder(ctx, userID, "buyer@example.com", &models.CreateOrderRequest{
			ShippingAddress: models.Address{
				PostalCode: "150-0001", Prefecture: "Tokyo", City: "Shibuya", Line1: "1-2-3",
			},
		})

		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
		orderRepo.AssertNotCalled(t, "CreateOrder")
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - pending to confirmed", func(t *testing.T) {
		orderRepo, _, _, _, svc := newOrderFixtures()

		orderID := uuid.New()
		orderRepo.On("GetOrderByID", ctx, orderID).
			Return(&models.Order{ID: orderID, Status: models.OrderStatusPending, PaymentStatus: models.PaymentStatusPending}, nil).Once()
		orderRepo.On("UpdateOrderStatus", ctx, orderID, models.OrderStatusConfirmed).Return(nil).Once()

		order, err := svc.UpdateOrderStatus(ctx, orderID, models.OrderStatusConfirmed)

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusConfirmed, order.Status)
		orderRepo.AssertExpectations(t)
	})

	t.Run("Success - cancelling a paid order refunds it", func(t *testing.T) {
		orderRepo, _, payments, _, svc := newOrderFixtures()

		orderID := uuid.New()
		orderRepo.On("GetOrderByID", ctx, orderID).
			Return(&models.Order{
				ID: orderID, Status: models.OrderStatusConfirmed,
				PaymentStatus: models.PaymentStatusPaid, PaymentIntentID: "pi_123",
			}, nil).Once()
		payments.On("RefundPayment", "pi_123", int64(0)).Return(&stripe.Refund{ID: "re_123"}, nil).Once()
		orderRepo.On("UpdatePaymentStatus", ctx, orderID, models.PaymentStatusRefunded, "pi_123").Return(nil).Once()
		orderRepo.On("UpdateOrderStatus", ctx, orderID, models.OrderStatusCancelled).Return(nil).Once()

		order, err := svc.UpdateOrderStatus(ctx, orderID, models.OrderStatusCancelled)

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, order.Status)
		assert.Equal(t, models.PaymentStatusRefunded, order.PaymentStatus)
		payments.AssertExpectations(t)
		orderRepo.AssertExpectations(t)
	})

	t.Run("Failure - shipped cannot go back to pending", func(t *testing.T) {
		orderRepo, _, _, _, svc := newOrderFixtures()

		orderID := uuid.New()
		orderRepo.On("GetOrderByID", ctx, orderID).
			Return(&models.Order{ID: orderID, Status: models.OrderStatusShipped}, nil).Once()

		order, err := svc.UpdateOrderStatus(ctx, orderID, models.OrderStatusPending)

		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		orderRepo.AssertNotCalled(t, "UpdateOrderStatus")
	})
}

func TestHandlePaymentSucceeded(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		orderRepo, _, _, _, svc := newOrderFixtures()

		orderID := uuid.New()
		orderRepo.On("GetOrderByPaymentIntentID", ctx, "pi_123").
			Return(&models.Order{ID: orderID, Status: models.OrderStatusPending, PaymentIntentID: "pi_123"}, nil).Once()
		orderRepo.On("UpdatePaymentStatus", ctx, orderID, models.PaymentStatusPaid, "pi_123").Return(nil).Once()
		orderRepo.On("UpdateOrderStatus", ctx, orderID, models.OrderStatusConfirmed).Return(nil).Once()

		err := svc.HandlePaymentSucceeded(ctx, "pi_123")

		assert.NoError(t, err)
		orderRepo.AssertExpectations(t)
	})

	t.Run("Failure - unknown payment intent", func(t *testing.T) {
		orderRepo, _, _, _, svc := newOrderFixtures()

		orderRepo.On("GetOrderByPaymentIntentID", ctx, "pi_missing").Return(nil, sql.ErrNoRows).Once()

		err := svc.HandlePaymentSucceeded(ctx, "pi_missing")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestGetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - order of another user is forbidden", func(t *testing.T) {
		orderRepo, _, _, _, svc := newOrderFixtures()

		orderID := uuid.New()
		orderRepo.On("GetOrderByID", ctx, orderID).
			Return(&models.Order{ID: orderID, UserID: uuid.New()}, nil).Once()

		order, err := svc.GetOrder(ctx, uuid.New(), orderID)

		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeForbidden, appErr.Code)
	})
}
