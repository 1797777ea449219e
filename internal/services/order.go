package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	appErrors "github.com/boxpack/boxpack/internal/errors"
	"github.com/boxpack/boxpack/internal/models"
	repository "github.com/boxpack/boxpack/internal/repositories"
	"github.com/boxpack/boxpack/pkg/sendgrid"
	"github.com/boxpack/boxpack/pkg/stripe"
	"github.com/google/uuid"
)

// validTransitions is the order lifecycle. Anything not listed is rejected.
var validTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:       {models.OrderStatusConfirmed, models.OrderStatusCancelled},
	models.OrderStatusConfirmed:     {models.OrderStatusManufacturing, models.OrderStatusCancelled},
	models.OrderStatusManufacturing: {models.OrderStatusShipped},
	models.OrderStatusShipped:       {models.OrderStatusDelivered},
}

type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, email string, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID, page, size int) (*models.OrderHistoryResponse, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error)
	HandlePaymentSucceeded(ctx context.Context, paymentIntentID string) error
	HandlePaymentFailed(ctx context.Context, paymentIntentID string) error
}

type orderService struct {
	orders   repository.OrderRepository
	carts    CartService
	payments stripe.Client
	emails   sendgrid.EmailService
	currency string
	logger   *slog.Logger
}

func NewOrderService(orders repository.OrderRepository, carts CartService, payments stripe.Client, emails sendgrid.EmailService, currency string, logger *slog.Logger) OrderService {
	return &orderService{
		orders:   orders,
		carts:    carts,
		payments: payments,
		emails:   emails,
		currency: currency,
		logger:   logger,
	}
}

// CreateOrder turns the user's cart into an order. Snapshots are copied
// into order items so later catalog changes never touch a placed order.
func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, email string, req *models.CreateOrderRequest) (*models.Order, error) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(cart.Lines) == 0 {
		return nil, appErrors.BadRequestError("Cart is empty")
	}

	order := &models.Order{
		ID:              uuid.New(),
		UserID:          userID,
		Status:          models.OrderStatusPending,
		TotalAmount:     cart.TotalAmount,
		PaymentStatus:   models.PaymentStatusPending,
		ShippingAddress: &req.ShippingAddress,
	}

	for _, line := range cart.Lines {
		order.Items = append(order.Items, models.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			Snapshot:  line.Snapshot,
			Quantity:  line.Quantity,
			UnitPrice: line.Snapshot.Breakdown.TotalPrice,
			CreatedAt: time.Now(),
		})
	}

	intent, err := s.payments.CreatePaymentIntent(int64(order.TotalAmount), s.currency, fmt.Sprintf("Order %s", order.ID))
	if err != nil {
		return nil, appErrors.ThirdPartyError("Failed to initiate payment").WithError(err)
	}

	order.PaymentIntentID = intent.ID

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, appErrors.DatabaseError("Failed to create order").WithError(err)
	}

	if err := s.carts.ClearCart(ctx, userID); err != nil {
		s.logger.Warn("failed to clear cart after checkout", slog.String("order_id", order.ID.String()), slog.Any("error", err))
	}

	s.sendOrderEmail(ctx, email, order)

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if order.UserID != userID {
		return nil, appErrors.ForbiddenError("Order belongs to another user")
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID, page, size int) (*models.OrderHistoryResponse, error) {
	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 20
	}

	orders, total, err := s.orders.ListOrdersByUser(ctx, userID, page, size)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list orders").WithError(err)
	}

	return &models.OrderHistoryResponse{
		Orders: orders,
		Total:  total,
		Page:   page,
		Size:   size,
	}, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if !transitionAllowed(order.Status, status) {
		return nil, appErrors.BadRequestError(fmt.Sprintf("Cannot move order from %s to %s", order.Status, status))
	}

	if status == models.OrderStatusCancelled && order.PaymentStatus == models.PaymentStatusPaid {
		if _, err := s.payments.RefundPayment(order.PaymentIntentID, 0); err != nil {
			return nil, appErrors.ThirdPartyError("Failed to refund payment").WithError(err)
		}

		if err := s.orders.UpdatePaymentStatus(ctx, orderID, models.PaymentStatusRefunded, order.PaymentIntentID); err != nil {
			return nil, appErrors.DatabaseError("Failed to update payment status").WithError(err)
		}

		order.PaymentStatus = models.PaymentStatusRefunded
	}

	if err := s.orders.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return nil, appErrors.DatabaseError("Failed to update order status").WithError(err)
	}

	order.Status = status

	return order, nil
}

func (s *orderService) HandlePaymentSucceeded(ctx context.Context, paymentIntentID string) error {
	order, err := s.lookupByIntent(ctx, paymentIntentID)
	if err != nil {
		return err
	}

	if err := s.orders.UpdatePaymentStatus(ctx, order.ID, models.PaymentStatusPaid, paymentIntentID); err != nil {
		return appErrors.DatabaseError("Failed to mark order paid").WithError(err)
	}

	if err := s.orders.UpdateOrderStatus(ctx, order.ID, models.OrderStatusConfirmed); err != nil {
		return appErrors.DatabaseError("Failed to confirm order").WithError(err)
	}

	return nil
}

func (s *orderService) HandlePaymentFailed(ctx context.Context, paymentIntentID string) error {
	order, err := s.lookupByIntent(ctx, paymentIntentID)
	if err != nil {
		return err
	}

	if err := s.orders.UpdatePaymentStatus(ctx, order.ID, models.PaymentStatusFailed, paymentIntentID); err != nil {
		return appErrors.DatabaseError("Failed to mark payment failed").WithError(err)
	}

	return nil
}

func (s *orderService) lookupByIntent(ctx context.Context, paymentIntentID string) (*models.Order, error) {
	order, err := s.orders.GetOrderByPaymentIntentID(ctx, paymentIntentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("No order for payment intent").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to look up order").WithError(err)
	}

	return order, nil
}

func (s *orderService) sendOrderEmail(ctx context.Context, email string, order *models.Order) {
	if email == "" {
		return
	}

	msg := &sendgrid.Message{
		To:      email,
		Subject: fmt.Sprintf("Order confirmation %s", order.ID),
		Content: fmt.Sprintf("We received your order for %d item(s). Total: %.0f yen.", len(order.Items), order.TotalAmount),
	}

	if err := s.emails.Send(ctx, msg); err != nil {
		s.logger.Warn("failed to send order confirmation", slog.String("order_id", order.ID.String()), slog.Any("error", err))
	}
}

func transitionAllowed(from, to models.OrderStatus) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}
