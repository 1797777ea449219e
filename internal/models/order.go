package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

type PaymentStatus string

const (
	OrderStatusPending       OrderStatus = "pending"
	OrderStatusConfirmed     OrderStatus = "confirmed"
	OrderStatusManufacturing OrderStatus = "manufacturing"
	OrderStatusShipped       OrderStatus = "shipped"
	OrderStatusDelivered     OrderStatus = "delivered"
	OrderStatusCancelled     OrderStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Address struct {
	PostalCode string `json:"postal_code" validate:"required"`
	Prefecture string `json:"prefecture" validate:"required"`
	City       string `json:"city" validate:"required"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2,omitempty"`
}

// OrderItem carries a copy of the quote-time snapshot. Price fields are
// copies, not references; no repricing happens after order creation.
type OrderItem struct {
	ID        uuid.UUID     `json:"id"`
	OrderID   uuid.UUID     `json:"order_id"`
	Snapshot  QuoteSnapshot `json:"snapshot"`
	Quantity  int           `json:"quantity"`
	UnitPrice float64       `json:"unit_price"`
	CreatedAt time.Time     `json:"created_at"`
}

type Order struct {
	ID              uuid.UUID     `json:"id"`
	UserID          uuid.UUID     `json:"user_id"`
	Status          OrderStatus   `json:"status"`
	TotalAmount     float64       `json:"total_amount"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentIntentID string        `json:"payment_intent_id,omitempty"`
	ShippingAddress *Address      `json:"shipping_address"`
	Items           []OrderItem   `json:"items"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type CreateOrderRequest struct {
	ShippingAddress Address `json:"shipping_address" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending confirmed manufacturing shipped delivered cancelled"`
}

type OrderHistoryResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Size   int     `json:"size"`
}
