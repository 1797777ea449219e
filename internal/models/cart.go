package models

import (
	"time"

	"github.com/google/uuid"
)

// CartLine is one frozen quote in the cart. Quantity multiplies the
// snapshot's locked total in the cart fold; the snapshot itself is never
// repriced after it is added.
type CartLine struct {
	ID        uuid.UUID     `json:"id"`
	Snapshot  QuoteSnapshot `json:"snapshot"`
	Quantity  int           `json:"quantity"`
	CreatedAt time.Time     `json:"created_at"`
}

// Cart keeps lines in insertion order; that order is the display order.
type Cart struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Lines       []CartLine `json:"lines"`
	TotalAmount float64    `json:"total_amount"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type AddCartLineRequest struct {
	Quote PriceQuoteRequest `json:"quote" validate:"required"`
}

type UpdateLineQuantityRequest struct {
	LineID   uuid.UUID `json:"line_id" validate:"required"`
	Quantity int       `json:"quantity"`
}
