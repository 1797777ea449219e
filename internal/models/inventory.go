package models

import "time"

type MovementType string

const (
	MovementTypeIn         MovementType = "in"
	MovementTypeOut        MovementType = "out"
	MovementTypeAdjustment MovementType = "adjustment"
)

// StockMovement is plain in/out/adjustment bookkeeping. It never feeds the
// pricing engine.
type StockMovement struct {
	ID         int64        `json:"id"`
	MaterialID int64        `json:"material_id"`
	Type       MovementType `json:"type"`
	Quantity   int          `json:"quantity"`
	Note       string       `json:"note,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

type CreateStockMovementRequest struct {
	MaterialID int64  `json:"material_id" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=in out adjustment"`
	Quantity   int    `json:"quantity" validate:"required"`
	Note       string `json:"note,omitempty"`
}

type StockMovementHistoryResponse struct {
	Movements []StockMovement `json:"movements"`
	Total     int             `json:"total"`
	Page      int             `json:"page"`
	Size      int             `json:"size"`
}
