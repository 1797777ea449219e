package models

import "time"

// MaterialClass selects which sheet-size constraint table applies to a
// material. It is resolved once at the data-loading boundary; the pricing
// core never branches on display names.
type MaterialClass string

const (
	MaterialClassStandard MaterialClass = "plywood_standard"
	MaterialClassLauan    MaterialClass = "plywood_lauan"
)

type Material struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Class       MaterialClass `json:"class"`
	BasePrice   float64       `json:"base_price"` // display-only, never a pricing input
	IsActive    bool          `json:"is_active"`
	SortOrder   int           `json:"sort_order"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Thicknesses []MaterialThickness `json:"thicknesses,omitempty"`
}

// MaterialThickness carries the per-mm rate fed to the price calculator.
// Price is independent of Material.BasePrice; only Price feeds the formula.
type MaterialThickness struct {
	ID          int64     `json:"id"`
	MaterialID  int64     `json:"material_id"`
	ThicknessMM int       `json:"thickness_mm"`
	Price       float64   `json:"price"`
	SheetSize   int       `json:"sheet_size"` // 0 = small sheet, 1 = large sheet
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateMaterialRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description string  `json:"description,omitempty"`
	Class       string  `json:"class" validate:"required,oneof=plywood_standard plywood_lauan"`
	BasePrice   float64 `json:"base_price" validate:"gte=0"`
	SortOrder   int     `json:"sort_order" validate:"gte=0"`
}

type UpdateMaterialRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty"`
	Class       *string  `json:"class,omitempty" validate:"omitempty,oneof=plywood_standard plywood_lauan"`
	BasePrice   *float64 `json:"base_price,omitempty" validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active,omitempty"`
	SortOrder   *int     `json:"sort_order,omitempty" validate:"omitempty,gte=0"`
}

type CreateThicknessRequest struct {
	MaterialID  int64   `json:"material_id" validate:"required"`
	ThicknessMM int     `json:"thickness_mm" validate:"required,gt=0"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	SheetSize   int     `json:"sheet_size" validate:"oneof=0 1"`
}

type UpdateThicknessRequest struct {
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	SheetSize   *int     `json:"sheet_size,omitempty" validate:"omitempty,oneof=0 1"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}
