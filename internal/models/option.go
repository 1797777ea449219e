package models

import "time"

// OptionType selects which cost formula applies to a selected option.
type OptionType string

const (
	OptionTypeHandle        OptionType = "handle"
	OptionTypeBuckle        OptionType = "buckle"
	OptionTypeReinforcement OptionType = "reinforcement"
	OptionTypeExpress       OptionType = "express"
	OptionTypeScrew         OptionType = "screw"
	OptionTypeSkids         OptionType = "skids"
)

// Option price semantics vary by type: flat per-unit for most types,
// yen per square meter for reinforcement, and a coefficient applied per
// total-mm for express.
type Option struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Price      float64    `json:"price"`
	OptionType OptionType `json:"option_type"`
	Unit       string     `json:"unit"`
	IsActive   bool       `json:"is_active"`
	SortOrder  int        `json:"sort_order"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CreateOptionRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=100"`
	Price      float64 `json:"price" validate:"gte=0"`
	OptionType string  `json:"option_type" validate:"required,oneof=handle buckle reinforcement express screw skids"`
	Unit       string  `json:"unit,omitempty"`
	SortOrder  int     `json:"sort_order" validate:"gte=0"`
}

type UpdateOptionRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Price     *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Unit      *string  `json:"unit,omitempty"`
	IsActive  *bool    `json:"is_active,omitempty"`
	SortOrder *int     `json:"sort_order,omitempty" validate:"omitempty,gte=0"`
}
