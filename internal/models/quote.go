package models

// SelectedOption joins an Option with a chosen quantity and the
// type-specific extras the calculators need. A quote holds at most one
// SelectedOption per option id; re-adding an option increments its quantity.
type SelectedOption struct {
	OptionID   int64      `json:"option_id"`
	Name       string     `json:"name,omitempty"`
	OptionType OptionType `json:"option_type"`
	Price      float64    `json:"price"`
	Quantity   int        `json:"quantity"`

	// Reinforcement only. Both must be positive before the option can
	// contribute to the price.
	ReinforcementLength int `json:"reinforcement_length,omitempty"`
	ReinforcementWidth  int `json:"reinforcement_width,omitempty"`

	// Fitting layout per axis. Positions are derived and replaced whenever
	// the box dimensions change; distance and count are preserved.
	FittingDistanceWidth  float64 `json:"fitting_distance_width,omitempty"`
	FittingDistanceDepth  float64 `json:"fitting_distance_depth,omitempty"`
	FittingDistanceHeight float64 `json:"fitting_distance_height,omitempty"`

	FittingCountWidth  int `json:"fitting_count_width,omitempty"`
	FittingCountDepth  int `json:"fitting_count_depth,omitempty"`
	FittingCountHeight int `json:"fitting_count_height,omitempty"`

	FittingPositionsWidth  []float64 `json:"fitting_positions_width,omitempty"`
	FittingPositionsDepth  []float64 `json:"fitting_positions_depth,omitempty"`
	FittingPositionsHeight []float64 `json:"fitting_positions_height,omitempty"`
}

// BendBuckleEdge holds one of the twelve bend-buckle slots. Positions follow
// the same spacing law as fitting positions.
type BendBuckleEdge struct {
	FirstDistance float64   `json:"first_distance"`
	Count         int       `json:"count"`
	Positions     []float64 `json:"positions"`
}

type BendBuckleGroup struct {
	Enabled bool           `json:"enabled"`
	Edge1   BendBuckleEdge `json:"edge1"`
	Edge2   BendBuckleEdge `json:"edge2"`
	Edge3   BendBuckleEdge `json:"edge3"`
	Edge4   BendBuckleEdge `json:"edge4"`
}

// BendBuckleConfig is manufacturing metadata only. It never affects the
// price, but its positions are recalculated on every dimension change.
type BendBuckleConfig struct {
	Top    BendBuckleGroup `json:"top"`
	Sides  BendBuckleGroup `json:"sides"`
	Bottom BendBuckleGroup `json:"bottom"`
}

// PriceBreakdown is the calculator output. All amounts are yen.
// MaterialCost and OptionsCost are pre-multiplied by the box quantity for
// display, even though they are computed per unit internally.
type PriceBreakdown struct {
	MaterialCost  float64 `json:"material_cost"`
	OptionsCost   float64 `json:"options_cost"`
	ExpressCharge float64 `json:"express_charge"`
	Subtotal      float64 `json:"subtotal"`
	VAT           float64 `json:"vat"`
	TotalPrice    float64 `json:"total_price"`
}

// SheetWarning is an advisory sheet-layout finding. It never blocks
// submission; the storefront renders it as a banner while editing.
type SheetWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// QuoteSnapshot is the immutable bundle frozen into a cart line. Prices and
// positions are locked at snapshot time and never re-derived from live
// catalog data.
type QuoteSnapshot struct {
	WidthMM  int `json:"width_mm"`
	DepthMM  int `json:"depth_mm"`
	HeightMM int `json:"height_mm"`

	Material  Material          `json:"material"`
	Thickness MaterialThickness `json:"thickness"`

	SelectedOptions []SelectedOption `json:"selected_options,omitempty"`
	Quantity        int              `json:"quantity"`

	Breakdown  PriceBreakdown    `json:"breakdown"`
	BendBuckle *BendBuckleConfig `json:"bend_buckle,omitempty"`
}

type QuoteOptionRequest struct {
	OptionID int64 `json:"option_id" validate:"required"`
	Quantity int   `json:"quantity" validate:"required,min=1"`

	ReinforcementLength int `json:"reinforcement_length,omitempty" validate:"omitempty,gt=0"`
	ReinforcementWidth  int `json:"reinforcement_width,omitempty" validate:"omitempty,gt=0"`

	FittingDistanceWidth  float64 `json:"fitting_distance_width,omitempty" validate:"omitempty,gte=0"`
	FittingDistanceDepth  float64 `json:"fitting_distance_depth,omitempty" validate:"omitempty,gte=0"`
	FittingDistanceHeight float64 `json:"fitting_distance_height,omitempty" validate:"omitempty,gte=0"`

	FittingCountWidth  int `json:"fitting_count_width,omitempty" validate:"omitempty,gte=0"`
	FittingCountDepth  int `json:"fitting_count_depth,omitempty" validate:"omitempty,gte=0"`
	FittingCountHeight int `json:"fitting_count_height,omitempty" validate:"omitempty,gte=0"`
}

type PriceQuoteRequest struct {
	WidthMM  int `json:"width_mm" validate:"required"`
	DepthMM  int `json:"depth_mm" validate:"required"`
	HeightMM int `json:"height_mm" validate:"required"`

	MaterialID  int64 `json:"material_id" validate:"required"`
	ThicknessID int64 `json:"thickness_id" validate:"required"`
	Quantity    int   `json:"quantity" validate:"required,min=1"`

	Options    []QuoteOptionRequest `json:"options,omitempty" validate:"omitempty,dive"`
	BendBuckle *BendBuckleConfig    `json:"bend_buckle,omitempty"`
}

type PriceQuoteResponse struct {
	Breakdown       *PriceBreakdown   `json:"breakdown"`
	Warnings        []SheetWarning    `json:"warnings,omitempty"`
	SelectedOptions []SelectedOption  `json:"selected_options,omitempty"`
	BendBuckle      *BendBuckleConfig `json:"bend_buckle,omitempty"`
}
