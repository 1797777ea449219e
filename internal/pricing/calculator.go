package pricing

import (
	"errors"
	"fmt"
	"math"

	"github.com/boxpack/boxpack/internal/models"
)

const (
	// ExpressRatePerMM is the express surcharge per mm of perimeter sum.
	ExpressRatePerMM = 5
	// ReinforcementHandlingFee is a flat fee layered on the area rate,
	// charged once per reinforcement selection, not per square meter.
	ReinforcementHandlingFee = 300
	// VATRate is the consumption tax applied to the subtotal.
	VATRate = 0.10
)

var (
	// ErrIncompleteQuote signals a missing required selection: material,
	// thickness, a positive quantity, or reinforcement sizing.
	ErrIncompleteQuote = errors.New("pricing: required selection missing")
	// ErrDuplicateOption signals the same option id selected twice.
	// Re-adding an option must increment its quantity instead.
	ErrDuplicateOption = errors.New("pricing: option selected more than once")
	// ErrDuplicateExpress signals more than one express-type option.
	// At most one is selectable.
	ErrDuplicateExpress = errors.New("pricing: more than one express option selected")
)

// QuoteInput is the explicit argument bundle the calculator works from. The
// engine never reads ambient session or catalog state.
type QuoteInput struct {
	WidthMM  int
	DepthMM  int
	HeightMM int

	Material  *models.Material
	Thickness *models.MaterialThickness

	SelectedOptions []models.SelectedOption
	Quantity        int
}

// Calculate turns a quote configuration into a price breakdown. It is a
// pure function: identical inputs always produce identical output, which
// keeps cart recomputation idempotent.
//
// The perimeter sum width+depth+height is a deliberate linear proxy for
// material consumption: total panel-edge length of a six-panel crate, not
// volume. The box quantity multiplies material and per-unit option costs
// but never the express charge, which is billed once per shipment.
func Calculate(in QuoteInput) (*models.PriceBreakdown, error) {
	if err := ValidateDimensions(in.WidthMM, in.DepthMM, in.HeightMM); err != nil {
		return nil, err
	}

	if in.Material == nil {
		return nil, fmt.Errorf("%w: material", ErrIncompleteQuote)
	}

	if in.Thickness == nil {
		return nil, fmt.Errorf("%w: thickness", ErrIncompleteQuote)
	}

	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrIncompleteQuote)
	}

	if err := ValidateSelections(in.SelectedOptions); err != nil {
		return nil, err
	}

	perimeterSum := float64(in.WidthMM + in.DepthMM + in.HeightMM)

	materialCost := in.Thickness.Price * perimeterSum

	var optionsCost, expressCharge float64

	for _, opt := range in.SelectedOptions {
		switch opt.OptionType {
		case models.OptionTypeExpress:
			expressCharge = perimeterSum * ExpressRatePerMM * float64(opt.Quantity)
		case models.OptionTypeReinforcement:
			if opt.ReinforcementLength <= 0 || opt.ReinforcementWidth <= 0 {
				return nil, fmt.Errorf("%w: reinforcement option %d needs positive length and width", ErrIncompleteQuote, opt.OptionID)
			}

			areaM2 := float64(opt.ReinforcementLength) * float64(opt.ReinforcementWidth) / 1_000_000
			optionsCost += (areaM2*opt.Price + ReinforcementHandlingFee) * float64(opt.Quantity)
		default:
			optionsCost += opt.Price * float64(opt.Quantity)
		}
	}

	quantity := float64(in.Quantity)

	subtotal := (materialCost+optionsCost)*quantity + expressCharge
	vat := math.Round(subtotal * VATRate)
	total := math.Round(subtotal + vat)

	return &models.PriceBreakdown{
		MaterialCost:  materialCost * quantity,
		OptionsCost:   optionsCost * quantity,
		ExpressCharge: expressCharge,
		Subtotal:      subtotal,
		VAT:           vat,
		TotalPrice:    total,
	}, nil
}

// ValidateSelections enforces the selection-set invariants: at most one
// entry per option id, at most one express option, positive quantities.
func ValidateSelections(opts []models.SelectedOption) error {
	seen := make(map[int64]bool, len(opts))
	express := false

	for _, opt := range opts {
		if seen[opt.OptionID] {
			return fmt.Errorf("%w: option %d", ErrDuplicateOption, opt.OptionID)
		}

		seen[opt.OptionID] = true

		if opt.Quantity <= 0 {
			return fmt.Errorf("%w: option %d quantity must be positive", ErrIncompleteQuote, opt.OptionID)
		}

		if opt.OptionType == models.OptionTypeExpress {
			if express {
				return ErrDuplicateExpress
			}

			express = true
		}
	}

	return nil
}
