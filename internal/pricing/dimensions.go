package pricing

import (
	"errors"
	"fmt"
)

// MaxDimensionMM is the absolute ceiling on any internal dimension: the long
// edge of the largest plywood sheet stock. This is the final gate at
// cart-add time and runs even when the live per-material check was bypassed.
const MaxDimensionMM = 2440

var (
	// ErrInvalidDimension signals a non-positive dimension. It blocks all
	// downstream computation.
	ErrInvalidDimension = errors.New("pricing: dimension must be positive")
	// ErrDimensionTooLarge signals a dimension above the absolute ceiling.
	ErrDimensionTooLarge = errors.New("pricing: dimension exceeds sheet stock ceiling")
)

// ValidateDimensions rejects non-positive or oversized internal dimensions
// before any computation proceeds.
func ValidateDimensions(widthMM, depthMM, heightMM int) error {
	dims := [3]struct {
		name string
		mm   int
	}{
		{"width", widthMM},
		{"depth", depthMM},
		{"height", heightMM},
	}

	for _, d := range dims {
		if d.mm <= 0 {
			return fmt.Errorf("%w: %s is %dmm", ErrInvalidDimension, d.name, d.mm)
		}
	}

	for _, d := range dims {
		if d.mm > MaxDimensionMM {
			return fmt.Errorf("%w: %s is %dmm, max %dmm", ErrDimensionTooLarge, d.name, d.mm, MaxDimensionMM)
		}
	}

	return nil
}
