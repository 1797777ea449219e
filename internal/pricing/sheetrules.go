package pricing

import (
	"fmt"

	"github.com/boxpack/boxpack/internal/models"
)

// SheetConstraint encodes the physical sheet stock a material class is cut
// from. MaxDimensionMM is the sheet's long edge; LongSideThresholdMM is half
// of it. A crate needing two sides longer than half a sheet cannot be cut
// from one sheet, so at most one dimension may exceed the threshold.
type SheetConstraint struct {
	MaxDimensionMM      int
	LongSideThresholdMM int
}

// Literal stock sizes, not derived ratios: lauan plywood ships on 2440x1220
// sheets, every other material on 1820x910.
var sheetConstraints = map[models.MaterialClass]SheetConstraint{
	models.MaterialClassLauan:    {MaxDimensionMM: 2440, LongSideThresholdMM: 1220},
	models.MaterialClassStandard: {MaxDimensionMM: 1820, LongSideThresholdMM: 910},
}

const (
	WarningCodeDimensionTooLarge = "DIMENSION_TOO_LARGE"
	WarningCodeSheetConstraint   = "MATERIAL_SHEET_CONSTRAINT_VIOLATION"
)

// ConstraintFor resolves the constraint row for a material class. Unknown
// classes fall back to the stricter standard sheet.
func ConstraintFor(class models.MaterialClass) SheetConstraint {
	if c, ok := sheetConstraints[class]; ok {
		return c
	}

	return sheetConstraints[models.MaterialClassStandard]
}

// CheckSheetConstraints evaluates the per-material sheet rules while a quote
// is being edited. Findings are advisory only: they are rendered as a
// warning banner and never block submission.
func CheckSheetConstraints(class models.MaterialClass, widthMM, depthMM, heightMM int) []models.SheetWarning {
	c := ConstraintFor(class)

	dims := [3]struct {
		name string
		mm   int
	}{
		{"width", widthMM},
		{"depth", depthMM},
		{"height", heightMM},
	}

	var warnings []models.SheetWarning

	longSides := 0

	for _, d := range dims {
		if d.mm > c.MaxDimensionMM {
			warnings = append(warnings, models.SheetWarning{
				Code:    WarningCodeDimensionTooLarge,
				Message: fmt.Sprintf("%s of %dmm exceeds the %dmm sheet limit for this material", d.name, d.mm, c.MaxDimensionMM),
			})
		}

		if d.mm > c.LongSideThresholdMM {
			longSides++
		}
	}

	if longSides >= 2 {
		warnings = append(warnings, models.SheetWarning{
			Code:    WarningCodeSheetConstraint,
			Message: fmt.Sprintf("at most one dimension may exceed %dmm for this material; %d do", c.LongSideThresholdMM, longSides),
		})
	}

	return warnings
}
