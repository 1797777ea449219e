package pricing

import "github.com/boxpack/boxpack/internal/models"

// FittingPositions returns evenly spaced hardware offsets along an edge,
// measured from one end. The same offset is reserved at both ends, so the
// first position sits at firstDistanceMM and the last at
// spanMM - firstDistanceMM.
//
// A count of one places a single fitting at the given offset with no
// symmetry assumed. When the span cannot accommodate the end offsets the
// function falls back to that single point; the degenerate case is a defined
// fallback, not an error.
func FittingPositions(spanMM, firstDistanceMM float64, count int) []float64 {
	if count <= 0 || spanMM <= 0 || firstDistanceMM < 0 {
		return nil
	}

	if count == 1 {
		return []float64{firstDistanceMM}
	}

	remainingSpace := spanMM - firstDistanceMM*2
	if remainingSpace <= 0 {
		return []float64{firstDistanceMM}
	}

	spacing := remainingSpace / float64(count-1)

	positions := make([]float64, count)
	for i := range positions {
		positions[i] = firstDistanceMM + spacing*float64(i)
	}

	return positions
}

// RecomputeOptionFittings replaces the derived position grids on a selected
// option after a dimension change, preserving distance and count.
func RecomputeOptionFittings(opt *models.SelectedOption, widthMM, depthMM, heightMM int) {
	opt.FittingPositionsWidth = FittingPositions(float64(widthMM), opt.FittingDistanceWidth, opt.FittingCountWidth)
	opt.FittingPositionsDepth = FittingPositions(float64(depthMM), opt.FittingDistanceDepth, opt.FittingCountDepth)
	opt.FittingPositionsHeight = FittingPositions(float64(heightMM), opt.FittingDistanceHeight, opt.FittingCountHeight)
}

// RecomputeBendBuckle repositions every enabled bend-buckle edge under the
// same spacing law as fitting positions. The governing span per edge is
// fixed: top and bottom group edges 1 and 3 run along the width, edges 2 and
// 4 along the depth; all four side edges run along the height.
func RecomputeBendBuckle(cfg *models.BendBuckleConfig, widthMM, depthMM, heightMM int) {
	if cfg == nil {
		return
	}

	w := float64(widthMM)
	d := float64(depthMM)
	h := float64(heightMM)

	recomputeBendBuckleGroup(&cfg.Top, w, d, w, d)
	recomputeBendBuckleGroup(&cfg.Sides, h, h, h, h)
	recomputeBendBuckleGroup(&cfg.Bottom, w, d, w, d)
}

func recomputeBendBuckleGroup(g *models.BendBuckleGroup, span1, span2, span3, span4 float64) {
	if !g.Enabled {
		return
	}

	recomputeBendBuckleEdge(&g.Edge1, span1)
	recomputeBendBuckleEdge(&g.Edge2, span2)
	recomputeBendBuckleEdge(&g.Edge3, span3)
	recomputeBendBuckleEdge(&g.Edge4, span4)
}

func recomputeBendBuckleEdge(e *models.BendBuckleEdge, span float64) {
	e.Positions = FittingPositions(span, e.FirstDistance, e.Count)
}
