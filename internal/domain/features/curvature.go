package features

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/turtacn/Ink-Intelligence/internal/domain/ink"
)

// Curvature quantifies how much a symbol bends: the mean over strokes of the
// mean local slope angle along each stroke.
//
// For every interior index i ≥ 1 of a stroke with more than four points, a
// two-step finite difference estimates the local tangent: forward near the
// start (i < 2), backward near the end (i > n−3), centered otherwise.  The
// slope angle is atan(Δy/Δx); indices with Δx == 0 are skipped rather than
// zero-filled.  Strokes of length ≤ 4 produce no slope estimates and, like
// any stroke whose estimates were all skipped, contribute a curvature of 0.
func Curvature(set ink.StrokeSet) float64 {
	if len(set) == 0 {
		return 0
	}
	perStroke := make([]float64, 0, len(set))
	for _, stroke := range set {
		perStroke = append(perStroke, strokeCurvature(stroke))
	}
	return stat.Mean(perStroke, nil)
}

func strokeCurvature(stroke ink.Stroke) float64 {
	n := len(stroke)
	if n <= 4 {
		return 0
	}
	var slopes []float64
	for i := 1; i < n; i++ {
		var dx, dy float64
		switch {
		case i < 2:
			dx = float64(stroke[i+2].X - stroke[i].X)
			dy = float64(stroke[i+2].Y - stroke[i].Y)
		case i > n-3:
			dx = float64(stroke[i].X - stroke[i-2].X)
			dy = float64(stroke[i].Y - stroke[i-2].Y)
		default:
			dx = float64(stroke[i+2].X - stroke[i-2].X)
			dy = float64(stroke[i+2].Y - stroke[i-2].Y)
		}
		if dx != 0 {
			slopes = append(slopes, math.Atan(dy/dx))
		}
	}
	if len(slopes) == 0 {
		return 0
	}
	return stat.Mean(slopes, nil)
}
