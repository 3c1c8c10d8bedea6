// Package smoothing fits parametric B-spline curves to strokes and resamples
// them onto a canonical point count, replacing jittery pen input with points
// taken from a smooth curve.
package smoothing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/turtacn/Ink-Intelligence/internal/domain/ink"
)

// smoothing controls how strongly the least-squares fit is allowed to deviate
// from the input: it is the fraction of a stroke's interior freedom retained
// as spline control points.  Fixed by design — the fit must be reproducible,
// never data-adaptive.
const smoothing = 0.5

// FitResample fits a clamped B-spline of the given degree through the stroke
// by linear least squares and evaluates it at len(pts) parameter values
// stepped from 0 up to but excluding 1 (t = i/n).  Resampled coordinates are
// rounded to the nearest integer.
//
// It returns nil when no curve can be fitted (fewer than degree+1 points, a
// zero-length chord, or a singular system); callers fall back to the input
// points in that case so a stroke's data is never dropped.
func FitResample(pts ink.Stroke, degree int) ink.Stroke {
	n := len(pts)
	if degree < 1 || n < degree+1 {
		return nil
	}

	params, ok := chordParams(pts)
	if !ok {
		return nil
	}

	// Control-point count: the degree+1 minimum plus the smoothing fraction
	// of the remaining interior freedom.  n=2/deg=1 and n=3/deg=2 degenerate
	// to interpolation.
	numCtrl := degree + 1 + int(smoothing*float64(n-degree-1))
	if numCtrl > n {
		numCtrl = n
	}
	knots := clampedKnots(numCtrl, degree)

	// Assemble the basis matrix and solve the two least-squares systems
	// (x and y share the basis, so they ride in one two-column solve).
	basis := mat.NewDense(n, numCtrl, nil)
	data := mat.NewDense(n, 2, nil)
	for i, p := range pts {
		row := basisRow(params[i], degree, knots, numCtrl)
		basis.SetRow(i, row)
		data.Set(i, 0, float64(p.X))
		data.Set(i, 1, float64(p.Y))
	}

	var ctrl mat.Dense
	if err := ctrl.Solve(basis, data); err != nil {
		return nil
	}

	out := make(ink.Stroke, 0, n)
	step := 1.0 / float64(n)
	for i := 0; i < n; i++ {
		row := basisRow(float64(i)*step, degree, knots, numCtrl)
		var x, y float64
		for j, b := range row {
			x += b * ctrl.At(j, 0)
			y += b * ctrl.At(j, 1)
		}
		out = append(out, ink.Point{
			X: int(math.Round(x)),
			Y: int(math.Round(y)),
		})
	}
	return out
}

// chordParams assigns each point a parameter in [0, 1] proportional to
// cumulative chord length.  It reports false when the stroke has zero total
// length (all points coincident), which would make every parameter equal and
// the fit singular.
func chordParams(pts ink.Stroke) ([]float64, bool) {
	n := len(pts)
	params := make([]float64, n)
	total := 0.0
	for i := 1; i < n; i++ {
		dx := float64(pts[i].X - pts[i-1].X)
		dy := float64(pts[i].Y - pts[i-1].Y)
		total += math.Hypot(dx, dy)
		params[i] = total
	}
	if total == 0 {
		return nil, false
	}
	for i := range params {
		params[i] /= total
	}
	return params, true
}

// clampedKnots builds the clamped uniform knot vector for numCtrl control
// points of the given degree: degree+1 zeros, uniformly spaced interior
// knots, degree+1 ones.  len(result) == numCtrl + degree + 1.
func clampedKnots(numCtrl, degree int) []float64 {
	knots := make([]float64, numCtrl+degree+1)
	interior := numCtrl - degree
	for i := range knots {
		switch {
		case i <= degree:
			knots[i] = 0
		case i >= numCtrl:
			knots[i] = 1
		default:
			knots[i] = float64(i-degree) / float64(interior)
		}
	}
	return knots
}

// basisRow evaluates all numCtrl B-spline basis functions of the given
// degree at u via the Cox-de Boor recurrence.  u == 1 is the right endpoint
// of the clamped curve, where only the last basis function is nonzero.
func basisRow(u float64, degree int, knots []float64, numCtrl int) []float64 {
	row := make([]float64, numCtrl)
	if u >= knots[len(knots)-1] {
		row[numCtrl-1] = 1
		return row
	}

	// Degree-zero indicator functions over each knot span.
	cur := make([]float64, len(knots)-1)
	for i := range cur {
		if u >= knots[i] && u < knots[i+1] {
			cur[i] = 1
		}
	}

	for d := 1; d <= degree; d++ {
		next := make([]float64, len(cur)-1)
		for i := range next {
			var left, right float64
			if den := knots[i+d] - knots[i]; den > 0 {
				left = (u - knots[i]) / den * cur[i]
			}
			if den := knots[i+d+1] - knots[i+1]; den > 0 {
				right = (knots[i+d+1] - u) / den * cur[i+1]
			}
			next[i] = left + right
		}
		cur = next
	}

	copy(row, cur[:numCtrl])
	return row
}
