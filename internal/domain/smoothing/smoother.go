package smoothing

import (
	"github.com/turtacn/Ink-Intelligence/internal/domain/ink"
)

// DegreeFor selects the spline degree from a stroke's point count: two
// points take a linear fit, three a quadratic, anything longer a cubic.
// Strokes below two points cannot be fitted and report zero.
func DegreeFor(numPoints int) int {
	switch {
	case numPoints > 3:
		return 3
	case numPoints == 3:
		return 2
	case numPoints == 2:
		return 1
	default:
		return 0
	}
}

// Smooth produces a new StrokeSet in which every stroke with at least two
// points has been replaced by the resampled points of its fitted spline.
// Stroke ids and the point count per stroke are preserved.  Strokes that
// cannot be fitted — fewer than two points, or a degenerate fit — carry
// their pre-smoothing points, so no stroke's data is ever dropped.
func Smooth(set ink.StrokeSet) ink.StrokeSet {
	out := make(ink.StrokeSet, len(set))
	for id, pts := range set {
		degree := DegreeFor(len(pts))
		if degree == 0 {
			out[id] = pts.Clone()
			continue
		}
		smoothed := FitResample(pts, degree)
		if len(smoothed) == 0 {
			smoothed = pts.Clone()
		}
		out[id] = smoothed
	}
	return out
}
