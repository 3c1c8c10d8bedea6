package features

import (
	"gonum.org/v1/gonum/floats"

	"github.com/turtacn/Ink-Intelligence/internal/domain/ink"
)

// histogramBins is the number of equal-width spatial bins per axis.
const histogramBins = 5

// Histograms counts, independently per axis, how many points fall into each
// of five equal-width bins spanning the bounding box.  Bin edges are six
// equally spaced break points covering [min, max] inclusive of both ends;
// bins 0–3 are half-open [edge_i, edge_i+1) and bin 4 catches everything
// else, which absorbs the inclusive upper boundary and any floating-point
// stragglers.  The two histograms each sum to the total point count.
func Histograms(set ink.StrokeSet) (xHist, yHist [histogramBins]int) {
	box, ok := boundingBox(set)
	if !ok {
		return xHist, yHist
	}

	xEdges := floats.Span(make([]float64, histogramBins+1), float64(box.MinX), float64(box.MaxX))
	yEdges := floats.Span(make([]float64, histogramBins+1), float64(box.MinY), float64(box.MaxY))

	for _, stroke := range set {
		for _, p := range stroke {
			xHist[binIndex(float64(p.X), xEdges)]++
			yHist[binIndex(float64(p.Y), yEdges)]++
		}
	}
	return xHist, yHist
}

// binIndex returns the first bin whose half-open interval contains v, or the
// last bin when none does.
func binIndex(v float64, edges []float64) int {
	for i := 0; i < histogramBins-1; i++ {
		if v >= edges[i] && v < edges[i+1] {
			return i
		}
	}
	return histogramBins - 1
}
