// Package features computes the five geometric descriptor families of a
// stroke set — counts, direction codes, curvature, aspect ratio, and spatial
// frequency histograms.  Every extractor is a pure function of the fully
// smoothed StrokeSet; none share state, so Extract may run them in any order.
package features

import (
	"github.com/turtacn/Ink-Intelligence/internal/domain/ink"
	"github.com/turtacn/Ink-Intelligence/pkg/errors"
)

// Counts returns the total point count and the stroke count.
func Counts(set ink.StrokeSet) (numPoints, numStrokes int) {
	return set.NumPoints(), len(set)
}

// Extract runs all five extractors over the stroke set and assembles the
// FeatureVector.
//
// A set with zero strokes, or whose strokes hold no points at all, has no
// bounding box and is rejected with ErrCodeEmptyStrokeSet rather than
// producing a vector of NaN or zero fields.
func Extract(set ink.StrokeSet) (ink.FeatureVector, error) {
	numPoints, numStrokes := Counts(set)
	if numStrokes == 0 || numPoints == 0 {
		return ink.FeatureVector{}, errors.New(errors.ErrCodeEmptyStrokeSet,
			"stroke set holds no points; no bounding box can be computed")
	}

	xHist, yHist := Histograms(set)
	return ink.FeatureVector{
		NumPoints:   numPoints,
		NumStrokes:  numStrokes,
		Directions:  Directions(set),
		Curvature:   Curvature(set),
		AspectRatio: AspectRatio(set),
		XHistogram:  xHist,
		YHistogram:  yHist,
	}, nil
}
