package features

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turtacn/Ink-Intelligence/internal/domain/ink"
)

func diagonal(n int) ink.Stroke {
	stroke := make(ink.Stroke, n)
	for i := range stroke {
		stroke[i] = ink.Point{X: i, Y: i}
	}
	return stroke
}

func TestCurvature_ShortStrokesContributeZero(t *testing.T) {
	for n := 0; n <= 4; n++ {
		set := ink.StrokeSet{diagonal(n)}
		assert.Zero(t, Curvature(set), "stroke of length %d", n)
	}
}

func TestCurvature_DiagonalLine(t *testing.T) {
	// Every finite difference along y=x has slope 1, so every estimate is
	// atan(1) = π/4.
	set := ink.StrokeSet{diagonal(8)}
	assert.InDelta(t, math.Pi/4, Curvature(set), 1e-12)
}

func TestCurvature_HorizontalLine(t *testing.T) {
	stroke := make(ink.Stroke, 6)
	for i := range stroke {
		stroke[i] = ink.Point{X: i * 2, Y: 7}
	}
	assert.Zero(t, Curvature(ink.StrokeSet{stroke}))
}

func TestCurvature_VerticalStrokeSkipsZeroDeltaX(t *testing.T) {
	// All x equal: every Δx is zero, every index is skipped, and the stroke
	// contributes 0 through the empty-slope rule.
	stroke := make(ink.Stroke, 6)
	for i := range stroke {
		stroke[i] = ink.Point{X: 3, Y: i}
	}
	assert.Zero(t, Curvature(ink.StrokeSet{stroke}))
}

func TestCurvature_MeanAcrossStrokes(t *testing.T) {
	// One π/4 stroke and one short (zero-contribution) stroke average to π/8.
	set := ink.StrokeSet{diagonal(8), diagonal(2)}
	assert.InDelta(t, math.Pi/8, Curvature(set), 1e-12)
}

func TestCurvature_EmptySet(t *testing.T) {
	assert.Zero(t, Curvature(ink.StrokeSet{}))
}
