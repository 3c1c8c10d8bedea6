package smoothing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/Ink-Intelligence/internal/domain/ink"
)

func TestFitResample_TwoPointLinear(t *testing.T) {
	// A two-point stroke takes the linear path: the curve is the segment
	// itself, resampled at t=0 and t=0.5.
	got := FitResample(ink.Stroke{{X: 0, Y: 0}, {X: 1, Y: 1}}, 1)
	require.Len(t, got, 2)
	assert.Equal(t, ink.Point{X: 0, Y: 0}, got[0])
	// The midpoint (0.5, 0.5) rounds to (1, 1).
	assert.Equal(t, ink.Point{X: 1, Y: 1}, got[1])
}

func TestFitResample_PreservesPointCount(t *testing.T) {
	strokes := []ink.Stroke{
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 0}},
		{{X: 0, Y: 0}, {X: 2, Y: 4}, {X: 5, Y: 5}, {X: 8, Y: 4}, {X: 10, Y: 0}},
		{{X: 0, Y: 0}, {X: 1, Y: 3}, {X: 2, Y: 5}, {X: 4, Y: 8}, {X: 6, Y: 9}, {X: 8, Y: 8}, {X: 10, Y: 5}, {X: 12, Y: 0}},
	}
	for _, pts := range strokes {
		got := FitResample(pts, DegreeFor(len(pts)))
		assert.Len(t, got, len(pts))
	}
}

func TestFitResample_StraightLineStaysStraight(t *testing.T) {
	// Collinear input must resample onto the same line regardless of degree.
	pts := make(ink.Stroke, 10)
	for i := range pts {
		pts[i] = ink.Point{X: i * 3, Y: i * 3}
	}
	got := FitResample(pts, 3)
	require.Len(t, got, 10)
	for _, p := range got {
		assert.InDelta(t, float64(p.X), float64(p.Y), 1.0, "point (%d,%d) strayed off y=x", p.X, p.Y)
	}
}

func TestFitResample_StartsAtFirstPoint(t *testing.T) {
	// t=0 evaluates the clamped curve at its first control point; for an
	// interpolating fit that is the first input point.
	got := FitResample(ink.Stroke{{X: 4, Y: -7}, {X: 9, Y: -2}, {X: 14, Y: -7}}, 2)
	require.NotEmpty(t, got)
	assert.Equal(t, ink.Point{X: 4, Y: -7}, got[0])
}

func TestFitResample_DegenerateInputs(t *testing.T) {
	assert.Nil(t, FitResample(ink.Stroke{}, 1), "empty stroke")
	assert.Nil(t, FitResample(ink.Stroke{{X: 1, Y: 1}}, 1), "single point")
	assert.Nil(t, FitResample(ink.Stroke{{X: 1, Y: 1}, {X: 2, Y: 2}}, 3), "too few points for degree")
	assert.Nil(t, FitResample(ink.Stroke{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}}, 2), "zero chord length")
}

func TestChordParams(t *testing.T) {
	params, ok := chordParams(ink.Stroke{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 6, Y: 8}})
	require.True(t, ok)
	assert.InDelta(t, 0.0, params[0], 1e-12)
	assert.InDelta(t, 0.5, params[1], 1e-12)
	assert.InDelta(t, 1.0, params[2], 1e-12)

	_, ok = chordParams(ink.Stroke{{X: 2, Y: 2}, {X: 2, Y: 2}})
	assert.False(t, ok)
}

func TestClampedKnots(t *testing.T) {
	knots := clampedKnots(4, 3)
	assert.Equal(t, []float64{0, 0, 0, 0, 1, 1, 1, 1}, knots)

	knots = clampedKnots(5, 2)
	assert.Equal(t, []float64{0, 0, 0, 1.0 / 3, 2.0 / 3, 1, 1, 1}, knots)
}

func TestBasisRow_PartitionOfUnity(t *testing.T) {
	const degree = 3
	knots := clampedKnots(6, degree)
	for _, u := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.99, 1} {
		row := basisRow(u, degree, knots, 6)
		sum := 0.0
		for _, b := range row {
			assert.GreaterOrEqual(t, b, 0.0)
			sum += b
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "basis at u=%v must sum to 1", u)
	}
}

func TestBasisRow_Endpoints(t *testing.T) {
	knots := clampedKnots(4, 3)
	first := basisRow(0, 3, knots, 4)
	assert.InDelta(t, 1.0, first[0], 1e-12)
	last := basisRow(1, 3, knots, 4)
	assert.InDelta(t, 1.0, last[3], 1e-12)
}

func TestFitResample_CoordinatesAreFinite(t *testing.T) {
	pts := ink.Stroke{{X: 100, Y: -200}, {X: 103, Y: -198}, {X: 107, Y: -195}, {X: 110, Y: -190}, {X: 112, Y: -184}}
	got := FitResample(pts, 3)
	require.Len(t, got, len(pts))
	for _, p := range got {
		assert.False(t, math.IsNaN(float64(p.X)))
		assert.False(t, math.IsNaN(float64(p.Y)))
	}
}
