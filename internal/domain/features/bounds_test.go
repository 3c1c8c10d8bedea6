package features

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/Ink-Intelligence/internal/domain/ink"
)

func TestBoundingBox_SpansAllStrokes(t *testing.T) {
	set := ink.StrokeSet{
		{{X: 0, Y: 0}, {X: 2, Y: 0}},
		{{X: -1, Y: 5}, {X: 1, Y: -3}},
	}
	box, ok := boundingBox(set)
	require.True(t, ok)
	assert.Equal(t, BoundingBox{MinX: -1, MinY: -3, MaxX: 2, MaxY: 5}, box)
	assert.Equal(t, 3, box.Width())
	assert.Equal(t, 8, box.Height())
}

func TestBoundingBox_NoPoints(t *testing.T) {
	_, ok := boundingBox(ink.StrokeSet{})
	assert.False(t, ok)
	_, ok = boundingBox(ink.StrokeSet{{}, {}})
	assert.False(t, ok)
}

func TestAspectRatio_WorkedExample(t *testing.T) {
	// Width 2, height 3 → 2/3.
	set := ink.StrokeSet{{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 3}}}
	assert.InDelta(t, 2.0/3.0, AspectRatio(set), 1e-12)
}

func TestAspectRatio_DegenerateDimensionsClamp(t *testing.T) {
	// Vertical segment: zero width clamps to 0.01.
	vertical := ink.StrokeSet{{{X: 5, Y: 0}, {X: 5, Y: 10}}}
	assert.InDelta(t, 0.001, AspectRatio(vertical), 1e-12)

	// Horizontal segment: zero height clamps to 0.01.
	horizontal := ink.StrokeSet{{{X: 0, Y: 5}, {X: 10, Y: 5}}}
	assert.InDelta(t, 1000.0, AspectRatio(horizontal), 1e-9)

	// Single point: both dimensions clamp, ratio is exactly 1.
	dot := ink.StrokeSet{{{X: 7, Y: 7}}}
	assert.InDelta(t, 1.0, AspectRatio(dot), 1e-12)
}

func TestAspectRatio_AlwaysFiniteAndPositive(t *testing.T) {
	sets := []ink.StrokeSet{
		{{{X: 0, Y: 0}}},
		{{{X: 5, Y: 0}, {X: 5, Y: 100}}},
		{{{X: 0, Y: 5}, {X: 100, Y: 5}}},
		{{{X: -10, Y: -10}, {X: 10, Y: 10}}},
	}
	for _, set := range sets {
		r := AspectRatio(set)
		assert.False(t, math.IsNaN(r) || math.IsInf(r, 0))
		assert.Greater(t, r, 0.0)
	}
}
