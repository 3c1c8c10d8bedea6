package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/Ink-Intelligence/internal/domain/ink"
)

func TestHistograms_UniformSpread(t *testing.T) {
	// Ten points evenly spaced over x in [0,9], constant y: two per x bin,
	// all ten in the last y bin (degenerate axis).
	stroke := make(ink.Stroke, 10)
	for i := range stroke {
		stroke[i] = ink.Point{X: i, Y: 4}
	}
	xHist, yHist := Histograms(ink.StrokeSet{stroke})

	// Edges 0,1.8,3.6,5.4,7.2,9: x=9 is the inclusive upper boundary and
	// lands in bin 4 alongside 8.
	assert.Equal(t, [5]int{2, 2, 2, 2, 2}, xHist)
	assert.Equal(t, [5]int{0, 0, 0, 0, 10}, yHist)
}

func TestHistograms_SumEqualsPointCount(t *testing.T) {
	sets := []ink.StrokeSet{
		{{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 3}}},
		{{{X: 0, Y: 0}}},
		{{{X: -5, Y: -5}, {X: 0, Y: 0}, {X: 5, Y: 5}}, {{X: 1, Y: 2}, {X: 3, Y: 4}}},
		{{{X: 7, Y: 7}, {X: 7, Y: 7}, {X: 7, Y: 7}}}, // fully degenerate box
	}
	for _, set := range sets {
		xHist, yHist := Histograms(set)
		var sumX, sumY int
		for i := 0; i < histogramBins; i++ {
			sumX += xHist[i]
			sumY += yHist[i]
		}
		assert.Equal(t, set.NumPoints(), sumX)
		assert.Equal(t, set.NumPoints(), sumY)
	}
}

func TestHistograms_UpperBoundaryFallsInLastBin(t *testing.T) {
	set := ink.StrokeSet{{{X: 0, Y: 0}, {X: 10, Y: 10}}}
	xHist, yHist := Histograms(set)
	assert.Equal(t, 1, xHist[0])
	assert.Equal(t, 1, xHist[4])
	assert.Equal(t, 1, yHist[0])
	assert.Equal(t, 1, yHist[4])
}

func TestHistograms_EmptySet(t *testing.T) {
	xHist, yHist := Histograms(ink.StrokeSet{})
	assert.Equal(t, [5]int{}, xHist)
	assert.Equal(t, [5]int{}, yHist)
}

func TestBinIndex(t *testing.T) {
	edges := []float64{0, 2, 4, 6, 8, 10}
	require.Equal(t, 0, binIndex(0, edges))
	require.Equal(t, 0, binIndex(1.99, edges))
	require.Equal(t, 1, binIndex(2, edges))
	require.Equal(t, 3, binIndex(7.5, edges))
	require.Equal(t, 4, binIndex(8, edges))
	require.Equal(t, 4, binIndex(10, edges))
}
