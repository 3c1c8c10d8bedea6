package ink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapse_RemovesConsecutiveDuplicates(t *testing.T) {
	set := StrokeSet{{{0, 0}, {0, 0}, {2, 0}, {2, 0}, {2, 3}}}
	got := Collapse(set)
	require.Len(t, got, 1)
	assert.Equal(t, Stroke{{0, 0}, {2, 0}, {2, 3}}, got[0])
}

func TestCollapse_KeepsNonConsecutiveRepeats(t *testing.T) {
	// The pen may revisit a coordinate later in the stroke; only immediate
	// repeats are duplicates.
	set := StrokeSet{{{0, 0}, {1, 0}, {0, 0}, {1, 0}}}
	got := Collapse(set)
	assert.Equal(t, Stroke{{0, 0}, {1, 0}, {0, 0}, {1, 0}}, got[0])
}

func TestCollapse_ShortStrokesPassThrough(t *testing.T) {
	set := StrokeSet{{}, {{7, -7}}}
	got := Collapse(set)
	require.Len(t, got, 2)
	assert.Empty(t, got[0])
	assert.Equal(t, Stroke{{7, -7}}, got[1])
}

func TestCollapse_ClosedDegenerateStrokeKeepsSinglePoint(t *testing.T) {
	// Every point identical: the last point equals the first, so it is not
	// re-appended after reduction.
	set := StrokeSet{{{3, 3}, {3, 3}, {3, 3}}}
	got := Collapse(set)
	assert.Equal(t, Stroke{{3, 3}}, got[0])
}

func TestCollapse_LastPointForcedWhenDistinctFromFirst(t *testing.T) {
	// The last point is appended regardless of the pairwise test, so it
	// survives even though it duplicates its predecessor.
	set := StrokeSet{{{0, 0}, {1, 1}, {1, 1}}}
	got := Collapse(set)
	assert.Equal(t, Stroke{{0, 0}, {1, 1}, {1, 1}}, got[0])
}

func TestCollapse_NeverIncreasesLength(t *testing.T) {
	sets := []StrokeSet{
		{{{0, 0}, {1, 1}}},
		{{{0, 0}, {0, 0}}},
		{{{1, 2}, {3, 4}, {5, 6}, {5, 6}, {5, 6}, {7, 8}}},
	}
	for _, set := range sets {
		got := Collapse(set)
		for id := range set {
			assert.LessOrEqual(t, len(got[id]), len(set[id]))
			if len(set[id]) > 0 {
				assert.Equal(t, set[id][0], got[id][0], "first point must survive")
			}
		}
	}
}

func TestCollapse_DoesNotAliasInput(t *testing.T) {
	set := StrokeSet{{{0, 0}, {1, 1}}}
	got := Collapse(set)
	got[0][0] = Point{99, 99}
	assert.Equal(t, Point{0, 0}, set[0][0])
}
