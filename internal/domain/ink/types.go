// Package ink defines the core data model of the extraction pipeline —
// points, strokes, stroke sets, samples, and feature vectors — together with
// the parsing and cleaning stages that operate on raw trace text.
//
// The lifecycle of a StrokeSet is strictly generational: parsed once,
// transformed by Collapse and by the smoother into fresh sets, and consumed
// once by the feature extractors.  No stage mutates a Stroke in place.
package ink

// Point is an integer pen coordinate.  Y is stored sign-inverted relative to
// the raw input (input y grows downward, stored y grows upward); the
// inversion is applied exactly once, at parse time.
type Point struct {
	X int
	Y int
}

// Stroke is one continuous pen-down trace: an ordered sequence of points in
// the order the pen produced them.  The temporal order is semantically
// meaningful and is never reordered by later stages.
type Stroke []Point

// Clone returns an independent copy of the stroke.
func (s Stroke) Clone() Stroke {
	if s == nil {
		return nil
	}
	out := make(Stroke, len(s))
	copy(out, s)
	return out
}

// StrokeSet is every stroke of one handwritten symbol, indexed by stroke id.
// Ids are assigned by parse order, 0-based and contiguous, so a plain slice
// is the ordered associative container: iteration in slice order is
// iteration in ascending stroke id, which the direction and curvature
// features depend on for reproducibility.
type StrokeSet []Stroke

// Clone returns a deep copy of the set.
func (ss StrokeSet) Clone() StrokeSet {
	if ss == nil {
		return nil
	}
	out := make(StrokeSet, len(ss))
	for i, s := range ss {
		out[i] = s.Clone()
	}
	return out
}

// NumPoints returns the total number of points across all strokes.
func (ss StrokeSet) NumPoints() int {
	n := 0
	for _, s := range ss {
		n += len(s)
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Direction codes
// ─────────────────────────────────────────────────────────────────────────────

// Direction is one of the four pen movement codes derived from the sign of
// coordinate deltas between consecutive points.  The numeric values are the
// dataset wire encoding and must not change.
type Direction int

const (
	DirectionUp    Direction = 1
	DirectionDown  Direction = 2
	DirectionLeft  Direction = 3
	DirectionRight Direction = 4
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Samples and feature vectors
// ─────────────────────────────────────────────────────────────────────────────

// RawSample is one input unit as delivered by a sample source: the parsed
// identifier and the raw per-stroke coordinate text, one blob per stroke in
// pen order.
type RawSample struct {
	// ID is the sample's unique identifier (the CROHME "UI" annotation).
	ID string

	// Traces holds the raw comma-separated coordinate text of each stroke.
	Traces []string
}

// FeatureVector is the fixed-layout numeric description of one symbol.
type FeatureVector struct {
	// NumPoints is the total point count over all strokes.
	NumPoints int

	// NumStrokes is the number of strokes.
	NumStrokes int

	// Directions is the concatenation, in ascending stroke id, of each
	// stroke's first-seen direction codes (at most four per stroke).
	Directions []Direction

	// Curvature is the mean of the per-stroke mean slope angles.
	Curvature float64

	// AspectRatio is bounding-box width over height, with degenerate
	// dimensions clamped so the value is always finite and positive.
	AspectRatio float64

	// XHistogram and YHistogram count points falling into five equal-width
	// bins spanning the bounding box along each axis.
	XHistogram [5]int
	YHistogram [5]int
}

// Sample is one fully processed input unit: the identifier, the final
// (smoothed) generation of its stroke set, the derived features, and the
// ground-truth label when one has been attached.
type Sample struct {
	ID       string
	Strokes  StrokeSet
	Features FeatureVector
	Label    string
}
