package features

import "github.com/turtacn/Ink-Intelligence/internal/domain/ink"

// maxDirectionsPerStroke caps the direction codes collected from one stroke.
const maxDirectionsPerStroke = 4

// Directions classifies the pen movement of every stroke into up/down/left/
// right codes and concatenates the per-stroke results in ascending stroke id.
//
// Per stroke, consecutive point pairs are walked starting at index 1.  The
// vertical test runs before the horizontal test, and the two are independent
// — a diagonal step registers both axes.  Zero delta on an axis registers
// nothing for that axis.  Each code is appended only the first time it is
// observed within the stroke, and the walk stops once four distinct codes
// have been collected.  Codes repeat across strokes; deduplication is only
// ever per stroke.
func Directions(set ink.StrokeSet) []ink.Direction {
	var out []ink.Direction
	for _, stroke := range set {
		out = append(out, strokeDirections(stroke)...)
	}
	return out
}

func strokeDirections(stroke ink.Stroke) []ink.Direction {
	var codes []ink.Direction
	for i := 1; i < len(stroke) && len(codes) < maxDirectionsPerStroke; i++ {
		prev, cur := stroke[i-1], stroke[i]
		if cur.Y > prev.Y {
			codes = appendNew(codes, ink.DirectionUp)
		}
		if cur.Y < prev.Y {
			codes = appendNew(codes, ink.DirectionDown)
		}
		if cur.X < prev.X {
			codes = appendNew(codes, ink.DirectionLeft)
		}
		if cur.X > prev.X {
			codes = appendNew(codes, ink.DirectionRight)
		}
	}
	return codes
}

// appendNew appends d unless it is already present.
func appendNew(codes []ink.Direction, d ink.Direction) []ink.Direction {
	for _, c := range codes {
		if c == d {
			return codes
		}
	}
	return append(codes, d)
}
