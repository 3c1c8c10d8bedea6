package features

import "github.com/turtacn/Ink-Intelligence/internal/domain/ink"

// boundsClamp is the substitute extent for a degenerate bounding-box axis,
// keeping the aspect ratio finite when all points share an x or a y.
const boundsClamp = 0.01

// BoundingBox is the axis-aligned rectangle spanning the minimum and maximum
// coordinates over every point of a stroke set.
type BoundingBox struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Width returns MaxX − MinX.
func (b BoundingBox) Width() int { return b.MaxX - b.MinX }

// Height returns MaxY − MinY.
func (b BoundingBox) Height() int { return b.MaxY - b.MinY }

// boundingBox scans every point of every stroke.  It reports false when the
// set holds no points at all, in which case no box exists.
func boundingBox(set ink.StrokeSet) (BoundingBox, bool) {
	var (
		box   BoundingBox
		found bool
	)
	for _, stroke := range set {
		for _, p := range stroke {
			if !found {
				box = BoundingBox{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
				found = true
				continue
			}
			if p.X < box.MinX {
				box.MinX = p.X
			}
			if p.X > box.MaxX {
				box.MaxX = p.X
			}
			if p.Y < box.MinY {
				box.MinY = p.Y
			}
			if p.Y > box.MaxY {
				box.MaxY = p.Y
			}
		}
	}
	return box, found
}

// AspectRatio computes bounding-box width over height.  A dimension that is
// zero or negative is clamped to boundsClamp, so the result is always finite
// and positive for any set containing at least one point.
func AspectRatio(set ink.StrokeSet) float64 {
	box, ok := boundingBox(set)
	if !ok {
		return 0
	}
	width := float64(box.Width())
	if width <= 0 {
		width = boundsClamp
	}
	height := float64(box.Height())
	if height <= 0 {
		height = boundsClamp
	}
	return width / height
}
