package ink

// Collapse removes consecutive duplicate points from every stroke, producing
// a new StrokeSet with the same ids.  The input set is not modified.
//
// Per stroke the first point is always kept; walking consecutive pairs, a
// point survives only if it differs (exact equality on both coordinates)
// from its immediate predecessor.  The original last point is then appended
// regardless of the pairwise test, unless it equals the first point — a
// closed single-segment stroke must not duplicate its endpoint.  Strokes
// with fewer than two points pass through unchanged.
//
// Collapse never increases a stroke's length and never drops a stroke.
func Collapse(set StrokeSet) StrokeSet {
	out := make(StrokeSet, len(set))
	for id, pts := range set {
		out[id] = collapseStroke(pts)
	}
	return out
}

func collapseStroke(pts Stroke) Stroke {
	if len(pts) < 2 {
		return pts.Clone()
	}
	kept := Stroke{pts[0]}
	for i := 0; i < len(pts)-2; i++ {
		if pts[i] != pts[i+1] {
			kept = append(kept, pts[i+1])
		}
	}
	if pts[0] != pts[len(pts)-1] {
		kept = append(kept, pts[len(pts)-1])
	}
	return kept
}
