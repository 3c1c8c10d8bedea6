package ink

import (
	"strconv"
	"strings"
)

// ParsePoints converts one trace's raw coordinate text into a Stroke.
//
// The blob is a comma-separated list of coordinate tokens.  Each token is
// split on whitespace; the first two fields are parsed as integers (any
// further fields — CROHME traces sometimes carry time or pressure — are
// ignored) and the y value is negated so that stored y grows upward.
//
// A token that does not yield two integers is a non-fatal anomaly: it is
// skipped and returned in the second result so the caller can emit a
// diagnostic, and parsing continues with the next token.  A stroke with zero
// successfully parsed points is a valid, degenerate result.
func ParsePoints(raw string) (Stroke, []string) {
	var (
		stroke  Stroke
		skipped []string
	)
	for _, token := range strings.Split(raw, ",") {
		fields := strings.Fields(token)
		if len(fields) < 2 {
			// Whitespace-only tokens are split artifacts of trailing commas
			// and newlines, not anomalies worth a diagnostic.
			if strings.TrimSpace(token) != "" {
				skipped = append(skipped, token)
			}
			continue
		}
		x, errX := strconv.Atoi(fields[0])
		y, errY := strconv.Atoi(fields[1])
		if errX != nil || errY != nil {
			skipped = append(skipped, token)
			continue
		}
		stroke = append(stroke, Point{X: x, Y: -y})
	}
	return stroke, skipped
}

// ParseTraces applies ParsePoints to every trace blob, assigning stroke ids
// by position.  The skipped-token lists are returned per stroke id.
func ParseTraces(traces []string) (StrokeSet, map[int][]string) {
	set := make(StrokeSet, len(traces))
	var skipped map[int][]string
	for i, raw := range traces {
		stroke, bad := ParsePoints(raw)
		set[i] = stroke
		if len(bad) > 0 {
			if skipped == nil {
				skipped = make(map[int][]string)
			}
			skipped[i] = bad
		}
	}
	return set, skipped
}
