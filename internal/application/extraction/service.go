// Package extraction orchestrates the feature pipeline: it drives one raw
// sample through parsing, cleaning, smoothing, and feature extraction, and
// runs batches of samples over a worker pool.  It owns no math of its own —
// the domain packages do the work; this layer sequences them, classifies
// failures, and reports.
package extraction

import (
	"context"
	"strings"

	"github.com/turtacn/Ink-Intelligence/internal/domain/features"
	"github.com/turtacn/Ink-Intelligence/internal/domain/ink"
	"github.com/turtacn/Ink-Intelligence/internal/domain/smoothing"
	"github.com/turtacn/Ink-Intelligence/internal/infrastructure/logging"
	"github.com/turtacn/Ink-Intelligence/internal/infrastructure/metrics"
	"github.com/turtacn/Ink-Intelligence/pkg/errors"
)

// LabelLookup resolves a sample identifier to its ground-truth symbol.
// An unknown identifier is a per-sample error, not a zero label.
type LabelLookup interface {
	Lookup(id string) (string, error)
}

// Service runs the extraction pipeline.  It is stateless between calls and
// safe for concurrent use.
type Service struct {
	log logging.Logger
	met *metrics.Pipeline
}

// NewService builds a pipeline service.  A nil metrics pipeline disables
// recording without changing behavior.
func NewService(log logging.Logger, met *metrics.Pipeline) *Service {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Service{log: log.Named("extraction"), met: met}
}

// Extract runs one raw sample through the full pipeline and returns the
// processed sample without a label.  A missing identifier or an empty stroke
// set fails the sample; malformed coordinate tokens are skipped with a
// diagnostic and do not.
func (s *Service) Extract(ctx context.Context, raw ink.RawSample) (*ink.Sample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw.ID) == "" {
		return nil, errors.New(errors.ErrCodeMissingIdentifier, "sample has no identifier")
	}

	set, skipped := ink.ParseTraces(raw.Traces)
	if len(skipped) > 0 {
		total := 0
		for stroke, tokens := range skipped {
			total += len(tokens)
			s.log.Warn("skipped malformed coordinate tokens",
				logging.String("ui", raw.ID),
				logging.Int("stroke", stroke),
				logging.Int("tokens", len(tokens)),
				logging.String("first", tokens[0]),
			)
		}
		s.met.AddSkippedTokens(total)
	}

	set = smoothing.Smooth(ink.Collapse(set))

	fv, err := features.Extract(set)
	if err != nil {
		if app := (*errors.AppError)(nil); errors.As(err, &app) {
			return nil, app.WithDetail("ui=" + raw.ID)
		}
		return nil, err
	}

	return &ink.Sample{ID: raw.ID, Strokes: set, Features: fv}, nil
}
