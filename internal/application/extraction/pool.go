package extraction

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/Ink-Intelligence/internal/domain/ink"
	"github.com/turtacn/Ink-Intelligence/internal/infrastructure/logging"
	"github.com/turtacn/Ink-Intelligence/pkg/errors"
)

// defaultProgressInterval is the number of processed samples between progress
// log entries when the caller does not set one.
const defaultProgressInterval = 100

// BatchOptions tunes a batch run.
type BatchOptions struct {
	// Workers is the pool size.  Zero or negative selects runtime.NumCPU().
	Workers int

	// ProgressInterval is the number of processed samples between progress
	// log entries.  Zero or negative selects the default.
	ProgressInterval int
}

// Failure records one sample that could not be processed.
type Failure struct {
	ID  string
	Err error
}

// ExtractBatch runs every raw sample through the pipeline on a bounded worker
// pool, attaches ground-truth labels, and returns processed samples in input
// order.  Failed samples are excluded from the result and reported in the
// failure list; the batch itself never fails because of them.  Cancelling ctx
// stops scheduling; samples not yet started are reported as failed with the
// context error.
func (s *Service) ExtractBatch(ctx context.Context, raws []ink.RawSample, lookup LabelLookup, opts BatchOptions) ([]*ink.Sample, []Failure) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(raws) {
		workers = len(raws)
	}
	interval := opts.ProgressInterval
	if interval <= 0 {
		interval = defaultProgressInterval
	}

	log := s.log.With(
		logging.String("run_id", uuid.NewString()),
		logging.Int("samples", len(raws)),
		logging.Int("workers", workers),
	)
	log.Info("starting batch extraction")
	start := time.Now()

	// Results and failures are written by index, so workers never contend
	// on a shared collection.
	results := make([]*ink.Sample, len(raws))
	failed := make([]error, len(raws))
	var processed atomic.Int64

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				failed[idx] = s.processOne(ctx, raws[idx], lookup, &results[idx])
				if n := processed.Add(1); n%int64(interval) == 0 {
					log.Info("batch progress",
						logging.Int("processed", int(n)),
						logging.Duration("elapsed", time.Since(start)),
					)
				}
			}
		}()
	}

dispatch:
	for idx := range raws {
		select {
		case jobs <- idx:
		case <-ctx.Done():
			for rest := idx; rest < len(raws); rest++ {
				failed[rest] = ctx.Err()
			}
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	samples := make([]*ink.Sample, 0, len(raws))
	var failures []Failure
	for idx, err := range failed {
		if err != nil {
			failures = append(failures, Failure{ID: raws[idx].ID, Err: err})
			continue
		}
		samples = append(samples, results[idx])
	}

	log.Info("batch extraction finished",
		logging.Int("ok", len(samples)),
		logging.Int("failed", len(failures)),
		logging.Duration("elapsed", time.Since(start)),
	)
	return samples, failures
}

// processOne runs a single sample end to end, including label attachment and
// metrics bookkeeping.
func (s *Service) processOne(ctx context.Context, raw ink.RawSample, lookup LabelLookup, out **ink.Sample) error {
	s.met.WorkerStarted()
	defer s.met.WorkerDone()
	start := time.Now()

	sample, err := s.Extract(ctx, raw)
	if err == nil && lookup != nil {
		var label string
		if label, err = lookup.Lookup(sample.ID); err == nil {
			sample.Label = label
		}
	}
	if err != nil {
		s.met.ObserveSample("failed", time.Since(start).Seconds(), 0)
		s.log.Error("sample failed",
			logging.String("ui", raw.ID),
			logging.String("code", string(errors.CodeOf(err))),
			logging.Err(err),
		)
		return err
	}

	s.met.ObserveSample("ok", time.Since(start).Seconds(), sample.Features.NumStrokes)
	*out = sample
	return nil
}
