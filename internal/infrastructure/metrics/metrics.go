// Package metrics defines the Prometheus instrumentation of the extraction
// pipeline.  All collectors live on a private registry so tests and repeated
// constructions never collide with the global default registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// namespace prefixes every metric name.
const namespace = "ink"

// Pipeline holds all pipeline metrics.  Construct it once per process via
// NewPipeline and inject it; a nil *Pipeline is valid and records nothing,
// which keeps call sites free of conditionals when metrics are disabled.
type Pipeline struct {
	registry *prometheus.Registry

	// SamplesTotal counts processed samples by terminal status
	// ("ok" | "failed").
	SamplesTotal *prometheus.CounterVec

	// SampleDuration observes wall-clock seconds per sample.
	SampleDuration prometheus.Histogram

	// SkippedTokens counts malformed coordinate tokens dropped during
	// parsing.
	SkippedTokens prometheus.Counter

	// StrokesPerSample observes the stroke count of each processed sample.
	StrokesPerSample prometheus.Histogram

	// ActiveWorkers tracks the number of busy pool workers.
	ActiveWorkers prometheus.Gauge
}

// NewPipeline registers all pipeline collectors on a fresh registry.
func NewPipeline() *Pipeline {
	reg := prometheus.NewRegistry()
	p := &Pipeline{
		registry: reg,
		SamplesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_processed_total",
			Help:      "Samples processed, by terminal status.",
		}, []string{"status"}),
		SampleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sample_duration_seconds",
			Help:      "Wall-clock time spent extracting one sample.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		SkippedTokens: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_tokens_total",
			Help:      "Malformed coordinate tokens skipped during parsing.",
		}),
		StrokesPerSample: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "strokes_per_sample",
			Help:      "Stroke count of each processed sample.",
			Buckets:   []float64{1, 2, 3, 4, 5, 8, 12, 20},
		}),
		ActiveWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_workers",
			Help:      "Pool workers currently extracting a sample.",
		}),
	}
	reg.MustRegister(
		p.SamplesTotal,
		p.SampleDuration,
		p.SkippedTokens,
		p.StrokesPerSample,
		p.ActiveWorkers,
	)
	return p
}

// Handler returns the exposition endpoint for this registry.
func (p *Pipeline) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// ObserveSample records the terminal status of one sample.  Nil-safe.
func (p *Pipeline) ObserveSample(status string, seconds float64, strokes int) {
	if p == nil {
		return
	}
	p.SamplesTotal.WithLabelValues(status).Inc()
	p.SampleDuration.Observe(seconds)
	if strokes > 0 {
		p.StrokesPerSample.Observe(float64(strokes))
	}
}

// AddSkippedTokens records n malformed tokens.  Nil-safe.
func (p *Pipeline) AddSkippedTokens(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.SkippedTokens.Add(float64(n))
}

// WorkerStarted and WorkerDone bracket one unit of pool work.  Nil-safe.
func (p *Pipeline) WorkerStarted() {
	if p != nil {
		p.ActiveWorkers.Inc()
	}
}

// WorkerDone marks the end of one unit of pool work.  Nil-safe.
func (p *Pipeline) WorkerDone() {
	if p != nil {
		p.ActiveWorkers.Dec()
	}
}
