package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics on a
// private registry, suitable for textfile export after a one-shot run.
type PrometheusRecorder struct {
	registry      *prom.Registry
	resolveTotal  *prom.CounterVec
	dispatchTotal *prom.CounterVec
	duration      prom.Histogram
}

// NewPrometheusRecorder creates a recorder with its own registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	registry := prom.NewRegistry()

	resolveTotal := prom.NewCounterVec(prom.CounterOpts{
		Name: "docsdispatch_resolve_total",
		Help: "Branch resolution attempts by result.",
	}, []string{"result"})

	dispatchTotal := prom.NewCounterVec(prom.CounterOpts{
		Name: "docsdispatch_dispatch_total",
		Help: "Dispatch invocations by outcome.",
	}, []string{"outcome"})

	duration := prom.NewHistogram(prom.HistogramOpts{
		Name:    "docsdispatch_dispatch_duration_seconds",
		Help:    "Wall-clock duration of one dispatch, including the generator run.",
		Buckets: prom.ExponentialBuckets(0.01, 4, 8),
	})

	registry.MustRegister(resolveTotal, dispatchTotal, duration)

	return &PrometheusRecorder{
		registry:      registry,
		resolveTotal:  resolveTotal,
		dispatchTotal: dispatchTotal,
		duration:      duration,
	}
}

func (r *PrometheusRecorder) RecordResolve(_ string, found bool) {
	result := "match"
	if !found {
		result = "no_match"
	}
	r.resolveTotal.WithLabelValues(result).Inc()
}

func (r *PrometheusRecorder) RecordDispatch(outcome string, duration time.Duration) {
	r.dispatchTotal.WithLabelValues(outcome).Inc()
	r.duration.Observe(duration.Seconds())
}

// WriteTextfile writes the collected metrics to path in text exposition
// format for a textfile collector to pick up.
func (r *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
