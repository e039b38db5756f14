// Package metrics records dispatch outcomes. Components hold a Recorder
// and default to NoopRecorder, so metrics collection never requires nil
// checks at call sites. The Prometheus implementation targets the
// node_exporter textfile-collector pattern: a one-shot CLI has no server
// to scrape, so results are written in text exposition format on exit.
package metrics

import "time"

// Outcome labels for a single dispatch.
const (
	OutcomeBuilt = "built"
	OutcomeNoop  = "noop"
	OutcomeError = "error"
)

// Recorder receives dispatch metrics.
type Recorder interface {
	// RecordResolve records a branch resolution attempt.
	RecordResolve(branch string, found bool)

	// RecordDispatch records the terminal outcome of one invocation.
	RecordDispatch(outcome string, duration time.Duration)
}

// NoopRecorder is the default Recorder; all methods do nothing.
type NoopRecorder struct{}

func (NoopRecorder) RecordResolve(string, bool)           {}
func (NoopRecorder) RecordDispatch(string, time.Duration) {}
