package metrics

import (
	"time"

	"github.com/kilianp07/transport/core/model"
)

// SolveEvent summarizes one solve for observability purposes.
type SolveEvent struct {
	ID          string
	Name        string
	Rows        int
	Columns     int
	Balanced    bool
	Dummy       model.DummySide
	Degenerate  bool
	Optimal     bool
	Iterations  int
	InitialCost float64
	TotalCost   float64
	Duration    time.Duration
	// Err is the failure message, empty on success.
	Err  string
	Time time.Time
}

// Outcome classifies the event: "optimal", "capped" or "error".
func (e SolveEvent) Outcome() string {
	switch {
	case e.Err != "":
		return "error"
	case e.Optimal:
		return "optimal"
	default:
		return "capped"
	}
}

// MetricsSink records solve results.
type MetricsSink interface {
	RecordSolve(ev SolveEvent) error
}

// StepEvent is one pivot of the potential method.
type StepEvent struct {
	SolveID string
	Step    model.Step
	Time    time.Time
}

// StepRecorder is implemented by sinks able to record individual pivots.
type StepRecorder interface {
	RecordStep(ev StepEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSolve(SolveEvent) error { return nil }
func (NopSink) RecordStep(StepEvent) error   { return nil }
