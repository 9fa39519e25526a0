package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/transport/core/metrics"
)

// PromSink records solve events in Prometheus metrics.
type PromSink struct {
	solves     *prometheus.CounterVec
	iterations prometheus.Histogram
	duration   prometheus.Histogram
	degenerate prometheus.Counter
	pivots     prometheus.Counter
}

// NewPromSink registers solver metrics on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	solves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "transport_solves_total",
		Help: "Total number of solves by outcome",
	}, []string{"outcome"})
	iterations := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "transport_solve_iterations",
		Help:    "Pivots performed by the potential method per solve",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "transport_solve_duration_seconds",
		Help:    "Wall time of one solve",
		Buckets: prometheus.DefBuckets,
	})
	degenerate := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "transport_degenerate_plans_total",
		Help: "Initial plans that needed zero allocations",
	})
	pivots := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "transport_pivots_total",
		Help: "Pivots performed across all solves",
	})

	var err error
	if solves, err = register(reg, solves); err != nil {
		return nil, err
	}
	if iterations, err = register(reg, iterations); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if degenerate, err = register(reg, degenerate); err != nil {
		return nil, err
	}
	if pivots, err = register(reg, pivots); err != nil {
		return nil, err
	}
	return &PromSink{
		solves:     solves,
		iterations: iterations,
		duration:   duration,
		degenerate: degenerate,
		pivots:     pivots,
	}, nil
}

// register reuses a collector already registered under the same name.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordSolve counts the solve and observes its iterations and duration.
// Failed solves are only counted.
func (s *PromSink) RecordSolve(ev coremetrics.SolveEvent) error {
	s.solves.WithLabelValues(ev.Outcome()).Inc()
	if ev.Err != "" {
		return nil
	}
	s.iterations.Observe(float64(ev.Iterations))
	s.duration.Observe(ev.Duration.Seconds())
	if ev.Degenerate {
		s.degenerate.Inc()
	}
	return nil
}

// RecordStep counts one pivot.
func (s *PromSink) RecordStep(coremetrics.StepEvent) error {
	s.pivots.Inc()
	return nil
}
