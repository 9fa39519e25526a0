package metrics

// MultiSink fans events out to several sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSolve forwards the event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordSolve(ev SolveEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordSolve(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordStep forwards pivots to the sinks that record them.
func (m *MultiSink) RecordStep(ev StepEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(StepRecorder); ok {
			if err := rec.RecordStep(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
