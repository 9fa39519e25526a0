// Package metrics defines how solve results are observed. Sinks such as
// PromSink and InfluxSink (package infra/metrics) record one SolveEvent per
// solve and, when they implement StepRecorder, one StepEvent per pivot. Sinks
// are built by name from configuration and combined with NewMultiSink when
// more than one is configured.
package metrics
