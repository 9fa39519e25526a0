package metrics

import "github.com/kilianp07/transport/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
	// Textfile, when set, receives the Prometheus registry in text format at
	// the end of a command run.
	Textfile string `json:"textfile"`
}
