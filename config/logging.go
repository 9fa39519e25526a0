package config

import (
	"fmt"
	"strings"
)

// LoggingConfig defines the level and output format of the zerolog loggers.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `json:"level"`
	// Format is "json" or "console". Empty follows APP_ENV.
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level and format names.
func (c LoggingConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %s", c.Level)
	}
	switch strings.ToLower(c.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown format %s", c.Format)
	}
	return nil
}
