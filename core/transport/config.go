package transport

import (
	"fmt"
	"time"
)

// DefaultPrecision is the number of decimal places parsed cell values keep.
const DefaultPrecision = 3

// Config defines solver settings.
type Config struct {
	// MaxIterations caps the pivots of the potential method.
	MaxIterations int `json:"max_iterations"`
	// Precision is the number of decimal places kept when parsing cells.
	Precision int `json:"precision"`
	// Tolerance bounds rounding noise in amount and total comparisons.
	Tolerance float64 `json:"tolerance"`
	// TimeoutSeconds bounds one solve; zero means no limit.
	TimeoutSeconds int `json:"timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.MaxIterations == 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	if c.Precision == 0 {
		c.Precision = DefaultPrecision
	}
	if c.Tolerance == 0 {
		c.Tolerance = DefaultTolerance
	}
}

// Validate checks the settings are usable.
func (c Config) Validate() error {
	if c.MaxIterations < 0 {
		return fmt.Errorf("max_iterations must not be negative, got %d", c.MaxIterations)
	}
	if c.Precision < 0 || c.Precision > 12 {
		return fmt.Errorf("precision must be within [0,12], got %d", c.Precision)
	}
	if c.Tolerance < 0 || c.Tolerance >= 1 {
		return fmt.Errorf("tolerance must be within [0,1), got %g", c.Tolerance)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative, got %d", c.TimeoutSeconds)
	}
	return nil
}

// Timeout returns the solve time budget, zero when unlimited.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
