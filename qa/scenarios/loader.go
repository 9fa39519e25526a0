package scenarios

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/transport/infra/problemfile"
)

// Expected is what a scenario must produce. Nil fields are not checked.
type Expected struct {
	// Error names the input error: dimension_mismatch, missing_value or
	// negative_value. When set nothing else is checked.
	Error       string       `yaml:"error,omitempty"`
	TotalCost   *float64     `yaml:"total_cost,omitempty"`
	InitialCost *float64     `yaml:"initial_cost,omitempty"`
	Optimal     *bool        `yaml:"optimal,omitempty"`
	Iterations  *int         `yaml:"iterations,omitempty"`
	Degenerate  *bool        `yaml:"degenerate,omitempty"`
	Dummy       string       `yaml:"dummy,omitempty"`
	Allocation  [][]*float64 `yaml:"allocation,omitempty"`
}

type Scenario struct {
	Name          string           `yaml:"name"`
	Description   string           `yaml:"description,omitempty"`
	MaxIterations int              `yaml:"max_iterations,omitempty"`
	Problem       problemfile.File `yaml:"problem"`
	Expected      Expected         `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
