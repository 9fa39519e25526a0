package model

import (
	"fmt"
	"math"
)

// Problem is a transportation problem: what each source can ship, what each
// destination needs and the unit cost of every source/destination route.
type Problem struct {
	Name   string      `json:"name,omitempty"`
	Supply []float64   `json:"supply"`
	Demand []float64   `json:"demand"`
	Costs  [][]float64 `json:"costs"`
}

// Rows returns the number of sources.
func (p Problem) Rows() int { return len(p.Supply) }

// Columns returns the number of destinations.
func (p Problem) Columns() int { return len(p.Demand) }

// Validate checks that the cost matrix matches the vectors and that every
// value is present and non-negative. NaN and infinities count as absent.
func (p Problem) Validate() error {
	if len(p.Supply) == 0 || len(p.Demand) == 0 {
		return fmt.Errorf("%w: supply has %d entries, demand has %d", ErrDimensionMismatch, len(p.Supply), len(p.Demand))
	}
	if len(p.Costs) != len(p.Supply) {
		return fmt.Errorf("%w: %d cost rows for %d supply entries", ErrDimensionMismatch, len(p.Costs), len(p.Supply))
	}
	for i, row := range p.Costs {
		if len(row) != len(p.Demand) {
			return fmt.Errorf("%w: cost row %d has %d columns for %d demand entries", ErrDimensionMismatch, i+1, len(row), len(p.Demand))
		}
	}
	for i, v := range p.Supply {
		if err := checkValue(KindSupply, i, -1, v); err != nil {
			return err
		}
	}
	for j, v := range p.Demand {
		if err := checkValue(KindDemand, -1, j, v); err != nil {
			return err
		}
	}
	for i, row := range p.Costs {
		for j, v := range row {
			if err := checkValue(KindCost, i, j, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkValue(kind CellKind, row, col int, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &CellError{Kind: kind, Row: row, Col: col, Err: ErrMissingValue}
	}
	if v < 0 {
		return &CellError{Kind: kind, Row: row, Col: col, Err: ErrNegativeValue}
	}
	return nil
}

// Clone returns a deep copy so callers can keep their input untouched.
func (p Problem) Clone() Problem {
	cp := Problem{
		Name:   p.Name,
		Supply: append([]float64(nil), p.Supply...),
		Demand: append([]float64(nil), p.Demand...),
		Costs:  make([][]float64, len(p.Costs)),
	}
	for i, row := range p.Costs {
		cp.Costs[i] = append([]float64(nil), row...)
	}
	return cp
}
