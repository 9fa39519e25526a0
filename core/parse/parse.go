// Package parse turns raw table cells into numbers. A cell holds a plain
// integer, a decimal or a "numerator/denominator" fraction; anything else,
// including an empty cell, is absent.
package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kilianp07/transport/core/model"
)

// DefaultPrecision is the number of decimal places kept by Value.
const DefaultPrecision = 3

// Parser converts cells with a fixed number of decimal places.
type Parser struct {
	// Precision is the number of decimals kept; zero means DefaultPrecision.
	Precision int
}

// Value parses s with DefaultPrecision.
func Value(s string) (float64, bool) { return Parser{}.Value(s) }

// Problem parses string cells with DefaultPrecision.
func Problem(supply, demand []string, costs [][]string) (model.Problem, error) {
	return Parser{}.Problem(supply, demand, costs)
}

// Grid parses a table laid out as the input form shows it.
func Grid(rows [][]string) (model.Problem, error) { return Parser{}.Grid(rows) }

func (p Parser) precision() int {
	if p.Precision <= 0 {
		return DefaultPrecision
	}
	return p.Precision
}

// Value returns the number in s rounded to the parser precision. ok is false
// when s is empty, malformed, a fraction over zero, or not finite.
func (p Parser) Value(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	var v float64
	if num, den, found := strings.Cut(s, "/"); found {
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, false
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil || d == 0 {
			return 0, false
		}
		v = n / d
	} else {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		v = f
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	scale := math.Pow(10, float64(p.precision()))
	r := math.Round(v*scale) / scale
	if r == 0 {
		r = 0
	}
	return r, true
}

// Problem parses every cell and validates the result. The first absent cell,
// in supply, demand then cost order, is reported as a *model.CellError
// wrapping model.ErrMissingValue.
func (p Parser) Problem(supply, demand []string, costs [][]string) (model.Problem, error) {
	out := model.Problem{
		Supply: p.vector(supply),
		Demand: p.vector(demand),
		Costs:  make([][]float64, len(costs)),
	}
	for i, row := range costs {
		out.Costs[i] = p.vector(row)
	}
	if err := out.Validate(); err != nil {
		return model.Problem{}, err
	}
	return out, nil
}

// Grid parses rows where row 0 holds a corner cell followed by the demand of
// each destination, and every further row holds the supply of a source
// followed by its costs.
func (p Parser) Grid(rows [][]string) (model.Problem, error) {
	if len(rows) < 2 || len(rows[0]) < 2 {
		return model.Problem{}, fmt.Errorf("%w: table needs a demand row and at least one source", model.ErrDimensionMismatch)
	}
	demand := rows[0][1:]
	supply := make([]string, 0, len(rows)-1)
	costs := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			supply = append(supply, "")
			costs = append(costs, nil)
			continue
		}
		supply = append(supply, row[0])
		costs = append(costs, row[1:])
	}
	return p.Problem(supply, demand, costs)
}

// vector maps absent cells to NaN so validation can name them.
func (p Parser) vector(cells []string) []float64 {
	out := make([]float64, len(cells))
	for k, c := range cells {
		v, ok := p.Value(c)
		if !ok {
			v = math.NaN()
		}
		out[k] = v
	}
	return out
}
