package transport

import (
	"context"
	"fmt"
	"math"

	"github.com/kilianp07/transport/core/model"
)

// DefaultMaxIterations caps the number of pivots of one optimization run.
const DefaultMaxIterations = 20

// Potentials solves u[i] + v[j] = cost[i][j] over the basic cells with u[0]
// fixed to 0. Passes over the basic cells repeat until one assigns nothing new;
// a potential left unassigned means the basis does not span the table.
func Potentials(t *Table) (u, v []float64, err error) {
	m, n := t.Rows(), t.Columns()
	u, v = make([]float64, m), make([]float64, n)
	uKnown, vKnown := make([]bool, m), make([]bool, n)
	uKnown[0] = true
	basic := t.Basic()
	for {
		assigned := false
		for _, p := range basic {
			c := t.At(p)
			switch {
			case uKnown[p.Row] && !vKnown[p.Col]:
				v[p.Col] = c.Cost - u[p.Row]
				vKnown[p.Col] = true
				assigned = true
			case !uKnown[p.Row] && vKnown[p.Col]:
				u[p.Row] = c.Cost - v[p.Col]
				uKnown[p.Row] = true
				assigned = true
			}
		}
		if !assigned {
			break
		}
	}
	for i, ok := range uKnown {
		if !ok {
			return nil, nil, fmt.Errorf("%w: potential u%d unreachable from basic cells", ErrInvariantViolation, i+1)
		}
	}
	for j, ok := range vKnown {
		if !ok {
			return nil, nil, fmt.Errorf("%w: potential v%d unreachable from basic cells", ErrInvariantViolation, j+1)
		}
	}
	return u, v, nil
}

// EvaluateDeltas stores the reduced cost cost - (u+v) on every non-basic cell
// and returns the most negative one. Ties keep the first cell in row-major
// order. ok is false when no delta is negative, i.e. the plan is optimal.
func EvaluateDeltas(t *Table, u, v []float64) (entering model.Pos, delta float64, ok bool) {
	best := math.Inf(1)
	for i := range t.cells {
		for j := range t.cells[i] {
			c := &t.cells[i][j]
			if c.Basic {
				c.Evaluated = false
				continue
			}
			c.Delta = c.Cost - (u[i] + v[j])
			c.Evaluated = true
			if c.Delta < -t.tol && c.Delta < best {
				best = c.Delta
				entering = model.Pos{Row: i, Col: j}
				ok = true
			}
		}
	}
	if !ok {
		return model.Pos{}, 0, false
	}
	return entering, best, true
}

// Pivot moves entering into the basis along its loop. Cells at even loop
// positions gain theta, the smallest amount found at odd positions, and cells
// at odd positions lose it. One odd cell that drops to zero leaves the basis:
// the most expensive one, the first in loop order on equal cost. Any other cell
// that reached zero stays basic at zero so the basis keeps m+n-1 cells.
func Pivot(t *Table, entering model.Pos) (theta float64, leaving model.Pos, cycle []model.Pos, err error) {
	if t.At(entering).Basic {
		return 0, model.Pos{}, nil, fmt.Errorf("%w: entering cell %s is already basic", ErrInvariantViolation, entering)
	}
	cycle = FindCycle(entering, t.Basic())
	if len(cycle) < 4 {
		return 0, model.Pos{}, nil, fmt.Errorf("%w: no loop through entering cell %s", ErrInvariantViolation, entering)
	}

	theta = math.Inf(1)
	for k := 1; k < len(cycle); k += 2 {
		theta = math.Min(theta, t.At(cycle[k]).Amount)
	}

	t.At(entering).setAmount(0)
	var out *Cell
	for k, p := range cycle {
		c := t.At(p)
		if k%2 == 0 {
			c.Amount += theta
			continue
		}
		c.Amount -= theta
		if isZero(c.Amount, t.tol) {
			c.Amount = 0
			if out == nil || c.Cost > out.Cost {
				out = c
			}
		}
	}
	if out == nil {
		return 0, model.Pos{}, nil, fmt.Errorf("%w: no cell leaves the basis after pivot on %s", ErrInvariantViolation, entering)
	}
	out.clear()
	return theta, out.Pos(), cycle, nil
}

// PotentialMethod improves a non-degenerate plan until every reduced cost is
// non-negative or MaxIterations pivots have run.
type PotentialMethod struct {
	MaxIterations int
	// OnStep, when set, is called after every pivot.
	OnStep func(model.Step)
}

// Outcome summarizes an optimization run.
type Outcome struct {
	Optimal    bool
	Iterations int
	Steps      []model.Step
	// U and V hold the potentials of the final plan.
	U, V []float64
}

// Run executes the potential method on t in place. The context is checked
// before each pivot.
func (pm PotentialMethod) Run(ctx context.Context, t *Table) (Outcome, error) {
	limit := pm.MaxIterations
	if limit <= 0 {
		limit = DefaultMaxIterations
	}
	var out Outcome
	for {
		u, v, err := Potentials(t)
		if err != nil {
			return out, err
		}
		out.U, out.V = u, v
		entering, delta, improvable := EvaluateDeltas(t, u, v)
		if !improvable {
			out.Optimal = true
			return out, nil
		}
		if out.Iterations >= limit {
			return out, nil
		}
		if err := ctx.Err(); err != nil {
			return out, err
		}
		theta, leaving, cycle, err := Pivot(t, entering)
		if err != nil {
			return out, err
		}
		out.Iterations++
		step := model.Step{
			Index:    out.Iterations,
			Entering: entering,
			Delta:    delta,
			Theta:    theta,
			Leaving:  leaving,
			Cycle:    cycle,
			Cost:     t.TotalCost(),
			U:        u,
			V:        v,
		}
		out.Steps = append(out.Steps, step)
		if pm.OnStep != nil {
			pm.OnStep(step)
		}
	}
}
