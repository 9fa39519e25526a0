package transport

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/transport/core/logger"
	"github.com/kilianp07/transport/core/metrics"
	"github.com/kilianp07/transport/core/model"
	"github.com/kilianp07/transport/core/monitoring"
)

// resolveDegeneracy points to the degeneracy repair used by Solve. Tests
// override it to simulate a broken basis.
var resolveDegeneracy = ResolveDegeneracy

// Solver runs the full pipeline on independent problems. It holds no state
// between calls and may be shared by concurrent goroutines.
type Solver struct {
	cfg  Config
	log  logger.Logger
	sink metrics.MetricsSink
}

// NewSolver returns a Solver. A nil logger or sink disables that output.
func NewSolver(cfg Config, log logger.Logger, sink metrics.MetricsSink) *Solver {
	cfg.SetDefaults()
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Solver{cfg: cfg, log: logger.OrNop(log), sink: sink}
}

// Solve computes a minimum cost plan with the default configuration.
func Solve(supply, demand []float64, costs [][]float64) (model.Solution, error) {
	p := model.Problem{Supply: supply, Demand: demand, Costs: costs}
	return NewSolver(Config{}, nil, nil).Solve(context.Background(), p)
}

// Solve validates p, balances it, builds the northwest corner plan, repairs
// degeneracy and improves the plan with the potential method. Hitting the
// iteration cap is not an error: the best plan is returned with Optimal set
// to false.
func (s *Solver) Solve(ctx context.Context, p model.Problem) (model.Solution, error) {
	start := time.Now()
	id := uuid.NewString()
	ev := metrics.SolveEvent{ID: id, Name: p.Name, Rows: p.Rows(), Columns: p.Columns(), Time: start}

	sol, err := s.solve(ctx, id, p)
	ev.Duration = time.Since(start)
	if err != nil {
		ev.Err = err.Error()
		if errors.Is(err, ErrInvariantViolation) {
			s.log.Errorf("solve %s: %v", id, err)
			monitoring.CaptureException(err, map[string]string{"solve_id": id, "problem": p.Name})
		} else {
			s.log.Warnf("solve %s refused: %v", id, err)
		}
		s.record(ev)
		return model.Solution{}, err
	}

	ev.Balanced = sol.Balanced
	ev.Dummy = sol.Dummy
	ev.Degenerate = sol.Degenerate
	ev.Optimal = sol.Optimal
	ev.Iterations = sol.Iterations
	ev.InitialCost = sol.InitialCost
	ev.TotalCost = sol.TotalCost
	s.record(ev)

	if !sol.Optimal {
		s.log.Warnf("solve %s stopped after %d iterations without confirming optimality", id, sol.Iterations)
	}
	s.log.Infof("solve %s finished: cost=%s optimal=%t iterations=%d", id, Format(sol.TotalCost), sol.Optimal, sol.Iterations)
	return sol, nil
}

func (s *Solver) solve(ctx context.Context, id string, p model.Problem) (model.Solution, error) {
	if err := p.Validate(); err != nil {
		return model.Solution{}, err
	}
	if d := s.cfg.Timeout(); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	t := NewTable(p)
	t.SetTolerance(s.cfg.Tolerance)
	tr := &trace{}
	sol := model.Solution{ID: id, Name: p.Name}

	sol.Balanced = IsBalanced(t)
	side, gap := Balance(t)
	sol.Dummy = side
	switch side {
	case model.DummyDemand:
		tr.add("Table is unbalanced (open problem): supply exceeds demand by %s, added dummy destination B%d", Format(gap), t.Columns())
	case model.DummySupply:
		tr.add("Table is unbalanced (open problem): demand exceeds supply by %s, added dummy source A%d", Format(gap), t.Rows())
	default:
		tr.add("Table is balanced (closed problem)")
	}

	NorthwestCorner(t)
	sol.InitialCost = t.TotalCost()
	tr.add("Initial plan (northwest corner):")
	tr.plan(t)
	tr.add("Initial plan cost:")
	tr.add(" > F = %s", Format(sol.InitialCost))

	inserted, err := resolveDegeneracy(t)
	if err != nil {
		return model.Solution{}, err
	}
	if len(inserted) > 0 {
		sol.Degenerate = true
		tr.add("Plan is degenerate: %d basic cells for %d required", t.BasicCount()-len(inserted), t.Rows()+t.Columns()-1)
		for _, p := range inserted {
			tr.add(" > zero allocation added at %s", p)
		}
		tr.plan(t)
	} else {
		tr.add("Plan is not degenerate")
	}

	pm := PotentialMethod{
		MaxIterations: s.cfg.MaxIterations,
		OnStep: func(step model.Step) {
			tr.add("Potential method step %d:", step.Index)
			tr.add(" > u = %s, v = %s", formatVector(step.U), formatVector(step.V))
			tr.add(" > entering %s (delta %s), cycle %s, theta %s, leaving %s",
				step.Entering, Format(step.Delta), formatCycle(step.Cycle), Format(step.Theta), step.Leaving)
			tr.plan(t)
			tr.add(" > Fmin = %s", Format(step.Cost))
			s.log.Debugw("pivot", map[string]any{
				"solve_id": id,
				"step":     step.Index,
				"entering": step.Entering.String(),
				"leaving":  step.Leaving.String(),
				"theta":    step.Theta,
				"cost":     step.Cost,
			})
			if rec, ok := s.sink.(metrics.StepRecorder); ok {
				if err := rec.RecordStep(metrics.StepEvent{SolveID: id, Step: step, Time: time.Now()}); err != nil {
					s.log.Warnf("record step: %v", err)
				}
			}
		},
	}
	out, err := pm.Run(ctx, t)
	if err != nil {
		return model.Solution{}, err
	}

	if out.Optimal {
		tr.add("Plan is optimal: every reduced cost is non-negative")
	} else {
		tr.add("Iteration limit of %d reached, plan is not confirmed optimal", pm.MaxIterations)
	}
	sol.Allocation = t.Allocation()
	sol.Supply = t.Supply()
	sol.Demand = t.Demand()
	sol.TotalCost = t.TotalCost()
	tr.add("Minimal cost:")
	tr.add(" > F = %s", Format(sol.TotalCost))
	sol.Optimal = out.Optimal
	sol.Iterations = out.Iterations
	sol.Steps = out.Steps
	sol.Trace = tr.lines
	return sol, nil
}

func (s *Solver) record(ev metrics.SolveEvent) {
	if err := s.sink.RecordSolve(ev); err != nil {
		s.log.Warnf("record solve %s: %v", ev.ID, err)
	}
}
