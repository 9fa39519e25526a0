package scenarios

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kilianp07/transport/core/model"
	"github.com/kilianp07/transport/core/parse"
	"github.com/kilianp07/transport/core/transport"
	"github.com/kilianp07/transport/infra/logger"
	"github.com/kilianp07/transport/infra/metrics"
)

var inputErrors = map[string]error{
	"dimension_mismatch": model.ErrDimensionMismatch,
	"missing_value":      model.ErrMissingValue,
	"negative_value":     model.ErrNegativeValue,
}

func RunScenario(t *testing.T, sc *Scenario) {
	reg := prometheus.NewRegistry()
	sink, err := metrics.NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("prom sink: %v", err)
	}
	solver := transport.NewSolver(transport.Config{MaxIterations: sc.MaxIterations}, logger.NopLogger{}, sink)

	exp := sc.Expected
	p, err := sc.Problem.Problem(parse.Parser{})
	if err == nil {
		var sol model.Solution
		sol, err = solver.Solve(context.Background(), p)
		if err == nil {
			if exp.Error != "" {
				t.Fatalf("expected %s, got a solution", exp.Error)
			}
			check(t, exp, sol)
			checkMetrics(t, reg, sol)
			return
		}
	}
	want, ok := inputErrors[exp.Error]
	if !ok {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func check(t *testing.T, exp Expected, sol model.Solution) {
	t.Helper()
	if exp.TotalCost != nil && !near(sol.TotalCost, *exp.TotalCost) {
		t.Errorf("total cost %v, want %v", sol.TotalCost, *exp.TotalCost)
	}
	if exp.InitialCost != nil && !near(sol.InitialCost, *exp.InitialCost) {
		t.Errorf("initial cost %v, want %v", sol.InitialCost, *exp.InitialCost)
	}
	if exp.Optimal != nil && sol.Optimal != *exp.Optimal {
		t.Errorf("optimal %v, want %v", sol.Optimal, *exp.Optimal)
	}
	if exp.Iterations != nil && sol.Iterations != *exp.Iterations {
		t.Errorf("iterations %d, want %d", sol.Iterations, *exp.Iterations)
	}
	if exp.Degenerate != nil && sol.Degenerate != *exp.Degenerate {
		t.Errorf("degenerate %v, want %v", sol.Degenerate, *exp.Degenerate)
	}
	if exp.Dummy != "" && sol.Dummy.String() != exp.Dummy {
		t.Errorf("dummy %s, want %s", sol.Dummy, exp.Dummy)
	}
	if exp.Allocation == nil {
		return
	}
	if len(exp.Allocation) != len(sol.Allocation) {
		t.Fatalf("allocation has %d rows, want %d", len(sol.Allocation), len(exp.Allocation))
	}
	for i, row := range exp.Allocation {
		if len(row) != len(sol.Allocation[i]) {
			t.Fatalf("allocation row A%d has %d cells, want %d", i+1, len(sol.Allocation[i]), len(row))
		}
		for j, want := range row {
			got, ok := sol.Amount(i, j)
			switch {
			case want == nil && ok:
				t.Errorf("A%dB%d = %v, want empty", i+1, j+1, got)
			case want != nil && !ok:
				t.Errorf("A%dB%d empty, want %v", i+1, j+1, *want)
			case want != nil && !near(got, *want):
				t.Errorf("A%dB%d = %v, want %v", i+1, j+1, got, *want)
			}
		}
	}
}

func checkMetrics(t *testing.T, reg *prometheus.Registry, sol model.Solution) {
	t.Helper()
	n, err := testutil.GatherAndCount(reg, "transport_solves_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if n != 1 {
		t.Errorf("expected one solve outcome series, got %d", n)
	}
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != "transport_pivots_total" {
			continue
		}
		if got := mf.GetMetric()[0].GetCounter().GetValue(); int(got) != sol.Iterations {
			t.Errorf("pivot counter %v, want %d", got, sol.Iterations)
		}
		return
	}
	t.Errorf("pivot counter missing")
}

func near(a, b float64) bool { return math.Abs(a-b) <= 1e-6*math.Max(1, math.Abs(b)) }
