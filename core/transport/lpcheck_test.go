package transport

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/kilianp07/transport/core/model"
)

func TestLPCostMatchesPotentialMethod(t *testing.T) {
	problems := map[string]model.Problem{
		"classic":   classic743(),
		"scenarioB": scenarioB(),
		"open":      scenarioC(),
		"fourDestinations": {
			Supply: []float64{300, 400, 500},
			Demand: []float64{250, 350, 400, 200},
			Costs: [][]float64{
				{3, 1, 7, 4},
				{2, 6, 5, 9},
				{8, 3, 3, 2},
			},
		},
		"shortage": {
			Supply: []float64{5},
			Demand: []float64{4, 6},
			Costs:  [][]float64{{1, 2}},
		},
	}
	for name, p := range problems {
		want, err := LPCost(p)
		if err != nil {
			t.Fatalf("%s: lp: %v", name, err)
		}
		sol, err := Solve(p.Supply, p.Demand, p.Costs)
		if err != nil {
			t.Fatalf("%s: solve: %v", name, err)
		}
		if !sol.Optimal {
			t.Fatalf("%s: not optimal", name)
		}
		if math.Abs(sol.TotalCost-want) > 1e-6 {
			t.Fatalf("%s: cost %v, lp %v", name, sol.TotalCost, want)
		}
	}
}

func TestLPCostKnownOptimum(t *testing.T) {
	f, err := LPCost(model.Problem{
		Supply: []float64{300, 400, 500},
		Demand: []float64{250, 350, 400, 200},
		Costs:  [][]float64{{3, 1, 7, 4}, {2, 6, 5, 9}, {8, 3, 3, 2}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(f-2850) > 1e-6 {
		t.Fatalf("expected 2850 got %v", f)
	}
}

func TestLPCostSolverError(t *testing.T) {
	old := lpSolve
	lpSolve = func([]float64, mat.Matrix, []float64) (float64, error) { return 0, errors.New("fail") }
	defer func() { lpSolve = old }()

	if _, err := LPCost(scenarioA()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLPCostRejectsInvalidProblem(t *testing.T) {
	_, err := LPCost(model.Problem{Supply: []float64{1}})
	if !errors.Is(err, model.ErrDimensionMismatch) {
		t.Fatalf("expected dimension mismatch, got %v", err)
	}
}
