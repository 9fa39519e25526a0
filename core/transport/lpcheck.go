package transport

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/kilianp07/transport/core/model"
)

// lpSolve points to the LP solver used by LPCost. It can be overridden in tests.
var lpSolve = func(c []float64, A mat.Matrix, b []float64) (float64, error) {
	f, _, err := lp.Simplex(c, A, b, 1e-10, nil)
	return f, err
}

// LPCost solves the balanced form of p as a plain linear program and returns
// the optimal cost. It is an independent check on the potential method.
//
// Each route x[i][j] is a variable. Every supply row and every demand column
// but the last gets an equality constraint; the last demand row follows from
// the others once the problem is balanced.
func LPCost(p model.Problem) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	t := NewTable(p)
	Balance(t)
	m, n := t.Rows(), t.Columns()

	c := make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			c[i*n+j] = t.Cell(i, j).Cost
		}
	}
	rows := m + n - 1
	A := mat.NewDense(rows, m*n, nil)
	b := make([]float64, rows)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			A.Set(i, i*n+j, 1)
		}
		b[i] = t.supply[i]
	}
	for j := 0; j < n-1; j++ {
		for i := 0; i < m; i++ {
			A.Set(m+j, i*n+j, 1)
		}
		b[m+j] = t.demand[j]
	}
	f, err := lpSolve(c, A, b)
	if err != nil {
		return 0, fmt.Errorf("lp: %w", err)
	}
	return f, nil
}
