package transport

import (
	"fmt"

	"github.com/kilianp07/transport/core/model"
)

// IsDegenerate reports whether the plan has fewer than m+n-1 basic cells.
func IsDegenerate(t *Table) bool {
	return t.BasicCount() < t.Rows()+t.Columns()-1
}

// ResolveDegeneracy completes the basic cells into a spanning tree by adding
// zero allocations. Each round takes the first empty cell in row-major order
// that does not close a loop with the current basic cells. The inserted
// positions are returned in insertion order.
func ResolveDegeneracy(t *Table) ([]model.Pos, error) {
	var inserted []model.Pos
	for IsDegenerate(t) {
		pos, ok := nextZeroCell(t)
		if !ok {
			return inserted, fmt.Errorf("%w: no zero allocation keeps the basis acyclic (%d of %d basic cells)",
				ErrInvariantViolation, t.BasicCount(), t.Rows()+t.Columns()-1)
		}
		t.At(pos).setAmount(0)
		inserted = append(inserted, pos)
	}
	return inserted, nil
}

func nextZeroCell(t *Table) (model.Pos, bool) {
	basic := t.Basic()
	for i := range t.cells {
		for j := range t.cells[i] {
			if t.cells[i][j].Basic {
				continue
			}
			p := model.Pos{Row: i, Col: j}
			if FindCycle(p, basic) == nil {
				return p, true
			}
		}
	}
	return model.Pos{}, false
}
