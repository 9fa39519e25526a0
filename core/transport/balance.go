package transport

import (
	"math"

	"github.com/kilianp07/transport/core/model"
)

// IsBalanced reports whether total supply equals total demand.
func IsBalanced(t *Table) bool {
	return nearlyEqual(sum(t.supply), sum(t.demand), t.tol)
}

// Balance turns an open problem into a closed one by appending a single dummy
// entry of |supply - demand| with a zero-cost row or column. A surplus of
// supply goes to a dummy destination, a shortage to a dummy source. It returns
// the side that grew and the dummy amount, or DummyNone when the table was
// already balanced.
func Balance(t *Table) (model.DummySide, float64) {
	s, d := sum(t.supply), sum(t.demand)
	if nearlyEqual(s, d, t.tol) {
		return model.DummyNone, 0
	}
	gap := math.Abs(s - d)
	if s > d {
		t.appendColumn(gap)
		return model.DummyDemand, gap
	}
	t.appendRow(gap)
	return model.DummySupply, gap
}
