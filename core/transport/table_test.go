package transport

import (
	"testing"

	"github.com/kilianp07/transport/core/model"
)

func scenarioA() model.Problem {
	return model.Problem{
		Supply: []float64{20, 30},
		Demand: []float64{10, 40},
		Costs:  [][]float64{{2, 3}, {4, 1}},
	}
}

func scenarioB() model.Problem {
	return model.Problem{
		Supply: []float64{30, 30},
		Demand: []float64{10, 20, 30},
		Costs:  [][]float64{{4, 6, 8}, {5, 3, 9}},
	}
}

func scenarioC() model.Problem {
	return model.Problem{
		Supply: []float64{10, 20},
		Demand: []float64{5, 5, 5},
		Costs:  [][]float64{{1, 2, 3}, {4, 5, 6}},
	}
}

func classic743() model.Problem {
	return model.Problem{
		Supply: []float64{7, 9, 18},
		Demand: []float64{5, 8, 7, 14},
		Costs: [][]float64{
			{19, 30, 50, 10},
			{70, 30, 40, 60},
			{40, 8, 70, 20},
		},
	}
}

func amount(t *testing.T, tb *Table, i, j int) float64 {
	t.Helper()
	c := tb.Cell(i, j)
	if !c.Basic {
		t.Fatalf("cell A%dB%d is not basic", i+1, j+1)
	}
	return c.Amount
}

func TestNewTableCopiesInput(t *testing.T) {
	p := scenarioA()
	tb := NewTable(p)
	p.Supply[0] = 99
	p.Costs[0][0] = 99
	if tb.Supply()[0] != 20 || tb.Cell(0, 0).Cost != 2 {
		t.Fatalf("table shares memory with the problem")
	}
	if tb.Rows() != 2 || tb.Columns() != 2 {
		t.Fatalf("unexpected shape %dx%d", tb.Rows(), tb.Columns())
	}
	if tb.BasicCount() != 0 || tb.TotalCost() != 0 {
		t.Fatalf("fresh table must be empty")
	}
}

func TestBalanceAlreadyClosed(t *testing.T) {
	tb := NewTable(scenarioA())
	if !IsBalanced(tb) {
		t.Fatalf("scenario A is balanced")
	}
	side, gap := Balance(tb)
	if side != model.DummyNone || gap != 0 {
		t.Fatalf("expected no dummy, got %v %v", side, gap)
	}
	if tb.Columns() != 2 || tb.Rows() != 2 {
		t.Fatalf("balanced table must not grow")
	}
}

func TestBalanceAddsDummyDestination(t *testing.T) {
	tb := NewTable(scenarioC())
	side, gap := Balance(tb)
	if side != model.DummyDemand || gap != 15 {
		t.Fatalf("expected dummy demand of 15, got %v %v", side, gap)
	}
	want := []float64{5, 5, 5, 15}
	got := tb.Demand()
	if len(got) != len(want) {
		t.Fatalf("demand %v", got)
	}
	for j := range want {
		if got[j] != want[j] {
			t.Fatalf("demand %v, want %v", got, want)
		}
	}
	for i := 0; i < tb.Rows(); i++ {
		if c := tb.Cell(i, 3).Cost; c != 0 {
			t.Fatalf("dummy column cost %v", c)
		}
	}
	if !IsBalanced(tb) {
		t.Fatalf("table must be balanced after Balance")
	}
}

func TestBalanceAddsDummySource(t *testing.T) {
	tb := NewTable(model.Problem{
		Supply: []float64{5},
		Demand: []float64{4, 6},
		Costs:  [][]float64{{1, 2}},
	})
	side, gap := Balance(tb)
	if side != model.DummySupply || gap != 5 {
		t.Fatalf("expected dummy supply of 5, got %v %v", side, gap)
	}
	if tb.Rows() != 2 || tb.Supply()[1] != 5 {
		t.Fatalf("supply %v", tb.Supply())
	}
	if tb.Cell(1, 0).Cost != 0 || tb.Cell(1, 1).Cost != 0 {
		t.Fatalf("dummy row must cost nothing")
	}
}

func TestNorthwestCornerScenarioA(t *testing.T) {
	tb := NewTable(scenarioA())
	NorthwestCorner(tb)
	if amount(t, tb, 0, 0) != 10 || amount(t, tb, 0, 1) != 10 || amount(t, tb, 1, 1) != 30 {
		t.Fatalf("unexpected plan %v", tb.Basic())
	}
	if tb.Cell(1, 0).Basic {
		t.Fatalf("A2B1 must stay empty")
	}
	if tb.TotalCost() != 80 {
		t.Fatalf("cost %v, want 80", tb.TotalCost())
	}
	if !tb.Feasible() || !tb.SpanningTree() {
		t.Fatalf("northwest plan must be a feasible spanning tree")
	}
}

func TestNorthwestCornerTieZeroesBothSides(t *testing.T) {
	tb := NewTable(scenarioB())
	NorthwestCorner(tb)
	if tb.BasicCount() != 3 {
		t.Fatalf("expected 3 basic cells, got %v", tb.Basic())
	}
	if amount(t, tb, 0, 1) != 20 || amount(t, tb, 1, 2) != 30 {
		t.Fatalf("unexpected plan %v", tb.Basic())
	}
	if tb.Cell(0, 2).Basic || tb.Cell(1, 1).Basic {
		t.Fatalf("tie must skip the neighbours")
	}
	if tb.TotalCost() != 430 {
		t.Fatalf("cost %v, want 430", tb.TotalCost())
	}
	if !tb.Feasible() {
		t.Fatalf("plan not feasible")
	}
	if !IsDegenerate(tb) {
		t.Fatalf("scenario B is degenerate")
	}
}

func TestResolveDegeneracyInsertsFirstAcyclicCell(t *testing.T) {
	tb := NewTable(scenarioB())
	NorthwestCorner(tb)
	inserted, err := ResolveDegeneracy(tb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inserted) != 1 || inserted[0] != (model.Pos{Row: 0, Col: 2}) {
		t.Fatalf("expected A1B3, got %v", inserted)
	}
	if c := tb.Cell(0, 2); !c.Basic || c.Amount != 0 {
		t.Fatalf("A1B3 must be basic with zero amount")
	}
	if !tb.SpanningTree() {
		t.Fatalf("basis must be a spanning tree")
	}
	if tb.TotalCost() != 430 {
		t.Fatalf("zero allocation must not change the cost")
	}
}

func TestResolveDegeneracyNoop(t *testing.T) {
	tb := NewTable(scenarioA())
	NorthwestCorner(tb)
	inserted, err := ResolveDegeneracy(tb)
	if err != nil || len(inserted) != 0 {
		t.Fatalf("expected nothing to do, got %v %v", inserted, err)
	}
}

func TestResolveDegeneracySeveralZeros(t *testing.T) {
	// Every northwest allocation exhausts a row and a column together.
	tb := NewTable(model.Problem{
		Supply: []float64{1, 2, 3},
		Demand: []float64{1, 2, 3},
		Costs:  [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	})
	NorthwestCorner(tb)
	inserted, err := ResolveDegeneracy(tb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inserted) != 2 {
		t.Fatalf("expected 2 zero allocations, got %v", inserted)
	}
	want := []model.Pos{{Row: 0, Col: 1}, {Row: 0, Col: 2}}
	for k := range want {
		if inserted[k] != want[k] {
			t.Fatalf("inserted %v, want %v", inserted, want)
		}
	}
	if !tb.SpanningTree() {
		t.Fatalf("basis must be a spanning tree")
	}
}

func TestSpanningTreeRejectsLoop(t *testing.T) {
	tb := NewTable(model.Problem{
		Supply: []float64{2, 2},
		Demand: []float64{2, 2},
		Costs:  [][]float64{{1, 1}, {1, 1}},
	})
	for _, p := range []model.Pos{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}} {
		tb.At(p).setAmount(1)
	}
	if tb.SpanningTree() {
		t.Fatalf("four cells on a 2x2 table cannot be a tree")
	}
	if !tb.Feasible() {
		t.Fatalf("amounts add up")
	}
}

func TestNearlyEqual(t *testing.T) {
	cases := []struct {
		a, b float64
		want bool
	}{
		{0, 1e-12, true},
		{1e9, 1e9 + 0.5, true},
		{1, 1.1, false},
		{0.1 + 0.2, 0.3, true},
	}
	for _, c := range cases {
		if got := nearlyEqual(c.a, c.b, DefaultTolerance); got != c.want {
			t.Fatalf("nearlyEqual(%v,%v)=%v", c.a, c.b, got)
		}
	}
}
