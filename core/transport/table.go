package transport

import (
	"github.com/kilianp07/transport/core/model"
)

// Cell is one route of the allocation table. A basic cell carries an amount
// (possibly zero) and belongs to the current plan; a non-basic cell is empty.
type Cell struct {
	Row    int
	Col    int
	Cost   float64
	Amount float64
	Basic  bool
	// Delta is the reduced cost of a non-basic cell, valid when Evaluated.
	Delta     float64
	Evaluated bool
}

// Pos returns the cell address.
func (c *Cell) Pos() model.Pos { return model.Pos{Row: c.Row, Col: c.Col} }

func (c *Cell) setAmount(v float64) {
	c.Amount = v
	c.Basic = true
	c.Evaluated = false
}

func (c *Cell) clear() {
	c.Amount = 0
	c.Basic = false
}

// Table owns the supply and demand vectors and the grid of cells every stage
// of the solver works on. Cells are addressed by row and column; adjacency
// between basic cells is computed on demand.
type Table struct {
	supply []float64
	demand []float64
	cells  [][]Cell
	tol    float64
}

// NewTable copies the problem into a fresh table. The problem must already be
// validated.
func NewTable(p model.Problem) *Table {
	t := &Table{
		supply: append([]float64(nil), p.Supply...),
		demand: append([]float64(nil), p.Demand...),
		cells:  make([][]Cell, len(p.Supply)),
		tol:    DefaultTolerance,
	}
	for i := range t.cells {
		t.cells[i] = make([]Cell, len(p.Demand))
		for j := range t.cells[i] {
			t.cells[i][j] = Cell{Row: i, Col: j, Cost: p.Costs[i][j]}
		}
	}
	return t
}

// Rows returns the number of sources, including a dummy one.
func (t *Table) Rows() int { return len(t.supply) }

// Columns returns the number of destinations, including a dummy one.
func (t *Table) Columns() int { return len(t.demand) }

// Supply returns a copy of the supply vector.
func (t *Table) Supply() []float64 { return append([]float64(nil), t.supply...) }

// Demand returns a copy of the demand vector.
func (t *Table) Demand() []float64 { return append([]float64(nil), t.demand...) }

// Cell returns the cell at (i, j).
func (t *Table) Cell(i, j int) *Cell { return &t.cells[i][j] }

// At returns the cell at p.
func (t *Table) At(p model.Pos) *Cell { return &t.cells[p.Row][p.Col] }

// SetTolerance overrides the comparison tolerance used by the solver stages.
func (t *Table) SetTolerance(tol float64) {
	if tol > 0 {
		t.tol = tol
	}
}

// appendRow grows the supply vector by one entry and adds a zero-cost row.
func (t *Table) appendRow(amount float64) {
	i := len(t.supply)
	row := make([]Cell, len(t.demand))
	for j := range row {
		row[j] = Cell{Row: i, Col: j}
	}
	t.supply = append(t.supply, amount)
	t.cells = append(t.cells, row)
}

// appendColumn grows the demand vector by one entry and adds a zero-cost column.
func (t *Table) appendColumn(amount float64) {
	j := len(t.demand)
	for i := range t.cells {
		t.cells[i] = append(t.cells[i], Cell{Row: i, Col: j})
	}
	t.demand = append(t.demand, amount)
}

// Basic lists the positions of basic cells in row-major order.
func (t *Table) Basic() []model.Pos {
	var out []model.Pos
	for i := range t.cells {
		for j := range t.cells[i] {
			if t.cells[i][j].Basic {
				out = append(out, model.Pos{Row: i, Col: j})
			}
		}
	}
	return out
}

// BasicCount returns the number of basic cells.
func (t *Table) BasicCount() int {
	n := 0
	for i := range t.cells {
		for j := range t.cells[i] {
			if t.cells[i][j].Basic {
				n++
			}
		}
	}
	return n
}

// TotalCost sums cost times amount over basic cells.
func (t *Table) TotalCost() float64 {
	var sum float64
	for i := range t.cells {
		for j := range t.cells[i] {
			c := &t.cells[i][j]
			if c.Basic {
				sum += c.Cost * c.Amount
			}
		}
	}
	return sum
}

// Allocation returns the plan as a matrix where nil marks a non-basic cell.
func (t *Table) Allocation() [][]*float64 {
	out := make([][]*float64, len(t.cells))
	for i := range t.cells {
		out[i] = make([]*float64, len(t.cells[i]))
		for j := range t.cells[i] {
			if t.cells[i][j].Basic {
				v := t.cells[i][j].Amount
				out[i][j] = &v
			}
		}
	}
	return out
}

// Feasible reports whether basic amounts add up to supply on every row and to
// demand on every column.
func (t *Table) Feasible() bool {
	for i := range t.cells {
		var sum float64
		for j := range t.cells[i] {
			if t.cells[i][j].Basic {
				sum += t.cells[i][j].Amount
			}
		}
		if !nearlyEqual(sum, t.supply[i], t.tol) {
			return false
		}
	}
	for j := range t.demand {
		var sum float64
		for i := range t.cells {
			if t.cells[i][j].Basic {
				sum += t.cells[i][j].Amount
			}
		}
		if !nearlyEqual(sum, t.demand[j], t.tol) {
			return false
		}
	}
	return true
}

// SpanningTree reports whether the basic cells form a spanning tree over the
// row and column nodes: exactly m+n-1 of them, all nodes connected.
func (t *Table) SpanningTree() bool {
	m, n := t.Rows(), t.Columns()
	basic := t.Basic()
	if len(basic) != m+n-1 {
		return false
	}
	// Union-find over rows [0,m) and columns [m,m+n).
	parent := make([]int, m+n)
	for k := range parent {
		parent[k] = k
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for _, p := range basic {
		a, b := find(p.Row), find(m+p.Col)
		if a == b {
			return false
		}
		parent[a] = b
	}
	return true
}
