package model

import "fmt"

// Pos addresses a cell of the allocation table.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String labels the cell as AiBj with one-based indices.
func (p Pos) String() string { return fmt.Sprintf("A%dB%d", p.Row+1, p.Col+1) }

// DummySide tells which vector received the balancing entry.
type DummySide int

const (
	DummyNone DummySide = iota
	DummySupply
	DummyDemand
)

func (d DummySide) String() string {
	switch d {
	case DummySupply:
		return "supply"
	case DummyDemand:
		return "demand"
	default:
		return "none"
	}
}

// MarshalText lets the side appear by name in JSON output.
func (d DummySide) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Step describes one pivot of the potential method.
type Step struct {
	Index    int     `json:"index"`
	Entering Pos     `json:"entering"`
	Delta    float64 `json:"delta"`
	Theta    float64 `json:"theta"`
	Leaving  Pos     `json:"leaving"`
	Cycle    []Pos   `json:"cycle"`
	Cost     float64 `json:"cost"`
	// U and V are the potentials the entering cell was chosen with.
	U []float64 `json:"u"`
	V []float64 `json:"v"`
}

// Solution is the outcome of one solve. Allocation, Supply and Demand cover
// the balanced table, so a dummy row or column is included when one was added.
// A nil allocation entry is a non-basic (empty) cell.
type Solution struct {
	ID          string       `json:"id"`
	Name        string       `json:"name,omitempty"`
	Allocation  [][]*float64 `json:"allocation"`
	Supply      []float64    `json:"supply"`
	Demand      []float64    `json:"demand"`
	InitialCost float64      `json:"initial_cost"`
	TotalCost   float64      `json:"total_cost"`
	Optimal     bool         `json:"optimal"`
	Iterations  int          `json:"iterations"`
	Balanced    bool         `json:"balanced"`
	Dummy       DummySide    `json:"dummy"`
	Degenerate  bool         `json:"degenerate"`
	Steps       []Step       `json:"steps,omitempty"`
	Trace       []string     `json:"trace"`
}

// Amount returns the allocated amount at (i, j) and whether the cell is basic.
func (s Solution) Amount(i, j int) (float64, bool) {
	if i < 0 || i >= len(s.Allocation) || j < 0 || j >= len(s.Allocation[i]) {
		return 0, false
	}
	v := s.Allocation[i][j]
	if v == nil {
		return 0, false
	}
	return *v, true
}
