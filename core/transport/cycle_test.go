package transport

import (
	"testing"

	"github.com/kilianp07/transport/core/model"
)

func pos(i, j int) model.Pos { return model.Pos{Row: i, Col: j} }

func TestFindCycleOrder(t *testing.T) {
	basic := []model.Pos{pos(0, 0), pos(0, 1), pos(0, 2), pos(1, 2)}
	got := FindCycle(pos(1, 1), basic)
	want := []model.Pos{pos(1, 1), pos(1, 2), pos(0, 2), pos(0, 1)}
	if len(got) != len(want) {
		t.Fatalf("cycle %v, want %v", got, want)
	}
	for k := range want {
		if got[k] != want[k] {
			t.Fatalf("cycle %v, want %v", got, want)
		}
	}
}

func TestFindCycleSixCells(t *testing.T) {
	// Staircase basis of a 3x3 table; A3B1 closes a loop through every row.
	basic := []model.Pos{pos(0, 0), pos(0, 1), pos(1, 1), pos(1, 2), pos(2, 2)}
	got := FindCycle(pos(2, 0), basic)
	want := []model.Pos{pos(2, 0), pos(2, 2), pos(1, 2), pos(1, 1), pos(0, 1), pos(0, 0)}
	if len(got) != len(want) {
		t.Fatalf("cycle %v, want %v", got, want)
	}
	for k := range want {
		if got[k] != want[k] {
			t.Fatalf("cycle %v, want %v", got, want)
		}
	}
}

func TestFindCycleAlternates(t *testing.T) {
	basic := []model.Pos{pos(0, 0), pos(0, 1), pos(1, 1), pos(1, 2), pos(2, 2), pos(2, 3)}
	cycle := FindCycle(pos(0, 3), basic)
	if len(cycle) < 4 || len(cycle)%2 != 0 {
		t.Fatalf("invalid cycle %v", cycle)
	}
	for k := range cycle {
		next := cycle[(k+1)%len(cycle)]
		if k%2 == 0 && cycle[k].Row != next.Row {
			t.Fatalf("step %d must move along the row: %v", k, cycle)
		}
		if k%2 == 1 && cycle[k].Col != next.Col {
			t.Fatalf("step %d must move along the column: %v", k, cycle)
		}
	}
}

func TestFindCycleNone(t *testing.T) {
	basic := []model.Pos{pos(0, 0), pos(1, 1)}
	if c := FindCycle(pos(0, 1), basic); c != nil {
		t.Fatalf("expected no cycle, got %v", c)
	}
	if c := FindCycle(pos(0, 0), nil); c != nil {
		t.Fatalf("expected no cycle on an empty basis, got %v", c)
	}
}

func TestFindCycleIgnoresDanglingCells(t *testing.T) {
	basic := []model.Pos{pos(0, 0), pos(0, 1), pos(1, 1), pos(2, 1), pos(2, 2)}
	got := FindCycle(pos(1, 0), basic)
	if len(got) != 4 {
		t.Fatalf("expected 4-cell cycle, got %v", got)
	}
	for _, p := range got {
		if p == pos(2, 1) || p == pos(2, 2) {
			t.Fatalf("dangling cell %v in cycle", p)
		}
	}
}
