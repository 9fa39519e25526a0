package transport

import "github.com/kilianp07/transport/core/model"

// FindCycle looks for the closed loop that start would create together with
// the given basic cells, moving alternately along rows and columns.
//
// The candidates are start plus every basic cell. A candidate without another
// candidate in its row, or without one in its column, cannot lie on a loop and
// is dropped; dropping repeats until nothing changes. An empty remainder means
// start closes no loop and nil is returned.
//
// Otherwise the remainder is the loop itself (a tree plus one cell holds
// exactly one). It is returned ordered from start: first to the row partner,
// then to that cell's column partner, and so on. Even positions are the cells
// whose amount increases in a pivot, odd positions the ones that decrease.
func FindCycle(start model.Pos, basic []model.Pos) []model.Pos {
	cand := make([]model.Pos, 0, len(basic)+1)
	cand = append(cand, start)
	for _, p := range basic {
		if p != start {
			cand = append(cand, p)
		}
	}

	alive := make([]bool, len(cand))
	for k := range alive {
		alive[k] = true
	}
	remaining := len(cand)
	for {
		rows := make(map[int]int)
		cols := make(map[int]int)
		for k, p := range cand {
			if alive[k] {
				rows[p.Row]++
				cols[p.Col]++
			}
		}
		removed := 0
		for k, p := range cand {
			if alive[k] && (rows[p.Row] < 2 || cols[p.Col] < 2) {
				alive[k] = false
				removed++
			}
		}
		remaining -= removed
		if removed == 0 || remaining == 0 {
			break
		}
	}
	if remaining == 0 || !alive[0] {
		return nil
	}

	loop := make([]model.Pos, 0, remaining)
	for k, p := range cand {
		if alive[k] {
			loop = append(loop, p)
		}
	}
	return orderCycle(start, loop)
}

// orderCycle walks the loop from start alternating row and column moves. It
// returns nil if the walk cannot visit every cell, which only happens when the
// basic cells themselves already contain a loop.
func orderCycle(start model.Pos, loop []model.Pos) []model.Pos {
	visited := make(map[model.Pos]bool, len(loop))
	out := make([]model.Pos, 0, len(loop))
	cur := start
	for step := 0; step < len(loop); step++ {
		out = append(out, cur)
		visited[cur] = true
		if len(out) == len(loop) {
			break
		}
		next, ok := partner(cur, loop, visited, step%2 == 0)
		if !ok {
			return nil
		}
		cur = next
	}
	if len(out) != len(loop) {
		return nil
	}
	// The last cell must share a column with start to close the loop.
	if last := out[len(out)-1]; last.Col != start.Col {
		return nil
	}
	return out
}

// partner finds the first unvisited cell sharing the row (byRow) or the column
// of cur.
func partner(cur model.Pos, loop []model.Pos, visited map[model.Pos]bool, byRow bool) (model.Pos, bool) {
	for _, p := range loop {
		if visited[p] {
			continue
		}
		if byRow && p.Row == cur.Row {
			return p, true
		}
		if !byRow && p.Col == cur.Col {
			return p, true
		}
	}
	return model.Pos{}, false
}
