package transport

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/kilianp07/transport/core/model"
)

// trace collects the human-readable account of a solve.
type trace struct {
	lines []string
}

func (tr *trace) add(format string, args ...any) {
	tr.lines = append(tr.lines, fmt.Sprintf(format, args...))
}

// plan appends the current amounts of t as an aligned table.
func (tr *trace) plan(t *Table) {
	tr.lines = append(tr.lines, RenderPlan(t.Allocation(), t.Supply(), t.Demand())...)
}

// RenderPlan formats an allocation as aligned text rows: one header row with
// the destinations B1..Bn, one row per source A1..Am ending with its supply,
// and a closing demand row. Empty cells show as "-".
func RenderPlan(allocation [][]*float64, supply, demand []float64) []string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	header := []string{""}
	for j := range demand {
		header = append(header, fmt.Sprintf("B%d", j+1))
	}
	header = append(header, "supply")
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for i, row := range allocation {
		cols := []string{fmt.Sprintf("A%d", i+1)}
		for _, v := range row {
			if v == nil {
				cols = append(cols, "-")
			} else {
				cols = append(cols, Format(*v))
			}
		}
		if i < len(supply) {
			cols = append(cols, Format(supply[i]))
		}
		fmt.Fprintln(w, strings.Join(cols, "\t"))
	}
	footer := []string{"demand"}
	for _, d := range demand {
		footer = append(footer, Format(d))
	}
	fmt.Fprintln(w, strings.Join(footer, "\t"))
	_ = w.Flush()

	out := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for k := range out {
		out[k] = strings.TrimRight(out[k], " ")
	}
	return out
}

// Format prints a quantity without float noise: at most six decimals and no
// trailing zeros.
func Format(v float64) string {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for k, x := range v {
		parts[k] = Format(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatCycle(cycle []model.Pos) string {
	parts := make([]string, len(cycle))
	for k, p := range cycle {
		sign := "+"
		if k%2 == 1 {
			sign = "-"
		}
		parts[k] = sign + p.String()
	}
	return strings.Join(parts, " ")
}
