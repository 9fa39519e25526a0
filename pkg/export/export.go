package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/kilianp07/transport/core/model"
	"github.com/kilianp07/transport/core/transport"
)

// WriteJSON writes the solution to w in JSON format.
func WriteJSON(w io.Writer, sol model.Solution) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sol)
}

// WriteCSV writes the plan to w as the input table is laid out: a header of
// destinations, one row per source ending with its supply, and a demand row.
// Empty cells are left blank; a basic cell at zero is written as 0.
func WriteCSV(w io.Writer, sol model.Solution) error {
	cw := csv.NewWriter(w)
	header := []string{""}
	for j := range sol.Demand {
		header = append(header, fmt.Sprintf("B%d", j+1))
	}
	header = append(header, "supply")
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, row := range sol.Allocation {
		rec := []string{fmt.Sprintf("A%d", i+1)}
		for _, v := range row {
			if v == nil {
				rec = append(rec, "")
				continue
			}
			rec = append(rec, strconv.FormatFloat(*v, 'f', -1, 64))
		}
		if i < len(sol.Supply) {
			rec = append(rec, strconv.FormatFloat(sol.Supply[i], 'f', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	footer := []string{"demand"}
	for _, d := range sol.Demand {
		footer = append(footer, strconv.FormatFloat(d, 'f', -1, 64))
	}
	if err := cw.Write(footer); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteText writes a human-readable report. With withTrace the full step by
// step account is printed; otherwise only the final plan and its cost.
func WriteText(w io.Writer, sol model.Solution, withTrace bool) error {
	var lines []string
	if withTrace {
		lines = sol.Trace
	} else {
		if sol.Name != "" {
			lines = append(lines, "Problem: "+sol.Name)
		}
		lines = append(lines, transport.RenderPlan(sol.Allocation, sol.Supply, sol.Demand)...)
		lines = append(lines, "Minimal cost: "+transport.Format(sol.TotalCost))
	}
	status := "optimal"
	if !sol.Optimal {
		status = "iteration limit reached"
	}
	lines = append(lines, fmt.Sprintf("Status: %s after %d iterations", status, sol.Iterations))
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
