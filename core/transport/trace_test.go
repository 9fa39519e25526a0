package transport

import (
	"testing"

	"github.com/kilianp07/transport/core/model"
)

func TestFormat(t *testing.T) {
	cases := map[float64]string{
		80:         "80",
		0.1 + 0.2:  "0.3",
		-0.0000001: "0",
		2.5:        "2.5",
		1.0 / 3:    "0.333333",
		-4:         "-4",
	}
	for v, want := range cases {
		if got := Format(v); got != want {
			t.Fatalf("Format(%v)=%q want %q", v, got, want)
		}
	}
}

func TestRenderPlan(t *testing.T) {
	ten, thirty := 10.0, 30.0
	lines := RenderPlan(
		[][]*float64{{&ten, &ten}, {nil, &thirty}},
		[]float64{20, 30},
		[]float64{10, 40},
	)
	want := []string{
		"        B1  B2  supply",
		"A1      10  10  20",
		"A2      -   30  30",
		"demand  10  40",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %q", lines)
	}
	for k := range want {
		if lines[k] != want[k] {
			t.Fatalf("line %d: got %q want %q", k, lines[k], want[k])
		}
	}
}

func TestFormatCycle(t *testing.T) {
	got := formatCycle([]model.Pos{pos(1, 1), pos(1, 2), pos(0, 2), pos(0, 1)})
	if got != "+A2B2 -A2B3 +A1B3 -A1B2" {
		t.Fatalf("got %q", got)
	}
	if formatVector([]float64{0, 1.5}) != "[0, 1.5]" {
		t.Fatalf("vector format")
	}
}
