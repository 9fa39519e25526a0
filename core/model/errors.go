package model

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates the cost matrix does not match the
	// supply and demand vectors.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrMissingValue indicates a required value is empty or not a number.
	ErrMissingValue = errors.New("missing value")
	// ErrNegativeValue indicates a supply, demand or cost below zero.
	ErrNegativeValue = errors.New("negative value")
)

// CellKind names the part of the input table a value belongs to.
type CellKind int

const (
	KindSupply CellKind = iota
	KindDemand
	KindCost
)

func (k CellKind) String() string {
	switch k {
	case KindSupply:
		return "supply"
	case KindDemand:
		return "demand"
	case KindCost:
		return "cost"
	default:
		return "unknown"
	}
}

// CellError points at the input cell that prevented solving. Row and Col are
// zero based; the one that does not apply to the kind is -1.
type CellError struct {
	Kind CellKind
	Row  int
	Col  int
	Err  error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cannot solve: %s at %s", e.Err, e.Cell())
}

func (e *CellError) Unwrap() error { return e.Err }

// Cell labels the offending entry the way the table headers do (A1, B2, A1B2).
func (e *CellError) Cell() string {
	switch e.Kind {
	case KindSupply:
		return fmt.Sprintf("supply A%d", e.Row+1)
	case KindDemand:
		return fmt.Sprintf("demand B%d", e.Col+1)
	default:
		return fmt.Sprintf("cost A%dB%d", e.Row+1, e.Col+1)
	}
}
