package transport

import "errors"

// ErrInvariantViolation signals that the basic cells no longer form a spanning
// tree. It cannot happen for a balanced table and indicates a solver defect.
var ErrInvariantViolation = errors.New("transport: basis invariant violated")
