package transport

import "math"

// DefaultTolerance bounds rounding noise when comparing amounts and totals.
const DefaultTolerance = 1e-9

// nearlyEqual compares with an absolute floor and a tolerance relative to the
// larger magnitude.
func nearlyEqual(a, b, tol float64) bool {
	diff := math.Abs(a - b)
	if diff <= tol {
		return true
	}
	return diff <= tol*math.Max(math.Abs(a), math.Abs(b))
}

func isZero(v, tol float64) bool { return math.Abs(v) <= tol }

func sum(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}
