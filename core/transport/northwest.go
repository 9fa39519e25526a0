package transport

// NorthwestCorner builds the first feasible plan. Cells are visited in
// row-major order; a cell whose row supply or column demand is already used up
// is skipped, otherwise it gets the smaller of the two remainders and that
// side is exhausted. The plan satisfies every row and column total but ignores
// costs entirely.
func NorthwestCorner(t *Table) {
	supply := t.Supply()
	demand := t.Demand()
	for i := range t.cells {
		for j := range t.cells[i] {
			if isZero(supply[i], t.tol) || isZero(demand[j], t.tol) {
				continue
			}
			cell := &t.cells[i][j]
			switch {
			case nearlyEqual(supply[i], demand[j], t.tol):
				cell.setAmount(supply[i])
				supply[i], demand[j] = 0, 0
			case supply[i] > demand[j]:
				cell.setAmount(demand[j])
				supply[i] -= demand[j]
				demand[j] = 0
			default:
				cell.setAmount(supply[i])
				demand[j] -= supply[i]
				supply[i] = 0
			}
		}
	}
}
