package transport

// Step is one snapshot of the potential-method iteration: the current
// plan X, the reduced-cost matrix D, and the objective value W computed
// from them. A Step is terminal once Valid reports true.
type Step struct {
	X [][]int
	D [][]int
	W int
}

// Valid reports whether every reduced cost in D is nonnegative.
func (s *Step) Valid() bool { return allPositive(s.D) }

func calculateW(costs, x [][]int) int {
	w := 0
	for i := range costs {
		for j := range costs[0] {
			if x[i][j] > 0 {
				w += costs[i][j] * x[i][j]
			}
		}
	}
	return w
}

// sign marks a cell's role in the alternating improvement cycle.
type sign int

const (
	signNone sign = iota
	signPlus
	signMinus
)

func nextSign(cur sign) sign {
	if cur == signPlus {
		return signMinus
	}
	return signPlus
}

func even(i int) bool { return i%2 == 0 }

// markForbidden repeatedly strikes out rows, then columns, that have
// only one linked cell left (plus the entering cell mn, always
// counted as linked): a row or column with a single linked cell cannot
// take part in an alternating cycle, so every cell in it is forbidden.
// Striking continues, alternating direction, until it stabilizes.
func markForbidden(x [][]int, mn cell) []cell {
	rows, cols := len(x), len(x[0])
	notZero := make([][]bool, rows)
	for i := range notZero {
		notZero[i] = make([]bool, cols)
		for j := range notZero[i] {
			notZero[i][j] = x[i][j] != 0
		}
	}
	notZero[mn.i][mn.j] = true

	forbidden := make(map[cell]bool)
	direction := 0
	needStriking := true

	for needStriking {
		if direction > 0 {
			needStriking = false
		}

		if even(direction) {
			for i := 0; i < rows; i++ {
				count := 0
				for j := 0; j < cols; j++ {
					if notZero[i][j] {
						count++
					}
				}
				if count == 1 {
					for j := 0; j < cols; j++ {
						forbidden[cell{i, j}] = true
						notZero[i][j] = false
					}
					needStriking = true
				}
			}
		} else {
			for j := 0; j < cols; j++ {
				count := 0
				for i := 0; i < rows; i++ {
					if notZero[i][j] {
						count++
					}
				}
				if count == 1 {
					for i := 0; i < rows; i++ {
						forbidden[cell{i, j}] = true
						notZero[i][j] = false
					}
					needStriking = true
				}
			}
		}

		if len(forbidden) == rows*cols {
			break
		}
		direction++
	}

	ret := make([]cell, 0, len(forbidden))
	for c := range forbidden {
		ret = append(ret, c)
	}
	return ret
}

func containsCell(cells []cell, c cell) bool {
	for _, v := range cells {
		if v == c {
			return true
		}
	}
	return false
}

func countAllowed(x [][]int, fb []cell, s cell) int {
	num := 0
	for i := range x {
		for j := range x[0] {
			switch {
			case i == s.i && j == s.j:
				num++
			case x[i][j] != 0 && !containsCell(fb, cell{i, j}):
				num++
			}
		}
	}
	return num
}

// tryUp extends the cycle to the topmost unforbidden linked cell above
// (si, sj) in column sj, provided that cell has no sign yet.
func tryUp(count *int, si *int, sj int, signs [][]sign, cur *sign, x [][]int, fb []cell) {
	lastI := *si
	for i := *si - 1; i >= 0; i-- {
		if x[i][sj] != 0 && !containsCell(fb, cell{i, sj}) {
			lastI = i
		}
	}
	if lastI != *si && signs[lastI][sj] == signNone {
		*count++
		*si = lastI
		*cur = nextSign(*cur)
		signs[*si][sj] = *cur
	}
}

// tryDown extends the cycle to the bottommost unforbidden linked cell
// below (si, sj) in column sj, provided that cell has no sign yet.
func tryDown(count *int, si *int, sj int, signs [][]sign, cur *sign, x [][]int, fb []cell) {
	lastI := *si
	for i := *si + 1; i < len(x); i++ {
		if x[i][sj] != 0 && !containsCell(fb, cell{i, sj}) {
			lastI = i
		}
	}
	if lastI != *si && signs[lastI][sj] == signNone {
		*count++
		*si = lastI
		*cur = nextSign(*cur)
		signs[*si][sj] = *cur
	}
}

// tryRight extends the cycle to the rightmost unforbidden linked cell
// right of (si, sj) in row si, provided that cell has no sign yet.
func tryRight(count *int, si int, sj *int, signs [][]sign, cur *sign, x [][]int, fb []cell) {
	lastJ := *sj
	for j := *sj + 1; j < len(x[0]); j++ {
		if x[si][j] != 0 && !containsCell(fb, cell{si, j}) {
			lastJ = j
		}
	}
	if lastJ != *sj && signs[si][lastJ] == signNone {
		*count++
		*sj = lastJ
		*cur = nextSign(*cur)
		signs[si][*sj] = *cur
	}
}

// tryLeft extends the cycle to the leftmost unforbidden linked cell
// left of (si, sj) in row si, provided that cell has no sign yet.
func tryLeft(count *int, si int, sj *int, signs [][]sign, cur *sign, x [][]int, fb []cell) {
	lastJ := *sj
	for j := *sj - 1; j >= 0; j-- {
		if x[si][j] != 0 && !containsCell(fb, cell{si, j}) {
			lastJ = j
		}
	}
	if lastJ != *sj && signs[si][lastJ] == signNone {
		*count++
		*sj = lastJ
		*cur = nextSign(*cur)
		signs[si][*sj] = *cur
	}
}

// leastMinus returns the minus-signed cell with the smallest allocation
// (the entering cell mn itself if no minus cell beats it), breaking the
// very first comparison in favor of any minus cell found.
func leastMinus(x [][]int, signs [][]sign, mn cell) cell {
	ret := mn
	for i := range x {
		for j := range x[0] {
			if signs[i][j] != signMinus {
				continue
			}
			if x[i][j] < x[ret.i][ret.j] || signs[ret.i][ret.j] == signPlus {
				ret = cell{i, j}
			}
		}
	}
	return ret
}

// advanceX pivots the plan around the entering cell mn: it builds the
// alternating +/- cycle through the linked cells markForbidden leaves
// eligible, then shifts δ (the smallest minus allocation) from the
// minus cells to the plus cells.
func advanceX(prevX [][]int, mn cell) [][]int {
	fb := markForbidden(prevX, mn)

	signs := make([][]sign, len(prevX))
	for i := range signs {
		signs[i] = make([]sign, len(prevX[0]))
	}
	si, sj := mn.i, mn.j
	signs[si][sj] = signPlus

	count := 1
	num := countAllowed(prevX, fb, mn)
	cur := signPlus

	for count < num {
		tryUp(&count, &si, sj, signs, &cur, prevX, fb)
		tryDown(&count, &si, sj, signs, &cur, prevX, fb)
		tryRight(&count, si, &sj, signs, &cur, prevX, fb)
		tryLeft(&count, si, &sj, signs, &cur, prevX, fb)
	}

	ret := make([][]int, len(prevX))
	for i := range ret {
		ret[i] = append([]int(nil), prevX[i]...)
	}

	lm := leastMinus(prevX, signs, mn)
	delta := prevX[lm.i][lm.j]
	nullified := false

	apply := func(i, j, d int) {
		switch {
		case delta > 0:
			if prevX[i][j] >= 0 {
				ret[i][j] += d
			} else {
				ret[i][j] = d
			}
		case delta <= epsVal:
			if prevX[i][j] <= 0 {
				ret[i][j] += d
			}
		}
		if ret[i][j] == 0 {
			if !nullified {
				nullified = true
			} else {
				ret[i][j] = epsVal
			}
		}
	}

	for i := range prevX {
		for j := range prevX[0] {
			switch signs[i][j] {
			case signMinus:
				apply(i, j, -delta)
			case signPlus:
				apply(i, j, delta)
			}
		}
	}

	return ret
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// advanceD recomputes reduced costs after a pivot by striking rows
// reachable (via linked cells) from the entering row and columns
// reachable from those rows, alternating until stable, then adding
// |D[entering]| to row-struck-only cells and subtracting it from
// column-struck-only cells.
func advanceD(prevD, x [][]int, mn cell) [][]int {
	rows, cols := len(x), len(x[0])
	notZero := make([][]bool, rows)
	for i := range notZero {
		notZero[i] = make([]bool, cols)
		for j := range notZero[i] {
			notZero[i][j] = x[i][j] != 0
		}
	}

	hstroke := make([]bool, rows)
	vstroke := make([]bool, cols)
	hstroke[mn.i] = true

	needStriking := true
	direction := 0
	for needStriking {
		needStriking = false

		if even(direction) {
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					if i == mn.i && j == mn.j {
						continue
					}
					if hstroke[i] && !vstroke[j] && notZero[i][j] {
						vstroke[j] = true
						needStriking = true
					}
				}
			}
		} else {
			for j := 0; j < cols; j++ {
				for i := 0; i < rows; i++ {
					if i == mn.i && j == mn.j {
						continue
					}
					if vstroke[j] && !hstroke[i] && notZero[i][j] {
						hstroke[i] = true
						needStriking = true
					}
				}
			}
		}
		direction++
	}

	ret := make([][]int, rows)
	for i := range ret {
		ret[i] = append([]int(nil), prevD[i]...)
	}

	delta := abs(prevD[mn.i][mn.j])
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			switch {
			case hstroke[i] && !vstroke[j]:
				ret[i][j] += delta
			case vstroke[j] && !hstroke[i]:
				ret[i][j] -= delta
			}
		}
	}

	return ret
}

// Solve balances the problem, builds an initial plan by method, fills
// potentials and reduced costs, then repeatedly picks the most negative
// reduced cost as the entering cell and pivots until every reduced cost
// is nonnegative. It returns the full step sequence; the last step is
// terminal.
func (t *Transport) Solve(method Method) []Step {
	if len(t.costs) == 0 {
		return nil
	}

	var x, costs [][]int
	switch method {
	case MinCost:
		x, costs, _, _ = t.MinCostPlan()
	default:
		x, costs, _, _ = t.NorthWestPlan()
	}

	u, v := fillPotentials(costs, x)
	d := reducedCosts(costs, u, v)
	w := calculateW(costs, x)

	steps := []Step{{X: x, D: d, W: w}}

	for !allPositive(d) {
		mn := mostNegative(d)
		nx := advanceX(x, mn)
		nd := advanceD(d, nx, mn)
		nw := calculateW(costs, nx)

		x, d = nx, nd
		steps = append(steps, Step{X: x, D: d, W: nw})
	}

	return steps
}
