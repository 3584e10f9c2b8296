package simplex

import (
	"fmt"
	"io"

	"github.com/arnegrau/colp/polynomial"
	"github.com/arnegrau/colp/rational"
)

// Step is an immutable snapshot of one tableau iteration: the current
// Goal, the basis selection and Restriction rows it was computed from,
// the two reduced-cost rows, the two objective accumulators, and
// (only on the terminating step) the packed final Basis.
type Step struct {
	Goal   *Goal
	Sel    []polynomial.Term
	Restrs []*Restriction
	PPrice *polynomial.Polynomial
	MPrice *polynomial.Polynomial
	Basis  []polynomial.Term
	W      rational.Rational
	M      rational.Rational

	valid bool
}

// Valid reports whether this Step is a successful terminal step: the
// final basis was packed, and no basic variable in the goal is still
// on the big-M track.
func (s *Step) Valid() bool {
	for _, i := range s.Goal.Indices() {
		if s.Goal.Big(i) {
			return false
		}
	}
	return s.valid
}

func (s *Step) markValid() { s.valid = true }

// Equal compares two Steps the way cycle detection requires: goal,
// basis selection, and restrictions. Price rows and objective
// accumulators are functions of these three and carry no extra state.
func (s *Step) Equal(o *Step) bool {
	if !s.Goal.Equal(o.Goal) {
		return false
	}
	if len(s.Sel) != len(o.Sel) {
		return false
	}
	for i := range s.Sel {
		if !s.Sel[i].Equal(o.Sel[i]) {
			return false
		}
	}
	if len(s.Restrs) != len(o.Restrs) {
		return false
	}
	for i := range s.Restrs {
		if !s.Restrs[i].Equal(o.Restrs[i]) {
			return false
		}
	}
	return true
}

func stepIsUnique(step *Step, steps []Step) bool {
	for i := range steps {
		if step.Equal(&steps[i]) {
			return false
		}
	}
	return true
}

func calculateWM(step *Step) {
	step.W = rational.Zero()
	step.M = rational.Zero()
	for row := range step.Restrs {
		toAdd := step.Sel[row].Coeff.Mul(step.Restrs[row].Right())
		if step.Sel[row].Big {
			step.M = step.M.Add(toAdd)
		} else {
			step.W = step.W.Add(toAdd)
		}
	}
}

func calculatePrice(step *Step) {
	for _, col := range step.Goal.Indices() {
		psum := rational.Zero()
		msum := rational.Zero()
		for row := range step.Restrs {
			c, _ := step.Restrs[row].Coeff(col)
			toAdd := step.Sel[row].Coeff.Mul(c)
			if step.Sel[row].Big {
				msum = msum.Add(toAdd)
			} else {
				psum = psum.Add(toAdd)
			}
		}

		colTerm, _ := step.Goal.Term(col)
		if colTerm.Big {
			msum = msum.Sub(colTerm.Coeff)
		} else {
			psum = psum.Sub(colTerm.Coeff)
		}

		step.PPrice.SetCoeff(col, psum)
		step.MPrice.SetCoeff(col, msum)
	}
	calculateWM(step)
}

func needToCalcArtificial(step *Step) bool {
	for _, i := range step.Goal.Indices() {
		if step.Goal.Big(i) {
			return true
		}
	}
	return false
}

func maxElement(p *polynomial.Polynomial) int {
	ret := p.LastIdx()
	rc, _ := p.Coeff(ret)
	for _, i := range p.Indices() {
		ci, _ := p.Coeff(i)
		if ci.Greater(rc) {
			ret, rc = i, ci
		}
	}
	return ret
}

func minElement(p *polynomial.Polynomial) int {
	ret := p.LastIdx()
	rc, _ := p.Coeff(ret)
	for _, i := range p.Indices() {
		ci, _ := p.Coeff(i)
		if ci.Less(rc) {
			ret, rc = i, ci
		}
	}
	return ret
}

// selectColumn picks the entering column on the M track (artificial ==
// true) or the plain track, by the extremum that strictly improves the
// objective. It returns 0 (no valid column index) when none does.
func selectColumn(step *Step, artificial bool) int {
	pol := step.PPrice
	if artificial {
		pol = step.MPrice
	}

	if step.Goal.Direction() == "min" {
		selCol := maxElement(pol)
		c, _ := pol.Coeff(selCol)
		if c.Sign() > 0 {
			return selCol
		}
		return 0
	}
	selCol := minElement(pol)
	c, _ := pol.Coeff(selCol)
	if c.Sign() < 0 {
		return selCol
	}
	return 0
}

func getCol(step *Step, col int) []rational.Rational {
	rowsNum := len(step.Restrs)
	ret := make([]rational.Rational, rowsNum)
	for row := 0; row < rowsNum; row++ {
		if col == 0 {
			ret[row] = step.Restrs[row].Right()
		} else {
			c, _ := step.Restrs[row].Coeff(col)
			ret[row] = c
		}
	}
	return ret
}

type divisionPolicy int

const (
	dontAllowNegative divisionPolicy = iota
	allowNegative
)

func divideCols(a, b []rational.Rational, policy divisionPolicy) []*rational.Rational {
	ret := make([]*rational.Rational, len(a))
	for i := range a {
		permitted := false
		switch policy {
		case dontAllowNegative:
			permitted = b[i].Sign() > 0
		case allowNegative:
			permitted = !b[i].IsZero()
		}
		if !permitted {
			continue
		}
		q, err := a[i].Quo(b[i])
		if err == nil {
			ret[i] = &q
		}
	}
	return ret
}

func getIndicesForMin(rng []*rational.Rational) []int {
	smallest := -1
	for i, v := range rng {
		if v == nil {
			continue
		}
		if smallest == -1 || v.Less(*rng[smallest]) {
			smallest = i
		}
	}
	if smallest == -1 {
		return nil
	}
	var ret []int
	for i, v := range rng {
		if v != nil && v.Equal(*rng[smallest]) {
			ret = append(ret, i)
		}
	}
	return ret
}

func getIndicesForMinAmong(rng []*rational.Rational, indicesToCheck []int) []int {
	if len(indicesToCheck) == 0 {
		return nil
	}
	smallest := indicesToCheck[0]
	for _, i := range indicesToCheck {
		if rng[i] != nil && rng[i].Less(*rng[smallest]) {
			smallest = i
		}
	}
	var ret []int
	for _, i := range indicesToCheck {
		if rng[i] != nil && rng[i].Equal(*rng[smallest]) {
			ret = append(ret, i)
		}
	}
	return ret
}

// selectRow runs the positivity-constrained ratio test on column col,
// breaking ties by lexicographic comparison across the other columns
// in goal order. It returns len(step.Restrs) when no row qualifies
// (unbounded).
func selectRow(step *Step, col int) int {
	rowsNum := len(step.Restrs)
	divisor := getCol(step, col)

	dividend := getCol(step, 0)
	divs := divideCols(dividend, divisor, dontAllowNegative)
	initialIndices := getIndicesForMin(divs)

	if len(initialIndices) == 1 {
		return initialIndices[0]
	}
	if len(initialIndices) == 0 {
		return rowsNum
	}

	for _, i := range step.Goal.Indices() {
		if i == col {
			continue
		}
		dividend = getCol(step, i)
		divs = divideCols(dividend, divisor, allowNegative)

		minRows := getIndicesForMinAmong(divs, initialIndices)
		if len(minRows) == 1 {
			return minRows[0]
		}
		initialIndices = minRows
	}

	return rowsNum
}

// advanceStep builds the next tableau snapshot by pivoting on
// (selRow, selCol): the outgoing basic variable's column is stripped
// once it was artificial, the pivot row is normalized, and every other
// row is updated by Gauss elimination.
func advanceStep(prev *Step, selCol, selRow int) *Step {
	next := &Step{
		Goal:   prev.Goal.Clone(),
		Sel:    append([]polynomial.Term(nil), prev.Sel...),
		Restrs: cloneRestrs(prev.Restrs),
		PPrice: prev.PPrice.Clone(),
		MPrice: prev.MPrice.Clone(),
	}

	outIdx := prev.Sel[selRow].Idx
	if next.Goal.Big(outIdx) {
		next.Goal.RemoveTerm(outIdx)
		for _, r := range next.Restrs {
			r.RemoveTerm(outIdx)
		}
		next.PPrice.RemoveTerm(outIdx)
		next.MPrice.RemoveTerm(outIdx)
	}
	t, _ := next.Goal.Term(selCol)
	next.Sel[selRow] = t

	divisor, _ := prev.Restrs[selRow].Coeff(selCol)

	for r := range prev.Restrs {
		if r == selRow {
			for _, i := range next.Goal.Indices() {
				c, _ := prev.Restrs[r].Coeff(i)
				q, _ := c.Quo(divisor)
				next.Restrs[r].SetCoeff(i, q)
			}
			rightQ, _ := prev.Restrs[r].Right().Quo(divisor)
			next.Restrs[r].SetRight(rightQ)
			continue
		}

		rowColSel, _ := prev.Restrs[r].Coeff(selCol)
		for _, i := range next.Goal.Indices() {
			pivotRowI, _ := prev.Restrs[selRow].Coeff(i)
			rowI, _ := prev.Restrs[r].Coeff(i)
			num := divisor.Mul(rowI).Sub(rowColSel.Mul(pivotRowI))
			q, _ := num.Quo(divisor)
			next.Restrs[r].SetCoeff(i, q)
		}

		num := divisor.Mul(prev.Restrs[r].Right()).Sub(rowColSel.Mul(prev.Restrs[selRow].Right()))
		q, _ := num.Quo(divisor)
		next.Restrs[r].SetRight(q)
	}

	return next
}

func packEndResults(lastStep *Step, indices []int) {
	restrsNum := len(lastStep.Restrs)
	for _, i := range indices {
		selected := false
		for row := 0; row < restrsNum; row++ {
			if i == lastStep.Sel[row].Idx {
				lastStep.Basis = append(lastStep.Basis, polynomial.NewTerm(i, lastStep.Restrs[row].Right(), false))
				selected = true
				break
			}
		}
		if !selected {
			lastStep.Basis = append(lastStep.Basis, polynomial.NewTerm(i, rational.Zero(), false))
		}
	}
	lastStep.markValid()
}

// PrintStep renders a step's goal and restriction rows (each with its
// row-basis term), and optionally its two price rows.
func PrintStep(w io.Writer, s *Step, price bool, newline bool) {
	const tab = "   "
	fmt.Fprint(w, "<Step>\n")
	fmt.Fprintf(w, "%s<Goal>%s</Goal>\n", tab, s.Goal)
	fmt.Fprintf(w, "%s<Restrs>\n", tab)
	for i := range s.Restrs {
		fmt.Fprintf(w, "%s%s%s %s\n", tab, tab, s.Restrs[i], s.Sel[i])
	}

	if !price {
		fmt.Fprintf(w, "%s</Restrs>\n</Step>\n", tab)
		if newline {
			fmt.Fprint(w, "\n")
		}
		return
	}

	fmt.Fprintf(w, "%s</Restrs>\n%s<pprice>", tab, tab)
	for _, i := range s.PPrice.Indices() {
		c, _ := s.PPrice.Coeff(i)
		fmt.Fprintf(w, "%4s", c.String())
	}
	fmt.Fprintf(w, "</pprice>\n%s<mprice>", tab)
	for _, i := range s.MPrice.Indices() {
		c, _ := s.MPrice.Coeff(i)
		fmt.Fprintf(w, "%4s", c.String())
	}
	fmt.Fprint(w, "</mprice>\n</Step>\n")
	if newline {
		fmt.Fprint(w, "\n")
	}
}
