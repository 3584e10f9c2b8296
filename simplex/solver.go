package simplex

import (
	"fmt"
	"strings"

	"github.com/arnegrau/colp/polynomial"
	"github.com/arnegrau/colp/rational"
)

// Solver holds a primal LP problem statement: a Goal, its Restrictions,
// and the variable indices the goal started with (replayed into the
// terminal step's Basis once solving finishes).
type Solver struct {
	goal         *Goal
	sel          []polynomial.Term
	restrs       []*Restriction
	initialBasis []int
}

// NewSolver returns an empty Solver. A Goal must be set before any
// Restriction can be added.
func NewSolver() *Solver {
	return &Solver{}
}

// SetGoal parses text as a Goal and adopts it, provided no Restriction
// has been added yet.
func (s *Solver) SetGoal(text string) bool {
	if len(s.restrs) != 0 {
		return false
	}
	g, ok := ParseGoal(text)
	if !ok {
		return false
	}
	s.initialBasis = append([]int(nil), g.Indices()...)
	s.goal = g
	return true
}

// AddRestriction parses text as a Restriction and appends it, extending
// whichever of goal/restriction has fewer terms with zero terms so
// every polynomial in the Solver shares the same index range.
func (s *Solver) AddRestriction(text string) bool {
	if s.goal == nil || s.goal.Size() == 0 {
		return false
	}
	r, ok := ParseRestriction(text)
	if !ok {
		return false
	}

	switch {
	case s.goal.Size() > r.Size():
		r.AddTerm(s.goal.LastIdx(), rational.Zero(), false)
	case s.goal.Size() < r.Size():
		s.goal.AddTerm(r.LastIdx(), rational.Zero(), false)
		s.initialBasis = append([]int(nil), s.goal.Indices()...)
		for _, res := range s.restrs {
			if res.Size() < r.Size() {
				res.AddTerm(r.LastIdx(), rational.Zero(), false)
			}
		}
	}

	s.restrs = append(s.restrs, r)
	return true
}

// appendPreferred gives every non-equality restriction a slack (<=) or
// surplus (>=) variable, turning every restriction into an equality.
func (s *Solver) appendPreferred() {
	for _, r := range s.restrs {
		if r.Relation() == "==" {
			continue
		}
		coeff := rational.FromInt(1)
		if r.Relation() == ">=" {
			coeff = rational.FromInt(-1)
		}
		r.AddTerm(r.NextIdx(), coeff, false)

		for _, sr := range s.restrs {
			if sr == r {
				continue
			}
			sr.AddTerm(sr.NextIdx(), rational.Zero(), false)
		}
		s.goal.AddTerm(s.goal.NextIdx(), rational.Zero(), false)
		r.SetRelation("==")
	}
}

// appendArtificial gives every row without an obvious unit-column basic
// variable a fresh artificial variable on the big-M track.
func (s *Solver) appendArtificial() {
	restrNum := len(s.restrs)
	s.sel = make([]polynomial.Term, restrNum)

	for _, i := range s.goal.Indices() {
		row, unit := findUnitColumn(s.restrs, i)
		if unit {
			t, _ := s.goal.Term(i)
			s.sel[row] = t
		}
	}

	for r := 0; r < restrNum; r++ {
		if s.sel[r].Idx != 0 {
			continue
		}
		newIdx := s.restrs[r].NextIdx()
		s.restrs[r].AddTerm(newIdx, rational.One(), false)

		newCoeff := rational.FromInt(1)
		if s.goal.Direction() == "max" {
			newCoeff = rational.FromInt(-1)
		}
		s.goal.AddTerm(newIdx, newCoeff, true)

		for ri, restr := range s.restrs {
			if ri == r {
				continue
			}
			restr.AddTerm(newIdx, rational.Zero(), false)
		}

		t, _ := s.goal.Term(newIdx)
		s.sel[r] = t
	}
}

// findUnitColumn reports whether column i has coefficient 1 in exactly
// one row and 0 in every other row, and if so which row.
func findUnitColumn(restrs []*Restriction, i int) (row int, ok bool) {
	found := -1
	for r, restr := range restrs {
		c, _ := restr.Coeff(i)
		switch {
		case c.IsZero():
			continue
		case c.Equal(rational.One()):
			if found != -1 {
				return 0, false
			}
			found = r
		default:
			return 0, false
		}
	}
	if found == -1 {
		return 0, false
	}
	return found, true
}

// InvertToDual replaces this Solver's goal and restrictions with the
// dual of the current primal problem, and returns the receiver so the
// caller can chain into Solve.
func (s *Solver) InvertToDual() *Solver {
	oldTermsNum := s.goal.Size()
	oldRestrNum := len(s.restrs)

	fromRel, toRel, toDir := "<=", ">=", "max"
	if s.goal.Direction() == "max" {
		fromRel, toRel, toDir = ">=", "<=", "min"
	}

	for _, r := range s.restrs {
		if r.Relation() != fromRel {
			continue
		}
		for _, j := range r.Indices() {
			c, _ := r.Coeff(j)
			r.SetCoeff(j, c.Neg())
		}
		r.SetRight(r.Right().Neg())
	}

	newGoal := &Goal{Polynomial: polynomial.New(), direction: toDir}
	newRestrs := make([]*Restriction, oldTermsNum)
	for j := range newRestrs {
		newRestrs[j] = &Restriction{Polynomial: polynomial.New()}
	}

	for i := 0; i < oldRestrNum; i++ {
		newGoal.AddTerm(i+1, s.restrs[i].Right(), false)

		for j := 0; j < oldTermsNum; j++ {
			t, _ := s.restrs[i].Term(j + 1)
			newRestrs[j].AddTerm(i+1, t.Coeff, false)
		}
	}

	for i := 0; i < oldTermsNum; i++ {
		goalCoeff, _ := s.goal.Coeff(i + 1)
		if goalCoeff.Sign() < 0 {
			newRestrs[i].SetRight(goalCoeff.Neg())
			for _, j := range newRestrs[i].Indices() {
				c, _ := newRestrs[i].Coeff(j)
				newRestrs[i].SetCoeff(j, c.Neg())
			}
			newRestrs[i].SetRelation(toRel)
		} else {
			newRestrs[i].SetRelation(fromRel)
			newRestrs[i].SetRight(goalCoeff)
		}
	}

	s.initialBasis = append([]int(nil), newGoal.Indices()...)
	s.goal = newGoal
	s.restrs = newRestrs
	return s
}

// Solve runs the two-phase Big-M simplex and returns the full sequence
// of tableau snapshots, the last of which is terminal: Valid() reports
// optimality, and an invalid terminal step means unbounded/infeasible
// or a detected cycle.
func (s *Solver) Solve() []Step {
	if s.goal == nil {
		return nil
	}
	s.appendPreferred()
	s.appendArtificial()

	var steps []Step
	step := &Step{
		Goal:   s.goal.Clone(),
		Sel:    append([]polynomial.Term(nil), s.sel...),
		Restrs: cloneRestrs(s.restrs),
		PPrice: polynomial.New(),
		MPrice: polynomial.New(),
	}
	step.PPrice.AddTerm(s.goal.LastIdx(), rational.Zero(), false)
	step.MPrice.AddTerm(s.goal.LastIdx(), rational.Zero(), false)

	for {
		calculatePrice(step)

		if !stepIsUnique(step, steps) {
			steps = append(steps, *step)
			break
		}
		steps = append(steps, *step)

		selCol := 0
		if needToCalcArtificial(step) {
			selCol = selectColumn(step, true)
		}
		if selCol == 0 {
			selCol = selectColumn(step, false)
		}
		if selCol == 0 {
			packEndResults(&steps[len(steps)-1], s.initialBasis)
			break
		}

		selRow := selectRow(step, selCol)
		if selRow == len(step.Restrs) {
			break
		}

		step = advanceStep(step, selCol, selRow)
	}

	return steps
}

func cloneRestrs(restrs []*Restriction) []*Restriction {
	out := make([]*Restriction, len(restrs))
	for i, r := range restrs {
		out[i] = r.Clone()
	}
	return out
}

func (s *Solver) String() string {
	var b strings.Builder
	b.WriteString("[Solver\n")
	if s.goal != nil && s.goal.Size() != 0 {
		b.WriteString(s.goal.Direction())
		b.WriteByte(':')
		for _, i := range s.goal.Indices() {
			width, suffix := 4, ""
			if s.goal.Big(i) {
				width, suffix = 3, "M"
			}
			c, _ := s.goal.Coeff(i)
			fmt.Fprintf(&b, "%*s%s", width, c.String(), suffix)
		}
		b.WriteByte('\n')
	}
	for _, r := range s.restrs {
		fmt.Fprintf(&b, "%4s", r.Right().String())
		for _, i := range r.Indices() {
			c, _ := r.Coeff(i)
			fmt.Fprintf(&b, "%4s", c.String())
		}
		fmt.Fprintf(&b, " %s\n", r.Relation())
	}
	b.WriteByte(']')
	return b.String()
}
