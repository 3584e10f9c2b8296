package polynomial

import (
	"fmt"

	"github.com/arnegrau/colp/rational"
)

// Term is one monomial of a Polynomial: a positive variable index, its
// rational coefficient, and whether that coefficient belongs to the
// symbolic big-M track rather than the ordinary (plain) track.
type Term struct {
	Idx   int
	Coeff rational.Rational
	Big   bool
}

// NewTerm constructs a Term with the given index, coefficient, and
// big-M flag.
func NewTerm(idx int, coeff rational.Rational, big bool) Term {
	return Term{Idx: idx, Coeff: coeff, Big: big}
}

// ZeroTerm constructs a Term at idx with a zero coefficient.
func ZeroTerm(idx int) Term {
	return Term{Idx: idx, Coeff: rational.Zero()}
}

// Equal reports whether two terms have the same index, coefficient, and
// big-M flag.
func (t Term) Equal(o Term) bool {
	return t.Idx == o.Idx && t.Big == o.Big && t.Coeff.Equal(o.Coeff)
}

// String renders a Term as "<coeff>[M]{X<idx>}", e.g. "2/3{X1}" or
// "0M{X3}".
func (t Term) String() string {
	m := ""
	if t.Big {
		m = "M"
	}
	return fmt.Sprintf("%s%s{X%d}", t.Coeff, m, t.Idx)
}
