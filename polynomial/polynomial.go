package polynomial

import (
	"strings"

	"github.com/arnegrau/colp/rational"
)

// Polynomial is an ordered, gap-filled sum of Terms. After AddTerm,
// AddTermValue or Parse its Terms are strictly sorted by Idx and form
// the contiguous range 1..LastIdx() (missing indices are materialized
// with a zero coefficient). RemoveTerm keeps the order but leaves the
// removed index as a gap.
type Polynomial struct {
	terms []Term
}

// New returns an empty Polynomial.
func New() *Polynomial {
	return &Polynomial{}
}

// Clone returns a deep copy of p.
func (p *Polynomial) Clone() *Polynomial {
	out := &Polynomial{terms: make([]Term, len(p.terms))}
	copy(out.terms, p.terms)
	return out
}

// AddTerm appends a Term at idx with the given coefficient and big-M
// flag, then re-canonicalizes (merging, sorting, gap-filling).
func (p *Polynomial) AddTerm(idx int, coeff rational.Rational, big bool) {
	p.AddTermValue(NewTerm(idx, coeff, big))
}

// AddTermValue appends t, then re-canonicalizes.
func (p *Polynomial) AddTermValue(t Term) {
	p.terms = append(p.terms, t)
	p.canonicalize()
}

// RemoveTerm drops the Term at idx, if present. It does not re-fill the
// gap it leaves, matching Polynom::remove_term, which is only ever
// called to strip an artificial variable's column entirely (the pivot
// never revisits that index).
func (p *Polynomial) RemoveTerm(idx int) {
	for i, t := range p.terms {
		if t.Idx == idx {
			p.terms = append(p.terms[:i], p.terms[i+1:]...)
			return
		}
	}
}

// ClearTerms removes every term.
func (p *Polynomial) ClearTerms() {
	p.terms = nil
}

// Term returns the whole Term stored at idx.
func (p *Polynomial) Term(idx int) (Term, error) {
	for _, t := range p.terms {
		if t.Idx == idx {
			return t, nil
		}
	}
	return Term{}, &IndexError{Idx: idx, Op: "Term"}
}

// Terms returns the current terms in index order. The returned slice
// must not be mutated by the caller.
func (p *Polynomial) Terms() []Term {
	return p.terms
}

// Coeff returns the coefficient stored at idx.
func (p *Polynomial) Coeff(idx int) (rational.Rational, error) {
	t, err := p.Term(idx)
	if err != nil {
		return rational.Rational{}, err
	}
	return t.Coeff, nil
}

// SetCoeff overwrites the coefficient stored at idx, leaving its big-M
// flag untouched. It does not re-canonicalize: a coefficient mutation
// never changes the index set.
func (p *Polynomial) SetCoeff(idx int, value rational.Rational) error {
	for i, t := range p.terms {
		if t.Idx == idx {
			p.terms[i].Coeff = value
			return nil
		}
	}
	return &IndexError{Idx: idx, Op: "SetCoeff"}
}

// Big reports whether the term at idx is on the big-M track. A missing
// index is treated as not big.
func (p *Polynomial) Big(idx int) bool {
	for _, t := range p.terms {
		if t.Idx == idx && t.Big {
			return true
		}
	}
	return false
}

// Indices returns the current term indices in order.
func (p *Polynomial) Indices() []int {
	out := make([]int, len(p.terms))
	for i, t := range p.terms {
		out[i] = t.Idx
	}
	return out
}

// LastIdx returns the highest index present, or 0 if p is empty.
func (p *Polynomial) LastIdx() int {
	if len(p.terms) == 0 {
		return 0
	}
	return p.terms[len(p.terms)-1].Idx
}

// NextIdx returns the next unused index, LastIdx()+1.
func (p *Polynomial) NextIdx() int {
	return p.LastIdx() + 1
}

// Size returns the number of terms.
func (p *Polynomial) Size() int {
	return len(p.terms)
}

// Equal reports whether p and o have identical term lists.
func (p *Polynomial) Equal(o *Polynomial) bool {
	if len(p.terms) != len(o.terms) {
		return false
	}
	for i, t := range p.terms {
		if !t.Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

// String renders p as "[Polynom: t1 t2 ...]".
func (p *Polynomial) String() string {
	var b strings.Builder
	b.WriteString("[Polynom:")
	for _, t := range p.terms {
		b.WriteByte(' ')
		b.WriteString(t.String())
	}
	b.WriteByte(']')
	return b.String()
}

// canonicalize merges same-index terms (summing coefficients, OR-ing
// the big-M flag), stably sorts by index, then fills any gap up to the
// highest index with zero terms.
func (p *Polynomial) canonicalize() {
	p.mergeDuplicates()
	p.stableSortByIdx()
	p.fillGaps()
}

func (p *Polynomial) mergeDuplicates() {
	for i := 0; i < len(p.terms); i++ {
		for j := i + 1; j < len(p.terms); {
			if p.terms[i].Idx == p.terms[j].Idx {
				p.terms[i].Coeff = p.terms[i].Coeff.Add(p.terms[j].Coeff)
				p.terms[i].Big = p.terms[i].Big || p.terms[j].Big
				p.terms = append(p.terms[:j], p.terms[j+1:]...)
			} else {
				j++
			}
		}
	}
}

// stableSortByIdx is a stable insertion sort, matching Polynom::simplify
// exactly (and cheap at the small sizes LP models use).
func (p *Polynomial) stableSortByIdx() {
	for i := 1; i < len(p.terms); i++ {
		key := p.terms[i]
		j := i - 1
		for j >= 0 && p.terms[j].Idx > key.Idx {
			p.terms[j+1] = p.terms[j]
			j--
		}
		p.terms[j+1] = key
	}
}

func (p *Polynomial) fillGaps() {
	if len(p.terms) == 0 {
		return
	}
	max := p.terms[len(p.terms)-1].Idx
	for i := 0; i < max; i++ {
		if p.terms[i].Idx != i+1 {
			p.terms = append(p.terms, ZeroTerm(i+1))
			p.stableSortByIdx()
		}
	}
}
