package simplex

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/arnegrau/colp/internal/lexer"
	"github.com/arnegrau/colp/polynomial"
	"github.com/arnegrau/colp/rational"
)

// Restriction is a Polynomial plus a relation ("<=", ">=", "==") and a
// rational right-hand side.
type Restriction struct {
	*polynomial.Polynomial
	relation string
	right    rational.Rational
}

// ParseRestriction parses a polynomial followed by a relation and a
// signed integer right-hand side. Strict comparisons ('<', '>') are
// rejected: only "<=", ">=", and "==" are part of this grammar.
func ParseRestriction(s string) (*Restriction, bool) {
	p, rest, ok := polynomial.Parse(s)
	if !ok {
		return nil, false
	}
	rel, right, ok := parseRelationSuffix(rest)
	if !ok {
		return nil, false
	}
	return &Restriction{Polynomial: p, relation: rel, right: right}, true
}

func parseRelationSuffix(s string) (string, rational.Rational, bool) {
	sc := lexer.New(s)

	ch, ok := sc.Next()
	if !ok || !isRelChar(ch) {
		return "", rational.Rational{}, false
	}
	rel := string(ch)

	ch, ok = sc.Next()
	if !ok || ch != '=' {
		return "", rational.Rational{}, false
	}
	rel += "="
	if rel != "<=" && rel != ">=" && rel != "==" {
		return "", rational.Rational{}, false
	}

	ch, ok = sc.Next()
	if !ok {
		return "", rational.Rational{}, false
	}

	negative := false
	switch {
	case ch == '+' || ch == '-':
		negative = ch == '-'
	case unicode.IsDigit(ch):
		sc.Putback()
	default:
		return "", rational.Rational{}, false
	}

	digits, sawDigit := scanDigitRun(sc)
	if !sawDigit {
		return "", rational.Rational{}, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return "", rational.Rational{}, false
	}
	if negative {
		n = -n
	}
	if strings.TrimSpace(sc.Rest()) != "" {
		return "", rational.Rational{}, false
	}

	return rel, rational.FromInt(n), true
}

func isRelChar(ch rune) bool { return ch == '<' || ch == '>' || ch == '=' }

func scanDigitRun(sc *lexer.Scanner) (string, bool) {
	var buf []rune
	for {
		ch, ok := sc.Next()
		if !ok {
			break
		}
		if !unicode.IsDigit(ch) {
			sc.Putback()
			break
		}
		buf = append(buf, ch)
	}
	return string(buf), len(buf) > 0
}

// Relation returns "<=", ">=", or "==".
func (r *Restriction) Relation() string { return r.relation }

// SetRelation mutates the relation only with a recognized value;
// anything else is silently ignored (the previous value stands).
func (r *Restriction) SetRelation(newRelation string) {
	if newRelation == "<=" || newRelation == ">=" || newRelation == "==" {
		r.relation = newRelation
	}
}

// Right returns the right-hand side.
func (r *Restriction) Right() rational.Rational { return r.right }

// SetRight overwrites the right-hand side.
func (r *Restriction) SetRight(v rational.Rational) { r.right = v }

// Clone returns a deep copy of r, independent of further mutation.
func (r *Restriction) Clone() *Restriction {
	return &Restriction{Polynomial: r.Polynomial.Clone(), relation: r.relation, right: r.right}
}

// Equal reports whether r and o have identical terms, relation, and
// right-hand side.
func (r *Restriction) Equal(o *Restriction) bool {
	return r.relation == o.relation && r.right.Equal(o.right) && r.Polynomial.Equal(o.Polynomial)
}

func (r *Restriction) String() string {
	if r.Size() < 1 {
		return "[Restriction:]"
	}
	var b strings.Builder
	b.WriteString("[Restriction:")
	for _, idx := range r.Indices() {
		t, _ := r.Term(idx)
		b.WriteByte(' ')
		b.WriteString(t.String())
	}
	b.WriteByte(' ')
	b.WriteString(r.relation)
	b.WriteByte(' ')
	b.WriteString(r.right.String())
	b.WriteByte(']')
	return b.String()
}
