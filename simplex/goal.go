package simplex

import (
	"strings"

	"github.com/arnegrau/colp/internal/lexer"
	"github.com/arnegrau/colp/polynomial"
)

// Goal is a Polynomial plus an optimization direction ("min" or
// "max"), composed rather than derived (see DESIGN.md's note on the
// original's Goal : public Polynom relationship).
type Goal struct {
	*polynomial.Polynomial
	direction string
}

// ParseGoal parses a polynomial followed by "=> min" or "=> max".
func ParseGoal(s string) (*Goal, bool) {
	p, rest, ok := polynomial.Parse(s)
	if !ok {
		return nil, false
	}
	dir, ok := parseDirectionSuffix(rest)
	if !ok {
		return nil, false
	}
	return &Goal{Polynomial: p, direction: dir}, true
}

func parseDirectionSuffix(s string) (string, bool) {
	sc := lexer.New(s)
	ch, ok := sc.Next()
	if !ok || ch != '=' {
		return "", false
	}
	ch, ok = sc.Next()
	if !ok || ch != '>' {
		return "", false
	}
	word := strings.TrimSpace(sc.Rest())
	if word == "min" || word == "max" {
		return word, true
	}
	return "", false
}

// Direction returns "min" or "max".
func (g *Goal) Direction() string { return g.direction }

// SetDirection mutates the direction only with a recognized word;
// anything else is silently ignored (the previous value stands).
func (g *Goal) SetDirection(newDirection string) {
	if newDirection == "min" || newDirection == "max" {
		g.direction = newDirection
	}
}

// Clone returns a deep copy of g, independent of further mutation.
func (g *Goal) Clone() *Goal {
	return &Goal{Polynomial: g.Polynomial.Clone(), direction: g.direction}
}

// Equal reports whether g and o have identical terms and direction.
func (g *Goal) Equal(o *Goal) bool {
	return g.direction == o.direction && g.Polynomial.Equal(o.Polynomial)
}

func (g *Goal) String() string {
	if g.Size() < 1 {
		return "[Goal:]"
	}
	var b strings.Builder
	b.WriteString("[Goal:")
	for _, idx := range g.Indices() {
		t, _ := g.Term(idx)
		b.WriteByte(' ')
		b.WriteString(t.String())
	}
	b.WriteString(" => ")
	b.WriteString(g.direction)
	b.WriteByte(']')
	return b.String()
}
