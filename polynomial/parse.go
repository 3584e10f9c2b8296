package polynomial

import (
	"strconv"
	"unicode"

	"github.com/arnegrau/colp/internal/lexer"
	"github.com/arnegrau/colp/rational"
)

// Parse reads a signed sum of terms ("term := rational? ('x'|'X') digits",
// terms separated by '+'/'-') from the front of s and returns a new,
// canonicalized Polynomial together with whatever input remains.
//
// Reaching a relational character ('<', '=', '>') right after a
// complete term is a valid termination: the remainder (relation and
// right-hand side) is returned as rest for a Goal or Restriction parser
// to continue from. Any other point of failure returns ok == false and
// echoes s back unchanged — partial state is never committed.
func Parse(s string) (*Polynomial, string, bool) {
	sc := lexer.New(s)
	terms, ok := parseTerms(sc)
	if !ok {
		return nil, s, false
	}
	p := New()
	for _, t := range terms {
		p.terms = append(p.terms, t)
	}
	p.canonicalize()
	return p, sc.Rest(), true
}

type parseState int

const (
	pStart parseState = iota
	pSign
	pCoeff
	pX
	pIdx
)

func isSign(ch rune) bool { return ch == '+' || ch == '-' }
func isX(ch rune) bool    { return ch == 'x' || ch == 'X' }
func isRel(ch rune) bool  { return ch == '<' || ch == '=' || ch == '>' }

func parseTerms(sc *lexer.Scanner) ([]Term, bool) {
	var terms []Term
	st := pStart

	var sign rune
	signSet := false
	var coeff rational.Rational
	coeffSet := false

	resetTerm := func() {
		signSet = false
		coeffSet = false
	}

	for {
		ch, ok := sc.Next()
		if !ok {
			break
		}

		switch st {
		case pStart, pSign:
			switch {
			case isSign(ch):
				sign = ch
				signSet = true
				st = pSign
			case unicode.IsDigit(ch):
				sc.Putback()
				v, okRat := scanUnsignedRational(sc)
				if !okRat {
					return nil, false
				}
				coeff = v
				coeffSet = true
				st = pCoeff
			case isX(ch):
				st = pX
			default:
				return nil, false
			}

		case pCoeff:
			if isX(ch) {
				st = pX
				continue
			}
			return nil, false

		case pX:
			if !unicode.IsDigit(ch) {
				return nil, false
			}
			sc.Putback()

			termCoeff := rational.One()
			switch {
			case signSet && sign == '-':
				if coeffSet {
					termCoeff = coeff.Neg()
				} else {
					termCoeff = rational.FromInt(-1)
				}
			case coeffSet:
				termCoeff = coeff
			}

			idx, okIdx := scanPositiveInt(sc)
			if !okIdx {
				return nil, false
			}
			terms = append(terms, NewTerm(idx, termCoeff, false))
			st = pIdx

		case pIdx:
			switch {
			case isSign(ch):
				resetTerm()
				sign = ch
				signSet = true
				st = pSign
			case isRel(ch):
				sc.Putback()
				return terms, true
			default:
				return nil, false
			}
		}
	}

	if st == pIdx {
		return terms, true
	}
	return nil, false
}

// scanUnsignedRational reads an unsigned numerator digit run, optionally
// followed by '/' and a denominator digit run, directly off sc. The
// term's own sign (tracked separately in parseTerms) is applied by the
// caller; this only ever sees a magnitude.
func scanUnsignedRational(sc *lexer.Scanner) (rational.Rational, bool) {
	numDigits, ok := scanDigits(sc)
	if !ok {
		return rational.Rational{}, false
	}
	num, err := strconv.ParseInt(numDigits, 10, 64)
	if err != nil {
		return rational.Rational{}, false
	}

	ch, more := sc.Next()
	if !more || ch != '/' {
		if more {
			sc.Putback()
		}
		return rational.FromInt(num), true
	}

	peek, more := sc.Next()
	if !more || !unicode.IsDigit(peek) {
		if more {
			sc.Putback()
		}
		sc.Putback()
		return rational.FromInt(num), true
	}
	sc.Putback()

	denDigits, _ := scanDigits(sc)
	den, err := strconv.ParseInt(denDigits, 10, 64)
	if err != nil || den == 0 {
		return rational.Rational{}, false
	}
	v, err := rational.New(num, den)
	if err != nil {
		return rational.Rational{}, false
	}
	return v, true
}

// scanDigits reads a maximal run of decimal digits off sc.
func scanDigits(sc *lexer.Scanner) (digits string, sawDigit bool) {
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

// scanPositiveInt reads a run of decimal digits as a variable index.
func scanPositiveInt(sc *lexer.Scanner) (int, bool) {
	n := 0
	sawDigit := false
	for {
		ch, ok := sc.Next()
		if !ok {
			break
		}
		if !unicode.IsDigit(ch) {
			sc.Putback()
			break
		}
		n = n*10 + int(ch-'0')
		sawDigit = true
	}
	if !sawDigit || n <= 0 {
		return 0, false
	}
	return n, true
}
