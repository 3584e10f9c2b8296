package rational

import (
	"strconv"
	"unicode"

	"github.com/arnegrau/colp/internal/lexer"
)

// ParseRational reads one rational literal ("sign? digits ('/' digits)?")
// from the front of s and returns the parsed value together with
// whatever input remains unconsumed. ok is false if s does not begin
// with a valid literal, in which case rest echoes s unchanged.
//
// A denominator of zero is rejected (n/0 fails). If a '/' is followed by
// a non-digit, the '/' and that character are both pushed back and the
// literal is taken to end at the integer before the slash — mirroring
// Fraction.cpp's istream operator>> state machine (begin/sign/nominator/
// slash), where the numerator and denominator are each read as a whole
// integer token rather than digit by digit.
func ParseRational(s string) (value Rational, rest string, ok bool) {
	sc := lexer.New(s)
	v, success := parseOn(sc)
	if !success {
		return Rational{}, s, false
	}
	return v, sc.Rest(), true
}

func parseOn(sc *lexer.Scanner) (Rational, bool) {
	ch, more := sc.Next()
	if !more {
		return Rational{}, false
	}

	negative := false
	switch {
	case ch == '+' || ch == '-':
		negative = ch == '-'
	case unicode.IsDigit(ch):
		sc.Putback()
	default:
		return Rational{}, false
	}

	numDigits, sawDigit := scanDigits(sc)
	if !sawDigit {
		return Rational{}, false
	}
	num, err := strconv.ParseInt(numDigits, 10, 64)
	if err != nil {
		return Rational{}, false
	}
	if negative {
		num = -num
	}

	ch, more = sc.Next()
	if !more {
		return FromInt(num), true
	}
	if ch != '/' {
		sc.Putback()
		return FromInt(num), true
	}

	peek, more := sc.Next()
	if !more || !unicode.IsDigit(peek) {
		// push back the peeked char (if any) and the slash itself.
		if more {
			sc.Putback()
		}
		sc.Putback()
		return FromInt(num), true
	}
	sc.Putback()

	denDigits, _ := scanDigits(sc)
	den, err := strconv.ParseInt(denDigits, 10, 64)
	if err != nil || den == 0 {
		return Rational{}, false
	}

	v, err := New(num, den)
	if err != nil {
		return Rational{}, false
	}
	return v, true
}

// scanDigits consumes a maximal run of ASCII digits, pushing back the
// first non-digit rune it encounters (or leaving the scanner at end of
// input). sawDigit is false if no digit was consumed.
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
