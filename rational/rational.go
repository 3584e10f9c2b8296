package rational

// Rational is an exact fraction p/q, always stored in canonical form:
// q > 0 and gcd(|p|, q) == 1. The zero value is the valid fraction 0/1.
type Rational struct {
	p int64
	q int64
}

// Zero is the additive identity, 0/1.
func Zero() Rational { return Rational{p: 0, q: 1} }

// One is the multiplicative identity, 1/1.
func One() Rational { return Rational{p: 1, q: 1} }

// New constructs a Rational from numerator p and denominator q, reduced
// to canonical form. It returns ErrZeroDenominator if q == 0.
func New(p, q int64) (Rational, error) {
	if q == 0 {
		return Rational{}, ErrZeroDenominator
	}
	r := Rational{p: p, q: q}
	r.simplify()
	return r, nil
}

// FromInt constructs the Rational n/1.
func FromInt(n int64) Rational {
	return Rational{p: n, q: 1}
}

// Num returns the canonical numerator.
func (r Rational) Num() int64 { return r.p }

// Den returns the canonical denominator (always >= 1).
func (r Rational) Den() int64 { return r.q }

// IsZero reports whether r is the additive identity.
func (r Rational) IsZero() bool { return r.p == 0 }

// Sign returns -1, 0, or 1 according to the sign of r.
func (r Rational) Sign() int {
	switch {
	case r.p < 0:
		return -1
	case r.p > 0:
		return 1
	default:
		return 0
	}
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{p: -r.p, q: r.q}
}

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	res := Rational{p: r.p*o.q + o.p*r.q, q: r.q * o.q}
	res.simplify()
	return res
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	return r.Add(o.Neg())
}

// Mul returns r * o, reducing via cross-gcd first to keep intermediate
// products small (mirrors the original's gcd1/gcd2 pre-reduction).
func (r Rational) Mul(o Rational) Rational {
	rp, rq, op, oq := r.p, r.q, o.p, o.q

	g1 := gcd(abs(rp), oq)
	if g1 != 0 {
		rp /= g1
		oq /= g1
	}
	g2 := gcd(rq, abs(op))
	if g2 != 0 {
		rq /= g2
		op /= g2
	}

	res := Rational{p: rp * op, q: rq * oq}
	res.simplify()
	return res
}

// Quo returns r / o. It returns ErrDivisionByZero if o is zero.
func (r Rational) Quo(o Rational) (Rational, error) {
	if o.p == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return r.Mul(Rational{p: o.q, q: o.p}), nil
}

// AddInt returns r + n.
func (r Rational) AddInt(n int64) Rational { return r.Add(FromInt(n)) }

// SubInt returns r - n.
func (r Rational) SubInt(n int64) Rational { return r.Sub(FromInt(n)) }

// MulInt returns r * n.
func (r Rational) MulInt(n int64) Rational { return r.Mul(FromInt(n)) }

// QuoInt returns r / n. It returns ErrDivisionByZero if n == 0.
func (r Rational) QuoInt(n int64) (Rational, error) {
	if n == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return r.Mul(Rational{p: 1, q: n}), nil
}

// Cmp returns -1, 0, or 1 as r is less than, equal to, or greater than o,
// comparing via cross-multiplication (both denominators are positive so
// the sign of the cross product is never flipped).
func (r Rational) Cmp(o Rational) int {
	left := r.p * o.q
	right := o.p * r.q
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}

// Equal reports whether r == o.
func (r Rational) Equal(o Rational) bool { return r.Cmp(o) == 0 }

// Less reports whether r < o.
func (r Rational) Less(o Rational) bool { return r.Cmp(o) < 0 }

// LessEqual reports whether r <= o.
func (r Rational) LessEqual(o Rational) bool { return r.Cmp(o) <= 0 }

// Greater reports whether r > o.
func (r Rational) Greater(o Rational) bool { return r.Cmp(o) > 0 }

// GreaterEqual reports whether r >= o.
func (r Rational) GreaterEqual(o Rational) bool { return r.Cmp(o) >= 0 }

// simplify normalizes the sign onto the numerator and reduces by the gcd.
// Called after every arithmetic operation (spec's resolved open question:
// always simplify, never skip it).
func (r *Rational) simplify() {
	if r.p == 0 {
		r.q = 1
		return
	}
	if r.q < 0 {
		r.p = -r.p
		r.q = -r.q
	}
	if g := gcd(abs(r.p), r.q); g > 1 {
		r.p /= g
		r.q /= g
	}
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// gcd returns the greatest common divisor of two non-negative int64s.
// gcd(0, b) == b and gcd(a, 0) == a, matching boost::math::gcd semantics.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
