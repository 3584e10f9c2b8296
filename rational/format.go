package rational

import "strconv"

// String renders r as "p" when the denominator is 1, or "p/q" otherwise.
func (r Rational) String() string {
	if r.q == 1 {
		return strconv.FormatInt(r.p, 10)
	}
	return strconv.FormatInt(r.p, 10) + "/" + strconv.FormatInt(r.q, 10)
}
