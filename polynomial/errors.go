// Package polynomial implements the shared LP modeling building block:
// Term (a variable index, rational coefficient, and big-M flag) and
// Polynomial (an ordered, gap-filled sum of Terms), plus the compact
// textual DSL both Goal and Restriction parse through.
//
// A Polynomial's invariant is "no gaps": if any Term has index n, Terms
// for every index 1..n exist (missing ones are materialized as zero
// coefficients), so a column can always be accessed positionally in the
// simplex tableau. RemoveTerm is the one mutation that leaves a gap.
package polynomial

import "fmt"

// IndexError is returned by accessors when idx is not a valid index
// (either out of the contiguous 1..n range, or not positive).
type IndexError struct {
	Idx int
	Op  string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("polynomial: %s: index %d out of range", e.Op, e.Idx)
}
