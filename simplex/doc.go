// Package simplex implements the primal LP model (Goal, Restriction)
// and the two-phase Big-M simplex driver (Solver, Step) that solves it.
//
// Goal and Restriction are composed from a *polynomial.Polynomial
// rather than derived from it: each embeds the polynomial and adds
// exactly the field its own DSL suffix parses (a direction for Goal, a
// relation and right-hand side for Restriction). Solver owns the
// problem statement; Solve produces an immutable []Step trace, each
// Step a full tableau snapshot built by a pure transformation of the
// one before it.
package simplex
