// Package transport implements the one-dimensional transportation
// (balance) problem: an initial feasible plan by one of two rules
// (north-west corner, minimum cost), improved by the method of
// potentials until every reduced cost is nonnegative.
//
// Transport holds the balanced cost/supply/demand triple; Solve runs
// the potential method and returns the full sequence of (X, D, W)
// Steps, the last of which is terminal.
package transport
