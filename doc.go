// Package colp solves small linear programs over exact rational
// arithmetic and one-dimensional transportation (balance) problems.
//
// What is colp?
//
//	A pure, in-memory library with no I/O and no persistence that brings
//	together:
//
//	  • Exact rational arithmetic: reduced p/q fractions with a
//	    stream-style parser, closed under +, -, *, /.
//	  • A symbolic polynomial/LP model: terms indexed by variable id,
//	    goals, restrictions, and a compact parseable DSL.
//	  • A two-phase Big-M simplex driver: full pivoting, anti-cycling
//	    ratio tests, dual construction, and a step-by-step tableau trace.
//	  • A transportation solver: north-west-corner and minimum-cost
//	    initial plans, improved by the method of potentials.
//
// Why this shape?
//
//   - Exact — every number is a reduced fraction; there is no floating
//     point anywhere in the core.
//   - Inspectable — Solve returns the full sequence of tableau/plan
//     steps, not just the final answer, so callers can render or verify
//     every iteration.
//   - Pure Go — no cgo, no hidden dependencies beyond the test stack.
//
// Everything is organized under four subpackages:
//
//	rational/   — exact p/q arithmetic, comparison, parsing
//	polynomial/ — Term and Polynomial, the shared LP model building block
//	simplex/    — Goal, Restriction, Solver, Step, and dual construction
//	transport/  — balance matrices and the potential method
//
// colp deliberately stops at the step-sequence interface: any GUI step
// viewer, clipboard export, or persistence layer is an external
// collaborator that consumes []simplex.Step / []transport.Step and
// contributes nothing to the correctness of the solve itself.
//
//	go get github.com/arnegrau/colp
package colp
