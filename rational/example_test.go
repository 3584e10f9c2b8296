package rational_test

import (
	"fmt"

	"github.com/arnegrau/colp/rational"
)

// ExampleNew shows that construction always reduces to canonical form.
func ExampleNew() {
	r, err := rational.New(6, -8)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(r)
	// Output: -3/4
}

// ExampleParseRational shows the parser handing back the unconsumed
// suffix of the input, the way Polynomial term parsing relies on.
func ExampleParseRational() {
	v, rest, ok := rational.ParseRational("-4x1")
	if !ok {
		fmt.Println("parse failed")
		return
	}
	fmt.Printf("%s %q\n", v, rest)
	// Output: -4 "x1"
}
