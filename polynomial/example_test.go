package polynomial_test

import (
	"fmt"

	"github.com/arnegrau/colp/polynomial"
)

// ExampleParse shows a sparse sum getting its gaps filled with zero
// terms and the trailing relation handed back as rest.
func ExampleParse() {
	p, rest, ok := polynomial.Parse("5x1+7x3<=20")
	if !ok {
		fmt.Println("parse failed")
		return
	}
	fmt.Println(p)
	fmt.Println(rest)
	// Output:
	// [Polynom: 5{X1} 0{X2} 7{X3}]
	// <=20
}
