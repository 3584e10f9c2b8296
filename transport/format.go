package transport

import (
	"fmt"
	"io"
)

// PrintMatrix renders an int matrix. When epsIsMinusOne is set, any
// cell holding the degenerate ε sentinel (value <= -1) prints as its
// absolute value followed by "E" instead of the raw negative number.
func PrintMatrix(w io.Writer, m [][]int, epsIsMinusOne bool) {
	fmt.Fprint(w, "[")
	for _, row := range m {
		fmt.Fprint(w, "\n")
		for _, item := range row {
			if epsIsMinusOne && item <= epsVal {
				fmt.Fprintf(w, "%3dE", abs(item))
			} else {
				fmt.Fprintf(w, "%4d", item)
			}
		}
	}
	fmt.Fprint(w, "\n]")
}
