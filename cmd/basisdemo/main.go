// Command basisdemo factors a small dense basis matrix and solves one
// Ftran against it, printing the factorization report.
package main

import (
	"fmt"
	"os"

	"basisfactor"
)

func main() {
	// B = [[2, 0, 1], [0, 3, 0], [1, 0, 2]], basis columns are the
	// structural columns 0,1,2 of a 3-column, 3-row A with no slacks.
	aStart := []int{0, 2, 3, 5}
	aIndex := []int{0, 2, 1, 0, 2}
	aValue := []float64{2, 1, 3, 1, 2}
	basicIndex := []int{0, 1, 2}

	var eng basisfactor.Engine
	eng.Setup(3, 3, aStart, aIndex, aValue, basicIndex, 0, 0, 0)

	deficiency, err := eng.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "build:", err)
		os.Exit(1)
	}
	if deficiency > 0 {
		fmt.Printf("basis is rank deficient by %d\n", deficiency)
	}

	rhs := basisfactor.NewDenseVector(3)
	rhs.Array[0] = 1
	rhs.Array[1] = 1
	rhs.Array[2] = 1
	rhs.Pack()
	if err := eng.Ftran(rhs); err != nil {
		fmt.Fprintln(os.Stderr, "ftran:", err)
		os.Exit(1)
	}
	fmt.Printf("Ftran solution: %v\n", rhs.Array)

	eng.ReportLu(os.Stdout, basisfactor.ReportLuBoth, true)
}
