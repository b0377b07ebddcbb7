// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/gridmat/matrix"
)

// ExampleProd multiplies a 2×3 matrix by a 3×2 matrix.
func ExampleProd() {
	a, _ := matrix.From2D([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.From2D([][]float64{{7, 8}, {9, 10}, {11, 12}})

	p, err := matrix.Prod(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(p)

	// Output:
	// [58, 64]
	// [139, 154]
}

// ExampleGetLocalMatrixFill extracts a zero-padded 3×3 neighborhood around
// the top-left cell.
func ExampleGetLocalMatrixFill() {
	src, _ := matrix.From2D([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	win, _ := matrix.GetLocalMatrixFill(src, 0, 0, 0)
	fmt.Print(win)

	// Output:
	// [0, 0, 0]
	// [0, 1, 2]
	// [0, 4, 5]
}

// ExampleMatrix_Fill scales every element by 3 using a filled clone.
func ExampleMatrix_Fill() {
	m, _ := matrix.New(2, 2, []int{1, 2, 3, 4})

	scaled, _ := matrix.Mul(m, m.Clone().Fill(3))
	fmt.Println(scaled.Elements())

	// Output:
	// [3 6 9 12]
}

// ExampleVecCosSim compares two row vectors.
func ExampleVecCosSim() {
	a, _ := matrix.New(1, 3, []float64{1, 2, 3})
	b, _ := matrix.New(1, 3, []float64{4, 5, 6})

	dot, _ := matrix.VecDot(a, b)
	sim, _ := matrix.VecCosSim(a, b)
	fmt.Printf("dot=%g sim=%.4f\n", dot, sim)

	// Output:
	// dot=32 sim=0.9746
}
