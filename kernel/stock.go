// SPDX-License-Identifier: MIT

package kernel

import "github.com/katalvlaran/gridmat/matrix"

// Box returns an n×n averaging kernel with every weight 1/n².
// Errors: matrix.ErrInvalidWindowSize unless n is a positive odd number.
func Box(n int) (*matrix.Matrix[float64], error) {
	if err := matrix.ValidateWindow(n, n); err != nil {
		return nil, kernelErrorf(opBox, err)
	}

	return matrix.Filled(n, n, 1/float64(n*n))
}

// SobelX returns the 3×3 horizontal-gradient Sobel kernel.
func SobelX() *matrix.Matrix[float64] {
	return mustStock([]float64{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	})
}

// SobelY returns the 3×3 vertical-gradient Sobel kernel.
func SobelY() *matrix.Matrix[float64] {
	return mustStock([]float64{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	})
}

// Laplacian returns the 3×3 four-neighbor Laplacian kernel.
func Laplacian() *matrix.Matrix[float64] {
	return mustStock([]float64{
		0, 1, 0,
		1, -4, 1,
		0, 1, 0,
	})
}

// mustStock builds a fixed 3×3 kernel; panics only on a programmer error in this file.
func mustStock(vals []float64) *matrix.Matrix[float64] {
	m, err := matrix.New(3, 3, vals)
	if err != nil {
		panic(err)
	}

	return m
}
