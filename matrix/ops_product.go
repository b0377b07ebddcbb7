// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix product (Prod), flat inner product of compatible matrices (Dot),
//     and vector helpers (VecDot, VecCosSim).
//
// Determinism:
//   - Fixed i→j→k loop order; sums accumulate left to right, so float results
//     are reproducible bit-for-bit across runs.

package matrix

import "math"

const (
	opProd      = "Prod"
	opDot       = "Dot"
	opVecDot    = "VecDot"
	opVecCosSim = "VecCosSim"
)

// Prod performs matrix multiplication a × b.
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols() == b.Rows().
//   - Stage 2: gather every column of b once (stride walk over storage).
//   - Stage 3: for each row i of a and column j of b, multiply pairwise and sum.
//
// Returns:
//   - *Matrix[T] of shape (a.Rows(), b.Cols()).
//
// Errors:
//   - ErrNilMatrix, ErrProductShapeMismatch.
//
// Complexity:
//   - Time O(a.row * b.col * a.col), Space O(a.row*b.col + b.row*b.col).
func Prod[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateProdCompatible(a, b); err != nil {
		return nil, matrixErrorf(opProd, err)
	}

	// Columns of b are strided in storage; gather them once instead of per row of a.
	cols := make([][]T, b.col)
	for j := range cols {
		cols[j] = b.column(j)
	}

	out := make([]T, 0, a.row*b.col)
	var i, j, base int
	for i = 0; i < a.row; i++ {
		base = i * a.col
		row := a.elements[base : base+a.col] // read-only view of row i
		for j = 0; j < b.col; j++ {
			out = append(out, innerProduct(row, cols[j]))
		}
	}

	return &Matrix[T]{row: a.row, col: b.col, elements: out}, nil
}

// innerProduct sums x[k]*y[k]; callers guarantee len(x) == len(y).
func innerProduct[T Number](x, y []T) T {
	var sum T
	for k := range x {
		sum += x[k] * y[k]
	}

	return sum
}

// Dot returns the sum of pairwise products of the row-major element
// sequences of a and b.
// Implementation:
//   - Stage 1: require a.Cols() == b.Rows() (same compatibility as Prod).
//   - Stage 2: require equal element counts.
//   - Stage 3: reduce Σ a[i]*b[i] over the flat buffers.
//
// Behavior highlights:
//   - 1×N · N×1 gives the conventional inner product: [1,2,3]·[1,2,3]ᵀ = 14.
//   - Equal square shapes give the Frobenius inner product (sum of Mul(a, b)).
//
// Errors:
//   - ErrNilMatrix, ErrProductShapeMismatch, ErrShapeMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Dot[T Number](a, b *Matrix[T]) (T, error) {
	var zero T
	if err := ValidateProdCompatible(a, b); err != nil {
		return zero, matrixErrorf(opDot, err)
	}
	if len(a.elements) != len(b.elements) {
		return zero, matrixErrorf(opDot, ErrShapeMismatch)
	}

	return innerProduct(a.elements, b.elements), nil
}

// validateVectorPair checks both operands are vectors of equal length.
func validateVectorPair[T Number](a, b *Matrix[T]) error {
	if err := ValidateVector(a); err != nil {
		return err
	}
	if err := ValidateVector(b); err != nil {
		return err
	}
	if len(a.elements) != len(b.elements) {
		return ErrShapeMismatch
	}

	return nil
}

// VecDot returns the inner product Σ a[k]*b[k] of two equal-length vectors.
// Row (1×N) and column (N×1) vectors may be mixed.
//
// Errors: ErrNilMatrix, ErrNotVector, ErrShapeMismatch.
// Complexity: O(N).
func VecDot[T Number](a, b *Matrix[T]) (T, error) {
	if err := validateVectorPair(a, b); err != nil {
		var zero T
		return zero, matrixErrorf(opVecDot, err)
	}

	return innerProduct(a.elements, b.elements), nil
}

// VecCosSim returns VecDot(a, b) / (‖a‖·‖b‖) with Euclidean norms,
// computed in float64 regardless of T.
//
// Errors: ErrNilMatrix, ErrNotVector, ErrShapeMismatch, ErrZeroVector.
// Complexity: O(N).
//
// Notes:
//   - Identical non-zero vectors yield 1 up to float rounding.
func VecCosSim[T Number](a, b *Matrix[T]) (float64, error) {
	if err := validateVectorPair(a, b); err != nil {
		return 0, matrixErrorf(opVecCosSim, err)
	}

	var dot, na, nb float64
	for k := range a.elements {
		x, y := float64(a.elements[k]), float64(b.elements[k])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0, matrixErrorf(opVecCosSim, ErrZeroVector)
	}

	return dot / math.Sqrt(na*nb), nil
}
