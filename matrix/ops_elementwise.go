// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise binary arithmetic over equal-shaped operands.
//   - One private kernel (ewBinary) shared by Add/Sub/Mul/Div so the loop,
//     validation order and allocation policy live in one place.
//
// Determinism & Performance:
//   - Flat 0..n-1 loop over the row-major buffers.
//   - Exactly one allocation (the result); operands are never written.
//
// Notes:
//   - Mul is the Hadamard product, NOT the matrix product (see Prod).
//   - Div performs no zero check. Float division by zero yields ±Inf/NaN;
//     integer division by zero panics as in plain Go arithmetic.

package matrix

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
	opDiv = "Div"
)

// ewBinary computes out[i] = f(a[i], b[i]) for equal-shaped a and b.
// Time: O(r*c). Space: O(r*c).
func ewBinary[T Number](tag string, a, b *Matrix[T], f func(x, y T) T) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	out := make([]T, len(a.elements))
	for i := range out {
		out[i] = f(a.elements[i], b.elements[i])
	}

	return &Matrix[T]{row: a.row, col: a.col, elements: out}, nil
}

// Add returns a new matrix with out[i] = a[i] + b[i].
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return ewBinary(opAdd, a, b, func(x, y T) T { return x + y })
}

// Sub returns a new matrix with out[i] = a[i] - b[i].
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return ewBinary(opSub, a, b, func(x, y T) T { return x - y })
}

// Mul returns a new matrix with out[i] = a[i] * b[i].
// This is NOT the matrix product; use Prod for that.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return ewBinary(opMul, a, b, func(x, y T) T { return x * y })
}

// Div returns a new matrix with out[i] = a[i] / b[i].
// Errors: ErrNilMatrix, ErrShapeMismatch.
//
// Notes:
//   - No zero check: float operands follow IEEE-754 (x/0 = ±Inf, 0/0 = NaN).
func Div[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return ewBinary(opDiv, a, b, func(x, y T) T { return x / y })
}
