// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for operand validation.
//   - Keep kernels minimal by delegating nil/shape/window checks here.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).
//   - All checks are pure, O(1) and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IsSameSize reports whether a and b have equal row and column counts.
// Element types may differ; nil operands are never the same size.
// Symmetric: IsSameSize(a, b) == IsSameSize(b, a).
func IsSameSize[T, U any](a *Matrix[T], b *Matrix[U]) bool {
	if a == nil || b == nil {
		return false
	}

	return a.row == b.row && a.col == b.col
}

// ValidateNotNil returns ErrNilMatrix if m is nil.
func ValidateNotNil[T any](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Composite: NotNil(a) → NotNil(b) → equal shape.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// AI-Hints: Use for Add/Sub/Mul/Div kernels and compatibility guards.
func ValidateSameShape[T any](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.row != b.row {
		return validatorErrorf("ValidateSameShape: Rows", ErrShapeMismatch)
	}
	if a.col != b.col {
		return validatorErrorf("ValidateSameShape: Columns", ErrShapeMismatch)
	}

	return nil
}

// ValidateProdCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrProductShapeMismatch.
func ValidateProdCompatible[T any](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateProdCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateProdCompatible", err)
	}
	if a.col != b.row {
		return validatorErrorf("ValidateProdCompatible", ErrProductShapeMismatch)
	}

	return nil
}

// ValidateVector ensures m is non-nil and has a dimension equal to 1.
//
// Errors: ErrNilMatrix, ErrNotVector.
func ValidateVector[T any](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateVector", err)
	}
	if m.row != 1 && m.col != 1 {
		return validatorErrorf("ValidateVector", ErrNotVector)
	}

	return nil
}

// ValidateWindow ensures both window dimensions are positive odd numbers.
//
// Errors: ErrInvalidWindowSize.
func ValidateWindow(rows, cols int) error {
	if rows <= 0 || cols <= 0 || rows%2 == 0 || cols%2 == 0 {
		return validatorErrorf("ValidateWindow", ErrInvalidWindowSize)
	}

	return nil
}
