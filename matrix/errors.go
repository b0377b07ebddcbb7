// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines the package-level sentinel errors plus two structured
// error types (SizeError, RangeError) that carry the offending numbers.
// Every structured error unwraps to its sentinel, so callers match with
// errors.Is and extract details with errors.As.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Operations
// wrap these sentinels with an operation tag via matrixErrorf("Op", err);
// errors.Is keeps working through the wrap chain.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/size -> index -> window.

var (
	// ErrBadShape is returned when a requested shape is invalid (row<=0 or col<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrSizeMismatch indicates that a supplied element count differs from row*col.
	ErrSizeMismatch = errors.New("matrix: element count does not match shape")

	// ErrEmptySource indicates that a rectangular source has no rows.
	ErrEmptySource = errors.New("matrix: rectangular source has no rows")

	// ErrRaggedSource indicates that rows of a rectangular source differ in length.
	ErrRaggedSource = errors.New("matrix: rectangular source rows differ in length")

	// ErrIndexOutOfRange indicates that a coordinate or offset is outside valid bounds.
	// Public indexers MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates that an element-wise operation received
	// operands of different shape.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrProductShapeMismatch indicates that a.Cols() != b.Rows() for Prod/Dot.
	ErrProductShapeMismatch = errors.New("matrix: inner dimensions do not match for product")

	// ErrInvalidWindowSize indicates that a local window dimension is not a positive odd number.
	ErrInvalidWindowSize = errors.New("matrix: window dimensions must be positive odd numbers")

	// ErrNotVector indicates that a vector operation received a matrix with
	// neither dimension equal to 1.
	ErrNotVector = errors.New("matrix: operand is not a vector")

	// ErrZeroVector indicates that cosine similarity was requested for a zero-norm vector.
	ErrZeroVector = errors.New("matrix: zero-norm vector")

	// ErrNilMatrix indicates that a nil *Matrix was passed to an operation.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Axis names used by RangeError.
const (
	AxisRow    = "row"
	AxisCol    = "col"
	AxisOffset = "offset"
)

// SizeError reports an element count that differs from the expected one.
// It unwraps to ErrSizeMismatch unless Kind overrides it (From2D uses
// ErrRaggedSource for per-row reports).
type SizeError struct {
	Expected int   // required element count
	Actual   int   // supplied element count
	Row      int   // source row for ragged reports, -1 otherwise
	Kind     error // sentinel returned by Unwrap
}

func (e *SizeError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("%v: row %d has %d elements, expected %d", e.Kind, e.Row, e.Actual, e.Expected)
	}

	return fmt.Sprintf("%v: expected %d, got %d", e.Kind, e.Expected, e.Actual)
}

// Unwrap returns the sentinel carried by the error.
func (e *SizeError) Unwrap() error { return e.Kind }

// newSizeError builds the construction-time size report.
func newSizeError(expected, actual int) *SizeError {
	return &SizeError{Expected: expected, Actual: actual, Row: -1, Kind: ErrSizeMismatch}
}

// RangeError reports an index outside [Min, Max] on a named axis.
type RangeError struct {
	Axis  string // AxisRow, AxisCol or AxisOffset
	Min   int    // inclusive lower bound
	Max   int    // inclusive upper bound
	Index int    // offending value
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %s must be between %d and %d, got %d",
		ErrIndexOutOfRange, e.Axis, e.Min, e.Max, e.Index)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *RangeError) Unwrap() error { return ErrIndexOutOfRange }

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
