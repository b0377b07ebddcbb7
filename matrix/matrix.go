// SPDX-License-Identifier: MIT

// Package matrix - construction & cloning.
//
// Purpose:
//   - Validate shape before allocation (row>0, col>0).
//   - Take ownership by copying caller slices; a Matrix never aliases input.
//   - Report every ragged row of a rectangular source, not just the first.
//
// Complexity quicksheet:
//   - New/Filled/Clone: O(r*c); From2D: O(r*c).

package matrix

import (
	"github.com/hashicorp/go-multierror"
)

// ---------- error context tags ----------

const (
	opNew    = "New"
	opFilled = "Filled"
	opFrom2D = "From2D"
)

// validateShape returns ErrBadShape unless rows>0 and cols>0.
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrBadShape
	}

	return nil
}

// New creates a row×col matrix from a row-major element slice.
// Implementation:
//   - Stage 1: validate row>0 && col>0; else ErrBadShape.
//   - Stage 2: require len(elements) == row*col; else *SizeError (ErrSizeMismatch).
//   - Stage 3: copy elements into freshly owned storage.
//
// Inputs:
//   - row, col: positive dimensions.
//   - elements: row-major values; the slice is copied, later edits by the caller are not observed.
//
// Errors:
//   - ErrBadShape, ErrSizeMismatch (as *SizeError carrying Expected/Actual).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](row, col int, elements []T) (*Matrix[T], error) {
	if err := validateShape(row, col); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	size := row * col
	if len(elements) != size {
		return nil, matrixErrorf(opNew, newSizeError(size, len(elements)))
	}

	data := make([]T, size)
	copy(data, elements)

	return &Matrix[T]{row: row, col: col, elements: data}, nil
}

// Filled creates a row×col matrix with every cell set to fill.
// Errors: ErrBadShape. Complexity: O(r*c).
func Filled[T any](row, col int, fill T) (*Matrix[T], error) {
	if err := validateShape(row, col); err != nil {
		return nil, matrixErrorf(opFilled, err)
	}

	data := make([]T, row*col)
	for i := range data {
		data[i] = fill
	}

	return &Matrix[T]{row: row, col: col, elements: data}, nil
}

// newFilled allocates without validation; callers guarantee rows, cols > 0.
func newFilled[T any](rows, cols int, fill T) *Matrix[T] {
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = fill
	}

	return &Matrix[T]{row: rows, col: cols, elements: data}
}

// From2D flattens a rectangular row-of-rows source into a new matrix.
// Implementation:
//   - Stage 1: len(rows) must be ≥ 1; else ErrEmptySource.
//   - Stage 2: col = len(rows[0]); col must be > 0; else ErrBadShape.
//   - Stage 3: every row must have col elements; all offenders are collected
//     into one multierror, each entry a *SizeError unwrapping to ErrRaggedSource.
//   - Stage 4: copy rows in order into row-major storage.
//
// Errors:
//   - ErrEmptySource, ErrBadShape, ErrRaggedSource.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Inverse of As2D: From2D(m.As2D()) equals m.
func From2D[T any](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(opFrom2D, ErrEmptySource)
	}
	row, col := len(rows), len(rows[0])
	if err := validateShape(row, col); err != nil {
		return nil, matrixErrorf(opFrom2D, err)
	}

	var ragged *multierror.Error
	for i, r := range rows {
		if len(r) != col {
			ragged = multierror.Append(ragged, &SizeError{
				Expected: col,
				Actual:   len(r),
				Row:      i,
				Kind:     ErrRaggedSource,
			})
		}
	}
	if err := ragged.ErrorOrNil(); err != nil {
		return nil, matrixErrorf(opFrom2D, err)
	}

	data := make([]T, 0, row*col)
	for _, r := range rows {
		data = append(data, r...)
	}

	return &Matrix[T]{row: row, col: col, elements: data}, nil
}

// Clone returns a deep copy with identical shape and a fresh element buffer.
// Mutating the clone never affects the original.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.elements))
	copy(cp, m.elements)

	return &Matrix[T]{row: m.row, col: m.col, elements: cp}
}
