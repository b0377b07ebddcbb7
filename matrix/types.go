// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file holds the Matrix container and the numeric bound used by
// arithmetic. Errors and options live in errors.go and options.go.
package matrix

import "golang.org/x/exp/constraints"

// Number is the element bound for arithmetic operations.
// Structural operations accept any element type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Matrix is a fixed-size two-dimensional container in row-major order.
//   - row, col hold dimensions (both > 0 for every constructed value).
//   - elements is a flat buffer of length row*col (offset = r*col + c).
//
// The zero value is not usable; build matrices with New, Filled or From2D.
type Matrix[T any] struct {
	row, col int // dimensions, fixed for the lifetime of the value
	elements []T // exclusively owned row-major storage
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.row }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.col }

// Size returns row*col, the number of stored elements.
func (m *Matrix[T]) Size() int { return len(m.elements) }

// Shape returns (rows, cols).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.row, m.col }
