// SPDX-License-Identifier: MIT

// Package matrix - element access, vector extraction & conversion.
//
// Purpose:
//   - Safe reads and writes at the public surface: errors instead of panics.
//   - Row/Col/Elements/As2D always return copies, never views of storage.
//   - Set, Fill and Apply are the only in-place mutations in the package.
//
// Complexity quicksheet:
//   - At/Set: O(1); Row: O(c); Col: O(r); Fill/Apply/Do/As2D/Elements: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
	ctxCol = "Col"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// At returns the element at (r, c).
// Errors: ErrIndexOutOfRange (*RangeError).
func (m *Matrix[T]) At(r, c int) (T, error) {
	off, err := m.offset(r, c)
	if err != nil {
		var zero T
		return zero, matrixErrorf(ctxAt, err)
	}

	return m.elements[off], nil
}

// Set overwrites the element at (r, c). Mutates the receiver.
// Errors: ErrIndexOutOfRange; the matrix is unchanged on error.
func (m *Matrix[T]) Set(r, c int, v T) error {
	off, err := m.offset(r, c)
	if err != nil {
		return matrixErrorf(ctxSet, err)
	}
	m.elements[off] = v

	return nil
}

// Row returns a copy of row r: the contiguous range [r*col, r*col+col).
// Errors: ErrIndexOutOfRange.
func (m *Matrix[T]) Row(r int) ([]T, error) {
	if err := checkAxis(AxisRow, r, m.row); err != nil {
		return nil, matrixErrorf(ctxRow, err)
	}
	start := r * m.col
	out := make([]T, m.col)
	copy(out, m.elements[start:start+m.col])

	return out, nil
}

// Col returns a copy of column c, stepping through storage with stride col.
// Errors: ErrIndexOutOfRange.
func (m *Matrix[T]) Col(c int) ([]T, error) {
	if err := checkAxis(AxisCol, c, m.col); err != nil {
		return nil, matrixErrorf(ctxCol, err)
	}

	return m.column(c), nil
}

// column gathers column c without validation.
func (m *Matrix[T]) column(c int) []T {
	out := make([]T, 0, m.row)
	for i := c; i < len(m.elements); i += m.col {
		out = append(out, m.elements[i])
	}

	return out
}

// Fill overwrites every cell with v and returns the receiver for chaining:
//
//	threes := m.Clone().Fill(3)
//	scaled, err := matrix.Mul(m, threes)
func (m *Matrix[T]) Fill(v T) *Matrix[T] {
	for i := range m.elements {
		m.elements[i] = v
	}

	return m
}

// Elements returns a copy of the row-major element sequence.
func (m *Matrix[T]) Elements() []T {
	out := make([]T, len(m.elements))
	copy(out, m.elements)

	return out
}

// As2D regroups storage into row slices of length col (a copy).
// It is the inverse of From2D.
func (m *Matrix[T]) As2D() [][]T {
	out := make([][]T, m.row)
	for i := 0; i < m.row; i++ {
		start := i * m.col
		out[i] = make([]T, m.col)
		copy(out[i], m.elements[start:start+m.col])
	}

	return out
}

// Do calls f for every cell in row-major order until f returns false.
func (m *Matrix[T]) Do(f func(r, c int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.row; i++ {
		base = i * m.col
		for j = 0; j < m.col; j++ {
			if !f(i, j, m.elements[base+j]) {
				return
			}
		}
	}
}

// Apply replaces every cell with f(r, c, v) in row-major order.
// Mutates the receiver and returns it for chaining.
func (m *Matrix[T]) Apply(f func(r, c int, v T) T) *Matrix[T] {
	var i, j, base int
	for i = 0; i < m.row; i++ {
		base = i * m.col
		for j = 0; j < m.col; j++ {
			m.elements[base+j] = f(i, j, m.elements[base+j])
		}
	}

	return m
}

// Equal reports whether a and b have the same shape and elements.
// Two nil matrices are equal.
func Equal[T comparable](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !IsSameSize(a, b) {
		return false
	}
	for i := range a.elements {
		if a.elements[i] != b.elements[i] {
			return false
		}
	}

	return true
}

// String renders one bracketed line per row, e.g. "[1, 2]\n[3, 4]\n".
// Intended for debugging, not hot paths.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.row; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.col
		for j = 0; j < m.col; j++ {
			fmt.Fprintf(&b, "%v", m.elements[base+j])
			if j+1 < m.col {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
