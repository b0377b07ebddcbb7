// SPDX-License-Identifier: MIT

// Package matrix - coordinate & offset mapping.
//
// Purpose:
//   - Single source of truth for bounds checks (rows, cols, flat offsets).
//   - Errors carry the axis, the valid range and the offending value.
//
// Complexity: every function here is O(1) and allocation-free on success.

package matrix

// ---------- error context tags ----------

const (
	ctxIndex    = "Index"
	ctxRowIndex = "RowIndex"
	ctxColIndex = "ColIndex"
)

// OutOfRange reports whether index lies outside [0, max].
func OutOfRange(index, max int) bool {
	return OutOfRangeFrom(index, 0, max)
}

// OutOfRangeFrom reports whether index < min or index > max.
func OutOfRangeFrom(index, min, max int) bool {
	return index < min || index > max
}

// checkAxis returns a *RangeError when index falls outside [0, n-1].
func checkAxis(axis string, index, n int) error {
	if OutOfRange(index, n-1) {
		return &RangeError{Axis: axis, Min: 0, Max: n - 1, Index: index}
	}

	return nil
}

// offset validates (r, c) independently per axis and returns r*col + c.
// Unwrapped; public callers attach their own tag.
func (m *Matrix[T]) offset(r, c int) (int, error) {
	if err := checkAxis(AxisRow, r, m.row); err != nil {
		return 0, err
	}
	if err := checkAxis(AxisCol, c, m.col); err != nil {
		return 0, err
	}

	return r*m.col + c, nil
}

// Index maps (r, c) to its flat row-major offset r*col + c.
// Errors: ErrIndexOutOfRange (*RangeError naming the failing axis; the row is checked first).
func (m *Matrix[T]) Index(r, c int) (int, error) {
	off, err := m.offset(r, c)
	if err != nil {
		return 0, matrixErrorf(ctxIndex, err)
	}

	return off, nil
}

// Reachable reports whether (r, c) is a valid coordinate, without failing.
//
//	if m.Reachable(r, c) {
//		v, _ := m.At(r, c)
//	}
func (m *Matrix[T]) Reachable(r, c int) bool {
	return !OutOfRange(r, m.row-1) && !OutOfRange(c, m.col-1)
}

// RowIndex returns the row that holds flat offset off.
// Errors: ErrIndexOutOfRange unless 0 ≤ off < Size().
func (m *Matrix[T]) RowIndex(off int) (int, error) {
	if err := checkAxis(AxisOffset, off, len(m.elements)); err != nil {
		return 0, matrixErrorf(ctxRowIndex, err)
	}

	return off / m.col, nil
}

// ColIndex returns the column that holds flat offset off.
// Errors: ErrIndexOutOfRange unless 0 ≤ off < Size().
func (m *Matrix[T]) ColIndex(off int) (int, error) {
	if err := checkAxis(AxisOffset, off, len(m.elements)); err != nil {
		return 0, matrixErrorf(ctxColIndex, err)
	}

	return off % m.col, nil
}
