// SPDX-License-Identifier: MIT

// Package matrix - local neighborhood extraction.
//
// Purpose:
//   - Copy a rows×cols window centered on (rowIndex, colIndex) out of a source
//     matrix, padding cells that fall outside the source with a fill value.
//   - Never mutate or extend the source.
//
// AI-Hints:
//   - Pair with Dot for kernel correlation: Dot(window, kernel) per cell.
//   - Use Matrix[any] (fill nil) or a pointer element type when padding must
//     be distinguishable from real data.

package matrix

const opLocal = "GetLocalMatrix"

// GetLocalMatrix extracts a window centered at (rowIndex, colIndex) padded
// with the zero value of T (nil for Matrix[any] or pointer types).
// The window defaults to DefaultWindowRows×DefaultWindowCols; see WithWindow.
//
// Errors: ErrNilMatrix, ErrInvalidWindowSize.
func GetLocalMatrix[T any](src *Matrix[T], rowIndex, colIndex int, opts ...LocalOption) (*Matrix[T], error) {
	var zero T
	return GetLocalMatrixFill(src, rowIndex, colIndex, zero, opts...)
}

// GetLocalMatrixFill extracts a window centered at (rowIndex, colIndex).
// Implementation:
//   - Stage 1: validate src and window shape (positive odd dimensions).
//   - Stage 2: allocate the window pre-filled with fill.
//   - Stage 3: walk window rows; skip rows whose source row is out of range,
//     otherwise copy every in-range column from src.
//
// Behavior highlights:
//   - The center need not be inside src; a fully outside window is all fill.
//   - Row and column ranges are checked independently.
//
// Inputs:
//   - src: source matrix (read only).
//   - rowIndex, colIndex: window center in src coordinates.
//   - fill: value for cells with no source counterpart.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidWindowSize.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func GetLocalMatrixFill[T any](src *Matrix[T], rowIndex, colIndex int, fill T, opts ...LocalOption) (*Matrix[T], error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf(opLocal, err)
	}
	o := gatherLocalOptions(opts...)
	if err := ValidateWindow(o.rows, o.cols); err != nil {
		return nil, matrixErrorf(opLocal, err)
	}

	win := newFilled(o.rows, o.cols, fill)
	startRow := rowIndex - (o.rows-1)/2
	startCol := colIndex - (o.cols-1)/2

	var y, x, i, sr, sc int
	for y = 0; y < o.rows; y++ {
		sr = startRow + y
		if OutOfRange(sr, src.row-1) {
			i += o.cols // whole window row keeps fill
			continue
		}
		for x = 0; x < o.cols; x, i = x+1, i+1 {
			sc = startCol + x
			if OutOfRange(sc, src.col-1) {
				continue
			}
			win.elements[i] = src.elements[sr*src.col+sc]
		}
	}

	return win, nil
}
