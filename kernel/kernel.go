// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"

	"github.com/katalvlaran/gridmat/matrix"
)

const (
	opCorrelate = "Correlate"
	opConvolve  = "Convolve"
	opMaxFilter = "MaxFilter"
	opBox       = "Box"
)

func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("kernel.%s: %w", tag, err)
}

// Correlate computes out(r, c) = Σ k(i, j) · src(r-kr/2+i, c-kc/2+j) for every
// source cell, reading the padding value outside src.
// Implementation:
//   - Stage 1: validate src, k and the kernel shape (positive odd).
//   - Stage 2: for each cell, extract the kernel-shaped neighborhood.
//   - Stage 3: reduce neighborhood·kernel with matrix.Dot.
//
// Returns:
//   - *matrix.Matrix[T] with the shape of src.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidWindowSize.
//
// Complexity:
//   - Time O(R·C·kR·kC), Space O(R·C + kR·kC).
func Correlate[T matrix.Number](src, k *matrix.Matrix[T], opts ...Option[T]) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateNotNil(src); err != nil {
		return nil, kernelErrorf(opCorrelate, err)
	}
	if err := matrix.ValidateNotNil(k); err != nil {
		return nil, kernelErrorf(opCorrelate, err)
	}
	kr, kc := k.Shape()
	if err := matrix.ValidateWindow(kr, kc); err != nil {
		return nil, kernelErrorf(opCorrelate, err)
	}
	o := gatherOptions(opts...)

	// Dot requires a.Cols() == b.Rows(); a flat 1×n view of the kernel
	// against an n×1 view of each window satisfies that for any kernel shape.
	flatK, err := matrix.New(1, kr*kc, k.Elements())
	if err != nil {
		return nil, kernelErrorf(opCorrelate, err)
	}

	rows, cols := src.Shape()
	out := make([]T, 0, rows*cols)
	window := matrix.WithWindow(kr, kc)
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			win, err := matrix.GetLocalMatrixFill(src, r, c, o.pad, window)
			if err != nil {
				return nil, kernelErrorf(opCorrelate, err)
			}
			col, err := matrix.New(kr*kc, 1, win.Elements())
			if err != nil {
				return nil, kernelErrorf(opCorrelate, err)
			}
			v, err := matrix.Dot(flatK, col)
			if err != nil {
				return nil, kernelErrorf(opCorrelate, err)
			}
			out = append(out, v)
		}
	}

	return matrix.New(rows, cols, out)
}

// Convolve is Correlate with k rotated by 180°, i.e. true convolution.
// Errors: as Correlate.
func Convolve[T matrix.Number](src, k *matrix.Matrix[T], opts ...Option[T]) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateNotNil(k); err != nil {
		return nil, kernelErrorf(opConvolve, err)
	}

	return Correlate(src, Rotate180(k), opts...)
}

// Rotate180 returns a new matrix with rows and columns reversed.
func Rotate180[T any](m *matrix.Matrix[T]) *matrix.Matrix[T] {
	e := m.Elements()
	for i, j := 0, len(e)-1; i < j; i, j = i+1, j-1 {
		e[i], e[j] = e[j], e[i]
	}
	r, c := m.Shape()
	out, _ := matrix.New(r, c, e) // shape and length come from a valid matrix

	return out
}

// MaxFilter replaces every cell with the maximum over its rows×cols
// neighborhood. Cells outside src are ignored: the window is padded with
// the center value, which is always part of the neighborhood.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidWindowSize.
// Complexity: O(R·C·rows·cols).
func MaxFilter[T matrix.Number](src *matrix.Matrix[T], rows, cols int) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateNotNil(src); err != nil {
		return nil, kernelErrorf(opMaxFilter, err)
	}
	if err := matrix.ValidateWindow(rows, cols); err != nil {
		return nil, kernelErrorf(opMaxFilter, err)
	}

	out := src.Clone()
	window := matrix.WithWindow(rows, cols)
	var err error
	out.Apply(func(r, c int, center T) T {
		if err != nil {
			return center
		}
		win, e := matrix.GetLocalMatrixFill(src, r, c, center, window)
		if e != nil {
			err = e
			return center
		}
		best := center
		win.Do(func(_, _ int, v T) bool {
			if v > best {
				best = v
			}
			return true
		})
		return best
	})
	if err != nil {
		return nil, kernelErrorf(opMaxFilter, err)
	}

	return out, nil
}
