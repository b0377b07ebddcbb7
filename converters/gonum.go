// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridmat/matrix"
	"gonum.org/v1/gonum/mat"
)

// ErrNilSource indicates that a nil gonum matrix was passed to FromMatrix.
var ErrNilSource = errors.New("converters: nil source matrix")

// convErrorf wraps an underlying error with the given converter tag.
func convErrorf(tag string, err error) error {
	return fmt.Errorf("converters.%s: %w", tag, err)
}

// ToDense copies m into a new gonum *mat.Dense of the same shape.
// The row-major layout of matrix.Matrix matches gonum's, so the element
// sequence is handed over directly (as a copy).
//
// Errors: matrix.ErrNilMatrix.
// Complexity: O(r*c).
func ToDense(m *matrix.Matrix[float64]) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, convErrorf("ToDense", err)
	}
	r, c := m.Shape()

	return mat.NewDense(r, c, m.Elements()), nil
}

// FromMatrix reads any gonum mat.Matrix (Dense, views, transposes, vectors)
// into a new matrix.Matrix[float64].
// Implementation:
//   - Stage 1: reject nil; read Dims.
//   - Stage 2: fast path for *mat.Dense via RawMatrix when contiguous.
//   - Stage 3: generic At(i, j) walk otherwise.
//
// Errors: ErrNilSource, matrix.ErrBadShape (empty gonum matrices).
// Complexity: O(r*c).
func FromMatrix(src mat.Matrix) (*matrix.Matrix[float64], error) {
	if src == nil {
		return nil, convErrorf("FromMatrix", ErrNilSource)
	}
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, convErrorf("FromMatrix", matrix.ErrBadShape)
	}

	if d, ok := src.(*mat.Dense); ok {
		raw := d.RawMatrix()
		if raw.Stride == c {
			m, err := matrix.New(r, c, raw.Data[:r*c])
			if err != nil {
				return nil, convErrorf("FromMatrix", err)
			}
			return m, nil
		}
	}

	data := make([]float64, 0, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			data = append(data, src.At(i, j))
		}
	}
	m, err := matrix.New(r, c, data)
	if err != nil {
		return nil, convErrorf("FromMatrix", err)
	}

	return m, nil
}

// Convert casts every element of m from T to U, keeping the shape.
// Conversions follow Go's numeric conversion rules (float→int truncates).
//
// Errors: matrix.ErrNilMatrix.
func Convert[U, T matrix.Number](m *matrix.Matrix[T]) (*matrix.Matrix[U], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, convErrorf("Convert", err)
	}
	src := m.Elements()
	out := make([]U, len(src))
	for i, v := range src {
		out[i] = U(v)
	}
	r, c := m.Shape()

	return matrix.New(r, c, out)
}
