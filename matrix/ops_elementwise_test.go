// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestElementwise(t *testing.T) {
	t.Parallel()

	a := MustNew(t, 2, 2, []float64{1, 2, 3, 4})
	b := MustNew(t, 2, 2, []float64{4, 3, 2, 1})

	tests := []struct {
		name string
		op   func(a, b *matrix.Matrix[float64]) (*matrix.Matrix[float64], error)
		want []float64
	}{
		{"Add", matrix.Add[float64], []float64{5, 5, 5, 5}},
		{"Sub", matrix.Sub[float64], []float64{-3, -1, 1, 3}},
		{"Mul", matrix.Mul[float64], []float64{4, 6, 6, 4}},
		{"Div", matrix.Div[float64], []float64{0.25, 2.0 / 3.0, 1.5, 4}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op(a, b)
			require.NoError(t, err)
			require.Equal(t, 2, got.Rows())
			require.Equal(t, 2, got.Cols())
			require.InDeltaSlice(t, tc.want, got.Elements(), 1e-12)
			// operands untouched
			require.Equal(t, []float64{1, 2, 3, 4}, a.Elements())
			require.Equal(t, []float64{4, 3, 2, 1}, b.Elements())
		})
	}
}

func TestElementwiseShapeMismatch(t *testing.T) {
	t.Parallel()

	a := Vec13(t)
	b := MustNew(t, 3, 1, []int{1, 2, 3})

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.Div(a, b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = matrix.Add(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDivByZeroFloat documents IEEE-754 behavior: no error, Inf/NaN results.
func TestDivByZeroFloat(t *testing.T) {
	t.Parallel()

	a := MustNew(t, 1, 3, []float64{1, -1, 0})
	z := MustNew(t, 1, 3, []float64{0, 0, 0})

	got, err := matrix.Div(a, z)
	require.NoError(t, err)
	e := got.Elements()
	require.True(t, math.IsInf(e[0], 1))
	require.True(t, math.IsInf(e[1], -1))
	require.True(t, math.IsNaN(e[2]))
}

func TestMulWithFilledClone(t *testing.T) {
	t.Parallel()

	m := Mat33(t)
	got, err := matrix.Mul(m, m.Clone().Fill(3))
	require.NoError(t, err)
	require.Equal(t, []int{3, 6, 9, 12, 15, 18, 21, 24, 27}, got.Elements())
}
