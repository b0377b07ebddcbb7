// SPDX-License-Identifier: MIT

package converters_test

import (
	"testing"

	"github.com/katalvlaran/gridmat/converters"
	"github.com/katalvlaran/gridmat/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"pgregory.net/rapid"
)

func TestToDense(t *testing.T) {
	t.Parallel()

	m, err := matrix.New(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	d, err := converters.ToDense(m)
	require.NoError(t, err)
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, d.At(1, 2))

	d.Set(0, 0, 100) // gonum copy is independent
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)

	_, err = converters.ToDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromMatrix(t *testing.T) {
	t.Parallel()

	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	m, err := converters.FromMatrix(d)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.As2D())

	// Transposed view takes the generic At path.
	mt, err := converters.FromMatrix(d.T())
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, mt.As2D())

	// Strided sub-view.
	sub := d.Slice(0, 2, 1, 3)
	ms, err := converters.FromMatrix(sub)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 3}, {5, 6}}, ms.As2D())

	_, err = converters.FromMatrix(nil)
	require.ErrorIs(t, err, converters.ErrNilSource)

	_, err = converters.FromMatrix(&mat.Dense{})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestConvert(t *testing.T) {
	t.Parallel()

	m, err := matrix.New(1, 3, []int{1, 2, 3})
	require.NoError(t, err)

	f, err := converters.Convert[float64](m)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, f.Elements())

	back, err := converters.Convert[int](f)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, back))

	_, err = converters.Convert[float64, int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestProdMatchesGonum uses gonum's Mul as an independent oracle for matrix.Prod.
func TestProdMatchesGonum(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := rapid.IntRange(1, 7).Draw(t, "m")
		n := rapid.IntRange(1, 7).Draw(t, "n")
		p := rapid.IntRange(1, 7).Draw(t, "p")
		av := rapid.SliceOfN(rapid.Float64Range(-10, 10), m*n, m*n).Draw(t, "a")
		bv := rapid.SliceOfN(rapid.Float64Range(-10, 10), n*p, n*p).Draw(t, "b")

		a, err := matrix.New(m, n, av)
		require.NoError(t, err)
		b, err := matrix.New(n, p, bv)
		require.NoError(t, err)
		got, err := matrix.Prod(a, b)
		require.NoError(t, err)

		var want mat.Dense
		want.Mul(mat.NewDense(m, n, av), mat.NewDense(n, p, bv))

		gd, err := converters.ToDense(got)
		require.NoError(t, err)
		require.True(t, mat.EqualApprox(gd, &want, 1e-9))
	})
}
