// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmat/gridgraph"
	"github.com/katalvlaran/gridmat/matrix"
)

// TestFrom2D_Errors verifies that From2D rejects empty or ragged inputs.
func TestFrom2D_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := gridgraph.From2D(tc.grid, gridgraph.Conn4)
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := gridgraph.From2D([][]int{{1, 2}, {3}}, gridgraph.Conn4)
	require.ErrorIs(t, err, matrix.ErrRaggedSource)
}

func TestNew(t *testing.T) {
	t.Parallel()

	m, err := matrix.From2D([][]float64{
		{0.9, 0.1, 0.7},
		{0.2, 0.3, 0.8},
	})
	require.NoError(t, err)

	gg, err := gridgraph.New(m, func(v float64) bool { return v > 0.5 }, gridgraph.Conn4)
	require.NoError(t, err)
	require.Equal(t, 3, gg.Width)
	require.Equal(t, 2, gg.Height)
	require.Equal(t, [][]bool{{true, false, true}, {false, false, true}}, gg.LandMask().As2D())

	// The mask is detached from the source matrix.
	require.NoError(t, m.Set(0, 1, 1.0))
	require.False(t, gg.IsLand(1, 0))

	_, err = gridgraph.New[float64](nil, func(float64) bool { return true }, gridgraph.Conn4)
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
	_, err = gridgraph.New(m, nil, gridgraph.Conn4)
	require.ErrorIs(t, err, gridgraph.ErrNilPredicate)
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	t.Parallel()

	gg, err := gridgraph.From2D([][]int{
		{0, 1, 0},
		{1, 0, 1},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		require.True(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		require.False(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
		require.False(t, gg.IsLand(xy[0], xy[1]))
	}
	require.True(t, gg.IsLand(1, 0))
	require.False(t, gg.IsLand(0, 0))
}

func TestNeighborOffsets(t *testing.T) {
	t.Parallel()

	g4, err := gridgraph.From2D([][]int{{1}}, gridgraph.Conn4)
	require.NoError(t, err)
	require.Len(t, g4.NeighborOffsets(), 4)

	g8, err := gridgraph.From2D([][]int{{1}}, gridgraph.Conn8)
	require.NoError(t, err)
	require.Len(t, g8.NeighborOffsets(), 8)
}

func TestCoordinate(t *testing.T) {
	t.Parallel()

	gg, err := gridgraph.From2D([][]int{{0, 0, 0}, {0, 0, 0}}, gridgraph.Conn4)
	require.NoError(t, err)

	x, y := gg.Coordinate(4)
	require.Equal(t, 1, x)
	require.Equal(t, 1, y)

	// Same layout as matrix offsets.
	off, err := gg.LandMask().Index(y, x)
	require.NoError(t, err)
	require.Equal(t, 4, off)
}
