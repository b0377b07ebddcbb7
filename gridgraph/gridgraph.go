// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridmat/matrix"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// New classifies every cell of m with isLand and builds a GridGraph over the
// resulting mask. The mask is private, so later changes to m are not observed.
// Errors: ErrEmptyGrid for a nil m, ErrNilPredicate for a nil isLand.
// Complexity: O(W×H) time and memory.
func New[T any](m *matrix.Matrix[T], isLand func(T) bool, conn Connectivity) (*GridGraph, error) {
	if m == nil {
		return nil, ErrEmptyGrid
	}
	if isLand == nil {
		return nil, ErrNilPredicate
	}

	mask, err := matrix.Filled(m.Rows(), m.Cols(), false)
	if err != nil {
		return nil, fmt.Errorf("gridgraph.New: %w", err)
	}
	m.Do(func(r, c int, v T) bool {
		_ = mask.Set(r, c, isLand(v)) // same shape as m
		return true
	})

	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           m.Cols(),
		Height:          m.Rows(),
		Conn:            conn,
		land:            mask,
		neighborOffsets: offsets,
	}, nil
}

// From2D builds a GridGraph from a rectangular [][]int grid; cells with
// value ≥ DefaultLandThreshold are land.
// Errors: ErrEmptyGrid, ErrNonRectangular (also matching matrix.ErrRaggedSource).
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	m, err := matrix.From2D(values)
	switch {
	case errors.Is(err, matrix.ErrEmptySource), errors.Is(err, matrix.ErrBadShape):
		return nil, ErrEmptyGrid
	case err != nil:
		return nil, fmt.Errorf("gridgraph.From2D: %w: %w", ErrNonRectangular, err)
	}

	return New(m, func(v int) bool { return v >= DefaultLandThreshold }, conn)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return gg.land.Reachable(y, x)
}

// IsLand reports whether (x,y) is an in-bounds land cell.
func (gg *GridGraph) IsLand(x, y int) bool {
	v, err := gg.land.At(y, x)

	return err == nil && v
}

// LandMask returns a copy of the land/water mask (rows = y, cols = x).
func (gg *GridGraph) LandMask() *matrix.Matrix[bool] {
	return gg.land.Clone()
}

// NeighborOffsets returns the (dx, dy) offsets for gg.Conn.
// The slice is shared; callers must not modify it.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
