// SPDX-License-Identifier: MIT

package gridgraph

import "github.com/katalvlaran/gridmat/matrix"

// DefaultLandThreshold is the minimum value From2D treats as land.
const DefaultLandThreshold = 1

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridGraph treats a land/water mask as an implicit graph. It is immutable once built.
// Cells are addressed as (x, y) = (column, row); flat indices are row-major,
// identical to matrix.Matrix offsets.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	land            *matrix.Matrix[bool]
	neighborOffsets [][2]int
}
