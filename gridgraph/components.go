// SPDX-License-Identifier: MIT

package gridgraph

import "github.com/katalvlaran/gridmat/matrix"

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// according to gg.Conn. Components are ordered by their first cell in
// row-major order; each holds row-major cell indices in BFS order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	gg.land.Do(func(y, x int, land bool) bool {
		i0 := gg.index(x, y)
		if !land || seen[i0] {
			return true
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := gg.Coordinate(queue[qi])
			for _, d := range gg.neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.IsLand(vx, vy) {
					continue
				}
				vi := gg.index(vx, vy)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)

		return true
	})

	return comps
}

// Labels returns a Height×Width matrix holding, for each cell, its component
// number plus one (matching ConnectedComponents order), or 0 for water.
func (gg *GridGraph) Labels() *matrix.Matrix[int] {
	out, _ := matrix.Filled(gg.Height, gg.Width, 0) // dimensions come from a valid mask
	for id, comp := range gg.ConnectedComponents() {
		for _, i := range comp {
			x, y := gg.Coordinate(i)
			_ = out.Set(y, x, id+1)
		}
	}

	return out
}
