// Package gridgraph treats a matrix.Matrix as a graph of land and water
// cells, enabling component analysis and minimal-cost "island" expansions.
//
// What:
//
//   - New classifies each cell of a matrix.Matrix[T] with a land predicate.
//   - From2D is the [][]int shortcut: values ≥ DefaultLandThreshold are land.
//   - ConnectedComponents / Labels identify contiguous islands.
//   - ExpandIsland computes minimal conversions (0-1 BFS) to join two islands.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Thresholded images: blob counting after a kernel pass.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Coordinates:
//
//   - (x, y) is (column, row); flat indices are row-major, y*Width + x.
//
// Errors:
//
//   - ErrEmptyGrid: nil matrix, or input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNilPredicate: New called with a nil land predicate.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
