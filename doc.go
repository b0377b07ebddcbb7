// Package gridmat is a small toolkit for fixed-size, row-major grids of values.
//
// What is gridmat?
//
//	A generic matrix container plus the tools that naturally sit on top of it:
//		• matrix/     — Matrix[T]: construction, bounds-checked access, element-wise
//		                arithmetic, matrix product, vector dot/cosine, local windows
//		• kernel/     — correlation, convolution and max filtering with odd kernels
//		• gridgraph/  — land/water grids as graphs: islands, labels, cheapest bridges
//		• dtw/        — Dynamic Time Warping between vector matrices
//		• converters/ — two-way adapters to gonum's mat.Dense
//
// Conventions:
//
//   - Indices are 0-based; storage is row-major: offset = r*cols + c.
//   - Every shape or index failure is an error wrapping a package sentinel,
//     so callers match with errors.Is.
//   - Library packages never log; examples/ shows hclog wiring for programs.
//
// Quick start:
//
//	m, _ := matrix.From2D([][]float64{{1, 2}, {3, 4}})
//	p, _ := matrix.Prod(m, m)
//	fmt.Print(p) // [7, 10]\n[15, 22]\n
package gridmat
