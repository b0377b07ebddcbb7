// Package converters provides two-way adapters between matrix.Matrix and
// the gonum ecosystem:
//   - gonum.org/v1/gonum/mat (Dense, and any mat.Matrix for import)
//
// Use converters to hand grid data to gonum's linear-algebra routines
// (decompositions, solvers) that the matrix package deliberately omits, and
// to bring results back as value-semantic matrix.Matrix values.
//
// Numeric element types other than float64 go through Convert first.
package converters
