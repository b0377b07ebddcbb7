// Package matrix provides a generic, fixed-size, row-major matrix container.
//
// What:
//
//   - Matrix[T] stores row*col elements of any type T in a flat slice
//     (element (r, c) lives at offset r*col + c).
//   - Structural operations (indexing, row/column extraction, local windows,
//     2D conversion) work for any T.
//   - Arithmetic (Add, Sub, Mul, Div, Prod, Dot, VecDot, VecCosSim) is
//     restricted to the Number constraint at compile time.
//
// Mutation model:
//
//   - Set and Fill (and Apply) mutate the receiver in place.
//   - Every other operation returns a new Matrix; operands are never touched.
//   - A Matrix is not safe for concurrent mutation; share Clone()d values instead.
//
// Errors:
//
//   - All failures are sentinel errors (ErrSizeMismatch, ErrIndexOutOfRange,
//     ErrShapeMismatch, ...) matched with errors.Is. Index failures carry a
//     *RangeError and size failures a *SizeError for errors.As.
//
// Complexity:
//
//   - At/Set/Index: O(1). Row: O(col). Col: O(row).
//   - Element-wise ops: O(r*c). Prod: O(r*n*c). GetLocalMatrix: O(window).
package matrix
