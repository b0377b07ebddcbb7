// Package kernel applies small odd-sized kernels to matrix.Matrix grids.
//
// What:
//
//   - Correlate slides a kernel over every cell, takes the kernel-shaped
//     neighborhood with matrix.GetLocalMatrixFill and reduces it with
//     matrix.Dot. Out-of-range cells read the padding value (default zero).
//   - Convolve is Correlate with the kernel rotated by 180°.
//   - MaxFilter replaces each cell with the maximum of its neighborhood.
//   - Box, SobelX, SobelY and Laplacian build common float64 kernels.
//
// Why:
//
//   - Image-like grids: smoothing, edge detection, peak picking.
//   - Weight grids: neighborhood aggregation without hand-written index math.
//
// Complexity:
//
//   - Correlate/Convolve/MaxFilter: O(R·C·kR·kC) time, O(R·C + kR·kC) memory.
//
// Errors:
//
//   - matrix.ErrNilMatrix: nil source or kernel.
//   - matrix.ErrInvalidWindowSize: kernel/window dimensions are not positive odd numbers.
package kernel
