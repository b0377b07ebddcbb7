// Package dtw computes Dynamic Time Warping (DTW) distances between two
// vector matrices (1×N or N×1), with an optional alignment path.
//
// What:
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance. Typical uses:
//	  • aligning rows or columns pulled out of a matrix.Matrix
//	  • gesture / signal matching, time-series clustering
//
// Key features:
//   - FullMatrix mode: exact O(N·M) time & memory, path recovery.
//   - TwoRows mode: O(M) memory, distance only.
//   - optional Sakoe–Chiba window (|i−j| ≤ w).
//   - slope penalty to discourage excessive stretching.
//   - CostMatrix exposes the accumulated (N+1)×(M+1) table as a matrix.Matrix.
//
// Usage:
//
//	dist, path, err := dtw.Align(a, b, dtw.WithWindow(10), dtw.WithPath())
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNotVector for bad operands.
//   - ErrBadWindow for a negative window.
//   - ErrWindowTooNarrow when |N−M| exceeds the window.
//   - ErrPathNeedsMatrix when a path is requested in TwoRows mode.
package dtw
