// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridmat/matrix"
)

// MustNew builds an r×c matrix from row-major values or fails the test.
func MustNew[T any](t testing.TB, r, c int, vals []T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New(r, c, vals)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// Mat33 returns the 3×3 fixture [[1,2,3],[4,5,6],[7,8,9]].
func Mat33(t testing.TB) *matrix.Matrix[int] {
	t.Helper()
	return MustNew(t, 3, 3, []int{1, 2, 3, 4, 5, 6, 7, 8, 9})
}

// Vec13 returns the 1×3 row vector [1,2,3].
func Vec13(t testing.TB) *matrix.Matrix[int] {
	t.Helper()
	return MustNew(t, 1, 3, []int{1, 2, 3})
}

// RandFloat returns an r×c matrix of uniform values in [-1, 1) from a fixed seed.
func RandFloat(t testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return MustNew(t, r, c, vals)
}
