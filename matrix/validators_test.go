// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) *matrix.Matrix[float64] {
		m, err := matrix.Filled(r, c, 0.0)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    *matrix.Matrix[float64]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrShapeMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrShapeMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

func TestValidateProdCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateProdCompatible(Vec13(t), Mat33(t)))
	require.ErrorIs(t, matrix.ValidateProdCompatible(Mat33(t), Vec13(t)), matrix.ErrProductShapeMismatch)
	require.ErrorIs(t, matrix.ValidateProdCompatible(nil, Vec13(t)), matrix.ErrNilMatrix)
}

func TestValidateVector(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVector(Vec13(t)))
	require.NoError(t, matrix.ValidateVector(MustNew(t, 1, 1, []int{1})))
	require.ErrorIs(t, matrix.ValidateVector(Mat33(t)), matrix.ErrNotVector)
	require.ErrorIs(t, matrix.ValidateVector[int](nil), matrix.ErrNilMatrix)
}

func TestValidateWindow(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateWindow(1, 1))
	require.NoError(t, matrix.ValidateWindow(3, 7))
	require.ErrorIs(t, matrix.ValidateWindow(2, 3), matrix.ErrInvalidWindowSize)
	require.ErrorIs(t, matrix.ValidateWindow(3, 0), matrix.ErrInvalidWindowSize)
}
