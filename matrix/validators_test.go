// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators and comparison helpers.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	// helper matrix implementation
	zeros := func(r, c int) *matrix.Dense[float64] {
		m, err := matrix.NewDense[float64](r, c)
		require.NoError(t, err)
		return m
	}
	var typedNil *matrix.Dense[float64]

	tests := []struct {
		name    string
		a, b    matrix.Shaper
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second typed nil", zeros(2, 2), typedNil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
		{"scalar broadcasts", zeros(2, 3), matrix.Scalar(1.0), nil},
		{"expr vs matrix", zeros(2, 3).AddScalar(1), zeros(2, 3), nil},
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

// TestValidateSquareShaped covers the single-operand validators.
func TestValidateSquareShaped(t *testing.T) {
	t.Parallel()

	sq := mustFilled(t, 3, 3, 0.0)
	rect := mustFilled(t, 2, 3, 0.0)

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(matrix.Scalar(1.0)), matrix.ErrNoShape)

	require.NoError(t, matrix.ValidateShaped(rect.Neg()))
	require.ErrorIs(t, matrix.ValidateShaped(matrix.Scalar(2).Neg()), matrix.ErrNoShape)
	require.NoError(t, matrix.ValidateNotNil(matrix.Scalar(0)))
}

// TestValidateVecLen checks nil and length mismatches.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen[int](nil, 0), matrix.ErrNilMatrix)
}

// TestEqual checks exact comparison and shape sensitivity.
func TestEqual(t *testing.T) {
	t.Parallel()

	a := mustRows(t, 2, 2, 1.0, 2.0, 3.0, 4.0)
	require.True(t, matrix.Equal[float64](a, a.Clone()))

	b, err := matrix.FromCols(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.False(t, matrix.Equal[float64](a, b), "same values, different layout")

	flat := mustRows(t, 1, 4, 1.0, 3.0, 2.0, 4.0)
	require.False(t, matrix.Equal[float64](a, flat))
	require.False(t, matrix.Equal[float64](a, nil))

	nan := mustFilled(t, 1, 1, math.NaN())
	require.False(t, matrix.Equal[float64](nan, nan))
}

// TestAllClose covers tolerances, special values and errors.
func TestAllClose(t *testing.T) {
	t.Parallel()

	a := mustRows(t, 1, 3, 1.0, 100.0, math.Inf(1))
	b := mustRows(t, 1, 3, 1.0+1e-12, 100.0+1e-7, math.Inf(1))

	ok, err := matrix.AllClose[float64](a, b, 1e-8, 1e-10)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose[float64](a, b, 0, 1e-13)
	require.NoError(t, err)
	require.False(t, ok)

	// zero tolerances fall back to DefaultEpsilon
	ok, err = matrix.AllClose[float64](a, b, 0, 0)
	require.NoError(t, err)
	require.False(t, ok, "1e-7 exceeds DefaultEpsilon")

	n := mustFilled(t, 1, 3, math.NaN())
	ok, err = matrix.AllClose[float64](n, n, 1, 1)
	require.NoError(t, err)
	require.False(t, ok, "NaN equals nothing")

	_, err = matrix.AllClose[float64](a, mustFilled(t, 3, 1, 0.0), 1e-9, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AllClose[float64](a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	i := mustRows(t, 1, 2, 3, 4)
	ok, err = matrix.AllClose[int](i, mustRows(t, 1, 2, 3, 5), 0, 1)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestAllCloseComplex compares by modulus of the difference.
func TestAllCloseComplex(t *testing.T) {
	t.Parallel()

	a := mustFilled(t, 2, 2, complex(1, 1))
	b := mustFilled(t, 2, 2, complex(1, 1+1e-12))

	ok, err := matrix.AllCloseComplex[complex128](a, b, 0, 1e-10)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllCloseComplex[complex128](a, mustFilled(t, 2, 2, complex(1, 2)), 0, 1e-3)
	require.NoError(t, err)
	require.False(t, ok)
}
