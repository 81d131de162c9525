// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for storage and expression tests.
//   • Keep all data finite and well-formed unless a test is about NaN/Inf on purpose.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/scalar"
)

// mustFilled ALLOCATES an r×c matrix with every element set to v or fails the test.
func mustFilled[T scalar.Field](tb testing.TB, r, c int, v T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.Filled(r, c, v)
	require.NoError(tb, err)

	return m
}

// mustRows builds an r×c matrix from row-major data or fails the test.
func mustRows[T scalar.Field](tb testing.TB, r, c int, data ...T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromRows(r, c, data)
	require.NoError(tb, err)

	return m
}

// mustRandom builds a seeded random r×c float64 matrix in [-1, 1).
func mustRandom(tb testing.TB, r, c int, seed uint64) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.RandomUniform(r, c, -1.0, 1.0, matrix.WithSeed(seed))
	require.NoError(tb, err)

	return m
}

// mustEval materializes e or fails the test.
func mustEval[T scalar.Field](tb testing.TB, e *matrix.Expr[T]) *matrix.Dense[T] {
	tb.Helper()
	out, err := e.Eval()
	require.NoError(tb, err)

	return out
}

// MustAt reads (i,j) or fails the test.
func MustAt[T scalar.Field](tb testing.TB, m matrix.Matrix[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// requireUniform asserts every element of m equals want.
func requireUniform[T scalar.Field](tb testing.TB, m *matrix.Dense[T], want T) {
	tb.Helper()
	for k, v := range m.All() {
		require.Equalf(tb, want, v, "cell %d", k)
	}
}

// requireStrictDefault skips tests that rely on the default (build-tag) policy being Strict.
func requireStrictDefault(t *testing.T) {
	t.Helper()
	if matrix.DefaultPolicy != matrix.Strict {
		t.Skip("built with lvmat_unchecked")
	}
}
