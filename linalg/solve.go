// SPDX-License-Identifier: MIT
// Package linalg: linear systems, inverse and determinant.

package linalg

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmat/matrix"
)

// singular maps gonum's Condition and ErrSingular errors onto ErrSingular.
// Any other error is only tagged.
func singular(tag string, err error) error {
	var cond mat.Condition
	if errors.As(err, &cond) {
		return fmt.Errorf("%s: condition number %g: %w", tag, float64(cond), ErrSingular)
	}
	if errors.Is(err, mat.ErrSingular) {
		return linalgErrorf(tag, ErrSingular)
	}

	return linalgErrorf(tag, err)
}

// Solve returns X such that A·X = B for a square A and B with A.Rows() rows.
// MAIN DESCRIPTION:
//   - LU-based solve through gonum mat.Dense.Solve.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNonSquare, matrix.ErrDimensionMismatch (B rows),
//     ErrSingular (singular or numerically singular A).
//
// Complexity:
//   - Time O(n^3 + n^2*k), Space O(n^2 + n*k).
func Solve(a, b matrix.Matrix[float64]) (*matrix.Dense[float64], error) {
	ga, n, err := square(opSolve, a)
	if err != nil {
		return nil, err
	}
	gb, err := ToGonum(b)
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	if br, bc := gb.Dims(); br != n {
		return nil, fmt.Errorf("%s: %dx%d \\ %dx%d: %w", opSolve, n, n, br, bc, matrix.ErrDimensionMismatch)
	}
	var x mat.Dense
	if err = x.Solve(ga, gb); err != nil {
		return nil, singular(opSolve, err)
	}

	return back(opSolve, &x)
}

// SolveVec solves A·x = b for a vector right-hand side.
func SolveVec(a matrix.Matrix[float64], b []float64) ([]float64, error) {
	col, err := matrix.FromCols(len(b), 1, b)
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	x, err := Solve(a, col)
	if err != nil {
		return nil, err
	}

	return x.Values(), nil
}

// Inverse returns A⁻¹.
// Errors: matrix.ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// AI-Hints:
//   - If you only need A⁻¹·B, Solve is cheaper and more accurate.
func Inverse(a matrix.Matrix[float64]) (*matrix.Dense[float64], error) {
	g, _, err := square(opInverse, a)
	if err != nil {
		return nil, err
	}
	var inv mat.Dense
	if err = inv.Inverse(g); err != nil {
		return nil, singular(opInverse, err)
	}

	return back(opInverse, &inv)
}

// Det returns the determinant of a square matrix.
// Errors: matrix.ErrNilMatrix, ErrNonSquare.
func Det(a matrix.Matrix[float64]) (float64, error) {
	g, _, err := square(opDet, a)
	if err != nil {
		return 0, err
	}

	return mat.Det(g), nil
}
