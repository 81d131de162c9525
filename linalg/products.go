// SPDX-License-Identifier: MIT
// Package linalg: products, transpose and scalar summaries.

package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmat/matrix"
)

// Mul returns the matrix product a·b.
// MAIN DESCRIPTION:
//   - The row-by-column product, as opposed to the elementwise (*matrix.Dense).Mul.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols() == b.Rows().
//   - Stage 2: gonum mat.Dense.Mul on row-major copies; copy back.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*k + k*c + r*c).
func Mul(a, b matrix.Matrix[float64]) (*matrix.Dense[float64], error) {
	ga, err := ToGonum(a)
	if err != nil {
		return nil, linalgErrorf(opMul, err)
	}
	gb, err := ToGonum(b)
	if err != nil {
		return nil, linalgErrorf(opMul, err)
	}
	ar, ac := ga.Dims()
	br, bc := gb.Dims()
	if ac != br {
		return nil, fmt.Errorf("%s: %dx%d · %dx%d: %w", opMul, ar, ac, br, bc, matrix.ErrDimensionMismatch)
	}
	var c mat.Dense
	c.Mul(ga, gb)

	return back(opMul, &c)
}

// MulVec returns y = a·x for a column vector x with len(x) == a.Cols().
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func MulVec(a matrix.Matrix[float64], x []float64) ([]float64, error) {
	ga, err := ToGonum(a)
	if err != nil {
		return nil, linalgErrorf(opMulVec, err)
	}
	if err = matrix.ValidateVecLen(x, a.Cols()); err != nil {
		return nil, linalgErrorf(opMulVec, err)
	}
	var y mat.VecDense
	y.MulVec(ga, mat.NewVecDense(len(x), append([]float64(nil), x...)))

	out := make([]float64, y.Len())
	for i := range out {
		out[i] = y.AtVec(i)
	}

	return out, nil
}

// Transpose returns aᵀ as a new matrix.
func Transpose(a matrix.Matrix[float64]) (*matrix.Dense[float64], error) {
	ga, err := ToGonum(a)
	if err != nil {
		return nil, linalgErrorf(opTranspose, err)
	}

	return back(opTranspose, ga.T())
}

// Trace returns the sum of the diagonal of a square matrix.
// Errors: matrix.ErrNilMatrix, ErrNonSquare.
func Trace(a matrix.Matrix[float64]) (float64, error) {
	g, _, err := square(opTrace, a)
	if err != nil {
		return 0, err
	}

	return mat.Trace(g), nil
}

// Norm returns the matrix norm of a for ord 1 (max column sum), 2 (Frobenius)
// or math.Inf(1) (max row sum), as defined by gonum's mat.Norm.
// Errors: matrix.ErrNilMatrix; any other ord is matrix.ErrBadRange.
func Norm(a matrix.Matrix[float64], ord float64) (float64, error) {
	g, err := ToGonum(a)
	if err != nil {
		return 0, linalgErrorf(opNorm, err)
	}
	if ord != 1 && ord != 2 && !math.IsInf(ord, 1) {
		return 0, fmt.Errorf("%s: ord %v: %w", opNorm, ord, matrix.ErrBadRange)
	}

	return mat.Norm(g, ord), nil
}
