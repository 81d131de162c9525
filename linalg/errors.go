// SPDX-License-Identifier: MIT
// Package linalg: sentinel errors and wrapping helpers.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrNonSquare is returned by routines that need an n×n input.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrSingular is returned when a factorization finds the matrix singular,
	// or so ill-conditioned that gonum reports a Condition error.
	ErrSingular = errors.New("linalg: matrix is singular")

	// ErrNotConverged is returned when an iterative eigen solver fails.
	ErrNotConverged = errors.New("linalg: eigen decomposition did not converge")

	// ErrAsymmetric is returned by EigenSym for inputs that are not symmetric.
	ErrAsymmetric = errors.New("linalg: matrix is not symmetric")
)

// Operation tags.
const (
	opMul       = "Mul"
	opMulVec    = "MulVec"
	opTranspose = "Transpose"
	opTrace     = "Trace"
	opNorm      = "Norm"
	opLU        = "LU"
	opQR        = "QR"
	opEigen     = "Eigen"
	opEigenSym  = "EigenSym"
	opSolve     = "Solve"
	opInverse   = "Inverse"
	opDet       = "Det"

	opCenterColumns   = "CenterColumns"
	opCenterRows      = "CenterRows"
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opNormalizeRowsL2 = "NormalizeRowsL2"
	opCovariance      = "Covariance"
	opCorrelation     = "Correlation"
)

// linalgErrorf wraps err with an operation tag, preserving it for errors.Is.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
