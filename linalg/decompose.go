// SPDX-License-Identifier: MIT
// Package linalg: factorizations (LU, QR, eigen).
//
// Determinism:
//   - Every routine delegates to gonum's LAPACK-backed kernels, which are
//     deterministic for identical inputs.

package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmat/matrix"
)

// DefaultSymTol is the absolute tolerance EigenSym uses to decide symmetry.
const DefaultSymTol = 1e-12

// LU factorizes a square matrix with partial pivoting so that A = P·L·U (equivalently Pᵀ·A = L·U).
// MAIN DESCRIPTION:
//   - L is unit lower triangular, U is upper triangular, P is a permutation matrix.
//
// Implementation:
//   - Stage 1: validate square input.
//   - Stage 2: gonum mat.LU.Factorize; extract L and U.
//   - Stage 3: build P from RowPivots: P[i, piv[i]] = 1.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when U has an exact zero on its diagonal (the factors are still
//     returned so callers can inspect them).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(a matrix.Matrix[float64]) (l, u, p *matrix.Dense[float64], err error) {
	g, n, err := square(opLU, a)
	if err != nil {
		return nil, nil, nil, err
	}
	var lu mat.LU
	lu.Factorize(g)

	var lt, ut mat.TriDense
	lu.LTo(&lt)
	lu.UTo(&ut)
	if l, err = back(opLU, &lt); err != nil {
		return nil, nil, nil, err
	}
	if u, err = back(opLU, &ut); err != nil {
		return nil, nil, nil, err
	}
	if p, err = matrix.Zeros[float64](n, n); err != nil {
		return nil, nil, nil, linalgErrorf(opLU, err)
	}
	for i, piv := range lu.RowPivots(nil) {
		_ = p.Set(i, piv, 1)
	}
	for i := 0; i < n; i++ {
		if ut.At(i, i) == 0 {
			return l, u, p, fmt.Errorf("%s: zero pivot at %d: %w", opLU, i, ErrSingular)
		}
	}

	return l, u, p, nil
}

// QR factorizes a (rows ≥ cols) into an orthogonal Q (rows×rows) and an upper
// trapezoidal R (rows×cols) with A = Q·R.
// Errors: matrix.ErrNilMatrix; rows < cols is matrix.ErrDimensionMismatch.
func QR(a matrix.Matrix[float64]) (q, r *matrix.Dense[float64], err error) {
	g, err := ToGonum(a)
	if err != nil {
		return nil, nil, linalgErrorf(opQR, err)
	}
	rows, cols := g.Dims()
	if rows < cols {
		return nil, nil, fmt.Errorf("%s: %dx%d has more columns than rows: %w", opQR, rows, cols, matrix.ErrDimensionMismatch)
	}
	var qr mat.QR
	qr.Factorize(g)

	var qd, rd mat.Dense
	qr.QTo(&qd)
	qr.RTo(&rd)
	if q, err = back(opQR, &qd); err != nil {
		return nil, nil, err
	}
	if r, err = back(opQR, &rd); err != nil {
		return nil, nil, err
	}

	return q, r, nil
}

// Eigen returns the eigenvalues of a general square matrix. Complex conjugate
// pairs appear consecutively; order otherwise follows gonum.
// Errors: matrix.ErrNilMatrix, ErrNonSquare, ErrNotConverged.
func Eigen(a matrix.Matrix[float64]) ([]complex128, error) {
	g, _, err := square(opEigen, a)
	if err != nil {
		return nil, err
	}
	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenNone); !ok {
		return nil, linalgErrorf(opEigen, ErrNotConverged)
	}

	return eig.Values(nil), nil
}

// EigenSym returns the eigenvalues (ascending) and the orthonormal eigenvectors
// (as columns) of a symmetric matrix.
// MAIN DESCRIPTION:
//   - Symmetric input is required within DefaultSymTol; only then are the
//     eigenvalues guaranteed real.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNonSquare, ErrAsymmetric, ErrNotConverged.
func EigenSym(a matrix.Matrix[float64]) ([]float64, *matrix.Dense[float64], error) {
	g, n, err := square(opEigenSym, a)
	if err != nil {
		return nil, nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(g.At(i, j)-g.At(j, i)) > DefaultSymTol {
				return nil, nil, fmt.Errorf("%s: (%d,%d): %w", opEigenSym, i, j, ErrAsymmetric)
			}
		}
	}
	sym := mat.NewSymDense(n, g.RawMatrix().Data)

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, linalgErrorf(opEigenSym, ErrNotConverged)
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	v, err := back(opEigenSym, &vecs)
	if err != nil {
		return nil, nil, err
	}

	return es.Values(nil), v, nil
}
