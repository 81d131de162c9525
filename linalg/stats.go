// SPDX-License-Identifier: MIT
// Package linalg: statistical transforms over the columns (features) and rows
// (samples) of a data matrix.
//
// Exposed API:
//   - CenterColumns(X)   -> (Xc, means)         // subtract per-column mean
//   - CenterRows(X)      -> (Xc, means)         // subtract per-row mean
//   - NormalizeRowsL1(X) -> (Y, norms)          // L1 row normalization (zero rows unchanged)
//   - NormalizeRowsL2(X) -> (Y, norms)          // L2 row normalization (zero rows unchanged)
//   - Covariance(X)      -> (Cov, means)        // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//   - Correlation(X)     -> (Corr, means, stds) // Pearson correlation; std==0 ⇒ zeroed row/column
//
// AI-Hints:
//   - Sanitize NaN/Inf first if their propagation into every statistic is undesired.

package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvmat/matrix"
)

// CenterColumns subtracts the per-column mean from every element.
// Returns the centered copy and the column means (len = X.Cols()).
// Errors: matrix.ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func CenterColumns(X matrix.Matrix[float64]) (*matrix.Dense[float64], []float64, error) {
	g, err := ToGonum(X)
	if err != nil {
		return nil, nil, linalgErrorf(opCenterColumns, err)
	}
	_, c := g.Dims()
	means := make([]float64, c)
	for j := 0; j < c; j++ {
		col := mat.Col(nil, j, g)
		means[j] = stat.Mean(col, nil)
		floats.AddConst(-means[j], col)
		g.SetCol(j, col)
	}
	out, err := back(opCenterColumns, g)
	if err != nil {
		return nil, nil, err
	}

	return out, means, nil
}

// CenterRows subtracts the per-row mean from every element.
// Returns the centered copy and the row means (len = X.Rows()).
// Errors: matrix.ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func CenterRows(X matrix.Matrix[float64]) (*matrix.Dense[float64], []float64, error) {
	g, err := ToGonum(X)
	if err != nil {
		return nil, nil, linalgErrorf(opCenterRows, err)
	}
	r, _ := g.Dims()
	means := make([]float64, r)
	for i := 0; i < r; i++ {
		row := g.RawRowView(i) // aliases g
		means[i] = stat.Mean(row, nil)
		floats.AddConst(-means[i], row)
	}
	out, err := back(opCenterRows, g)
	if err != nil {
		return nil, nil, err
	}

	return out, means, nil
}

// NormalizeRowsL1 scales each row to unit L1 norm (Σ_j |x_ij| == 1).
// Rows whose norm is 0 are left unchanged. Returns the copy and the original norms.
// Errors: matrix.ErrNilMatrix.
func NormalizeRowsL1(X matrix.Matrix[float64]) (*matrix.Dense[float64], []float64, error) {
	return normalizeRows(opNormalizeRowsL1, X, 1)
}

// NormalizeRowsL2 scales each row to unit Euclidean norm.
// Rows whose norm is 0 are left unchanged. Returns the copy and the original norms.
// Errors: matrix.ErrNilMatrix.
//
// AI-Hints:
//   - Typical preprocessing before cosine similarity: Mul(Y, Transpose(Y)).
func NormalizeRowsL2(X matrix.Matrix[float64]) (*matrix.Dense[float64], []float64, error) {
	return normalizeRows(opNormalizeRowsL2, X, 2)
}

// normalizeRows implements both row normalizations with floats.Norm of order ord.
func normalizeRows(tag string, X matrix.Matrix[float64], ord float64) (*matrix.Dense[float64], []float64, error) {
	g, err := ToGonum(X)
	if err != nil {
		return nil, nil, linalgErrorf(tag, err)
	}
	r, _ := g.Dims()
	norms := make([]float64, r)
	for i := 0; i < r; i++ {
		row := g.RawRowView(i)
		norms[i] = floats.Norm(row, ord)
		if norms[i] > 0 {
			floats.Scale(1/norms[i], row)
		}
	}
	out, err := back(tag, g)
	if err != nil {
		return nil, nil, err
	}

	return out, norms, nil
}

// Covariance returns the sample covariance of the columns of X (c×c, symmetric)
// and the column means.
// MAIN DESCRIPTION:
//   - Rows are observations, columns are variables; Cov = (Xcᵀ Xc)/(r-1).
//
// Errors:
//   - matrix.ErrNilMatrix; matrix.ErrDimensionMismatch when r < 2.
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Covariance(X matrix.Matrix[float64]) (*matrix.Dense[float64], []float64, error) {
	g, means, err := observations(opCovariance, X)
	if err != nil {
		return nil, nil, err
	}
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, g, nil)
	out, err := back(opCovariance, &cov)
	if err != nil {
		return nil, nil, err
	}

	return out, means, nil
}

// Correlation returns the Pearson correlation of the columns of X, the column
// means and the sample standard deviations.
// MAIN DESCRIPTION:
//   - Corr[i,j] = Cov[i,j] / (std_i * std_j); a column with std == 0 yields a
//     zero row and column (including the diagonal entry).
//
// Errors:
//   - matrix.ErrNilMatrix; matrix.ErrDimensionMismatch when r < 2.
//
// Notes:
//   - Scale invariant: Correlation(α*X) == Correlation(X) for α > 0.
func Correlation(X matrix.Matrix[float64]) (*matrix.Dense[float64], []float64, []float64, error) {
	g, means, err := observations(opCorrelation, X)
	if err != nil {
		return nil, nil, nil, err
	}
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, g, nil)

	c := cov.SymmetricDim()
	stds := make([]float64, c)
	for j := 0; j < c; j++ {
		stds[j] = math.Sqrt(cov.At(j, j))
	}
	corr := mat.NewSymDense(c, nil)
	for i := 0; i < c; i++ {
		for j := i; j < c; j++ {
			if stds[i] == 0 || stds[j] == 0 {
				continue
			}
			corr.SetSym(i, j, cov.At(i, j)/(stds[i]*stds[j]))
		}
	}
	out, err := back(opCorrelation, corr)
	if err != nil {
		return nil, nil, nil, err
	}

	return out, means, stds, nil
}

// observations converts X and checks it has at least two rows; it also returns the column means.
func observations(tag string, X matrix.Matrix[float64]) (*mat.Dense, []float64, error) {
	g, err := ToGonum(X)
	if err != nil {
		return nil, nil, linalgErrorf(tag, err)
	}
	r, c := g.Dims()
	if r < 2 {
		return nil, nil, fmt.Errorf("%s: %d observations, need at least 2: %w", tag, r, matrix.ErrDimensionMismatch)
	}
	means := make([]float64, c)
	for j := 0; j < c; j++ {
		means[j] = stat.Mean(mat.Col(nil, j, g), nil)
	}

	return g, means, nil
}
