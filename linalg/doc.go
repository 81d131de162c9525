// SPDX-License-Identifier: MIT

// Package linalg is the numerical backend for materialized float64 matrices:
// true matrix products, factorizations and solvers.
//
// Nothing here is lazy. Every function takes concrete matrices (evaluate an
// expression first), copies them into gonum's row-major mat.Dense, runs the
// gonum kernel and copies the result back into a fresh column-major
// matrix.Dense. Inputs are never mutated.
//
// Provided:
//   - Mul, MulVec, Transpose, Trace, Norm
//   - LU (with partial pivoting, A = P·L·U), QR (A = Q·R)
//   - Eigen (general, complex eigenvalues), EigenSym (symmetric, with vectors)
//   - Solve, Inverse, Det
//
// Errors are sentinels wrapped with the operation name; match them with
// errors.Is. Shape errors reuse matrix.ErrDimensionMismatch and matrix.ErrNilMatrix.
//
//	prod, err := linalg.Mul(a, b)       // a·b, not the Hadamard a.Mul(b)
//	l, u, p, err := linalg.LU(a)
package linalg
