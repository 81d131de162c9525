// SPDX-License-Identifier: MIT

// Package matrix offers dense, column-major matrices with lazy elementwise arithmetic.
//
// The package provides:
//
//   - Dense[T] (shape at runtime) and Fixed[T, D] (shape in the type) over any
//     element type satisfying scalar.Field.
//   - Factories: Zeros, Ones, Filled, FromRows, FromCols, Identity, RandomUniform
//     and their Fixed twins.
//   - A lazy expression engine: Add/Sub/Mul/Div/Neg on matrices, scalars
//     (Scalar(v)) and nodes build one deferred tree; Eval materializes it with a
//     single allocation, calling Operand.ValueAt once per output cell.
//   - Eager compound assignment (AddAssign, ...) that streams any Operand into an
//     existing matrix in place.
//
// Shape checking follows a Policy. Strict (the default) records
// ErrDimensionMismatch on the node the moment two differently shaped operands
// are combined and rejects trees whose borrowed matrices were mutated since
// construction. Unchecked (build tag lvmat_unchecked, or NewLazy with
// WithUnchecked) skips every check.
//
// Hadamard Mul is not a matrix product; products and factorizations live in
// the linalg package and operate on materialized matrices only.
//
//	f*(a+b) - c/d + e   ⇒   F.Mul(A.Add(B)).Sub(C.Div(D)).Add(E).Eval()
package matrix
