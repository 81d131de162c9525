// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Eager, in-place compound assignment (+= -= *= /=) on owned storage.
//   - Share one private kernel (ewAssign) between the Dense/Fixed methods and Lazy.
//
// Design:
//   - No tree is kept: the right-hand side is streamed cell by cell into the
//     destination buffer, so an *Expr rhs is applied without any temporary.
//   - Every destination cell i only depends on rhs cell i, so rhs may borrow
//     the destination itself (A.AddAssign(A.Mul(B)) is well defined).
//
// Determinism & Performance:
//   - Flat 0..n-1 loop, no allocations.

package matrix

import (
	"github.com/katalvlaran/lvmat/scalar"
)

// ewAssign computes dst[i] = dst[i] op rhs.ValueAt(i) for every i.
// MAIN DESCRIPTION:
//   - Validate per policy, then stream rhs into dst in place.
//
// Implementation:
//   - Stage 1: nil checks; sticky error of an *Expr rhs (any policy).
//   - Stage 2 (Strict): equal shapes unless rhs is unshaped; no stale leaves in rhs.
//   - Stage 3: flat loop; bump dst generation.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrStaleOperand, sticky node errors.
//
// Complexity:
//   - Time O(n·d), Space O(1).
//
// Notes:
//   - Unchecked with a smaller rhs panics with Go's index error; a larger rhs
//     silently contributes its first n cells.
func ewAssign[T scalar.Field](p Policy, op Op, dst *buffer[T], rhs Operand[T]) error {
	if dst == nil {
		return matrixErrorf(opAssign, ErrNilMatrix)
	}
	rhs, ok := borrow(rhs)
	if !ok {
		return matrixErrorf(opAssign, ErrNilMatrix)
	}
	if e, isExpr := rhs.(*Expr[T]); isExpr && e.err != nil {
		return matrixErrorf(opAssign, e.err)
	}
	if p == Strict {
		if r, c, shaped := rhs.Shape(); shaped && (r != dst.r || c != dst.c) {
			return shapeErrorf(opAssign+op.tag(), dst.r, dst.c, r, c)
		}
		if ch, isChecker := rhs.(checker); isChecker {
			if err := ch.check(); err != nil {
				return matrixErrorf(opAssign, err)
			}
		}
	}

	data := dst.data
	for i := range data {
		data[i] = apply(op, data[i], rhs.ValueAt(i))
	}
	dst.touch()

	return nil
}

// ewAssignScalar computes dst[i] = dst[i] op s. It cannot fail.
func ewAssignScalar[T scalar.Field](op Op, dst *buffer[T], s T) {
	data := dst.data
	for i := range data {
		data[i] = apply(op, data[i], s)
	}
	dst.touch()
}

// AddAssign performs m += rhs in place under DefaultPolicy.
func (b *buffer[T]) AddAssign(rhs Operand[T]) error { return ewAssign(DefaultPolicy, OpAdd, b, rhs) }

// SubAssign performs m -= rhs in place under DefaultPolicy.
func (b *buffer[T]) SubAssign(rhs Operand[T]) error { return ewAssign(DefaultPolicy, OpSub, b, rhs) }

// MulAssign performs m ⊙= rhs (Hadamard) in place under DefaultPolicy.
func (b *buffer[T]) MulAssign(rhs Operand[T]) error { return ewAssign(DefaultPolicy, OpMul, b, rhs) }

// DivAssign performs m /= rhs in place under DefaultPolicy.
func (b *buffer[T]) DivAssign(rhs Operand[T]) error { return ewAssign(DefaultPolicy, OpDiv, b, rhs) }

// AddScalarAssign performs m += s in place.
func (b *buffer[T]) AddScalarAssign(s T) { ewAssignScalar(OpAdd, b, s) }

// SubScalarAssign performs m -= s in place.
func (b *buffer[T]) SubScalarAssign(s T) { ewAssignScalar(OpSub, b, s) }

// MulScalarAssign performs m *= s in place.
func (b *buffer[T]) MulScalarAssign(s T) { ewAssignScalar(OpMul, b, s) }

// DivScalarAssign performs m /= s in place.
func (b *buffer[T]) DivScalarAssign(s T) { ewAssignScalar(OpDiv, b, s) }
