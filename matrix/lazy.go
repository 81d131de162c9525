// SPDX-License-Identifier: MIT

// Package matrix - explicit-policy expression engine.
//
// Purpose:
//   - Make the strict/unchecked trade an explicit configuration axis instead of
//     only a build profile: NewLazy[T](WithUnchecked()) yields the unchecked
//     twins of every node constructor and compound assignment.
//
// AI-Hints:
//   - Keep one Lazy per hot path; it is an immutable value and safe to share.
//   - Nodes remember the engine's policy, so chaining methods on a node built
//     here stays under the same policy.

package matrix

import "github.com/katalvlaran/lvmat/scalar"

// Lazy builds expression nodes and performs compound assignments under a fixed Policy.
type Lazy[T scalar.Field] struct {
	policy Policy
}

// NewLazy returns an engine configured by opts (see WithPolicy, WithUnchecked).
func NewLazy[T scalar.Field](opts ...Option) Lazy[T] {
	o := gatherOptions(opts...)

	return Lazy[T]{policy: o.policy}
}

// Policy returns the engine's policy.
func (l Lazy[T]) Policy() Policy { return l.policy }

// Scalar wraps v as a broadcast leaf.
func (l Lazy[T]) Scalar(v T) Const[T] { return Scalar(v) }

// Add returns the lazy a + b.
func (l Lazy[T]) Add(a, b Operand[T]) *Expr[T] { return newBinary(l.policy, OpAdd, a, b) }

// Sub returns the lazy a - b.
func (l Lazy[T]) Sub(a, b Operand[T]) *Expr[T] { return newBinary(l.policy, OpSub, a, b) }

// Mul returns the lazy Hadamard product a ⊙ b.
func (l Lazy[T]) Mul(a, b Operand[T]) *Expr[T] { return newBinary(l.policy, OpMul, a, b) }

// Div returns the lazy a / b.
func (l Lazy[T]) Div(a, b Operand[T]) *Expr[T] { return newBinary(l.policy, OpDiv, a, b) }

// Apply builds the node a op b for a binary op (OpAdd..OpDiv); OpNeg ignores b.
func (l Lazy[T]) Apply(op Op, a, b Operand[T]) *Expr[T] {
	if op == OpNeg {
		return newNeg(l.policy, a)
	}

	return newBinary(l.policy, op, a, b)
}

// Neg returns the lazy -a.
func (l Lazy[T]) Neg(a Operand[T]) *Expr[T] { return newNeg(l.policy, a) }

// Eval materializes root under the engine's policy.
func (l Lazy[T]) Eval(root Operand[T]) (*Dense[T], error) { return evalWith(l.policy, root) }

// AddAssign performs dst += rhs in place.
func (l Lazy[T]) AddAssign(dst Matrix[T], rhs Operand[T]) error {
	return ewAssign(l.policy, OpAdd, storageOf(dst), rhs)
}

// SubAssign performs dst -= rhs in place.
func (l Lazy[T]) SubAssign(dst Matrix[T], rhs Operand[T]) error {
	return ewAssign(l.policy, OpSub, storageOf(dst), rhs)
}

// MulAssign performs dst ⊙= rhs in place.
func (l Lazy[T]) MulAssign(dst Matrix[T], rhs Operand[T]) error {
	return ewAssign(l.policy, OpMul, storageOf(dst), rhs)
}

// DivAssign performs dst /= rhs in place.
func (l Lazy[T]) DivAssign(dst Matrix[T], rhs Operand[T]) error {
	return ewAssign(l.policy, OpDiv, storageOf(dst), rhs)
}

// storageOf tolerates nil interfaces and typed nils.
func storageOf[T scalar.Field](m Matrix[T]) *buffer[T] {
	if m == nil {
		return nil
	}

	return m.storage()
}
