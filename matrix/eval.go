// SPDX-License-Identifier: MIT

// Package matrix - the materializer.
//
// Purpose:
//   - Turn any Operand (bare matrix, scalar-broadcast node, arbitrarily deep tree)
//     into a fresh Dense with exactly one buffer allocation.
//
// Determinism & Performance:
//   - One ValueAt call per output cell, flat 0..n-1 loop, so the cost is O(n·d)
//     scalar operations for n cells and depth d, with zero intermediate matrices.
//   - Referentially transparent: evaluating the same unmutated tree twice yields
//     bit-identical results.

package matrix

import (
	"github.com/katalvlaran/lvmat/scalar"
)

// Eval materializes root under DefaultPolicy.
// The result shares nothing with the tree that produced it.
//
// Errors:
//   - ErrNilMatrix for a nil root.
//   - the sticky construction error of an *Expr root.
//   - ErrNoShape for scalar-only roots.
//   - ErrStaleOperand (Strict) when a borrowed matrix changed after the tree was built.
func Eval[T scalar.Field](root Operand[T]) (*Dense[T], error) {
	return evalWith(DefaultPolicy, root)
}

// Eval materializes the expression under the policy it was built with.
//
// AI-Hints:
//   - Chain freely, evaluate once: F.Mul(A.Add(B)).Sub(C.Div(D)).Add(E).Eval().
func (e *Expr[T]) Eval() (*Dense[T], error) {
	if e == nil {
		return nil, matrixErrorf(opEval, ErrNilMatrix)
	}

	return evalWith[T](e.policy, e)
}

// MustEval is Eval for expressions whose shapes are known to agree; it panics on error.
func (e *Expr[T]) MustEval() *Dense[T] {
	out, err := e.Eval()
	if err != nil {
		panic(err)
	}

	return out
}

// EvalFixed materializes e into a Fixed[T, D]. Under a Strict node the
// expression's shape must equal D; a scalar-only expression broadcasts to D.
// Under an Unchecked node the shape is taken from D without comparison.
func EvalFixed[D Dims, T scalar.Field](e *Expr[T]) (*Fixed[T, D], error) {
	if e == nil {
		return nil, matrixErrorf(opEval, ErrNilMatrix)
	}
	if err := precheck[T](e.policy, e); err != nil {
		return nil, err
	}
	r, c := dimsOf[D]()
	if er, ec, shaped := e.Shape(); e.policy == Strict && shaped && (er != r || ec != c) {
		return nil, shapeErrorf(opEval, er, ec, r, c)
	}
	out := newFixed[D, T]()
	materialize[T](out.data, e)

	return out, nil
}

// evalWith is the single allocation point of the pipeline.
// MAIN DESCRIPTION:
//   - Validate (per policy), allocate one Dense of the root's recorded shape,
//     fill it with one ValueAt call per linear index.
//
// Implementation:
//   - Stage 1: nil root / sticky error / staleness (Strict only).
//   - Stage 2: read the recorded shape; unshaped roots cannot be allocated.
//   - Stage 3: allocate and materialize.
//
// Complexity:
//   - Time O(n·d), Space O(n) for the result (the only allocation besides the header).
func evalWith[T scalar.Field](p Policy, root Operand[T]) (*Dense[T], error) {
	if root == nil {
		return nil, matrixErrorf(opEval, ErrNilMatrix)
	}
	switch v := root.(type) {
	case *Expr[T]:
		if v == nil {
			return nil, matrixErrorf(opEval, ErrNilMatrix)
		}
	case storer[T]:
		if v.storage() == nil {
			return nil, matrixErrorf(opEval, ErrNilMatrix)
		}
	}
	if err := precheck(p, root); err != nil {
		return nil, err
	}
	r, c, shaped := root.Shape()
	if !shaped {
		return nil, matrixErrorf(opEval, ErrNoShape)
	}
	out := &Dense[T]{buffer: buffer[T]{r: r, c: c, data: make([]T, r*c)}}
	materialize(out.data, root)

	return out, nil
}

// precheck returns the sticky error of an *Expr root (any policy) and, under
// Strict, walks the tree for stale leaves.
func precheck[T scalar.Field](p Policy, root Operand[T]) error {
	if e, ok := root.(*Expr[T]); ok && e.err != nil {
		return matrixErrorf(opEval, e.err)
	}
	if p != Strict {
		return nil
	}
	if c, ok := root.(checker); ok {
		if err := c.check(); err != nil {
			return matrixErrorf(opEval, err)
		}
	}

	return nil
}

// materialize writes root.ValueAt(i) into dst[i] for every i, once each.
func materialize[T scalar.Field](dst []T, root Operand[T]) {
	for i := range dst {
		dst[i] = root.ValueAt(i)
	}
}
