// SPDX-License-Identifier: MIT
// Package exprlang: lowering of the AST into lazy matrix expressions.

package exprlang

import (
	"fmt"

	"github.com/katalvlaran/lvmat/matrix"
)

// Env binds identifiers to materialized matrices.
type Env map[string]matrix.Matrix[float64]

// Compile lowers n into one deferred operand built with lz.
// MAIN DESCRIPTION:
//   - Identifiers become borrowed matrices, numbers broadcast scalars,
//     operators nodes of lz's policy. Nothing is evaluated.
//
// Implementation:
//   - Post-order walk; each Binary/Unary becomes exactly one matrix.Expr node.
//   - A node whose construction records an error (a Strict shape mismatch)
//     stops compilation; the error names that operator and its offset.
//
// Errors:
//   - ErrUnknownIdent for names missing from env.
//   - matrix.ErrDimensionMismatch (Strict engines) with the operator position.
//
// AI-Hints:
//   - A bare identifier compiles to the matrix itself; Eval copies it.
//   - Number-only expressions compile but have no shape (matrix.ErrNoShape at Eval).
func Compile(n Node, env Env, lz matrix.Lazy[float64]) (matrix.Operand[float64], error) {
	switch v := n.(type) {
	case *Ident:
		m, ok := env[v.Name]
		if !ok {
			return nil, fmt.Errorf("%w %q at offset %d", ErrUnknownIdent, v.Name, v.At)
		}

		return m, nil
	case *Number:
		return lz.Scalar(v.Value), nil
	case *Unary:
		x, err := Compile(v.X, env, lz)
		if err != nil {
			return nil, err
		}

		return checked(lz.Neg(x), v, v.At)
	case *Binary:
		l, err := Compile(v.L, env, lz)
		if err != nil {
			return nil, err
		}
		r, err := Compile(v.R, env, lz)
		if err != nil {
			return nil, err
		}

		return checked(lz.Apply(v.Op, l, r), v, v.At)
	case nil:
		return nil, fmt.Errorf("exprlang: compile: %w", matrix.ErrNilMatrix)
	default:
		return nil, fmt.Errorf("exprlang: compile: unsupported node %T", n)
	}
}

// checked surfaces the construction error of e. Children were checked before
// e was built, so a non-nil error originates at e itself.
func checked(e *matrix.Expr[float64], n Node, at int) (matrix.Operand[float64], error) {
	if err := e.Err(); err != nil {
		return nil, fmt.Errorf("exprlang: %s at offset %d: %w", n, at, err)
	}

	return e, nil
}

// Eval parses, compiles and materializes src in one call.
func Eval(src string, env Env, lz matrix.Lazy[float64]) (*matrix.Dense[float64], error) {
	n, err := Parse(src)
	if err != nil {
		return nil, err
	}
	op, err := Compile(n, env, lz)
	if err != nil {
		return nil, err
	}

	return lz.Eval(op)
}
