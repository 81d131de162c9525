// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (possibly wrapped with call-site
// context) and tests check them via errors.Is. No operation panics on a
// user-triggered error condition; panics are reserved for programmer errors
// (invalid option values, fixed-shape types with non-positive dimensions).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with matrixErrorf at the
// nearest detection site; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> sticky construction error -> shape -> staleness.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row, column or flat) is outside valid bounds.
	// Public indexers (At/Set/AtIndex/SetIndex) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. an elementwise node over a 2×2 and a 3×3 matrix, or a slice whose
	// length does not equal rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil operand (matrix, node or destination) was used.
	ErrNilMatrix = errors.New("matrix: nil operand")

	// ErrNoShape is returned when materializing an expression that only involves
	// scalars: there is no shape to allocate.
	ErrNoShape = errors.New("matrix: expression has no shape")

	// ErrStaleOperand signals that a matrix borrowed by an expression was mutated
	// after the expression was built. Strict evaluation refuses such trees.
	ErrStaleOperand = errors.New("matrix: operand mutated after expression was built")

	// ErrBadRange is returned by random fills when low >= high or a bound is not finite.
	ErrBadRange = errors.New("matrix: invalid sampling range")

	// ErrNaNInf signals a NaN or ±Inf value where a finite value is required
	// (tolerances of AllClose).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// Operation tags for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opDiv      = "Div"
	opNeg      = "Neg"
	opEval     = "Eval"
	opAssign   = "Assign"
	opFromRows = "FromRows"
	opFromCols = "FromCols"
	opRandom   = "RandomUniform"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with a uniform storage context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// shapeErrorf reports two incompatible shapes for the given operation tag.
func shapeErrorf(tag string, ar, ac, br, bc int) error {
	return fmt.Errorf("%s: %dx%d vs %dx%d: %w", tag, ar, ac, br, bc, ErrDimensionMismatch)
}
