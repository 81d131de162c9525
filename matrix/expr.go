// SPDX-License-Identifier: MIT

// Package matrix - deferred elementwise expressions.
//
// Purpose:
//   - Represent one elementwise operator application (Hadamard + - * /, unary -)
//     between two operands and record the output shape at construction time,
//     before any value is computed.
//   - Compose without bound: either child may itself be an *Expr, so a whole
//     statement builds one tree instead of one temporary matrix per operator.
//
// Shape rule (inherited, documented):
//   - shaped ⊕ shaped: rows come from the left operand, cols from the right one.
//     This is only sound for equal shapes. Strict nodes record ErrDimensionMismatch
//     when the shapes differ; Unchecked nodes keep the derived shape as is.
//   - scalar ⊕ shaped, shaped ⊕ scalar: the shaped operand's shape.
//   - scalar ⊕ scalar: unshaped; it can be combined further but not evaluated alone.
//
// Errors are sticky: the first error recorded anywhere in a subtree is carried
// by every enclosing node and returned by Eval. Construction never panics.
//
// AI-Hints:
//   - Trees are cheap to build and are meant to be consumed once; they hold no
//     values, only references, so they reflect operand contents at Eval time.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmat/scalar"
)

// Op tags the operator of an expression node. All binary ops are elementwise.
type Op uint8

const (
	// OpAdd is elementwise addition.
	OpAdd Op = iota
	// OpSub is elementwise subtraction.
	OpSub
	// OpMul is the elementwise (Hadamard) product, never a matrix product.
	OpMul
	// OpDiv is elementwise division.
	OpDiv
	// OpNeg is unary negation.
	OpNeg
)

// String returns the infix symbol of the operator.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub, OpNeg:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// tag maps an operator to its error context tag.
func (o Op) tag() string {
	switch o {
	case OpAdd:
		return opAdd
	case OpSub:
		return opSub
	case OpMul:
		return opMul
	case OpDiv:
		return opDiv
	default:
		return opNeg
	}
}

// apply computes x op y in T's native arithmetic.
func apply[T scalar.Field](op Op, x, y T) T {
	switch op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	default:
		return x / y
	}
}

// Expr is an interior node of a lazy elementwise expression.
// b is nil for the unary OpNeg node.
type Expr[T scalar.Field] struct {
	a, b   Operand[T]
	op     Op
	rows   int
	cols   int
	shaped bool
	depth  int
	policy Policy
	err    error
}

var _ Operand[float64] = (*Expr[float64])(nil)

// newBinary builds the node a op b under policy p.
// MAIN DESCRIPTION:
//   - Borrow matrix operands, inherit sticky errors, derive the output shape.
//
// Implementation:
//   - Stage 1: borrow a and b (nil ⇒ ErrNilMatrix).
//   - Stage 2: carry the first child error.
//   - Stage 3: derive shape; Strict records a mismatch between two shaped operands.
//
// Complexity:
//   - Time O(1), Space O(1) (one node, at most two leaves).
func newBinary[T scalar.Field](p Policy, op Op, a, b Operand[T]) *Expr[T] {
	e := &Expr[T]{op: op, policy: p}
	var okA, okB bool
	e.a, okA = borrow(a)
	e.b, okB = borrow(b)
	if !okA || !okB {
		e.err = matrixErrorf(op.tag(), ErrNilMatrix)

		return e
	}
	e.err = firstErr(e.a, e.b)
	e.depth = 1 + max(depthOf(e.a), depthOf(e.b))

	ar, ac, aShaped := e.a.Shape()
	br, bc, bShaped := e.b.Shape()
	switch {
	case aShaped && bShaped:
		// Inherited rule: left rows, right cols.
		e.rows, e.cols, e.shaped = ar, bc, true
		if p == Strict && e.err == nil && (ar != br || ac != bc) {
			e.err = shapeErrorf(op.tag(), ar, ac, br, bc)
		}
	case aShaped:
		e.rows, e.cols, e.shaped = ar, ac, true
	case bShaped:
		e.rows, e.cols, e.shaped = br, bc, true
	}

	return e
}

// newNeg builds the unary node -a.
func newNeg[T scalar.Field](p Policy, a Operand[T]) *Expr[T] {
	e := &Expr[T]{op: OpNeg, policy: p}
	var ok bool
	if e.a, ok = borrow(a); !ok {
		e.err = matrixErrorf(opNeg, ErrNilMatrix)

		return e
	}
	e.err = firstErr(e.a, nil)
	e.depth = 1 + depthOf(e.a)
	e.rows, e.cols, e.shaped = e.a.Shape()

	return e
}

// firstErr returns the sticky error of the first child node that has one.
func firstErr[T scalar.Field](a, b Operand[T]) error {
	if x, ok := a.(*Expr[T]); ok && x.err != nil {
		return x.err
	}
	if y, ok := b.(*Expr[T]); ok && y.err != nil {
		return y.err
	}

	return nil
}

func depthOf[T scalar.Field](op Operand[T]) int {
	if x, ok := op.(*Expr[T]); ok {
		return x.depth
	}

	return 0
}

// ValueAt evaluates the node at column-major index i by recursing into both children.
// Nothing is cached.
func (e *Expr[T]) ValueAt(i int) T {
	if e.op == OpNeg {
		return -e.a.ValueAt(i)
	}

	return apply(e.op, e.a.ValueAt(i), e.b.ValueAt(i))
}

// Shape returns the shape recorded at construction.
func (e *Expr[T]) Shape() (rows, cols int, shaped bool) { return e.rows, e.cols, e.shaped }

// Op returns the node's operator.
func (e *Expr[T]) Op() Op { return e.op }

// Policy returns the policy the node was built under.
func (e *Expr[T]) Policy() Policy { return e.policy }

// Err returns the sticky construction error of the subtree, if any.
func (e *Expr[T]) Err() error { return e.err }

// Depth returns the number of nodes on the longest root-to-leaf path (leaves excluded).
func (e *Expr[T]) Depth() int { return e.depth }

// check walks the tree and reports the sticky error or the first stale leaf.
func (e *Expr[T]) check() error {
	if e.err != nil {
		return e.err
	}
	if c, ok := e.a.(checker); ok {
		if err := c.check(); err != nil {
			return err
		}
	}
	if c, ok := e.b.(checker); ok {
		if err := c.check(); err != nil {
			return err
		}
	}

	return nil
}

// String renders the tree in fully parenthesized infix form, e.g. "(([2x2] + [2x2]) * 3)".
func (e *Expr[T]) String() string {
	var sb strings.Builder
	e.write(&sb)

	return sb.String()
}

func (e *Expr[T]) write(sb *strings.Builder) {
	if e.op == OpNeg {
		sb.WriteString("(-")
		writeOperand(sb, e.a)
		sb.WriteByte(')')

		return
	}
	sb.WriteByte('(')
	writeOperand(sb, e.a)
	sb.WriteString(" " + e.op.String() + " ")
	writeOperand(sb, e.b)
	sb.WriteByte(')')
}

func writeOperand[T scalar.Field](sb *strings.Builder, op Operand[T]) {
	switch v := op.(type) {
	case nil:
		sb.WriteString("<nil>")
	case *Expr[T]:
		v.write(sb)
	case fmt.Stringer:
		sb.WriteString(v.String())
	default:
		r, c, _ := op.Shape()
		fmt.Fprintf(sb, "[%dx%d]", r, c)
	}
}
