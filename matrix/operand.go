// SPDX-License-Identifier: MIT

// Package matrix: expression leaves.
//
// Purpose:
//   - Const: a scalar broadcast leaf (no shape, index ignored).
//   - leaf: a borrowed matrix plus the generation it had when it was borrowed.
//
// Borrowing:
//   - Go's GC keeps a borrowed buffer alive as long as a node references it.
//   - What the GC cannot prevent is mutation while borrowed; the generation
//     snapshot lets strict evaluation detect it (ErrStaleOperand).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmat/scalar"
)

// Const is a scalar broadcast leaf. It returns the same value for every index
// and has no shape of its own; combined with a shaped operand it takes that shape.
type Const[T scalar.Field] struct {
	v T
}

// Scalar wraps v as a broadcast leaf, e.g. matrix.Scalar(2.0).Sub(A) for 2 - A.
func Scalar[T scalar.Field](v T) Const[T] { return Const[T]{v: v} }

// Value returns the wrapped constant.
func (c Const[T]) Value() T { return c.v }

// ValueAt ignores i and returns the constant.
func (c Const[T]) ValueAt(int) T { return c.v }

// Shape reports no shape.
func (c Const[T]) Shape() (rows, cols int, shaped bool) { return 0, 0, false }

func (c Const[T]) String() string { return fmt.Sprintf("%v", c.v) }

// leaf is a matrix borrowed into an expression.
type leaf[T scalar.Field] struct {
	buf *buffer[T]
	gen uint64 // buf.gen at borrow time
}

func (l *leaf[T]) ValueAt(i int) T { return l.buf.data[i] }

func (l *leaf[T]) Shape() (rows, cols int, shaped bool) { return l.buf.r, l.buf.c, true }

func (l *leaf[T]) String() string { return fmt.Sprintf("[%dx%d]", l.buf.r, l.buf.c) }

// check reports ErrStaleOperand if the buffer was mutated after borrowing.
func (l *leaf[T]) check() error {
	if l.buf.gen != l.gen {
		return ErrStaleOperand
	}

	return nil
}

// checker is implemented by tree participants that can validate themselves
// before evaluation (leaves and nodes).
type checker interface {
	check() error
}

// storer is implemented by the concrete storages and the shared buffer.
type storer[T scalar.Field] interface {
	storage() *buffer[T]
}

// borrow turns matrix operands into generation-stamped leaves and passes every
// other operand through. ok is false for nil operands, including typed nils.
func borrow[T scalar.Field](op Operand[T]) (Operand[T], bool) {
	if op == nil {
		return nil, false
	}
	switch v := op.(type) {
	case *Expr[T]:
		if v == nil {
			return nil, false
		}

		return v, true
	case storer[T]:
		b := v.storage()
		if b == nil {
			return nil, false
		}

		return &leaf[T]{buf: b, gen: b.gen}, true
	}

	return op, true
}
