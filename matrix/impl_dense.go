// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major) & safe accessors.
//
// Purpose:
//   - Provide one contiguous column-major buffer with the explicit index formula r + c*rows.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Track mutations with a generation counter so expressions can detect stale borrows.
//
// AI-Hints:
//   - buffer is embedded by both Dense (runtime shape) and Fixed (type-level shape);
//     every accessor below is therefore shared by the two variants.
//   - ValueAt is the unchecked hot-path read used by the materializer.
//
// Complexity quicksheet:
//   - construction: O(r*c) zero-init; At/Set/AtIndex/SetIndex: O(1); Clone/Values: O(r*c).

package matrix

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/lvmat/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxAtIndex  = "AtIndex"  // method tag used in error wrappers
	ctxSetIndex = "SetIndex" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// buffer is the column-major storage shared by Dense and Fixed.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in column-major order (offset = i + j*r).
//   - gen counts mutations; expression leaves snapshot it when they borrow the buffer.
type buffer[T scalar.Field] struct {
	r, c int    // row and column counts (> 0 for every public constructor)
	data []T    // contiguous column-major storage (len == r*c)
	gen  uint64 // bumped by every mutating method
}

// newBuffer allocates a zero-filled r×c buffer. Shape validation is the caller's job.
func newBuffer[T scalar.Field](rows, cols int) buffer[T] {
	return buffer[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (b *buffer[T]) Rows() int { return b.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (b *buffer[T]) Cols() int { return b.c }

// Len returns rows*cols, the number of stored elements.
func (b *buffer[T]) Len() int { return len(b.data) }

// Shape implements Shaper; storage is always shaped.
func (b *buffer[T]) Shape() (rows, cols int, shaped bool) { return b.r, b.c, true }

// ValueAt implements Operand with a direct, unchecked buffer read.
// An index outside [0, Len()) panics like any Go slice access.
func (b *buffer[T]) ValueAt(i int) T { return b.data[i] }

func (b *buffer[T]) storage() *buffer[T] { return b }

// touch records a mutation. Every exported mutator must call it.
func (b *buffer[T]) touch() { b.gen++ }

// indexOf computes the column-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for column-major storage.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < r and 0 ≤ col < c.
//   - Stage 2: compute row + col*r.
//
// Returns:
//   - (offset, nil) on success; (0, ErrOutOfRange) otherwise.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Reuse in At/Set to keep identical bound semantics.
func (b *buffer[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= b.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= b.c {
		return 0, ErrOutOfRange
	}

	// Column-major offset: i + j*r.
	return row + col*b.r, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel error.
// Complexity: O(1).
func (b *buffer[T]) At(row, col int) (T, error) {
	off, err := b.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return b.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (b *buffer[T]) Set(row, col int, v T) error {
	off, err := b.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	b.data[off] = v // direct flat write
	b.touch()

	return nil
}

// AtIndex returns the element at column-major position k or ErrOutOfRange.
func (b *buffer[T]) AtIndex(k int) (T, error) {
	if k < 0 || k >= len(b.data) {
		var zero T

		return zero, fmt.Errorf("Dense.%s(%d): %w", ctxAtIndex, k, ErrOutOfRange)
	}

	return b.data[k], nil
}

// SetIndex stores v at column-major position k or returns ErrOutOfRange.
func (b *buffer[T]) SetIndex(k int, v T) error {
	if k < 0 || k >= len(b.data) {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetIndex, k, ErrOutOfRange)
	}
	b.data[k] = v
	b.touch()

	return nil
}

// All iterates every element in column-major order, yielding (linear index, value).
// The sequence reads the live buffer; mutate through Set/Apply, not inside the loop.
//
// AI-Hints:
//   - Round trip: FromCols(r, c, data) followed by All reproduces data exactly.
func (b *buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for k, v := range b.data {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Do calls f for each element in column-major order (j outer, i inner) until f returns false.
// Complexity: O(r*c).
func (b *buffer[T]) Do(f func(i, j int, v T) bool) {
	var i, j int
	for j = 0; j < b.c; j++ {
		base := j * b.r // column base offset
		for i = 0; i < b.r; i++ {
			if !f(i, j, b.data[base+i]) {
				return
			}
		}
	}
}

// Apply replaces every element with f(i, j, v), column by column. This is the
// mutable counterpart of Do.
// Complexity: O(r*c).
func (b *buffer[T]) Apply(f func(i, j int, v T) T) {
	var i, j int
	for j = 0; j < b.c; j++ {
		base := j * b.r
		for i = 0; i < b.r; i++ {
			b.data[base+i] = f(i, j, b.data[base+i])
		}
	}
	b.touch()
}

// Fill sets every element to v.
func (b *buffer[T]) Fill(v T) {
	for k := range b.data {
		b.data[k] = v
	}
	b.touch()
}

// Values returns a column-major copy of the elements.
func (b *buffer[T]) Values() []T {
	out := make([]T, len(b.data))
	copy(out, b.data)

	return out
}

// RowMajor returns a row-major copy of the elements (the transpose of the
// storage order), convenient for printing or handing to row-major libraries.
func (b *buffer[T]) RowMajor() []T {
	out := make([]T, len(b.data))
	var i, j int
	for i = 0; i < b.r; i++ {
		for j = 0; j < b.c; j++ {
			out[i*b.c+j] = b.data[i+j*b.r]
		}
	}

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs and debugging.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (b *buffer[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < b.r; i++ { // iterate rows deterministically
		sb.WriteString(_fmtRowOpen) // open row
		for j = 0; j < b.c; j++ {   // iterate cols
			fmt.Fprintf(&sb, "%v", b.data[i+j*b.r])
			if j+1 < b.c {
				sb.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		sb.WriteString(_fmtRowClose) // close row
	}

	return sb.String()
}

// cloneData returns an independent copy of the buffer (fresh generation).
func (b *buffer[T]) cloneData() buffer[T] {
	cp := make([]T, len(b.data))
	copy(cp, b.data)

	return buffer[T]{r: b.r, c: b.c, data: cp}
}

// Dense is the dynamic-shape matrix: the shape is carried at runtime and the
// buffer lives on the heap.
type Dense[T scalar.Field] struct {
	buffer[T]
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using column-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Zeros is the intention-revealing alias; see impl_builder.go for the other factories.
func NewDense[T scalar.Field](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{buffer: newBuffer[T](rows, cols)}, nil
}

// storage returns nil for a nil receiver so that borrowing a nil *Dense is an
// error instead of a nil dereference.
func (m *Dense[T]) storage() *buffer[T] {
	if m == nil {
		return nil
	}

	return &m.buffer
}

// Clone returns a deep copy (new buffer, independent generation).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{buffer: m.cloneData()}
}
