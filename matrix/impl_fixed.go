// SPDX-License-Identifier: MIT

// Package matrix - Fixed storage: the shape lives in the type.
//
// Purpose:
//   - Offer a matrix whose dimensions are part of its type (Fixed[float64, D3x3]),
//     so mixing shapes in typed APIs is a compile error rather than a runtime check.
//   - Share every accessor with Dense through the embedded column-major buffer.
//
// Notes:
//   - Go has no const generics, so the buffer is still a slice sized from D once,
//     at construction. The shape never changes afterwards.
//   - A D with non-positive dimensions is a programmer error and panics.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmat/scalar"
)

const panicFixedDims = "matrix: fixed shape must have positive dimensions"

// Fixed is the fixed-shape matrix variant. D supplies the dimensions.
type Fixed[T scalar.Field, D Dims] struct {
	buffer[T]
}

var (
	_ Matrix[float64] = (*Fixed[float64, D2x2])(nil)
	_ fmt.Stringer    = (*Fixed[float64, D2x2])(nil)
)

// dimsOf reads the shape baked into D.
func dimsOf[D Dims]() (rows, cols int) {
	var d D

	return d.Rows(), d.Cols()
}

// newFixed allocates a zero Fixed[T, D]; panics when D is not a valid shape.
func newFixed[D Dims, T scalar.Field]() *Fixed[T, D] {
	r, c := dimsOf[D]()
	if r <= 0 || c <= 0 {
		panic(panicFixedDims)
	}

	return &Fixed[T, D]{buffer: newBuffer[T](r, c)}
}

func (m *Fixed[T, D]) storage() *buffer[T] {
	if m == nil {
		return nil
	}

	return &m.buffer
}

// Clone returns a deep copy with the same static shape.
func (m *Fixed[T, D]) Clone() *Fixed[T, D] {
	return &Fixed[T, D]{buffer: m.cloneData()}
}

// Dense copies m into a dynamic-shape matrix.
func (m *Fixed[T, D]) Dense() *Dense[T] {
	return &Dense[T]{buffer: m.cloneData()}
}

// ToFixed copies a Dense into Fixed[T, D] when the runtime shape equals D.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ToFixed[D Dims, T scalar.Field](m *Dense[T]) (*Fixed[T, D], error) {
	if m == nil {
		return nil, matrixErrorf("ToFixed", ErrNilMatrix)
	}
	r, c := dimsOf[D]()
	if m.r != r || m.c != c {
		return nil, shapeErrorf("ToFixed", m.r, m.c, r, c)
	}

	return &Fixed[T, D]{buffer: m.cloneData()}, nil
}
