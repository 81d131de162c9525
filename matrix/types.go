// SPDX-License-Identifier: MIT

// Package matrix: capability interfaces shared by storage, scalars and expression nodes.
// This file intentionally contains ONLY the contracts (Shaper, Operand, Matrix, Dims);
// implementations live in impl_*.go, expr.go and operand.go.
package matrix

import "github.com/katalvlaran/lvmat/scalar"

// Shaper reports the shape an operand will materialize to.
// shaped is false for scalar leaves and scalar-only nodes, which broadcast
// to whatever shape they are combined with.
// Complexity: O(1).
type Shaper interface {
	Shape() (rows, cols int, shaped bool)
}

// Operand is the uniform lazy accessor every expression participant implements:
// matrices (direct buffer read), scalars (the constant, index ignored) and
// expression nodes (their operator applied to both children at the same index).
//
// Contract:
//   - ValueAt has no side effects and is safe to call any number of times.
//   - i is a column-major linear index in [0, rows*cols).
//   - Results are never cached; a sub-expression shared twice is evaluated twice.
type Operand[T scalar.Field] interface {
	Shaper

	// ValueAt returns the element at column-major position i.
	// Complexity: O(depth of the operand).
	ValueAt(i int) T
}

// Matrix is implemented by the package's concrete storages (*Dense, *Fixed).
// It is sealed: the unexported storage method keeps outside types from
// pretending to own a buffer that compound assignment may mutate.
type Matrix[T scalar.Field] interface {
	Operand[T]

	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At retrieves the element at (row, col) or ErrOutOfRange.
	At(row, col int) (T, error)

	// Set assigns v at (row, col) or returns ErrOutOfRange.
	Set(row, col int, v T) error

	// AtIndex retrieves the element at column-major index k or ErrOutOfRange.
	AtIndex(k int) (T, error)

	// SetIndex assigns v at column-major index k or returns ErrOutOfRange.
	SetIndex(k int, v T) error

	storage() *buffer[T]
}

// Dims bakes a matrix shape into a type so that Fixed[T, D] carries its
// dimensions at compile time. Implementations are zero-size structs whose
// methods return constants; see the predefined D2x2, D3x3, ...
type Dims interface {
	Rows() int
	Cols() int
}

// Predefined fixed shapes. Declare your own the same way:
//
//	type D5x7 struct{}
//	func (D5x7) Rows() int { return 5 }
//	func (D5x7) Cols() int { return 7 }
type (
	D1x1 struct{}
	D2x2 struct{}
	D3x3 struct{}
	D4x4 struct{}
	D2x3 struct{}
	D3x2 struct{}
	D1x3 struct{}
	D3x1 struct{}
	D1x4 struct{}
	D4x1 struct{}
)

func (D1x1) Rows() int { return 1 }
func (D1x1) Cols() int { return 1 }
func (D2x2) Rows() int { return 2 }
func (D2x2) Cols() int { return 2 }
func (D3x3) Rows() int { return 3 }
func (D3x3) Cols() int { return 3 }
func (D4x4) Rows() int { return 4 }
func (D4x4) Cols() int { return 4 }
func (D2x3) Rows() int { return 2 }
func (D2x3) Cols() int { return 3 }
func (D3x2) Rows() int { return 3 }
func (D3x2) Cols() int { return 2 }
func (D1x3) Rows() int { return 1 }
func (D1x3) Cols() int { return 3 }
func (D3x1) Rows() int { return 3 }
func (D3x1) Cols() int { return 1 }
func (D1x4) Rows() int { return 1 }
func (D1x4) Cols() int { return 4 }
func (D4x1) Rows() int { return 4 }
func (D4x1) Cols() int { return 1 }
