// SPDX-License-Identifier: MIT
// Package matrix - canonical factories for Dense and Fixed matrices.
//
// Purpose:
//   - zeros / ones / fill / from row-major / from column-major / identity /
//     uniform random, identically for both storage variants.
//
// Policy & Contracts:
//   - Dense factories validate rows>0 && cols>0 (ErrInvalidDimensions).
//   - Slice factories require len(data) == rows*cols (ErrDimensionMismatch) and copy;
//     the caller's slice is never retained.
//   - Row-major input is transposed on ingestion; column-major input is copied as is.
//   - Identity writes ones on the leading diagonal of length min(rows, cols).
//   - Random fills draw independently per element from gonum's distuv.Uniform on [low, high);
//     integer element types take the floor of each draw.
//
// AI-Hints:
//   - Pass WithSeed(n) for reproducible random matrices in tests and benchmarks.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvmat/scalar"
)

// Zeros returns a rows×cols matrix of zeros. Alias of NewDense.
func Zeros[T scalar.Field](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// Ones returns a rows×cols matrix of ones.
func Ones[T scalar.Field](rows, cols int) (*Dense[T], error) {
	return Filled(rows, cols, scalar.One[T]())
}

// Filled returns a rows×cols matrix with every element set to v.
func Filled[T scalar.Field](rows, cols int, v T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	fill(m.data, v)

	return m, nil
}

// FromRows builds a rows×cols matrix from row-major data (transposed into column-major storage).
// Complexity: O(r*c).
func FromRows[T scalar.Field](rows, cols int, data []T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	if err = ingestRows(&m.buffer, data); err != nil {
		return nil, err
	}

	return m, nil
}

// FromCols builds a rows×cols matrix from column-major data (direct copy).
// Complexity: O(r*c).
func FromCols[T scalar.Field](rows, cols int, data []T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromCols, err)
	}
	if err = ingestCols(&m.buffer, data); err != nil {
		return nil, err
	}

	return m, nil
}

// Identity returns a rows×cols matrix with ones on the leading diagonal.
// Rectangular shapes are allowed; the diagonal has length min(rows, cols).
func Identity[T scalar.Field](rows, cols int) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	setDiagonal(&m.buffer)

	return m, nil
}

// RandomUniform returns a rows×cols matrix of independent draws from [low, high).
//
// Errors:
//   - ErrInvalidDimensions, ErrBadRange (low >= high or non-finite bounds).
func RandomUniform[T scalar.Real](rows, cols int, low, high T, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	if err = fillUniform(&m.buffer, low, high, gatherOptions(opts...)); err != nil {
		return nil, err
	}

	return m, nil
}

// ---------- Fixed twins (shape from D; D comes first so T can be inferred) ----------

// ZerosFixed returns a zero Fixed[T, D].
func ZerosFixed[D Dims, T scalar.Field]() *Fixed[T, D] { return newFixed[D, T]() }

// OnesFixed returns a Fixed[T, D] of ones.
func OnesFixed[D Dims, T scalar.Field]() *Fixed[T, D] {
	return FilledFixed[D](scalar.One[T]())
}

// FilledFixed returns a Fixed[T, D] with every element set to v.
func FilledFixed[D Dims, T scalar.Field](v T) *Fixed[T, D] {
	m := newFixed[D, T]()
	fill(m.data, v)

	return m
}

// IdentityFixed returns a Fixed[T, D] with ones on the leading diagonal.
func IdentityFixed[D Dims, T scalar.Field]() *Fixed[T, D] {
	m := newFixed[D, T]()
	setDiagonal(&m.buffer)

	return m
}

// FixedFromRows builds a Fixed[T, D] from row-major data.
func FixedFromRows[D Dims, T scalar.Field](data []T) (*Fixed[T, D], error) {
	m := newFixed[D, T]()
	if err := ingestRows(&m.buffer, data); err != nil {
		return nil, err
	}

	return m, nil
}

// FixedFromCols builds a Fixed[T, D] from column-major data.
func FixedFromCols[D Dims, T scalar.Field](data []T) (*Fixed[T, D], error) {
	m := newFixed[D, T]()
	if err := ingestCols(&m.buffer, data); err != nil {
		return nil, err
	}

	return m, nil
}

// RandomUniformFixed returns a Fixed[T, D] of independent draws from [low, high).
func RandomUniformFixed[D Dims, T scalar.Real](low, high T, opts ...Option) (*Fixed[T, D], error) {
	m := newFixed[D, T]()
	if err := fillUniform(&m.buffer, low, high, gatherOptions(opts...)); err != nil {
		return nil, err
	}

	return m, nil
}

// ---------- shared kernels ----------

func fill[T scalar.Field](data []T, v T) {
	for k := range data {
		data[k] = v
	}
}

func setDiagonal[T scalar.Field](b *buffer[T]) {
	one := scalar.One[T]()
	n := min(b.r, b.c)
	for i := 0; i < n; i++ {
		b.data[i+i*b.r] = one
	}
}

// ingestRows transposes row-major data into b.
func ingestRows[T scalar.Field](b *buffer[T], data []T) error {
	if len(data) != len(b.data) {
		return fmt.Errorf("%s: len %d for %dx%d: %w", opFromRows, len(data), b.r, b.c, ErrDimensionMismatch)
	}
	var i, j int
	for i = 0; i < b.r; i++ {
		base := i * b.c // row base offset in the input
		for j = 0; j < b.c; j++ {
			b.data[i+j*b.r] = data[base+j]
		}
	}

	return nil
}

// ingestCols copies column-major data into b.
func ingestCols[T scalar.Field](b *buffer[T], data []T) error {
	if len(data) != len(b.data) {
		return fmt.Errorf("%s: len %d for %dx%d: %w", opFromCols, len(data), b.r, b.c, ErrDimensionMismatch)
	}
	copy(b.data, data)

	return nil
}

// fillUniform draws every element independently from [low, high).
// MAIN DESCRIPTION:
//   - Sample float64 values with distuv.Uniform and convert them to T.
//
// Implementation:
//   - Stage 1: validate the range.
//   - Stage 2: draw; floor for integer kinds; redraw the rare value that rounds up to high
//     when T is narrower than float64.
//
// Complexity:
//   - Time O(r*c) expected, Space O(1).
func fillUniform[T scalar.Real](b *buffer[T], low, high T, o Options) error {
	lo, hi := float64(low), float64(high)
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return fmt.Errorf("%s: [%v, %v): %w", opRandom, low, high, ErrBadRange)
	}
	dist := distuv.Uniform{Min: lo, Max: hi, Src: o.src}
	integer := scalar.IsInteger[T]()
	for k := range b.data {
		for {
			x := dist.Rand()
			if integer {
				x = math.Floor(x)
			}
			if v := T(x); v >= low && v < high {
				b.data[k] = v

				break
			}
		}
	}

	return nil
}
