// SPDX-License-Identifier: MIT
// Package linalg: bridge between column-major matrix.Matrix and row-major gonum matrices.

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmat/matrix"
)

// ToGonum copies m into a new row-major gonum Dense.
// Complexity: O(r*c).
func ToGonum(m matrix.Matrix[float64]) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	rows, cols := m.Rows(), m.Cols()
	data := make([]float64, rows*cols)
	var i, j int
	for j = 0; j < cols; j++ {
		base := j * rows // column base offset in the source
		for i = 0; i < rows; i++ {
			data[i*cols+j] = m.ValueAt(base + i)
		}
	}

	return mat.NewDense(rows, cols, data), nil
}

// FromGonum copies any gonum matrix into a new column-major matrix.Dense.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*matrix.Dense[float64], error) {
	rows, cols := g.Dims()
	data := make([]float64, rows*cols)
	var i, j int
	for j = 0; j < cols; j++ {
		base := j * rows // column base offset in the destination
		for i = 0; i < rows; i++ {
			data[base+i] = g.At(i, j)
		}
	}

	return matrix.FromCols(rows, cols, data)
}

// square converts m and checks that it is n×n.
func square(tag string, m matrix.Matrix[float64]) (*mat.Dense, int, error) {
	g, err := ToGonum(m)
	if err != nil {
		return nil, 0, linalgErrorf(tag, err)
	}
	r, c := g.Dims()
	if r != c {
		return nil, 0, fmt.Errorf("%s: %dx%d: %w", tag, r, c, ErrNonSquare)
	}

	return g, r, nil
}

// back converts a gonum result, tagging any error.
func back(tag string, g mat.Matrix) (*matrix.Dense[float64], error) {
	out, err := FromGonum(g)
	if err != nil {
		return nil, linalgErrorf(tag, err)
	}

	return out, nil
}
