// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical kernels.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - AllClose/Equal are the comparison helpers used across the module's tests.
//   - ZerosLike is handy to preallocate a destination for compound assignment.

package matrix

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"

	lvscalar "github.com/katalvlaran/lvmat/scalar"
)

// ZerosLike returns a zero Dense with the same shape as s.
// Errors: ErrNilMatrix, ErrNoShape.
func ZerosLike[T lvscalar.Field](s Shaper) (*Dense[T], error) {
	if err := ValidateShaped(s); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}
	r, c, _ := s.Shape()

	return NewDense[T](r, c)
}

// IdentityLike returns the identity with the shape of s; s must be square.
func IdentityLike[T lvscalar.Field](s Shaper) (*Dense[T], error) {
	if err := ValidateSquare(s); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	r, _, _ := s.Shape()

	return Identity[T](r, r)
}

// Equal reports whether a and b are shaped identically and equal element by element
// (exact comparison; NaN never equals NaN).
func Equal[T lvscalar.Field](a, b Matrix[T]) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	n := a.Rows() * a.Cols()
	for i := 0; i < n; i++ {
		if a.ValueAt(i) != b.ValueAt(i) {
			return false
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol or |a-b| ≤ rtol*max(|a|,|b|) for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN equals nothing; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (ErrNilMatrix, ErrDimensionMismatch).
//   - rtol, atol are treated as |rtol|, |atol|; atol == rtol == 0 uses DefaultEpsilon;
//     NaN/Inf tolerances are rejected with ErrNaNInf.
//
// AI-Hints:
//   - AllClose with small tolerances is the comparison of choice for decomposition round trips.
func AllClose[T lvscalar.Real](a, b Matrix[T], rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	atol, rtol, err := normalizeTol(atol, rtol)
	if err != nil {
		return false, err
	}
	n := a.Rows() * a.Cols()
	for i := 0; i < n; i++ {
		x, y := float64(a.ValueAt(i)), float64(b.ValueAt(i))
		if x == y { // covers ±Inf equality
			continue
		}
		if !scalar.EqualWithinAbsOrRel(x, y, atol, rtol) {
			return false, nil
		}
	}

	return true, nil
}

// AllCloseComplex is AllClose for complex element types, comparing the modulus of the difference.
func AllCloseComplex[T lvscalar.Complex](a, b Matrix[T], rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	atol, rtol, err := normalizeTol(atol, rtol)
	if err != nil {
		return false, err
	}
	n := a.Rows() * a.Cols()
	for i := 0; i < n; i++ {
		x, y := complex128(a.ValueAt(i)), complex128(b.ValueAt(i))
		if x == y {
			continue
		}
		d := cmplx.Abs(x - y)
		if math.IsNaN(d) || (d > atol && d > rtol*math.Max(cmplx.Abs(x), cmplx.Abs(y))) {
			return false, nil
		}
	}

	return true, nil
}

func normalizeTol(atol, rtol float64) (float64, float64, error) {
	if math.IsNaN(atol) || math.IsNaN(rtol) || math.IsInf(atol, 0) || math.IsInf(rtol, 0) {
		return 0, 0, matrixErrorf(opAllClose, ErrNaNInf)
	}
	atol, rtol = math.Abs(atol), math.Abs(rtol)
	if atol == 0 && rtol == 0 {
		atol = DefaultEpsilon
	}

	return atol, rtol, nil
}
