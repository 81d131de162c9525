// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common shape checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Validators take Shaper, so matrices, scalars and expression nodes are all accepted.

package matrix

import (
	"fmt"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports nil interfaces and typed nil pointers.
func isNil(s Shaper) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// ValidateNotNil ensures the operand reference is non-nil (typed nils included).
// Complexity: O(1).
func ValidateNotNil(s Shaper) error {
	if isNil(s) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShaped ensures the operand has a shape (is not scalar-only).
func ValidateShaped(s Shaper) error {
	if err := ValidateNotNil(s); err != nil {
		return validatorErrorf("ValidateShaped", err)
	}
	if _, _, shaped := s.Shape(); !shaped {
		return validatorErrorf("ValidateShaped", ErrNoShape)
	}

	return nil
}

// ValidateSameShape ensures two shaped operands have equal dimensions.
// Unshaped operands broadcast and always pass.
//
// Implementation: Composite NotNil(a) → NotNil(b) → rows → cols.
// Complexity: O(1).
func ValidateSameShape(a, b Shaper) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	ar, ac, aShaped := a.Shape()
	br, bc, bShaped := b.Shape()
	if !aShaped || !bShaped {
		return nil
	}
	if ar != br {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if ac != bc {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that s is shaped and square (Rows == Cols).
func ValidateSquare(s Shaper) error {
	if err := ValidateShaped(s); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if r, c, _ := s.Shape(); r != c {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen[T any](x []T, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
