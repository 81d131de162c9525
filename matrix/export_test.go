// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvmat/scalar"

// Test bridge (white-box) for the black-box matrix_test package.
// Lives in a _test.go file, so none of it reaches production builds.

// Generation exposes the mutation counter of a matrix.
func Generation[T scalar.Field](m Matrix[T]) uint64 { return m.storage().gen }

// PanicFixedDims_TestOnly exposes the panic message for invalid fixed shapes.
const PanicFixedDims_TestOnly = panicFixedDims

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicPolicyInvalid_TestOnly = panicPolicyInvalid
	PanicSourceNil_TestOnly     = panicSourceNil
)

// PolicyOf_TestOnly resolves options the way NewLazy does.
func PolicyOf_TestOnly(opts ...Option) Policy { return gatherOptions(opts...).policy }
