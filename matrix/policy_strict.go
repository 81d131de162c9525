// SPDX-License-Identifier: MIT

//go:build !lvmat_unchecked

package matrix

// DefaultPolicy is used by the operator methods on matrices and scalars.
const DefaultPolicy = Strict
