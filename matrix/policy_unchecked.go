// SPDX-License-Identifier: MIT

//go:build lvmat_unchecked

package matrix

// DefaultPolicy is used by the operator methods on matrices and scalars.
// This build profile trades every shape assertion for speed.
const DefaultPolicy = Unchecked
