// SPDX-License-Identifier: MIT

// Package lvmat is a dense linear-algebra toolkit built around lazy
// elementwise expressions.
//
// 🚀 What is lvmat?
//
//	A generic, column-major matrix library that brings together:
//		• Dense[T] and Fixed[T, D] matrices over integers, floats and complex numbers
//		• A lazy expression engine: a*(b+c) - d/e builds a tree, Eval fills one buffer
//		• Strict or unchecked shape policies, selectable per engine or per build
//		• Products, LU/QR/eigen, solve, inverse and determinant via gonum
//		• A tiny expression language and YAML/TOML workspaces for the CLI
//
// ✨ Why choose lvmat?
//
//   - One allocation per evaluated expression, whatever its depth
//   - Mutation after construction is detected, not silently read
//   - Plain Go generics, no code generation
//
// Packages:
//
//	scalar/    - element constraints (Real, Complex, Field) and per-type helpers
//	matrix/    - Dense, Fixed, factories, lazy Expr, Lazy engines, compound assignment
//	linalg/    - Mul, Transpose, Norm, LU, QR, Eigen, Solve, Inverse, Det
//	exprlang/  - lexer, parser and compiler from "a + b * 2" to a lazy tree
//	workspace/ - named matrices and expressions loaded from YAML or TOML
//	cmd/lvmat  - command-line front end (eval, inspect, version)
//
// Quick example:
//
//	a, _ := matrix.Filled(2, 2, 1.0)
//	b, _ := matrix.Filled(2, 2, 10.0)
//	sum, err := a.Add(b).MulScalar(2).Eval() // every cell == 22
//
//	go get github.com/katalvlaran/lvmat
package lvmat
