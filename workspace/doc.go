// SPDX-License-Identifier: MIT

// Package workspace loads named matrices and named expressions from a YAML
// or TOML file and evaluates the expressions with a matrix.Lazy engine.
//
// A workspace file looks like:
//
//	policy: strict            # or unchecked; empty means strict
//	matrices:
//	  a: {rows: 2, cols: 2, data: [1, 2, 3, 4]}   # row-major
//	  b: {rows: 2, cols: 2, fill: 10}
//	  i: {rows: 2, cols: 2, identity: true}
//	  r: {rows: 2, cols: 2, random: {low: -1, high: 1, seed: 7}}
//	  z: {rows: 2, cols: 2}                       # zeros
//	expressions:
//	  sum: "a + b"
//	  scaled: "(a - i) * 0.5 + r"
//
// The TOML spelling uses the same keys:
//
//	policy = "strict"
//	[matrices.a]
//	rows = 2
//	cols = 2
//	data = [1.0, 2.0, 3.0, 4.0]
//	[expressions]
//	sum = "a + b"
//
// Matrices are materialized once at load time. Expressions are parsed at
// load time (syntax errors and unknown identifiers fail Load) and compiled
// into a fresh lazy tree on every Evaluate, so mutating a matrix between two
// evaluations is always safe.
package workspace
