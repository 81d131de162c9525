// SPDX-License-Identifier: MIT

// Package exprlang parses infix matrix expressions such as
//
//	f * (a + b) - c / d + e
//
// and lowers them into a single deferred matrix.Expr tree, so that a whole
// statement read from a file or a command line is evaluated in one pass with
// one allocation, exactly like its hand-written Go counterpart
// F.Mul(A.Add(B)).Sub(C.Div(D)).Add(E).
//
// Grammar (usual precedence, left associative):
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := '-' unary | primary
//	primary := NUMBER | IDENT | '(' expr ')'
//
// '*' is the elementwise (Hadamard) product. Numbers become broadcast scalars;
// identifiers are resolved against an Env at compile time.
//
// Pipeline:
//
//	node, err := exprlang.Parse(src)            // syntax → AST
//	op, err   := exprlang.Compile(node, env, lz) // AST → matrix operand
//	out, err  := lz.Eval(op)                     // one pass, one allocation
package exprlang
