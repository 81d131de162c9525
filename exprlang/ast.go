// SPDX-License-Identifier: MIT
// Package exprlang: abstract syntax tree.
//
// The AST is a closed sum type: Node is sealed and implemented only by
// *Ident, *Number, *Unary and *Binary. Consumers switch on the concrete type.

package exprlang

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmat/matrix"
)

// Node is an expression AST node.
type Node interface {
	// Pos returns the byte offset of the node's first token.
	Pos() int
	// String renders the node fully parenthesized.
	String() string

	node()
}

// Ident names a matrix in the compile environment.
type Ident struct {
	Name string
	At   int
}

// Number is a numeric literal; it compiles to a broadcast scalar.
type Number struct {
	Value float64
	Text  string // source spelling
	At    int
}

// Unary is prefix negation.
type Unary struct {
	X  Node
	At int
}

// Binary is an elementwise operator application.
type Binary struct {
	Op   matrix.Op // OpAdd, OpSub, OpMul or OpDiv
	L, R Node
	At   int // offset of the operator token
}

func (n *Ident) Pos() int  { return n.At }
func (n *Number) Pos() int { return n.At }
func (n *Unary) Pos() int  { return n.At }
func (n *Binary) Pos() int { return n.L.Pos() }

func (n *Ident) String() string  { return n.Name }
func (n *Number) String() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (n *Unary) String() string  { return "(-" + n.X.String() + ")" }
func (n *Binary) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(n.L.String())
	sb.WriteString(" " + n.Op.String() + " ")
	sb.WriteString(n.R.String())
	sb.WriteByte(')')

	return sb.String()
}

func (*Ident) node()  {}
func (*Number) node() {}
func (*Unary) node()  {}
func (*Binary) node() {}

// Walk visits n and its children depth-first, left to right, stopping when
// f returns false for a node (its children are then skipped).
func Walk(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch v := n.(type) {
	case *Unary:
		Walk(v.X, f)
	case *Binary:
		Walk(v.L, f)
		Walk(v.R, f)
	}
}

// Idents returns the distinct identifiers referenced by n, sorted.
func Idents(n Node) []string {
	seen := make(map[string]struct{})
	Walk(n, func(x Node) bool {
		if id, ok := x.(*Ident); ok {
			seen[id.Name] = struct{}{}
		}
		return true
	})
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
