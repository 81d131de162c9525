// SPDX-License-Identifier: MIT
// Package exprlang: error set.

package exprlang

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is matched (errors.Is) by every *SyntaxError.
	ErrSyntax = errors.New("exprlang: syntax error")

	// ErrUnknownIdent is returned by Compile for identifiers missing from the Env.
	ErrUnknownIdent = errors.New("exprlang: unknown identifier")
)

// SyntaxError reports a lexing or parsing failure at a byte offset of the input.
type SyntaxError struct {
	Pos int    // byte offset (0-based)
	Msg string // what was expected or found
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("exprlang: syntax error at offset %d: %s", e.Pos, e.Msg)
}

// Unwrap makes errors.Is(err, ErrSyntax) hold.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

func syntaxErrorf(pos int, format string, args ...any) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
