// SPDX-License-Identifier: MIT

package workspace

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned for file extensions other than .yaml, .yml and .toml.
	ErrUnknownFormat = errors.New("workspace: unknown file format")

	// ErrDecode wraps YAML/TOML decoding failures.
	ErrDecode = errors.New("workspace: decode failed")

	// ErrInvalidPolicy is returned for a policy other than "strict" or "unchecked".
	ErrInvalidPolicy = errors.New("workspace: invalid policy")

	// ErrInvalidName is returned when a matrix or expression name is not an identifier.
	ErrInvalidName = errors.New("workspace: invalid name")

	// ErrDuplicateName is returned when a name is used by both a matrix and an expression.
	ErrDuplicateName = errors.New("workspace: duplicate name")

	// ErrInvalidMatrix is returned for a matrix entry that cannot be materialized.
	ErrInvalidMatrix = errors.New("workspace: invalid matrix")

	// ErrInvalidExpression is returned for an expression that fails to parse or
	// references an unknown matrix.
	ErrInvalidExpression = errors.New("workspace: invalid expression")

	// ErrNotFound is returned by Evaluate for names the workspace does not define.
	ErrNotFound = errors.New("workspace: name not found")
)

// entryErrorf wraps cause under sentinel for the named entry, keeping both matchable with errors.Is.
func entryErrorf(sentinel error, name string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w %q", sentinel, name)
	}

	return fmt.Errorf("%w %q: %w", sentinel, name, cause)
}
