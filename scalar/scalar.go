// SPDX-License-Identifier: MIT

// Package scalar declares the element types that may live inside an lvmat matrix.
//
// Purpose:
//   - Describe the field capability (+ - * / closed over the type) as Go type sets.
//   - Provide the few neutral elements the matrix package needs (Zero, One).
//
// Numeric policy:
//   - Nothing here fails. Floats propagate NaN/±Inf, integers wrap on overflow,
//     and integer division by zero is Go's runtime panic, exactly as the
//     element type behaves on its own.
//
// AI-Hints:
//   - Use Real when a routine must convert from float64 (random draws, tolerances).
//   - Use Field everywhere else; complex matrices are first-class citizens.
package scalar

// Signed lists the signed integer kinds.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned lists the unsigned integer kinds.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is any built-in integer kind.
type Integer interface {
	Signed | Unsigned
}

// Float is any built-in floating-point kind.
type Float interface {
	~float32 | ~float64
}

// Real is every ordered numeric kind. A float64 can be converted into any of them.
type Real interface {
	Integer | Float
}

// Complex is any built-in complex kind.
type Complex interface {
	~complex64 | ~complex128
}

// Field is the capability an element type needs to take part in matrix
// arithmetic: +, -, * and / returning the same type, and plain value copies.
type Field interface {
	Real | Complex
}

// Zero returns the additive identity of T.
func Zero[T Field]() T {
	var z T

	return z
}

// One returns the multiplicative identity of T.
func One[T Field]() T {
	return T(1)
}

// IsInteger reports whether T truncates fractional values (an integer kind).
// The check converts a non-constant 0.5 so that it type-checks for every Real.
func IsInteger[T Real]() bool {
	half := 0.5

	return T(half) == 0
}
