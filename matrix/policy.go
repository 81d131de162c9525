// SPDX-License-Identifier: MIT

package matrix

// Policy selects how much shape validation expression engines perform.
//
//   - Strict validates every node that combines two shaped operands, every
//     compound assignment, and (at Eval time) that no borrowed matrix has been
//     mutated since the tree was built. Violations are returned as errors.
//   - Unchecked performs no validation at all. A node over mismatched shapes
//     takes rows from its left operand and cols from its right one, and
//     evaluating it reads past the smaller operand, which in Go is a runtime
//     index panic.
//
// DefaultPolicy is Strict unless the module is built with -tags lvmat_unchecked.
type Policy uint8

const (
	// Strict validates shapes and borrows; the default.
	Strict Policy = iota
	// Unchecked skips all validation.
	Unchecked
)

// String returns "strict" or "unchecked".
func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Unchecked:
		return "unchecked"
	default:
		return "unknown"
	}
}

// ParsePolicy maps "strict"/"unchecked" (as printed by String) back to a Policy.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "strict", "":
		return Strict, true
	case "unchecked":
		return Unchecked, true
	default:
		return Strict, false
	}
}
