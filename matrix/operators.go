// SPDX-License-Identifier: MIT

// Package matrix - operator surface.
//
// Go has no operator overloading, so `&f * (&a + &b) - (&c / &d) + &e` is spelled
//
//	F.Mul(A.Add(B)).Sub(C.Div(D)).Add(E)
//
// Every method here only builds a node; nothing is computed until Eval.
// Methods on matrices and Const build DefaultPolicy nodes; methods on an *Expr
// keep that node's policy. A scalar on the right uses the *Scalar variants,
// a scalar on the left is spelled Scalar(s).Op(x).

package matrix

// ---------- storage (shared by *Dense and *Fixed) ----------

// Add returns the lazy elementwise sum m + rhs.
func (b *buffer[T]) Add(rhs Operand[T]) *Expr[T] { return newBinary[T](DefaultPolicy, OpAdd, b, rhs) }

// Sub returns the lazy elementwise difference m - rhs.
func (b *buffer[T]) Sub(rhs Operand[T]) *Expr[T] { return newBinary[T](DefaultPolicy, OpSub, b, rhs) }

// Mul returns the lazy Hadamard product m ⊙ rhs (not a matrix product; see linalg.Mul).
func (b *buffer[T]) Mul(rhs Operand[T]) *Expr[T] { return newBinary[T](DefaultPolicy, OpMul, b, rhs) }

// Div returns the lazy elementwise quotient m / rhs.
func (b *buffer[T]) Div(rhs Operand[T]) *Expr[T] { return newBinary[T](DefaultPolicy, OpDiv, b, rhs) }

// AddScalar returns the lazy m + s.
func (b *buffer[T]) AddScalar(s T) *Expr[T] {
	return newBinary[T](DefaultPolicy, OpAdd, b, Scalar(s))
}

// SubScalar returns the lazy m - s.
func (b *buffer[T]) SubScalar(s T) *Expr[T] {
	return newBinary[T](DefaultPolicy, OpSub, b, Scalar(s))
}

// MulScalar returns the lazy m * s.
func (b *buffer[T]) MulScalar(s T) *Expr[T] {
	return newBinary[T](DefaultPolicy, OpMul, b, Scalar(s))
}

// DivScalar returns the lazy m / s.
func (b *buffer[T]) DivScalar(s T) *Expr[T] {
	return newBinary[T](DefaultPolicy, OpDiv, b, Scalar(s))
}

// Neg returns the lazy -m.
func (b *buffer[T]) Neg() *Expr[T] { return newNeg[T](DefaultPolicy, b) }

// ---------- scalar leaf ----------

// Add returns the lazy s + rhs (rhs broadcasts s when shaped).
func (c Const[T]) Add(rhs Operand[T]) *Expr[T] { return newBinary[T](DefaultPolicy, OpAdd, c, rhs) }

// Sub returns the lazy s - rhs.
func (c Const[T]) Sub(rhs Operand[T]) *Expr[T] { return newBinary[T](DefaultPolicy, OpSub, c, rhs) }

// Mul returns the lazy s * rhs.
func (c Const[T]) Mul(rhs Operand[T]) *Expr[T] { return newBinary[T](DefaultPolicy, OpMul, c, rhs) }

// Div returns the lazy s / rhs.
func (c Const[T]) Div(rhs Operand[T]) *Expr[T] { return newBinary[T](DefaultPolicy, OpDiv, c, rhs) }

// Neg returns the lazy -s (unshaped).
func (c Const[T]) Neg() *Expr[T] { return newNeg[T](DefaultPolicy, c) }

// ---------- interior node ----------

// policyOf lets methods on a nil *Expr build an error node instead of panicking.
func (e *Expr[T]) policyOf() Policy {
	if e == nil {
		return DefaultPolicy
	}

	return e.policy
}

// self converts e to an Operand, keeping a nil *Expr detectable by borrow.
func (e *Expr[T]) self() Operand[T] {
	if e == nil {
		return nil
	}

	return e
}

// Add returns the lazy e + rhs.
func (e *Expr[T]) Add(rhs Operand[T]) *Expr[T] { return newBinary(e.policyOf(), OpAdd, e.self(), rhs) }

// Sub returns the lazy e - rhs.
func (e *Expr[T]) Sub(rhs Operand[T]) *Expr[T] { return newBinary(e.policyOf(), OpSub, e.self(), rhs) }

// Mul returns the lazy e ⊙ rhs.
func (e *Expr[T]) Mul(rhs Operand[T]) *Expr[T] { return newBinary(e.policyOf(), OpMul, e.self(), rhs) }

// Div returns the lazy e / rhs.
func (e *Expr[T]) Div(rhs Operand[T]) *Expr[T] { return newBinary(e.policyOf(), OpDiv, e.self(), rhs) }

// AddScalar returns the lazy e + s.
func (e *Expr[T]) AddScalar(s T) *Expr[T] {
	return newBinary(e.policyOf(), OpAdd, e.self(), Operand[T](Scalar(s)))
}

// SubScalar returns the lazy e - s.
func (e *Expr[T]) SubScalar(s T) *Expr[T] {
	return newBinary(e.policyOf(), OpSub, e.self(), Operand[T](Scalar(s)))
}

// MulScalar returns the lazy e * s.
func (e *Expr[T]) MulScalar(s T) *Expr[T] {
	return newBinary(e.policyOf(), OpMul, e.self(), Operand[T](Scalar(s)))
}

// DivScalar returns the lazy e / s.
func (e *Expr[T]) DivScalar(s T) *Expr[T] {
	return newBinary(e.policyOf(), OpDiv, e.self(), Operand[T](Scalar(s)))
}

// Neg returns the lazy -e.
func (e *Expr[T]) Neg() *Expr[T] { return newNeg(e.policyOf(), e.self()) }
