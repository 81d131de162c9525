// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

// --- matrix right-hand side ---------------------------------------------------

func TestAssign_MatrixRHS(t *testing.T) {
	t.Parallel()

	a := mustRows(t, 2, 2, 8.0, 6.0, 4.0, 2.0)
	b := mustFilled(t, 2, 2, 2.0)

	require.NoError(t, a.AddAssign(b))
	require.Equal(t, []float64{10, 8, 6, 4}, a.RowMajor())
	require.NoError(t, a.SubAssign(b))
	require.Equal(t, []float64{8, 6, 4, 2}, a.RowMajor())
	require.NoError(t, a.MulAssign(b))
	require.Equal(t, []float64{16, 12, 8, 4}, a.RowMajor())
	require.NoError(t, a.DivAssign(b))
	require.Equal(t, []float64{8, 6, 4, 2}, a.RowMajor())

	// b is only read
	requireUniform(t, b, 2.0)
}

// --- expression right-hand side -----------------------------------------------

func TestAssign_ExprRHS_NoTemporary(t *testing.T) {
	a := mustFilled(t, 8, 8, 1.0)
	b := mustFilled(t, 8, 8, 2.0)
	c := mustFilled(t, 8, 8, 3.0)

	rhs := b.Mul(c).AddScalar(1) // 7 everywhere
	require.NoError(t, a.AddAssign(rhs))
	requireUniform(t, a, 8.0)

	// streaming an expression into a destination allocates nothing
	zero := b.SubScalar(2)
	allocs := testing.AllocsPerRun(20, func() {
		if err := c.SubAssign(zero); err != nil {
			t.Fatal(err)
		}
	})
	require.Zero(t, allocs)
}

// --- aliasing ------------------------------------------------------------------

func TestAssign_AliasedRHS(t *testing.T) {
	t.Parallel()

	a := mustRows(t, 2, 2, 1.0, 2.0, 3.0, 4.0)
	b := mustFilled(t, 2, 2, 10.0)

	// a += a ⊙ b reads a[i] before writing a[i]
	require.NoError(t, a.AddAssign(a.Mul(b)))
	require.Equal(t, []float64{11, 22, 33, 44}, a.RowMajor())

	require.NoError(t, a.SubAssign(a))
	requireUniform(t, a, 0.0)
}

// --- scalar right-hand side ----------------------------------------------------

func TestAssign_Scalar(t *testing.T) {
	t.Parallel()

	a := mustFilled(t, 3, 1, 6)
	a.AddScalarAssign(4)
	requireUniform(t, a, 10)
	a.SubScalarAssign(1)
	requireUniform(t, a, 9)
	a.MulScalarAssign(2)
	requireUniform(t, a, 18)
	a.DivScalarAssign(3)
	requireUniform(t, a, 6)

	// a Const rhs broadcasts through the Operand path too
	require.NoError(t, a.MulAssign(matrix.Scalar(2)))
	requireUniform(t, a, 12)
}

// --- errors --------------------------------------------------------------------

func TestAssign_StrictMismatch(t *testing.T) {
	t.Parallel()
	requireStrictDefault(t)

	a := mustFilled(t, 2, 2, 1.0)
	b := mustFilled(t, 3, 3, 1.0)

	err := a.AddAssign(b)
	if !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
	requireUniform(t, a, 1.0) // untouched on error
}

func TestAssign_StickyRHSError(t *testing.T) {
	t.Parallel()

	strict := matrix.NewLazy[float64](matrix.WithStrict())
	a := mustFilled(t, 2, 2, 1.0)
	bad := strict.Add(a, mustFilled(t, 1, 4, 1.0))

	require.ErrorIs(t, strict.SubAssign(a, bad), matrix.ErrDimensionMismatch)
	// sticky errors are honoured under any policy
	fast := matrix.NewLazy[float64](matrix.WithUnchecked())
	require.ErrorIs(t, fast.SubAssign(a, bad), matrix.ErrDimensionMismatch)
	requireUniform(t, a, 1.0)
}

func TestAssign_StaleRHS(t *testing.T) {
	t.Parallel()

	strict := matrix.NewLazy[float64](matrix.WithStrict())
	a := mustFilled(t, 2, 2, 1.0)
	b := mustFilled(t, 2, 2, 2.0)
	rhs := strict.Mul(b, b)
	b.Fill(5)

	require.ErrorIs(t, strict.AddAssign(a, rhs), matrix.ErrStaleOperand)
}

func TestAssign_Nil(t *testing.T) {
	t.Parallel()

	l := matrix.NewLazy[float64]()
	a := mustFilled(t, 2, 2, 1.0)
	var nilDense *matrix.Dense[float64]

	require.ErrorIs(t, l.AddAssign(nil, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, l.AddAssign(nilDense, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, l.MulAssign(a, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, a.DivAssign(nilDense), matrix.ErrNilMatrix)
}

// --- unchecked -----------------------------------------------------------------

func TestAssign_Unchecked(t *testing.T) {
	t.Parallel()

	fast := matrix.NewLazy[float64](matrix.WithUnchecked())
	small := mustFilled(t, 2, 2, 1.0)
	big := mustFilled(t, 3, 3, 1.0)

	// a larger rhs contributes its first len(dst) cells
	require.NoError(t, fast.AddAssign(small, big))
	requireUniform(t, small, 2.0)

	// a smaller rhs reads past its end
	require.Panics(t, func() { _ = fast.AddAssign(big, small) })
}

// --- fixed destination ---------------------------------------------------------

func TestAssign_FixedDestination(t *testing.T) {
	t.Parallel()

	f := matrix.FilledFixed[matrix.D2x2](3.0)
	d := mustFilled(t, 2, 2, 1.0)

	require.NoError(t, f.DivAssign(d.MulScalar(2)))
	require.Equal(t, []float64{1.5, 1.5, 1.5, 1.5}, f.Values())

	l := matrix.NewLazy[float64]()
	require.NoError(t, l.SubAssign(f, f))
	require.Equal(t, make([]float64, 4), f.Values())
}
