// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the lazy expression engine:
// node construction, shape propagation, policies, and single-pass evaluation.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

// TestElementwiseCorrectness compares every binary op against the scalar formula.
func TestElementwiseCorrectness(t *testing.T) {
	t.Parallel()

	a := mustRandom(t, 3, 4, 1)
	b := mustRandom(t, 3, 4, 2)
	b.AddScalarAssign(3) // keep the divisor away from zero

	cases := []struct {
		name string
		expr *matrix.Expr[float64]
		f    func(x, y float64) float64
	}{
		{"add", a.Add(b), func(x, y float64) float64 { return x + y }},
		{"sub", a.Sub(b), func(x, y float64) float64 { return x - y }},
		{"mul", a.Mul(b), func(x, y float64) float64 { return x * y }},
		{"div", a.Div(b), func(x, y float64) float64 { return x / y }},
	}
	for _, tc := range cases {
		out := mustEval(t, tc.expr)
		require.Equal(t, 3, out.Rows(), tc.name)
		require.Equal(t, 4, out.Cols(), tc.name)
		for i := 0; i < 3; i++ {
			for j := 0; j < 4; j++ {
				x := MustAt[float64](t, a, i, j)
				y := MustAt[float64](t, b, i, j)
				require.Equalf(t, tc.f(x, y), MustAt[float64](t, out, i, j), "%s at (%d,%d)", tc.name, i, j)
			}
		}
	}
}

// TestScalarCommutativity checks that A + s and s + A (and *) are identical,
// and that s - A, A - s, s / A, A / s follow their operand order.
func TestScalarCommutativity(t *testing.T) {
	t.Parallel()

	a := mustRows(t, 2, 2, 1.0, 2.0, 4.0, 8.0)
	s := 2.0

	require.Equal(t, mustEval(t, a.AddScalar(s)).Values(), mustEval(t, matrix.Scalar(s).Add(a)).Values())
	require.Equal(t, mustEval(t, a.MulScalar(s)).Values(), mustEval(t, matrix.Scalar(s).Mul(a)).Values())

	require.Equal(t, []float64{1, 0, -2, -6}, mustEval(t, matrix.Scalar(s).Sub(a)).RowMajor())
	require.Equal(t, []float64{-1, 0, 2, 6}, mustEval(t, a.SubScalar(s)).RowMajor())
	require.Equal(t, []float64{2, 1, 0.5, 0.25}, mustEval(t, matrix.Scalar(s).Div(a)).RowMajor())
	require.Equal(t, []float64{0.5, 1, 2, 4}, mustEval(t, a.DivScalar(s)).RowMajor())
}

// TestAssociativityOnIntegers checks that regrouping a sum does not change the
// result when the arithmetic is exact.
func TestAssociativityOnIntegers(t *testing.T) {
	t.Parallel()

	a := mustRows(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustFilled(t, 2, 3, 10)
	c := mustFilled(t, 2, 3, 100)

	left := mustEval(t, a.Add(b).Add(c))
	right := mustEval(t, a.Add(b.Add(c)))
	require.True(t, matrix.Equal[int](left, right))

	lp := mustEval(t, a.Mul(b).Mul(c))
	rp := mustEval(t, a.Mul(b.Mul(c)))
	require.True(t, matrix.Equal[int](lp, rp))
}

// TestShapePropagation checks that every node reports its shape before evaluation.
func TestShapePropagation(t *testing.T) {
	t.Parallel()

	a := mustFilled(t, 3, 5, 1.0)
	b := mustFilled(t, 3, 5, 2.0)

	e := a.Add(b).MulScalar(3).Neg().Sub(matrix.Scalar(1.0).Div(a))
	r, c, shaped := e.Shape()
	require.True(t, shaped)
	require.Equal(t, 3, r)
	require.Equal(t, 5, c)
	require.NoError(t, e.Err())

	s := matrix.Scalar(2.0).Add(matrix.Scalar(3.0))
	_, _, shaped = s.Shape()
	require.False(t, shaped)

	// scalar-only subtree combined with a matrix takes the matrix shape
	mixed := s.Mul(a)
	r, c, shaped = mixed.Shape()
	require.Equal(t, []any{3, 5, true}, []any{r, c, shaped})
	requireUniform(t, mustEval(t, mixed), 5.0)
}

// TestScenarioNestedSum evaluates (A + B) + C over filled 2×2 matrices.
func TestScenarioNestedSum(t *testing.T) {
	t.Parallel()

	a := mustFilled(t, 2, 2, 1.0)
	b := mustFilled(t, 2, 2, 10.0)
	c := mustFilled(t, 2, 2, 100.0)

	out := mustEval(t, a.Add(b).Add(c))
	require.Equal(t, 2, out.Rows())
	require.Equal(t, 2, out.Cols())
	requireUniform(t, out, 111.0)
}

// TestScenarioDivisionChain evaluates ((A/B)/((C/D)/E))/F and compares it
// bit-for-bit with the same scalar computation.
func TestScenarioDivisionChain(t *testing.T) {
	t.Parallel()

	va, vb, vc, vd, ve, vf := 1000.0, 10000.0, 1.0, 10.0, 100.0, 100000.0
	a := mustFilled(t, 2, 2, va)
	b := mustFilled(t, 2, 2, vb)
	c := mustFilled(t, 2, 2, vc)
	d := mustFilled(t, 2, 2, vd)
	e := mustFilled(t, 2, 2, ve)
	f := mustFilled(t, 2, 2, vf)

	want := (va / vb) / ((vc / vd) / ve) / vf
	out := mustEval(t, a.Div(b).Div(c.Div(d).Div(e)).Div(f))
	requireUniform(t, out, want)
}

// TestCompoundExpression evaluates f*(a+b) - c/d + e as one tree.
func TestCompoundExpression(t *testing.T) {
	t.Parallel()

	a, b := mustRandom(t, 4, 4, 11), mustRandom(t, 4, 4, 12)
	c, d := mustRandom(t, 4, 4, 13), mustFilled(t, 4, 4, 2.0)
	e, f := mustRandom(t, 4, 4, 14), mustRandom(t, 4, 4, 15)

	out := mustEval(t, f.Mul(a.Add(b)).Sub(c.Div(d)).Add(e))
	for k, v := range out.All() {
		want := f.ValueAt(k)*(a.ValueAt(k)+b.ValueAt(k)) - c.ValueAt(k)/d.ValueAt(k) + e.ValueAt(k)
		require.InDelta(t, want, v, 1e-12) // the compiler may fuse multiply-add on some targets
	}
}

// TestOneByOne evaluates a tree over 1×1 matrices.
func TestOneByOne(t *testing.T) {
	t.Parallel()

	a := mustFilled(t, 1, 1, 6.0)
	b := mustFilled(t, 1, 1, 3.0)
	out := mustEval(t, a.Div(b).Sub(a.Mul(b)).Neg())
	require.Equal(t, 1, out.Len())
	require.Equal(t, 16.0, MustAt[float64](t, out, 0, 0))

	cases := []struct {
		name string
		expr *matrix.Expr[float64]
		want float64
	}{
		{"add", a.Add(b), 6.0 + 3.0},
		{"sub", a.Sub(b), 6.0 - 3.0},
		{"mul", a.Mul(b), 6.0 * 3.0},
		{"div", a.Div(b), 6.0 / 3.0},
		{"add chain", a.Add(b).Add(a), 6.0 + 3.0 + 6.0},
	}
	for _, tc := range cases {
		got := mustEval(t, tc.expr)
		require.Equal(t, 1, got.Len(), tc.name)
		require.Equal(t, tc.want, MustAt[float64](t, got, 0, 0), tc.name)
	}
}

// TestIdempotentEval checks that evaluating one tree twice yields identical,
// independent results.
func TestIdempotentEval(t *testing.T) {
	t.Parallel()

	a, b := mustRandom(t, 5, 3, 21), mustRandom(t, 5, 3, 22)
	e := a.Add(b).Mul(a.Sub(b)).DivScalar(7)

	first := mustEval(t, e)
	second := mustEval(t, e)
	require.Equal(t, first.Values(), second.Values())

	require.NoError(t, first.Set(0, 0, math.Pi))
	require.NotEqual(t, first.Values(), second.Values())
	require.NoError(t, e.Err(), "evaluation results do not feed back into the tree")
}

// TestSingleAllocation checks that evaluation allocates the same, small, amount
// regardless of tree depth. Not parallel: AllocsPerRun counts process-wide mallocs.
func TestSingleAllocation(t *testing.T) {
	a := mustFilled(t, 16, 16, 1.0)
	b := mustFilled(t, 16, 16, 2.0)

	shallow := a.Add(b)
	deep := a.Add(b)
	for i := 0; i < 11; i++ {
		deep = deep.Mul(a).Add(b)
	}
	require.Equal(t, 1, shallow.Depth())
	require.Equal(t, 23, deep.Depth())

	var sink *matrix.Dense[float64]
	shallowAllocs := testing.AllocsPerRun(50, func() { sink, _ = shallow.Eval() })
	deepAllocs := testing.AllocsPerRun(50, func() { sink, _ = deep.Eval() })
	require.NotNil(t, sink)

	require.Equal(t, shallowAllocs, deepAllocs)
	require.LessOrEqual(t, deepAllocs, 2.0, "result header and buffer only")
}

// TestStrictMismatchIsRecordedAtConstruction checks that combining 2×2 and 3×3
// under Strict records ErrDimensionMismatch on the node and propagates it.
func TestStrictMismatchIsRecordedAtConstruction(t *testing.T) {
	t.Parallel()
	requireStrictDefault(t)

	a := mustFilled(t, 2, 2, 1.0)
	b := mustFilled(t, 3, 3, 1.0)

	var e *matrix.Expr[float64]
	require.NotPanics(t, func() { e = a.Add(b) })
	require.ErrorIs(t, e.Err(), matrix.ErrDimensionMismatch)

	// sticky through further composition, even with well-shaped operands
	outer := e.Mul(a).AddScalar(1)
	require.ErrorIs(t, outer.Err(), matrix.ErrDimensionMismatch)

	_, err := outer.Eval()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Panics(t, func() { outer.MustEval() })

	_, err = matrix.Eval[float64](e)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestStrictMismatchExplicitEngine repeats the mismatch through an explicit Strict engine,
// independently of the build-tag default.
func TestStrictMismatchExplicitEngine(t *testing.T) {
	t.Parallel()

	strict := matrix.NewLazy[float64](matrix.WithStrict())
	a := mustFilled(t, 2, 3, 1.0)
	b := mustFilled(t, 3, 2, 1.0)

	e := strict.Mul(a, b)
	require.ErrorIs(t, e.Err(), matrix.ErrDimensionMismatch)
	require.Equal(t, matrix.Strict, e.Policy())

	_, err := strict.Eval(e)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestUncheckedMismatch checks that Unchecked construction never validates,
// derives (left rows, right cols), and that evaluation then panics reading
// past the smaller operand.
func TestUncheckedMismatch(t *testing.T) {
	t.Parallel()

	fast := matrix.NewLazy[float64](matrix.WithUnchecked())
	a := mustFilled(t, 2, 2, 1.0)
	b := mustFilled(t, 3, 3, 1.0)

	var e *matrix.Expr[float64]
	require.NotPanics(t, func() { e = fast.Add(a, b) })
	require.NoError(t, e.Err())
	r, c, shaped := e.Shape()
	require.Equal(t, []any{2, 3, true}, []any{r, c, shaped})

	// chaining keeps the node's policy
	chained := e.AddScalar(1)
	require.Equal(t, matrix.Unchecked, chained.Policy())
	require.NoError(t, chained.Err())

	require.Panics(t, func() { _, _ = e.Eval() })
}

// TestUncheckedMatchingShapes checks that unchecked evaluation of well-shaped
// trees equals the strict result.
func TestUncheckedMatchingShapes(t *testing.T) {
	t.Parallel()

	fast := matrix.NewLazy[float64](matrix.WithUnchecked())
	strict := matrix.NewLazy[float64](matrix.WithStrict())
	a, b := mustRandom(t, 3, 3, 5), mustRandom(t, 3, 3, 6)

	u, err := fast.Eval(fast.Sub(fast.Mul(a, b), fast.Neg(a)))
	require.NoError(t, err)
	s, err := strict.Eval(strict.Sub(strict.Mul(a, b), strict.Neg(a)))
	require.NoError(t, err)
	require.Equal(t, s.Values(), u.Values())
}

// TestStaleOperand checks Strict refuses a tree whose borrowed matrix was
// mutated after construction, and Unchecked reads the current contents.
func TestStaleOperand(t *testing.T) {
	t.Parallel()

	strict := matrix.NewLazy[float64](matrix.WithStrict())
	fast := matrix.NewLazy[float64](matrix.WithUnchecked())
	a := mustFilled(t, 2, 2, 1.0)
	b := mustFilled(t, 2, 2, 2.0)

	se := strict.Add(a, b)
	ue := fast.Add(a, b)
	require.NoError(t, a.Set(0, 0, 10))

	_, err := se.Eval()
	require.ErrorIs(t, err, matrix.ErrStaleOperand)

	out, err := ue.Eval()
	require.NoError(t, err)
	require.Equal(t, 12.0, MustAt[float64](t, out, 0, 0))

	// rebuilding after the mutation is fine
	out = mustEval(t, strict.Add(a, b))
	require.Equal(t, 12.0, MustAt[float64](t, out, 0, 0))
}

// TestNilOperands checks nil matrices and nodes become errors, never panics.
func TestNilOperands(t *testing.T) {
	t.Parallel()

	var nilDense *matrix.Dense[float64]
	var nilExpr *matrix.Expr[float64]
	a := mustFilled(t, 2, 2, 1.0)

	e := a.Add(nilDense)
	require.ErrorIs(t, e.Err(), matrix.ErrNilMatrix)

	e = a.Add(nil)
	require.ErrorIs(t, e.Err(), matrix.ErrNilMatrix)

	e = nilExpr.Add(a)
	require.ErrorIs(t, e.Err(), matrix.ErrNilMatrix)

	e = matrix.NewLazy[float64]().Neg(nil)
	require.ErrorIs(t, e.Err(), matrix.ErrNilMatrix)

	_, err := nilExpr.Eval()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Eval[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Eval[float64](nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestScalarOnlyRootHasNoShape checks ErrNoShape for trees without a matrix.
func TestScalarOnlyRootHasNoShape(t *testing.T) {
	t.Parallel()

	e := matrix.Scalar(1.0).Add(matrix.Scalar(2.0)).Neg()
	require.NoError(t, e.Err())
	_, err := e.Eval()
	require.ErrorIs(t, err, matrix.ErrNoShape)
	_, err = matrix.Eval[float64](matrix.Scalar(3.0))
	require.ErrorIs(t, err, matrix.ErrNoShape)
}

// TestEvalBareMatrixCopies checks Eval on a plain matrix returns an independent copy.
func TestEvalBareMatrixCopies(t *testing.T) {
	t.Parallel()

	a := mustRows(t, 2, 2, 1, 2, 3, 4)
	out, err := matrix.Eval[int](a)
	require.NoError(t, err)
	require.True(t, matrix.Equal[int](a, out))
	require.NoError(t, out.Set(0, 0, 0))
	require.Equal(t, 1, MustAt[int](t, a, 0, 0))
}

// TestEvalFixed checks fixed-shape materialization, mismatch and broadcast.
func TestEvalFixed(t *testing.T) {
	t.Parallel()

	a := matrix.FilledFixed[matrix.D2x2](3.0)
	b := matrix.FilledFixed[matrix.D2x2](4.0)

	f, err := matrix.EvalFixed[matrix.D2x2](a.Mul(b))
	require.NoError(t, err)
	require.Equal(t, []float64{12, 12, 12, 12}, f.Values())

	strict := matrix.NewLazy[float64](matrix.WithStrict())
	_, err = matrix.EvalFixed[matrix.D3x3](strict.Add(a, b))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	bc, err := matrix.EvalFixed[matrix.D1x3](matrix.Scalar(2.0).Mul(matrix.Scalar(5.0)))
	require.NoError(t, err)
	require.Equal(t, []float64{10, 10, 10}, bc.Values())

	// Dense and Fixed mix freely in one tree
	d := mustFilled(t, 2, 2, 1.0)
	mixed, err := matrix.EvalFixed[matrix.D2x2](a.Add(d))
	require.NoError(t, err)
	require.Equal(t, []float64{4, 4, 4, 4}, mixed.Values())
}

// TestIntegerAndComplexElements checks native arithmetic of non-float kinds.
func TestIntegerAndComplexElements(t *testing.T) {
	t.Parallel()

	a := mustRows(t, 1, 3, 7, -7, 9)
	b := mustFilled(t, 1, 3, 2)
	require.Equal(t, []int{3, -3, 4}, mustEval(t, a.Div(b)).RowMajor())

	zero := mustFilled(t, 1, 3, 0)
	require.Panics(t, func() { _, _ = a.Div(zero).Eval() }, "integer division by zero is Go's runtime panic")

	x := mustFilled(t, 2, 1, complex(1, 1))
	y := mustFilled(t, 2, 1, complex(0, 1))
	requireUniform(t, mustEval(t, x.Mul(y)), complex(-1, 1))
}

// TestFloatSpecialValues checks IEEE propagation through a tree.
func TestFloatSpecialValues(t *testing.T) {
	t.Parallel()

	a := mustRows(t, 1, 3, 1.0, 0.0, -1.0)
	out := mustEval(t, a.Div(mustFilled(t, 1, 3, 0.0)))
	require.True(t, math.IsInf(MustAt[float64](t, out, 0, 0), 1))
	require.True(t, math.IsNaN(MustAt[float64](t, out, 0, 1)))
	require.True(t, math.IsInf(MustAt[float64](t, out, 0, 2), -1))
}

// TestExprIntrospection covers Op, Depth and String.
func TestExprIntrospection(t *testing.T) {
	t.Parallel()

	a := mustFilled(t, 2, 2, 1.0)
	b := mustFilled(t, 2, 2, 1.0)
	e := a.Add(b).MulScalar(3)

	require.Equal(t, matrix.OpMul, e.Op())
	require.Equal(t, 2, e.Depth())
	require.Equal(t, "(([2x2] + [2x2]) * 3)", e.String())
	require.Equal(t, "(-[2x2])", a.Neg().String())

	require.Equal(t, "+", matrix.OpAdd.String())
	require.Equal(t, "-", matrix.OpNeg.String())
	require.Equal(t, "/", matrix.OpDiv.String())
}

// TestLazyApply covers the op-parametrized constructor.
func TestLazyApply(t *testing.T) {
	t.Parallel()

	l := matrix.NewLazy[int]()
	a := mustFilled(t, 2, 2, 6)
	b := mustFilled(t, 2, 2, 3)

	want := map[matrix.Op]int{
		matrix.OpAdd: 9,
		matrix.OpSub: 3,
		matrix.OpMul: 18,
		matrix.OpDiv: 2,
		matrix.OpNeg: -6,
	}
	for op, v := range want {
		out, err := l.Eval(l.Apply(op, a, b))
		require.NoError(t, err, op.String())
		requireUniform(t, out, v)
	}
	require.Equal(t, 4, l.Scalar(4).Value())
}
