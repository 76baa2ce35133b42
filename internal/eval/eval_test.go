package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0r0zk01/scheme-interpreter/internal/builtin"
	"github.com/m0r0zk01/scheme-interpreter/internal/heap"
	"github.com/m0r0zk01/scheme-interpreter/internal/parser"
	"github.com/m0r0zk01/scheme-interpreter/internal/scmerr"
	"github.com/m0r0zk01/scheme-interpreter/internal/scope"
	"github.com/m0r0zk01/scheme-interpreter/internal/value"
)

// newInterp wires a heap, evaluator, and a global scope pre-seeded with the
// builtin catalogue — the same shape scheme.New assembles, kept minimal
// here so eval can be tested without depending on the root package.
func newInterp(t *testing.T) (*Evaluator, value.Handle) {
	t.Helper()
	h := heap.New(0)
	ev := New(h)
	g := scope.New(h)
	for name, fn := range builtin.Catalog() {
		scope.Define(h, g, name, h.AllocBuiltin(name, fn))
	}
	return ev, g
}

func run(t *testing.T, src string) (value.Handle, *Evaluator) {
	t.Helper()
	ev, g := newInterp(t)
	expr, err := parser.Read(ev.Heap, src)
	require.NoError(t, err)
	res, err := ev.Eval(expr, g)
	require.NoError(t, err)
	return res, ev
}

func TestEvalSelfEvaluatingAtoms(t *testing.T) {
	res, ev := run(t, "42")
	assert.Equal(t, int64(42), ev.Get(res).Int)

	res, ev = run(t, "#t")
	assert.True(t, ev.Get(res).Bool)
}

func TestEvalArithmeticApplication(t *testing.T) {
	res, ev := run(t, "(+ 1 2 3)")
	assert.Equal(t, int64(6), ev.Get(res).Int)
}

func TestEvalDefineThenLookup(t *testing.T) {
	ev, g := newInterp(t)

	expr, err := parser.Read(ev.Heap, "(define x 10)")
	require.NoError(t, err)
	_, err = ev.Eval(expr, g)
	require.NoError(t, err)

	expr2, err := parser.Read(ev.Heap, "x")
	require.NoError(t, err)
	res, err := ev.Eval(expr2, g)
	require.NoError(t, err)
	assert.Equal(t, int64(10), ev.Get(res).Int)
}

func TestEvalImmediatelyInvokedLambda(t *testing.T) {
	res, ev := run(t, "((lambda (x) (+ x 1)) 41)")
	assert.Equal(t, int64(42), ev.Get(res).Int)
}

func TestEvalClosureCapturesDefiningScopeNotCallerScope(t *testing.T) {
	ev, g := newInterp(t)

	for _, src := range []string{
		"(define y 1)",
		"(define f (lambda () y))",
		"(define g (lambda (y) (f)))",
	} {
		expr, err := parser.Read(ev.Heap, src)
		require.NoError(t, err)
		_, err = ev.Eval(expr, g)
		require.NoError(t, err)
	}

	expr, err := parser.Read(ev.Heap, "(g 999)")
	require.NoError(t, err)
	res, err := ev.Eval(expr, g)
	require.NoError(t, err)
	// f closed over the global y (1), not g's local parameter y (999).
	assert.Equal(t, int64(1), ev.Get(res).Int)
}

func TestEvalRecursiveDefineSugar(t *testing.T) {
	ev, g := newInterp(t)

	expr, err := parser.Read(ev.Heap, "(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))")
	require.NoError(t, err)
	_, err = ev.Eval(expr, g)
	require.NoError(t, err)

	call, err := parser.Read(ev.Heap, "(fact 5)")
	require.NoError(t, err)
	res, err := ev.Eval(call, g)
	require.NoError(t, err)
	assert.Equal(t, int64(120), ev.Get(res).Int)
}

func TestEvalSetBangOnUnboundNameIsNameError(t *testing.T) {
	ev, g := newInterp(t)
	expr, err := parser.Read(ev.Heap, "(set! undefined 1)")
	require.NoError(t, err)
	_, err = ev.Eval(expr, g)
	require.Error(t, err)
	assert.True(t, scmerr.Is(err, scmerr.Name))
}

func TestEvalCarOnNonPairIsRuntimeError(t *testing.T) {
	ev, g := newInterp(t)
	expr, err := parser.Read(ev.Heap, "(car 5)")
	require.NoError(t, err)
	_, err = ev.Eval(expr, g)
	require.Error(t, err)
	assert.True(t, scmerr.Is(err, scmerr.Runtime))
}

func TestEvalApplyingNonCallableIsRuntimeError(t *testing.T) {
	ev, g := newInterp(t)
	expr, err := parser.Read(ev.Heap, "(1 2 3)")
	require.NoError(t, err)
	_, err = ev.Eval(expr, g)
	require.Error(t, err)
	assert.True(t, scmerr.Is(err, scmerr.Runtime))
}

func TestEvalEmptyListIsRuntimeError(t *testing.T) {
	ev, g := newInterp(t)
	_, err := ev.Eval(value.Null, g)
	require.Error(t, err)
	assert.True(t, scmerr.Is(err, scmerr.Runtime))
}

func TestEvalAndOrShortCircuit(t *testing.T) {
	ev, g := newInterp(t)

	// (and #f (car 5)) must not evaluate (car 5) — if it did, it would
	// raise a RuntimeError instead of returning #f.
	expr, err := parser.Read(ev.Heap, "(and #f (car 5))")
	require.NoError(t, err)
	res, err := ev.Eval(expr, g)
	require.NoError(t, err)
	assert.False(t, ev.Get(res).Bool)

	expr2, err := parser.Read(ev.Heap, "(or #t (car 5))")
	require.NoError(t, err)
	res2, err := ev.Eval(expr2, g)
	require.NoError(t, err)
	assert.True(t, ev.Get(res2).Bool)
}

func TestApplyClosureWithPreEvaluatedArgs(t *testing.T) {
	ev, g := newInterp(t)

	expr, err := parser.Read(ev.Heap, "(lambda (x y) (+ x y))")
	require.NoError(t, err)
	closure, err := ev.Eval(expr, g)
	require.NoError(t, err)

	res, err := ev.Apply(closure, []value.Handle{ev.NewNumber(2), ev.NewNumber(40)})
	require.NoError(t, err)
	assert.Equal(t, int64(42), ev.Get(res).Int)
}

func TestApplyBuiltinWithPreEvaluatedArgs(t *testing.T) {
	ev, g := newInterp(t)

	cons, err := scope.Lookup(ev.Heap, g, "cons")
	require.NoError(t, err)

	// A pre-evaluated pair argument must arrive at the builtin as data,
	// not get re-applied as code.
	inner := ev.NewPair(ev.NewNumber(1), ev.NewNumber(2))
	res, err := ev.Apply(cons, []value.Handle{ev.NewNumber(0), inner})
	require.NoError(t, err)

	v := ev.Get(res)
	require.Equal(t, value.Pair, v.Kind)
	assert.Equal(t, int64(0), ev.Get(v.Car).Int)
	assert.Equal(t, inner, v.Cdr)
}

func TestApplyNonCallableIsRuntimeError(t *testing.T) {
	ev, _ := newInterp(t)
	_, err := ev.Apply(ev.NewNumber(5), nil)
	require.Error(t, err)
	assert.True(t, scmerr.Is(err, scmerr.Runtime))
}

func TestEvalQuoteReturnsUnevaluated(t *testing.T) {
	res, ev := run(t, "'(1 2 3)")
	v := ev.Get(res)
	require.Equal(t, value.Pair, v.Kind)
	assert.Equal(t, int64(1), ev.Get(v.Car).Int)
}
