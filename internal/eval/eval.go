// Package eval implements the evaluator: dispatch by value kind,
// application of builtins and closures, and the glue that threads a heap
// and scope chain through both instead of reaching for package-level
// state. It is the concrete value.Applier every builtin in
// internal/builtin is handed.
package eval

import (
	"github.com/m0r0zk01/scheme-interpreter/internal/heap"
	"github.com/m0r0zk01/scheme-interpreter/internal/scmerr"
	"github.com/m0r0zk01/scheme-interpreter/internal/scope"
	"github.com/m0r0zk01/scheme-interpreter/internal/value"
)

// Evaluator owns a heap and dispatches Eval/Apply against it. One
// Evaluator is built per Scheme heap; nothing about it is global.
type Evaluator struct {
	Heap *heap.Heap
}

// New returns an Evaluator over h.
func New(h *heap.Heap) *Evaluator {
	return &Evaluator{Heap: h}
}

var _ value.Applier = (*Evaluator)(nil)

func (e *Evaluator) Get(h value.Handle) *value.Value { return e.Heap.Get(h) }

func (e *Evaluator) NewNumber(n int64) value.Handle  { return e.Heap.AllocNumber(n) }
func (e *Evaluator) NewBoolean(b bool) value.Handle  { return e.Heap.AllocBoolean(b) }
func (e *Evaluator) NewSymbol(s string) value.Handle { return e.Heap.AllocSymbol(s) }
func (e *Evaluator) NewPair(car, cdr value.Handle) value.Handle {
	return e.Heap.AllocPair(car, cdr)
}
func (e *Evaluator) NewScope(parent value.Handle) value.Handle {
	return scope.Child(e.Heap, parent)
}
func (e *Evaluator) NewClosure(params, body []value.Handle, env value.Handle) value.Handle {
	return e.Heap.AllocClosure(params, body, env)
}

func (e *Evaluator) Lookup(sc value.Handle, name string) (value.Handle, error) {
	return scope.Lookup(e.Heap, sc, name)
}
func (e *Evaluator) Define(sc value.Handle, name string, val value.Handle) {
	scope.Define(e.Heap, sc, name, val)
}
func (e *Evaluator) Assign(sc value.Handle, name string, val value.Handle) error {
	return scope.Assign(e.Heap, sc, name, val)
}

// Eval dispatches on expr's kind: atoms and callables evaluate to
// themselves, symbols are looked up, pairs are applied as calls.
func (e *Evaluator) Eval(expr value.Handle, sc value.Handle) (value.Handle, error) {
	if expr == value.Null {
		// () is not a self-evaluating value in this language: it only
		// ever arises as the cdr terminator of a list, or as a bare
		// top-level expression, and evaluating the latter is a type
		// error — there is no function to apply and nothing to look up.
		return value.Null, scmerr.Runtimef("cannot evaluate the empty list")
	}

	v := e.Heap.Get(expr)
	if v == nil {
		return value.Null, scmerr.Runtimef("dangling reference")
	}

	switch v.Kind {
	case value.Number, value.Boolean, value.Builtin, value.Closure, value.Scope:
		return expr, nil

	case value.Symbol:
		return scope.Lookup(e.Heap, sc, v.Sym)

	case value.Pair:
		callee, err := e.Eval(v.Car, sc)
		if err != nil {
			return value.Null, err
		}
		calleeVal := e.Heap.Get(callee)
		if calleeVal == nil || (calleeVal.Kind != value.Builtin && calleeVal.Kind != value.Closure) {
			return value.Null, scmerr.Runtimef("cannot apply a non-callable value")
		}
		if calleeVal.Kind == value.Builtin {
			return calleeVal.Fn(e, v.Cdr, sc)
		}
		return e.applyClosure(calleeVal, v.Cdr, sc)

	default:
		return value.Null, scmerr.Runtimef("unknown value kind")
	}
}

// Apply applies callee to already-evaluated args. It is part of the
// value.Applier surface handed to every builtin; no builtin in the
// current catalogue calls it.
func (e *Evaluator) Apply(callee value.Handle, args []value.Handle) (value.Handle, error) {
	v := e.Heap.Get(callee)
	if v == nil || (v.Kind != value.Builtin && v.Kind != value.Closure) {
		return value.Null, scmerr.Runtimef("cannot apply a non-callable value")
	}
	if v.Kind == value.Builtin {
		// Builtins re-evaluate the expressions they're handed, so each
		// already-evaluated value is wrapped in a call to a literal
		// builtin that hands its own car back verbatim. A (quote v) wrap
		// would need the symbol "quote" bound in whatever scope the
		// builtin evaluates against; this wrap resolves in any scope,
		// including no scope at all.
		lit := e.Heap.AllocBuiltin("literal", func(_ value.Applier, raw, _ value.Handle) (value.Handle, error) {
			return e.Heap.Get(raw).Car, nil
		})
		argList := value.Handle(value.Null)
		for i := len(args) - 1; i >= 0; i-- {
			wrapped := e.Heap.AllocPair(lit, e.Heap.AllocPair(args[i], value.Null))
			argList = e.Heap.AllocPair(wrapped, argList)
		}
		return v.Fn(e, argList, value.Null)
	}
	return e.applyClosureValues(v, args)
}

func (e *Evaluator) applyClosure(closure *value.Value, argExprs value.Handle, callerScope value.Handle) (value.Handle, error) {
	var args []value.Handle
	cur := argExprs
	for cur != value.Null {
		cell := e.Heap.Get(cur)
		if cell == nil || cell.Kind != value.Pair {
			return value.Null, scmerr.Runtimef("application arguments must be a proper list")
		}
		argVal, err := e.Eval(cell.Car, callerScope)
		if err != nil {
			return value.Null, err
		}
		args = append(args, argVal)
		cur = cell.Cdr
	}
	return e.applyClosureValues(closure, args)
}

func (e *Evaluator) applyClosureValues(closure *value.Value, args []value.Handle) (value.Handle, error) {
	if len(args) != len(closure.Params) {
		return value.Null, scmerr.Runtimef("closure expects %d argument(s), got %d", len(closure.Params), len(args))
	}
	callScope := scope.Child(e.Heap, closure.Env)
	for i, param := range closure.Params {
		name := e.Heap.Get(param).Sym
		scope.Define(e.Heap, callScope, name, args[i])
	}
	var result value.Handle
	for _, expr := range closure.Body {
		v, err := e.Eval(expr, callScope)
		if err != nil {
			return value.Null, err
		}
		result = v
	}
	return result, nil
}
