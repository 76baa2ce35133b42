package builtin

import (
	"github.com/m0r0zk01/scheme-interpreter/internal/scmerr"
	"github.com/m0r0zk01/scheme-interpreter/internal/value"
)

// addSpecialForms wires the forms that receive their arguments unevaluated
// and decide for themselves what (if anything) to evaluate: quote, if,
// define, set!, lambda. The short-circuit and/or (predicates.go) are the
// only other such forms; every remaining entry in Table is an ordinary
// procedure that evaluates eagerly at the top of its own body.
func addSpecialForms(t Table) {
	quoteFn := func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		elems, err := listToSlice(ap, args)
		if err != nil {
			return value.Null, err
		}
		if len(elems) != 1 {
			return value.Null, scmerr.Syntaxf("quote: requires exactly one argument")
		}
		return elems[0], nil
	}
	// Both "'" and "quote" name the same special form: the reader's 'x
	// shorthand expands to (quote x) at parse time, but the bare name "'"
	// is still bound.
	t["quote"] = quoteFn
	t["'"] = quoteFn

	t["if"] = func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		elems, err := listToSlice(ap, args)
		if err != nil {
			return value.Null, err
		}
		if len(elems) != 3 {
			return value.Null, scmerr.Syntaxf("if: requires exactly a test, a consequent, and an alternative")
		}
		test, err := ap.Eval(elems[0], scope)
		if err != nil {
			return value.Null, err
		}
		if isTruthy(ap, test) {
			return ap.Eval(elems[1], scope)
		}
		return ap.Eval(elems[2], scope)
	}

	t["define"] = func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		elems, err := listToSlice(ap, args)
		if err != nil {
			return value.Null, err
		}
		if len(elems) < 2 {
			return value.Null, scmerr.Syntaxf("define: requires a name and a value")
		}
		target := ap.Get(elems[0])

		// (define (f p1 ... pn) body...) sugars to
		// (define f (lambda (p1 ... pn) body...)).
		if target != nil && target.Kind == value.Pair {
			name, err := symbolName(ap, target.Car, "define")
			if err != nil {
				return value.Null, err
			}
			params, err := listToSlice(ap, target.Cdr)
			if err != nil {
				return value.Null, err
			}
			closure := ap.NewClosure(params, elems[1:], scope)
			ap.Define(scope, name, closure)
			return value.Null, nil
		}

		if len(elems) != 2 {
			return value.Null, scmerr.Syntaxf("define: requires exactly a name and a value")
		}
		name, err := symbolName(ap, elems[0], "define")
		if err != nil {
			return value.Null, err
		}
		val, err := ap.Eval(elems[1], scope)
		if err != nil {
			return value.Null, err
		}
		ap.Define(scope, name, val)
		return value.Null, nil
	}

	t["set!"] = func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		elems, err := listToSlice(ap, args)
		if err != nil {
			return value.Null, err
		}
		if len(elems) != 2 {
			return value.Null, scmerr.Syntaxf("set!: requires exactly a name and a value")
		}
		name, err := symbolName(ap, elems[0], "set!")
		if err != nil {
			return value.Null, err
		}
		val, err := ap.Eval(elems[1], scope)
		if err != nil {
			return value.Null, err
		}
		if err := ap.Assign(scope, name, val); err != nil {
			return value.Null, err
		}
		return value.Null, nil
	}

	t["lambda"] = func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		elems, err := listToSlice(ap, args)
		if err != nil {
			return value.Null, err
		}
		if len(elems) < 2 {
			return value.Null, scmerr.Syntaxf("lambda: requires a parameter list and at least one body expression")
		}
		params, err := listToSlice(ap, elems[0])
		if err != nil {
			return value.Null, err
		}
		for _, p := range params {
			if _, err := symbolName(ap, p, "lambda"); err != nil {
				return value.Null, err
			}
		}
		return ap.NewClosure(params, elems[1:], scope), nil
	}
}
