package builtin

import (
	"github.com/m0r0zk01/scheme-interpreter/internal/scmerr"
	"github.com/m0r0zk01/scheme-interpreter/internal/value"
)

// unaryPredicate implements the predicate family: number? boolean? pair?
// null? list? symbol?. Each is unary and evaluates its argument.
func unaryPredicate(name string, test func(ap value.Applier, v *value.Value, h value.Handle) bool) value.BuiltinFn {
	return func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		vs, err := evalArgs(ap, args, scope)
		if err != nil {
			return value.Null, err
		}
		if len(vs) != 1 {
			return value.Null, scmerr.Runtimef("%s: requires exactly one argument", name)
		}
		v := ap.Get(vs[0])
		return ap.NewBoolean(test(ap, v, vs[0])), nil
	}
}

func addPredicates(t Table) {
	t["number?"] = unaryPredicate("number?", func(ap value.Applier, v *value.Value, h value.Handle) bool {
		return v != nil && v.Kind == value.Number
	})
	t["boolean?"] = unaryPredicate("boolean?", func(ap value.Applier, v *value.Value, h value.Handle) bool {
		return v != nil && v.Kind == value.Boolean
	})
	t["symbol?"] = unaryPredicate("symbol?", func(ap value.Applier, v *value.Value, h value.Handle) bool {
		return v != nil && v.Kind == value.Symbol
	})
	t["pair?"] = unaryPredicate("pair?", func(ap value.Applier, v *value.Value, h value.Handle) bool {
		return v != nil && v.Kind == value.Pair
	})
	// null? is true only for the empty-list handle itself.
	t["null?"] = unaryPredicate("null?", func(ap value.Applier, v *value.Value, h value.Handle) bool {
		return h == value.Null
	})
	// list? is true for () and for any proper list, checked by walking the
	// full cdr chain.
	t["list?"] = unaryPredicate("list?", func(ap value.Applier, v *value.Value, h value.Handle) bool {
		return isProperList(ap, h)
	})
}

func addLogical(t Table) {
	t["not"] = unaryPredicate("not", func(ap value.Applier, v *value.Value, h value.Handle) bool {
		return v != nil && v.Kind == value.Boolean && !v.Bool
	})

	t["and"] = func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		elems, err := listToSlice(ap, args)
		if err != nil {
			return value.Null, err
		}
		if len(elems) == 0 {
			return ap.NewBoolean(true), nil
		}
		var last value.Handle
		for _, e := range elems {
			v, err := ap.Eval(e, scope)
			if err != nil {
				return value.Null, err
			}
			last = v
			if !isTruthy(ap, v) {
				return v, nil
			}
		}
		return last, nil
	}

	t["or"] = func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		elems, err := listToSlice(ap, args)
		if err != nil {
			return value.Null, err
		}
		if len(elems) == 0 {
			return ap.NewBoolean(false), nil
		}
		var last value.Handle
		for _, e := range elems {
			v, err := ap.Eval(e, scope)
			if err != nil {
				return value.Null, err
			}
			last = v
			if isTruthy(ap, v) {
				return v, nil
			}
		}
		return last, nil
	}
}
