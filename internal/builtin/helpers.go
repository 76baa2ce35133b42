package builtin

import (
	"github.com/m0r0zk01/scheme-interpreter/internal/scmerr"
	"github.com/m0r0zk01/scheme-interpreter/internal/value"
)

// isTruthy implements the truthiness rule: only the literal boolean #f is
// false.
func isTruthy(ap value.Applier, h value.Handle) bool {
	v := ap.Get(h)
	return !(v != nil && v.Kind == value.Boolean && !v.Bool)
}

// listToSlice walks a proper-list handle into a Go slice of its (still
// unevaluated) element handles, in order. It errors if the chain is
// improper.
func listToSlice(ap value.Applier, h value.Handle) ([]value.Handle, error) {
	var out []value.Handle
	cur := h
	for cur != value.Null {
		v := ap.Get(cur)
		if v == nil || v.Kind != value.Pair {
			return nil, scmerr.Runtimef("expected a proper list")
		}
		out = append(out, v.Car)
		cur = v.Cdr
	}
	return out, nil
}

// isProperList reports whether h is value.Null or a chain of pairs ending
// in value.Null.
func isProperList(ap value.Applier, h value.Handle) bool {
	cur := h
	for cur != value.Null {
		v := ap.Get(cur)
		if v == nil || v.Kind != value.Pair {
			return false
		}
		cur = v.Cdr
	}
	return true
}

// evalArgs evaluates each element of an unevaluated argument list
// left-to-right against scope.
func evalArgs(ap value.Applier, args value.Handle, scope value.Handle) ([]value.Handle, error) {
	raw, err := listToSlice(ap, args)
	if err != nil {
		return nil, err
	}
	out := make([]value.Handle, len(raw))
	for i, a := range raw {
		v, err := ap.Eval(a, scope)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// numbers unwraps a slice of already-evaluated handles into int64s,
// raising a RuntimeError the first time one isn't a Number.
func numbers(ap value.Applier, vs []value.Handle) ([]int64, error) {
	out := make([]int64, len(vs))
	for i, h := range vs {
		v := ap.Get(h)
		if v == nil || v.Kind != value.Number {
			return nil, scmerr.Runtimef("expected a number, got %s", kindOf(v))
		}
		out[i] = v.Int
	}
	return out, nil
}

func kindOf(v *value.Value) string {
	if v == nil {
		return "()"
	}
	return v.Kind.String()
}

func pairArg(ap value.Applier, h value.Handle, who string) (*value.Value, error) {
	v := ap.Get(h)
	if v == nil || v.Kind != value.Pair {
		return nil, scmerr.Runtimef("%s: expected a pair, got %s", who, kindOf(v))
	}
	return v, nil
}

func symbolName(ap value.Applier, h value.Handle, who string) (string, error) {
	v := ap.Get(h)
	if v == nil || v.Kind != value.Symbol {
		return "", scmerr.Syntaxf("%s: expected a symbol, got %s", who, kindOf(v))
	}
	return v.Sym, nil
}

func buildList(ap value.Applier, elems []value.Handle) value.Handle {
	result := value.Null
	for i := len(elems) - 1; i >= 0; i-- {
		result = ap.NewPair(elems[i], result)
	}
	return result
}
