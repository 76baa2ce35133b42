package builtin

import (
	"github.com/m0r0zk01/scheme-interpreter/internal/scmerr"
	"github.com/m0r0zk01/scheme-interpreter/internal/value"
)

func addPairsAndLists(t Table) {
	t["cons"] = func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		vs, err := evalArgs(ap, args, scope)
		if err != nil {
			return value.Null, err
		}
		if len(vs) != 2 {
			return value.Null, scmerr.Runtimef("cons: requires exactly two arguments")
		}
		return ap.NewPair(vs[0], vs[1]), nil
	}

	t["car"] = func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		vs, err := evalArgs(ap, args, scope)
		if err != nil {
			return value.Null, err
		}
		if len(vs) != 1 {
			return value.Null, scmerr.Runtimef("car: requires exactly one argument")
		}
		p, err := pairArg(ap, vs[0], "car")
		if err != nil {
			return value.Null, err
		}
		return p.Car, nil
	}

	t["cdr"] = func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		vs, err := evalArgs(ap, args, scope)
		if err != nil {
			return value.Null, err
		}
		if len(vs) != 1 {
			return value.Null, scmerr.Runtimef("cdr: requires exactly one argument")
		}
		p, err := pairArg(ap, vs[0], "cdr")
		if err != nil {
			return value.Null, err
		}
		return p.Cdr, nil
	}

	t["list"] = func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		vs, err := evalArgs(ap, args, scope)
		if err != nil {
			return value.Null, err
		}
		return buildList(ap, vs), nil
	}

	t["list-ref"] = func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		vs, err := evalArgs(ap, args, scope)
		if err != nil {
			return value.Null, err
		}
		if len(vs) != 2 {
			return value.Null, scmerr.Runtimef("list-ref: requires exactly two arguments")
		}
		k, err := indexArg(ap, vs[1], "list-ref")
		if err != nil {
			return value.Null, err
		}
		if !isProperList(ap, vs[0]) {
			return value.Null, scmerr.Runtimef("list-ref: expected a proper list")
		}
		cur := vs[0]
		for i := int64(0); i < k; i++ {
			if cur == value.Null {
				return value.Null, scmerr.Runtimef("list-ref: index out of range")
			}
			cur = ap.Get(cur).Cdr
		}
		if cur == value.Null {
			return value.Null, scmerr.Runtimef("list-ref: index out of range")
		}
		return ap.Get(cur).Car, nil
	}

	t["list-tail"] = func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		vs, err := evalArgs(ap, args, scope)
		if err != nil {
			return value.Null, err
		}
		if len(vs) != 2 {
			return value.Null, scmerr.Runtimef("list-tail: requires exactly two arguments")
		}
		k, err := indexArg(ap, vs[1], "list-tail")
		if err != nil {
			return value.Null, err
		}
		if !isProperList(ap, vs[0]) {
			return value.Null, scmerr.Runtimef("list-tail: expected a proper list")
		}
		cur := vs[0]
		for i := int64(0); i < k; i++ {
			if cur == value.Null {
				return value.Null, scmerr.Runtimef("list-tail: index out of range")
			}
			cur = ap.Get(cur).Cdr
		}
		return cur, nil
	}

	t["set-car!"] = func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		vs, err := evalArgs(ap, args, scope)
		if err != nil {
			return value.Null, err
		}
		if len(vs) != 2 {
			return value.Null, scmerr.Runtimef("set-car!: requires exactly two arguments")
		}
		p, err := pairArg(ap, vs[0], "set-car!")
		if err != nil {
			return value.Null, err
		}
		p.Car = vs[1]
		return value.Null, nil
	}

	t["set-cdr!"] = func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		vs, err := evalArgs(ap, args, scope)
		if err != nil {
			return value.Null, err
		}
		if len(vs) != 2 {
			return value.Null, scmerr.Runtimef("set-cdr!: requires exactly two arguments")
		}
		p, err := pairArg(ap, vs[0], "set-cdr!")
		if err != nil {
			return value.Null, err
		}
		p.Cdr = vs[1]
		return value.Null, nil
	}
}

func indexArg(ap value.Applier, h value.Handle, who string) (int64, error) {
	v := ap.Get(h)
	if v == nil || v.Kind != value.Number {
		return 0, scmerr.Runtimef("%s: index must be a number", who)
	}
	if v.Int < 0 {
		return 0, scmerr.Runtimef("%s: index out of range", who)
	}
	return v.Int, nil
}
