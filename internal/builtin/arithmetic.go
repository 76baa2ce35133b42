package builtin

import (
	"github.com/m0r0zk01/scheme-interpreter/internal/scmerr"
	"github.com/m0r0zk01/scheme-interpreter/internal/value"
)

// fold implements the arithmetic fold family: + - * max min.
// zero evaluates the empty-argument case (nil if that's an error instead
// of a value), and op folds the remaining operands onto the first.
func fold(name string, zero *int64, unary func(int64) int64, op func(acc, x int64) int64) value.BuiltinFn {
	return func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		vs, err := evalArgs(ap, args, scope)
		if err != nil {
			return value.Null, err
		}
		nums, err := numbers(ap, vs)
		if err != nil {
			return value.Null, err
		}
		switch len(nums) {
		case 0:
			if zero == nil {
				return value.Null, scmerr.Runtimef("%s: requires at least one argument", name)
			}
			return ap.NewNumber(*zero), nil
		case 1:
			if unary != nil {
				return ap.NewNumber(unary(nums[0])), nil
			}
			return ap.NewNumber(nums[0]), nil
		}
		acc := nums[0]
		for _, n := range nums[1:] {
			acc = op(acc, n)
		}
		return ap.NewNumber(acc), nil
	}
}

func addArithmetic(t Table) {
	zero, one := int64(0), int64(1)

	t["+"] = fold("+", &zero, nil, func(acc, x int64) int64 { return acc + x })
	t["*"] = fold("*", &one, nil, func(acc, x int64) int64 { return acc * x })
	t["-"] = fold("-", nil, func(x int64) int64 { return -x }, func(acc, x int64) int64 { return acc - x })
	t["max"] = fold("max", nil, func(x int64) int64 { return x }, func(acc, x int64) int64 {
		if x > acc {
			return x
		}
		return acc
	})
	t["min"] = fold("min", nil, func(x int64) int64 { return x }, func(acc, x int64) int64 {
		if x < acc {
			return x
		}
		return acc
	})
	t["abs"] = func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		vs, err := evalArgs(ap, args, scope)
		if err != nil {
			return value.Null, err
		}
		if len(vs) != 1 {
			return value.Null, scmerr.Runtimef("abs: requires exactly one argument")
		}
		nums, err := numbers(ap, vs)
		if err != nil {
			return value.Null, err
		}
		n := nums[0]
		if n < 0 {
			n = -n
		}
		return ap.NewNumber(n), nil
	}

	t["/"] = func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		vs, err := evalArgs(ap, args, scope)
		if err != nil {
			return value.Null, err
		}
		nums, err := numbers(ap, vs)
		if err != nil {
			return value.Null, err
		}
		if len(nums) == 0 {
			return value.Null, scmerr.Runtimef("/: requires at least one argument")
		}
		if len(nums) == 1 {
			return ap.NewNumber(nums[0]), nil
		}
		acc := nums[0]
		for _, n := range nums[1:] {
			if n == 0 {
				return value.Null, scmerr.Runtimef("/: division by zero")
			}
			acc = acc / n // Go's / already truncates toward zero for ints
		}
		return ap.NewNumber(acc), nil
	}
}

// comparison implements the variadic relational operators: true iff every
// adjacent pair satisfies rel. Fewer than two operands returns #t.
func comparison(rel func(a, b int64) bool) value.BuiltinFn {
	return func(ap value.Applier, args, scope value.Handle) (value.Handle, error) {
		vs, err := evalArgs(ap, args, scope)
		if err != nil {
			return value.Null, err
		}
		nums, err := numbers(ap, vs)
		if err != nil {
			return value.Null, err
		}
		for i := 0; i+1 < len(nums); i++ {
			if !rel(nums[i], nums[i+1]) {
				return ap.NewBoolean(false), nil
			}
		}
		return ap.NewBoolean(true), nil
	}
}

func addComparisons(t Table) {
	t["="] = comparison(func(a, b int64) bool { return a == b })
	t["<"] = comparison(func(a, b int64) bool { return a < b })
	t[">"] = comparison(func(a, b int64) bool { return a > b })
	t["<="] = comparison(func(a, b int64) bool { return a <= b })
	t[">="] = comparison(func(a, b int64) bool { return a >= b })
}
