// Package value defines the tagged value kinds: every value handed around
// by the parser, evaluator, and collector is a *Value, heap allocated and
// traced.
package value

// Kind tags which of the seven value variants a Value holds. Every kind is
// traced by the collector (internal/gc); the traversal edges are defined by
// the collector's mark pass, not here — this package only knows about
// shapes, not reachability policy.
type Kind int

const (
	Number Kind = iota
	Boolean
	Symbol
	Pair
	Builtin
	Closure
	Scope
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Boolean:
		return "Boolean"
	case Symbol:
		return "Symbol"
	case Pair:
		return "Pair"
	case Builtin:
		return "Builtin"
	case Closure:
		return "Closure"
	case Scope:
		return "Scope"
	default:
		return "Unknown"
	}
}

// Handle is an opaque, stable identity for a heap-allocated Value. The null
// handle (the zero Handle) represents the empty list () wherever it
// appears as a cdr, and is also the "no value" result of definitions and
// assignments.
type Handle uint64

// Null is the handle representing (), i.e. "no value".
const Null Handle = 0

// BuiltinFn is the shape every builtin procedure and special form has: it
// receives its arguments *unevaluated* (as the raw cdr-chain of the call
// pair) plus the calling scope, and decides for itself what to evaluate.
// Ordinary procedures evaluate eagerly at the top of their own
// implementation; special forms (quote, if, define, set!, lambda, and,
// or) do not.
type BuiltinFn func(apply Applier, args Handle, scope Handle) (Handle, error)

// Applier is the full surface a builtin needs: recursing back into eval
// for sub-expressions and applications, plus the heap and scope context,
// threaded explicitly rather than reached for through a package-global.
// Builtins only ever see values and this interface, never internal/heap
// or internal/scope directly, which is what keeps internal/value free of
// an import cycle against them.
type Applier interface {
	Eval(expr Handle, scope Handle) (Handle, error)
	Apply(callee Handle, args []Handle) (Handle, error)

	Get(h Handle) *Value
	NewNumber(n int64) Handle
	NewBoolean(b bool) Handle
	NewSymbol(name string) Handle
	NewPair(car, cdr Handle) Handle
	NewScope(parent Handle) Handle
	NewClosure(params, body []Handle, env Handle) Handle

	Lookup(scope Handle, name string) (Handle, error)
	Define(scope Handle, name string, val Handle)
	Assign(scope Handle, name string, val Handle) error
}

// Value is the tagged union backing every heap handle. Only the fields
// matching Kind are meaningful; the rest are zero.
type Value struct {
	Kind Kind

	// Number
	Int int64

	// Boolean
	Bool bool

	// Symbol
	Sym string

	// Pair: two mutable slots.
	Car Handle
	Cdr Handle

	// Builtin
	Name string
	Fn   BuiltinFn

	// Closure
	Params []Handle // Symbol handles, in order
	Body   []Handle // body expressions, in order
	Env    Handle   // captured Scope handle

	// Scope
	Parent Handle
	Vars   map[string]Handle
}
