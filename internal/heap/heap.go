// Package heap is the registry of live values. It hands out Handles and
// owns the one map the collector (internal/gc) walks to find and reclaim
// garbage. Nothing outside this package (and the collector) ever deletes
// an entry directly.
package heap

import "github.com/m0r0zk01/scheme-interpreter/internal/value"

// Heap is a slab-style allocator: Handles are stable integer indices into
// an occupancy set (here, a map keyed by Handle) rather than Go pointers.
// A Heap is not safe for concurrent use; the evaluator is this registry's
// single writer.
type Heap struct {
	values map[value.Handle]*value.Value
	next   value.Handle
}

// New returns an empty heap. capHint sizes the backing map up front; it is
// a hint, not a limit — the heap grows without bound as the interpreter
// allocates.
func New(capHint int) *Heap {
	if capHint < 0 {
		capHint = 0
	}
	return &Heap{
		values: make(map[value.Handle]*value.Value, capHint),
		next:   value.Null + 1,
	}
}

// Len reports the number of currently live handles.
func (h *Heap) Len() int { return len(h.values) }

// Get dereferences a handle. Handle zero (value.Null) always resolves to
// nil, meaning "no value" / the empty list.
func (h *Heap) Get(handle value.Handle) *value.Value {
	if handle == value.Null {
		return nil
	}
	return h.values[handle]
}

// Handles returns every currently live handle. Used by the collector to
// sweep and by tests to assert on heap shape.
func (h *Heap) Handles() []value.Handle {
	out := make([]value.Handle, 0, len(h.values))
	for handle := range h.values {
		out = append(out, handle)
	}
	return out
}

func (h *Heap) allocate(v value.Value) value.Handle {
	handle := h.next
	h.next++
	h.values[handle] = &v
	return handle
}

// AllocNumber allocates a self-evaluating signed integer.
func (h *Heap) AllocNumber(n int64) value.Handle {
	return h.allocate(value.Value{Kind: value.Number, Int: n})
}

// AllocBoolean allocates a self-evaluating boolean.
func (h *Heap) AllocBoolean(b bool) value.Handle {
	return h.allocate(value.Value{Kind: value.Boolean, Bool: b})
}

// AllocSymbol allocates a symbol named name. Symbols are not interned;
// each parsed occurrence is a distinct handle.
func (h *Heap) AllocSymbol(name string) value.Handle {
	return h.allocate(value.Value{Kind: value.Symbol, Sym: name})
}

// AllocPair allocates a fresh mutable pair (car . cdr).
func (h *Heap) AllocPair(car, cdr value.Handle) value.Handle {
	return h.allocate(value.Value{Kind: value.Pair, Car: car, Cdr: cdr})
}

// AllocBuiltin allocates a builtin procedure or special form bound to name.
func (h *Heap) AllocBuiltin(name string, fn value.BuiltinFn) value.Handle {
	return h.allocate(value.Value{Kind: value.Builtin, Name: name, Fn: fn})
}

// AllocClosure allocates a closure capturing env.
func (h *Heap) AllocClosure(params, body []value.Handle, env value.Handle) value.Handle {
	return h.allocate(value.Value{Kind: value.Closure, Params: params, Body: body, Env: env})
}

// AllocScope allocates a fresh environment frame chained to parent (which
// may be value.Null for the global scope's non-existent parent).
func (h *Heap) AllocScope(parent value.Handle) value.Handle {
	return h.allocate(value.Value{Kind: value.Scope, Parent: parent, Vars: make(map[string]value.Handle)})
}

// Drop destroys a single value. Only the collector calls this.
func (h *Heap) Drop(handle value.Handle) {
	delete(h.values, handle)
}
