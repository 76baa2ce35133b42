// Package scope implements the parent-linked environment chain: a Scope
// is a name->value frame with an optional parent, walked root-ward on
// lookup and assignment.
package scope

import (
	"github.com/m0r0zk01/scheme-interpreter/internal/heap"
	"github.com/m0r0zk01/scheme-interpreter/internal/scmerr"
	"github.com/m0r0zk01/scheme-interpreter/internal/value"
)

// New allocates a fresh global scope with no parent.
func New(h *heap.Heap) value.Handle {
	return h.AllocScope(value.Null)
}

// Child allocates a fresh frame chained to parent, used when applying a
// closure: the closure's body runs in a fresh child of its *captured*
// environment, never the caller's.
func Child(h *heap.Heap, parent value.Handle) value.Handle {
	return h.AllocScope(parent)
}

// Lookup walks parent links starting at scope and returns the first bound
// value for name, or a NameError if no frame in the chain binds it.
func Lookup(h *heap.Heap, scope value.Handle, name string) (value.Handle, error) {
	for cur := scope; cur != value.Null; {
		frame := h.Get(cur)
		if frame == nil {
			break
		}
		if v, ok := frame.Vars[name]; ok {
			return v, nil
		}
		cur = frame.Parent
	}
	return value.Null, scmerr.Namef("unbound name: %s", name)
}

// Define writes name/val into scope's own frame unconditionally, shadowing
// any binding of the same name in an outer frame.
func Define(h *heap.Heap, scope value.Handle, name string, val value.Handle) {
	h.Get(scope).Vars[name] = val
}

// Assign walks parent links from scope and overwrites the first frame that
// already binds name. It returns a NameError if no frame does.
func Assign(h *heap.Heap, scope value.Handle, name string, val value.Handle) error {
	for cur := scope; cur != value.Null; {
		frame := h.Get(cur)
		if frame == nil {
			break
		}
		if _, ok := frame.Vars[name]; ok {
			frame.Vars[name] = val
			return nil
		}
		cur = frame.Parent
	}
	return scmerr.Namef("unbound name: %s", name)
}
