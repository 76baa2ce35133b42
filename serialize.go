package scheme

import (
	"strconv"
	"strings"

	"github.com/m0r0zk01/scheme-interpreter/internal/heap"
	"github.com/m0r0zk01/scheme-interpreter/internal/value"
)

// Serialize renders handle as the return string of one turn.
func Serialize(h *heap.Heap, handle value.Handle) string {
	var b strings.Builder
	serializeInto(&b, h, handle)
	return b.String()
}

func serializeInto(b *strings.Builder, h *heap.Heap, handle value.Handle) {
	if handle == value.Null {
		b.WriteString("()")
		return
	}
	v := h.Get(handle)
	if v == nil {
		b.WriteString("()")
		return
	}

	switch v.Kind {
	case value.Number:
		b.WriteString(strconv.FormatInt(v.Int, 10))
	case value.Boolean:
		if v.Bool {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case value.Symbol:
		b.WriteString(v.Sym)
	case value.Builtin:
		b.WriteString("[Function]")
	case value.Closure:
		b.WriteString("[Lambda]")
	case value.Scope:
		b.WriteString("[Scope]")
	case value.Pair:
		serializePair(b, h, v)
	default:
		b.WriteString("()")
	}
}

// serializePair renders a pair as "(" elements... ")" following the cdr
// chain, with " . " before a non-null, non-pair tail (an improper list).
// A null cdr terminates the list without rendering anything for it:
// (cons 1 '()) prints as (1), not (1 ()).
func serializePair(b *strings.Builder, h *heap.Heap, v *value.Value) {
	b.WriteByte('(')
	serializeInto(b, h, v.Car)
	cur := v.Cdr
	for {
		if cur == value.Null {
			break
		}
		cell := h.Get(cur)
		if cell != nil && cell.Kind == value.Pair {
			b.WriteByte(' ')
			serializeInto(b, h, cell.Car)
			cur = cell.Cdr
			continue
		}
		b.WriteString(" . ")
		serializeInto(b, h, cur)
		break
	}
	b.WriteByte(')')
}
