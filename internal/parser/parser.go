// Package parser implements the recursive-descent reader: it consumes a
// lexer.Cursor and materializes a value graph of numbers, booleans,
// symbols, and pairs, allocating every node fresh in the heap.
package parser

import (
	"strconv"

	"github.com/m0r0zk01/scheme-interpreter/internal/heap"
	"github.com/m0r0zk01/scheme-interpreter/internal/lexer"
	"github.com/m0r0zk01/scheme-interpreter/internal/scmerr"
	"github.com/m0r0zk01/scheme-interpreter/internal/value"
)

// Read parses a single top-level expression from src and allocates it into
// h. An empty top-level expression (no tokens at all) is a SyntaxError, as
// is any malformed input.
func Read(h *heap.Heap, src string) (value.Handle, error) {
	cur, err := lexer.NewCursor(src)
	if err != nil {
		return value.Null, err
	}
	if cur.AtEnd() {
		return value.Null, scmerr.Syntaxf("empty expression")
	}
	v, err := read(h, cur)
	if err != nil {
		return value.Null, err
	}
	if !cur.AtEnd() {
		return value.Null, scmerr.Syntaxf("unexpected trailing input after expression")
	}
	return v, nil
}

// read parses exactly one expression off the cursor.
func read(h *heap.Heap, cur *lexer.Cursor) (value.Handle, error) {
	if cur.AtEnd() {
		return value.Null, scmerr.Syntaxf("unexpected end of input")
	}
	tok := cur.Peek()

	switch {
	case tok.IsOpen():
		cur.Advance()
		return readList(h, cur)

	case tok.Kind == lexer.Quote:
		cur.Advance()
		x, err := read(h, cur)
		if err != nil {
			return value.Null, err
		}
		quoteSym := h.AllocSymbol("quote")
		inner := h.AllocPair(x, value.Null)
		return h.AllocPair(quoteSym, inner), nil

	case tok.Kind == lexer.Number:
		cur.Advance()
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			// The lexer only admits sign-plus-digits here, so the one way
			// ParseInt can fail is 64-bit overflow; keep it as the cause.
			return value.Null, scmerr.Wrap(scmerr.Syntax, err, "number literal %q out of range", tok.Text)
		}
		return h.AllocNumber(n), nil

	case tok.Kind == lexer.Boolean:
		cur.Advance()
		return h.AllocBoolean(tok.Text == "#t"), nil

	case tok.Kind == lexer.Symbol:
		cur.Advance()
		return h.AllocSymbol(tok.Text), nil

	default:
		return value.Null, scmerr.Syntaxf("unexpected token %q", tok.Text)
	}
}

// readList parses the contents of a list after the opening "(" has already
// been consumed: either immediately ")" (the empty list), or a chain of
// elements with at most one dot immediately before the final element.
func readList(h *heap.Heap, cur *lexer.Cursor) (value.Handle, error) {
	if cur.AtEnd() {
		return value.Null, scmerr.Syntaxf("unexpected end of input inside list")
	}
	if cur.Peek().IsClose() {
		cur.Advance()
		return value.Null, nil
	}

	first, err := read(h, cur)
	if err != nil {
		return value.Null, err
	}

	var elems []value.Handle
	elems = append(elems, first)
	tail := value.Handle(value.Null)
	sawDot := false

	for {
		if cur.AtEnd() {
			return value.Null, scmerr.Syntaxf("unexpected end of input inside list")
		}
		tok := cur.Peek()
		if tok.IsClose() {
			cur.Advance()
			break
		}
		if tok.Kind == lexer.Dot {
			if sawDot {
				return value.Null, scmerr.Syntaxf("multiple dots in list")
			}
			sawDot = true
			cur.Advance()
			tail, err = read(h, cur)
			if err != nil {
				return value.Null, err
			}
			if cur.AtEnd() || !cur.Peek().IsClose() {
				return value.Null, scmerr.Syntaxf("dot must be followed by exactly one element before )")
			}
			cur.Advance()
			break
		}
		elem, err := read(h, cur)
		if err != nil {
			return value.Null, err
		}
		elems = append(elems, elem)
	}

	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = h.AllocPair(elems[i], result)
	}
	return result, nil
}
