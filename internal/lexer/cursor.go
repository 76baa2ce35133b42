package lexer

// Cursor is a forward cursor over a token stream: the parser never
// indexes into the token slice directly, it only Peeks and Advances. It is
// initialized already pointing at the first token (if any) so Peek is
// valid before the first Advance. Tokens are not produced lazily: NewCursor
// lexes the whole source up front, so a lex error anywhere in it is
// returned before any token can be read.
type Cursor struct {
	tokens []Token
	pos    int
}

// NewCursor tokenizes src and returns a Cursor pre-advanced onto its first
// token.
func NewCursor(src string) (*Cursor, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}
	c := &Cursor{tokens: tokens, pos: -1}
	c.Advance()
	return c, nil
}

// AtEnd reports whether the cursor has run past the last token.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.tokens)
}

// Peek returns the current token. Calling it when AtEnd is true panics;
// callers must check AtEnd first, exactly like the parser does before every
// Peek.
func (c *Cursor) Peek() Token {
	return c.tokens[c.pos]
}

// Advance moves the cursor to the next token.
func (c *Cursor) Advance() {
	c.pos++
}
