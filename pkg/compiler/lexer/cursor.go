package lexer

// cursor tracks the read position over an immutable source string along
// with the span of the token currently being built. The span is always
// input[pos-pending : pos]; emit and skip both reset it.
type cursor struct {
	input   string
	pos     int // offset of the next unconsumed byte
	pending int // bytes consumed since the last emit or skip
}

func newCursor(input string) *cursor {
	return &cursor{input: input}
}

// has reports whether a byte exists at pos+offset.
func (c *cursor) has(offset int) bool {
	return c.pos+offset < len(c.input)
}

// get returns the byte at pos+offset. Callers must check has first.
func (c *cursor) get(offset int) byte {
	return c.input[c.pos+offset]
}

func (c *cursor) advance() {
	c.pos++
	c.pending++
}

// skip discards the in-progress span without moving the position.
func (c *cursor) skip() {
	c.pending = 0
}

// emit finalizes the in-progress span as a token of the given type and
// resets the span.
func (c *cursor) emit(t Type) Token {
	start := c.pos - c.pending
	c.pending = 0
	return Token{Type: t, Literal: c.input[start:c.pos], Index: start}
}
