package parser

import (
	"svlift/internal/source"
	"svlift/internal/token"
)

// cursor is an advancing view over a token stream. Each take operation
// consumes a prefix and leaves the cursor at the first unconsumed
// token; no token is ever revisited.
type cursor struct {
	toks []token.Token
	pos  int
}

func newCursor(toks []token.Token) *cursor {
	return &cursor{toks: toks}
}

func (c *cursor) empty() bool {
	return c.pos >= len(c.toks)
}

func (c *cursor) peek() token.Token {
	if c.empty() {
		return token.Token{}
	}
	return c.toks[c.pos]
}

func (c *cursor) at(k token.Kind) bool {
	return !c.empty() && c.toks[c.pos].Kind == k
}

func (c *cursor) next() token.Token {
	t := c.peek()
	if !c.empty() {
		c.pos++
	}
	return t
}

// rest returns the unconsumed suffix without advancing.
func (c *cursor) rest() []token.Token {
	if c.empty() {
		return nil
	}
	return c.toks[c.pos:]
}

// span returns a span for diagnostics: the current token's, or the
// last token's when the stream is exhausted.
func (c *cursor) span() source.Span {
	if !c.empty() {
		return c.toks[c.pos].Span
	}
	if len(c.toks) > 0 {
		return c.toks[len(c.toks)-1].Span
	}
	return source.Span{}
}
