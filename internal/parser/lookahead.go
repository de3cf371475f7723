package parser

import (
	"svlift/internal/token"
)

// tripLookahead reports whether the token suffix starts with another
// (name, dimensions, initializer) triplet, as opposed to the start of
// a new component or the end of the list.
//
// The deciding observation: a type name must be followed by at least
// one variable identifier before any comma, so an identifier followed
// directly by a separator (or by nothing, or by a self-evidently
// complete initializer) is provably a variable name.
func tripLookahead(toks []token.Token) bool {
	if len(toks) == 0 || toks[0].Kind != token.Ident {
		return false
	}
	c := newCursor(toks[1:])
	c.takeRanges()
	// a terminal identifier, with or without trailing dimensions
	if c.empty() {
		return true
	}
	// an initializer makes the triplet complete on its own
	if c.peek().IsAsgnEq() {
		return true
	}
	return c.at(token.Comma)
}

// isTypeName classifies the identifier that precedes toks as a type
// name (true) or a variable name (false). It compares the positions of
// the next identifier and the next comma in the remaining tokens: an
// identifier occurring before any comma can only be a variable name
// declared with the leading identifier as its type.
func isTypeName(toks []token.Token) bool {
	identIdx, commaIdx := -1, -1
	for i, t := range toks {
		if identIdx == -1 && t.Kind == token.Ident {
			identIdx = i
		}
		if commaIdx == -1 && t.Kind == token.Comma {
			commaIdx = i
		}
		if identIdx != -1 && commaIdx != -1 {
			break
		}
	}
	if identIdx == -1 {
		// no further identifier: the leading one is the only name
		return false
	}
	if commaIdx == -1 {
		return true
	}
	return identIdx < commaIdx
}
