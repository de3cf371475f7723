package parser

import (
	"svlift/internal/ast"
	"svlift/internal/token"
)

// ForAsgn is one resolved assignment in a for-loop initializer list.
type ForAsgn struct {
	LHS ast.LHS
	Op  ast.AsgnOp
	RHS ast.Expr
}

// ResolveDeclsOrAsgns settles a for-loop initializer: either a list of
// declarations or a list of simple assignments. The tie is broken by
// whichever comes first in the raw stream — a comma or a token that
// can only appear in an assignment target (select, concatenation,
// streaming, member access) or a non-'=' assignment. A stream with no
// such indicator can still be an assignment list: a leading name
// followed directly by its '=' is a complete triplet with no type in
// front of it, so "i = 0, j = 1" assigns while "int i = 0, j = 1"
// declares.
func ResolveDeclsOrAsgns(toks []token.Token) ([]ast.Decl, []ForAsgn, error) {
	if len(toks) == 0 {
		return nil, nil, nil
	}
	if !looksLikeAsgns(toks) && !tripLookahead(toks) {
		decls, err := ResolveDecls(toks)
		if err != nil {
			return nil, nil, err
		}
		return decls, nil, nil
	}
	asgns, err := resolveAsgns(toks)
	if err != nil {
		return nil, nil, err
	}
	return nil, asgns, nil
}

// looksLikeAsgns reports whether an assignment indicator occurs before
// the first comma (or exists at all when there is no comma).
func looksLikeAsgns(toks []token.Token) bool {
	commaIdx, indicatorIdx := -1, -1
	for i, t := range toks {
		if commaIdx == -1 && t.Kind == token.Comma {
			commaIdx = i
		}
		if indicatorIdx == -1 && isAsgnIndicator(t) {
			indicatorIdx = i
		}
		if commaIdx != -1 && indicatorIdx != -1 {
			break
		}
	}
	if indicatorIdx == -1 {
		return false
	}
	return commaIdx == -1 || indicatorIdx < commaIdx
}

// isAsgnIndicator reports whether the token can only belong to an
// assignment, never to a declaration.
func isAsgnIndicator(t token.Token) bool {
	switch t.Kind {
	case token.BitSelect, token.Concat, token.Stream, token.Dot:
		return true
	case token.Asgn:
		return !t.IsAsgnEq()
	default:
		return false
	}
}

// resolveAsgns parses "lhs = expr, lhs = expr, ...": each target is
// the prefix up to the next assignment token, each value that token's
// expression.
func resolveAsgns(toks []token.Token) ([]ForAsgn, error) {
	var asgns []ForAsgn
	for {
		split := -1
		for i, t := range toks {
			if t.Kind == token.Asgn {
				split = i
				break
			}
		}
		if split == -1 {
			return nil, errShape(toks[0].Span, "expected assignment in initializer list")
		}
		asgnTok := toks[split]
		if asgnTok.Timing != nil {
			return nil, errOperator(asgnTok.Span, "timing control is not allowed in an initializer")
		}
		lhs, ok := takeLHS(toks[:split])
		if !ok {
			return nil, errTarget(asgnTok.Span, "cannot form an assignment target before %s", describe(asgnTok))
		}
		asgns = append(asgns, ForAsgn{LHS: lhs, Op: asgnTok.Op, RHS: asgnTok.Expr})

		rest := toks[split+1:]
		if len(rest) == 0 {
			return asgns, nil
		}
		if rest[0].Kind != token.Comma {
			return nil, errShape(rest[0].Span, "expected ',' between initializer assignments, got %s", describe(rest[0]))
		}
		if len(rest) == 1 {
			return nil, errShape(rest[0].Span, "initializer list ends after separator")
		}
		toks = rest[1:]
	}
}
