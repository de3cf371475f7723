package parser

import (
	"svlift/internal/ast"
	"svlift/internal/token"
)

// takeLHS folds a token sequence left-to-right into an assignment
// target tree. The first token must start a target; every later token
// must wrap the tree built so far. Any other token, or an empty
// sequence, yields false — callers use that to fall back to
// declaration parsing.
func takeLHS(toks []token.Token) (ast.LHS, bool) {
	if len(toks) == 0 {
		return nil, false
	}
	var lhs ast.LHS
	first := toks[0]
	switch first.Kind {
	case token.Ident:
		lhs = ast.LHSIdent{Name: first.Text}
	case token.ScopedIdent:
		lhs = ast.LHSIdent{Scope: first.Scope, Name: first.Text}
	case token.Concat:
		lhs = ast.LHSConcat{Parts: first.Parts}
	case token.Stream:
		lhs = ast.LHSStream{Op: first.StreamOp, Size: first.Expr, Parts: first.Parts}
	default:
		return nil, false
	}
	for _, t := range toks[1:] {
		switch t.Kind {
		case token.BitSelect:
			lhs = ast.LHSBit{Base: lhs, Index: t.Expr}
		case token.Range:
			lhs = ast.LHSRange{Base: lhs, Mode: t.Mode, Range: t.Range}
		case token.Dot:
			lhs = ast.LHSDot{Base: lhs, Member: t.Text}
		default:
			return nil, false
		}
	}
	return lhs, true
}
