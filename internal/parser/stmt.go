package parser

import (
	"svlift/internal/ast"
	"svlift/internal/source"
	"svlift/internal/token"
)

// ResolveDeclOrStmt settles a token sequence that is ambiguous between
// the start of a declaration and an assignment or bare call statement.
// Exactly one of the returned slices is non-empty.
//
// This entry point is statement-aware: compound and non-blocking
// assignment operators are allowed here, but they force the statement
// reading.
func ResolveDeclOrStmt(toks []token.Token) ([]ast.Decl, []ast.Stmt, error) {
	if len(toks) == 0 {
		return nil, nil, errShape(source.Span{}, "empty declaration or statement")
	}
	pos := toks[0].Span
	toks = rotateAsgnsToEnd(toks)

	// a lone identifier is always a zero-argument call
	if len(toks) == 1 && (toks[0].Kind == token.Ident || toks[0].Kind == token.ScopedIdent) {
		stmt := ast.CallStmt{Scope: toks[0].Scope, Name: toks[0].Text}
		return nil, []ast.Stmt{traceStmt(pos), stmt}, nil
	}

	last := toks[len(toks)-1]
	prefix := toks[:len(toks)-1]
	switch last.Kind {
	case token.Asgn:
		lhs, ok := takeLHS(prefix)
		if ok {
			stmt := ast.AsgnStmt{Op: last.Op, Timing: last.Timing, LHS: lhs, RHS: last.Expr}
			return nil, []ast.Stmt{traceStmt(pos), stmt}, nil
		}
		if !last.IsAsgnEq() {
			// no declaration can carry this operator, so the failed
			// target is unrecoverable
			return nil, nil, errTarget(pos, "cannot form an assignment target for %s", describe(last))
		}
	case token.InstanceArgs:
		lhs, ok := takeLHS(prefix)
		if !ok {
			return nil, nil, errTarget(pos, "cannot form a call target before argument list")
		}
		stmt := callStmt(lhs, last.Bindings)
		return nil, []ast.Stmt{traceStmt(pos), stmt}, nil
	}

	decls, err := ResolveDecl(toks)
	if err != nil {
		return nil, nil, err
	}
	return decls, nil, nil
}

// rotateAsgnsToEnd right-associates assignment tokens onto the end of
// the sequence so the rest of the logic only ever inspects the last
// token. Relative order of all other tokens is preserved.
func rotateAsgnsToEnd(toks []token.Token) []token.Token {
	n := len(toks)
	if n == 0 || (toks[n-1].Kind == token.Asgn && !hasAsgn(toks[:n-1])) {
		return toks
	}
	if !hasAsgn(toks) {
		return toks
	}
	out := make([]token.Token, 0, n)
	var asgns []token.Token
	for _, t := range toks {
		if t.Kind == token.Asgn {
			asgns = append(asgns, t)
		} else {
			out = append(out, t)
		}
	}
	return append(out, asgns...)
}

func hasAsgn(toks []token.Token) bool {
	for _, t := range toks {
		if t.Kind == token.Asgn {
			return true
		}
	}
	return false
}

// callStmt reinterprets an instantiation-style binding list as call
// arguments, splitting positional (unnamed) from keyword bindings.
func callStmt(lhs ast.LHS, bindings []ast.Binding) ast.Stmt {
	var args ast.CallArgs
	for _, b := range bindings {
		if b.Name == "" {
			expr := b.Expr
			if expr == nil {
				expr = ast.Raw{}
			}
			args.Positional = append(args.Positional, expr)
		} else {
			args.Named = append(args.Named, b)
		}
	}
	if id, ok := lhs.(ast.LHSIdent); ok {
		return ast.CallStmt{Scope: id.Scope, Name: id.Name, Args: args}
	}
	return ast.CallStmt{Name: lhs.String(), Args: args}
}

// traceStmt is the synthetic marker emitted before every resolved
// statement; downstream diagnostics use it, semantics do not.
func traceStmt(span source.Span) ast.Stmt {
	return ast.CommentStmt{Text: "Trace: " + span.String()}
}
