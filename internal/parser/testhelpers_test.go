package parser

import (
	"strings"
	"testing"

	"svlift/internal/ast"
	"svlift/internal/source"
	"svlift/internal/token"
)

// Positions never affect resolution decisions, so fixtures carry
// zero spans throughout.
var noSpan = source.Span{}

func tComma() token.Token { return token.MkComma(noSpan) }

func tIdent(name string) token.Token { return token.MkIdent(noSpan, name) }

func tScoped(scope, name string) token.Token { return token.MkScopedIdent(noSpan, scope, name) }

func tDir(d ast.Direction) token.Token { return token.MkDir(noSpan, d) }

func tType(kind ast.BaseKind) token.Token {
	return token.MkTypeCtor(noSpan, ast.UnresolvedType{Kind: kind})
}

func tSigning(s ast.Signing) token.Token { return token.MkSigning(noSpan, s) }

func tLifetime(l ast.Lifetime) token.Token { return token.MkLifetime(noSpan, l) }

func tRange(left, right string) token.Token {
	return token.MkRange(noSpan, ast.SelectNonIndexed, ast.Range{
		Left:  ast.Number{Text: left},
		Right: ast.Number{Text: right},
	})
}

func tAutoDim() token.Token { return token.MkAutoDim(noSpan) }

func tAsgn(rhs ast.Expr) token.Token {
	return token.MkAsgn(noSpan, ast.AsgnEq, nil, rhs)
}

func tAsgnOp(op ast.AsgnOp, rhs ast.Expr) token.Token {
	return token.MkAsgn(noSpan, op, nil, rhs)
}

func tBitSelect(index ast.Expr) token.Token { return token.MkBitSelect(noSpan, index) }

func tDot(member string) token.Token { return token.MkDot(noSpan, member) }

func tParams(bindings ...ast.Binding) token.Token {
	return token.MkParamBindings(noSpan, bindings)
}

func tArgs(bindings ...ast.Binding) token.Token {
	return token.MkInstanceArgs(noSpan, bindings)
}

func num(text string) ast.Expr { return ast.Number{Text: text} }

func ref(name string) ast.Expr { return ast.Ident{Name: name} }

// variables filters out trace markers, keeping only the declarations
// a test wants to inspect.
func variables(t *testing.T, decls []ast.Decl) []ast.Variable {
	t.Helper()
	var vars []ast.Variable
	for _, d := range decls {
		switch d := d.(type) {
		case ast.Variable:
			vars = append(vars, d)
		case ast.CommentDecl:
			if !strings.HasPrefix(d.Text, "Trace: ") {
				t.Fatalf("unexpected comment decl %q", d.Text)
			}
		default:
			t.Fatalf("unexpected decl %T", d)
		}
	}
	return vars
}

func countTraces(decls []ast.Decl) int {
	n := 0
	for _, d := range decls {
		if c, ok := d.(ast.CommentDecl); ok && strings.HasPrefix(c.Text, "Trace: ") {
			n++
		}
	}
	return n
}

func wantKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got none", kind)
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *parser.Error, got %T: %v", err, err)
	}
	if perr.Kind != kind {
		t.Fatalf("error kind: got %s, want %s (%v)", perr.Kind, kind, err)
	}
}
