package parser

import (
	"testing"

	"svlift/internal/ast"
	"svlift/internal/token"
)

func TestTakeLHS(t *testing.T) {
	tests := []struct {
		name string
		toks []token.Token
		want string // rendered tree; "" means no valid target
	}{
		{
			name: "empty",
			toks: nil,
			want: "",
		},
		{
			name: "identifier",
			toks: []token.Token{tIdent("x")},
			want: "x",
		},
		{
			name: "scoped identifier",
			toks: []token.Token{tScoped("pkg", "x")},
			want: "pkg::x",
		},
		{
			name: "bit select",
			toks: []token.Token{tIdent("x"), tBitSelect(num("3"))},
			want: "x[3]",
		},
		{
			name: "range select",
			toks: []token.Token{tIdent("x"), tRange("7", "0")},
			want: "x[7:0]",
		},
		{
			name: "member access",
			toks: []token.Token{tIdent("x"), tDot("f")},
			want: "x.f",
		},
		{
			name: "stacked wrappers",
			toks: []token.Token{tIdent("x"), tDot("f"), tBitSelect(num("0")), tRange("3", "0")},
			want: "x.f[0][3:0]",
		},
		{
			name: "concatenation",
			toks: []token.Token{token.MkConcat(noSpan, []ast.LHS{
				ast.LHSIdent{Name: "a"},
				ast.LHSIdent{Name: "b"},
			})},
			want: "{a, b}",
		},
		{
			name: "streaming",
			toks: []token.Token{token.MkStream(noSpan, ast.StreamLeft, num("8"), []ast.LHS{
				ast.LHSIdent{Name: "a"},
			})},
			want: "{<< 8 {a}}",
		},
		{
			name: "type token cannot start a target",
			toks: []token.Token{tType(ast.BaseInt), tIdent("x")},
			want: "",
		},
		{
			name: "identifier after identifier",
			toks: []token.Token{tIdent("x"), tIdent("y")},
			want: "",
		},
		{
			name: "comma breaks the fold",
			toks: []token.Token{tIdent("x"), tComma()},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lhs, ok := takeLHS(tt.toks)
			if tt.want == "" {
				if ok {
					t.Fatalf("expected no target, got %s", lhs)
				}
				return
			}
			if !ok {
				t.Fatalf("expected target %s, got none", tt.want)
			}
			if got := lhs.String(); got != tt.want {
				t.Errorf("target: got %s, want %s", got, tt.want)
			}
		})
	}
}
