package parser

import (
	"testing"

	"svlift/internal/ast"
	"svlift/internal/token"
)

func TestTripLookahead(t *testing.T) {
	tests := []struct {
		name string
		toks []token.Token
		want bool
	}{
		{
			name: "empty",
			toks: nil,
			want: false,
		},
		{
			name: "non-identifier start",
			toks: []token.Token{tComma()},
			want: false,
		},
		{
			name: "terminal identifier",
			toks: []token.Token{tIdent("a")},
			want: true,
		},
		{
			name: "identifier with trailing dims",
			toks: []token.Token{tIdent("a"), tRange("3", "0")},
			want: true,
		},
		{
			name: "identifier with initializer",
			toks: []token.Token{tIdent("a"), tAsgn(num("1")), tIdent("whatever")},
			want: true,
		},
		{
			name: "identifier before separator",
			toks: []token.Token{tIdent("a"), tComma(), tIdent("b")},
			want: true,
		},
		{
			name: "identifier with dims before separator",
			toks: []token.Token{tIdent("a"), tRange("3", "0"), tComma(), tIdent("b")},
			want: true,
		},
		{
			name: "type name followed by variable",
			toks: []token.Token{tIdent("Foo"), tIdent("bar")},
			want: false,
		},
		{
			name: "new component with direction",
			toks: []token.Token{tDir(ast.DirOutput), tIdent("b")},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tripLookahead(tt.toks); got != tt.want {
				t.Errorf("tripLookahead: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTypeName(t *testing.T) {
	tests := []struct {
		name string
		toks []token.Token // tokens after the leading identifier
		want bool
	}{
		{
			name: "no further tokens",
			toks: nil,
			want: false,
		},
		{
			name: "identifier and end",
			toks: []token.Token{tIdent("bar")},
			want: true,
		},
		{
			name: "comma then identifier",
			toks: []token.Token{tComma(), tIdent("baz")},
			want: false,
		},
		{
			name: "identifier then comma",
			toks: []token.Token{tIdent("bar"), tComma(), tIdent("baz")},
			want: true,
		},
		{
			name: "ranges then identifier",
			toks: []token.Token{tRange("7", "0"), tIdent("bar")},
			want: true,
		},
		{
			name: "only dims and initializer",
			toks: []token.Token{tRange("7", "0"), tAsgn(num("1"))},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTypeName(tt.toks); got != tt.want {
				t.Errorf("isTypeName: got %v, want %v", got, tt.want)
			}
		})
	}
}
