package token

import (
	"svlift/internal/ast"
	"svlift/internal/source"
)

// Token is one declaration token. The kind selects which payload
// fields are meaningful; everything else is zero. Tokens are immutable
// once produced, and the span never affects resolution decisions.
type Token struct {
	Kind Kind
	Span source.Span

	Text     string             // Ident/ScopedIdent name, Dot member
	Scope    string             // ScopedIdent qualifier
	Op       ast.AsgnOp         // Asgn
	Timing   *ast.Timing        // Asgn
	Expr     ast.Expr           // Asgn RHS, BitSelect index, Stream size
	Mode     ast.PartSelectMode // Range
	Range    ast.Range          // Range
	Dir      ast.Direction      // Dir
	Base     ast.UnresolvedType // TypeCtor
	Bindings []ast.Binding      // ParamBindings, InstanceArgs
	Parts    []ast.LHS          // Concat, Stream
	StreamOp ast.StreamOp       // Stream
	Signing  ast.Signing        // Signing
	Lifetime ast.Lifetime       // Lifetime
}

// IsIdent reports whether the token is a bare identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsComma reports whether the token is a separator.
func (t Token) IsComma() bool { return t.Kind == Comma }

// IsAsgnEq reports whether the token is a plain '=' assignment with no
// timing control, the only form legal in declarations.
func (t Token) IsAsgnEq() bool {
	return t.Kind == Asgn && t.Op == ast.AsgnEq && t.Timing == nil
}

func MkComma(span source.Span) Token {
	return Token{Kind: Comma, Span: span}
}

func MkAutoDim(span source.Span) Token {
	return Token{Kind: AutoDim, Span: span}
}

func MkAsgn(span source.Span, op ast.AsgnOp, timing *ast.Timing, expr ast.Expr) Token {
	return Token{Kind: Asgn, Span: span, Op: op, Timing: timing, Expr: expr}
}

func MkRange(span source.Span, mode ast.PartSelectMode, r ast.Range) Token {
	return Token{Kind: Range, Span: span, Mode: mode, Range: r}
}

func MkIdent(span source.Span, name string) Token {
	return Token{Kind: Ident, Span: span, Text: name}
}

func MkScopedIdent(span source.Span, scope, name string) Token {
	return Token{Kind: ScopedIdent, Span: span, Scope: scope, Text: name}
}

func MkDir(span source.Span, dir ast.Direction) Token {
	return Token{Kind: Dir, Span: span, Dir: dir}
}

func MkTypeCtor(span source.Span, base ast.UnresolvedType) Token {
	return Token{Kind: TypeCtor, Span: span, Base: base}
}

func MkParamBindings(span source.Span, bindings []ast.Binding) Token {
	return Token{Kind: ParamBindings, Span: span, Bindings: bindings}
}

func MkInstanceArgs(span source.Span, bindings []ast.Binding) Token {
	return Token{Kind: InstanceArgs, Span: span, Bindings: bindings}
}

func MkBitSelect(span source.Span, index ast.Expr) Token {
	return Token{Kind: BitSelect, Span: span, Expr: index}
}

func MkConcat(span source.Span, parts []ast.LHS) Token {
	return Token{Kind: Concat, Span: span, Parts: parts}
}

func MkStream(span source.Span, op ast.StreamOp, size ast.Expr, parts []ast.LHS) Token {
	return Token{Kind: Stream, Span: span, StreamOp: op, Expr: size, Parts: parts}
}

func MkDot(span source.Span, member string) Token {
	return Token{Kind: Dot, Span: span, Text: member}
}

func MkSigning(span source.Span, signing ast.Signing) Token {
	return Token{Kind: Signing, Span: span, Signing: signing}
}

func MkLifetime(span source.Span, lifetime ast.Lifetime) Token {
	return Token{Kind: Lifetime, Span: span, Lifetime: lifetime}
}
