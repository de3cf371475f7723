package ast

import (
	"strings"
)

// Expr is a right-hand-side expression. The resolver never evaluates
// expressions; it only carries them through and, for auto-dimension
// inference, counts the elements of aggregate literals.
type Expr interface {
	exprNode()
	String() string
}

// Ident is a bare identifier expression.
type Ident struct {
	Name string
}

// Number is a numeric literal, kept as source text.
type Number struct {
	Text string
}

// Str is a string literal, kept with its quotes.
type Str struct {
	Text string
}

// Concat is a '{a, b, ...}' concatenation literal.
type Concat struct {
	Parts []Expr
}

// Pattern is an assignment pattern literal '{...}.
type Pattern struct {
	Items []Expr
}

// Raw is an expression the upstream grammar reduced but this stage has
// no need to inspect, kept as source text.
type Raw struct {
	Text string
}

func (Ident) exprNode()   {}
func (Number) exprNode()  {}
func (Str) exprNode()     {}
func (Concat) exprNode()  {}
func (Pattern) exprNode() {}
func (Raw) exprNode()     {}

func (e Ident) String() string  { return e.Name }
func (e Number) String() string { return e.Text }
func (e Str) String() string    { return e.Text }
func (e Raw) String() string    { return e.Text }

func (e Concat) String() string {
	return "{" + joinExprs(e.Parts) + "}"
}

func (e Pattern) String() string {
	return "'{" + joinExprs(e.Items) + "}"
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// AggregateElems returns the element list of an aggregate literal
// (assignment pattern or concatenation), or false for anything else.
func AggregateElems(e Expr) ([]Expr, bool) {
	switch e := e.(type) {
	case Pattern:
		return e.Items, true
	case Concat:
		return e.Parts, true
	default:
		return nil, false
	}
}
