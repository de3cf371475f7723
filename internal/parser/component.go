package parser

import (
	"strconv"

	"svlift/internal/ast"
	"svlift/internal/source"
	"svlift/internal/token"
)

// triplet is one declared name within a shared-type declaration list.
type triplet struct {
	name string
	dims []ast.Range
	init ast.Expr // nil when no initializer
}

// component is one declaration group sharing a direction/type prefix,
// e.g. "input logic [7:0] a, b = 1, c". The span locates its first
// token and feeds the trace marker only.
type component struct {
	span  source.Span
	dir   ast.Direction
	typ   ast.Type
	trips []triplet
}

// finalize expands a component into one declaration per triplet plus a
// leading trace marker, all sharing the component's direction and type.
func (comp component) finalize() []ast.Decl {
	decls := make([]ast.Decl, 0, len(comp.trips)+1)
	decls = append(decls, ast.CommentDecl{Text: "Trace: " + comp.span.String()})
	for _, trip := range comp.trips {
		decls = append(decls, ast.Variable{
			Dir:  comp.dir,
			Type: comp.typ,
			Name: trip.name,
			Dims: trip.dims,
			Init: trip.init,
		})
	}
	return decls
}

// checkAsgnOps rejects assignment tokens whose operator is not a plain
// '=' or which carry a timing control. Those are legal only in true
// assignment statements; the statement-aware entry points skip this.
func checkAsgnOps(toks []token.Token) *Error {
	for _, t := range toks {
		if t.Kind == token.Asgn && !t.IsAsgnEq() {
			return errOperator(t.Span, "%s is not allowed in a declaration", describe(t))
		}
	}
	return nil
}

// componentsOf consumes the whole stream as a sequence of components.
func componentsOf(toks []token.Token) ([]component, *Error) {
	c := newCursor(toks)
	var comps []component
	for !c.empty() {
		comp, err := c.takeComponent()
		if err != nil {
			return nil, err
		}
		comps = append(comps, comp)
	}
	return comps, nil
}

// takeComponent consumes one component from the front of the stream:
// optional direction, optional lifetime, base type, base ranges, then
// one or more triplets.
func (c *cursor) takeComponent() (component, *Error) {
	span := c.peek().Span
	dir := c.takeDir()
	if err := c.takeLifetime(); err != nil {
		return component{}, err
	}
	pt := c.takeType()
	ranges := c.takeRanges()
	trips, err := c.takeTrips()
	if err != nil {
		return component{}, err
	}
	return component{
		span:  span,
		dir:   dir,
		typ:   pt.resolve(ranges),
		trips: trips,
	}, nil
}

func (c *cursor) takeDir() ast.Direction {
	if c.at(token.Dir) {
		return c.next().Dir
	}
	return ast.DirLocal
}

// takeLifetime consumes an optional lifetime qualifier. Only
// 'automatic' is legal on a data declaration; anything else means the
// grammar layer handed over tokens it should not have.
func (c *cursor) takeLifetime() *Error {
	if !c.at(token.Lifetime) {
		return nil
	}
	t := c.next()
	if t.Lifetime != ast.LifetimeAutomatic {
		return errQualifier(t.Span, "%s is not a valid declaration lifetime", describe(t))
	}
	return nil
}

// partialType is a base type still waiting for its packed ranges.
type partialType struct {
	kind    partialKind
	base    ast.UnresolvedType
	signing ast.Signing
	scope   string
	name    string
	modport string
}

type partialKind uint8

const (
	ptImplicit partialKind = iota
	ptBase
	ptAlias
	ptInterface
)

func (p partialType) resolve(ranges []ast.Range) ast.Type {
	switch p.kind {
	case ptBase:
		return p.base.Resolve(p.signing, ranges)
	case ptAlias:
		return ast.Alias{Scope: p.scope, Name: p.name, Ranges: ranges}
	case ptInterface:
		return ast.InterfaceT{Name: p.name, Modport: p.modport, Ranges: ranges}
	default:
		return ast.Implicit{Signing: p.signing, Ranges: ranges}
	}
}

// takeType consumes the base type of a component, if any. An ambiguous
// leading identifier is settled by the typename heuristic; when it
// turns out to be a variable name the identifier is left unconsumed
// and the type stays implicit.
func (c *cursor) takeType() partialType {
	rest := c.rest()
	switch c.peek().Kind {
	case token.Ident, token.ScopedIdent:
		t := c.peek()
		name := t.Text
		if t.Kind == token.ScopedIdent {
			name = t.Scope + "::" + name
		}
		if len(rest) > 1 && rest[1].Kind == token.Dot {
			// interface type with modport
			c.next()
			dot := c.next()
			return partialType{kind: ptInterface, name: name, modport: dot.Text}
		}
		if isTypeName(rest[1:]) {
			c.next()
			return partialType{kind: ptAlias, scope: t.Scope, name: t.Text}
		}
		// a variable name after all; takeTrips consumes it (and
		// rejects it if it turned out to be scope-qualified)
		return partialType{kind: ptImplicit}
	case token.TypeCtor:
		base := c.next().Base
		pt := partialType{kind: ptBase, base: base}
		if c.at(token.Signing) {
			pt.signing = c.next().Signing
		}
		return pt
	case token.Signing:
		return partialType{kind: ptImplicit, signing: c.next().Signing}
	default:
		return partialType{kind: ptImplicit}
	}
}

// takeRanges consumes array dimension tokens. An empty '[]' dimension
// gets its size from the element count of a following aggregate
// initializer; without one it contributes no range and the size is
// left to be inferred downstream.
func (c *cursor) takeRanges() []ast.Range {
	var ranges []ast.Range
	for {
		switch {
		case c.at(token.Range) && c.peek().Mode == ast.SelectNonIndexed:
			ranges = append(ranges, c.next().Range)
		case c.at(token.AutoDim):
			c.next()
			if r, ok := autoDimRange(c.peek()); ok {
				ranges = append(ranges, r)
			}
		default:
			return ranges
		}
	}
}

// autoDimRange infers [0:n-1] from an aggregate initializer with n
// elements. The initializer token itself is not consumed; it remains
// the triplet's assignment.
func autoDimRange(next token.Token) (ast.Range, bool) {
	if !next.IsAsgnEq() {
		return ast.Range{}, false
	}
	elems, ok := ast.AggregateElems(next.Expr)
	if !ok {
		return ast.Range{}, false
	}
	return ast.Range{
		Left:  ast.Number{Text: "0"},
		Right: ast.Number{Text: strconv.Itoa(len(elems) - 1)},
	}, true
}

// takeTrips consumes one or more comma-separated triplets, greedily,
// until the lookahead says the next tokens belong to a new component.
func (c *cursor) takeTrips() ([]triplet, *Error) {
	var trips []triplet
	for {
		if c.at(token.ScopedIdent) {
			t := c.peek()
			return nil, errShape(t.Span, "%s::%s cannot be declared: a scoped name can only name a type", t.Scope, t.Text)
		}
		if !c.at(token.Ident) {
			return nil, errShape(c.span(), "expected declaration name, got %s", describe(c.peek()))
		}
		trip := triplet{name: c.next().Text}
		trip.dims = c.takeRanges()
		if c.at(token.Asgn) {
			t := c.peek()
			if !t.IsAsgnEq() {
				return nil, errOperator(t.Span, "%s is not allowed in a declaration", describe(t))
			}
			c.next()
			trip.init = t.Expr
		}
		trips = append(trips, trip)

		if c.empty() {
			return trips, nil
		}
		if !c.at(token.Comma) {
			return nil, errShape(c.span(), "expected ',' or end of declaration, got %s", describe(c.peek()))
		}
		comma := c.next()
		if c.empty() {
			return nil, errShape(comma.Span, "declaration list ends after separator")
		}
		if !tripLookahead(c.rest()) {
			// the comma separated two components; the rest starts a new one
			return trips, nil
		}
	}
}

// ResolveDecls resolves a token stream as any number of declaration
// groups and expands each into its declarations.
func ResolveDecls(toks []token.Token) ([]ast.Decl, error) {
	if err := checkAsgnOps(toks); err != nil {
		return nil, err
	}
	comps, err := componentsOf(toks)
	if err != nil {
		return nil, err
	}
	var decls []ast.Decl
	for _, comp := range comps {
		decls = append(decls, comp.finalize()...)
	}
	return decls, nil
}

// ResolveDecl resolves a token stream that must contain exactly one
// declaration group.
func ResolveDecl(toks []token.Token) ([]ast.Decl, error) {
	if err := checkAsgnOps(toks); err != nil {
		return nil, err
	}
	comps, err := componentsOf(toks)
	if err != nil {
		return nil, err
	}
	if len(comps) != 1 {
		span := source.Span{}
		if len(toks) > 0 {
			span = toks[0].Span
		}
		return nil, errArity(span, "expected one declaration group, got %d", len(comps))
	}
	return comps[0].finalize(), nil
}
