package parser

import (
	"svlift/internal/ast"
	"svlift/internal/token"
)

// ResolvePortDecls resolves a module header port list into the ordered
// port names and any port declarations it carries.
//
// A bare, untyped name list ("a, b, c") produces only names; the
// directions and types are declared elsewhere. Anything else is parsed
// as declarations, with explicit directions propagating forward onto
// direction-less ports.
func ResolvePortDecls(toks []token.Token) ([]string, []ast.ModuleItem, error) {
	if err := checkAsgnOps(toks); err != nil {
		return nil, nil, err
	}
	if names, ok := barePortNames(toks); ok {
		return names, nil, nil
	}

	comps, err := componentsOf(toks)
	if err != nil {
		return nil, nil, err
	}
	var decls []ast.Decl
	for _, comp := range comps {
		decls = append(decls, comp.finalize()...)
	}
	propagateDirections(decls)

	var names []string
	items := make([]ast.ModuleItem, 0, len(decls))
	for _, d := range decls {
		if v, ok := d.(ast.Variable); ok {
			names = append(names, v.Name)
		}
		items = append(items, ast.MIDecl{Decl: d})
	}
	return names, items, nil
}

// barePortNames recognizes the fast path: an odd-length alternating
// identifier/comma sequence.
func barePortNames(toks []token.Token) ([]string, bool) {
	if len(toks) == 0 || len(toks)%2 == 0 {
		return nil, false
	}
	names := make([]string, 0, len(toks)/2+1)
	for i, t := range toks {
		if i%2 == 0 {
			if t.Kind != token.Ident {
				return nil, false
			}
			names = append(names, t.Text)
		} else if t.Kind != token.Comma {
			return nil, false
		}
	}
	return names, true
}

// propagateDirections copies the most recently seen explicit direction
// onto subsequent direction-less variables. Interface-typed ports are
// left untouched: they never take a direction, propagated or not.
func propagateDirections(decls []ast.Decl) {
	lastDir := ast.DirLocal
	for i, d := range decls {
		v, ok := d.(ast.Variable)
		if !ok {
			continue
		}
		if _, isIface := v.Type.(ast.InterfaceT); isIface {
			continue
		}
		if v.Dir != ast.DirLocal {
			lastDir = v.Dir
		} else if lastDir != ast.DirLocal {
			v.Dir = lastDir
			decls[i] = v
		}
	}
}
