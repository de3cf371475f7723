package parser

import (
	"svlift/internal/ast"
	"svlift/internal/source"
	"svlift/internal/token"
)

// elabTaskName is the synthesized instance name for elaboration
// severity tasks kept in the output.
const elabTaskName = "elab_task"

// severityTasks are the elaboration-time diagnostic calls recognized
// at module item level. $info contributes nothing to the output; the
// rest become degenerate instances. Whether that asymmetry is the
// long-term semantic is an open question upstream; it is preserved
// here as-is.
var severityTasks = map[string]bool{
	"$info":    true,
	"$warning": true,
	"$error":   true,
	"$fatal":   true,
}

// ResolveModuleItems resolves a module body item: a declaration group,
// a module instantiation list, or an elaboration severity task.
func ResolveModuleItems(toks []token.Token) ([]ast.ModuleItem, error) {
	if err := checkAsgnOps(toks); err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, errShape(source.Span{}, "empty module item")
	}
	if toks[0].Kind == token.Ident && severityTasks[toks[0].Text] {
		return resolveElabTask(toks)
	}
	if hasInstanceArgs(toks) {
		return resolveInstances(toks)
	}
	decls, err := ResolveDecl(toks)
	if err != nil {
		return nil, err
	}
	items := make([]ast.ModuleItem, len(decls))
	for i, d := range decls {
		items[i] = ast.MIDecl{Decl: d}
	}
	return items, nil
}

func hasInstanceArgs(toks []token.Token) bool {
	for _, t := range toks {
		if t.Kind == token.InstanceArgs {
			return true
		}
	}
	return false
}

// resolveElabTask handles "$task" or "$task(args)" at item level.
func resolveElabTask(toks []token.Token) ([]ast.ModuleItem, error) {
	name := toks[0].Text
	var ports []ast.Binding
	switch {
	case len(toks) == 1:
		// bare call, no arguments
	case len(toks) == 2 && toks[1].Kind == token.InstanceArgs:
		ports = toks[1].Bindings
	default:
		return nil, errShape(toks[1].Span, "unexpected %s after elaboration task %s", describe(toks[1]), name)
	}
	if name == "$info" {
		// informational calls contribute nothing
		return nil, nil
	}
	inst := ast.Instance{
		Module: name,
		Name:   elabTaskName,
		Ports:  ports,
	}
	return []ast.ModuleItem{inst}, nil
}

// resolveInstances parses "module_type [#(params)] name [range] (args),
// ...". Any token inconsistent with that shape is fatal: instantiation
// tokens never mix with declaration tokens.
func resolveInstances(toks []token.Token) ([]ast.ModuleItem, error) {
	c := newCursor(toks)
	if !c.at(token.Ident) {
		return nil, errShape(c.span(), "expected module type name, got %s", describe(c.peek()))
	}
	moduleName := c.next().Text

	var params []ast.Binding
	if c.at(token.ParamBindings) {
		params = c.next().Bindings
	}

	var items []ast.ModuleItem
	for {
		if !c.at(token.Ident) {
			return nil, errShape(c.span(), "expected instance name, got %s", describe(c.peek()))
		}
		name := c.next().Text

		var instRange *ast.Range
		if c.at(token.Range) {
			t := c.next()
			r := t.Range
			instRange = &r
		}
		if !c.at(token.InstanceArgs) {
			return nil, errShape(c.span(), "expected port bindings for instance %q, got %s", name, describe(c.peek()))
		}
		ports := c.next().Bindings

		items = append(items, ast.Instance{
			Module: moduleName,
			Params: params,
			Name:   name,
			Range:  instRange,
			Ports:  ports,
		})

		if c.empty() {
			return items, nil
		}
		if !c.at(token.Comma) {
			return nil, errShape(c.span(), "expected ',' between instances, got %s", describe(c.peek()))
		}
		comma := c.next()
		if c.empty() {
			return nil, errShape(comma.Span, "instance list ends after separator")
		}
	}
}
