package ast

import (
	"strings"
)

// Binding is a named or positional connection in a binding list.
// An empty Name marks a positional binding.
type Binding struct {
	Name string
	Expr Expr // nil for an explicitly unconnected named binding
}

func (b Binding) String() string {
	expr := ""
	if b.Expr != nil {
		expr = b.Expr.String()
	}
	if b.Name == "" {
		return expr
	}
	return "." + b.Name + "(" + expr + ")"
}

func joinBindings(bindings []Binding) string {
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.String()
	}
	return strings.Join(parts, ", ")
}

// ModuleItem is a resolved item in a module body.
type ModuleItem interface {
	moduleItemNode()
	String() string
}

// MIDecl wraps a declaration as a module item.
type MIDecl struct {
	Decl Decl
}

// Instance is a module instantiation: one instance name with its
// parameter and port bindings. Elaboration severity tasks are
// synthesized as degenerate instances of the task name.
type Instance struct {
	Module string
	Params []Binding
	Name   string
	Range  *Range // optional explicit instance range
	Ports  []Binding
}

func (MIDecl) moduleItemNode()   {}
func (Instance) moduleItemNode() {}

func (i MIDecl) String() string {
	return i.Decl.String()
}

func (i Instance) String() string {
	var sb strings.Builder
	sb.WriteString(i.Module)
	if len(i.Params) > 0 {
		sb.WriteString(" #(")
		sb.WriteString(joinBindings(i.Params))
		sb.WriteString(")")
	}
	sb.WriteString(" ")
	sb.WriteString(i.Name)
	if i.Range != nil {
		sb.WriteString(i.Range.String())
	}
	sb.WriteString(" (")
	sb.WriteString(joinBindings(i.Ports))
	sb.WriteString(");")
	return sb.String()
}
