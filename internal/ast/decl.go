package ast

import (
	"strings"
)

// Decl is a single resolved declaration.
type Decl interface {
	declNode()
	String() string
}

// Variable declares one name. Declarations produced from one shared
// direction/type component each carry that direction and type.
type Variable struct {
	Dir  Direction
	Type Type
	Name string
	Dims []Range // per-name unpacked dimensions
	Init Expr    // nil when no initializer
}

// CommentDecl is a pass-through comment, used for trace markers that
// locate the first token of a reconstructed component.
type CommentDecl struct {
	Text string
}

func (Variable) declNode()    {}
func (CommentDecl) declNode() {}

func (d Variable) String() string {
	var sb strings.Builder
	if dir := d.Dir.String(); dir != "" {
		sb.WriteString(dir)
		sb.WriteString(" ")
	}
	if t := d.Type.String(); t != "" {
		sb.WriteString(t)
		sb.WriteString(" ")
	}
	sb.WriteString(d.Name)
	sb.WriteString(joinRanges(d.Dims))
	if d.Init != nil {
		sb.WriteString(" = ")
		sb.WriteString(d.Init.String())
	}
	sb.WriteString(";")
	return sb.String()
}

func (d CommentDecl) String() string {
	return "// " + d.Text
}
