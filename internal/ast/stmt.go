package ast

import (
	"strings"
)

// Stmt is a resolved statement.
type Stmt interface {
	stmtNode()
	String() string
}

// AsgnStmt is an assignment statement.
type AsgnStmt struct {
	Op     AsgnOp
	Timing *Timing // nil when no intra-assignment timing control
	LHS    LHS
	RHS    Expr
}

// CallArgs are the arguments of a subroutine call, split into
// positional and named parts.
type CallArgs struct {
	Positional []Expr
	Named      []Binding
}

// CallStmt is a subroutine call statement.
type CallStmt struct {
	Scope string // "" for unqualified names
	Name  string
	Args  CallArgs
}

// CommentStmt is a pass-through comment, used for the trace markers
// emitted before every resolved statement.
type CommentStmt struct {
	Text string
}

func (AsgnStmt) stmtNode()    {}
func (CallStmt) stmtNode()    {}
func (CommentStmt) stmtNode() {}

func (s AsgnStmt) String() string {
	var sb strings.Builder
	sb.WriteString(s.LHS.String())
	sb.WriteString(" ")
	sb.WriteString(s.Op.String())
	sb.WriteString(" ")
	if t := s.Timing.String(); t != "" {
		sb.WriteString(t)
		sb.WriteString(" ")
	}
	sb.WriteString(s.RHS.String())
	sb.WriteString(";")
	return sb.String()
}

func (s CallStmt) String() string {
	name := s.Name
	if s.Scope != "" {
		name = s.Scope + "::" + name
	}
	parts := make([]string, 0, len(s.Args.Positional)+len(s.Args.Named))
	for _, e := range s.Args.Positional {
		parts = append(parts, e.String())
	}
	for _, b := range s.Args.Named {
		parts = append(parts, b.String())
	}
	if len(parts) == 0 {
		return name + ";"
	}
	return name + "(" + strings.Join(parts, ", ") + ");"
}

func (s CommentStmt) String() string {
	return "// " + s.Text
}
