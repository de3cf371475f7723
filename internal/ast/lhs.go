package ast

import (
	"strings"
)

// LHS is an assignment target. Built incrementally by the resolver's
// LHS reader: a leaf identifier wrapped by selects, member accesses,
// concatenations, or a streaming operator.
type LHS interface {
	lhsNode()
	String() string
}

// LHSIdent is a leaf identifier target, optionally package-qualified.
type LHSIdent struct {
	Scope string // "" for unqualified names
	Name  string
}

// LHSBit selects a single bit or element of a base target.
type LHSBit struct {
	Base  LHS
	Index Expr
}

// LHSRange selects a part of a base target.
type LHSRange struct {
	Base  LHS
	Mode  PartSelectMode
	Range Range
}

// LHSDot accesses a member of a base target.
type LHSDot struct {
	Base   LHS
	Member string
}

// LHSConcat is a flat concatenation of sub-targets.
type LHSConcat struct {
	Parts []LHS
}

// LHSStream is a streaming operator wrapped around a concatenation.
type LHSStream struct {
	Op    StreamOp
	Size  Expr // nil when no slice size was given
	Parts []LHS
}

func (LHSIdent) lhsNode()  {}
func (LHSBit) lhsNode()    {}
func (LHSRange) lhsNode()  {}
func (LHSDot) lhsNode()    {}
func (LHSConcat) lhsNode() {}
func (LHSStream) lhsNode() {}

func (l LHSIdent) String() string {
	if l.Scope != "" {
		return l.Scope + "::" + l.Name
	}
	return l.Name
}

func (l LHSBit) String() string {
	return l.Base.String() + "[" + l.Index.String() + "]"
}

func (l LHSRange) String() string {
	r := l.Range
	return l.Base.String() + "[" + r.Left.String() + l.Mode.String() + r.Right.String() + "]"
}

func (l LHSDot) String() string {
	return l.Base.String() + "." + l.Member
}

func (l LHSConcat) String() string {
	return "{" + joinLHSs(l.Parts) + "}"
}

func (l LHSStream) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	sb.WriteString(l.Op.String())
	if l.Size != nil {
		sb.WriteString(" ")
		sb.WriteString(l.Size.String())
	}
	sb.WriteString(" {")
	sb.WriteString(joinLHSs(l.Parts))
	sb.WriteString("}}")
	return sb.String()
}

func joinLHSs(parts []LHS) string {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = p.String()
	}
	return strings.Join(strs, ", ")
}
