package ast

import (
	"strings"
)

// Range is a pair of bound expressions, '[left:right]'. Bounds are
// carried as expressions and never evaluated.
type Range struct {
	Left  Expr
	Right Expr
}

func (r Range) String() string {
	return "[" + r.Left.String() + ":" + r.Right.String() + "]"
}

func joinRanges(ranges []Range) string {
	var sb strings.Builder
	for _, r := range ranges {
		sb.WriteString(" ")
		sb.WriteString(r.String())
	}
	return sb.String()
}

// BaseKind identifies a built-in data type keyword.
type BaseKind uint8

const (
	BaseLogic BaseKind = iota
	BaseReg
	BaseBit
	BaseByte
	BaseShortInt
	BaseInt
	BaseLongInt
	BaseInteger
	BaseTime
	BaseReal
	BaseShortReal
	BaseRealTime
)

// Vector reports whether the kind is a vector type that takes packed
// ranges.
func (k BaseKind) Vector() bool {
	return k <= BaseBit
}

func (k BaseKind) String() string {
	switch k {
	case BaseLogic:
		return "logic"
	case BaseReg:
		return "reg"
	case BaseBit:
		return "bit"
	case BaseByte:
		return "byte"
	case BaseShortInt:
		return "shortint"
	case BaseInt:
		return "int"
	case BaseLongInt:
		return "longint"
	case BaseInteger:
		return "integer"
	case BaseTime:
		return "time"
	case BaseReal:
		return "real"
	case BaseShortReal:
		return "shortreal"
	case BaseRealTime:
		return "realtime"
	}
	return "logic"
}

// BaseKindNamed maps a type keyword to its kind.
func BaseKindNamed(name string) (BaseKind, bool) {
	for k := BaseLogic; k <= BaseRealTime; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Type is a resolved base type.
type Type interface {
	typeNode()
	String() string
}

// Implicit is the absent type: an optional signing and packed ranges
// with no type keyword.
type Implicit struct {
	Signing Signing
	Ranges  []Range
}

// IntegerVector is a vector type keyword with signing and packed
// ranges, e.g. "logic signed [7:0]".
type IntegerVector struct {
	Kind    BaseKind
	Signing Signing
	Ranges  []Range
}

// IntegerAtom is an atomic type keyword with optional signing. Packed
// ranges are kept when the upstream grammar produced them.
type IntegerAtom struct {
	Kind    BaseKind
	Signing Signing
	Ranges  []Range
}

// Alias is a reference to a user-defined type, optionally
// package-qualified.
type Alias struct {
	Scope  string // "" for unqualified names
	Name   string
	Ranges []Range
}

// InterfaceT is an interface port type with an optional modport.
type InterfaceT struct {
	Name    string
	Modport string // "" when no modport was given
	Ranges  []Range
}

// UnresolvedType is a base type keyword still waiting for the signing
// and packed ranges that follow it in the token stream.
type UnresolvedType struct {
	Kind BaseKind
}

// Resolve attaches the signing and ranges collected after the keyword
// and produces the final type.
func (u UnresolvedType) Resolve(signing Signing, ranges []Range) Type {
	if u.Kind.Vector() {
		return IntegerVector{Kind: u.Kind, Signing: signing, Ranges: ranges}
	}
	return IntegerAtom{Kind: u.Kind, Signing: signing, Ranges: ranges}
}

func (Implicit) typeNode()      {}
func (IntegerVector) typeNode() {}
func (IntegerAtom) typeNode()   {}
func (Alias) typeNode()         {}
func (InterfaceT) typeNode()    {}

func (t Implicit) String() string {
	out := t.Signing.String() + joinRanges(t.Ranges)
	return strings.TrimPrefix(out, " ")
}

func baseString(kind BaseKind, signing Signing, ranges []Range) string {
	var sb strings.Builder
	sb.WriteString(kind.String())
	if s := signing.String(); s != "" {
		sb.WriteString(" ")
		sb.WriteString(s)
	}
	sb.WriteString(joinRanges(ranges))
	return sb.String()
}

func (t IntegerVector) String() string {
	return baseString(t.Kind, t.Signing, t.Ranges)
}

func (t IntegerAtom) String() string {
	return baseString(t.Kind, t.Signing, t.Ranges)
}

func (t Alias) String() string {
	name := t.Name
	if t.Scope != "" {
		name = t.Scope + "::" + name
	}
	return name + joinRanges(t.Ranges)
}

func (t InterfaceT) String() string {
	name := t.Name
	if t.Modport != "" {
		name += "." + t.Modport
	}
	return name + joinRanges(t.Ranges)
}
