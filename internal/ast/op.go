package ast

// Direction is a port direction. The zero value means no explicit
// direction was given.
type Direction uint8

const (
	DirLocal Direction = iota
	DirInput
	DirOutput
	DirInout
	DirRef
)

func (d Direction) String() string {
	switch d {
	case DirInput:
		return "input"
	case DirOutput:
		return "output"
	case DirInout:
		return "inout"
	case DirRef:
		return "ref"
	}
	return ""
}

// Signing is an explicit signedness qualifier. The zero value means
// none was given.
type Signing uint8

const (
	SignNone Signing = iota
	SignSigned
	SignUnsigned
)

func (s Signing) String() string {
	switch s {
	case SignSigned:
		return "signed"
	case SignUnsigned:
		return "unsigned"
	}
	return ""
}

// Lifetime is a declaration lifetime qualifier.
type Lifetime uint8

const (
	LifetimeAutomatic Lifetime = iota
	LifetimeStatic
)

func (l Lifetime) String() string {
	if l == LifetimeStatic {
		return "static"
	}
	return "automatic"
}

// PartSelectMode distinguishes plain ranges from indexed part selects.
type PartSelectMode uint8

const (
	SelectNonIndexed PartSelectMode = iota
	IndexedPlus
	IndexedMinus
)

func (m PartSelectMode) String() string {
	switch m {
	case IndexedPlus:
		return "+:"
	case IndexedMinus:
		return "-:"
	}
	return ":"
}

// AsgnOp is an assignment operator. Only AsgnEq is legal in
// declarations; the full set appears in statements.
type AsgnOp uint8

const (
	AsgnEq AsgnOp = iota
	AsgnNonBlocking
	AsgnPlus
	AsgnMinus
	AsgnMul
	AsgnDiv
	AsgnMod
	AsgnAnd
	AsgnOr
	AsgnXor
	AsgnShl
	AsgnShr
	AsgnAShl
	AsgnAShr
)

func (op AsgnOp) String() string {
	switch op {
	case AsgnEq:
		return "="
	case AsgnNonBlocking:
		return "<="
	case AsgnPlus:
		return "+="
	case AsgnMinus:
		return "-="
	case AsgnMul:
		return "*="
	case AsgnDiv:
		return "/="
	case AsgnMod:
		return "%="
	case AsgnAnd:
		return "&="
	case AsgnOr:
		return "|="
	case AsgnXor:
		return "^="
	case AsgnShl:
		return "<<="
	case AsgnShr:
		return ">>="
	case AsgnAShl:
		return "<<<="
	case AsgnAShr:
		return ">>>="
	}
	return "="
}

// StreamOp is a streaming concatenation direction.
type StreamOp uint8

const (
	StreamLeft StreamOp = iota
	StreamRight
)

func (op StreamOp) String() string {
	if op == StreamRight {
		return ">>"
	}
	return "<<"
}

// Timing is an intra-assignment timing control. Either field may be
// nil; a nil *Timing means no control at all.
type Timing struct {
	Delay Expr
	Event Expr
}

func (t *Timing) String() string {
	if t == nil {
		return ""
	}
	out := ""
	if t.Delay != nil {
		out = "#" + t.Delay.String()
	}
	if t.Event != nil {
		if out != "" {
			out += " "
		}
		out += "@(" + t.Event.String() + ")"
	}
	return out
}
