package token

// Kind represents the category of a declaration token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota

	// Comma separates triplets and instances at the top level.
	Comma // ,
	// AutoDim is an empty '[]' dimension whose size is inferred later.
	AutoDim // []
	// Asgn carries an assignment operator, optional timing control, and
	// a right-hand expression.
	Asgn
	// Range is an explicit bit range or part-select.
	Range
	// Ident is a bare identifier.
	Ident
	// ScopedIdent is a package-qualified identifier.
	ScopedIdent
	// Dir is a port direction keyword.
	Dir
	// TypeCtor is a base type still awaiting signing and ranges.
	TypeCtor
	// ParamBindings is a pre-parsed '#(...)' parameter binding list.
	ParamBindings
	// InstanceArgs is a pre-parsed '(...)' port binding list.
	InstanceArgs
	// BitSelect is a single '[expr]' select, used in assignment targets.
	BitSelect
	// Concat is a '{...}' concatenation of assignment targets.
	Concat
	// Stream is a streaming operator over a target concatenation.
	Stream
	// Dot is a '.member' access, used in assignment targets and
	// interface type references.
	Dot
	// Signing is a standalone signing qualifier.
	Signing
	// Lifetime is a standalone lifetime qualifier.
	Lifetime
)

func (k Kind) String() string {
	switch k {
	case Comma:
		return "comma"
	case AutoDim:
		return "autodim"
	case Asgn:
		return "asgn"
	case Range:
		return "range"
	case Ident:
		return "ident"
	case ScopedIdent:
		return "scoped ident"
	case Dir:
		return "direction"
	case TypeCtor:
		return "type"
	case ParamBindings:
		return "param bindings"
	case InstanceArgs:
		return "instance args"
	case BitSelect:
		return "bit select"
	case Concat:
		return "concat"
	case Stream:
		return "stream"
	case Dot:
		return "dot"
	case Signing:
		return "signing"
	case Lifetime:
		return "lifetime"
	default:
		return "invalid"
	}
}
