package parser

import (
	"fmt"

	"svlift/internal/source"
	"svlift/internal/token"
)

// ErrorKind classifies fatal resolver errors.
type ErrorKind uint8

const (
	// ShapeMismatch means the token stream does not fit any shape the
	// current entry point recognizes.
	ShapeMismatch ErrorKind = iota
	// InvalidOperator means an assignment operator other than plain '='
	// (or one carrying a timing control) reached a declaration context.
	InvalidOperator
	// ArityMismatch means an entry point expecting exactly one
	// declaration group got zero or several.
	ArityMismatch
	// BadTarget means a statement prefix could not be folded into an
	// assignment target even though a trailing assignment or call
	// arguments token was present.
	BadTarget
	// InvalidQualifier means a declaration lifetime other than
	// 'automatic' was present.
	InvalidQualifier
)

func (k ErrorKind) String() string {
	switch k {
	case ShapeMismatch:
		return "shape mismatch"
	case InvalidOperator:
		return "invalid operator"
	case ArityMismatch:
		return "arity mismatch"
	case BadTarget:
		return "bad assignment target"
	case InvalidQualifier:
		return "invalid qualifier"
	default:
		return "parse error"
	}
}

// Error is a fatal resolver error. There is no recoverable or partial
// mode: an entry point either returns a result or one of these.
type Error struct {
	Kind ErrorKind
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func errShape(span source.Span, format string, args ...any) *Error {
	return &Error{Kind: ShapeMismatch, Span: span, Msg: fmt.Sprintf(format, args...)}
}

func errOperator(span source.Span, format string, args ...any) *Error {
	return &Error{Kind: InvalidOperator, Span: span, Msg: fmt.Sprintf(format, args...)}
}

func errArity(span source.Span, format string, args ...any) *Error {
	return &Error{Kind: ArityMismatch, Span: span, Msg: fmt.Sprintf(format, args...)}
}

func errTarget(span source.Span, format string, args ...any) *Error {
	return &Error{Kind: BadTarget, Span: span, Msg: fmt.Sprintf(format, args...)}
}

func errQualifier(span source.Span, format string, args ...any) *Error {
	return &Error{Kind: InvalidQualifier, Span: span, Msg: fmt.Sprintf(format, args...)}
}

// describe renders a token for error messages.
func describe(t token.Token) string {
	switch t.Kind {
	case token.Ident:
		return fmt.Sprintf("identifier %q", t.Text)
	case token.ScopedIdent:
		return fmt.Sprintf("identifier %q", t.Scope+"::"+t.Text)
	case token.Dir:
		return fmt.Sprintf("direction %q", t.Dir.String())
	case token.Signing:
		return fmt.Sprintf("signing %q", t.Signing.String())
	case token.Lifetime:
		return fmt.Sprintf("lifetime %q", t.Lifetime.String())
	case token.Dot:
		return fmt.Sprintf("member %q", "."+t.Text)
	case token.Asgn:
		return fmt.Sprintf("assignment %q", t.Op.String())
	default:
		return t.Kind.String()
	}
}
