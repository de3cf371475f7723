package fixture

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"svlift/internal/ast"
	"svlift/internal/diag"
	"svlift/internal/source"
	"svlift/internal/token"
)

// DecodeError reports a malformed token entry. Index is the entry's
// position within the stream.
type DecodeError struct {
	Code  diag.Code
	Index int
	Entry string
	Msg   string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("token %d %q: %s", e.Index, e.Entry, e.Msg)
}

var directions = map[string]ast.Direction{
	"input":  ast.DirInput,
	"output": ast.DirOutput,
	"inout":  ast.DirInout,
	"ref":    ast.DirRef,
}

var signings = map[string]ast.Signing{
	"signed":   ast.SignSigned,
	"unsigned": ast.SignUnsigned,
}

var lifetimes = map[string]ast.Lifetime{
	"automatic": ast.LifetimeAutomatic,
	"static":    ast.LifetimeStatic,
}

var asgnOps = map[string]ast.AsgnOp{
	"=":    ast.AsgnEq,
	"<=":   ast.AsgnNonBlocking,
	"+=":   ast.AsgnPlus,
	"-=":   ast.AsgnMinus,
	"*=":   ast.AsgnMul,
	"/=":   ast.AsgnDiv,
	"%=":   ast.AsgnMod,
	"&=":   ast.AsgnAnd,
	"|=":   ast.AsgnOr,
	"^=":   ast.AsgnXor,
	"<<=":  ast.AsgnShl,
	">>=":  ast.AsgnShr,
	"<<<=": ast.AsgnAShl,
	">>>=": ast.AsgnAShr,
}

// Decode turns the stream's token entries into resolver tokens. Spans
// are synthetic: each token covers its ordinal within the stream, which
// is enough for trace markers and diagnostics against fixture files.
func (s Stream) Decode(file source.FileID) ([]token.Token, error) {
	toks := make([]token.Token, 0, len(s.Tokens))
	for i, entry := range s.Tokens {
		start, err := safecast.Conv[uint32](i)
		if err != nil {
			return nil, &DecodeError{Code: diag.DecBadTokenForm, Index: i, Entry: entry, Msg: err.Error()}
		}
		span := source.Span{File: file, Start: start, End: start + 1}
		tok, derr := decodeEntry(entry, span)
		if derr != nil {
			derr.Index = i
			return nil, derr
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

func decodeEntry(entry string, span source.Span) (token.Token, *DecodeError) {
	entry = strings.TrimSpace(entry)
	keyword, payload := entry, ""
	if idx := strings.IndexByte(entry, ' '); idx >= 0 {
		keyword, payload = entry[:idx], strings.TrimSpace(entry[idx+1:])
	}

	fail := func(code diag.Code, format string, args ...any) (token.Token, *DecodeError) {
		return token.Token{}, &DecodeError{Code: code, Entry: entry, Msg: fmt.Sprintf(format, args...)}
	}

	switch keyword {
	case "comma":
		if payload != "" {
			return fail(diag.DecBadTokenForm, "comma takes no payload")
		}
		return token.MkComma(span), nil

	case "autodim":
		if payload != "" {
			return fail(diag.DecBadTokenForm, "autodim takes no payload")
		}
		return token.MkAutoDim(span), nil

	case "ident":
		if !isIdentText(payload) {
			return fail(diag.DecBadTokenForm, "expected identifier, got %q", payload)
		}
		return token.MkIdent(span, payload), nil

	case "scoped":
		scope, name, ok := strings.Cut(payload, "::")
		if !ok || !isIdentText(scope) || !isIdentText(name) {
			return fail(diag.DecBadTokenForm, "expected scope::name, got %q", payload)
		}
		return token.MkScopedIdent(span, scope, name), nil

	case "dot":
		if !isIdentText(payload) {
			return fail(diag.DecBadTokenForm, "expected member name, got %q", payload)
		}
		return token.MkDot(span, payload), nil

	case "dir":
		dir, ok := directions[payload]
		if !ok {
			return fail(diag.DecBadTokenForm, "unknown direction %q", payload)
		}
		return token.MkDir(span, dir), nil

	case "type":
		kind, ok := ast.BaseKindNamed(payload)
		if !ok {
			return fail(diag.DecBadTokenForm, "unknown type keyword %q", payload)
		}
		return token.MkTypeCtor(span, ast.UnresolvedType{Kind: kind}), nil

	case "signing":
		signing, ok := signings[payload]
		if !ok {
			return fail(diag.DecBadTokenForm, "unknown signing %q", payload)
		}
		return token.MkSigning(span, signing), nil

	case "lifetime":
		lifetime, ok := lifetimes[payload]
		if !ok {
			return fail(diag.DecBadTokenForm, "unknown lifetime %q", payload)
		}
		return token.MkLifetime(span, lifetime), nil

	case "range":
		mode, r, ok := parseRange(payload)
		if !ok {
			return fail(diag.DecBadRange, "expected left:right bounds, got %q", payload)
		}
		return token.MkRange(span, mode, r), nil

	case "asgn":
		opText, rest, _ := strings.Cut(payload, " ")
		op, ok := asgnOps[opText]
		if !ok {
			return fail(diag.DecBadTokenForm, "unknown assignment operator %q", opText)
		}
		timing, rest, ok := parseTiming(strings.TrimSpace(rest))
		if !ok {
			return fail(diag.DecBadTokenForm, "malformed timing control in %q", payload)
		}
		rhs := parseExpr(rest)
		if rhs == nil {
			return fail(diag.DecBadTokenForm, "assignment needs a right-hand side")
		}
		return token.MkAsgn(span, op, timing, rhs), nil

	case "bitsel":
		index := parseExpr(payload)
		if index == nil {
			return fail(diag.DecBadTokenForm, "bit select needs an index expression")
		}
		return token.MkBitSelect(span, index), nil

	case "params":
		bindings, derr := parseBindings(payload)
		if derr != nil {
			derr.Entry = entry
			return token.Token{}, derr
		}
		return token.MkParamBindings(span, bindings), nil

	case "args":
		bindings, derr := parseBindings(payload)
		if derr != nil {
			derr.Entry = entry
			return token.Token{}, derr
		}
		return token.MkInstanceArgs(span, bindings), nil

	case "concat":
		parts, ok := parseLHSParts(payload)
		if !ok {
			return fail(diag.DecBadTokenForm, "expected target names, got %q", payload)
		}
		return token.MkConcat(span, parts), nil

	case "stream":
		op, size, parts, ok := parseStream(payload)
		if !ok {
			return fail(diag.DecBadTokenForm, "expected '<< [size] parts', got %q", payload)
		}
		return token.MkStream(span, op, size, parts), nil

	default:
		return fail(diag.DecUnknownToken, "unknown token keyword %q", keyword)
	}
}

// parseRange reads "left:right", "left+:width" or "left-:width".
func parseRange(s string) (ast.PartSelectMode, ast.Range, bool) {
	idx := indexTop(s, ":")
	if idx <= 0 || idx == len(s)-1 {
		return 0, ast.Range{}, false
	}
	mode := ast.SelectNonIndexed
	left := s[:idx]
	switch s[idx-1] {
	case '+':
		mode = ast.IndexedPlus
		left = s[:idx-1]
	case '-':
		mode = ast.IndexedMinus
		left = s[:idx-1]
	}
	lo, hi := parseExpr(left), parseExpr(s[idx+1:])
	if lo == nil || hi == nil {
		return 0, ast.Range{}, false
	}
	return mode, ast.Range{Left: lo, Right: hi}, true
}

// parseTiming reads an optional leading "#delay" and/or "@(event)"
// control, returning the remaining text.
func parseTiming(s string) (*ast.Timing, string, bool) {
	var timing *ast.Timing
	if strings.HasPrefix(s, "#") {
		delayText, rest, _ := strings.Cut(s[1:], " ")
		delay := parseExpr(delayText)
		if delay == nil {
			return nil, "", false
		}
		timing = &ast.Timing{Delay: delay}
		s = strings.TrimSpace(rest)
	}
	if strings.HasPrefix(s, "@(") {
		end := strings.IndexByte(s, ')')
		if end < 0 {
			return nil, "", false
		}
		event := parseExpr(s[2:end])
		if event == nil {
			return nil, "", false
		}
		if timing == nil {
			timing = &ast.Timing{}
		}
		timing.Event = event
		s = strings.TrimSpace(s[end+1:])
	}
	return timing, s, true
}

// parseBindings reads a comma-separated binding list. "name=expr" makes
// a named binding ("name=" for explicitly unconnected), anything else a
// positional one. An empty payload is an empty binding list.
func parseBindings(s string) ([]ast.Binding, *DecodeError) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var bindings []ast.Binding
	for _, part := range splitTop(s) {
		if part == "" {
			return nil, &DecodeError{Code: diag.DecBadBinding, Msg: "empty binding"}
		}
		if idx := indexTop(part, "="); idx >= 0 && isIdentText(strings.TrimSpace(part[:idx])) {
			name := strings.TrimSpace(part[:idx])
			bindings = append(bindings, ast.Binding{Name: name, Expr: parseExpr(part[idx+1:])})
			continue
		}
		expr := parseExpr(part)
		if expr == nil {
			return nil, &DecodeError{Code: diag.DecBadBinding, Msg: fmt.Sprintf("malformed binding %q", part)}
		}
		bindings = append(bindings, ast.Binding{Expr: expr})
	}
	return bindings, nil
}

// parseLHSParts reads a comma-separated list of plain or scoped names.
func parseLHSParts(s string) ([]ast.LHS, bool) {
	var parts []ast.LHS
	for _, part := range splitTop(s) {
		if scope, name, ok := strings.Cut(part, "::"); ok && isIdentText(scope) && isIdentText(name) {
			parts = append(parts, ast.LHSIdent{Scope: scope, Name: name})
			continue
		}
		if !isIdentText(part) {
			return nil, false
		}
		parts = append(parts, ast.LHSIdent{Name: part})
	}
	if len(parts) == 0 {
		return nil, false
	}
	return parts, true
}

// parseStream reads "<< size parts" or ">> parts".
func parseStream(s string) (ast.StreamOp, ast.Expr, []ast.LHS, bool) {
	fields := strings.Fields(s)
	if len(fields) < 2 || len(fields) > 3 {
		return 0, nil, nil, false
	}
	var op ast.StreamOp
	switch fields[0] {
	case "<<":
		op = ast.StreamLeft
	case ">>":
		op = ast.StreamRight
	default:
		return 0, nil, nil, false
	}
	var size ast.Expr
	partsText := fields[1]
	if len(fields) == 3 {
		size = parseExpr(fields[1])
		if size == nil {
			return 0, nil, nil, false
		}
		partsText = fields[2]
	}
	parts, ok := parseLHSParts(partsText)
	if !ok {
		return 0, nil, nil, false
	}
	return op, size, parts, true
}
