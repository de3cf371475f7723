package fixture

import (
	"strings"

	"svlift/internal/ast"
)

// parseExpr reads an expression liberally. Resolution never inspects
// expression structure beyond aggregate element counts, so everything
// unrecognized is kept as an identifier or raw text.
func parseExpr(s string) ast.Expr {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return nil
	case strings.HasPrefix(s, `"`):
		return ast.Str{Text: s}
	case strings.HasPrefix(s, "'{") && strings.HasSuffix(s, "}"):
		return ast.Pattern{Items: parseExprList(s[2 : len(s)-1])}
	case strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}"):
		return ast.Concat{Parts: parseExprList(s[1 : len(s)-1])}
	case isNumberStart(s[0]):
		return ast.Number{Text: s}
	case isIdentText(s):
		return ast.Ident{Name: s}
	default:
		return ast.Raw{Text: s}
	}
}

func parseExprList(s string) []ast.Expr {
	var exprs []ast.Expr
	for _, part := range splitTop(s) {
		if e := parseExpr(part); e != nil {
			exprs = append(exprs, e)
		}
	}
	return exprs
}

func isNumberStart(b byte) bool {
	return (b >= '0' && b <= '9') || b == '\''
}

func isIdentText(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		ok := b == '_' || b == '$' ||
			(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
			(i > 0 && b >= '0' && b <= '9')
		if !ok {
			return false
		}
	}
	return len(s) > 0
}

// splitTop splits on commas outside brackets, braces, parens and
// string quotes.
func splitTop(s string) []string {
	var parts []string
	depth := 0
	quoted := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case quoted:
			if b == '"' && (i == 0 || s[i-1] != '\\') {
				quoted = false
			}
		case b == '"':
			quoted = true
		case b == '(' || b == '[' || b == '{':
			depth++
		case b == ')' || b == ']' || b == '}':
			depth--
		case b == ',' && depth == 0:
			parts = append(parts, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	if tail := strings.TrimSpace(s[start:]); tail != "" || len(parts) > 0 {
		parts = append(parts, tail)
	}
	return parts
}

// indexTop finds the first top-level occurrence of sep, or -1.
func indexTop(s, sep string) int {
	depth := 0
	quoted := false
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case quoted:
			if b == '"' && (i == 0 || s[i-1] != '\\') {
				quoted = false
			}
		case b == '"':
			quoted = true
		case b == '(' || b == '[' || b == '{':
			depth++
		case b == ')' || b == ']' || b == '}':
			depth--
		case depth == 0 && strings.HasPrefix(s[i:], sep):
			return i
		}
	}
	return -1
}
