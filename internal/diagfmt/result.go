package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"svlift/internal/ast"
	"svlift/internal/parser"
)

var commentColor = color.New(color.FgHiBlack)

func writeLine(w io.Writer, opts Opts, isComment bool, text string) {
	if isComment && opts.Color {
		text = commentColor.Sprint(text)
	}
	fmt.Fprintln(w, text)
}

func isTrace(text string) bool {
	return strings.HasPrefix(text, "Trace: ")
}

// FormatDecls renders resolved declarations, one per line.
func FormatDecls(w io.Writer, decls []ast.Decl, opts Opts) {
	for _, d := range decls {
		if c, ok := d.(ast.CommentDecl); ok {
			if !opts.ShowTraces && isTrace(c.Text) {
				continue
			}
			writeLine(w, opts, true, c.String())
			continue
		}
		writeLine(w, opts, false, d.String())
	}
}

// FormatItems renders resolved module items, one per line.
func FormatItems(w io.Writer, items []ast.ModuleItem, opts Opts) {
	for _, item := range items {
		if mi, ok := item.(ast.MIDecl); ok {
			FormatDecls(w, []ast.Decl{mi.Decl}, opts)
			continue
		}
		writeLine(w, opts, false, item.String())
	}
}

// FormatStmts renders resolved statements, one per line.
func FormatStmts(w io.Writer, stmts []ast.Stmt, opts Opts) {
	for _, s := range stmts {
		if c, ok := s.(ast.CommentStmt); ok {
			if !opts.ShowTraces && isTrace(c.Text) {
				continue
			}
			writeLine(w, opts, true, c.String())
			continue
		}
		writeLine(w, opts, false, s.String())
	}
}

// FormatPortDecls renders a resolved port list header followed by the
// port declarations.
func FormatPortDecls(w io.Writer, names []string, items []ast.ModuleItem, opts Opts) {
	fmt.Fprintf(w, "ports (%s)\n", strings.Join(names, ", "))
	FormatItems(w, items, opts)
}

// FormatForInit renders a resolved for-loop initializer: either its
// declarations or its assignment pairs.
func FormatForInit(w io.Writer, decls []ast.Decl, asgns []parser.ForAsgn, opts Opts) {
	FormatDecls(w, decls, opts)
	for _, a := range asgns {
		writeLine(w, opts, false, fmt.Sprintf("%s %s %s;", a.LHS, a.Op, a.RHS))
	}
}
