package driver

import (
	"fmt"
	"io"
	"strings"

	"svlift/internal/diagfmt"
	"svlift/internal/fixture"
)

// RenderResult writes the resolved output of every stream in a file
// result. Each stream gets a header line followed by its rendered
// payload, so multi-stream fixtures stay diffable.
func RenderResult(w io.Writer, res *FileResult, opts diagfmt.Opts) {
	for i, sr := range res.Streams {
		name := sr.Name
		if name == "" {
			name = fmt.Sprintf("stream %d", i+1)
		}
		if sr.Failed {
			fmt.Fprintf(w, "-- %s (%s): failed\n", name, sr.Context)
			continue
		}
		fmt.Fprintf(w, "-- %s (%s)\n", name, sr.Context)
		switch sr.Context {
		case fixture.ContextPortDecls:
			diagfmt.FormatPortDecls(w, sr.Ports, sr.Items, opts)
		case fixture.ContextModuleItems:
			diagfmt.FormatItems(w, sr.Items, opts)
		case fixture.ContextDeclOrStmt:
			diagfmt.FormatDecls(w, sr.Decls, opts)
			diagfmt.FormatStmts(w, sr.Stmts, opts)
		case fixture.ContextForInit:
			diagfmt.FormatForInit(w, sr.Decls, sr.Asgns, opts)
		default:
			diagfmt.FormatDecls(w, sr.Decls, opts)
		}
	}
}

// RenderResultString renders a file result into a plain string, the
// form stored in the disk cache.
func RenderResultString(res *FileResult, showTraces bool) string {
	var sb strings.Builder
	RenderResult(&sb, res, diagfmt.Opts{ShowTraces: showTraces})
	return sb.String()
}
