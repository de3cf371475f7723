package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"svlift/internal/diag"
	"svlift/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

func severityLabel(sev diag.Severity, useColor bool) string {
	label := sev.String()
	if !useColor {
		return label
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(label)
	case diag.SevWarning:
		return warningColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

// Pretty renders a bag's diagnostics in a human readable form, one
// line per diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// Notes follow indented when enabled. Call bag.Sort() beforehand for
// deterministic output.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts Opts) {
	for _, d := range bag.Items() {
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			fs.Position(d.Primary),
			severityLabel(d.Severity, opts.Color),
			d.Code.ID(),
			d.Message)
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  note: %s: %s\n", fs.Position(n.Span), n.Msg)
		}
	}
}

// Short renders diagnostics one per line without color, intended for
// golden comparisons and quiet CLI output.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet) {
	for _, d := range bag.Items() {
		fmt.Fprintf(w, "%s %s %s %s\n",
			severityWord(d.Severity),
			d.Code.ID(),
			fs.Position(d.Primary),
			d.Message)
	}
}

func severityWord(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "info"
	}
}
