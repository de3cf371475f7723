package diagfmt

// Opts configures rendering of resolved output and diagnostics.
type Opts struct {
	Color      bool
	ShowTraces bool // include trace comment markers in resolved output
	ShowNotes  bool
}
