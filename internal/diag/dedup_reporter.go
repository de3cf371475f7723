package diag

import "svlift/internal/source"

// DedupReporter forwards each distinct diagnostic once. Two diagnostics
// are the same when code, severity, primary span and message all match;
// notes are ignored for the comparison.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

type dedupKey struct {
	code Code
	sev  Severity
	span source.Span
	msg  string
}

// NewDedupReporter wraps next with duplicate suppression.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r == nil || r.next == nil {
		return
	}
	key := dedupKey{code: code, sev: sev, span: primary, msg: msg}
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}
	r.next.Report(code, sev, primary, msg, notes)
}
