package diag

import "svlift/internal/source"

// Reporter is the minimal contract phases use to emit diagnostics without
// coupling to concrete storage. Implementations: BagReporter (appends to a
// Bag) and DedupReporter (suppresses duplicates before forwarding).
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// BagReporter is an adapter that writes into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes,
	})
}

// ReportError emits a SevError diagnostic in one call.
func ReportError(r Reporter, code Code, primary source.Span, msg string) {
	if r != nil {
		r.Report(code, SevError, primary, msg, nil)
	}
}

// ReportWarning emits a SevWarning diagnostic in one call.
func ReportWarning(r Reporter, code Code, primary source.Span, msg string) {
	if r != nil {
		r.Report(code, SevWarning, primary, msg, nil)
	}
}

// ReportInfo emits a SevInfo diagnostic in one call.
func ReportInfo(r Reporter, code Code, primary source.Span, msg string) {
	if r != nil {
		r.Report(code, SevInfo, primary, msg, nil)
	}
}
