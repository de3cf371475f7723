package diag

// Severity ranks how serious a diagnostic is. The order is meaningful:
// Bag.HasErrors and Bag.Sort compare severities numerically, with
// higher values counting as worse.
type Severity uint8

const (
	SevInfo    Severity = iota // advisory, never fails a run
	SevWarning                 // suspicious input, resolution continued
	SevError                   // resolution failed
)

var severityNames = [...]string{"INFO", "WARNING", "ERROR"}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}
