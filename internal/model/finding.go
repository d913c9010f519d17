package model

import "sort"

// Severity ranks a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// rank orders severities for the stable finding sort: errors first.
func (s Severity) rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

// Finding is one compliance-validation result. Findings are ephemeral:
// recomputed on every pass, never stored between runs.
type Finding struct {
	Code              string   `json:"code"`
	Severity          Severity `json:"severity"`
	Message           string   `json:"message"`
	StandardReference string   `json:"standard_reference,omitempty"`
	SuggestedFix      string   `json:"suggested_fix,omitempty"`
}

// SortFindings orders findings by severity, then code, then message, so that
// repeated validation of an unchanged snapshot yields an identical list.
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Severity.rank() != b.Severity.rank() {
			return a.Severity.rank() < b.Severity.rank()
		}
		if a.Code != b.Code {
			return a.Code < b.Code
		}
		return a.Message < b.Message
	})
}

// CountBySeverity returns how many findings carry the given severity.
func CountBySeverity(findings []Finding, s Severity) int {
	n := 0
	for _, f := range findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}
