package validate

import (
	"fmt"

	"circuit-planner/internal/model"
)

// degenerateConductorRule reports zero-length conductor geometry, usually a
// stray click while drawing wires. Such runs are excluded from length
// aggregation and never crash anything.
type degenerateConductorRule struct{}

func (degenerateConductorRule) Code() string { return "I003" }

func (degenerateConductorRule) Evaluate(ctx *Context) []model.Finding {
	var findings []model.Finding
	for _, cond := range ctx.Snapshot.Conductors {
		if cond.Degenerate() {
			findings = append(findings, model.Finding{
				Code:     "I003",
				Severity: model.SeverityInfo,
				Message:  fmt.Sprintf("conductor %s has zero length and is ignored in cable totals", cond.ID),
			})
		}
	}
	return findings
}
