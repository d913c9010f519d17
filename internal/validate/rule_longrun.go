package validate

import (
	"fmt"

	"circuit-planner/internal/model"
)

// longRunRule warns on any conductor exceeding the long-run threshold,
// independent of whether its circuit already failed the voltage-drop
// calculation.
type longRunRule struct{}

func (longRunRule) Code() string { return "W004" }

func (longRunRule) Evaluate(ctx *Context) []model.Finding {
	limit := ctx.Policy.LongRunMeters
	if limit <= 0 {
		return nil
	}
	var findings []model.Finding
	for _, cond := range ctx.Snapshot.Conductors {
		if cond.LengthMeters > limit {
			findings = append(findings, model.Finding{
				Code:     "W004",
				Severity: model.SeverityWarning,
				Message: fmt.Sprintf("conductor %s runs %.1f m, beyond the %.0f m guideline",
					cond.ID, cond.LengthMeters, limit),
				StandardReference: "AS/NZS 3008.1 voltage drop",
				SuggestedFix:      "Shorten the route or step up the cable size.",
			})
		}
	}
	return findings
}
