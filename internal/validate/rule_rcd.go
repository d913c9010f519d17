package validate

import (
	"fmt"

	"circuit-planner/internal/model"
)

// rcdRule errors, per circuit, when a circuit requires residual-current
// protection but no RCD-capable distribution device exists in the model.
type rcdRule struct{}

func (rcdRule) Code() string { return "E003" }

func (rcdRule) Evaluate(ctx *Context) []model.Finding {
	rcdPresent := false
	for _, d := range ctx.Snapshot.Devices {
		if d.Category == model.CategoryDistribution && d.Spec.IsRCD {
			rcdPresent = true
			break
		}
	}
	if rcdPresent {
		return nil
	}
	var findings []model.Finding
	for _, c := range ctx.Circuits {
		if !c.RCDRequired {
			continue
		}
		findings = append(findings, model.Finding{
			Code:              "E003",
			Severity:          model.SeverityError,
			Message:           fmt.Sprintf("circuit %d requires RCD protection but no RCD is present", c.Number),
			StandardReference: "AS/NZS 3000 2.6 RCD protection of socket outlets",
			SuggestedFix:      "Add an RCD or RCBO symbol at the switchboard.",
		})
	}
	return findings
}
