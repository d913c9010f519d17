package validate

import (
	"fmt"

	"circuit-planner/internal/model"
)

// overlapRule warns when two devices sit closer than the overlap threshold,
// which almost always means a symbol was placed twice.
type overlapRule struct{}

func (overlapRule) Code() string { return "W001" }

func (overlapRule) Evaluate(ctx *Context) []model.Finding {
	threshold := ctx.Policy.OverlapPixels
	if threshold <= 0 {
		return nil
	}
	var findings []model.Finding
	devices := ctx.Snapshot.Devices
	for i := 0; i < len(devices); i++ {
		for j := i + 1; j < len(devices); j++ {
			if devices[i].Position.Distance(devices[j].Position) < threshold {
				findings = append(findings, model.Finding{
					Code:     "W001",
					Severity: model.SeverityWarning,
					Message: fmt.Sprintf("devices %s and %s overlap on the drawing",
						devices[i].ID, devices[j].ID),
					SuggestedFix: "Separate the symbols or delete the duplicate.",
				})
			}
		}
	}
	return findings
}
