package validate

import (
	"fmt"

	"circuit-planner/internal/model"
)

// capacityRule warns when a circuit carries more devices than its category
// allows. The classifier never produces such circuits, but circuits built
// by other callers can arrive here over capacity.
type capacityRule struct{}

func (capacityRule) Code() string { return "W002" }

func (capacityRule) Evaluate(ctx *Context) []model.Finding {
	var findings []model.Finding
	for _, c := range ctx.Circuits {
		limit := ctx.Policy.CapacityFor(c.Category)
		if limit <= 0 || c.DeviceCount() <= limit {
			continue
		}
		code := "W002"
		if c.Category == model.CategoryLighting {
			code = "W003"
		}
		findings = append(findings, model.Finding{
			Code:     code,
			Severity: model.SeverityWarning,
			Message: fmt.Sprintf("circuit %d exceeds the %s limit of %d devices (%d assigned)",
				c.Number, c.Category.DisplayName(), limit, c.DeviceCount()),
			SuggestedFix: "Split the circuit or raise the capacity policy.",
		})
	}
	return findings
}
