package validate

import (
	"fmt"

	"circuit-planner/internal/model"
)

// cableClampRule errors when a circuit's current demand exceeds the largest
// tabulated cable ampacity. The calculator clamps such circuits to the
// largest size and marks them non-compliant; this rule surfaces the reason.
type cableClampRule struct{}

func (cableClampRule) Code() string { return "E001" }

func (cableClampRule) Evaluate(ctx *Context) []model.Finding {
	maxAmpacity := ctx.Tables.MaxSize().AmpacityAmps
	var findings []model.Finding
	for _, c := range ctx.Circuits {
		demand := c.BreakerRatingAmps
		if c.LoadAmps > demand {
			demand = c.LoadAmps
		}
		if demand <= maxAmpacity {
			continue
		}
		findings = append(findings, model.Finding{
			Code:     "E001",
			Severity: model.SeverityError,
			Message: fmt.Sprintf("circuit %d demands %.1f A, exceeding standard cable sizing; engineering review required",
				c.Number, demand),
			SuggestedFix: "Split the load across more circuits or design the feeder separately.",
		})
	}
	return findings
}
