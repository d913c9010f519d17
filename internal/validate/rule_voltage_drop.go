package validate

import (
	"fmt"

	"circuit-planner/internal/model"
	"circuit-planner/internal/policy"
)

// voltageDropRule warns on every circuit whose computed voltage drop exceeds
// the policy limit. The calculator already marks such circuits non-compliant;
// this rule puts the reason in the finding list with the next cable size up
// as the suggested remedy.
type voltageDropRule struct{}

func (voltageDropRule) Code() string { return "W007" }

func (voltageDropRule) Evaluate(ctx *Context) []model.Finding {
	limit := ctx.Policy.MaxVoltageDropPercent
	if limit <= 0 {
		return nil
	}
	var findings []model.Finding
	for _, c := range ctx.Circuits {
		if c.VoltageDropPercent <= limit {
			continue
		}
		fix := "Split the load across more circuits or shorten the route."
		if next, ok := nextCableSize(ctx.Tables, c.CableSizeMm2); ok {
			fix = fmt.Sprintf("Increase the cable to %g mm2 or shorten the route.", next)
		}
		findings = append(findings, model.Finding{
			Code:     "W007",
			Severity: model.SeverityWarning,
			Message: fmt.Sprintf("circuit %d drops %.2f%% over its %.1f m route, beyond the %.1f%% limit",
				c.Number, c.VoltageDropPercent, c.RouteLengthMeters, limit),
			StandardReference: "AS/NZS 3000 3.6 voltage drop",
			SuggestedFix:      fix,
		})
	}
	return findings
}

// nextCableSize returns the smallest tabulated size above the given one.
// ok is false when the circuit already uses the largest size.
func nextCableSize(tables policy.Tables, sizeMm2 float64) (float64, bool) {
	for _, r := range tables.Ampacity {
		if r.SizeMm2 > sizeMm2 {
			return r.SizeMm2, true
		}
	}
	return 0, false
}
