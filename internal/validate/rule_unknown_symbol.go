package validate

import (
	"fmt"

	"circuit-planner/internal/model"
)

// unknownSymbolRule reports devices whose symbol was not in the registry.
// They stay in the model but carry no load, so totals understate reality
// until the registry is extended.
type unknownSymbolRule struct{}

func (unknownSymbolRule) Code() string { return "I001" }

func (unknownSymbolRule) Evaluate(ctx *Context) []model.Finding {
	var findings []model.Finding
	for _, d := range ctx.Snapshot.Devices {
		if d.Category != model.CategoryUnspecified {
			continue
		}
		findings = append(findings, model.Finding{
			Code:     "I001",
			Severity: model.SeverityInfo,
			Message: fmt.Sprintf("device %s uses unknown symbol %q and is excluded from load totals",
				d.ID, d.SymbolID),
			SuggestedFix: "Register the symbol with its electrical spec.",
		})
	}
	return findings
}
