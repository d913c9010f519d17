package validate

import "circuit-planner/internal/model"

// earthingRule errors when the model contains devices but no earthing
// conductor anywhere.
type earthingRule struct{}

func (earthingRule) Code() string { return "E002" }

func (earthingRule) Evaluate(ctx *Context) []model.Finding {
	if len(ctx.Snapshot.Devices) == 0 {
		return nil
	}
	if ctx.Snapshot.HasConductorRole(model.RoleEarth) {
		return nil
	}
	return []model.Finding{{
		Code:              "E002",
		Severity:          model.SeverityError,
		Message:           "installation has devices but no earthing conductor",
		StandardReference: "AS/NZS 3000 5.3 earthing arrangements",
		SuggestedFix:      "Draw the earthing run on an earth wiring layer.",
	}}
}
