package validate

import (
	"fmt"

	"circuit-planner/internal/model"
)

// clearanceRule warns when any device encroaches on the working clearance
// around distribution equipment. Distances are compared in real-world
// meters using the drawing scale.
type clearanceRule struct{}

func (clearanceRule) Code() string { return "W005" }

func (clearanceRule) Evaluate(ctx *Context) []model.Finding {
	clearance := ctx.Policy.ClearanceMeters
	if clearance <= 0 || ctx.Scale.IsZero() {
		return nil
	}
	var findings []model.Finding
	for _, board := range ctx.Snapshot.Devices {
		if board.Category != model.CategoryDistribution {
			continue
		}
		for _, dev := range ctx.Snapshot.Devices {
			if dev.ID == board.ID || dev.Category == model.CategoryDistribution {
				continue
			}
			meters := ctx.Scale.PixelsToMeters(dev.Position.Distance(board.Position))
			if meters < clearance {
				findings = append(findings, model.Finding{
					Code:     "W005",
					Severity: model.SeverityWarning,
					Message: fmt.Sprintf("device %s sits %.2f m from switchboard %s, inside the %.1f m clearance",
						dev.ID, meters, board.ID, clearance),
					StandardReference: "AS/NZS 3000 switchboard clearance",
					SuggestedFix:      "Relocate the device outside the clearance zone.",
				})
			}
		}
	}
	return findings
}
