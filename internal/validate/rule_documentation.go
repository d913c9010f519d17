package validate

import "circuit-planner/internal/model"

// documentationRule checks drawing documentation: a missing title block is a
// warning, missing dimensions only informational.
type documentationRule struct{}

func (documentationRule) Code() string { return "W006" }

func (documentationRule) Evaluate(ctx *Context) []model.Finding {
	if ctx.Snapshot.Empty() {
		return nil
	}
	var findings []model.Finding
	if !ctx.Snapshot.HasAnnotationKind(model.AnnotationTitleBlock) {
		findings = append(findings, model.Finding{
			Code:         "W006",
			Severity:     model.SeverityWarning,
			Message:      "drawing has no title block",
			SuggestedFix: "Add a title block with project, drawing number, and revision.",
		})
	}
	if !ctx.Snapshot.HasAnnotationKind(model.AnnotationDimension) {
		findings = append(findings, model.Finding{
			Code:     "I002",
			Severity: model.SeverityInfo,
			Message:  "drawing has no dimension annotations",
		})
	}
	return findings
}
