// Package validate scans a full model snapshot for wiring-code violations.
// Each rule lives in its own file and is evaluated independently: a rule
// that panics on malformed input contributes a synthetic finding describing
// its own failure and the scan continues, so one bad record never
// suppresses the rest of the report.
package validate

import (
	"fmt"

	"circuit-planner/internal/model"
	"circuit-planner/internal/policy"
	"circuit-planner/pkg/geometry"
)

// Context carries everything a rule may inspect: the spatial snapshot, the
// derived circuits, and the active policy and tables. Rules read it, never
// write it.
type Context struct {
	Snapshot model.Snapshot
	Circuits []model.Circuit
	Policy   policy.Policy
	Tables   policy.Tables
	Scale    geometry.Scale
}

// Rule is one independently evaluated compliance check.
type Rule interface {
	// Code returns the rule's primary finding code, used in failure
	// reporting when the rule itself cannot run.
	Code() string

	// Evaluate inspects the context and returns zero or more findings.
	Evaluate(ctx *Context) []model.Finding
}

// Validator runs a fixed rule set over a snapshot.
type Validator struct {
	rules []Rule
}

// New constructs a validator with the built-in rule set.
func New() *Validator {
	v := &Validator{}
	v.Register(overlapRule{})
	v.Register(capacityRule{})
	v.Register(longRunRule{})
	v.Register(voltageDropRule{})
	v.Register(clearanceRule{})
	v.Register(earthingRule{})
	v.Register(rcdRule{})
	v.Register(documentationRule{})
	v.Register(unknownSymbolRule{})
	v.Register(degenerateConductorRule{})
	v.Register(cableClampRule{})
	return v
}

// Register appends a rule to the validator.
func (v *Validator) Register(rule Rule) {
	v.rules = append(v.rules, rule)
}

// Run evaluates every rule against the context and returns the combined
// finding list, stably sorted by severity then code then message. Repeated
// runs over an unchanged context produce identical lists.
func (v *Validator) Run(ctx *Context) []model.Finding {
	var findings []model.Finding
	for _, rule := range v.rules {
		findings = append(findings, runRule(rule, ctx)...)
	}
	model.SortFindings(findings)
	return findings
}

// runRule isolates one rule evaluation. A panic becomes a synthetic error
// finding naming the failed rule.
func runRule(rule Rule, ctx *Context) (findings []model.Finding) {
	defer func() {
		if r := recover(); r != nil {
			findings = []model.Finding{{
				Code:     "R999",
				Severity: model.SeverityError,
				Message:  fmt.Sprintf("rule %s could not be evaluated: %v", rule.Code(), r),
			}}
		}
	}()
	return rule.Evaluate(ctx)
}
