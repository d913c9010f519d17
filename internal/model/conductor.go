package model

import "circuit-planner/pkg/geometry"

// ConductorRole identifies the electrical function of a drawn wire run,
// derived from the wiring layer it was drawn on.
type ConductorRole string

const (
	RoleActive  ConductorRole = "active"
	RoleNeutral ConductorRole = "neutral"
	RoleEarth   ConductorRole = "earth"
	RoleGeneric ConductorRole = "generic"
)

// Conductor is a drawn wire run between two endpoints.
type Conductor struct {
	ID        string            `json:"id"`
	Endpoints geometry.Polyline `json:"endpoints"`
	Role      ConductorRole     `json:"role"`
	Layer     string            `json:"layer"`

	// LengthMeters is derived from the endpoint geometry and the drawing
	// scale at extraction time. Zero for degenerate runs.
	LengthMeters float64 `json:"length_meters"`
}

// Degenerate reports whether the conductor has no usable length.
func (c Conductor) Degenerate() bool {
	return c.LengthMeters <= 0
}

// Layer groups drawn shapes for visibility and selection. It carries no
// electrical meaning beyond the wiring-layer naming convention the
// extractor applies to conductors.
type Layer struct {
	Name    string `json:"name"`
	Color   string `json:"color,omitempty"`
	Visible bool   `json:"visible"`
	Locked  bool   `json:"locked"`
}

// AnnotationKind distinguishes documentation shapes on the drawing.
type AnnotationKind string

const (
	AnnotationTitleBlock AnnotationKind = "title_block"
	AnnotationDimension  AnnotationKind = "dimension"
	AnnotationText       AnnotationKind = "text"
)

// Annotation is a non-electrical documentation shape (title block, dimension
// line, free text). The validator checks for their presence; nothing else
// reads them.
type Annotation struct {
	ID       string           `json:"id"`
	Kind     AnnotationKind   `json:"kind"`
	Text     string           `json:"text,omitempty"`
	Position geometry.Point2D `json:"position"`
}
