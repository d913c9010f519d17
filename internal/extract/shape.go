// Package extract converts the raw drawn-shape list supplied by the drawing
// surface into the typed electrical model: devices, conductors, and
// documentation annotations. It is the only package that sees raw symbol
// identifiers or layer-name conventions; everything downstream works on the
// typed model.
package extract

import (
	"circuit-planner/internal/model"
	"circuit-planner/pkg/geometry"
)

// ShapeKind tags a raw drawn shape.
type ShapeKind string

const (
	ShapeSymbol     ShapeKind = "symbol"
	ShapeLine       ShapeKind = "line"
	ShapePolyline   ShapeKind = "polyline"
	ShapeAnnotation ShapeKind = "annotation"

	// ShapeDecor covers grid lines, guides, and other non-selectable
	// drawing furniture. Filtered out before extraction.
	ShapeDecor ShapeKind = "decor"
)

// Shape is one raw record from the drawing surface. Exactly one of the
// kind-specific fields is meaningful per kind: SymbolID for symbols,
// Points for lines/polylines, AnnotationKind and Text for annotations.
type Shape struct {
	ID     string             `json:"id"`
	Kind   ShapeKind          `json:"kind"`
	Layer  string             `json:"layer"`
	Points []geometry.Point2D `json:"points,omitempty"`

	SymbolID string `json:"symbol_id,omitempty"`

	AnnotationKind model.AnnotationKind `json:"annotation_kind,omitempty"`
	Text           string               `json:"text,omitempty"`
}

// position returns the shape's representative point: the first point for
// symbols and annotations, the zero point when geometry is missing.
func (s Shape) position() geometry.Point2D {
	if len(s.Points) > 0 {
		return s.Points[0]
	}
	return geometry.Point2D{}
}
