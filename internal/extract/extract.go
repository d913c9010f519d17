package extract

import (
	"fmt"
	"strings"

	"circuit-planner/internal/model"
	"circuit-planner/internal/symbol"
	"circuit-planner/pkg/geometry"
)

// Options configures an extraction pass.
type Options struct {
	// Registry resolves symbol IDs to electrical specs. Required.
	Registry *symbol.Registry

	// Scale converts drawn pixel distances to meters. Required.
	Scale geometry.Scale

	// Layers is the drawing's layer list, passed through to the snapshot.
	Layers []model.Layer
}

// Extract builds the electrical snapshot from a raw shape list.
//
// Decorative shapes are dropped. Symbols resolve through the registry; an
// unknown symbol ID is not an error - the device is kept with an
// unspecified category and zero load, and the validator reports it.
// Lines and polylines become conductors with a role derived from their
// layer name. Zero-length conductor geometry yields a conductor with zero
// length rather than a failure.
func Extract(shapes []Shape, opts Options) (model.Snapshot, error) {
	if opts.Registry == nil {
		return model.Snapshot{}, fmt.Errorf("extract: symbol registry is required")
	}
	if opts.Scale.IsZero() {
		return model.Snapshot{}, fmt.Errorf("extract: %w", geometry.ErrInvalidScale)
	}

	snap := model.Snapshot{Layers: opts.Layers}
	deviceSeq := 0
	conductorSeq := 0

	for _, shape := range shapes {
		switch shape.Kind {
		case ShapeSymbol:
			deviceSeq++
			snap.Devices = append(snap.Devices, deviceFromShape(shape, deviceSeq, opts.Registry))
		case ShapeLine, ShapePolyline:
			conductorSeq++
			snap.Conductors = append(snap.Conductors, conductorFromShape(shape, conductorSeq, opts.Scale))
		case ShapeAnnotation:
			snap.Annotations = append(snap.Annotations, model.Annotation{
				ID:       shape.ID,
				Kind:     shape.AnnotationKind,
				Text:     shape.Text,
				Position: shape.position(),
			})
		case ShapeDecor:
			// Grid lines and guides carry no electrical meaning.
		}
	}
	return snap, nil
}

// deviceFromShape resolves one symbol shape into a device.
func deviceFromShape(shape Shape, seq int, reg *symbol.Registry) model.Device {
	dev := model.Device{
		ID:       shape.ID,
		SymbolID: shape.SymbolID,
		Position: shape.position(),
		Layer:    shape.Layer,
	}
	if dev.ID == "" {
		dev.ID = fmt.Sprintf("dev-%03d", seq)
	}
	if def, ok := reg.Lookup(shape.SymbolID); ok {
		dev.Category = def.Category
		dev.Spec = def.Spec()
	} else {
		dev.Category = model.CategoryUnspecified
	}
	return dev
}

// conductorFromShape converts one line or polyline into a conductor.
func conductorFromShape(shape Shape, seq int, scale geometry.Scale) model.Conductor {
	cond := model.Conductor{
		ID:        shape.ID,
		Endpoints: geometry.Polyline(shape.Points),
		Role:      RoleForLayer(shape.Layer),
		Layer:     shape.Layer,
	}
	if cond.ID == "" {
		cond.ID = fmt.Sprintf("wire-%03d", seq)
	}
	cond.LengthMeters = scale.PixelsToMeters(cond.Endpoints.Length())
	return cond
}

// RoleForLayer maps a layer name to a conductor role. The convention is a
// case-insensitive substring match: any layer mentioning "power" carries
// active conductors, "neutral" neutral, "earth" or "ground" earthing runs.
// Anything else is a generic wiring run.
func RoleForLayer(layer string) model.ConductorRole {
	name := strings.ToLower(layer)
	switch {
	case strings.Contains(name, "power"):
		return model.RoleActive
	case strings.Contains(name, "neutral"):
		return model.RoleNeutral
	case strings.Contains(name, "earth"), strings.Contains(name, "ground"):
		return model.RoleEarth
	default:
		return model.RoleGeneric
	}
}
