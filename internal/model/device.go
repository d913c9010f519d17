// Package model defines the electrical model derived from a drawing: devices,
// conductors, circuits, findings, and the derived report types. Everything in
// this package is plain data; all behavior lives in the packages that derive
// and consume these types.
package model

import "circuit-planner/pkg/geometry"

// Category classifies a device by its electrical function.
type Category string

const (
	CategoryOutlet        Category = "outlet"
	CategoryLighting      Category = "lighting"
	CategorySwitch        Category = "switch"
	CategoryVentilation   Category = "ventilation"
	CategorySafety        Category = "safety"
	CategoryCommunication Category = "communication"
	CategoryDistribution  Category = "distribution"

	// CategoryUnspecified marks a device whose symbol was not found in the
	// registry. The device stays in the model but contributes no load.
	CategoryUnspecified Category = "unspecified"
)

// DisplayName returns a human-readable category name for schedules and logs.
func (c Category) DisplayName() string {
	switch c {
	case CategoryOutlet:
		return "Power Outlets"
	case CategoryLighting:
		return "Lighting"
	case CategorySwitch:
		return "Switches"
	case CategoryVentilation:
		return "Ventilation"
	case CategorySafety:
		return "Safety Devices"
	case CategoryCommunication:
		return "Communication"
	case CategoryDistribution:
		return "Distribution"
	case CategoryUnspecified:
		return "Unspecified"
	default:
		return string(c)
	}
}

// ElectricalSpec holds the electrical characteristics a device inherits from
// its symbol registry entry.
type ElectricalSpec struct {
	Voltage    float64 `json:"voltage"`
	LoadWatts  float64 `json:"load_watts"`
	RatingAmps float64 `json:"rating_amps,omitempty"`
	IsRCD      bool    `json:"is_rcd,omitempty"`
}

// Device is a placed electrical symbol: an outlet, a light fitting, a
// switchboard, and so on. CircuitID is empty until the classifier assigns
// the device to a circuit; nothing else ever sets it.
type Device struct {
	ID       string           `json:"id"`
	SymbolID string           `json:"symbol_id"`
	Category Category         `json:"category"`
	Position geometry.Point2D `json:"position"`
	Layer    string           `json:"layer"`
	Spec     ElectricalSpec   `json:"spec"`

	CircuitID int `json:"circuit_id,omitempty"`
}

// Assigned reports whether the classifier has placed the device on a circuit.
func (d Device) Assigned() bool {
	return d.CircuitID != 0
}
