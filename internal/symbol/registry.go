// Package symbol provides the symbol registry: the single lookup table that
// maps a drawn symbol's identifier to its electrical capability. The
// extractor consults it exactly once per shape; downstream code operates
// only on the typed category and spec, never on raw symbol strings.
package symbol

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"circuit-planner/internal/model"
)

// Definition describes one placeable symbol and the electrical spec a device
// inherits from it.
type Definition struct {
	ID          string         `json:"id"`
	Category    model.Category `json:"category"`
	DisplayName string         `json:"display_name"`
	LoadWatts   float64        `json:"load_watts"`
	Voltage     float64        `json:"voltage"`
	RatingAmps  float64        `json:"rating_amps,omitempty"`

	// IsRCD marks a distribution-category symbol as providing
	// residual-current protection. The RCD-presence rule searches for it.
	IsRCD bool `json:"is_rcd,omitempty"`
}

// Spec returns the electrical spec a device placed from this symbol carries.
func (d Definition) Spec() model.ElectricalSpec {
	return model.ElectricalSpec{
		Voltage:    d.Voltage,
		LoadWatts:  d.LoadWatts,
		RatingAmps: d.RatingAmps,
		IsRCD:      d.IsRCD,
	}
}

// Registry stores symbol definitions keyed by ID.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Add inserts or replaces a definition.
func (r *Registry) Add(def Definition) {
	r.defs[def.ID] = def
}

// Remove deletes a definition by ID.
func (r *Registry) Remove(id string) {
	delete(r.defs, id)
}

// Lookup returns the definition for a symbol ID. ok is false for an unknown
// ID; the extractor then keeps the device with an unspecified category
// rather than failing.
func (r *Registry) Lookup(id string) (Definition, bool) {
	def, ok := r.defs[id]
	return def, ok
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Definitions returns all definitions sorted by ID.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, 0, len(r.defs))
	for _, def := range r.defs {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// registryFile is the on-disk JSON shape.
type registryFile struct {
	Symbols []Definition `json:"symbols"`
}

// Save writes the registry to a JSON file.
func (r *Registry) Save(path string) error {
	data, err := json.MarshalIndent(registryFile{Symbols: r.Definitions()}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal symbol registry: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a registry from a JSON file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal symbol registry: %w", err)
	}
	reg := NewRegistry()
	for _, def := range file.Symbols {
		reg.Add(def)
	}
	return reg, nil
}
