// Package policy holds the engineering configuration the engine computes
// with: circuit capacity limits, the cable ampacity table, the breaker
// series, and the validation thresholds. All values are external inputs with
// shipped defaults; nothing in the engine hard-codes them.
package policy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"circuit-planner/internal/model"
)

// Policy sets the design rules the classifier, calculator, and validator
// apply. The zero value is not usable; start from Default.
type Policy struct {
	// Capacity limits devices per circuit by category. A category missing
	// from the map gets one circuit for all its devices.
	Capacity map[model.Category]int `json:"capacity" yaml:"capacity"`

	// NominalVoltage is the supply voltage load currents are computed at.
	NominalVoltage float64 `json:"nominal_voltage" yaml:"nominal_voltage"`

	// MaxVoltageDropPercent is the compliance limit for voltage drop.
	MaxVoltageDropPercent float64 `json:"max_voltage_drop_percent" yaml:"max_voltage_drop_percent"`

	// MainBreakerMarginPercent sizes the suggested main breaker over the
	// total connected current (125 = 125% of total).
	MainBreakerMarginPercent float64 `json:"main_breaker_margin_percent" yaml:"main_breaker_margin_percent"`

	// Validator thresholds.
	OverlapPixels   float64 `json:"overlap_pixels" yaml:"overlap_pixels"`
	ClearanceMeters float64 `json:"clearance_meters" yaml:"clearance_meters"`
	LongRunMeters   float64 `json:"long_run_meters" yaml:"long_run_meters"`
}

// CapacityFor returns the device limit per circuit for a category.
// Categories without an explicit limit share a single circuit, so the limit
// is effectively unbounded; 0 signals that.
func (p Policy) CapacityFor(cat model.Category) int {
	if n, ok := p.Capacity[cat]; ok {
		return n
	}
	return 0
}

// Default returns the shipped design policy. The 10-outlet and 15-light
// limits are conventional residential practice, not normative clause
// values, which is why they live here and not in the classifier.
func Default() Policy {
	return Policy{
		Capacity: map[model.Category]int{
			model.CategoryOutlet:   10,
			model.CategoryLighting: 15,
		},
		NominalVoltage:           230,
		MaxVoltageDropPercent:    5,
		MainBreakerMarginPercent: 125,
		OverlapPixels:            30,
		ClearanceMeters:          1,
		LongRunMeters:            50,
	}
}

// Validate reports the first problem that would make computation unsound.
func (p Policy) Validate() error {
	if p.NominalVoltage <= 0 {
		return fmt.Errorf("policy: nominal voltage must be positive, got %g", p.NominalVoltage)
	}
	if p.MaxVoltageDropPercent <= 0 {
		return fmt.Errorf("policy: max voltage drop must be positive, got %g", p.MaxVoltageDropPercent)
	}
	if p.MainBreakerMarginPercent < 100 {
		return fmt.Errorf("policy: main breaker margin must be at least 100%%, got %g", p.MainBreakerMarginPercent)
	}
	for cat, n := range p.Capacity {
		if n <= 0 {
			return fmt.Errorf("policy: capacity for %s must be positive, got %d", cat, n)
		}
	}
	return nil
}

// Load reads a policy overlay from a YAML or JSON file (by extension) on top
// of the defaults, so partial files only override what they name.
func Load(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, err
	}
	p := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return Policy{}, fmt.Errorf("unmarshal policy %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &p); err != nil {
			return Policy{}, fmt.Errorf("unmarshal policy %s: %w", path, err)
		}
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}
