package policy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"circuit-planner/internal/model"
)

// CableRating is one row of the cable sizing table: a standard conductor
// cross-section with its continuous current rating, DC resistance, and the
// assumed installation method for that size.
type CableRating struct {
	SizeMm2            float64 `json:"size_mm2" yaml:"size_mm2"`
	AmpacityAmps       float64 `json:"ampacity_amps" yaml:"ampacity_amps"`
	ResistancePerMeter float64 `json:"resistance_per_meter" yaml:"resistance_per_meter"`
	InstallationMethod string  `json:"installation_method" yaml:"installation_method"`
}

// Tables bundles the tabulated engineering constants. Like Policy, these are
// configuration: a caller designing to a different standard supplies its own.
type Tables struct {
	// Ampacity must be sorted ascending by size; Validate enforces it.
	Ampacity []CableRating `json:"ampacity" yaml:"ampacity"`

	// BreakerSeries is the ascending list of standard breaker ratings.
	BreakerSeries []float64 `json:"breaker_series" yaml:"breaker_series"`

	// BreakerFloor sets category-specific minimum breaker ratings.
	BreakerFloor map[model.Category]float64 `json:"breaker_floor" yaml:"breaker_floor"`
}

// DefaultTables returns the shipped single-phase copper tables.
// Resistances are ohm per meter at 20 degrees C.
func DefaultTables() Tables {
	return Tables{
		Ampacity: []CableRating{
			{SizeMm2: 1.5, AmpacityAmps: 17.5, ResistancePerMeter: 0.0121, InstallationMethod: "Clipped direct"},
			{SizeMm2: 2.5, AmpacityAmps: 24, ResistancePerMeter: 0.00741, InstallationMethod: "Clipped direct"},
			{SizeMm2: 4, AmpacityAmps: 32, ResistancePerMeter: 0.00461, InstallationMethod: "In conduit on wall"},
			{SizeMm2: 6, AmpacityAmps: 41, ResistancePerMeter: 0.00308, InstallationMethod: "In conduit on wall"},
			{SizeMm2: 10, AmpacityAmps: 57, ResistancePerMeter: 0.00183, InstallationMethod: "On cable tray"},
			{SizeMm2: 16, AmpacityAmps: 76, ResistancePerMeter: 0.00115, InstallationMethod: "On cable tray"},
		},
		BreakerSeries: []float64{6, 10, 16, 20, 25, 32, 40, 50, 63},
		BreakerFloor: map[model.Category]float64{
			model.CategoryOutlet:      16,
			model.CategoryLighting:    10,
			model.CategoryVentilation: 10,
		},
	}
}

// Validate reports the first structural problem in the tables.
func (t Tables) Validate() error {
	if len(t.Ampacity) == 0 {
		return fmt.Errorf("tables: ampacity table is empty")
	}
	if !sort.SliceIsSorted(t.Ampacity, func(i, j int) bool {
		return t.Ampacity[i].SizeMm2 < t.Ampacity[j].SizeMm2
	}) {
		return fmt.Errorf("tables: ampacity table must be sorted ascending by size")
	}
	for _, r := range t.Ampacity {
		if r.SizeMm2 <= 0 || r.AmpacityAmps <= 0 || r.ResistancePerMeter <= 0 {
			return fmt.Errorf("tables: ampacity row for %g mm2 has non-positive values", r.SizeMm2)
		}
	}
	if len(t.BreakerSeries) == 0 {
		return fmt.Errorf("tables: breaker series is empty")
	}
	if !sort.Float64sAreSorted(t.BreakerSeries) {
		return fmt.Errorf("tables: breaker series must be sorted ascending")
	}
	return nil
}

// MinSize returns the smallest tabulated cable size.
func (t Tables) MinSize() CableRating {
	return t.Ampacity[0]
}

// MaxSize returns the largest tabulated cable size.
func (t Tables) MaxSize() CableRating {
	return t.Ampacity[len(t.Ampacity)-1]
}

// RatingForSize returns the table row for an exact cable size.
func (t Tables) RatingForSize(sizeMm2 float64) (CableRating, bool) {
	for _, r := range t.Ampacity {
		if r.SizeMm2 == sizeMm2 {
			return r, true
		}
	}
	return CableRating{}, false
}

// SizeForCurrent returns the smallest tabulated size whose ampacity carries
// the given current. clamped is true when the current exceeds the largest
// tabulated ampacity; the largest size is returned and the caller flags the
// circuit for engineering review instead of failing.
func (t Tables) SizeForCurrent(amps float64) (rating CableRating, clamped bool) {
	for _, r := range t.Ampacity {
		if r.AmpacityAmps >= amps {
			return r, false
		}
	}
	return t.MaxSize(), true
}

// BreakerFor returns the smallest series rating at or above the given
// current, respecting the category floor. ok is false when even the largest
// breaker in the series cannot carry the current.
func (t Tables) BreakerFor(amps float64, cat model.Category) (float64, bool) {
	min := t.BreakerFloor[cat]
	for _, b := range t.BreakerSeries {
		if b >= amps && b >= min {
			return b, true
		}
	}
	return t.BreakerSeries[len(t.BreakerSeries)-1], false
}

// LoadTables reads a tables overlay from a YAML or JSON file on top of the
// defaults.
func LoadTables(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, err
	}
	t := DefaultTables()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &t); err != nil {
			return Tables{}, fmt.Errorf("unmarshal tables %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &t); err != nil {
			return Tables{}, fmt.Errorf("unmarshal tables %s: %w", path, err)
		}
	}
	if err := t.Validate(); err != nil {
		return Tables{}, err
	}
	return t, nil
}
