package model

import "fmt"

// Circuit is a group of devices fed from one protective device. Every field
// beyond Number, Category, and DeviceIDs is recomputed from the device set by
// the calculator; none may be set independently.
type Circuit struct {
	Number    int      `json:"number"`
	Category  Category `json:"category"`
	DeviceIDs []string `json:"device_ids"`

	TotalLoadWatts     float64 `json:"total_load_watts"`
	LoadAmps           float64 `json:"load_amps"`
	CableSizeMm2       float64 `json:"cable_size_mm2"`
	BreakerRatingAmps  float64 `json:"breaker_rating_amps"`
	RCDRequired        bool    `json:"rcd_required"`
	RouteLengthMeters  float64 `json:"route_length_meters"`
	VoltageDropPercent float64 `json:"voltage_drop_percent"`
	Compliant          bool    `json:"compliant"`
}

// Description returns the schedule label for the circuit, e.g. "C3 - Lighting".
func (c Circuit) Description() string {
	return fmt.Sprintf("C%d - %s", c.Number, c.Category.DisplayName())
}

// DeviceCount returns the number of devices on the circuit.
func (c Circuit) DeviceCount() int {
	return len(c.DeviceIDs)
}
