package model

// PanelScheduleRow is one circuit's line on the panel schedule.
type PanelScheduleRow struct {
	CircuitNumber      int     `json:"circuit_number"`
	Description        string  `json:"description"`
	DeviceCount        int     `json:"device_count"`
	LoadWatts          float64 `json:"load_watts"`
	LoadAmps           float64 `json:"load_amps"`
	CableSizeMm2       float64 `json:"cable_size_mm2"`
	BreakerRatingAmps  float64 `json:"breaker_rating_amps"`
	RCDRequired        bool    `json:"rcd_required"`
	VoltageDropPercent float64 `json:"voltage_drop_percent"`
	Compliant          bool    `json:"compliant"`
}

// PanelTotals is the summary row of the panel schedule. The suggested main
// breaker carries a design margin over the total connected current.
type PanelTotals struct {
	LoadWatts                float64 `json:"load_watts"`
	LoadAmps                 float64 `json:"load_amps"`
	SuggestedMainBreakerAmps float64 `json:"suggested_main_breaker_amps"`

	// Oversized is set when the margined current exceeds the largest
	// breaker in the configured series.
	Oversized bool `json:"oversized,omitempty"`
}

// PanelSchedule is the complete panel report: regenerated from the current
// circuit list on every request, never patched in place.
type PanelSchedule struct {
	Rows   []PanelScheduleRow `json:"rows"`
	Totals PanelTotals        `json:"totals"`
	NoData bool               `json:"no_data,omitempty"`
}

// CableScheduleRow aggregates the conductors sharing one role and size.
type CableScheduleRow struct {
	Role               ConductorRole `json:"role"`
	SizeMm2            float64       `json:"size_mm2"`
	RunCount           int           `json:"run_count"`
	TotalLengthMeters  float64       `json:"total_length_meters"`
	AmpacityAmps       float64       `json:"ampacity_amps"`
	InstallationMethod string        `json:"installation_method"`
}

// CableSchedule is the complete cable report.
type CableSchedule struct {
	Rows              []CableScheduleRow `json:"rows"`
	TotalLengthMeters float64            `json:"total_length_meters"`
	NoData            bool               `json:"no_data,omitempty"`
}
