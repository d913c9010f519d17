package symbol

import "circuit-planner/internal/model"

// Builtin returns the default symbol set shipped with the engine. Loads are
// conventional connected-load allowances at 230 V; a caller with measured
// loads supplies its own registry instead.
func Builtin() *Registry {
	reg := NewRegistry()
	for _, def := range builtinDefs {
		reg.Add(def)
	}
	return reg
}

var builtinDefs = []Definition{
	// Outlets
	{ID: "outlet-single", Category: model.CategoryOutlet, DisplayName: "Single Socket Outlet", LoadWatts: 150, Voltage: 230},
	{ID: "outlet-double", Category: model.CategoryOutlet, DisplayName: "Double Socket Outlet", LoadWatts: 300, Voltage: 230},
	{ID: "outlet-floor", Category: model.CategoryOutlet, DisplayName: "Floor Socket Outlet", LoadWatts: 150, Voltage: 230},
	{ID: "outlet-weatherproof", Category: model.CategoryOutlet, DisplayName: "Weatherproof Outlet", LoadWatts: 150, Voltage: 230},

	// Lighting
	{ID: "light-ceiling", Category: model.CategoryLighting, DisplayName: "Ceiling Light", LoadWatts: 60, Voltage: 230},
	{ID: "light-wall", Category: model.CategoryLighting, DisplayName: "Wall Light", LoadWatts: 40, Voltage: 230},
	{ID: "light-downlight", Category: model.CategoryLighting, DisplayName: "Recessed Downlight", LoadWatts: 12, Voltage: 230},
	{ID: "light-fluorescent", Category: model.CategoryLighting, DisplayName: "Fluorescent Batten", LoadWatts: 36, Voltage: 230},
	{ID: "light-emergency", Category: model.CategoryLighting, DisplayName: "Emergency Light", LoadWatts: 8, Voltage: 230},

	// Switches carry no load of their own.
	{ID: "switch-single", Category: model.CategorySwitch, DisplayName: "Single Switch", Voltage: 230},
	{ID: "switch-double", Category: model.CategorySwitch, DisplayName: "Double Switch", Voltage: 230},
	{ID: "switch-dimmer", Category: model.CategorySwitch, DisplayName: "Dimmer Switch", Voltage: 230},
	{ID: "switch-twoway", Category: model.CategorySwitch, DisplayName: "Two-Way Switch", Voltage: 230},

	// Ventilation
	{ID: "fan-exhaust", Category: model.CategoryVentilation, DisplayName: "Exhaust Fan", LoadWatts: 80, Voltage: 230},
	{ID: "fan-ceiling", Category: model.CategoryVentilation, DisplayName: "Ceiling Fan", LoadWatts: 75, Voltage: 230},

	// Safety
	{ID: "detector-smoke", Category: model.CategorySafety, DisplayName: "Smoke Detector", LoadWatts: 5, Voltage: 230},
	{ID: "detector-heat", Category: model.CategorySafety, DisplayName: "Heat Detector", LoadWatts: 5, Voltage: 230},

	// Communication
	{ID: "outlet-data", Category: model.CategoryCommunication, DisplayName: "Data Outlet", Voltage: 230},
	{ID: "outlet-tv", Category: model.CategoryCommunication, DisplayName: "TV Outlet", Voltage: 230},
	{ID: "outlet-phone", Category: model.CategoryCommunication, DisplayName: "Telephone Outlet", Voltage: 230},

	// Distribution
	{ID: "switchboard-main", Category: model.CategoryDistribution, DisplayName: "Main Switchboard", Voltage: 230, RatingAmps: 100},
	{ID: "switchboard-sub", Category: model.CategoryDistribution, DisplayName: "Distribution Board", Voltage: 230, RatingAmps: 63},
	{ID: "rcd-unit", Category: model.CategoryDistribution, DisplayName: "RCD Protection Unit", Voltage: 230, RatingAmps: 40, IsRCD: true},
	{ID: "rcbo-unit", Category: model.CategoryDistribution, DisplayName: "RCBO", Voltage: 230, RatingAmps: 32, IsRCD: true},
	{ID: "meter-box", Category: model.CategoryDistribution, DisplayName: "Meter Box", Voltage: 230},
}
