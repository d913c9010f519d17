package circuit

import (
	"circuit-planner/internal/model"
	"circuit-planner/internal/policy"
)

// Calculate fills in a circuit's derived electrical figures from its device
// set and returns the completed circuit. The input circuit is taken by
// value; nothing is mutated.
//
// Sizing discipline: the breaker is chosen for the load current (with the
// category floor applied), then the cable is sized to carry the breaker
// rating rather than the raw load - the cable must survive any current the
// protective device allows to flow. Voltage drop uses the chosen cable's
// resistance over the route length, out and back.
func Calculate(c model.Circuit, devices []model.Device, routeLengthMeters float64, pol policy.Policy, tables policy.Tables) model.Circuit {
	byID := make(map[string]model.Device, len(devices))
	for _, d := range devices {
		byID[d.ID] = d
	}

	c.RouteLengthMeters = routeLengthMeters
	c.TotalLoadWatts = 0
	for _, id := range c.DeviceIDs {
		d, ok := byID[id]
		if !ok || d.Category == model.CategoryUnspecified {
			// Unknown devices contribute no load; the validator reports
			// them separately.
			continue
		}
		c.TotalLoadWatts += d.Spec.LoadWatts
	}

	c.LoadAmps = c.TotalLoadWatts / pol.NominalVoltage
	c.RCDRequired = c.Category == model.CategoryOutlet

	breaker, breakerOK := tables.BreakerFor(c.LoadAmps, c.Category)
	c.BreakerRatingAmps = breaker

	// Size the cable for the breaker when one protects the circuit; when
	// even the largest breaker cannot carry the load, size for the load
	// itself so the clamp finding reflects the true current.
	sizingCurrent := breaker
	if !breakerOK {
		sizingCurrent = c.LoadAmps
	}
	rating, clamped := tables.SizeForCurrent(sizingCurrent)
	c.CableSizeMm2 = rating.SizeMm2

	c.VoltageDropPercent = VoltageDropPercent(rating.ResistancePerMeter, routeLengthMeters, c.LoadAmps, pol.NominalVoltage)

	c.Compliant = breakerOK && !clamped && c.VoltageDropPercent <= pol.MaxVoltageDropPercent
	return c
}

// VoltageDropPercent computes the single-phase voltage drop over a route as
// a percentage of nominal voltage. The factor of two covers the out-and-back
// conductor path.
func VoltageDropPercent(resistancePerMeter, routeLengthMeters, loadAmps, voltage float64) float64 {
	if voltage <= 0 {
		return 0
	}
	return (2 * resistancePerMeter * routeLengthMeters * loadAmps) / voltage * 100
}

// CalculateAll runs Calculate over every circuit. Route lengths come from
// the routeLengths map by circuit number; circuits without an entry use
// defaultRoute.
func CalculateAll(circuits []model.Circuit, devices []model.Device, routeLengths map[int]float64, defaultRoute float64, pol policy.Policy, tables policy.Tables) []model.Circuit {
	out := make([]model.Circuit, len(circuits))
	for i, c := range circuits {
		route, ok := routeLengths[c.Number]
		if !ok {
			route = defaultRoute
		}
		out[i] = Calculate(c, devices, route, pol, tables)
	}
	return out
}
