// Package schedule generates the tabular reports derived from the circuit
// and conductor model: the panel schedule and the cable schedule. Both are
// read-only projections regenerated in full from the current model; an
// empty model yields an empty schedule with explicit zero totals, never an
// error.
package schedule

import (
	"circuit-planner/internal/model"
	"circuit-planner/internal/policy"
)

// Panel builds the panel schedule: one row per circuit plus a totals row
// with a suggested main breaker carrying the configured design margin over
// the total connected current.
func Panel(circuits []model.Circuit, pol policy.Policy, tables policy.Tables) model.PanelSchedule {
	if len(circuits) == 0 {
		return model.PanelSchedule{Rows: []model.PanelScheduleRow{}, NoData: true}
	}

	sched := model.PanelSchedule{Rows: make([]model.PanelScheduleRow, 0, len(circuits))}
	for _, c := range circuits {
		sched.Rows = append(sched.Rows, model.PanelScheduleRow{
			CircuitNumber:      c.Number,
			Description:        c.Description(),
			DeviceCount:        c.DeviceCount(),
			LoadWatts:          c.TotalLoadWatts,
			LoadAmps:           c.LoadAmps,
			CableSizeMm2:       c.CableSizeMm2,
			BreakerRatingAmps:  c.BreakerRatingAmps,
			RCDRequired:        c.RCDRequired,
			VoltageDropPercent: c.VoltageDropPercent,
			Compliant:          c.Compliant,
		})
		sched.Totals.LoadWatts += c.TotalLoadWatts
		sched.Totals.LoadAmps += c.LoadAmps
	}

	margined := sched.Totals.LoadAmps * pol.MainBreakerMarginPercent / 100
	sched.Totals.SuggestedMainBreakerAmps, sched.Totals.Oversized = mainBreaker(margined, tables.BreakerSeries)
	return sched
}

// mainBreaker picks the smallest series rating at or above the margined
// current. Past the end of the series it returns the largest rating and
// flags the result as oversized.
func mainBreaker(amps float64, series []float64) (float64, bool) {
	for _, b := range series {
		if b >= amps {
			return b, false
		}
	}
	return series[len(series)-1], true
}
