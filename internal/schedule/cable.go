package schedule

import (
	"sort"

	"circuit-planner/internal/model"
	"circuit-planner/internal/policy"
)

// roleOrder fixes the cable schedule's row ordering.
var roleOrder = map[model.ConductorRole]int{
	model.RoleActive:  0,
	model.RoleNeutral: 1,
	model.RoleEarth:   2,
	model.RoleGeneric: 3,
}

// Cable builds the cable schedule by grouping conductors on (role, inferred
// size) and aggregating run counts and route lengths. A conductor's size is
// inferred from the circuit whose devices sit nearest its endpoints; runs
// with no circuit nearby take the smallest tabulated size. Degenerate
// zero-length runs are excluded from aggregation.
func Cable(conductors []model.Conductor, circuits []model.Circuit, devices []model.Device, tables policy.Tables) model.CableSchedule {
	sizeByCircuit := make(map[int]float64, len(circuits))
	for _, c := range circuits {
		sizeByCircuit[c.Number] = c.CableSizeMm2
	}

	type key struct {
		role model.ConductorRole
		size float64
	}
	groups := make(map[key]*model.CableScheduleRow)

	sched := model.CableSchedule{Rows: []model.CableScheduleRow{}}
	for _, cond := range conductors {
		if cond.Degenerate() {
			continue
		}
		size := inferSize(cond, devices, sizeByCircuit, tables)
		k := key{role: cond.Role, size: size}
		row, ok := groups[k]
		if !ok {
			rating, _ := tables.RatingForSize(size)
			row = &model.CableScheduleRow{
				Role:               cond.Role,
				SizeMm2:            size,
				AmpacityAmps:       rating.AmpacityAmps,
				InstallationMethod: rating.InstallationMethod,
			}
			groups[k] = row
		}
		row.RunCount++
		row.TotalLengthMeters += cond.LengthMeters
		sched.TotalLengthMeters += cond.LengthMeters
	}

	for _, row := range groups {
		sched.Rows = append(sched.Rows, *row)
	}
	sort.Slice(sched.Rows, func(i, j int) bool {
		a, b := sched.Rows[i], sched.Rows[j]
		if roleOrder[a.Role] != roleOrder[b.Role] {
			return roleOrder[a.Role] < roleOrder[b.Role]
		}
		return a.SizeMm2 < b.SizeMm2
	})

	if len(sched.Rows) == 0 {
		sched.NoData = true
	}
	return sched
}

// inferSize attributes a conductor to the circuit of the device nearest its
// endpoints. The cable schedule stays a pure function of the snapshot: the
// same conductor and device set always infer the same size.
func inferSize(cond model.Conductor, devices []model.Device, sizeByCircuit map[int]float64, tables policy.Tables) float64 {
	bestDist := -1.0
	bestSize := tables.MinSize().SizeMm2
	for _, d := range devices {
		if !d.Assigned() {
			continue
		}
		size, ok := sizeByCircuit[d.CircuitID]
		if !ok {
			continue
		}
		dist := cond.Endpoints.Start().Distance(d.Position)
		if end := cond.Endpoints.End().Distance(d.Position); end < dist {
			dist = end
		}
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			bestSize = size
		}
	}
	return bestSize
}
