// Package circuit groups devices into circuits and computes each circuit's
// electrical figures: load, current, cable size, protection, and voltage
// drop. Both stages are pure functions of their inputs - circuit numbering
// is re-derived from the sorted device snapshot on every call, so there is
// no shared counter state anywhere.
package circuit

import (
	"sort"

	"circuit-planner/internal/model"
	"circuit-planner/internal/policy"
)

// categoryRank fixes the order categories are assigned circuit numbers in.
// Unlisted categories sort after the listed ones by name.
var categoryRank = map[model.Category]int{
	model.CategoryOutlet:        0,
	model.CategoryLighting:      1,
	model.CategoryVentilation:   2,
	model.CategorySafety:        3,
	model.CategoryCommunication: 4,
}

func rankOf(cat model.Category) int {
	if r, ok := categoryRank[cat]; ok {
		return r
	}
	return len(categoryRank)
}

// circuitable reports whether devices of a category belong on final
// circuits. Distribution equipment feeds circuits rather than sitting on
// one, and unrecognized symbols cannot be assigned a category's capacity
// rules at all - the validator reports them instead.
func circuitable(cat model.Category) bool {
	return cat != model.CategoryDistribution && cat != model.CategoryUnspecified
}

// Classify groups the given devices into circuits under the policy's
// per-category capacity limits and returns the circuits together with a
// copy of the full device list with circuit assignments applied. The input
// slice is never mutated.
//
// Devices are ordered by category rank then device ID before chunking, so
// the result is deterministic for a given device set regardless of input
// order. Circuit numbers run from 1 and continue monotonically across
// categories.
func Classify(devices []model.Device, pol policy.Policy) ([]model.Circuit, []model.Device) {
	assigned := make([]model.Device, len(devices))
	copy(assigned, devices)

	// Stable ordering: category rank, then category name for unranked
	// categories, then device ID.
	order := make([]int, 0, len(assigned))
	for i, d := range assigned {
		assigned[i].CircuitID = 0
		if circuitable(d.Category) {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		da, db := assigned[order[a]], assigned[order[b]]
		if rankOf(da.Category) != rankOf(db.Category) {
			return rankOf(da.Category) < rankOf(db.Category)
		}
		if da.Category != db.Category {
			return da.Category < db.Category
		}
		return da.ID < db.ID
	})

	var circuits []model.Circuit
	number := 0
	i := 0
	for i < len(order) {
		cat := assigned[order[i]].Category
		// Collect this category's run.
		j := i
		for j < len(order) && assigned[order[j]].Category == cat {
			j++
		}
		capacity := pol.CapacityFor(cat)
		if capacity <= 0 {
			capacity = j - i // one circuit for the whole category
		}
		for start := i; start < j; start += capacity {
			end := start + capacity
			if end > j {
				end = j
			}
			number++
			c := model.Circuit{Number: number, Category: cat}
			for _, idx := range order[start:end] {
				c.DeviceIDs = append(c.DeviceIDs, assigned[idx].ID)
				assigned[idx].CircuitID = number
			}
			circuits = append(circuits, c)
		}
		i = j
	}
	return circuits, assigned
}
