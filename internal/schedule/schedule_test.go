package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circuit-planner/internal/model"
	"circuit-planner/internal/policy"
	"circuit-planner/pkg/geometry"
)

func TestPanelEmptyModel(t *testing.T) {
	sched := Panel(nil, policy.Default(), policy.DefaultTables())
	assert.True(t, sched.NoData)
	assert.Empty(t, sched.Rows)
	assert.Zero(t, sched.Totals.LoadWatts)
	assert.Zero(t, sched.Totals.LoadAmps)
	assert.Zero(t, sched.Totals.SuggestedMainBreakerAmps)
}

func TestPanelRowsAndTotals(t *testing.T) {
	circuits := []model.Circuit{
		{Number: 1, Category: model.CategoryOutlet, DeviceIDs: []string{"a", "b"},
			TotalLoadWatts: 2300, LoadAmps: 10, CableSizeMm2: 2.5, BreakerRatingAmps: 16,
			RCDRequired: true, VoltageDropPercent: 1.2, Compliant: true},
		{Number: 2, Category: model.CategoryLighting, DeviceIDs: []string{"c"},
			TotalLoadWatts: 1150, LoadAmps: 5, CableSizeMm2: 1.5, BreakerRatingAmps: 10,
			VoltageDropPercent: 0.8, Compliant: true},
	}
	sched := Panel(circuits, policy.Default(), policy.DefaultTables())

	require.Len(t, sched.Rows, 2)
	assert.False(t, sched.NoData)
	assert.Equal(t, "C1 - Power Outlets", sched.Rows[0].Description)
	assert.Equal(t, 2, sched.Rows[0].DeviceCount)
	assert.InDelta(t, 3450, sched.Totals.LoadWatts, 1e-9)
	assert.InDelta(t, 15, sched.Totals.LoadAmps, 1e-9)

	// 15 A at 125% margin is 18.75 A: next series value is 20 A.
	assert.Equal(t, 20.0, sched.Totals.SuggestedMainBreakerAmps)
	assert.False(t, sched.Totals.Oversized)
}

func TestPanelMainBreakerOversized(t *testing.T) {
	circuits := []model.Circuit{
		{Number: 1, Category: model.CategoryOutlet, LoadAmps: 70, TotalLoadWatts: 16100},
	}
	sched := Panel(circuits, policy.Default(), policy.DefaultTables())
	assert.Equal(t, 63.0, sched.Totals.SuggestedMainBreakerAmps)
	assert.True(t, sched.Totals.Oversized)
}

func TestCableEmptyModel(t *testing.T) {
	sched := Cable(nil, nil, nil, policy.DefaultTables())
	assert.True(t, sched.NoData)
	assert.Empty(t, sched.Rows)
	assert.Zero(t, sched.TotalLengthMeters)
}

func TestCableGroupsByRoleAndSize(t *testing.T) {
	conductors := []model.Conductor{
		{ID: "a1", Role: model.RoleActive, LengthMeters: 12, Endpoints: geometry.Polyline{{X: 0, Y: 0}, {X: 1200, Y: 0}}},
		{ID: "a2", Role: model.RoleActive, LengthMeters: 8, Endpoints: geometry.Polyline{{X: 0, Y: 10}, {X: 800, Y: 10}}},
		{ID: "e1", Role: model.RoleEarth, LengthMeters: 9, Endpoints: geometry.Polyline{{X: 0, Y: 20}, {X: 900, Y: 20}}},
	}
	sched := Cable(conductors, nil, nil, policy.DefaultTables())

	require.Len(t, sched.Rows, 2)
	assert.Equal(t, model.RoleActive, sched.Rows[0].Role)
	assert.Equal(t, 2, sched.Rows[0].RunCount)
	assert.InDelta(t, 20, sched.Rows[0].TotalLengthMeters, 1e-9)
	assert.Equal(t, model.RoleEarth, sched.Rows[1].Role)
	assert.InDelta(t, 29, sched.TotalLengthMeters, 1e-9)

	// Without circuits nearby, runs take the smallest tabulated size.
	assert.Equal(t, 1.5, sched.Rows[0].SizeMm2)
	assert.Equal(t, 17.5, sched.Rows[0].AmpacityAmps)
	assert.NotEmpty(t, sched.Rows[0].InstallationMethod)
}

func TestCableInfersSizeFromNearestCircuit(t *testing.T) {
	devices := []model.Device{
		{ID: "out-1", Category: model.CategoryOutlet, CircuitID: 1, Position: geometry.Point2D{X: 100, Y: 0}},
	}
	circuits := []model.Circuit{
		{Number: 1, Category: model.CategoryOutlet, CableSizeMm2: 2.5},
	}
	conductors := []model.Conductor{
		{ID: "a1", Role: model.RoleActive, LengthMeters: 4, Endpoints: geometry.Polyline{{X: 90, Y: 0}, {X: 490, Y: 0}}},
	}
	sched := Cable(conductors, circuits, devices, policy.DefaultTables())
	require.Len(t, sched.Rows, 1)
	assert.Equal(t, 2.5, sched.Rows[0].SizeMm2)
	assert.Equal(t, 24.0, sched.Rows[0].AmpacityAmps)
}

func TestCableExcludesDegenerateRuns(t *testing.T) {
	conductors := []model.Conductor{
		{ID: "dot", Role: model.RoleActive, LengthMeters: 0},
		{ID: "a1", Role: model.RoleActive, LengthMeters: 6, Endpoints: geometry.Polyline{{X: 0, Y: 0}, {X: 600, Y: 0}}},
	}
	sched := Cable(conductors, nil, nil, policy.DefaultTables())
	require.Len(t, sched.Rows, 1)
	assert.Equal(t, 1, sched.Rows[0].RunCount)
	assert.InDelta(t, 6, sched.TotalLengthMeters, 1e-9)
}
