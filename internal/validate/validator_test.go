package validate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circuit-planner/internal/circuit"
	"circuit-planner/internal/model"
	"circuit-planner/internal/policy"
	"circuit-planner/pkg/geometry"
)

func testContext(t *testing.T, snap model.Snapshot) *Context {
	t.Helper()
	scale, err := geometry.NewScale(100)
	require.NoError(t, err)
	circuits, assigned := circuit.Classify(snap.Devices, policy.Default())
	snap.Devices = assigned
	circuits = circuit.CalculateAll(circuits, snap.Devices, nil, 10, policy.Default(), policy.DefaultTables())
	return &Context{
		Snapshot: snap,
		Circuits: circuits,
		Policy:   policy.Default(),
		Tables:   policy.DefaultTables(),
		Scale:    scale,
	}
}

func codes(findings []model.Finding) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.Code
	}
	return out
}

func earthRun() model.Conductor {
	return model.Conductor{
		ID:           "earth-1",
		Role:         model.RoleEarth,
		Layer:        "EARTH-WIRING",
		Endpoints:    geometry.Polyline{{X: 0, Y: 0}, {X: 500, Y: 0}},
		LengthMeters: 5,
	}
}

func TestIdempotentOverUnchangedSnapshot(t *testing.T) {
	snap := model.Snapshot{
		Devices: []model.Device{
			{ID: "out-1", Category: model.CategoryOutlet, Position: geometry.Point2D{X: 100, Y: 100}},
			{ID: "out-2", Category: model.CategoryOutlet, Position: geometry.Point2D{X: 110, Y: 100}},
		},
	}
	ctx := testContext(t, snap)
	v := New()
	first := v.Run(ctx)
	second := v.Run(ctx)
	assert.Equal(t, first, second, "validation must be idempotent")
}

func TestRCDPerCircuitScenario(t *testing.T) {
	// 12 outlets, no RCD device: two circuits, E003 for each, 16 A breakers.
	snap := model.Snapshot{Conductors: []model.Conductor{earthRun()}}
	for i := 0; i < 12; i++ {
		snap.Devices = append(snap.Devices, model.Device{
			ID:       fmt.Sprintf("out-%02d", i+1),
			Category: model.CategoryOutlet,
			Position: geometry.Point2D{X: float64(i) * 200, Y: 0},
			Spec:     model.ElectricalSpec{Voltage: 230, LoadWatts: 150},
		})
	}
	ctx := testContext(t, snap)
	require.Len(t, ctx.Circuits, 2)
	for _, c := range ctx.Circuits {
		assert.Equal(t, 16.0, c.BreakerRatingAmps)
	}

	findings := New().Run(ctx)
	var e003 int
	for _, f := range findings {
		if f.Code == "E003" {
			e003++
			assert.Equal(t, model.SeverityError, f.Severity)
		}
	}
	assert.Equal(t, 2, e003, "one E003 per RCD-requiring circuit")
}

func TestRCDPresenceSuppressesE003(t *testing.T) {
	snap := model.Snapshot{
		Devices: []model.Device{
			{ID: "out-1", Category: model.CategoryOutlet, Position: geometry.Point2D{X: 500, Y: 0}},
			{ID: "rcd", Category: model.CategoryDistribution, Spec: model.ElectricalSpec{IsRCD: true}},
		},
		Conductors: []model.Conductor{earthRun()},
	}
	findings := New().Run(testContext(t, snap))
	assert.NotContains(t, codes(findings), "E003")
}

func TestEarthingAbsence(t *testing.T) {
	snap := model.Snapshot{
		Devices: []model.Device{{ID: "l-1", Category: model.CategoryLighting, Position: geometry.Point2D{X: 400, Y: 0}}},
	}
	findings := New().Run(testContext(t, snap))
	assert.Contains(t, codes(findings), "E002")

	snap.Conductors = []model.Conductor{earthRun()}
	findings = New().Run(testContext(t, snap))
	assert.NotContains(t, codes(findings), "E002")
}

func TestOverlapWarning(t *testing.T) {
	snap := model.Snapshot{
		Devices: []model.Device{
			{ID: "a", Category: model.CategoryLighting, Position: geometry.Point2D{X: 100, Y: 100}},
			{ID: "b", Category: model.CategoryLighting, Position: geometry.Point2D{X: 105, Y: 100}},
			{ID: "c", Category: model.CategoryLighting, Position: geometry.Point2D{X: 900, Y: 900}},
		},
		Conductors: []model.Conductor{earthRun()},
	}
	findings := New().Run(testContext(t, snap))
	var w001 []model.Finding
	for _, f := range findings {
		if f.Code == "W001" {
			w001 = append(w001, f)
		}
	}
	require.Len(t, w001, 1)
	assert.Contains(t, w001[0].Message, "a")
	assert.Contains(t, w001[0].Message, "b")
}

func TestLongRunWarning(t *testing.T) {
	snap := model.Snapshot{
		Devices: []model.Device{{ID: "l-1", Category: model.CategoryLighting, Position: geometry.Point2D{X: 300, Y: 0}}},
		Conductors: []model.Conductor{
			earthRun(),
			{ID: "long-1", Role: model.RoleActive, LengthMeters: 62, Endpoints: geometry.Polyline{{X: 0, Y: 0}, {X: 6200, Y: 0}}},
		},
	}
	findings := New().Run(testContext(t, snap))
	assert.Contains(t, codes(findings), "W004")
}

func TestClearanceWarning(t *testing.T) {
	// 100 px/m: a device 50 px from the board is 0.5 m away.
	snap := model.Snapshot{
		Devices: []model.Device{
			{ID: "msb", Category: model.CategoryDistribution, Position: geometry.Point2D{X: 0, Y: 0}},
			{ID: "out-1", Category: model.CategoryOutlet, Position: geometry.Point2D{X: 50, Y: 0}},
			{ID: "out-2", Category: model.CategoryOutlet, Position: geometry.Point2D{X: 500, Y: 0}},
		},
		Conductors: []model.Conductor{earthRun()},
	}
	findings := New().Run(testContext(t, snap))
	var w005 int
	for _, f := range findings {
		if f.Code == "W005" {
			w005++
			assert.Contains(t, f.Message, "out-1")
		}
	}
	assert.Equal(t, 1, w005)
}

func TestCapacityWarningForForeignCircuits(t *testing.T) {
	// Circuits built outside the classifier can exceed capacity.
	snap := model.Snapshot{Conductors: []model.Conductor{earthRun()}}
	over := model.Circuit{Number: 1, Category: model.CategoryOutlet}
	for i := 0; i < 12; i++ {
		over.DeviceIDs = append(over.DeviceIDs, fmt.Sprintf("x-%d", i))
	}
	scale, err := geometry.NewScale(100)
	require.NoError(t, err)
	ctx := &Context{
		Snapshot: snap,
		Circuits: []model.Circuit{over},
		Policy:   policy.Default(),
		Tables:   policy.DefaultTables(),
		Scale:    scale,
	}
	findings := New().Run(ctx)
	assert.Contains(t, codes(findings), "W002")
}

func TestDocumentationFindings(t *testing.T) {
	snap := model.Snapshot{
		Devices:    []model.Device{{ID: "l-1", Category: model.CategoryLighting, Position: geometry.Point2D{X: 300, Y: 0}}},
		Conductors: []model.Conductor{earthRun()},
	}
	findings := New().Run(testContext(t, snap))
	assert.Contains(t, codes(findings), "W006")
	assert.Contains(t, codes(findings), "I002")

	snap.Annotations = []model.Annotation{
		{ID: "tb", Kind: model.AnnotationTitleBlock},
		{ID: "dim", Kind: model.AnnotationDimension},
	}
	findings = New().Run(testContext(t, snap))
	assert.NotContains(t, codes(findings), "W006")
	assert.NotContains(t, codes(findings), "I002")
}

func TestUnknownSymbolAndDegenerateInfo(t *testing.T) {
	snap := model.Snapshot{
		Devices: []model.Device{
			{ID: "odd", SymbolID: "mystery", Category: model.CategoryUnspecified, Position: geometry.Point2D{X: 700, Y: 0}},
		},
		Conductors: []model.Conductor{
			earthRun(),
			{ID: "dot", Role: model.RoleActive, LengthMeters: 0},
		},
	}
	findings := New().Run(testContext(t, snap))
	assert.Contains(t, codes(findings), "I001")
	assert.Contains(t, codes(findings), "I003")
}

func TestFindingsSortedBySeverityThenCode(t *testing.T) {
	snap := model.Snapshot{
		Devices: []model.Device{
			{ID: "out-1", Category: model.CategoryOutlet, Position: geometry.Point2D{X: 300, Y: 0}},
			{ID: "odd", SymbolID: "mystery", Category: model.CategoryUnspecified, Position: geometry.Point2D{X: 900, Y: 0}},
		},
	}
	findings := New().Run(testContext(t, snap))
	require.NotEmpty(t, findings)
	for i := 1; i < len(findings); i++ {
		prev, curr := findings[i-1], findings[i]
		if prev.Severity == curr.Severity {
			assert.LessOrEqual(t, prev.Code, curr.Code)
		}
	}
	// Errors first: the missing-earth error precedes every warning.
	assert.Equal(t, model.SeverityError, findings[0].Severity)
}

func TestVoltageDropFinding(t *testing.T) {
	// 20 lighting points split 15+5; the 15-point circuit over a 200 m
	// route drops well past 5% while the 5-point circuit stays inside.
	snap := model.Snapshot{Conductors: []model.Conductor{earthRun()}}
	for i := 0; i < 20; i++ {
		snap.Devices = append(snap.Devices, model.Device{
			ID:       fmt.Sprintf("l-%02d", i+1),
			Category: model.CategoryLighting,
			Position: geometry.Point2D{X: float64(i) * 200, Y: 0},
			Spec:     model.ElectricalSpec{Voltage: 230, LoadWatts: 60},
		})
	}
	pol, tables := policy.Default(), policy.DefaultTables()
	circuits, assigned := circuit.Classify(snap.Devices, pol)
	snap.Devices = assigned
	circuits = circuit.CalculateAll(circuits, snap.Devices, map[int]float64{1: 200}, 10, pol, tables)
	require.Len(t, circuits, 2)
	require.False(t, circuits[0].Compliant)
	require.True(t, circuits[1].Compliant)

	scale, err := geometry.NewScale(100)
	require.NoError(t, err)
	findings := New().Run(&Context{
		Snapshot: snap,
		Circuits: circuits,
		Policy:   pol,
		Tables:   tables,
		Scale:    scale,
	})

	var w007 []model.Finding
	for _, f := range findings {
		if f.Code == "W007" {
			w007 = append(w007, f)
		}
	}
	require.Len(t, w007, 1, "one finding per over-limit circuit")
	assert.Equal(t, model.SeverityWarning, w007[0].Severity)
	assert.Contains(t, w007[0].Message, "circuit 1")
	assert.Contains(t, w007[0].SuggestedFix, "2.5 mm2")
}

// panicRule simulates a rule crashing on malformed input.
type panicRule struct{}

func (panicRule) Code() string { return "T900" }

func (panicRule) Evaluate(*Context) []model.Finding {
	panic("malformed device record")
}

func TestPanickingRuleDoesNotStopScan(t *testing.T) {
	snap := model.Snapshot{
		Devices: []model.Device{{ID: "l-1", Category: model.CategoryLighting, Position: geometry.Point2D{X: 300, Y: 0}}},
	}
	v := New()
	v.Register(panicRule{})
	findings := v.Run(testContext(t, snap))

	assert.Contains(t, codes(findings), "R999", "failed rule must surface as a finding")
	assert.Contains(t, codes(findings), "E002", "other rules must still run")
}
