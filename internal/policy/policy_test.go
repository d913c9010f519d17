package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circuit-planner/internal/model"
)

func TestDefaultPolicyValid(t *testing.T) {
	pol := Default()
	require.NoError(t, pol.Validate())
	assert.Equal(t, 10, pol.CapacityFor(model.CategoryOutlet))
	assert.Equal(t, 15, pol.CapacityFor(model.CategoryLighting))
	assert.Equal(t, 0, pol.CapacityFor(model.CategorySafety), "unlimited without an explicit cap")
	assert.Equal(t, 230.0, pol.NominalVoltage)
}

func TestPolicyValidateRejectsBadValues(t *testing.T) {
	pol := Default()
	pol.NominalVoltage = 0
	assert.Error(t, pol.Validate())

	pol = Default()
	pol.Capacity[model.CategoryOutlet] = -1
	assert.Error(t, pol.Validate())

	pol = Default()
	pol.MainBreakerMarginPercent = 90
	assert.Error(t, pol.Validate())
}

func TestPolicyLoadYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nominal_voltage: 240\ncapacity:\n  outlet: 8\n"), 0644))

	pol, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 240.0, pol.NominalVoltage)
	assert.Equal(t, 8, pol.CapacityFor(model.CategoryOutlet))
	// Unnamed fields keep their defaults.
	assert.Equal(t, 5.0, pol.MaxVoltageDropPercent)
	assert.Equal(t, 15, pol.CapacityFor(model.CategoryLighting))
}

func TestPolicyLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"max_voltage_drop_percent": 4}`), 0644))

	pol, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4.0, pol.MaxVoltageDropPercent)
}

func TestDefaultTablesValid(t *testing.T) {
	tables := DefaultTables()
	require.NoError(t, tables.Validate())
	assert.Equal(t, 1.5, tables.MinSize().SizeMm2)
	assert.Equal(t, 16.0, tables.MaxSize().SizeMm2)
	assert.Equal(t, 76.0, tables.MaxSize().AmpacityAmps)
}

func TestSizeForCurrent(t *testing.T) {
	tables := DefaultTables()

	rating, clamped := tables.SizeForCurrent(16)
	assert.False(t, clamped)
	assert.Equal(t, 1.5, rating.SizeMm2)

	rating, clamped = tables.SizeForCurrent(24.5)
	assert.False(t, clamped)
	assert.Equal(t, 4.0, rating.SizeMm2)

	rating, clamped = tables.SizeForCurrent(80)
	assert.True(t, clamped)
	assert.Equal(t, 16.0, rating.SizeMm2)
}

func TestBreakerFor(t *testing.T) {
	tables := DefaultTables()

	b, ok := tables.BreakerFor(4.2, model.CategorySafety)
	assert.True(t, ok)
	assert.Equal(t, 6.0, b)

	// Category floors.
	b, _ = tables.BreakerFor(4.2, model.CategoryOutlet)
	assert.Equal(t, 16.0, b)
	b, _ = tables.BreakerFor(4.2, model.CategoryLighting)
	assert.Equal(t, 10.0, b)

	// Beyond the series.
	b, ok = tables.BreakerFor(90, model.CategoryOutlet)
	assert.False(t, ok)
	assert.Equal(t, 63.0, b)
}

func TestTablesValidateRejectsUnsorted(t *testing.T) {
	tables := DefaultTables()
	tables.Ampacity[0], tables.Ampacity[1] = tables.Ampacity[1], tables.Ampacity[0]
	assert.Error(t, tables.Validate())

	tables = DefaultTables()
	tables.BreakerSeries = nil
	assert.Error(t, tables.Validate())
}

func TestLoadTablesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("breaker_series: [6, 10, 16, 20, 25, 32, 40, 50, 63, 80]\n"), 0644))

	tables, err := LoadTables(path)
	require.NoError(t, err)
	assert.Equal(t, 80.0, tables.BreakerSeries[len(tables.BreakerSeries)-1])
	// Ampacity table keeps its defaults.
	assert.Len(t, tables.Ampacity, 6)
}
