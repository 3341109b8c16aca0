package config

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rianixia/displayadaptor/pkg/scaling"
	"github.com/rianixia/displayadaptor/pkg/screen"
	"github.com/rianixia/displayadaptor/pkg/sysprop"
)

func TestPropertiesDefaults(t *testing.T) {
	p := NewProperties(sysprop.NewMemory(nil))

	assert.False(t, p.Debug())
	assert.False(t, p.FloatInput())
	assert.False(t, p.PanelMode())
	assert.False(t, p.IPSPanel())
	assert.False(t, p.LuxAOD())
	assert.Equal(t, scaling.Curved, p.ScalingMode())
	assert.Equal(t, screen.On, p.ScreenState())

	lo, hi := p.PanelRange()
	assert.Equal(t, FallbackPanelMin, lo)
	assert.Equal(t, FallbackPanelMax, hi)

	_, ok := p.PersistedMin()
	assert.False(t, ok)
	_, ok = p.RawBrightness()
	assert.False(t, ok)
}

func TestPropertiesValues(t *testing.T) {
	store := sysprop.NewMemory(map[string]string{
		Debug.Name:            "true",
		FloatInput.Name:       "true",
		PanelMode.Name:        "true",
		DisplayType.Name:      "IPS",
		LuxAOD.Name:           "true",
		ScalingMode.Name:      "2",
		PanelMin.Name:         "10",
		PanelMax.Name:         "4095",
		LiveMin.Name:          "100",
		LiveMax.Name:          "2000",
		ScreenState.Name:      "3",
		ScreenBrightness.Name: "0.5",
		LuxAODBrightness.Name: "oops",
	})
	p := NewProperties(store)

	assert.True(t, p.Debug())
	assert.True(t, p.FloatInput())
	assert.True(t, p.PanelMode())
	assert.True(t, p.IPSPanel())
	assert.True(t, p.LuxAOD())
	assert.Equal(t, scaling.Custom, p.ScalingMode())
	assert.Equal(t, screen.Doze, p.ScreenState())

	lo, hi := p.PanelRange()
	assert.Equal(t, 10, lo)
	assert.Equal(t, 4095, hi)

	v, ok := p.LiveMax()
	assert.True(t, ok)
	assert.Equal(t, 2000, v)

	_, ok = p.LuxAODBrightness()
	assert.False(t, ok, "malformed values are treated as unset")

	raw, ok := p.RawBrightness()
	assert.True(t, ok)
	assert.Equal(t, "0.5", raw)

	assert.Equal(t, "Custom", p.LogrusFields()["scalingMode"])
}

func TestPropertiesSetters(t *testing.T) {
	store := sysprop.NewMemory(nil)
	p := NewProperties(store)

	require.NoError(t, p.SetPersistedMin(100))
	require.NoError(t, p.SetPersistedMax(2000))
	require.NoError(t, p.SetCachedHardwareMin(1))
	require.NoError(t, p.SetCachedHardwareMax(2047))

	assert.Equal(t, []sysprop.SetCall{
		{Key: LogicalMin.Name, Value: "100"},
		{Key: LogicalMax.Name, Value: "2000"},
		{Key: HardwareMin.Name, Value: "1"},
		{Key: HardwareMax.Name, Value: "2047"},
	}, store.Sets())

	v, ok := p.CachedHardwareMax()
	assert.True(t, ok)
	assert.Equal(t, 2047, v)
}

func TestKeysAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range Keys {
		assert.False(t, seen[k.Name], "duplicate key %s", k.Name)
		assert.NotEmpty(t, k.Effect)
		seen[k.Name] = true
	}
}

func TestPanelRangeResetsDegeneratePair(t *testing.T) {
	tests := []struct {
		name   string
		min    string
		max    string
		lo, hi int
	}{
		{"inverted", "5118", "22", FallbackPanelMin, FallbackPanelMax},
		{"empty", "300", "300", FallbackPanelMin, FallbackPanelMax},
		{"max below fallback min", "", "10", FallbackPanelMin, FallbackPanelMax},
		{"valid", "0", "4095", 0, 4095},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProperties(sysprop.NewMemory(map[string]string{
				PanelMin.Name: tt.min,
				PanelMax.Name: tt.max,
			}))
			lo, hi := p.PanelRange()
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}

func TestKeyFallbacksMatchGetters(t *testing.T) {
	p := NewProperties(sysprop.NewMemory(nil))

	fallback := func(k Key) int {
		i, err := strconv.Atoi(k.Fallback)
		require.NoError(t, err, k.Name)
		return i
	}

	lo, hi := p.PanelRange()
	assert.Equal(t, fallback(PanelMin), lo)
	assert.Equal(t, fallback(PanelMax), hi)
	assert.Equal(t, fallback(ScreenState), int(p.ScreenState()))
	assert.Equal(t, fallback(ScalingMode), int(p.ScalingMode()))
	assert.Equal(t, fallback(LuxAODBrightness), screen.DefaultLuxBrightness)
	assert.Equal(t, fallback(ScreenBrightness), FallbackLogicalMin)
	assert.Equal(t, fallback(LogicalMin), FallbackLogicalMin)
	assert.Equal(t, fallback(LogicalMax), FallbackLogicalMax)
}
