package config

import (
	"github.com/sirupsen/logrus"

	"github.com/rianixia/displayadaptor/pkg/scaling"
	"github.com/rianixia/displayadaptor/pkg/screen"
	"github.com/rianixia/displayadaptor/pkg/sysprop"
)

var _ Config = &Properties{}

// Properties is a Config read live from a property store. Nothing is
// cached; every getter performs a lookup.
type Properties struct {
	store sysprop.Store
}

func NewProperties(store sysprop.Store) *Properties {
	return &Properties{store: store}
}

func (p *Properties) flag(k Key) bool {
	return sysprop.Bool(p.store, k.Name)
}

func (p *Properties) intValue(k Key) (int, bool) {
	return sysprop.Int(p.store, k.Name)
}

func (p *Properties) set(k Key, v int) error {
	return sysprop.SetInt(p.store, k.Name, v)
}

func (p *Properties) Debug() bool      { return p.flag(Debug) }
func (p *Properties) FloatInput() bool { return p.flag(FloatInput) }
func (p *Properties) PanelMode() bool  { return p.flag(PanelMode) }
func (p *Properties) LuxAOD() bool     { return p.flag(LuxAOD) }

func (p *Properties) IPSPanel() bool {
	v, ok := sysprop.Lookup(p.store, DisplayType.Name)
	return ok && v == IPSDisplayType
}

func (p *Properties) ScalingMode() scaling.Mode {
	i, _ := p.intValue(ScalingMode)
	return scaling.ParseMode(i)
}

func (p *Properties) PersistedMin() (int, bool)   { return p.intValue(LogicalMin) }
func (p *Properties) PersistedMax() (int, bool)   { return p.intValue(LogicalMax) }
func (p *Properties) LiveMin() (int, bool)        { return p.intValue(LiveMin) }
func (p *Properties) LiveMax() (int, bool)        { return p.intValue(LiveMax) }
func (p *Properties) SetPersistedMin(v int) error { return p.set(LogicalMin, v) }
func (p *Properties) SetPersistedMax(v int) error { return p.set(LogicalMax, v) }

func (p *Properties) CustomDeviceMax() (int, bool)     { return p.intValue(CustomDeviceMax) }
func (p *Properties) CachedHardwareMin() (int, bool)   { return p.intValue(HardwareMin) }
func (p *Properties) CachedHardwareMax() (int, bool)   { return p.intValue(HardwareMax) }
func (p *Properties) SetCachedHardwareMin(v int) error { return p.set(HardwareMin, v) }
func (p *Properties) SetCachedHardwareMax(v int) error { return p.set(HardwareMax, v) }

func (p *Properties) LuxAODBrightness() (int, bool) { return p.intValue(LuxAODBrightness) }

// PanelRange returns the panel mode input range. A range that is not
// strictly increasing is reset to the fallback pair.
func (p *Properties) PanelRange() (int, int) {
	lo, ok := p.intValue(PanelMin)
	if !ok {
		lo = FallbackPanelMin
	}
	hi, ok := p.intValue(PanelMax)
	if !ok {
		hi = FallbackPanelMax
	}
	if lo >= hi {
		return FallbackPanelMin, FallbackPanelMax
	}
	return lo, hi
}

// ScreenState returns the current screen state, On when unreadable.
func (p *Properties) ScreenState() screen.State {
	v, ok := sysprop.Lookup(p.store, ScreenState.Name)
	if !ok {
		return screen.On
	}
	return screen.ParseState(v)
}

func (p *Properties) RawBrightness() (string, bool) {
	return sysprop.Lookup(p.store, ScreenBrightness.Name)
}

// LogrusFields returns the resolved mode flags for logging.
func (p *Properties) LogrusFields() logrus.Fields {
	lo, hi := p.PanelRange()
	return logrus.Fields{
		"debug":       p.Debug(),
		"floatInput":  p.FloatInput(),
		"panelMode":   p.PanelMode(),
		"ipsPanel":    p.IPSPanel(),
		"luxAOD":      p.LuxAOD(),
		"scalingMode": p.ScalingMode().String(),
		"panelRange":  []int{lo, hi},
	}
}
