package config

import (
	"strconv"

	"github.com/rianixia/displayadaptor/pkg/scaling"
	"github.com/rianixia/displayadaptor/pkg/screen"
)

// Key is an entry of the property table.
type Key struct {
	// Name is the property name.
	Name string
	// Effect describes what the property controls.
	Effect string
	// Fallback is the value used when the property is unset or malformed.
	// Empty means the caller has its own fallback path.
	Fallback string
}

var (
	LogicalMin = Key{"persist.sys.rianixia.multibrightness.min", "persisted logical range minimum", strconv.Itoa(FallbackLogicalMin)}
	LogicalMax = Key{"persist.sys.rianixia.multibrightness.max", "persisted logical range maximum", strconv.Itoa(FallbackLogicalMax)}
	LiveMin    = Key{"sys.oplus.multibrightness.min", "live logical range minimum", ""}
	LiveMax    = Key{"sys.oplus.multibrightness", "live logical range maximum", ""}

	Debug       = Key{"persist.sys.rianixia.display-debug", "debug logging when true", "false"}
	FloatInput  = Key{"persist.sys.rianixia.brightness.isfloat", "brightness signal is a 0..1 float when true", "false"}
	PanelMode   = Key{"persist.sys.rianixia.is-displaypanel.support", "panel ramp mode when true", "false"}
	DisplayType = Key{"persist.sys.rianixia.display.type", "IPS disables aod handling", "AMOLED"}
	LuxAOD      = Key{"persist.sys.rianixia.oplus.lux_aod", "lux aod override when true", "false"}
	ScalingMode = Key{"persist.sys.rianixia.brightness.mode", "0 curved, 1 linear, 2 custom", strconv.Itoa(int(scaling.Curved))}

	CustomDeviceMax  = Key{"persist.sys.rianixia.custom.devmax.brightness", "hardware maximum override when > 0", ""}
	HardwareMin      = Key{"persist.sys.rianixia.hw_min", "cached hardware minimum, sysfs when unset", strconv.Itoa(FallbackHardwareMin)}
	HardwareMax      = Key{"persist.sys.rianixia.hw_max", "cached hardware maximum, sysfs when unset", strconv.Itoa(FallbackHardwareMax)}
	LuxAODBrightness = Key{"persist.sys.rianixia.oplus.lux_aod.brightness", "forced lux aod brightness", strconv.Itoa(FallbackLuxAOD)}

	PanelMin = Key{"persist.sys.rianixia-display.min", "panel mode input minimum", strconv.Itoa(FallbackPanelMin)}
	PanelMax = Key{"persist.sys.rianixia-display.max", "panel mode input maximum", strconv.Itoa(FallbackPanelMax)}

	ScreenBrightness = Key{"debug.tracing.screen_brightness", "logical brightness signal", strconv.Itoa(FallbackLogicalMin)}
	ScreenState      = Key{"debug.tracing.screen_state", "screen state code", strconv.Itoa(int(screen.On))}
)

// Keys is the full property table in display order.
var Keys = []Key{
	LogicalMin, LogicalMax, LiveMin, LiveMax,
	Debug, FloatInput, PanelMode, DisplayType, LuxAOD, ScalingMode,
	CustomDeviceMax, HardwareMin, HardwareMax, LuxAODBrightness,
	PanelMin, PanelMax,
	ScreenBrightness, ScreenState,
}
