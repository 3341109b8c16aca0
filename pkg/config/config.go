package config

import (
	"github.com/sirupsen/logrus"

	"github.com/rianixia/displayadaptor/pkg/scaling"
	"github.com/rianixia/displayadaptor/pkg/screen"
)

// Fallback values. The property table and the packages applying them
// share these.
const (
	FallbackLogicalMin  = 222
	FallbackLogicalMax  = 8191
	FallbackPanelMin    = 22
	FallbackPanelMax    = 5118
	FallbackHardwareMin = 1
	FallbackHardwareMax = 511
	FallbackLuxAOD      = screen.DefaultLuxBrightness
)

// IPSDisplayType is the DisplayType value that marks an IPS panel.
const IPSDisplayType = "IPS"

type Config interface {
	Debug() bool
	FloatInput() bool
	PanelMode() bool
	IPSPanel() bool
	LuxAOD() bool
	ScalingMode() scaling.Mode

	PersistedMin() (int, bool)
	PersistedMax() (int, bool)
	LiveMin() (int, bool)
	LiveMax() (int, bool)
	SetPersistedMin(int) error
	SetPersistedMax(int) error

	CustomDeviceMax() (int, bool)
	CachedHardwareMin() (int, bool)
	CachedHardwareMax() (int, bool)
	SetCachedHardwareMin(int) error
	SetCachedHardwareMax(int) error

	LuxAODBrightness() (int, bool)
	PanelRange() (min, max int)

	ScreenState() screen.State
	RawBrightness() (string, bool)

	LogrusFields() logrus.Fields
}
