// Package backlight detects the physical backlight limits and writes
// brightness values to the device.
package backlight

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rianixia/displayadaptor/pkg/config"
	"github.com/rianixia/displayadaptor/pkg/sysfs"
)

// Hardware defaults used when detection fails.
const (
	DefaultMin = config.FallbackHardwareMin
	DefaultMax = config.FallbackHardwareMax
)

// Range is the physical backlight range.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Cache is the property access hardware detection needs.
type Cache interface {
	CustomDeviceMax() (int, bool)
	CachedHardwareMin() (int, bool)
	CachedHardwareMax() (int, bool)
	SetCachedHardwareMin(int) error
	SetCachedHardwareMax(int) error
}

// DetectRange determines the hardware range once at startup.
//
// The maximum prefers a positive custom override, then the cached
// property, then sysfs (caching the result). The minimum prefers the cached
// property, then sysfs (0 is promoted to 1, the result is cached). A range
// that is not strictly increasing is reset to the defaults.
func DetectRange(cache Cache, fs sysfs.FS, log logrus.FieldLogger) Range {
	r := Range{
		Min: detectMin(cache, fs, log),
		Max: detectMax(cache, fs, log),
	}

	if r.Min >= r.Max {
		log.WithField("range", r.String()).Warn("degenerate hardware range, using defaults")
		r = Range{Min: DefaultMin, Max: DefaultMax}
	}
	return r
}

func detectMax(cache Cache, fs sysfs.FS, log logrus.FieldLogger) int {
	if v, ok := cache.CustomDeviceMax(); ok && v > 0 {
		log.WithField("max", v).Debug("using custom device max brightness")
		return v
	}

	if v, ok := cache.CachedHardwareMax(); ok {
		log.WithField("max", v).Debug("using cached hardware max")
		return v
	}

	v, err := fs.ReadInt(sysfs.MaxBrightnessPath)
	if err != nil {
		log.WithError(err).Debugf("failed to detect hardware max, using %d", DefaultMax)
		return DefaultMax
	}

	log.WithField("max", v).Debug("detected hardware max, caching")
	if err := cache.SetCachedHardwareMax(v); err != nil {
		log.WithError(err).Error("failed to cache hardware max")
	}
	return v
}

func detectMin(cache Cache, fs sysfs.FS, log logrus.FieldLogger) int {
	if v, ok := cache.CachedHardwareMin(); ok {
		log.WithField("min", v).Debug("using cached hardware min")
		return v
	}

	v, err := fs.ReadInt(sysfs.MinBrightnessPath)
	if err != nil {
		log.WithError(err).Debugf("failed to detect hardware min, using %d", DefaultMin)
		return DefaultMin
	}

	if v == 0 {
		// 0 is reported while the screen is off.
		log.Debug("detected hardware min 0, using 1")
		v = 1
	}

	log.WithField("min", v).Debug("detected hardware min, caching")
	if err := cache.SetCachedHardwareMin(v); err != nil {
		log.WithError(err).Error("failed to cache hardware min")
	}
	return v
}
