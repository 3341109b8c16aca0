package calibration

import (
	"fmt"

	"github.com/rianixia/displayadaptor/pkg/config"
)

// Fallback logical range used when no valid pair is known.
const (
	FallbackMin = config.FallbackLogicalMin
	FallbackMax = config.FallbackLogicalMax
)

// Range is a logical brightness range.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Fallback returns the fallback range.
func Fallback() Range {
	return Range{Min: FallbackMin, Max: FallbackMax}
}

// Valid reports whether Min < Max.
func (r Range) Valid() bool {
	return r.Min < r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Source describes where the current range came from.
type Source string

const (
	SourceFallback  Source = "Fallback"
	SourcePersisted Source = "Persisted"
	SourceLive      Source = "Live"
)

// Store is the property access a Calibrator needs.
type Store interface {
	PersistedMin() (int, bool)
	PersistedMax() (int, bool)
	LiveMin() (int, bool)
	LiveMax() (int, bool)
	SetPersistedMin(int) error
	SetPersistedMax(int) error
}
