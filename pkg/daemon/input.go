package daemon

import (
	"math"
	"strconv"
	"strings"

	"github.com/rianixia/displayadaptor/pkg/calibration"
)

// readBrightness parses the logical brightness property.
//
// In float mode the value is a 0..1 fraction of rng. Otherwise the integer
// part is used. A reading of 0 reports skip: the platform publishes 0
// transiently and the previous brightness must be kept. Missing or
// malformed readings report calibration.FallbackMin.
func readBrightness(raw string, present bool, rng calibration.Range, float bool) (value int, skip bool) {
	if !present {
		return calibration.FallbackMin, false
	}
	raw = strings.TrimSpace(raw)

	if float {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) {
			return calibration.FallbackMin, false
		}
		if f == 0 {
			return 0, true
		}
		f = math.Max(0, math.Min(1, f))
		return int(math.Round(float64(rng.Min) + f*float64(rng.Max-rng.Min))), false
	}

	intPart, _, _ := strings.Cut(raw, ".")
	v, err := strconv.Atoi(intPart)
	if err != nil {
		return calibration.FallbackMin, false
	}
	if v == 0 {
		return 0, true
	}
	return v, false
}
