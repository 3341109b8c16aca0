// Package scaling maps a logical brightness value onto the hardware range.
//
// Every function takes (value, hwMin, hwMax, inMin, inMax) and is total:
// a degenerate hardware range yields max(hwMin, 0) and values outside the
// input range clamp to the hardware bounds.
package scaling

import (
	"math"
	"strconv"
)

// Mode selects a curve policy.
type Mode int

const (
	Curved Mode = iota
	Linear
	Custom
)

func (m Mode) String() string {
	switch m {
	case Curved:
		return "Curved"
	case Linear:
		return "Linear"
	case Custom:
		return "Custom"
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode converts a property value into a Mode. Anything that is not
// 1 or 2 selects Curved.
func ParseMode(i int) Mode {
	switch Mode(i) {
	case Linear:
		return Linear
	case Custom:
		return Custom
	}
	return Curved
}

// Modes lists every Mode in property order.
var Modes = []Mode{Curved, Linear, Custom}

// Func is the signature shared by all curve policies.
type Func func(value, hwMin, hwMax, inMin, inMax int) int

// Func returns the curve implementing m.
func (m Mode) Func() Func {
	switch m {
	case Linear:
		return ScaleLinear
	case Custom:
		return ScaleCustom
	}
	return ScaleCurved
}

// Scale maps value with the curve selected by mode.
func Scale(mode Mode, value, hwMin, hwMax, inMin, inMax int) int {
	return mode.Func()(value, hwMin, hwMax, inMin, inMax)
}

// Internal scale of the curved policy.
const (
	curveMax = 511

	// CustomKneeInput is the input fraction at which the custom curve reaches
	// CustomKneeOutput.
	CustomKneeInput = 0.75
	// CustomKneeOutput is the hardware value of the custom curve's knee.
	CustomKneeOutput = 255
)

// bounds applies the shared guards. done is true when the result is already
// known, in which case it is returned in v.
func bounds(value, hwMin, hwMax, inMin, inMax int) (v, lo, hi int, done bool) {
	if hwMin >= hwMax {
		return max(hwMin, 0), 0, 0, true
	}
	lo = min(inMin, inMax-1)
	hi = max(inMax, lo+1)
	if value <= lo {
		return hwMin, lo, hi, true
	}
	if value >= hi {
		return hwMax, lo, hi, true
	}
	return 0, lo, hi, false
}

// CurveIndex maps an integer percentage onto the 0..511 perceptual scale.
// The three segments and their integer truncation are part of the curve.
func CurveIndex(percent int) int {
	switch {
	case percent < 0:
		return 1
	case percent <= 70:
		return 1 + 56*percent/70
	case percent <= 90:
		return 57 + 197*(percent-70)/20
	case percent <= 100:
		return 254 + 257*(percent-90)/10
	}
	return curveMax
}

// ScaleCurved approximates perceptual gamma compression with a
// piecewise-linear table.
func ScaleCurved(value, hwMin, hwMax, inMin, inMax int) int {
	v, lo, hi, done := bounds(value, hwMin, hwMax, inMin, inMax)
	if done {
		return v
	}

	percent := (value - lo) * 100 / (hi - lo)
	idx := CurveIndex(percent)
	return clamp(hwMin+idx*(hwMax-hwMin)/curveMax, hwMin, hwMax)
}

// ScaleLinear maps value proportionally, rounding to the nearest integer.
func ScaleLinear(value, hwMin, hwMax, inMin, inMax int) int {
	v, lo, hi, done := bounds(value, hwMin, hwMax, inMin, inMax)
	if done {
		return v
	}

	ratio := float64(value-lo) / float64(hi-lo)
	return clamp(hwMin+int(math.Round(ratio*float64(hwMax-hwMin))), hwMin, hwMax)
}

// ScaleCustom maps value with two linear segments meeting at the knee
// (75% input, hardware value 255). The knee is clamped into the hardware
// range so that panels with hwMax below 255 stay monotonic.
func ScaleCustom(value, hwMin, hwMax, inMin, inMax int) int {
	v, lo, hi, done := bounds(value, hwMin, hwMax, inMin, inMax)
	if done {
		return v
	}

	knee := float64(clamp(CustomKneeOutput, hwMin, hwMax))
	normalized := float64(value-lo) / float64(hi-lo)

	var out float64
	if normalized <= CustomKneeInput {
		ratio := normalized / CustomKneeInput
		out = float64(hwMin) + ratio*(knee-float64(hwMin))
	} else {
		ratio := (normalized - CustomKneeInput) / (1 - CustomKneeInput)
		out = knee + ratio*(float64(hwMax)-knee)
	}
	return clamp(int(math.Round(out)), hwMin, hwMax)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
