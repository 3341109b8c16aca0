// Package screen decides, once per poll tick, which hardware value the
// backlight should receive for the current screen state.
package screen

import "strings"

// LuxSentinel is the raw brightness reading the platform reports while
// ambient-light AOD content is shown.
const LuxSentinel = "2937.773"

// DefaultLuxBrightness is forced when the sentinel is observed and no
// lux-AOD brightness is configured.
const DefaultLuxBrightness = 1

// Input is everything a decision depends on.
type Input struct {
	Prev State
	Cur  State

	// Brightness is the current logical brightness.
	Brightness int
	// RawBrightness is the unparsed brightness property, used to detect
	// LuxSentinel.
	RawBrightness string

	IPS    bool
	LuxAOD bool

	// Panoramic reports whether panoramic AOD is enabled. It is only
	// called on the branches that need it.
	Panoramic func() bool
	// LuxBrightness returns the configured lux-AOD brightness.
	LuxBrightness func() (int, bool)
	// Scale maps a logical brightness onto the hardware range with the
	// currently selected curve.
	Scale func(int) int
}

// Decision is the outcome of a tick.
type Decision struct {
	// Value is the hardware value to write. Only meaningful when Write.
	Value int
	// Write is false when the last written value must be kept.
	Write bool
	// Settle is set when the screen just turned on; the caller waits
	// before writing so the panel does not flash.
	Settle bool
	// Reason is a short description for logging.
	Reason string
}

func write(v int, reason string) Decision {
	return Decision{Value: v, Write: true, Reason: reason}
}

func keep(reason string) Decision {
	return Decision{Reason: reason}
}

// Changed reports whether a tick needs a new decision.
func Changed(prevState, curState State, prevBrightness, curBrightness int) bool {
	return prevState != curState || prevBrightness != curBrightness
}

// Decide evaluates the screen state table.
func Decide(in Input) Decision {
	if in.Cur == On {
		d := write(in.Scale(in.Brightness), "screen on")
		d.Settle = in.Prev != On
		return d
	}

	if in.IPS {
		return write(0, "ips panel has no aod")
	}

	if in.Cur.IsOff() {
		return write(0, "screen off")
	}

	if in.Cur.IsDoze() {
		return decideDoze(in)
	}

	if in.Prev == On {
		if panoramic(in) {
			return keep("left on with panoramic aod, deferring off")
		}
		return write(0, "left on")
	}

	return keep("unknown state")
}

func decideDoze(in Input) Decision {
	pano := panoramic(in)

	if in.LuxAOD && pano {
		if v, ok := luxBrightness(in); ok && v > 0 {
			return write(v, "lux and panoramic aod")
		}
		return keep("lux and panoramic aod without brightness")
	}

	if in.Cur == Doze && in.LuxAOD {
		if strings.TrimSpace(in.RawBrightness) == LuxSentinel {
			v, ok := luxBrightness(in)
			if !ok {
				v = DefaultLuxBrightness
			}
			return write(v, "lux aod detected")
		}
		return write(in.Scale(in.Brightness), "doze with lux aod")
	}

	if pano {
		return keep("panoramic aod")
	}
	return write(0, "doze without panoramic aod")
}

func panoramic(in Input) bool {
	return in.Panoramic != nil && in.Panoramic()
}

func luxBrightness(in Input) (int, bool) {
	if in.LuxBrightness == nil {
		return 0, false
	}
	return in.LuxBrightness()
}
