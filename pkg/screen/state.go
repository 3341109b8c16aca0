package screen

import (
	"strconv"
	"strings"
)

// State is the display power state reported by the platform.
type State int

const (
	Off State = iota
	OffAod
	On
	Doze
	DozeSuspend
)

func (s State) String() string {
	switch s {
	case Off:
		return "Off"
	case OffAod:
		return "OffAod"
	case On:
		return "On"
	case Doze:
		return "Doze"
	case DozeSuspend:
		return "DozeSuspend"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// ParseState parses a screen state code. Unparseable input reports On so
// that a read error never leaves the display dark. Codes outside the known
// set are kept as-is and fall through to the "keep last value" branch.
func ParseState(v string) State {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return On
	}
	return State(i)
}

// IsDoze reports whether s is one of the AOD doze states.
func (s State) IsDoze() bool {
	return s == Doze || s == DozeSuspend
}

// IsOff reports whether s is one of the off states.
func (s State) IsOff() bool {
	return s == Off || s == OffAod
}
