// Package sysfs reads and creates the device files the daemon works with.
package sysfs

import (
	"errors"
	"os"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Fixed device paths.
const (
	MinBrightnessPath   = "/sys/class/leds/lcd-backlight/min_brightness"
	MaxBrightnessPath   = "/sys/class/leds/lcd-backlight/max_hw_brightness"
	BrightnessPath      = "/sys/class/leds/lcd-backlight/brightness"
	PanelBrightnessPath = "/data/addon/oplus_display/oplus_brightness"
)

// ErrNotNumeric is returned when a file does not start with a decimal number.
var ErrNotNumeric = errors.New("file content is not numeric")

// FS is the file access the daemon needs.
type FS interface {
	ReadInt(path string) (int, error)
	Exists(path string) bool
	Create(path string) error
}

// OS is the real filesystem.
type OS struct{}

var _ FS = OS{}

// ReadInt returns the leading decimal digits of the file at path.
// Trailing content such as a newline or unit suffix is ignored.
func (OS) ReadInt(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "read %s", path)
	}

	v, err := ParseLeadingInt(string(b))
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "parse %s", path)
	}
	return v, nil
}

// Exists reports whether path exists.
func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Create creates an empty file at path.
func (OS) Create(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return pkgerrors.Wrapf(err, "create %s", path)
	}
	return f.Close()
}

// ParseLeadingInt parses the run of digits at the start of the trimmed s.
func ParseLeadingInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, ErrNotNumeric
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, pkgerrors.Wrap(ErrNotNumeric, err.Error())
	}
	return v, nil
}
