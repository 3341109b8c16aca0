// Package sysprop provides access to the system-wide property database.
//
// Properties are flat string key/value pairs. Absence of a key is an expected
// outcome and is reported as ErrNotFound.
package sysprop

import (
	"errors"
	"strconv"
	"strings"
)

// ValueMax is the longest value the property database accepts, in bytes.
// It matches PROP_VALUE_MAX from bionic minus the terminating NUL.
const ValueMax = 91

var (
	// ErrNotFound is returned when a property is unset or empty.
	ErrNotFound = errors.New("property not found")

	// ErrValueTooLong is returned when a value does not fit in ValueMax bytes.
	ErrValueTooLong = errors.New("property value too long")
)

// Store is a synchronous property database.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Lookup returns the value of key and whether it was present.
func Lookup(s Store, key string) (string, bool) {
	v, err := s.Get(key)
	if err != nil {
		return "", false
	}
	return v, true
}

// Int returns the value of key parsed as a decimal integer.
// Unset and non-numeric values both report false.
func Int(s Store, key string) (int, bool) {
	v, ok := Lookup(s, key)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return i, true
}

// Bool reports whether key is set to exactly "true".
func Bool(s Store, key string) bool {
	v, ok := Lookup(s, key)
	return ok && v == "true"
}

// SetInt stores i as a decimal string.
func SetInt(s Store, key string, i int) error {
	return s.Set(key, strconv.Itoa(i))
}

func checkValue(value string) error {
	if len(value) > ValueMax {
		return ErrValueTooLong
	}
	return nil
}
