//go:build android && cgo

package sysprop

// #include <stdlib.h>
// #include <sys/system_properties.h>
import "C"

import (
	"unsafe"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Bionic is a Store backed by the libc property functions.
type Bionic struct{}

var _ Store = Bionic{}

// New returns the Store for this platform.
func New() Store {
	return Bionic{}
}

// Get returns the value of key.
func (Bionic) Get(key string) (string, error) {
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	var buf [C.PROP_VALUE_MAX]C.char
	n := C.__system_property_get(ckey, &buf[0])
	if n <= 0 {
		return "", ErrNotFound
	}

	v := C.GoStringN(&buf[0], n)
	logrus.WithFields(logrus.Fields{
		"key": key,
		"val": v,
	}).Trace("property read")

	return v, nil
}

// Set stores value under key.
func (Bionic) Set(key, value string) error {
	if err := checkValue(value); err != nil {
		return pkgerrors.Wrapf(err, "set %s", key)
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	cval := C.CString(value)
	defer C.free(unsafe.Pointer(cval))

	if rc := C.__system_property_set(ckey, cval); rc != 0 {
		return pkgerrors.Errorf("__system_property_set %s=%s failed: %d", key, value, int(rc))
	}

	logrus.WithFields(logrus.Fields{
		"key": key,
		"val": value,
	}).Trace("property written")

	return nil
}
