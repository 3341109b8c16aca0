//go:build android && cgo

package logcat

// #cgo LDFLAGS: -llog
// #include <stdlib.h>
// #include <android/log.h>
import "C"

import (
	"unsafe"

	"github.com/sirupsen/logrus"
)

func write(prio int, tag, msg string) {
	ctag := C.CString(tag)
	defer C.free(unsafe.Pointer(ctag))
	cmsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cmsg))

	C.__android_log_write(C.int(prio), ctag, cmsg)
}

// Install adds the logcat hook to l. It reports whether logcat is
// available on this build.
func Install(l *logrus.Logger) bool {
	l.AddHook(&Hook{write: write})
	return true
}
