package backlight

import (
	"os"
	"strconv"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Unset is the committed value before the first successful write.
const Unset = -1

// Writer emits brightness values to an open device descriptor. Writes of
// the last committed value are skipped; failed writes leave the committed
// value untouched so the next attempt is retried.
type Writer struct {
	fd   int
	last int
	log  logrus.FieldLogger

	rawWrite func(fd int, p []byte) (int, error)
}

// NewWriter returns a Writer for fd.
func NewWriter(fd int, log logrus.FieldLogger) *Writer {
	return &Writer{
		fd:       fd,
		last:     Unset,
		log:      log,
		rawWrite: unix.Write,
	}
}

// Last returns the last committed value, or Unset.
func (w *Writer) Last() int {
	return w.last
}

// Write commits value. It returns true when a write was performed and
// succeeded.
func (w *Writer) Write(value int) bool {
	if value == w.last {
		return false
	}

	w.log.WithFields(logrus.Fields{
		"from": w.last,
		"to":   value,
	}).Debug("writing brightness")

	if _, err := w.rawWrite(w.fd, []byte(strconv.Itoa(value))); err != nil {
		w.log.WithError(err).WithField("value", value).Error("brightness write failed")
		return false
	}

	w.last = value
	return true
}

// Device is the held brightness file.
type Device struct {
	f *os.File
	*Writer
}

// Open opens the brightness file for writing.
func Open(path string, log logrus.FieldLogger) (*Device, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "open brightness file %s", path)
	}

	return &Device{
		f:      f,
		Writer: NewWriter(int(f.Fd()), log),
	}, nil
}

// Close releases the descriptor.
func (d *Device) Close() error {
	return d.f.Close()
}
