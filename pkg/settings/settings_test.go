package settings

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestPanoramicAOD(t *testing.T) {
	tests := []struct {
		name string
		out  string
		err  error
		want bool
	}{
		{"enabled", "1\n", nil, true},
		{"disabled", "0\n", nil, false},
		{"null", "null\n", nil, false},
		{"padded", "  1  ", nil, true},
		{"command failed", "", errors.New("exit status 255"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotArgs []string
			c := NewWithRunner(func(_ context.Context, name string, args ...string) ([]byte, error) {
				gotArgs = append([]string{name}, args...)
				return []byte(tt.out), tt.err
			}, quietLogger())

			assert.Equal(t, tt.want, c.PanoramicAOD(context.Background()))
			assert.Equal(t, []string{"settings", "get", "secure", PanoramicAODKey}, gotArgs)
		})
	}
}

func TestPanoramicAODMissingBinary(t *testing.T) {
	c := New(quietLogger())
	c.Command = "/nonexistent/settings"

	assert.False(t, c.PanoramicAOD(context.Background()))
}
