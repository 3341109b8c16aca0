//go:build !android || !cgo

package sysprop

import (
	"context"
	"os/exec"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const commandTimeout = 2 * time.Second

// Command is a Store backed by the getprop and setprop tools. It is used
// when the binary is built without access to bionic.
type Command struct {
	GetProp string
	SetProp string

	run func(ctx context.Context, name string, args ...string) ([]byte, error)
}

var _ Store = &Command{}

// New returns the Store for this platform.
func New() Store {
	return &Command{
		GetProp: "getprop",
		SetProp: "setprop",
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
	}
}

// Get returns the value of key.
func (c *Command) Get(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := c.run(ctx, c.GetProp, key)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "%s %s", c.GetProp, key)
	}

	v := strings.TrimRight(string(out), "\r\n")
	if v == "" {
		return "", ErrNotFound
	}

	logrus.WithFields(logrus.Fields{
		"key": key,
		"val": v,
	}).Trace("property read")

	return v, nil
}

// Set stores value under key.
func (c *Command) Set(key, value string) error {
	if err := checkValue(value); err != nil {
		return pkgerrors.Wrapf(err, "set %s", key)
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if _, err := c.run(ctx, c.SetProp, key, value); err != nil {
		return pkgerrors.Wrapf(err, "%s %s %s", c.SetProp, key, value)
	}

	logrus.WithFields(logrus.Fields{
		"key": key,
		"val": value,
	}).Trace("property written")

	return nil
}
