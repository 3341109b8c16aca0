// Package settings queries the platform settings provider.
package settings

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// PanoramicAODKey is the secure setting that enables panoramic AOD.
	PanoramicAODKey = "panoramic_aod_enable"

	queryTimeout = 2 * time.Second
)

// Runner executes a command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Client runs `settings get <namespace> <key>`.
type Client struct {
	Command string
	run     Runner
	log     logrus.FieldLogger
}

// New returns a Client using the settings tool on PATH.
func New(log logrus.FieldLogger) *Client {
	return NewWithRunner(ExecRunner, log)
}

// NewWithRunner returns a Client that executes commands through run.
func NewWithRunner(run Runner, log logrus.FieldLogger) *Client {
	return &Client{
		Command: "settings",
		run:     run,
		log:     log,
	}
}

// Get returns the trimmed value of a setting.
func (c *Client) Get(ctx context.Context, namespace, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	out, err := c.run(ctx, c.Command, "get", namespace, key)
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) && len(ee.Stderr) > 0 {
			c.log.WithError(err).WithField("stderr", strings.TrimSpace(string(ee.Stderr))).Debug("settings get failed")
		}
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// PanoramicAOD reports whether panoramic AOD is enabled. Any failure to
// query the setting reports false.
func (c *Client) PanoramicAOD(ctx context.Context) bool {
	v, err := c.Get(ctx, "secure", PanoramicAODKey)
	if err != nil {
		c.log.WithError(err).Debug("failed to query panoramic aod, treating as disabled")
		return false
	}

	c.log.WithField("result", v).Trace("panoramic aod queried")
	return v == "1"
}
