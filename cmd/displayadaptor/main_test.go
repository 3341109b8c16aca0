package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rianixia/displayadaptor/pkg/config"
	"github.com/rianixia/displayadaptor/pkg/scaling"
	"github.com/rianixia/displayadaptor/pkg/sysprop"
)

func init() {
	color.NoColor = true
}

func runCommand(t *testing.T, store sysprop.Store, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := NewCommand(store)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestProbeCommand(t *testing.T) {
	store := sysprop.NewMemory(map[string]string{
		config.HardwareMin.Name: "1",
		config.HardwareMax.Name: "2047",
		config.LogicalMin.Name:  "50",
		config.LogicalMax.Name:  "1000",
		config.LiveMin.Name:     "100",
		config.LiveMax.Name:     "2000",
		config.ScalingMode.Name: "1",
	})

	out := runCommand(t, store, "probe")

	var got probeReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "default", got.LoopMode)
	assert.Equal(t, "Linear", got.ScalingMode)
	assert.Equal(t, 2047, got.Hardware.Max)
	assert.Equal(t, 50, got.Logical.Min)
	assert.Equal(t, 1000, got.Logical.Max)
	require.NotNil(t, got.Logical.Live)
	assert.Equal(t, 2000, got.Logical.Live.Max)
	assert.Len(t, got.Properties, len(config.Keys))

	assert.Empty(t, store.Sets(), "probe must not write properties")
}

func TestCurveCommand(t *testing.T) {
	store := sysprop.NewMemory(map[string]string{
		config.HardwareMin.Name: "1",
		config.HardwareMax.Name: "511",
	})

	out := runCommand(t, store, "curve")

	assert.Contains(t, out, "222-8191")
	for _, m := range scaling.Modes {
		assert.Contains(t, out, m.String())
	}
	assert.Equal(t, 11+3, strings.Count(out, "\n"))
}

func TestPrintCurves(t *testing.T) {
	var buf bytes.Buffer
	printCurves(&buf, scaling.Curved, 1, 511, 222, 8191)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	last := strings.Fields(lines[len(lines)-1])
	assert.Equal(t, []string{"100%", "8191", "511", "511", "511"}, last)

	first := strings.Fields(lines[3])
	assert.Equal(t, []string{"0%", "222", "1", "1", "1"}, first)
}

func TestVersionCommand(t *testing.T) {
	out := runCommand(t, sysprop.NewMemory(nil), "version")
	assert.Equal(t, "UNKNOWN UNKNOWN\n", out)
}
