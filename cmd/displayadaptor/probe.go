package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rianixia/displayadaptor/pkg/backlight"
	"github.com/rianixia/displayadaptor/pkg/calibration"
	"github.com/rianixia/displayadaptor/pkg/config"
	"github.com/rianixia/displayadaptor/pkg/sysfs"
	"github.com/rianixia/displayadaptor/pkg/sysprop"
	"github.com/rianixia/displayadaptor/pkg/version"
)

type probeReport struct {
	Version     string          `yaml:"version"`
	LoopMode    string          `yaml:"loopMode"`
	ScalingMode string          `yaml:"scalingMode"`
	Hardware    backlight.Range `yaml:"hardware"`
	Logical     probeLogical    `yaml:"logical"`
	Properties  []probeProperty `yaml:"properties"`
}

type probeLogical struct {
	calibration.Range `yaml:",inline"`
	Source            calibration.Source `yaml:"source"`
	Live              *calibration.Range `yaml:"live,omitempty"`
}

type probeProperty struct {
	Name     string `yaml:"name"`
	Value    string `yaml:"value,omitempty"`
	Fallback string `yaml:"fallback,omitempty"`
	Effect   string `yaml:"effect"`
}

// readOnly drops the hardware cache writes done during detection.
type readOnly struct {
	config.Config
}

func (readOnly) SetCachedHardwareMin(int) error { return nil }
func (readOnly) SetCachedHardwareMax(int) error { return nil }

// resolve computes the ranges the daemon would start with, without
// writing any property.
func resolve(conf config.Config) (backlight.Range, *calibration.Calibrator) {
	log := discardLogger()
	hw := backlight.DetectRange(readOnly{conf}, sysfs.OS{}, log)
	return hw, calibration.New(conf, log)
}

func buildProbeReport(store sysprop.Store) probeReport {
	conf := config.NewProperties(store)
	hw, cal := resolve(conf)

	r := probeReport{
		Version:     version.Version,
		LoopMode:    "default",
		ScalingMode: conf.ScalingMode().String(),
		Hardware:    hw,
		Logical: probeLogical{
			Range:  cal.Range(),
			Source: cal.Source(),
		},
	}
	if conf.PanelMode() {
		r.LoopMode = "panel"
	}

	lo, loOK := conf.LiveMin()
	hi, hiOK := conf.LiveMax()
	if loOK && hiOK {
		r.Logical.Live = &calibration.Range{Min: lo, Max: hi}
	}

	for _, k := range config.Keys {
		v, _ := sysprop.Lookup(store, k.Name)
		r.Properties = append(r.Properties, probeProperty{
			Name:     k.Name,
			Value:    v,
			Fallback: k.Fallback,
			Effect:   k.Effect,
		})
	}
	return r
}

func NewProbeCommand(store sysprop.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Print resolved properties and ranges as YAML",
		Long: `Print the property table, the detected hardware range and the logical
range the daemon would start with. Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(buildProbeReport(store)); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
