package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rianixia/displayadaptor/pkg/config"
	"github.com/rianixia/displayadaptor/pkg/scaling"
	"github.com/rianixia/displayadaptor/pkg/sysprop"
)

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}

// printCurves writes one row per 10% step of the logical range with the
// hardware value of every scaling mode. The active mode is highlighted.
func printCurves(w io.Writer, active scaling.Mode, hwMin, hwMax, inMin, inMax int) {
	fmt.Fprintf(w, "%s %d-%d -> %s %d-%d\n\n", bold("logical"), inMin, inMax, bold("hardware"), hwMin, hwMax)

	fmt.Fprintf(w, "%6s %8s", "input", "value")
	for _, m := range scaling.Modes {
		name := fmt.Sprintf("%8s", m.String())
		if m == active {
			name = color.New(color.Bold, color.FgGreen).Sprint(name)
		}
		fmt.Fprintf(w, " %s", name)
	}
	fmt.Fprintln(w)

	for pct := 0; pct <= 100; pct += 10 {
		v := inMin + (inMax-inMin)*pct/100
		fmt.Fprintf(w, "%5d%% %8d", pct, v)
		for _, m := range scaling.Modes {
			out := fmt.Sprintf("%8d", scaling.Scale(m, v, hwMin, hwMax, inMin, inMax))
			if m == active {
				out = color.New(color.FgGreen).Sprint(out)
			}
			fmt.Fprintf(w, " %s", out)
		}
		fmt.Fprintln(w)
	}
}

func NewCurveCommand(store sysprop.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "curve",
		Short: "Print the scaling curves over the current ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := config.NewProperties(store)
			hw, cal := resolve(conf)

			inMin, inMax := cal.Range().Min, cal.Range().Max
			if conf.PanelMode() {
				inMin, inMax = conf.PanelRange()
			} else if lo, ok := conf.LiveMin(); ok {
				if hi, ok := conf.LiveMax(); ok && lo < hi {
					inMin, inMax = lo, hi
				}
			}

			printCurves(cmd.OutOrStdout(), conf.ScalingMode(), hw.Min, hw.Max, inMin, inMax)
			return nil
		},
	}
}
