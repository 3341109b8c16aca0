package main

import (
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rianixia/displayadaptor/pkg/config"
	"github.com/rianixia/displayadaptor/pkg/daemon"
	"github.com/rianixia/displayadaptor/pkg/logcat"
	"github.com/rianixia/displayadaptor/pkg/sysprop"
	"github.com/rianixia/displayadaptor/pkg/version"
)

// setupLogger configures logrus from the debug property. Debug logging is
// enabled when the property is "true"; it is read once at startup.
func setupLogger(conf config.Config) {
	level := logrus.InfoLevel
	if conf.Debug() {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.StampMilli,
		})
	}

	if logcat.Install(logrus.StandardLogger()) {
		logrus.Debugf("logging to logcat with tag %s", logcat.Tag)
	}
}

func main() {
	// The loop is single-threaded and mostly sleeps.
	if os.Getenv("GOMAXPROCS") == "" {
		runtime.GOMAXPROCS(1)
	}

	if err := NewCommand(sysprop.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCommand(store sysprop.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "displayadaptor",
		Short: "displayadaptor maps the platform brightness signal onto the backlight",
		Long: `displayadaptor maps the platform brightness signal onto the backlight.

It runs in the foreground until killed. All configuration is read from
system properties; run "displayadaptor probe" to see the resolved values.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogger(config.NewProperties(store))
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			logrus.WithFields(logrus.Fields{
				"version": version.Version,
				"commit":  version.GitCommit,
			}).Info("displayadaptor starting")

			if err := daemon.Run(store); err != nil {
				logrus.WithError(err).Error("displayadaptor stopped")
				return err
			}
			return nil
		},
	}

	cmd.AddCommand(
		NewVersionCommand(),
		NewProbeCommand(store),
		NewCurveCommand(store),
	)

	return cmd
}

// NewVersionCommand .
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}
