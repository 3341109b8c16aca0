package daemon

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rianixia/displayadaptor/pkg/backlight"
	"github.com/rianixia/displayadaptor/pkg/config"
	"github.com/rianixia/displayadaptor/pkg/settings"
	"github.com/rianixia/displayadaptor/pkg/sysfs"
	"github.com/rianixia/displayadaptor/pkg/sysprop"
)

var (
	// DefaultInterval is the poll interval of the default mode.
	DefaultInterval = 100 * time.Millisecond
	// PanelInterval is the poll and ramp interval of the panel mode.
	PanelInterval = 33 * time.Millisecond
	// CalibrationInterval is how often the logical range is refreshed
	// while it is not locked.
	CalibrationInterval = 5 * time.Second
	// SettleDelay is waited before the first write after the screen turns on.
	SettleDelay = 100 * time.Millisecond
	// CreateRetryInterval is waited between attempts to create the panel
	// brightness source.
	CreateRetryInterval = time.Second
)

// PanoramicProbe reports whether panoramic AOD is enabled.
type PanoramicProbe interface {
	PanoramicAOD(ctx context.Context) bool
}

// Output is a debounced brightness sink.
type Output interface {
	Write(value int) bool
	Last() int
}

type device interface {
	Output
	Close() error
}

// Daemon drives the backlight from the platform brightness signal.
type Daemon struct {
	conf      config.Config
	fs        sysfs.FS
	panoramic PanoramicProbe
	log       logrus.FieldLogger

	open  func(path string) (device, error)
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

// New returns a Daemon.
func New(conf config.Config, fs sysfs.FS, panoramic PanoramicProbe, log logrus.FieldLogger) *Daemon {
	return &Daemon{
		conf:      conf,
		fs:        fs,
		panoramic: panoramic,
		log:       log,
		open: func(path string) (device, error) {
			return backlight.Open(path, log)
		},
		sleep: sleepContext,
		now:   time.Now,
	}
}

// Run runs the loop selected by the panel mode property until ctx is
// cancelled. The only error it returns is a failure to open the
// brightness file.
func (d *Daemon) Run(ctx context.Context) error {
	if d.conf.PanelMode() {
		return d.runPanel(ctx)
	}
	return d.runDefault(ctx)
}

// Run builds a Daemon on the platform property store and runs it until
// SIGINT or SIGTERM.
func Run(store sysprop.Store) error {
	conf := config.NewProperties(store)
	log := logrus.WithField("component", "daemon")

	logrus.WithFields(conf.LogrusFields()).Info("properties loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := New(conf, sysfs.OS{}, settings.New(log), log)
	err := d.Run(ctx)
	if err != nil {
		return err
	}

	logrus.Info("exiting")
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
