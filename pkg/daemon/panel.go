package daemon

import (
	"context"
	"reflect"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rianixia/displayadaptor/pkg/backlight"
	"github.com/rianixia/displayadaptor/pkg/scaling"
	"github.com/rianixia/displayadaptor/pkg/screen"
	"github.com/rianixia/displayadaptor/pkg/sysfs"
)

// PanelState is carried from one panel mode tick to the next.
type PanelState struct {
	HW      backlight.Range
	InMin   int
	InMax   int
	Out     Output
	Current int

	lastStatus    panelStatus
	lastPrintTime time.Time
}

type panelStatus struct {
	source  int
	target  int
	current int
	readErr bool
}

func (d *Daemon) runPanel(ctx context.Context) error {
	d.log.Debug("starting in panel mode")

	if err := d.ensurePanelSource(ctx); err != nil {
		return nil
	}

	hw := backlight.DetectRange(d.conf, d.fs, d.log)
	inMin, inMax := d.conf.PanelRange()

	d.log.WithFields(logrus.Fields{
		"hardware": hw.String(),
		"input":    []int{inMin, inMax},
	}).Info("panel scaling range resolved")

	dev, err := d.open(sysfs.BrightnessPath)
	if err != nil {
		d.log.WithError(err).Error("could not open brightness file")
		return err
	}
	defer func() {
		if err := dev.Close(); err != nil {
			d.log.WithError(err).Error("failed to close brightness file")
		}
	}()

	st := d.newPanelState(hw, inMin, inMax, dev)

	for {
		d.panelTick(st)
		if err := d.sleep(ctx, PanelInterval); err != nil {
			d.log.Debug("panel loop stopped")
			return nil
		}
	}
}

// ensurePanelSource creates the panel brightness source if it is missing,
// retrying until it succeeds or ctx is cancelled.
func (d *Daemon) ensurePanelSource(ctx context.Context) error {
	path := sysfs.PanelBrightnessPath
	if d.fs.Exists(path) {
		return nil
	}

	d.log.WithField("path", path).Debug("panel brightness source not found, creating it")
	for {
		err := d.fs.Create(path)
		if err == nil {
			d.log.WithField("path", path).Debug("panel brightness source created")
			return nil
		}

		d.log.WithError(err).Errorf("failed to create %s, retrying in %s", path, CreateRetryInterval)
		if err := d.sleep(ctx, CreateRetryInterval); err != nil {
			return err
		}
	}
}

func (d *Daemon) newPanelState(hw backlight.Range, inMin, inMax int, out Output) *PanelState {
	st := &PanelState{
		HW:    hw,
		InMin: inMin,
		InMax: inMax,
		Out:   out,
	}

	cur, err := d.fs.ReadInt(sysfs.BrightnessPath)
	if err != nil {
		cur = hw.Min
	}
	st.Current = cur
	out.Write(cur)
	return st
}

// panelTick performs one panel mode iteration: the written value moves
// one ramp step toward the scaled source value.
func (d *Daemon) panelTick(st *PanelState) {
	if v, err := d.fs.ReadInt(sysfs.BrightnessPath); err == nil {
		st.Current = v
	}

	src, err := d.fs.ReadInt(sysfs.PanelBrightnessPath)
	if err != nil {
		d.printPanelStatus(st, panelStatus{current: st.Current, readErr: true})
		return
	}

	if src == 0 {
		if st.Current != 0 {
			st.Current = 0
			st.Out.Write(0)
		}
		d.printPanelStatus(st, panelStatus{current: st.Current})
		return
	}

	mode := d.conf.ScalingMode()
	target := scaling.Scale(mode, src, st.HW.Min, st.HW.Max, st.InMin, st.InMax)
	if st.Current != target {
		st.Current = screen.Step(st.Current, target)
		st.Out.Write(st.Current)
	}

	d.printPanelStatus(st, panelStatus{source: src, target: target, current: st.Current})
}

// printPanelStatus logs at debug level only when the status changed or
// has not been printed for a while.
func (d *Daemon) printPanelStatus(st *PanelState, status panelStatus) {
	fields := logrus.Fields{
		"source":  status.source,
		"target":  status.target,
		"current": status.current,
	}

	now := d.now()
	defer func() { st.lastPrintTime = now }()

	if now.Sub(st.lastPrintTime) < 10*time.Second && reflect.DeepEqual(st.lastStatus, status) {
		d.log.WithFields(fields).Trace("panel loop status")
		return
	}

	if status.readErr {
		d.log.WithField("path", sysfs.PanelBrightnessPath).Debug("failed to read panel brightness source")
	} else {
		d.log.WithFields(fields).Debug("panel loop status")
	}
	st.lastStatus = status
}
