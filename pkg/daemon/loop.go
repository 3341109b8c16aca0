package daemon

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/rianixia/displayadaptor/pkg/backlight"
	"github.com/rianixia/displayadaptor/pkg/calibration"
	"github.com/rianixia/displayadaptor/pkg/scaling"
	"github.com/rianixia/displayadaptor/pkg/screen"
	"github.com/rianixia/displayadaptor/pkg/sysfs"
)

// LoopState is carried from one default mode tick to the next.
type LoopState struct {
	HW  backlight.Range
	Cal *calibration.Calibrator
	Out Output

	// Mode flags read once at startup.
	Float bool
	IPS   bool
	Lux   bool

	PrevState      screen.State
	PrevBrightness int

	// NextRefresh is when the calibrator is refreshed next.
	NextRefresh time.Time
	refresh     cron.Schedule

	// recalibrated forces a decision on the next tick.
	recalibrated bool
}

func (d *Daemon) runDefault(ctx context.Context) error {
	d.log.Debug("starting in default mode")

	hw := backlight.DetectRange(d.conf, d.fs, d.log)
	cal := calibration.New(d.conf, d.log)
	cal.Refresh()

	d.log.WithFields(logrus.Fields{
		"hardware": hw.String(),
		"logical":  cal.Range().String(),
		"locked":   cal.Locked(),
	}).Info("ranges resolved")

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

	st := d.newLoopState(hw, cal, dev)

	for {
		d.tick(ctx, st)
		if err := d.sleep(ctx, DefaultInterval); err != nil {
			d.log.Debug("default loop stopped")
			return nil
		}
	}
}

// newLoopState samples the initial state and writes the initial
// brightness.
func (d *Daemon) newLoopState(hw backlight.Range, cal *calibration.Calibrator, out Output) *LoopState {
	st := &LoopState{
		HW:      hw,
		Cal:     cal,
		Out:     out,
		Float:   d.conf.FloatInput(),
		IPS:     d.conf.IPSPanel(),
		Lux:     d.conf.LuxAOD(),
		refresh: cron.Every(CalibrationInterval),
	}
	st.NextRefresh = st.refresh.Next(d.now())

	d.log.WithFields(logrus.Fields{
		"floatInput": st.Float,
		"ipsPanel":   st.IPS,
		"luxAOD":     st.Lux,
		"mode":       d.conf.ScalingMode().String(),
	}).Debug("mode flags")

	st.PrevState = d.conf.ScreenState()
	raw, ok := d.conf.RawBrightness()
	b, skip := readBrightness(raw, ok, cal.Range(), st.Float)
	if skip {
		d.log.Debug("initial brightness is 0, using fallback")
		b = calibration.FallbackMin
	}
	st.PrevBrightness = b

	out.Write(d.scale(st, b))
	return st
}

func (d *Daemon) scale(st *LoopState, v int) int {
	rng := st.Cal.Range()
	return scaling.Scale(d.conf.ScalingMode(), v, st.HW.Min, st.HW.Max, rng.Min, rng.Max)
}

// refreshCalibration runs the calibrator on its own cadence until it locks.
func (d *Daemon) refreshCalibration(st *LoopState) {
	if st.Cal.Locked() {
		return
	}
	now := d.now()
	if now.Before(st.NextRefresh) {
		return
	}
	if st.Cal.Refresh() {
		st.recalibrated = true
	}
	st.NextRefresh = st.refresh.Next(now)
}

// tick performs one default mode iteration.
func (d *Daemon) tick(ctx context.Context, st *LoopState) {
	d.refreshCalibration(st)

	cur := d.conf.ScreenState()
	raw, ok := d.conf.RawBrightness()
	b, skip := readBrightness(raw, ok, st.Cal.Range(), st.Float)
	if skip {
		d.log.WithField("raw", raw).Trace("brightness is 0, keeping previous value")
		b = st.PrevBrightness
	}

	if st.recalibrated || screen.Changed(st.PrevState, cur, st.PrevBrightness, b) {
		st.recalibrated = false
		d.apply(ctx, st, screen.Input{
			Prev:          st.PrevState,
			Cur:           cur,
			Brightness:    b,
			RawBrightness: raw,
			IPS:           st.IPS,
			LuxAOD:        st.Lux,
			Panoramic: func() bool {
				return d.panoramic.PanoramicAOD(ctx)
			},
			LuxBrightness: d.conf.LuxAODBrightness,
			Scale: func(v int) int {
				return d.scale(st, v)
			},
		})
	}

	st.PrevBrightness = b
	st.PrevState = cur
}

func (d *Daemon) apply(ctx context.Context, st *LoopState, in screen.Input) {
	dec := screen.Decide(in)

	log := d.log.WithFields(logrus.Fields{
		"prev":       in.Prev.String(),
		"state":      in.Cur.String(),
		"brightness": in.Brightness,
		"reason":     dec.Reason,
	})

	if !dec.Write {
		log.WithField("value", st.Out.Last()).Debug("keeping last brightness")
		return
	}

	if dec.Settle {
		// Ignore cancellation here; the loop notices it on the next sleep.
		_ = d.sleep(ctx, SettleDelay)
	}

	log.WithField("value", dec.Value).Debug("brightness decided")
	st.Out.Write(dec.Value)
}
