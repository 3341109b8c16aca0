package calibration

import (
	"github.com/sirupsen/logrus"
)

// Calibrator owns the logical range. It is not safe for concurrent use.
type Calibrator struct {
	store  Store
	log    logrus.FieldLogger
	rng    Range
	source Source
	locked bool
}

// New returns a Calibrator initialized from the persisted pair, or from
// the fallback constants when that pair is missing or invalid.
func New(store Store, log logrus.FieldLogger) *Calibrator {
	c := &Calibrator{
		store:  store,
		log:    log,
		rng:    Fallback(),
		source: SourceFallback,
	}

	if r, ok := c.persisted(); ok && r.Valid() {
		c.rng = r
		c.source = SourcePersisted
	}

	c.log.WithFields(logrus.Fields{
		"min":    c.rng.Min,
		"max":    c.rng.Max,
		"source": c.source,
	}).Debug("logical range initialized")

	return c
}

// Range returns the current logical range.
func (c *Calibrator) Range() Range {
	return c.rng
}

// Source returns where the current range came from.
func (c *Calibrator) Source() Source {
	return c.source
}

// Locked reports whether the live pair has been adopted.
func (c *Calibrator) Locked() bool {
	return c.locked
}

// Refresh re-reads both sources. It returns true when the range changed.
// Once locked, Refresh does nothing.
func (c *Calibrator) Refresh() bool {
	if c.locked {
		return false
	}

	before := c.rng
	pmin, pminOK := c.store.PersistedMin()
	pmax, pmaxOK := c.store.PersistedMax()
	lmin, lminOK := c.store.LiveMin()
	lmax, lmaxOK := c.store.LiveMax()

	live := Range{Min: lmin, Max: lmax}
	persisted := Range{Min: pmin, Max: pmax}

	switch {
	case lminOK && lmaxOK && live.Valid():
		c.rng = live
		c.source = SourceLive
		c.writeThrough(live, pmin, pminOK, pmax, pmaxOK)
		c.locked = true
		c.log.WithFields(logrus.Fields{
			"min": live.Min,
			"max": live.Max,
		}).Info("logical range locked to live signal")
	case pminOK && pmaxOK && persisted.Valid():
		c.rng = persisted
		c.source = SourcePersisted
	default:
		c.rng = Fallback()
		c.source = SourceFallback
	}

	if !c.rng.Valid() {
		c.rng = Fallback()
		c.source = SourceFallback
	}

	if c.rng != before {
		c.log.WithFields(logrus.Fields{
			"from":   before.String(),
			"to":     c.rng.String(),
			"source": c.source,
			"locked": c.locked,
		}).Debug("logical range changed")
		return true
	}
	return false
}

// writeThrough corrects persisted values that differ from the live pair.
func (c *Calibrator) writeThrough(live Range, pmin int, pminOK bool, pmax int, pmaxOK bool) {
	if !pminOK || pmin != live.Min {
		if err := c.store.SetPersistedMin(live.Min); err != nil {
			c.log.WithError(err).Error("failed to persist logical range minimum")
		}
	}
	if !pmaxOK || pmax != live.Max {
		if err := c.store.SetPersistedMax(live.Max); err != nil {
			c.log.WithError(err).Error("failed to persist logical range maximum")
		}
	}
}

func (c *Calibrator) persisted() (Range, bool) {
	lo, loOK := c.store.PersistedMin()
	hi, hiOK := c.store.PersistedMax()
	return Range{Min: lo, Max: hi}, loOK && hiOK
}
