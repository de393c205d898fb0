// Package clock turns the host's frame timestamps into per-frame deltas.
package clock

import "go.uber.org/zap"

// Clock converts monotonically increasing millisecond timestamps into deltas.
type Clock struct {
	last   float64
	primed bool
	log    *zap.Logger
}

// New returns a clock seeded with seed, the timestamp the first Tick is measured from
func New(seed float64, log *zap.Logger) *Clock {
	if log == nil {
		log = zap.NewNop()
	}
	return &Clock{last: seed, log: log}
}

// Tick records t and returns the milliseconds since the previous call.
// The first delta is logged and reported as 0. Later deltas never go below 0.
func (c *Clock) Tick(t float64) float64 {
	dt := t - c.last
	c.last = t

	if !c.primed {
		c.primed = true
		c.log.Debug("first frame delta clamped", zap.Float64("raw_ms", dt))
		return 0
	}
	if dt < 0 {
		c.log.Debug("negative frame delta clamped", zap.Float64("raw_ms", dt))
		return 0
	}
	return dt
}

// Last returns the most recent timestamp
func (c *Clock) Last() float64 {
	return c.last
}
