package sim

import "time"

// DefaultMaxDelta caps a single frame delta. A host that stalls for a
// second must not feed the simulation a one-second step.
const DefaultMaxDelta = 0.25

// Clock turns wall-clock instants into bounded frame deltas. The
// presentation loop calls Delta once per frame at whatever cadence the
// host refreshes.
type Clock struct {
	last     time.Time
	started  bool
	MaxDelta float64
}

func NewClock() *Clock {
	return &Clock{MaxDelta: DefaultMaxDelta}
}

// Delta returns the elapsed seconds since the previous call, clamped
// to MaxDelta. The first call returns zero.
func (c *Clock) Delta(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	d := now.Sub(c.last).Seconds()
	c.last = now
	if d < 0 {
		return 0
	}
	if d > c.MaxDelta {
		return c.MaxDelta
	}
	return d
}

// Reset forgets the previous instant, so the next Delta returns zero.
// Used when the presentation loop resumes after a pause.
func (c *Clock) Reset() { c.started = false }
