package runner

import "time"

// Clock paces steps for drivers that are called more often than the step
// period, such as a 60 TPS game loop.
type Clock struct {
	period      time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewClock returns a clock that is due once every period
func NewClock(period time.Duration) *Clock {
	return &Clock{period: period}
}

// Due reports whether a step should run at now. Time missed beyond one
// period is dropped rather than replayed as a burst of steps.
func (c *Clock) Due(now time.Time) bool {
	if c.last.IsZero() {
		c.last = now
		return false
	}
	c.accumulator += now.Sub(c.last)
	c.last = now
	if c.accumulator < c.period {
		return false
	}
	c.accumulator = (c.accumulator - c.period) % c.period
	return true
}
