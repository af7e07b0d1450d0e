package core

import "time"

// Clock is a monotonic millisecond time source. Timestamps are offsets from
// the clock's origin, so the simulation never sees wall-clock jumps.
type Clock interface {
	Now() time.Duration
}

// MonotonicClock reads the process monotonic clock relative to its creation.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock creates a clock whose origin is the current instant.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created, truncated to milliseconds.
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start).Truncate(time.Millisecond)
}

// ManualClock is a clock advanced explicitly. Used by tests and replays.
type ManualClock struct {
	now time.Duration
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

// Set moves the clock to an absolute offset.
func (c *ManualClock) Set(t time.Duration) {
	c.now = t
}
