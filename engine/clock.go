package engine

import (
	"time"

	"github.com/lixenwraith/hexfire/parameter"
)

// Clock turns wall-clock readings into clamped frame deltas in seconds
// A stall (debugger, suspended terminal) yields one maxDelta step, never a jump
type Clock struct {
	tp       TimeProvider
	maxDelta float64
	last     time.Time
	started  bool
	frame    uint64
}

// NewClock creates a clock; maxDelta <= 0 selects the default clamp
func NewClock(tp TimeProvider, maxDelta float64) *Clock {
	if maxDelta <= 0 {
		maxDelta = parameter.MaxDeltaSeconds
	}
	return &Clock{tp: tp, maxDelta: maxDelta}
}

// Tick returns the seconds since the previous tick, clamped to [0, maxDelta]
// The first tick after creation or Reset returns 0
func (c *Clock) Tick() float64 {
	now := c.tp.Now()
	c.frame++
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now
	switch {
	case dt < 0:
		return 0
	case dt > c.maxDelta:
		return c.maxDelta
	}
	return dt
}

// Reset forgets the previous reading, used after a pause or scene switch
func (c *Clock) Reset() {
	c.started = false
}

// Frame returns the number of ticks taken
func (c *Clock) Frame() uint64 {
	return c.frame
}

// MaxDelta returns the clamp in seconds
func (c *Clock) MaxDelta() float64 {
	return c.maxDelta
}
