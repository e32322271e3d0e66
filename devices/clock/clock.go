// Package clock implements a wall clock driven tick scheduler.
package clock

import (
	"time"

	"github.com/hexaflex/chip8/devices"
)

// Clock converts elapsed wall time into a number of due ticks at a fixed
// frequency. It has no goroutines of its own; the owner polls it with
// Advance from its main loop.
type Clock struct {
	period   time.Duration // Duration of a single tick.
	maxTicks int           // Largest tick count returned by one Advance call.
	last     time.Time     // Time of the last Advance call.
	elapsed  time.Duration // Time accumulated towards the next tick.
	total    uint64        // Ticks reported since the last reset.
	serial   int           // Device serial number.
}

var _ devices.Device = &Clock{}

// New creates a clock ticking at the given frequency in herz.
// A single Advance call reports at most maxTicks ticks; time beyond
// that is discarded so that a stalled caller does not cause a burst.
func New(serial, frequency, maxTicks int) *Clock {
	if frequency < 1 {
		frequency = 1
	}
	if maxTicks < 1 {
		maxTicks = 1
	}

	return &Clock{
		period:   time.Second / time.Duration(frequency),
		maxTicks: maxTicks,
		serial:   serial,
	}
}

func (c *Clock) ID() devices.ID {
	return devices.NewID(devices.Manufacturer, c.serial)
}

func (c *Clock) Startup() error {
	c.Reset(time.Now())
	return nil
}

func (c *Clock) Shutdown() error {
	return nil
}

// Period returns the duration of a single tick.
func (c *Clock) Period() time.Duration {
	return c.period
}

// Frequency returns the tick rate in herz.
func (c *Clock) Frequency() int {
	return int(time.Second / c.period)
}

// Total returns the number of ticks reported since the last reset.
func (c *Clock) Total() uint64 {
	return c.total
}

// Reset discards accumulated time and restarts counting at now.
func (c *Clock) Reset(now time.Time) {
	c.last = now
	c.elapsed = 0
	c.total = 0
}

// Advance accounts for the time passed since the previous call and
// returns the number of whole ticks that became due. The first call
// on a clock that was never reset only records now.
func (c *Clock) Advance(now time.Time) int {
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	if delta := now.Sub(c.last); delta > 0 {
		c.elapsed += delta
	}
	c.last = now

	ticks := int(c.elapsed / c.period)
	if ticks > c.maxTicks {
		ticks = c.maxTicks
		c.elapsed = 0
	} else {
		c.elapsed -= time.Duration(ticks) * c.period
	}

	c.total += uint64(ticks)
	return ticks
}
