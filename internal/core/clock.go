package core

import (
	"sync/atomic"
	"time"
)

// Clock supplies the millisecond tick count games use for wall-clock throttling.
// Values are monotonic and start near zero.
type Clock interface {
	Millis() int64
}

// WallClock measures real elapsed time since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock starts a wall clock at zero.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Millis returns milliseconds elapsed since the clock was created.
func (c *WallClock) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}

// TickClock derives time from a simulation frame counter, so a seeded game
// replays identically regardless of how fast frames are actually delivered.
type TickClock struct {
	tickRate int
	ticks    int64
}

// NewTickClock creates a clock that advances 1000/tickRate ms per Advance.
func NewTickClock(tickRate int) *TickClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickClock{tickRate: tickRate}
}

// Advance moves the clock forward by one tick.
func (c *TickClock) Advance() {
	c.ticks++
}

// Millis returns the elapsed simulated time.
func (c *TickClock) Millis() int64 {
	return c.ticks * 1000 / int64(c.tickRate)
}

// ManualClock is set explicitly. It is safe to read from another goroutine.
type ManualClock struct {
	ms atomic.Int64
}

// Set moves the clock to ms.
func (c *ManualClock) Set(ms int64) {
	c.ms.Store(ms)
}

// Add moves the clock forward by d.
func (c *ManualClock) Add(d time.Duration) {
	c.ms.Add(d.Milliseconds())
}

// Millis returns the current value.
func (c *ManualClock) Millis() int64 {
	return c.ms.Load()
}
