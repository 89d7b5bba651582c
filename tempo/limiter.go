// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tempo

// TickLimiter gates a loop to a target maximum tick rate by requiring a
// minimum interval to elapse between accepted ticks.
//
// The limiter does not enforce the tick protocol.  Callers must invoke
// [TickLimiter.Tick] exactly once per accepted tick: skipping it leaves the
// limiter permanently due, while calling it without the gate having passed
// silently restarts the cadence.
//
// NewTickLimiter must be used to create a usable limiter since the zero
// value of this struct is not valid.
type TickLimiter struct {
	// nowFn is set at initialization time and never modified after.  Tests
	// override it to drive the limiter with a deterministic clock.
	nowFn func() Instant

	minInterval Duration
	lastTick    Instant
}

// NewTickLimiter returns a tick limiter with the provided target rate in
// ticks per second.  The minimum interval between accepted ticks is one
// second divided by the rate using integer division, so rates that do not
// evenly divide 1e9 nanoseconds truncate and bias the effective rate
// slightly high.
//
// The last accepted tick starts at [Epoch], which guarantees the very first
// call to ShouldTick reports true.
//
// Panics if ticksPerSecond is zero.
func NewTickLimiter(ticksPerSecond uint64) *TickLimiter {
	if ticksPerSecond == 0 {
		panic("tempo: invalid tick rate 0")
	}
	return &TickLimiter{
		nowFn:       Now,
		minInterval: Duration(nsPerSecond / ticksPerSecond),
		lastTick:    Epoch,
	}
}

// TargetInterval returns the minimum duration the limiter requires between
// accepted ticks.
func (l *TickLimiter) TargetInterval() Duration {
	return l.minInterval
}

// sinceLastTick returns the elapsed duration since the last accepted tick
// according to the limiter clock.
func (l *TickLimiter) sinceLastTick() Duration {
	return Between(l.lastTick, l.nowFn())
}

// ShouldTick reports whether the minimum interval has elapsed since the last
// accepted tick.  It is a pure query with no side effects.
func (l *TickLimiter) ShouldTick() bool {
	return l.sinceLastTick() >= l.minInterval
}

// SinceLastTick returns the elapsed duration since the last accepted tick
// regardless of whether the next tick is currently due.  Callers typically
// pass the result into per-tick logic as the frame delta.
func (l *TickLimiter) SinceLastTick() Duration {
	return l.sinceLastTick()
}

// TickMissed reports whether at least two full target intervals have elapsed
// since the last accepted tick, meaning the caller fell behind schedule by a
// whole tick or more.
func (l *TickLimiter) TickMissed() bool {
	return l.sinceLastTick() >= 2*l.minInterval
}

// Tick records the current instant as the last accepted tick, restarting the
// gating interval.
func (l *TickLimiter) Tick() {
	l.lastTick = l.nowFn()
}
