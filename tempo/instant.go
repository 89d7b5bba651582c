// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tempo

import "time"

// clockBase anchors the monotonic clock to the wall clock.  Every instant is
// the wall-clock reading captured at package init plus the monotonic time
// elapsed since, so successive samples within a process never decrease even
// when the system wall clock steps.
var clockBase = time.Now()

// Instant is an opaque count of nanoseconds since the Unix epoch derived
// from a monotonic clock sample.  Instants are only meaningful for
// differencing via [Between] and [Since]; the absolute value carries no
// wall-clock guarantee.
type Instant uint64

// Epoch is the zero instant.  It is far enough in the past that the elapsed
// time from it to any live sample exceeds any realistic tick interval, which
// [NewTickLimiter] relies on to make the first tick immediately due.
const Epoch Instant = 0

// Now samples the monotonic clock and returns the current instant.
func Now() Instant {
	return Instant(uint64(clockBase.UnixNano()) + uint64(time.Since(clockBase)))
}

// InstantOf returns a synthetic instant from a value expressed in the
// provided unit.  It is primarily useful for constructing sentinel instants
// in tests and for the zero "never ticked" instant.
func InstantOf(v uint64, unit Unit) Instant {
	return Instant(ToNanoseconds(v, unit))
}

// Nanoseconds returns the raw nanosecond count of the instant.
func (i Instant) Nanoseconds() uint64 {
	return uint64(i)
}

// Value returns the instant converted to the provided unit, truncating
// toward coarser units.
func (i Instant) Value(unit Unit) uint64 {
	return FromNanoseconds(uint64(i), unit)
}
