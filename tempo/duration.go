// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tempo

import "time"

// Duration is a non-negative elapsed-time magnitude in nanoseconds.  Being a
// named unsigned integer, durations compare directly with the standard
// operators.
type Duration uint64

// Between returns the absolute difference between two instants.  The result
// is symmetric in its arguments, so callers cannot distinguish which instant
// came first.  A clock regression between two samples therefore shows up as
// a small positive duration rather than an error.
func Between(a, b Instant) Duration {
	if a > b {
		return Duration(a - b)
	}
	return Duration(b - a)
}

// Since returns the elapsed duration between the provided instant and now.
func Since(start Instant) Duration {
	return Between(start, Now())
}

// DurationOf returns a duration from a value expressed in the provided unit.
func DurationOf(v uint64, unit Unit) Duration {
	return Duration(ToNanoseconds(v, unit))
}

// Nanoseconds returns the raw nanosecond count of the duration.
func (d Duration) Nanoseconds() uint64 {
	return uint64(d)
}

// Value returns the duration converted to the provided unit, truncating
// toward coarser units.
func (d Duration) Value(unit Unit) uint64 {
	return FromNanoseconds(uint64(d), unit)
}

// String returns the duration formatted with the standard library rules,
// e.g. "33.3ms".
func (d Duration) String() string {
	return time.Duration(d).String()
}
