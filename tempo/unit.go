// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tempo

// Unit is an enumerated time scale used to convert values at the API
// boundary.  All internal storage is nanoseconds.
type Unit int

// Supported conversion units, ordered from finest to coarsest.
const (
	Nanoseconds Unit = iota
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
)

// Nanosecond multiples of each supported unit.
const (
	nsPerMicrosecond = 1000
	nsPerMillisecond = 1000 * nsPerMicrosecond
	nsPerSecond      = 1000 * nsPerMillisecond
	nsPerMinute      = 60 * nsPerSecond
	nsPerHour        = 60 * nsPerMinute
)

// String returns the unit as a human-readable name.
func (u Unit) String() string {
	switch u {
	case Nanoseconds:
		return "nanoseconds"
	case Microseconds:
		return "microseconds"
	case Milliseconds:
		return "milliseconds"
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	}
	return "unknown unit"
}

// ToNanoseconds converts a value expressed in the provided unit to
// nanoseconds.  The conversion multiplies toward the finer scale with no
// overflow checking.
//
// Unsupported units are a programmer error and panic.
func ToNanoseconds(v uint64, unit Unit) uint64 {
	switch unit {
	case Nanoseconds:
		return v
	case Microseconds:
		return v * nsPerMicrosecond
	case Milliseconds:
		return v * nsPerMillisecond
	case Seconds:
		return v * nsPerSecond
	case Minutes:
		return v * nsPerMinute
	case Hours:
		return v * nsPerHour
	}
	panic("tempo: unsupported time unit")
}

// FromNanoseconds converts a nanosecond count to the provided unit.  The
// conversion truncates toward the coarser scale rather than rounding.
//
// Unsupported units are a programmer error and panic.
func FromNanoseconds(ns uint64, unit Unit) uint64 {
	switch unit {
	case Nanoseconds:
		return ns
	case Microseconds:
		return ns / nsPerMicrosecond
	case Milliseconds:
		return ns / nsPerMillisecond
	case Seconds:
		return ns / nsPerSecond
	case Minutes:
		return ns / nsPerMinute
	case Hours:
		return ns / nsPerHour
	}
	panic("tempo: unsupported time unit")
}

// FromSeconds converts a second count to the provided unit, multiplying
// toward finer units and truncating toward coarser ones.
//
// Unsupported units are a programmer error and panic.
func FromSeconds(seconds uint64, unit Unit) uint64 {
	switch unit {
	case Nanoseconds:
		return seconds * nsPerSecond
	case Microseconds:
		return seconds * (nsPerSecond / nsPerMicrosecond)
	case Milliseconds:
		return seconds * (nsPerSecond / nsPerMillisecond)
	case Seconds:
		return seconds
	case Minutes:
		return seconds / 60
	case Hours:
		return seconds / 3600
	}
	panic("tempo: unsupported time unit")
}
