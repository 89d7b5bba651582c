// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tempo

import "testing"

// TestToNanoseconds ensures converting values from each supported unit to
// nanoseconds multiplies by the expected scale.
func TestToNanoseconds(t *testing.T) {
	tests := []struct {
		name string // test description
		v    uint64 // input value
		unit Unit   // input unit
		want uint64 // expected nanoseconds
	}{{
		name: "nanoseconds pass through",
		v:    1234,
		unit: Nanoseconds,
		want: 1234,
	}, {
		name: "one microsecond",
		v:    1,
		unit: Microseconds,
		want: 1000,
	}, {
		name: "one millisecond",
		v:    1,
		unit: Milliseconds,
		want: 1000000,
	}, {
		name: "one second",
		v:    1,
		unit: Seconds,
		want: 1000000000,
	}, {
		name: "one minute",
		v:    1,
		unit: Minutes,
		want: 60000000000,
	}, {
		name: "one hour",
		v:    1,
		unit: Hours,
		want: 3600000000000,
	}, {
		name: "thirty ticks per second interval",
		v:    1,
		unit: Seconds,
		want: 1e9,
	}}

	for _, test := range tests {
		got := ToNanoseconds(test.v, test.unit)
		if got != test.want {
			t.Fatalf("%q: unexpected result: got %v, want %v", test.name, got,
				test.want)
		}
	}
}

// TestFromNanoseconds ensures converting nanosecond counts to each supported
// unit truncates toward the coarser scale.
func TestFromNanoseconds(t *testing.T) {
	tests := []struct {
		name string // test description
		ns   uint64 // input nanoseconds
		unit Unit   // target unit
		want uint64 // expected converted value
	}{{
		name: "nanoseconds pass through",
		ns:   987654321,
		unit: Nanoseconds,
		want: 987654321,
	}, {
		name: "truncating microseconds",
		ns:   1999,
		unit: Microseconds,
		want: 1,
	}, {
		name: "truncating milliseconds",
		ns:   34999999,
		unit: Milliseconds,
		want: 34,
	}, {
		name: "truncating seconds",
		ns:   2999999999,
		unit: Seconds,
		want: 2,
	}, {
		name: "truncating minutes",
		ns:   119999999999,
		unit: Minutes,
		want: 1,
	}, {
		name: "truncating hours",
		ns:   7199999999999,
		unit: Hours,
		want: 1,
	}}

	for _, test := range tests {
		got := FromNanoseconds(test.ns, test.unit)
		if got != test.want {
			t.Fatalf("%q: unexpected result: got %v, want %v", test.name, got,
				test.want)
		}
	}
}

// TestFromSeconds ensures converting second counts multiplies toward finer
// units and truncates toward coarser ones.
func TestFromSeconds(t *testing.T) {
	tests := []struct {
		name string // test description
		s    uint64 // input seconds
		unit Unit   // target unit
		want uint64 // expected converted value
	}{{
		name: "seconds to nanoseconds",
		s:    2,
		unit: Nanoseconds,
		want: 2000000000,
	}, {
		name: "seconds to microseconds",
		s:    2,
		unit: Microseconds,
		want: 2000000,
	}, {
		name: "seconds to milliseconds",
		s:    2,
		unit: Milliseconds,
		want: 2000,
	}, {
		name: "seconds pass through",
		s:    2,
		unit: Seconds,
		want: 2,
	}, {
		name: "seconds to minutes truncates",
		s:    119,
		unit: Minutes,
		want: 1,
	}, {
		name: "seconds to hours truncates",
		s:    7199,
		unit: Hours,
		want: 1,
	}}

	for _, test := range tests {
		got := FromSeconds(test.s, test.unit)
		if got != test.want {
			t.Fatalf("%q: unexpected result: got %v, want %v", test.name, got,
				test.want)
		}
	}
}

// TestUnitRoundTrip ensures converting a duration to each supported unit and
// back to nanoseconds loses at most the truncation error of that unit.
func TestUnitRoundTrip(t *testing.T) {
	const ns = uint64(3734999999999) // 1h2m14.999999999s

	unitScale := map[Unit]uint64{
		Nanoseconds:  1,
		Microseconds: 1000,
		Milliseconds: 1000000,
		Seconds:      1000000000,
		Minutes:      60000000000,
		Hours:        3600000000000,
	}
	for unit, scale := range unitScale {
		d := DurationOf(ns, Nanoseconds)
		rt := DurationOf(d.Value(unit), unit).Nanoseconds()
		if want := ns - ns%scale; rt != want {
			t.Fatalf("%v: unexpected round trip: got %v, want %v", unit, rt,
				want)
		}
	}
}

// TestUnsupportedUnitPanics ensures the conversion helpers panic when given
// an out-of-range unit value.
func TestUnsupportedUnitPanics(t *testing.T) {
	const badUnit = Unit(1000)

	tests := []struct {
		name string // test description
		fn   func() // conversion that must panic
	}{{
		name: "ToNanoseconds",
		fn:   func() { ToNanoseconds(1, badUnit) },
	}, {
		name: "FromNanoseconds",
		fn:   func() { FromNanoseconds(1, badUnit) },
	}, {
		name: "FromSeconds",
		fn:   func() { FromSeconds(1, badUnit) },
	}}

	for _, test := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%q: conversion did not panic", test.name)
				}
			}()
			test.fn()
		}()
	}
}
