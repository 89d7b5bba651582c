// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tempo provides a small monotonic timekeeping layer for fixed-rate
// loops: opaque instants sampled from a monotonic clock, non-negative
// durations with explicit unit conversion, a split stopwatch, and a tick
// limiter that gates a loop to a target maximum rate.
//
// None of the types in this package are safe for concurrent access.  The
// intended model is a single goroutine driving a loop that queries the tick
// limiter each cycle and performs per-tick work when it reports due.
package tempo
