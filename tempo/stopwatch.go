// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tempo

// Stopwatch measures elapsed time from a fixed starting instant.
type Stopwatch struct {
	start Instant
}

// StartStopwatch returns a stopwatch running from the current instant.
func StartStopwatch() Stopwatch {
	return Stopwatch{start: Now()}
}

// Split returns the elapsed duration since the stopwatch was started.  It
// does not reset the start instant, so successive calls return growing
// values.
func (s Stopwatch) Split() Duration {
	return Since(s.start)
}
