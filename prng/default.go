// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"io"
	"sync"
	"time"
)

// defaultSource is the process-wide shared source.  All package-level draw
// functions serialize access through its mutex.
var defaultSource struct {
	mu  sync.Mutex
	src *Source
}

func init() {
	src, err := NewSource()
	if err != nil {
		panic(err)
	}
	defaultSource.src = src
}

// lockedReader adapts the default source into an io.Reader that acquires the
// lock per read.
type lockedReader struct{}

func (lockedReader) Read(b []byte) (int, error) {
	defaultSource.mu.Lock()
	defer defaultSource.mu.Unlock()

	return defaultSource.src.Read(b)
}

// Reader returns the shared default source as an io.Reader that is safe for
// concurrent access.
func Reader() io.Reader {
	return lockedReader{}
}

// SetFixedSeed reseeds the shared default source deterministically.  The
// reseed is global and immediate: it affects every subsequent draw made
// through the package-level functions.
func SetFixedSeed(seed uint64) {
	defaultSource.mu.Lock()
	defer defaultSource.mu.Unlock()

	defaultSource.src.Seed(seed)
}

// Read fills b with random bytes obtained from the default source.
func Read(b []byte) {
	defaultSource.mu.Lock()
	defer defaultSource.mu.Unlock()

	defaultSource.src.Read(b)
}

// Uint32 returns a uniform random uint32 from the default source.
func Uint32() uint32 {
	defaultSource.mu.Lock()
	defer defaultSource.mu.Unlock()

	return defaultSource.src.Uint32()
}

// Uint64 returns a uniform random uint64 from the default source.
func Uint64() uint64 {
	defaultSource.mu.Lock()
	defer defaultSource.mu.Unlock()

	return defaultSource.src.Uint64()
}

// Uint64N returns a random uint64 in range [0,n) without modulo bias from
// the default source.
// Panics if n is zero.
func Uint64N(n uint64) uint64 {
	defaultSource.mu.Lock()
	defer defaultSource.mu.Unlock()

	return defaultSource.src.Uint64N(n)
}

// IntN returns, as an int, a random non-negative integer in [0,n) without
// modulo bias from the default source.
// Panics if n <= 0.
func IntN(n int) int {
	defaultSource.mu.Lock()
	defer defaultSource.mu.Unlock()

	return defaultSource.src.IntN(n)
}

// Duration returns a random duration in [0,n) from the default source.
// Panics if n <= 0.
func Duration(n time.Duration) time.Duration {
	defaultSource.mu.Lock()
	defer defaultSource.mu.Unlock()

	return defaultSource.src.Duration(n)
}

// Shuffle randomizes the order of n elements using the default source by
// swapping the elements at indexes i and j.
// Panics if n < 0.
func Shuffle(n int, swap func(i, j int)) {
	defaultSource.mu.Lock()
	defer defaultSource.mu.Unlock()

	defaultSource.src.Shuffle(n, swap)
}

// Random returns one value drawn from the default source uniformly over the
// closed interval [min, max].
// Panics if min > max.
func Random[T Integer](min, max T) T {
	if min > max {
		panic("prng: invalid bounds to Random")
	}
	defaultSource.mu.Lock()
	defer defaultSource.mu.Unlock()

	return uniform(defaultSource.src, min, max)
}
