// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"encoding/binary"
	"math/bits"
	"time"
)

// Uint32 returns a uniform random uint32.
func (s *Source) Uint32() uint32 {
	b := make([]byte, 4)
	s.Read(b)
	return binary.LittleEndian.Uint32(b)
}

// Uint64 returns a uniform random uint64.
func (s *Source) Uint64() uint64 {
	b := make([]byte, 8)
	s.Read(b)
	return binary.LittleEndian.Uint64(b)
}

// Uint64N returns a random uint64 in range [0,n) without modulo bias.
// Panics if n is zero.
func (s *Source) Uint64N(n uint64) uint64 {
	if n == 0 {
		panic("prng: invalid argument to Uint64N")
	}
	if n&(n-1) == 0 { // n is power of two, can mask
		return s.Uint64() & (n - 1)
	}

	// Multiply-shift reduction with rejection of the biased low region.
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
	hi, lo := bits.Mul64(s.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(s.Uint64(), n)
		}
	}
	return hi
}

// Uint32N returns a random uint32 in range [0,n) without modulo bias.
// Panics if n is zero.
func (s *Source) Uint32N(n uint32) uint32 {
	return uint32(s.Uint64N(uint64(n)))
}

// IntN returns, as an int, a random non-negative integer in [0,n) without
// modulo bias.
// Panics if n <= 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		panic("prng: invalid argument to IntN")
	}
	return int(s.Uint64N(uint64(n)))
}

// Duration returns a random duration in [0,n) without modulo bias.
// Panics if n <= 0.
func (s *Source) Duration(n time.Duration) time.Duration {
	if n <= 0 {
		panic("prng: invalid argument to Duration")
	}
	return time.Duration(s.Uint64N(uint64(n)))
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j via a Fisher-Yates shuffle.
// Panics if n < 0.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("prng: invalid argument to Shuffle")
	}
	for i := n - 1; i > 0; i-- {
		j := int(s.Uint64N(uint64(i + 1)))
		swap(i, j)
	}
}
