// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// Integer is the constraint satisfied by the fixed-size integer types the
// bounded distributions can draw.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// limitsOf returns the minimum and maximum representable values of T, derived
// from its width and two's complement representation.
func limitsOf[T Integer]() (T, T) {
	var width uint
	for v := T(1); v != 0; v <<= 1 {
		width++
	}
	if ^T(0) > 0 { // unsigned
		return 0, ^T(0)
	}
	min := T(1) << (width - 1)
	return min, ^min
}

// uniform returns one value drawn from src uniformly over the closed
// interval [min, max].  The interval arithmetic is performed modulo 2^64,
// which handles negative bounds and narrow types uniformly: converting the
// final sum back to T truncates to the correct two's complement value.
func uniform[T Integer](src *Source, min, max T) T {
	span := uint64(max) - uint64(min)
	if span == ^uint64(0) {
		return T(src.Uint64())
	}
	return T(uint64(min) + src.Uint64N(span+1))
}

// Uniform returns one value drawn from the provided source uniformly over
// the closed interval [min, max].
// Panics if min > max.
func Uniform[T Integer](src *Source, min, max T) T {
	if min > max {
		panic("prng: invalid bounds to Uniform")
	}
	return uniform(src, min, max)
}

// Bounded is a uniform distribution over a closed integer interval
// [min, max], bound to a shared source.  The distribution itself carries no
// draw state: every call to Next consumes state from the underlying source,
// so draws from multiple distributions sharing one source interleave in call
// order.
type Bounded[T Integer] struct {
	src *Source
	min T
	max T
}

// NewBounded returns a distribution over [min, max] inclusive drawing from
// the provided source.
// Panics if min > max.
func NewBounded[T Integer](src *Source, min, max T) Bounded[T] {
	if min > max {
		panic("prng: invalid bounds to NewBounded")
	}
	return Bounded[T]{src: src, min: min, max: max}
}

// NewFullRange returns a distribution spanning the entire representable
// range of T.
func NewFullRange[T Integer](src *Source) Bounded[T] {
	min, max := limitsOf[T]()
	return Bounded[T]{src: src, min: min, max: max}
}

// Min returns the inclusive lower bound of the distribution.
func (b Bounded[T]) Min() T { return b.min }

// Max returns the inclusive upper bound of the distribution.
func (b Bounded[T]) Max() T { return b.max }

// Next draws one uniform value in [min, max] inclusive.
func (b Bounded[T]) Next() T {
	return uniform(b.src, b.min, b.max)
}

// NextAs draws one value from the provided distribution and converts the
// result to U with Go's normal integer conversion, so values outside the
// range of U wrap rather than saturate.
func NextAs[U, T Integer](b Bounded[T]) U {
	return U(b.Next())
}
