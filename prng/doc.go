// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package prng implements a fast seedable userspace pseudorandom number
// generator built on a ChaCha20 keystream.  A source seeded from OS entropy
// provides non-deterministic draws, while a fixed 64-bit seed yields fully
// reproducible sequences, which makes simulation runs repeatable.
//
// Individual [Source] values are not safe for concurrent access and should
// be confined to one goroutine.  The package-level functions draw from a
// shared default source guarded by a mutex and are safe for concurrent use.
//
// Bounded draws over a closed integer interval are provided by the generic
// [Bounded] distribution type and the one-shot [Uniform] function.  Narrow
// integer types are always drawn through the 64-bit engine and truncated
// back down, so no per-width distribution machinery is needed.
package prng
