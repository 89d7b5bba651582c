// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/bits"

	"github.com/decred/dcrd/crypto/blake256"
	"golang.org/x/crypto/chacha20"
)

// maxStreamRead is the number of keystream bytes produced before the source
// deterministically rekeys itself from its own output.
const maxStreamRead = 4 * 1024 * 1024 // 4 MiB

// nonce implements a 12-byte little endian counter suitable for use as an
// incrementing ChaCha20 nonce.
type nonce [chacha20.NonceSize]byte

func (n *nonce) inc() {
	n0 := binary.LittleEndian.Uint32(n[0:4])
	n1 := binary.LittleEndian.Uint32(n[4:8])
	n2 := binary.LittleEndian.Uint32(n[8:12])

	var carry uint32
	n0, carry = bits.Add32(n0, 1, carry)
	n1, carry = bits.Add32(n1, 0, carry)
	n2, _ = bits.Add32(n2, 0, carry)

	binary.LittleEndian.PutUint32(n[0:4], n0)
	binary.LittleEndian.PutUint32(n[4:8], n1)
	binary.LittleEndian.PutUint32(n[8:12], n2)
}

// Source is a seedable pseudorandom number generator capable of producing
// random bytes and uniformly-distributed integers.  Source methods are not
// safe for concurrent access; see the package-level functions for a locked
// shared source.
type Source struct {
	key    [chacha20.KeySize]byte
	nonce  nonce
	cipher chacha20.Cipher
	read   int
	seeded bool
}

// NewSource returns a source seeded from OS entropy.  It only returns an
// error when the initial entropy read fails.
func NewSource() (*Source, error) {
	s := new(Source)
	if err := s.seedEntropy(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSeededSource returns a source deterministically keyed from the provided
// 64-bit seed.  Two sources created with the same seed produce identical
// draw sequences.
func NewSeededSource(seed uint64) *Source {
	s := new(Source)
	s.Seed(seed)
	return s
}

// Seed rekeys the source deterministically from the provided 64-bit seed by
// hashing its little endian encoding with BLAKE-256 into a ChaCha20 key.
// All draw state is discarded, so every sequence of draws after seeding with
// the same value is identical.
func (s *Source) Seed(seed uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	s.key = blake256.Sum256(buf[:])
	s.nonce = nonce{}
	s.rekey()
	s.seeded = true
}

// seedEntropy keys the source from the OS entropy pool.
func (s *Source) seedEntropy() error {
	if _, err := cryptorand.Read(s.key[:]); err != nil {
		return err
	}
	s.nonce = nonce{}
	s.rekey()
	s.seeded = true
	return nil
}

// rekey installs a fresh cipher from the current key and advances the nonce
// for the next rekey.  The cipher constructor never errors with correct key
// and nonce sizes.
func (s *Source) rekey() {
	cipher, _ := chacha20.NewUnauthenticatedCipher(s.key[:], s.nonce[:])
	s.cipher = *cipher
	s.nonce.inc()
	s.read = 0
}

// advance replaces the key with the next 32 bytes of keystream and rekeys.
// Unlike seeding, advancing preserves determinism: a seeded source that
// exhausts its stream budget continues along a reproducible sequence.
func (s *Source) advance() {
	for i := range s.key {
		s.key[i] = 0
	}
	s.cipher.XORKeyStream(s.key[:], s.key[:])
	s.rekey()
}

// Read fills b with pseudorandom bytes by XORing the keystream over the
// existing contents.  A zero-value source keys itself from OS entropy on
// first use and panics only if that initial read fails.  Read never returns
// an error.
func (s *Source) Read(b []byte) (n int, err error) {
	if !s.seeded {
		if err := s.seedEntropy(); err != nil {
			panic(err)
		}
	}

	for s.read+len(b) > maxStreamRead {
		l := maxStreamRead - s.read
		s.cipher.XORKeyStream(b[:l], b[:l])
		s.advance()
		n += l
		b = b[l:]
	}
	s.cipher.XORKeyStream(b, b)
	s.read += len(b)
	n += len(b)
	return n, nil
}
