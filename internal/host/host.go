// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package host provides the presentation surface the demo loop drives: a
// small init/present/pump interface with a truecolor terminal implementation
// and a headless implementation for tests and timed runs.
package host

import "github.com/emberlab/embers/internal/frame"

// Host is a presentation surface for the animation loop.  The loop calls
// Init once to learn the pixel dimensions, PumpEvents every cycle to process
// input, and Present for each rendered frame.  Implementations are driven
// from a single goroutine.
type Host interface {
	// Init prepares the surface and returns its pixel dimensions.
	Init() (width, height int, err error)

	// Present blits the provided buffer to the surface.
	Present(buf *frame.Buffer) error

	// PumpEvents processes pending input events and reports whether the
	// loop should continue running.
	PumpEvents() bool

	// Close restores the surface to its pre-Init state.
	Close() error
}

// Headless is a host with no output surface.  It reports fixed dimensions,
// counts presented frames, and never requests shutdown on its own.  It is
// used for tests and timed benchmark runs.
type Headless struct {
	width  int
	height int
	frames uint64
}

// NewHeadless returns a headless host with the provided fixed dimensions.
func NewHeadless(width, height int) *Headless {
	return &Headless{width: width, height: height}
}

// Init returns the configured dimensions.
func (h *Headless) Init() (int, int, error) {
	return h.width, h.height, nil
}

// Present discards the frame and increments the frame counter.
func (h *Headless) Present(buf *frame.Buffer) error {
	h.frames++
	return nil
}

// PumpEvents always reports the loop should continue; headless runs are
// bounded by a duration flag or an interrupt instead.
func (h *Headless) PumpEvents() bool {
	return true
}

// Close is a no-op.
func (h *Headless) Close() error {
	return nil
}

// Frames returns the number of frames presented since creation.
func (h *Headless) Frames() uint64 {
	return h.frames
}
