// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sim implements the bouncing particle simulation: a fixed
// population of colored particles moving with constant integer velocities
// and reflecting off the field edges.
package sim

import (
	"github.com/emberlab/embers/internal/frame"
	"github.com/emberlab/embers/prng"
	"github.com/emberlab/embers/tempo"
)

// maxSpeed bounds the initial per-axis velocity of a particle in pixels per
// update, in either direction.
const maxSpeed = 2

// Particle is one animated pixel.
type Particle struct {
	X, Y   int
	VX, VY int
	Color  frame.Color
	Birth  tempo.Instant
}

// Field is a fixed population of particles bouncing inside a rectangle.  It
// is not safe for concurrent access.
type Field struct {
	width     int
	height    int
	particles []Particle
}

// randomColor draws a color with uniform channel intensities.
func randomColor(src *prng.Source) frame.Color {
	r := prng.Uniform(src, uint8(0), uint8(255))
	g := prng.Uniform(src, uint8(0), uint8(255))
	b := prng.Uniform(src, uint8(0), uint8(255))
	return frame.NewColor(r, g, b)
}

// NewField returns a field of numParticles particles with uniformly random
// positions, velocities, and colors drawn from the provided source.  All
// particles share one birth instant.
// Panics if either dimension is not positive.
func NewField(width, height, numParticles int, src *prng.Source) *Field {
	if width <= 0 || height <= 0 {
		panic("sim: invalid field dimensions")
	}

	birth := tempo.Now()
	particles := make([]Particle, numParticles)
	for i := range particles {
		particles[i] = Particle{
			X:     prng.Uniform(src, 0, width-1),
			Y:     prng.Uniform(src, 0, height-1),
			VX:    prng.Uniform(src, -maxSpeed, maxSpeed),
			VY:    prng.Uniform(src, -maxSpeed, maxSpeed),
			Color: randomColor(src),
			Birth: birth,
		}
	}
	return &Field{
		width:     width,
		height:    height,
		particles: particles,
	}
}

// Len returns the number of particles in the field.
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles returns the live particle slice.  Callers must not retain it
// across updates.
func (f *Field) Particles() []Particle {
	return f.particles
}

// bounce advances a coordinate by its velocity, clamping to the valid range
// [0, limit) and negating the velocity when an edge is struck.
func bounce(pos, vel, limit int) (int, int) {
	pos += vel
	switch {
	case pos < 0:
		pos = 0
		vel = -vel
	case pos >= limit:
		pos = limit - 1
		vel = -vel
	}
	return pos, vel
}

// Update advances every particle by one tick, bouncing off the field edges.
func (f *Field) Update() {
	for i := range f.particles {
		p := &f.particles[i]
		p.X, p.VX = bounce(p.X, p.VX, f.width)
		p.Y, p.VY = bounce(p.Y, p.VY, f.height)
	}
}

// Render clears the buffer to black and plots one pixel per particle.  The
// buffer dimensions need not match the field; out-of-range particles are
// clipped by the buffer.
func (f *Field) Render(buf *frame.Buffer) {
	buf.Fill(frame.Black)
	for i := range f.particles {
		p := &f.particles[i]
		buf.SetPixel(p.X, p.Y, p.Color)
	}
}
