// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sim

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/emberlab/embers/internal/frame"
	"github.com/emberlab/embers/prng"
)

// newTestField returns a deterministic field for tests.
func newTestField(width, height, numParticles int, seed uint64) *Field {
	return NewField(width, height, numParticles, prng.NewSeededSource(seed))
}

// TestNewFieldBounds ensures initial positions and velocities honor their
// documented ranges.
func TestNewFieldBounds(t *testing.T) {
	const width, height = 64, 48
	f := newTestField(width, height, 500, 1)

	for i, p := range f.Particles() {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			t.Fatalf("particle %d spawned out of bounds: %s", i,
				spew.Sdump(p))
		}
		if p.VX < -maxSpeed || p.VX > maxSpeed ||
			p.VY < -maxSpeed || p.VY > maxSpeed {
			t.Fatalf("particle %d spawned too fast: %s", i, spew.Sdump(p))
		}
		if p.Birth == 0 {
			t.Fatalf("particle %d has no birth instant", i)
		}
	}
}

// TestFieldDeterminism ensures two fields created with the same seed are
// identical.
func TestFieldDeterminism(t *testing.T) {
	a := newTestField(100, 80, 100, 42)
	b := newTestField(100, 80, 100, 42)

	// Birth instants are sampled from the live clock, so compare everything
	// else.
	pa, pb := a.Particles(), b.Particles()
	for i := range pa {
		pa[i].Birth = 0
		pb[i].Birth = 0
	}
	if !reflect.DeepEqual(pa, pb) {
		t.Fatalf("seeded fields diverged:\n%s\nvs\n%s", spew.Sdump(pa[:3]),
			spew.Sdump(pb[:3]))
	}
}

// TestUpdateBounce ensures particles reflect off every edge with clamping.
func TestUpdateBounce(t *testing.T) {
	tests := []struct {
		name     string // test description
		particle Particle
		wantX    int
		wantY    int
		wantVX   int
		wantVY   int
	}{{
		name:     "free flight",
		particle: Particle{X: 5, Y: 5, VX: 2, VY: -1},
		wantX:    7, wantY: 4, wantVX: 2, wantVY: -1,
	}, {
		name:     "left edge clamps and reflects",
		particle: Particle{X: 1, Y: 5, VX: -2, VY: 0},
		wantX:    0, wantY: 5, wantVX: 2, wantVY: 0,
	}, {
		name:     "right edge clamps and reflects",
		particle: Particle{X: 9, Y: 5, VX: 2, VY: 0},
		wantX:    9, wantY: 5, wantVX: -2, wantVY: 0,
	}, {
		name:     "top edge clamps and reflects",
		particle: Particle{X: 5, Y: 0, VX: 0, VY: -1},
		wantX:    5, wantY: 0, wantVX: 0, wantVY: 1,
	}, {
		name:     "bottom edge clamps and reflects",
		particle: Particle{X: 5, Y: 9, VX: 0, VY: 2},
		wantX:    5, wantY: 9, wantVX: 0, wantVY: -2,
	}, {
		name:     "corner reflects both axes",
		particle: Particle{X: 0, Y: 0, VX: -1, VY: -2},
		wantX:    0, wantY: 0, wantVX: 1, wantVY: 2,
	}}

	for _, test := range tests {
		f := &Field{width: 10, height: 10, particles: []Particle{test.particle}}
		f.Update()
		got := f.Particles()[0]
		if got.X != test.wantX || got.Y != test.wantY ||
			got.VX != test.wantVX || got.VY != test.wantVY {

			t.Fatalf("%q: unexpected state after update: %s", test.name,
				spew.Sdump(got))
		}
	}
}

// TestUpdateStaysInBounds ensures long runs never move a particle outside
// the field.
func TestUpdateStaysInBounds(t *testing.T) {
	const width, height = 17, 11
	f := newTestField(width, height, 50, 7)
	for tick := 0; tick < 10000; tick++ {
		f.Update()
		for i, p := range f.Particles() {
			if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
				t.Fatalf("tick %d: particle %d escaped: %s", tick, i,
					spew.Sdump(p))
			}
		}
	}
}

// TestRender ensures rendering clears the buffer and plots exactly the
// particle pixels.
func TestRender(t *testing.T) {
	f := &Field{width: 8, height: 8, particles: []Particle{
		{X: 1, Y: 2, Color: frame.NewColor(10, 20, 30)},
		{X: 7, Y: 7, Color: frame.NewColor(40, 50, 60)},
	}}

	buf := frame.NewBuffer(8, 8)
	buf.Fill(frame.NewColor(9, 9, 9)) // stale contents must be cleared
	f.Render(buf)

	var plotted int
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if buf.At(x, y) != frame.Black {
				plotted++
			}
		}
	}
	if plotted != 2 {
		t.Fatalf("unexpected number of lit pixels: got %d, want 2", plotted)
	}
	if got := buf.At(1, 2); got != frame.NewColor(10, 20, 30) {
		t.Fatalf("unexpected pixel at (1,2): %06x", got)
	}
	if got := buf.At(7, 7); got != frame.NewColor(40, 50, 60) {
		t.Fatalf("unexpected pixel at (7,7): %06x", got)
	}
}
