// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package frame

import "testing"

// TestColorPacking ensures channel intensities round-trip through the packed
// representation.
func TestColorPacking(t *testing.T) {
	tests := []struct {
		name    string // test description
		r, g, b uint8  // input channels
		want    Color  // expected packed value
	}{{
		name: "black",
		want: 0x000000,
	}, {
		name: "white",
		r:    0xff, g: 0xff, b: 0xff,
		want: 0xffffff,
	}, {
		name: "channel order",
		r:    0x12, g: 0x34, b: 0x56,
		want: 0x123456,
	}}

	for _, test := range tests {
		c := NewColor(test.r, test.g, test.b)
		if c != test.want {
			t.Fatalf("%q: unexpected packed value: got %06x, want %06x",
				test.name, uint32(c), uint32(test.want))
		}
		if c.R() != test.r || c.G() != test.g || c.B() != test.b {
			t.Fatalf("%q: unexpected channels: got (%d,%d,%d), want (%d,%d,%d)",
				test.name, c.R(), c.G(), c.B(), test.r, test.g, test.b)
		}
	}
}

// TestBufferBounds ensures out-of-range plots are silently dropped and
// in-range plots land on the expected pixel.
func TestBufferBounds(t *testing.T) {
	buf := NewBuffer(4, 3)
	red := NewColor(0xff, 0, 0)

	// None of these may panic or write anything.
	buf.SetPixel(-1, 0, red)
	buf.SetPixel(0, -1, red)
	buf.SetPixel(4, 0, red)
	buf.SetPixel(0, 3, red)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if buf.At(x, y) != Black {
				t.Fatalf("out-of-range plot leaked to (%d,%d)", x, y)
			}
		}
	}

	buf.SetPixel(3, 2, red)
	if got := buf.At(3, 2); got != red {
		t.Fatalf("unexpected pixel: got %06x, want %06x", got, red)
	}
	if buf.At(2, 2) != Black || buf.At(3, 1) != Black {
		t.Fatal("plot spilled into neighboring pixels")
	}
}

// TestBufferFill ensures filling covers every pixel.
func TestBufferFill(t *testing.T) {
	buf := NewBuffer(8, 8)
	c := NewColor(1, 2, 3)
	buf.Fill(c)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if buf.At(x, y) != c {
				t.Fatalf("pixel (%d,%d) not filled", x, y)
			}
		}
	}
}

// TestBufferInvalidDims ensures non-positive dimensions panic.
func TestBufferInvalidDims(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("invalid dimensions did not panic")
		}
	}()
	NewBuffer(0, 10)
}
