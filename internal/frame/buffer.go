// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package frame provides the off-screen pixel buffer the simulation renders
// into and the presentation host blits from.
package frame

// Buffer is a fixed-size off-screen pixel buffer in row-major order.  It is
// not safe for concurrent access.
type Buffer struct {
	width  int
	height int
	pix    []Color
}

// NewBuffer returns a buffer with the provided dimensions cleared to black.
// Panics if either dimension is not positive.
func NewBuffer(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		panic("frame: invalid buffer dimensions")
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// SetPixel writes a single pixel.  Out-of-range coordinates are a silent
// no-op so callers may plot without clipping first.
func (b *Buffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = c
}

// At returns the pixel at the provided coordinates.  Out-of-range
// coordinates return black.
func (b *Buffer) At(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Black
	}
	return b.pix[y*b.width+x]
}

// Fill sets every pixel to the provided color.
func (b *Buffer) Fill(c Color) {
	for i := range b.pix {
		b.pix[i] = c
	}
}
