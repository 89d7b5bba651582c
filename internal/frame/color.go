// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package frame

// Color is a packed 32-bit 0xAARRGGBB pixel value.  The alpha channel is
// carried but currently unused by the renderer.
type Color uint32

// Black is the default clear color.
const Black Color = 0

// NewColor packs the provided channel intensities into a color with a zero
// alpha channel.
func NewColor(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red channel intensity.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel intensity.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel intensity.
func (c Color) B() uint8 { return uint8(c) }
