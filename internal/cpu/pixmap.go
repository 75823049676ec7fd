// Package cpu is a tiled CPU renderer for 2D vector graphics.
//
// A RenderContext records fill and stroke commands against a fixed-size
// surface, bins them into 64x64 tiles on Flush, and rasterizes every tile
// into a Pixmap on RenderToPixmap. Pixels are premultiplied 8-bit RGBA.
package cpu

import (
	"fmt"

	"honnef.co/go/safeish"
)

// PremulRGBA8 is a premultiplied 8-bit RGBA pixel.
type PremulRGBA8 struct {
	R, G, B, A uint8
}

// Pixmap is a buffer of premultiplied RGBA8 pixels, stored row-major
// without padding.
type Pixmap struct {
	width  uint16
	height uint16
	data   []PremulRGBA8
}

// NewPixmap creates a transparent pixmap.
func NewPixmap(width, height uint16) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]PremulRGBA8, int(width)*int(height)),
	}
}

// PixmapFromBytes copies premultiplied RGBA8 bytes into a new pixmap.
// It panics if len(b) does not equal width*height*4.
func PixmapFromBytes(b []byte, width, height uint16) *Pixmap {
	if len(b) != int(width)*int(height)*4 {
		panic(fmt.Sprintf("cpu: pixmap data has %d bytes, want %dx%dx4", len(b), width, height))
	}
	p := NewPixmap(width, height)
	copy(p.DataAsU8(), b)
	return p
}

// Width returns the width in pixels.
func (p *Pixmap) Width() uint16 { return p.width }

// Height returns the height in pixels.
func (p *Pixmap) Height() uint16 { return p.height }

// Data returns the pixels. The slice aliases the pixmap.
func (p *Pixmap) Data() []PremulRGBA8 { return p.data }

// DataAsU8 returns the pixels as bytes in R, G, B, A order.
// The slice aliases the pixmap.
func (p *Pixmap) DataAsU8() []byte {
	return safeish.SliceCast[[]byte](p.data)
}

// Pixel returns the pixel at (x, y).
func (p *Pixmap) Pixel(x, y int) PremulRGBA8 {
	return p.data[y*int(p.width)+x]
}

// SetPixel sets the pixel at (x, y).
func (p *Pixmap) SetPixel(x, y int, c PremulRGBA8) {
	p.data[y*int(p.width)+x] = c
}
