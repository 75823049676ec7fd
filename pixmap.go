package vc

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/vc/internal/cpu"
)

// Pixmap is an exclusively owned buffer of premultiplied RGBA8 pixels.
// It is the target of Context.RenderToPixmap.
type Pixmap struct {
	pm *cpu.Pixmap
}

// NewPixmap creates a transparent pixmap. width and height are truncated
// to 16 bits.
func NewPixmap(width, height uint32) *Pixmap {
	return &Pixmap{pm: cpu.NewPixmap(uint16(width), uint16(height))}
}

func (p *Pixmap) live() *cpu.Pixmap {
	checkNil(p, "pixmap")
	if p.pm == nil {
		violation(ErrReleased, "pixmap")
	}
	return p.pm
}

// Width returns the width in pixels.
func (p *Pixmap) Width() int { return int(p.live().Width()) }

// Height returns the height in pixels.
func (p *Pixmap) Height() int { return int(p.live().Height()) }

// Bytes returns the pixels in premultiplied R, G, B, A byte order.
// The slice aliases the pixmap and is overwritten by the next render.
func (p *Pixmap) Bytes() []byte { return p.live().DataAsU8() }

// Destroy releases the pixel data. Any further use panics.
func (p *Pixmap) Destroy() {
	p.live()
	p.pm = nil
}

// pixmapCell is the reference-counted pixel data behind SharedPixmap.
// The data is dropped when the last reference is released.
type pixmapCell struct {
	refs atomic.Int64
	data atomic.Pointer[cpu.Pixmap]
}

func newPixmapCell(pm *cpu.Pixmap) *pixmapCell {
	c := &pixmapCell{}
	c.refs.Store(1)
	c.data.Store(pm)
	return c
}

func (c *pixmapCell) retain() {
	if c.refs.Add(1) <= 1 {
		violation(ErrReleased, "shared pixmap data")
	}
}

func (c *pixmapCell) release() {
	switch n := c.refs.Add(-1); {
	case n == 0:
		c.data.Store(nil)
		Logger().Debug("vc: shared pixmap data released")
	case n < 0:
		violation(ErrReleased, "shared pixmap data")
	}
}

// pixmap returns the data, which is live while the caller holds a reference.
func (c *pixmapCell) pixmap() *cpu.Pixmap {
	pm := c.data.Load()
	if pm == nil {
		violation(ErrReleased, "shared pixmap data")
	}
	return pm
}

// SharedPixmap is a reference to immutable, reference-counted pixel data.
//
// Images created from a SharedPixmap keep the data alive on their own, so
// a SharedPixmap may be destroyed while images built from it are still in
// use. Each SharedPixmap value is one reference and must be destroyed once.
type SharedPixmap struct {
	cell     *pixmapCell
	released bool
}

// PixmapFromData copies premultiplied RGBA8 data into new shared pixel
// data. width and height are truncated to 16 bits; data must hold exactly
// width*height*4 bytes for the truncated size, otherwise ErrDataLength is
// returned.
func PixmapFromData(data []byte, width, height uint32) (*SharedPixmap, error) {
	w, h := uint16(width), uint16(height)
	if want := int(w) * int(h) * 4; len(data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%d", ErrDataLength, len(data), want, w, h)
	}
	return &SharedPixmap{cell: newPixmapCell(cpu.PixmapFromBytes(data, w, h))}, nil
}

func (s *SharedPixmap) live() *pixmapCell {
	checkNil(s, "shared pixmap")
	if s.released {
		violation(ErrReleased, "shared pixmap")
	}
	return s.cell
}

// Retain returns a new, independent reference to the same data.
func (s *SharedPixmap) Retain() *SharedPixmap {
	c := s.live()
	c.retain()
	return &SharedPixmap{cell: c}
}

// Width returns the width in pixels.
func (s *SharedPixmap) Width() int { return int(s.live().pixmap().Width()) }

// Height returns the height in pixels.
func (s *SharedPixmap) Height() int { return int(s.live().pixmap().Height()) }

// Bytes returns the pixels in premultiplied R, G, B, A byte order.
// The data is shared and must not be modified.
func (s *SharedPixmap) Bytes() []byte { return s.live().pixmap().DataAsU8() }

// Refs returns the number of live references to the data, counting this
// one, images and contexts.
func (s *SharedPixmap) Refs() int { return int(s.live().refs.Load()) }

// Destroy drops this reference. The data is freed once no image, context
// or other SharedPixmap refers to it.
func (s *SharedPixmap) Destroy() {
	c := s.live()
	s.released = true
	c.release()
}
