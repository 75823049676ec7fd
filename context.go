package vc

import (
	"time"

	"github.com/gogpu/vc/internal/cpu"
)

// Context records drawing commands for a fixed-size surface and renders
// them into a Pixmap.
//
// A Context holds the current transform, paint transform, fill rule, paint
// and stroke. Each draw call captures that state at the time of the call;
// changing the state afterwards does not affect recorded commands.
//
// A Context is not safe for concurrent use. Different contexts may be used
// from different goroutines.
type Context struct {
	rc   *cpu.RenderContext
	opts contextOptions

	// paintCell is the pixel data referenced by the bound image paint.
	paintCell *pixmapCell
	// drawCells holds one reference per recorded command drawn with an image.
	drawCells []*pixmapCell

	released bool
}

// NewContext creates a context for a width × height surface. width, height
// and numThreads are truncated to 16 bits. With numThreads > 0 rendering is
// spread over that many worker goroutines; with zero it runs on the calling
// goroutine.
//
// A new context has the identity transform and paint transform, the
// FillWinding rule, opaque black paint and a stroke of width 1.
func NewContext(width, height, numThreads uint32, opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Context{
		rc:   cpu.NewRenderContext(uint16(width), uint16(height), o.settings(numThreads)),
		opts: o,
	}
	Logger().Debug("vc: context created",
		"width", c.rc.Width(), "height", c.rc.Height(), "threads", c.rc.Threads())
	return c
}

func (c *Context) live() *cpu.RenderContext {
	checkNil(c, "context")
	if c.released {
		violation(ErrReleased, "context")
	}
	return c.rc
}

// Width returns the surface width.
func (c *Context) Width() int { return int(c.live().Width()) }

// Height returns the surface height.
func (c *Context) Height() int { return int(c.live().Height()) }

// Threads returns the number of worker goroutines used for rendering.
func (c *Context) Threads() int { return c.live().Threads() }

// Commands returns the number of recorded draw commands.
func (c *Context) Commands() int { return c.live().Commands() }

// Reset discards all recorded commands. The surface size, worker pool and
// drawing state are kept.
func (c *Context) Reset() {
	c.live().Reset()
	c.releaseDraws()
}

// Resize changes the surface size.
//
// If the truncated size equals the current size Resize does nothing, and
// numThreads is ignored. Otherwise the context is rebuilt: recorded
// commands are dropped and the drawing state returns to its defaults.
func (c *Context) Resize(width, height, numThreads uint32) {
	rc := c.live()
	w, h := uint16(width), uint16(height)
	if w == rc.Width() && h == rc.Height() {
		Logger().Debug("vc: resize to current size ignored",
			"width", w, "height", h, "threads", numThreads)
		return
	}
	rc.Close()
	c.releaseDraws()
	c.releasePaint()
	c.rc = cpu.NewRenderContext(w, h, c.opts.settings(numThreads))
	Logger().Debug("vc: context rebuilt",
		"width", w, "height", h, "threads", c.rc.Threads())
}

// Destroy stops the worker pool and releases all image data held by the
// bound paint and recorded commands. Any further use panics.
func (c *Context) Destroy() {
	c.live().Close()
	c.releaseDraws()
	c.releasePaint()
	c.released = true
	c.rc = nil
}

func (c *Context) releaseDraws() {
	for _, cell := range c.drawCells {
		cell.release()
	}
	clear(c.drawCells)
	c.drawCells = c.drawCells[:0]
}

func (c *Context) releasePaint() {
	if c.paintCell != nil {
		c.paintCell.release()
		c.paintCell = nil
	}
}

// SetTransform sets the transform applied to geometry.
func (c *Context) SetTransform(t Transform) { c.live().SetTransform(t.Affine()) }

// Transform returns the geometry transform.
func (c *Context) Transform() Transform { return TransformFromAffine(c.live().Transform()) }

// SetPaintTransform sets the transform from paint space to user space. The
// paint is mapped to the device by the geometry transform followed by it.
func (c *Context) SetPaintTransform(t Transform) { c.live().SetPaintTransform(t.Affine()) }

// ResetPaintTransform sets the paint transform to the identity.
func (c *Context) ResetPaintTransform() { c.live().ResetPaintTransform() }

// PaintTransform returns the paint transform.
func (c *Context) PaintTransform() Transform {
	return TransformFromAffine(c.live().PaintTransform())
}

// SetFillRule sets the rule used by FillPath and FillRect.
func (c *Context) SetFillRule(r FillRule) { c.live().SetFillRule(r.toCPU()) }

// FillRule returns the current fill rule.
func (c *Context) FillRule() FillRule {
	if c.live().FillRule() == cpu.EvenOdd {
		return FillEvenOdd
	}
	return FillWinding
}

// SetPaint sets the paint used by subsequent draws. The paint is copied:
// the caller may modify or destroy a gradient or image right afterwards.
func (c *Context) SetPaint(p Paint) {
	rc := c.live()
	if p == nil {
		violation(ErrNilArgument, "paint")
	}
	cp := p.cpuPaint()
	var cell *pixmapCell
	if img, ok := p.(*Image); ok {
		cell = img.cell
		cell.retain()
	}
	c.releasePaint()
	c.paintCell = cell
	rc.SetPaint(cp)
}

// SetStroke sets the stroke used by StrokePath and StrokeRect.
func (c *Context) SetStroke(s Stroke) { c.live().SetStroke(s.toCurve()) }

// Stroke returns the current stroke.
func (c *Context) Stroke() Stroke { return Stroke{Width: c.live().Stroke().Width} }

// recorded keeps the bound image alive for the command just recorded.
func (c *Context) recorded() {
	if c.paintCell != nil {
		c.paintCell.retain()
		c.drawCells = append(c.drawCells, c.paintCell)
	}
}

// FillPath records a fill of path with the current fill rule.
func (c *Context) FillPath(path *Path) {
	rc := c.live()
	rc.FillPath(path.bezPath())
	c.recorded()
}

// StrokePath records a stroke of path.
func (c *Context) StrokePath(path *Path) {
	rc := c.live()
	rc.StrokePath(path.bezPath())
	c.recorded()
}

// FillRect records a fill of rect.
func (c *Context) FillRect(rect Rect) {
	c.live().FillRect(rect.toCurve())
	c.recorded()
}

// StrokeRect records a stroke of rect's outline.
func (c *Context) StrokeRect(rect Rect) {
	c.live().StrokeRect(rect.toCurve())
	c.recorded()
}

// Flush prepares recorded commands for rendering. It is called by
// RenderToPixmap when needed and is idempotent.
func (c *Context) Flush() { c.live().Flush() }

// RenderToPixmap renders all recorded commands into pm, replacing its
// contents. It panics with ErrDimensionMismatch if pm is not the size of
// the context. Recorded commands are kept; Reset discards them.
func (c *Context) RenderToPixmap(pm *Pixmap) {
	rc := c.live()
	dst := pm.live()
	start := time.Now()
	rc.RenderToPixmap(dst)
	Logger().Debug("vc: rendered",
		"commands", rc.Commands(), "threads", rc.Threads(), "elapsed", time.Since(start))
}
