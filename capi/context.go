package capi

import (
	"github.com/gogpu/vc"
	"github.com/gogpu/vc/internal/handle"
)

// ContextCreate returns a handle to a new render context. width, height
// and numThreads are truncated to 16 bits.
func ContextCreate(width, height, numThreads uint32) Context {
	return Context(insert(contexts, vc.NewContext(width, height, numThreads)))
}

func (c Context) get() *vc.Context { return contexts.Get(handle.Handle(c)) }

// ContextReset discards recorded commands and keeps the drawing state.
func ContextReset(c Context) { c.get().Reset() }

// ContextResize rebuilds the context for a new size. Resizing to the
// current size does nothing, including ignoring numThreads.
func ContextResize(c Context, width, height, numThreads uint32) {
	c.get().Resize(width, height, numThreads)
}

// ContextDestroy releases the context.
func ContextDestroy(c Context) { remove(contexts, handle.Handle(c)).Destroy() }

// SetTransform sets the geometry transform.
func SetTransform(c Context, t vc.Transform) { c.get().SetTransform(t) }

// SetPaintTransform sets the paint transform.
func SetPaintTransform(c Context, t vc.Transform) { c.get().SetPaintTransform(t) }

// ResetPaintTransform sets the paint transform to the identity.
func ResetPaintTransform(c Context) { c.get().ResetPaintTransform() }

// SetFillRule sets the fill rule. An undefined rule panics with
// ErrInvalidEnum.
func SetFillRule(c Context, r vc.FillRule) { c.get().SetFillRule(FillRuleOf(uint32(r))) }

// SetPaint binds a copy of p. The gradient or image handle in p may be
// destroyed right afterwards.
func SetPaint(c Context, p Paint) {
	ctx := c.get()
	ctx.SetPaint(p.resolve())
}

// SetStroke sets the stroke.
func SetStroke(c Context, s vc.Stroke) { c.get().SetStroke(s) }

// FillPath records a fill of path.
func FillPath(c Context, p Path) { c.get().FillPath(p.get()) }

// StrokePath records a stroke of path.
func StrokePath(c Context, p Path) { c.get().StrokePath(p.get()) }

// FillRect records a fill of rect.
func FillRect(c Context, rect vc.Rect) { c.get().FillRect(rect) }

// StrokeRect records a stroke of rect.
func StrokeRect(c Context, rect vc.Rect) { c.get().StrokeRect(rect) }

// Flush prepares recorded commands for rendering.
func Flush(c Context) { c.get().Flush() }

// RenderToPixmap renders the context into pm. The pixmap comes first, as
// in vc_render_to_pixmap.
func RenderToPixmap(pm Pixmap, c Context) { c.get().RenderToPixmap(pm.get()) }
