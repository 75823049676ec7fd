package vc

import (
	"slices"

	"honnef.co/go/curve"
)

// roundedRectTolerance is the flattening tolerance used to build the arcs
// of a rounded rectangle.
const roundedRectTolerance = 0.1

// Path is a mutable sequence of path verbs.
//
// A Path is owned by its creator and must be released with Destroy.
// Verbs are recorded as given: no ordering validation happens here, and a
// drawing verb without a preceding MoveTo starts at the previous end point
// (or the origin), as the renderer does.
type Path struct {
	els      curve.BezPath
	released bool
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// RoundedRect creates a closed path tracing rect with all four corners
// rounded by radius. Radii larger than half the shorter side are clamped.
func RoundedRect(rect Rect, radius float64) *Path {
	rr := rect.toCurve().RoundedRect(curve.RoundedRectRadii{
		TopLeft:     radius,
		TopRight:    radius,
		BottomRight: radius,
		BottomLeft:  radius,
	})
	return &Path{els: slices.Collect(rr.PathElements(roundedRectTolerance))}
}

func (p *Path) live() *Path {
	checkNil(p, "path")
	if p.released {
		violation(ErrReleased, "path")
	}
	return p
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt Point) { p.live().els.MoveTo(pt.toCurve()) }

// LineTo appends a line to pt.
func (p *Path) LineTo(pt Point) { p.live().els.LineTo(pt.toCurve()) }

// QuadTo appends a quadratic Bézier with control point p1 ending at p2.
func (p *Path) QuadTo(p1, p2 Point) { p.live().els.QuadTo(p1.toCurve(), p2.toCurve()) }

// CubicTo appends a cubic Bézier with control points p1, p2 ending at p3.
func (p *Path) CubicTo(p1, p2, p3 Point) {
	p.live().els.CubicTo(p1.toCurve(), p2.toCurve(), p3.toCurve())
}

// Close closes the current subpath.
func (p *Path) Close() { p.live().els.ClosePath() }

// Len returns the number of verbs.
func (p *Path) Len() int { return len(p.live().els) }

// Elements returns a copy of the recorded verbs.
func (p *Path) Elements() []curve.PathElement { return slices.Clone(p.live().els) }

// BoundingBox returns the bounds of the path, including curve extrema.
func (p *Path) BoundingBox() Rect {
	r := p.live().els.BoundingBox()
	return Rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y1}
}

// Destroy releases the path. Any further use panics.
func (p *Path) Destroy() {
	p.live()
	p.released = true
	p.els = nil
}

func (p *Path) bezPath() curve.BezPath { return p.live().els }
