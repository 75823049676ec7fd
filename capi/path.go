package capi

import (
	"github.com/gogpu/vc"
	"github.com/gogpu/vc/internal/handle"
)

// PathCreate returns a handle to a new empty path.
func PathCreate() Path { return Path(insert(paths, vc.NewPath())) }

func (p Path) get() *vc.Path { return paths.Get(handle.Handle(p)) }

// MoveTo starts a new subpath.
func MoveTo(p Path, pt vc.Point) { p.get().MoveTo(pt) }

// LineTo appends a line.
func LineTo(p Path, pt vc.Point) { p.get().LineTo(pt) }

// QuadTo appends a quadratic Bézier.
func QuadTo(p Path, p0, p1 vc.Point) { p.get().QuadTo(p0, p1) }

// CubicTo appends a cubic Bézier.
func CubicTo(p Path, p0, p1, p2 vc.Point) { p.get().CubicTo(p0, p1, p2) }

// Close closes the current subpath.
func Close(p Path) { p.get().Close() }

// RoundedRect returns a handle to a new closed path tracing rect with
// corners of the given radius.
func RoundedRect(rect vc.Rect, radius float64) Path {
	return Path(insert(paths, vc.RoundedRect(rect, radius)))
}

// PathDestroy releases the path.
func PathDestroy(p Path) { remove(paths, handle.Handle(p)).Destroy() }
