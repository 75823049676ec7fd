// Package vc is a 2D vector rendering library with a handle-friendly API.
//
// # Overview
//
// vc renders filled and stroked paths with solid colors, gradients and
// images into premultiplied RGBA pixmaps on the CPU. Every object has an
// explicit Destroy so that the API maps one-to-one onto a flat C ABI
// (see the capi package and cmd/libvc).
//
// # Quick Start
//
//	import "github.com/gogpu/vc"
//
//	ctx := vc.NewContext(256, 256, 4)
//	defer ctx.Destroy()
//
//	ctx.SetPaint(vc.Color{R: 255, A: 255})
//	ctx.FillRect(vc.Rect{X0: 16, Y0: 16, X1: 240, Y1: 240})
//
//	pm := vc.NewPixmap(256, 256)
//	defer pm.Destroy()
//	ctx.RenderToPixmap(pm)
//
//	out := vc.NewARGB(pm) // B, G, R, A byte order
//	defer out.Destroy()
//
// # Objects
//
// The library is organized into:
//   - Values: Transform, Point, Rect, Color, Stroke, GradientStop
//   - Builders: Path, LinearGradient, RadialGradient, SweepGradient
//   - Pixel data: Pixmap (exclusive), SharedPixmap (reference counted), Image
//   - Drawing: Context records draws and renders them tile by tile
//   - Output: ARGB snapshots in B, G, R, A byte order
//
// # Ownership
//
// Every constructor is paired with exactly one Destroy. Passing an object to
// another constructor or to Context.SetPaint never transfers ownership:
// gradients are copied when bound, and images and contexts keep their own
// reference to shared pixel data. Using an object after Destroy panics.
//
// # Coordinate System
//
// Origin (0,0) is the top-left corner, X increases right and Y increases
// down. Angles are in radians; positive angles rotate +X towards +Y.
//
// # Sizes
//
// Surface dimensions are 16-bit. Wider arguments are truncated modulo 65536.
package vc
