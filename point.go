package vc

import "honnef.co/go/curve"

// Point is a 2D point.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) toCurve() curve.Point {
	return curve.Pt(p.X, p.Y)
}

// Rect is an axis-aligned rectangle given by two corners. The corners may
// be in any order.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// toCurve returns the rectangle with its corners normalized.
func (r Rect) toCurve() curve.Rect {
	return curve.NewRectFromPoints(curve.Pt(r.X0, r.Y0), curve.Pt(r.X1, r.Y1))
}
