package vc

import "honnef.co/go/curve"

// Transform is a 2D affine transformation stored as six coefficients.
//
// A point (x, y) maps to:
//
//	x' = SX*x + KY*y + TX
//	y' = KX*x + SY*y + TY
//
// The field order matches the C struct vc_transform.
type Transform struct {
	SX, KX, KY, SY, TX, TY float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{SX: 1, SY: 1}
}

// Scale returns a transform that scales by (sx, sy).
func Scale(sx, sy float64) Transform {
	return Transform{SX: sx, SY: sy}
}

// Translate returns a transform that translates by (tx, ty).
func Translate(tx, ty float64) Transform {
	return Transform{SX: 1, SY: 1, TX: tx, TY: ty}
}

// Rotate returns a rotation about the origin by angle radians.
func Rotate(angle float64) Transform {
	return TransformFromAffine(curve.Rotate(angle))
}

// RotateAt returns a rotation by angle radians about (cx, cy).
// It equals Combine(Combine(Translate(cx, cy), Rotate(angle)), Translate(-cx, -cy)).
func RotateAt(angle, cx, cy float64) Transform {
	return TransformFromAffine(curve.RotateAbout(angle, curve.Pt(cx, cy)))
}

// Combine returns t1 ∘ t2: the result applies t2 first, then t1.
func Combine(t1, t2 Transform) Transform {
	return TransformFromAffine(t1.Affine().Mul(t2.Affine()))
}

// Affine converts t to the curve package representation.
func (t Transform) Affine() curve.Affine {
	return curve.NewAffine([6]float64{t.SX, t.KX, t.KY, t.SY, t.TX, t.TY})
}

// TransformFromAffine converts a curve.Affine to a Transform.
func TransformFromAffine(a curve.Affine) Transform {
	c := a.Coefficients()
	return Transform{SX: c[0], KX: c[1], KY: c[2], SY: c[3], TX: c[4], TY: c[5]}
}

// Apply maps p through t.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.SX*p.X + t.KY*p.Y + t.TX,
		Y: t.KX*p.X + t.SY*p.Y + t.TY,
	}
}
