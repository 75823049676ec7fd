package cpu

import (
	"math"

	"honnef.co/go/curve"
)

// shader evaluates a paint at device-space pixel centers.
type shader struct {
	solid bool
	color PremulColor

	// inv maps device space back to paint space.
	inv  curve.Affine
	eval func(p curve.Point) PremulColor
}

// newShader compiles paint for a command drawn with the given
// paint-to-device transform.
func newShader(paint Paint, toDevice curve.Affine) shader {
	switch p := paint.(type) {
	case AlphaColor:
		return shader{solid: true, color: p.Premultiply()}
	case Gradient:
		if toDevice.Determinant() == 0 {
			return shader{solid: true}
		}
		return shader{inv: toDevice.Invert(), eval: gradientEval(p)}
	case Image:
		if toDevice.Determinant() == 0 || p.Source == nil || p.Source.width == 0 || p.Source.height == 0 {
			return shader{solid: true}
		}
		return shader{inv: toDevice.Invert(), eval: imageEval(p)}
	default:
		return shader{solid: true}
	}
}

func (s *shader) at(x, y float64) PremulColor {
	if s.solid {
		return s.color
	}
	return s.eval(curve.Pt(x, y).Transform(s.inv))
}

func gradientEval(g Gradient) func(curve.Point) PremulColor {
	if len(g.Stops) == 0 {
		return func(curve.Point) PremulColor { return PremulColor{} }
	}
	r := rampFor(g.Stops)
	firstStop := g.Stops[0].Color.Premultiply()
	lookup := func(t float64) PremulColor {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return PremulColor{}
		}
		return r.at(g.Extend.apply(t))
	}

	switch k := g.Kind.(type) {
	case LinearKind:
		d := k.End.Sub(k.Start)
		len2 := d.Hypot2()
		if len2 == 0 {
			return func(curve.Point) PremulColor { return firstStop }
		}
		return func(p curve.Point) PremulColor {
			return lookup(p.Sub(k.Start).Dot(d) / len2)
		}

	case RadialKind:
		return radialEval(k, lookup)

	case SweepKind:
		start, end := float64(k.StartAngle), float64(k.EndAngle)
		if start == end {
			return func(curve.Point) PremulColor { return firstStop }
		}
		return func(p curve.Point) PremulColor {
			v := p.Sub(k.Center)
			angle := math.Atan2(v.Y, v.X)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			return lookup((angle - start) / (end - start))
		}

	default:
		return func(curve.Point) PremulColor { return PremulColor{} }
	}
}

// radialEval solves the two-point conical gradient: for each point, the
// largest t with r(t) >= 0 such that the point lies on the circle
// centered at c0 + t*(c1-c0) with radius r0 + t*(r1-r0). Points on no
// such circle are transparent.
func radialEval(k RadialKind, lookup func(float64) PremulColor) func(curve.Point) PremulColor {
	r0 := float64(k.StartRadius)
	dr := float64(k.EndRadius) - r0
	cd := k.EndCenter.Sub(k.StartCenter)
	a := cd.Hypot2() - dr*dr
	valid := func(t float64) bool { return r0+t*dr >= 0 }

	return func(p curve.Point) PremulColor {
		pd := p.Sub(k.StartCenter)
		b := pd.Dot(cd) + r0*dr
		c := pd.Hypot2() - r0*r0

		if math.Abs(a) < 1e-12 {
			if b == 0 {
				return PremulColor{}
			}
			t := c / (2 * b)
			if !valid(t) {
				return PremulColor{}
			}
			return lookup(t)
		}

		disc := b*b - a*c
		if disc < 0 {
			return PremulColor{}
		}
		sq := math.Sqrt(disc)
		t1, t2 := (b+sq)/a, (b-sq)/a
		if t1 < t2 {
			t1, t2 = t2, t1
		}
		switch {
		case valid(t1):
			return lookup(t1)
		case valid(t2):
			return lookup(t2)
		default:
			return PremulColor{}
		}
	}
}

func imageEval(img Image) func(curve.Point) PremulColor {
	src := img.Source
	w, h := int(src.width), int(src.height)
	texel := func(x, y int) PremulColor {
		return PremulColorFromRGBA8(src.Pixel(img.XExtend.index(x, w), img.YExtend.index(y, h)))
	}

	switch img.Quality {
	case QualityMedium:
		return func(p curve.Point) PremulColor {
			fx, fy := p.X-0.5, p.Y-0.5
			x0, y0 := math.Floor(fx), math.Floor(fy)
			tx, ty := float32(fx-x0), float32(fy-y0)
			ix, iy := int(x0), int(y0)
			top := texel(ix, iy).Lerp(texel(ix+1, iy), tx)
			bottom := texel(ix, iy+1).Lerp(texel(ix+1, iy+1), tx)
			return top.Lerp(bottom, ty)
		}

	case QualityHigh:
		return func(p curve.Point) PremulColor {
			fx, fy := p.X-0.5, p.Y-0.5
			x0, y0 := math.Floor(fx), math.Floor(fy)
			tx, ty := fx-x0, fy-y0
			ix, iy := int(x0), int(y0)

			var wx, wy [4]float64
			for i := range 4 {
				wx[i] = cubicWeight(tx - float64(i-1))
				wy[i] = cubicWeight(ty - float64(i-1))
			}

			var sum [4]float64
			for j := range 4 {
				for i := range 4 {
					c := texel(ix+i-1, iy+j-1)
					wgt := wx[i] * wy[j]
					for ch := range 4 {
						sum[ch] += float64(c[ch]) * wgt
					}
				}
			}

			// Catmull-Rom overshoots; keep the result a valid premultiplied color.
			alpha := min(max(sum[3], 0), 1)
			return PremulColor{
				float32(min(max(sum[0], 0), alpha)),
				float32(min(max(sum[1], 0), alpha)),
				float32(min(max(sum[2], 0), alpha)),
				float32(alpha),
			}
		}

	default:
		return func(p curve.Point) PremulColor {
			return texel(int(math.Floor(p.X)), int(math.Floor(p.Y)))
		}
	}
}

// cubicWeight is the Catmull-Rom kernel.
func cubicWeight(t float64) float64 {
	t = math.Abs(t)
	switch {
	case t < 1:
		return 1.5*t*t*t - 2.5*t*t + 1
	case t < 2:
		return -0.5*t*t*t + 2.5*t*t - 4*t + 2
	default:
		return 0
	}
}
