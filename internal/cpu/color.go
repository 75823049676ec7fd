package cpu

// AlphaColor is a straight-alpha sRGB color with components in [0, 1].
type AlphaColor struct {
	R, G, B, A float32
}

// Transparent is the fully transparent color.
var Transparent = AlphaColor{}

// AlphaColorFromRGBA8 converts 8-bit straight-alpha components.
func AlphaColorFromRGBA8(r, g, b, a uint8) AlphaColor {
	return AlphaColor{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// Premultiply multiplies the color channels by alpha.
func (c AlphaColor) Premultiply() PremulColor {
	return PremulColor{c.R * c.A, c.G * c.A, c.B * c.A, c.A}
}

// PremulColor is a premultiplied color, R, G, B, A in [0, 1].
type PremulColor [4]float32

// Lerp interpolates linearly between c and o.
func (c PremulColor) Lerp(o PremulColor, t float32) PremulColor {
	return PremulColor{
		c[0] + (o[0]-c[0])*t,
		c[1] + (o[1]-c[1])*t,
		c[2] + (o[2]-c[2])*t,
		c[3] + (o[3]-c[3])*t,
	}
}

// ToRGBA8 rounds the color to 8 bits per channel.
func (c PremulColor) ToRGBA8() PremulRGBA8 {
	return PremulRGBA8{
		R: unorm8(c[0]),
		G: unorm8(c[1]),
		B: unorm8(c[2]),
		A: unorm8(c[3]),
	}
}

// PremulColorFromRGBA8 converts a premultiplied 8-bit pixel.
func PremulColorFromRGBA8(p PremulRGBA8) PremulColor {
	return PremulColor{
		float32(p.R) / 255,
		float32(p.G) / 255,
		float32(p.B) / 255,
		float32(p.A) / 255,
	}
}

func unorm8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
