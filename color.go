package vc

import "github.com/gogpu/vc/internal/cpu"

// Color is an 8-bit sRGB color with straight (non-premultiplied) alpha.
//
// Color implements Paint.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
)

func (c Color) alphaColor() cpu.AlphaColor {
	return cpu.AlphaColorFromRGBA8(c.R, c.G, c.B, c.A)
}

// Premultiply returns c with R, G and B scaled by alpha, rounded to the
// nearest integer. This is the pixel a fully covered solid fill produces.
func (c Color) Premultiply() Color {
	p := c.alphaColor().Premultiply().ToRGBA8()
	return Color{R: p.R, G: p.G, B: p.B, A: p.A}
}
