package vc

import "github.com/gogpu/vc/internal/cpu"

// Paint is what the context fills and strokes with. It is implemented by
// Color, *LinearGradient, *RadialGradient, *SweepGradient and *Image, and
// cannot be implemented outside this package.
//
// Context.SetPaint snapshots the paint: later changes to a gradient, or
// destroying it, do not affect the bound paint.
type Paint interface {
	cpuPaint() cpu.Paint
}

func (c Color) cpuPaint() cpu.Paint { return c.alphaColor() }

var (
	_ Paint = Color{}
	_ Paint = (*LinearGradient)(nil)
	_ Paint = (*RadialGradient)(nil)
	_ Paint = (*SweepGradient)(nil)
	_ Paint = (*Image)(nil)
)
