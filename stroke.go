package vc

import (
	"honnef.co/go/curve"

	"github.com/gogpu/vc/internal/cpu"
)

// Stroke describes how paths are stroked. Only the width is configurable:
// joins are always beveled and both caps are butt.
type Stroke struct {
	Width float64
}

func (s Stroke) toCurve() curve.Stroke {
	cs := cpu.DefaultStroke
	cs.Width = s.Width
	return cs
}

// FillRule selects how path interiors are determined.
type FillRule uint8

const (
	// FillWinding fills where the winding number is not zero.
	FillWinding FillRule = iota
	// FillEvenOdd fills where the winding number is odd.
	FillEvenOdd
)

// String returns the rule's name.
func (r FillRule) String() string {
	switch r {
	case FillWinding:
		return "Winding"
	case FillEvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

func (r FillRule) toCPU() cpu.FillRule {
	if r == FillEvenOdd {
		return cpu.EvenOdd
	}
	return cpu.NonZero
}
