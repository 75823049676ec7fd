package vc

import (
	"slices"

	"github.com/gogpu/vc/internal/cpu"
)

// Extend defines how a gradient or image continues outside its range.
type Extend uint8

const (
	// ExtendPad repeats the edge color.
	ExtendPad Extend = iota
	// ExtendRepeat tiles the paint.
	ExtendRepeat
	// ExtendReflect tiles the paint, mirroring every other repetition.
	ExtendReflect
)

// String returns the extend mode's name.
func (e Extend) String() string {
	switch e {
	case ExtendPad:
		return "Pad"
	case ExtendRepeat:
		return "Repeat"
	case ExtendReflect:
		return "Reflect"
	default:
		return "Unknown"
	}
}

func (e Extend) toCPU() cpu.Extend {
	switch e {
	case ExtendRepeat:
		return cpu.Repeat
	case ExtendReflect:
		return cpu.Reflect
	default:
		return cpu.Pad
	}
}

// GradientStop is a color at an offset along a gradient. Offsets are
// nominally in [0, 1]; they are stored with single precision when bound.
type GradientStop struct {
	Offset float64
	Color  Color
}

// gradient is the part shared by the three gradient builders.
type gradient struct {
	kind     string
	extend   Extend
	stops    []GradientStop
	released bool
}

func (g *gradient) live() {
	if g.released {
		violation(ErrReleased, "%s gradient", g.kind)
	}
}

func (g *gradient) pushStop(s GradientStop) {
	g.live()
	g.stops = append(g.stops, s)
}

func (g *gradient) destroy() {
	g.live()
	g.released = true
	g.stops = nil
}

// snapshot copies the stops in push order for the renderer.
func (g *gradient) snapshot(kind cpu.GradientKind) cpu.Gradient {
	g.live()
	stops := make([]cpu.ColorStop, len(g.stops))
	for i, s := range g.stops {
		stops[i] = cpu.ColorStop{Offset: float32(s.Offset), Color: s.Color.alphaColor()}
	}
	return cpu.Gradient{Kind: kind, Stops: stops, Extend: g.extend.toCPU()}
}

// LinearGradient interpolates colors along the line from Start to End.
//
// LinearGradient implements Paint.
type LinearGradient struct {
	Start, End Point
	gradient
}

// NewLinearGradient creates a linear gradient without stops.
func NewLinearGradient(start, end Point, extend Extend) *LinearGradient {
	return &LinearGradient{
		Start:    start,
		End:      end,
		gradient: gradient{kind: "linear", extend: extend},
	}
}

// PushStop appends a stop. Stops are kept in push order; they are not
// sorted or deduplicated.
func (g *LinearGradient) PushStop(s GradientStop) {
	checkNil(g, "linear gradient")
	g.pushStop(s)
}

// Stops returns a copy of the stops in push order.
func (g *LinearGradient) Stops() []GradientStop {
	checkNil(g, "linear gradient")
	g.live()
	return slices.Clone(g.stops)
}

// Extend returns the extend mode.
func (g *LinearGradient) Extend() Extend { return g.extend }

// Destroy releases the gradient. Contexts it was bound to are unaffected.
func (g *LinearGradient) Destroy() {
	checkNil(g, "linear gradient")
	g.destroy()
}

func (g *LinearGradient) cpuPaint() cpu.Paint {
	checkNil(g, "linear gradient")
	return g.snapshot(cpu.LinearKind{Start: g.Start.toCurve(), End: g.End.toCurve()})
}

// RadialGradient interpolates colors between two circles. Radii are stored
// with single precision when bound.
//
// RadialGradient implements Paint.
type RadialGradient struct {
	Center0 Point
	Radius0 float64
	Center1 Point
	Radius1 float64
	gradient
}

// NewRadialGradient creates a two-point radial gradient without stops.
func NewRadialGradient(center0 Point, radius0 float64, center1 Point, radius1 float64, extend Extend) *RadialGradient {
	return &RadialGradient{
		Center0:  center0,
		Radius0:  radius0,
		Center1:  center1,
		Radius1:  radius1,
		gradient: gradient{kind: "radial", extend: extend},
	}
}

// PushStop appends a stop in push order.
func (g *RadialGradient) PushStop(s GradientStop) {
	checkNil(g, "radial gradient")
	g.pushStop(s)
}

// Stops returns a copy of the stops in push order.
func (g *RadialGradient) Stops() []GradientStop {
	checkNil(g, "radial gradient")
	g.live()
	return slices.Clone(g.stops)
}

// Extend returns the extend mode.
func (g *RadialGradient) Extend() Extend { return g.extend }

// Destroy releases the gradient.
func (g *RadialGradient) Destroy() {
	checkNil(g, "radial gradient")
	g.destroy()
}

func (g *RadialGradient) cpuPaint() cpu.Paint {
	checkNil(g, "radial gradient")
	return g.snapshot(cpu.RadialKind{
		StartCenter: g.Center0.toCurve(),
		StartRadius: float32(g.Radius0),
		EndCenter:   g.Center1.toCurve(),
		EndRadius:   float32(g.Radius1),
	})
}

// SweepGradient interpolates colors by angle around Center, from
// StartAngle to EndAngle in radians. Angles are stored with single
// precision when bound.
//
// SweepGradient implements Paint.
type SweepGradient struct {
	Center     Point
	StartAngle float64
	EndAngle   float64
	gradient
}

// NewSweepGradient creates a sweep gradient without stops.
func NewSweepGradient(center Point, startAngle, endAngle float64, extend Extend) *SweepGradient {
	return &SweepGradient{
		Center:     center,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		gradient:   gradient{kind: "sweep", extend: extend},
	}
}

// PushStop appends a stop in push order.
func (g *SweepGradient) PushStop(s GradientStop) {
	checkNil(g, "sweep gradient")
	g.pushStop(s)
}

// Stops returns a copy of the stops in push order.
func (g *SweepGradient) Stops() []GradientStop {
	checkNil(g, "sweep gradient")
	g.live()
	return slices.Clone(g.stops)
}

// Extend returns the extend mode.
func (g *SweepGradient) Extend() Extend { return g.extend }

// Destroy releases the gradient.
func (g *SweepGradient) Destroy() {
	checkNil(g, "sweep gradient")
	g.destroy()
}

func (g *SweepGradient) cpuPaint() cpu.Paint {
	checkNil(g, "sweep gradient")
	return g.snapshot(cpu.SweepKind{
		Center:     g.Center.toCurve(),
		StartAngle: float32(g.StartAngle),
		EndAngle:   float32(g.EndAngle),
	})
}
