package cpu

import (
	"math"

	"honnef.co/go/curve"
)

// Paint is what a draw command fills with: an AlphaColor, a Gradient or
// an Image.
type Paint interface {
	isPaint()
}

func (AlphaColor) isPaint() {}
func (Gradient) isPaint()   {}
func (Image) isPaint()      {}

// Extend defines how a paint continues outside its defined range.
type Extend uint8

const (
	// Pad extends the edge value.
	Pad Extend = iota
	// Repeat tiles the paint.
	Repeat
	// Reflect tiles the paint, mirroring every other repetition.
	Reflect
)

// apply maps t into [0, 1].
func (e Extend) apply(t float64) float64 {
	switch e {
	case Repeat:
		return t - math.Floor(t)
	case Reflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if math.Mod(period, 2) == 1 {
			t = 1 - t
		}
		return t
	default:
		return min(max(t, 0), 1)
	}
}

// index maps an integer texel coordinate into [0, n).
func (e Extend) index(i, n int) int {
	switch e {
	case Repeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	case Reflect:
		m := i % (2 * n)
		if m < 0 {
			m += 2 * n
		}
		if m >= n {
			m = 2*n - 1 - m
		}
		return m
	default:
		return min(max(i, 0), n-1)
	}
}

// ColorStop is a color at a position along a gradient.
type ColorStop struct {
	Offset float32
	Color  AlphaColor
}

// GradientKind is the geometry of a gradient: LinearKind, RadialKind or
// SweepKind.
type GradientKind interface {
	isGradientKind()
}

// LinearKind interpolates along the line from Start to End.
type LinearKind struct {
	Start curve.Point
	End   curve.Point
}

// RadialKind interpolates between two circles.
type RadialKind struct {
	StartCenter curve.Point
	StartRadius float32
	EndCenter   curve.Point
	EndRadius   float32
}

// SweepKind interpolates by angle around Center. Angles are in radians.
type SweepKind struct {
	Center     curve.Point
	StartAngle float32
	EndAngle   float32
}

func (LinearKind) isGradientKind() {}
func (RadialKind) isGradientKind() {}
func (SweepKind) isGradientKind()  {}

// Gradient is a gradient paint. Stops are used in the order given.
type Gradient struct {
	Kind   GradientKind
	Stops  []ColorStop
	Extend Extend
}

// Quality selects the filter used when sampling images.
type Quality uint8

const (
	// QualityLow samples the nearest texel.
	QualityLow Quality = iota
	// QualityMedium interpolates bilinearly.
	QualityMedium
	// QualityHigh interpolates bicubically.
	QualityHigh
)

// Image is an image paint. The source is placed with its top-left corner
// at the paint-space origin, one texel per unit.
type Image struct {
	Source  *Pixmap
	XExtend Extend
	YExtend Extend
	Quality Quality
}
