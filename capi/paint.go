package capi

import (
	"fmt"

	"github.com/gogpu/vc"
	"github.com/gogpu/vc/internal/handle"
)

// PaintTag selects the variant of a Paint.
type PaintTag uint32

// Paint tags, numbered as in vc.h.
const (
	PaintColor PaintTag = iota
	PaintLinearGradient
	PaintRadialGradient
	PaintSweepGradient
	PaintImage
)

// Paint is a tagged paint. Color is used when Tag is PaintColor; Handle
// holds the gradient or image handle for every other tag.
type Paint struct {
	Tag    PaintTag
	Color  vc.Color
	Handle handle.Handle
}

// ColorPaint returns a solid color paint.
func ColorPaint(c vc.Color) Paint { return Paint{Tag: PaintColor, Color: c} }

// LinearGradientPaint returns a paint referring to g.
func LinearGradientPaint(g LinearGradient) Paint {
	return Paint{Tag: PaintLinearGradient, Handle: handle.Handle(g)}
}

// RadialGradientPaint returns a paint referring to g.
func RadialGradientPaint(g RadialGradient) Paint {
	return Paint{Tag: PaintRadialGradient, Handle: handle.Handle(g)}
}

// SweepGradientPaint returns a paint referring to g.
func SweepGradientPaint(g SweepGradient) Paint {
	return Paint{Tag: PaintSweepGradient, Handle: handle.Handle(g)}
}

// ImagePaint returns a paint referring to img.
func ImagePaint(img Image) Paint { return Paint{Tag: PaintImage, Handle: handle.Handle(img)} }

func (p Paint) resolve() vc.Paint {
	switch p.Tag {
	case PaintColor:
		return p.Color
	case PaintLinearGradient:
		return linearGradients.Get(p.Handle)
	case PaintRadialGradient:
		return radialGradients.Get(p.Handle)
	case PaintSweepGradient:
		return sweepGradients.Get(p.Handle)
	case PaintImage:
		return images.Get(p.Handle)
	default:
		panic(fmt.Errorf("%w: %d", ErrInvalidPaint, p.Tag))
	}
}

// LinearGradientCreate returns a handle to a new linear gradient.
func LinearGradientCreate(start, end vc.Point, extend vc.Extend) LinearGradient {
	return LinearGradient(insert(linearGradients, vc.NewLinearGradient(start, end, ExtendOf(uint32(extend)))))
}

// LinearGradientPushStop appends a stop.
func LinearGradientPushStop(g LinearGradient, stop vc.GradientStop) {
	linearGradients.Get(handle.Handle(g)).PushStop(stop)
}

// LinearGradientDestroy releases the gradient.
func LinearGradientDestroy(g LinearGradient) {
	remove(linearGradients, handle.Handle(g)).Destroy()
}

// RadialGradientCreate returns a handle to a new two-point radial gradient.
func RadialGradientCreate(center0 vc.Point, radius0 float64, center1 vc.Point, radius1 float64, extend vc.Extend) RadialGradient {
	return RadialGradient(insert(radialGradients, vc.NewRadialGradient(center0, radius0, center1, radius1, ExtendOf(uint32(extend)))))
}

// RadialGradientPushStop appends a stop.
func RadialGradientPushStop(g RadialGradient, stop vc.GradientStop) {
	radialGradients.Get(handle.Handle(g)).PushStop(stop)
}

// RadialGradientDestroy releases the gradient.
func RadialGradientDestroy(g RadialGradient) {
	remove(radialGradients, handle.Handle(g)).Destroy()
}

// SweepGradientCreate returns a handle to a new sweep gradient. Angles are
// in radians.
func SweepGradientCreate(center vc.Point, startAngle, endAngle float64, extend vc.Extend) SweepGradient {
	return SweepGradient(insert(sweepGradients, vc.NewSweepGradient(center, startAngle, endAngle, ExtendOf(uint32(extend)))))
}

// SweepGradientPushStop appends a stop.
func SweepGradientPushStop(g SweepGradient, stop vc.GradientStop) {
	sweepGradients.Get(handle.Handle(g)).PushStop(stop)
}

// SweepGradientDestroy releases the gradient.
func SweepGradientDestroy(g SweepGradient) {
	remove(sweepGradients, handle.Handle(g)).Destroy()
}

// ImageCreate returns a handle to a new image paint over the shared pixel
// data. The image holds its own reference: src may be destroyed first.
func ImageCreate(src SharedPixmap, xExtend, yExtend vc.Extend, quality vc.ImageQuality) Image {
	return Image(insert(images, vc.NewImage(src.get(),
		ExtendOf(uint32(xExtend)), ExtendOf(uint32(yExtend)), ImageQualityOf(uint32(quality)))))
}

// ImageDestroy releases the image.
func ImageDestroy(img Image) { remove(images, handle.Handle(img)).Destroy() }
