package main

/*
#define VC_BUILDING_LIBRARY
#include "vc.h"
*/
import "C"

import (
	"unsafe"

	"github.com/gogpu/vc"
	"github.com/gogpu/vc/capi"
	"github.com/gogpu/vc/internal/handle"
)

// =============================================================================
// Transforms
// =============================================================================

//export vc_transform_identity
func vc_transform_identity() C.vc_transform { return cTransform(capi.TransformIdentity()) }

//export vc_transform_scale
func vc_transform_scale(sx, sy C.double) C.vc_transform {
	return cTransform(capi.TransformScale(float64(sx), float64(sy)))
}

//export vc_transform_translate
func vc_transform_translate(tx, ty C.double) C.vc_transform {
	return cTransform(capi.TransformTranslate(float64(tx), float64(ty)))
}

//export vc_transform_rotate
func vc_transform_rotate(angle C.double) C.vc_transform {
	return cTransform(capi.TransformRotate(float64(angle)))
}

//export vc_transform_rotate_at
func vc_transform_rotate_at(angle, cx, cy C.double) C.vc_transform {
	return cTransform(capi.TransformRotateAt(float64(angle), float64(cx), float64(cy)))
}

//export vc_transform_combine
func vc_transform_combine(t1, t2 C.vc_transform) C.vc_transform {
	return cTransform(capi.TransformCombine(transform(t1), transform(t2)))
}

// =============================================================================
// Paths
// =============================================================================

//export vc_path_create
func vc_path_create() C.vc_path { return C.vc_path(capi.PathCreate()) }

//export vc_move_to
func vc_move_to(path C.vc_path, p C.vc_point) { capi.MoveTo(capi.Path(path), point(p)) }

//export vc_line_to
func vc_line_to(path C.vc_path, p C.vc_point) { capi.LineTo(capi.Path(path), point(p)) }

//export vc_quad_to
func vc_quad_to(path C.vc_path, p0, p1 C.vc_point) {
	capi.QuadTo(capi.Path(path), point(p0), point(p1))
}

//export vc_cubic_to
func vc_cubic_to(path C.vc_path, p0, p1, p2 C.vc_point) {
	capi.CubicTo(capi.Path(path), point(p0), point(p1), point(p2))
}

//export vc_close
func vc_close(path C.vc_path) { capi.Close(capi.Path(path)) }

//export vc_rounded_rect
func vc_rounded_rect(r C.vc_rect, radius C.double) C.vc_path {
	return C.vc_path(capi.RoundedRect(rect(r), float64(radius)))
}

//export vc_path_destroy
func vc_path_destroy(path C.vc_path) { capi.PathDestroy(capi.Path(path)) }

// =============================================================================
// Contexts
// =============================================================================

//export vc_context_create
func vc_context_create(width, height, numThreads C.uint32_t) C.vc_context {
	return C.vc_context(capi.ContextCreate(uint32(width), uint32(height), uint32(numThreads)))
}

//export vc_context_reset
func vc_context_reset(ctx C.vc_context) { capi.ContextReset(capi.Context(ctx)) }

//export vc_context_resize
func vc_context_resize(ctx C.vc_context, width, height, numThreads C.uint32_t) {
	capi.ContextResize(capi.Context(ctx), uint32(width), uint32(height), uint32(numThreads))
}

//export vc_context_destroy
func vc_context_destroy(ctx C.vc_context) { capi.ContextDestroy(capi.Context(ctx)) }

//export vc_flush
func vc_flush(ctx C.vc_context) { capi.Flush(capi.Context(ctx)) }

//export vc_render_to_pixmap
func vc_render_to_pixmap(pixmap C.vc_pixmap, ctx C.vc_context) {
	capi.RenderToPixmap(capi.Pixmap(pixmap), capi.Context(ctx))
}

//export vc_set_transform
func vc_set_transform(ctx C.vc_context, t C.vc_transform) {
	capi.SetTransform(capi.Context(ctx), transform(t))
}

//export vc_set_paint_transform
func vc_set_paint_transform(ctx C.vc_context, t C.vc_transform) {
	capi.SetPaintTransform(capi.Context(ctx), transform(t))
}

//export vc_reset_paint_transform
func vc_reset_paint_transform(ctx C.vc_context) { capi.ResetPaintTransform(capi.Context(ctx)) }

//export vc_set_fill_rule
func vc_set_fill_rule(ctx C.vc_context, rule C.vc_fill_rule) {
	capi.SetFillRule(capi.Context(ctx), capi.FillRuleOf(uint32(rule)))
}

//export vc_set_paint
func vc_set_paint(ctx C.vc_context, p C.vc_paint) {
	capi.SetPaint(capi.Context(ctx), capi.Paint{
		Tag:    capi.PaintTag(p.tag),
		Color:  color(p.color),
		Handle: handle.Handle(p.handle),
	})
}

//export vc_set_stroke
func vc_set_stroke(ctx C.vc_context, s C.vc_stroke) {
	capi.SetStroke(capi.Context(ctx), vc.Stroke{Width: float64(s.width)})
}

//export vc_fill_path
func vc_fill_path(ctx C.vc_context, path C.vc_path) {
	capi.FillPath(capi.Context(ctx), capi.Path(path))
}

//export vc_stroke_path
func vc_stroke_path(ctx C.vc_context, path C.vc_path) {
	capi.StrokePath(capi.Context(ctx), capi.Path(path))
}

//export vc_fill_rect
func vc_fill_rect(ctx C.vc_context, r C.vc_rect) { capi.FillRect(capi.Context(ctx), rect(r)) }

//export vc_stroke_rect
func vc_stroke_rect(ctx C.vc_context, r C.vc_rect) { capi.StrokeRect(capi.Context(ctx), rect(r)) }

// =============================================================================
// Pixmaps and output
// =============================================================================

//export vc_pixmap_create
func vc_pixmap_create(width, height C.uint32_t) C.vc_pixmap {
	return C.vc_pixmap(capi.PixmapCreate(uint32(width), uint32(height)))
}

//export vc_pixmap_destroy
func vc_pixmap_destroy(pixmap C.vc_pixmap) { capi.PixmapDestroy(capi.Pixmap(pixmap)) }

//export vc_pixmap_from_data
func vc_pixmap_from_data(data *C.uint8_t, width, height C.uint32_t) C.vc_arc_pixmap {
	n := int(uint16(width)) * int(uint16(height)) * 4
	if data == nil && n > 0 {
		vc.Logger().Warn("vc: pixmap_from_data called with NULL data",
			"width", uint32(width), "height", uint32(height))
		return 0
	}
	var b []byte
	if n > 0 {
		b = unsafe.Slice((*byte)(unsafe.Pointer(data)), n)
	}
	return C.vc_arc_pixmap(capi.PixmapFromData(b, uint32(width), uint32(height)))
}

//export vc_arc_pixmap_destroy
func vc_arc_pixmap_destroy(pixmap C.vc_arc_pixmap) {
	capi.SharedPixmapDestroy(capi.SharedPixmap(pixmap))
}

//export vc_data
func vc_data(pixmap C.vc_pixmap) C.vc_argb { return C.vc_argb(capi.Data(capi.Pixmap(pixmap))) }

//export vc_argb_data
func vc_argb_data(data C.vc_argb) *C.uint8_t { return argbData(capi.ARGB(data)) }

//export vc_argb_destroy
func vc_argb_destroy(data C.vc_argb) { argbDestroy(capi.ARGB(data)) }

// =============================================================================
// Gradients and images
// =============================================================================

//export vc_linear_gradient_create
func vc_linear_gradient_create(start, end C.vc_point, extend C.vc_extend) C.vc_linear_gradient {
	return C.vc_linear_gradient(capi.LinearGradientCreate(point(start), point(end), capi.ExtendOf(uint32(extend))))
}

//export vc_linear_gradient_push_stop
func vc_linear_gradient_push_stop(g C.vc_linear_gradient, s C.vc_gradient_stop) {
	capi.LinearGradientPushStop(capi.LinearGradient(g), stop(s))
}

//export vc_linear_gradient_destroy
func vc_linear_gradient_destroy(g C.vc_linear_gradient) {
	capi.LinearGradientDestroy(capi.LinearGradient(g))
}

//export vc_radial_gradient_create
func vc_radial_gradient_create(center0 C.vc_point, radius0 C.double, center1 C.vc_point, radius1 C.double, extend C.vc_extend) C.vc_radial_gradient {
	return C.vc_radial_gradient(capi.RadialGradientCreate(
		point(center0), float64(radius0), point(center1), float64(radius1), capi.ExtendOf(uint32(extend))))
}

//export vc_radial_gradient_push_stop
func vc_radial_gradient_push_stop(g C.vc_radial_gradient, s C.vc_gradient_stop) {
	capi.RadialGradientPushStop(capi.RadialGradient(g), stop(s))
}

//export vc_radial_gradient_destroy
func vc_radial_gradient_destroy(g C.vc_radial_gradient) {
	capi.RadialGradientDestroy(capi.RadialGradient(g))
}

//export vc_sweep_gradient_create
func vc_sweep_gradient_create(center C.vc_point, startAngle, endAngle C.double, extend C.vc_extend) C.vc_sweep_gradient {
	return C.vc_sweep_gradient(capi.SweepGradientCreate(
		point(center), float64(startAngle), float64(endAngle), capi.ExtendOf(uint32(extend))))
}

//export vc_sweep_gradient_push_stop
func vc_sweep_gradient_push_stop(g C.vc_sweep_gradient, s C.vc_gradient_stop) {
	capi.SweepGradientPushStop(capi.SweepGradient(g), stop(s))
}

//export vc_sweep_gradient_destroy
func vc_sweep_gradient_destroy(g C.vc_sweep_gradient) {
	capi.SweepGradientDestroy(capi.SweepGradient(g))
}

//export vc_image_create
func vc_image_create(pixmap C.vc_arc_pixmap, xExtend, yExtend C.vc_extend, quality C.vc_image_quality) C.vc_image {
	return C.vc_image(capi.ImageCreate(capi.SharedPixmap(pixmap),
		capi.ExtendOf(uint32(xExtend)), capi.ExtendOf(uint32(yExtend)), capi.ImageQualityOf(uint32(quality))))
}

//export vc_image_destroy
func vc_image_destroy(img C.vc_image) { capi.ImageDestroy(capi.Image(img)) }
