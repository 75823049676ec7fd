package main

/*
#define VC_BUILDING_LIBRARY
#include "vc.h"
*/
import "C"

import (
	"fmt"

	"github.com/gogpu/vc/capi"
)

// The sp_* functions are the older solid-color surface. They share the
// vc_* handle space, so handles from either surface may be mixed.

//export sp_transform_identity
func sp_transform_identity() C.vc_transform { return vc_transform_identity() }

//export sp_transform_scale
func sp_transform_scale(sx, sy C.double) C.vc_transform { return vc_transform_scale(sx, sy) }

//export sp_transform_translate
func sp_transform_translate(tx, ty C.double) C.vc_transform { return vc_transform_translate(tx, ty) }

//export sp_transform_rotate
func sp_transform_rotate(angle C.double) C.vc_transform { return vc_transform_rotate(angle) }

//export sp_transform_rotate_at
func sp_transform_rotate_at(angle, cx, cy C.double) C.vc_transform {
	return vc_transform_rotate_at(angle, cx, cy)
}

//export sp_path_create
func sp_path_create() C.vc_path { return vc_path_create() }

//export sp_move_to
func sp_move_to(path C.vc_path, p C.vc_point) { vc_move_to(path, p) }

//export sp_line_to
func sp_line_to(path C.vc_path, p C.vc_point) { vc_line_to(path, p) }

//export sp_quad_to
func sp_quad_to(path C.vc_path, p0, p1 C.vc_point) { vc_quad_to(path, p0, p1) }

//export sp_cubic_to
func sp_cubic_to(path C.vc_path, p0, p1, p2 C.vc_point) { vc_cubic_to(path, p0, p1, p2) }

//export sp_close
func sp_close(path C.vc_path) { vc_close(path) }

//export sp_rounded_rect
func sp_rounded_rect(r C.vc_rect, radius C.double) C.vc_path { return vc_rounded_rect(r, radius) }

//export sp_path_destroy
func sp_path_destroy(path C.vc_path) { vc_path_destroy(path) }

// sp_context_create renders on the calling thread.
//
//export sp_context_create
func sp_context_create(width, height C.uint32_t) C.vc_context {
	return vc_context_create(width, height, 0)
}

//export sp_context_destroy
func sp_context_destroy(ctx C.vc_context) { vc_context_destroy(ctx) }

//export sp_pixmap_create
func sp_pixmap_create(width, height C.uint32_t) C.vc_pixmap { return vc_pixmap_create(width, height) }

//export sp_pixmap_destroy
func sp_pixmap_destroy(pixmap C.vc_pixmap) { vc_pixmap_destroy(pixmap) }

//export sp_render_to_pixmap
func sp_render_to_pixmap(pixmap C.vc_pixmap, ctx C.vc_context) { vc_render_to_pixmap(pixmap, ctx) }

//export sp_set_transform
func sp_set_transform(ctx C.vc_context, t C.vc_transform) { vc_set_transform(ctx, t) }

//export sp_set_fill_rule
func sp_set_fill_rule(ctx C.vc_context, rule C.vc_fill_rule) { vc_set_fill_rule(ctx, rule) }

//export sp_set_paint
func sp_set_paint(ctx C.vc_context, p C.sp_paint) {
	if p.tag != 0 {
		panic(fmt.Errorf("%w: sp_paint tag %d", capi.ErrInvalidPaint, uint32(p.tag)))
	}
	capi.SetPaint(capi.Context(ctx), capi.ColorPaint(color(p.color)))
}

//export sp_set_stroke
func sp_set_stroke(ctx C.vc_context, s C.vc_stroke) { vc_set_stroke(ctx, s) }

//export sp_fill_path
func sp_fill_path(ctx C.vc_context, path C.vc_path) { vc_fill_path(ctx, path) }

//export sp_stroke_path
func sp_stroke_path(ctx C.vc_context, path C.vc_path) { vc_stroke_path(ctx, path) }

//export sp_fill_rect
func sp_fill_rect(ctx C.vc_context, r C.vc_rect) { vc_fill_rect(ctx, r) }

//export sp_stroke_rect
func sp_stroke_rect(ctx C.vc_context, r C.vc_rect) { vc_stroke_rect(ctx, r) }

//export sp_data
func sp_data(pixmap C.vc_pixmap) C.vc_argb { return vc_data(pixmap) }

//export sp_argb_data
func sp_argb_data(data C.vc_argb) *C.uint8_t { return vc_argb_data(data) }

//export sp_argb_destroy
func sp_argb_destroy(data C.vc_argb) { vc_argb_destroy(data) }

