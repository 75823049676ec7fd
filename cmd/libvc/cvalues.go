package main

/*
#define VC_BUILDING_LIBRARY
#include <stdlib.h>
#include "vc.h"
*/
import "C"

import (
	"unsafe"

	"github.com/gogpu/vc"
	"github.com/gogpu/vc/capi"
)

// Constructors for C values, so that Go callers of the exported functions
// (the package tests among them) never have to name a C type.

func cPoint(p vc.Point) C.vc_point { return C.vc_point{x: C.double(p.X), y: C.double(p.Y)} }

func cRect(r vc.Rect) C.vc_rect {
	return C.vc_rect{x0: C.double(r.X0), y0: C.double(r.Y0), x1: C.double(r.X1), y1: C.double(r.Y1)}
}

func cColor(c vc.Color) C.vc_color {
	return C.vc_color{r: C.uint8_t(c.R), g: C.uint8_t(c.G), b: C.uint8_t(c.B), a: C.uint8_t(c.A)}
}

func cStroke(width float64) C.vc_stroke { return C.vc_stroke{width: C.double(width)} }

func cStop(s vc.GradientStop) C.vc_gradient_stop {
	return C.vc_gradient_stop{offset: C.double(s.Offset), color: cColor(s.Color)}
}

func cPaint(tag capi.PaintTag, c vc.Color, h uintptr) C.vc_paint {
	return C.vc_paint{tag: C.vc_paint_tag(tag), color: cColor(c), handle: C.uintptr_t(h)}
}

func cLegacyPaint(tag uint32, c vc.Color) C.sp_paint {
	return C.sp_paint{tag: C.uint32_t(tag), color: cColor(c)}
}

// cBytes copies b into C memory, to be released with cFree.
func cBytes(b []byte) *C.uint8_t { return (*C.uint8_t)(C.CBytes(b)) }

func cFree(p *C.uint8_t) { C.free(unsafe.Pointer(p)) }

// goBytes copies n bytes of C memory starting at p.
func goBytes(p *C.uint8_t, n int) []byte { return C.GoBytes(unsafe.Pointer(p), C.int(n)) }

// argbBufferCount returns the number of snapshots copied into C memory
// and not yet destroyed.
func argbBufferCount() int {
	argbBuffers.Lock()
	defer argbBuffers.Unlock()
	return len(argbBuffers.m)
}
