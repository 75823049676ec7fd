// Command libvc builds the vc C library.
//
//	go build -buildmode=c-shared -o libvc.so ./cmd/libvc
//	go build -buildmode=c-archive -o libvc.a ./cmd/libvc
//
// The exported functions and types are declared in vc.h. Each export is a
// thin conversion onto the capi package. A contract violation (invalid
// handle, size mismatch) panics, which aborts the host process with a Go
// stack trace.
//
// Set VC_LOG=debug (or info, warn) to log to stderr.
package main

/*
#define VC_BUILDING_LIBRARY
#include <stdlib.h>
#include "vc.h"
*/
import "C"

import (
	"log/slog"
	"os"
	"sync"
	"unsafe"

	"github.com/gogpu/vc"
	"github.com/gogpu/vc/capi"
)

func init() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv("VC_LOG"))); err != nil {
		return
	}
	vc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {}

func point(p C.vc_point) vc.Point { return vc.Pt(float64(p.x), float64(p.y)) }

func rect(r C.vc_rect) vc.Rect {
	return vc.Rect{X0: float64(r.x0), Y0: float64(r.y0), X1: float64(r.x1), Y1: float64(r.y1)}
}

func color(c C.vc_color) vc.Color {
	return vc.Color{R: uint8(c.r), G: uint8(c.g), B: uint8(c.b), A: uint8(c.a)}
}

func transform(t C.vc_transform) vc.Transform {
	return vc.Transform{
		SX: float64(t.sx), KX: float64(t.kx),
		KY: float64(t.ky), SY: float64(t.sy),
		TX: float64(t.tx), TY: float64(t.ty),
	}
}

func cTransform(t vc.Transform) C.vc_transform {
	return C.vc_transform{
		sx: C.double(t.SX), kx: C.double(t.KX),
		ky: C.double(t.KY), sy: C.double(t.SY),
		tx: C.double(t.TX), ty: C.double(t.TY),
	}
}

func stop(s C.vc_gradient_stop) vc.GradientStop {
	return vc.GradientStop{Offset: float64(s.offset), Color: color(s.color)}
}

// argbBuffers holds the C copies handed out by vc_argb_data. Go memory
// cannot be retained by C, so each snapshot is copied once on first access
// and freed with its handle.
var argbBuffers = struct {
	sync.Mutex
	m map[capi.ARGB]unsafe.Pointer
}{m: make(map[capi.ARGB]unsafe.Pointer)}

func argbData(a capi.ARGB) *C.uint8_t {
	argbBuffers.Lock()
	defer argbBuffers.Unlock()
	p, ok := argbBuffers.m[a]
	if !ok {
		b := capi.ARGBData(a)
		if len(b) == 0 {
			return nil
		}
		p = C.CBytes(b)
		argbBuffers.m[a] = p
	}
	return (*C.uint8_t)(p)
}

func argbDestroy(a capi.ARGB) {
	capi.ARGBDestroy(a)
	argbBuffers.Lock()
	p, ok := argbBuffers.m[a]
	delete(argbBuffers.m, a)
	argbBuffers.Unlock()
	if ok {
		C.free(p)
	}
}
