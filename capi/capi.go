// Package capi is the flat, handle-based surface of vc.
//
// Every object crosses this surface as a nonzero integer handle instead of
// a pointer, and every entry point mirrors one function of the C ABI
// exported by cmd/libvc (vc_path_create is PathCreate, vc_fill_rect is
// FillRect, and so on). Value types (points, rectangles, transforms,
// colors, stops) are passed by value using the vc package's structs, which
// share the C layout.
//
// Handles are checked on every call. Passing the zero handle, a destroyed
// handle, or a handle of another kind panics with an error wrapping
// handle.ErrInvalidHandle. Destroying a handle twice is detected the same
// way.
//
// Ownership: each Create, FromData, RoundedRect and Data call returns a
// handle owned by the caller, which must be released exactly once with the
// matching Destroy. Passing a handle to any other function never transfers
// ownership.
//
// The handle tables are safe for concurrent use. The objects behind them
// are not: a single context, path or gradient must not be used from two
// goroutines at once.
package capi

import (
	"errors"
	"maps"

	"github.com/gogpu/vc"
	"github.com/gogpu/vc/internal/handle"
)

// Handle types. The zero value of each is never a live handle.
type (
	// Path is a handle to a *vc.Path.
	Path handle.Handle
	// Context is a handle to a *vc.Context.
	Context handle.Handle
	// Pixmap is a handle to an exclusively owned *vc.Pixmap.
	Pixmap handle.Handle
	// SharedPixmap is a handle to one reference of shared pixel data.
	SharedPixmap handle.Handle
	// ARGB is a handle to an extracted output snapshot.
	ARGB handle.Handle
	// LinearGradient is a handle to a *vc.LinearGradient.
	LinearGradient handle.Handle
	// RadialGradient is a handle to a *vc.RadialGradient.
	RadialGradient handle.Handle
	// SweepGradient is a handle to a *vc.SweepGradient.
	SweepGradient handle.Handle
	// Image is a handle to a *vc.Image.
	Image handle.Handle
)

// ErrInvalidPaint is wrapped by the panic raised for a Paint with an
// unknown tag.
var ErrInvalidPaint = errors.New("vc: invalid paint tag")

var (
	paths           = handle.NewTable[*vc.Path]("path")
	contexts        = handle.NewTable[*vc.Context]("context")
	pixmaps         = handle.NewTable[*vc.Pixmap]("pixmap")
	sharedPixmaps   = handle.NewTable[*vc.SharedPixmap]("shared pixmap")
	argbs           = handle.NewTable[*vc.ARGB]("argb")
	linearGradients = handle.NewTable[*vc.LinearGradient]("linear gradient")
	radialGradients = handle.NewTable[*vc.RadialGradient]("radial gradient")
	sweepGradients  = handle.NewTable[*vc.SweepGradient]("sweep gradient")
	images          = handle.NewTable[*vc.Image]("image")
)

type table interface {
	Kind() string
	Len() int
}

var tables = []table{
	paths, contexts, pixmaps, sharedPixmaps, argbs,
	linearGradients, radialGradients, sweepGradients, images,
}

// insert stores v and logs the new handle.
func insert[T any](t *handle.Table[T], v T) handle.Handle {
	h := t.Insert(v)
	vc.Logger().Debug("vc: handle created", "kind", t.Kind(), "handle", uintptr(h))
	return h
}

// remove deletes h, panicking if it is not live, and logs the release.
func remove[T any](t *handle.Table[T], h handle.Handle) T {
	v := t.Remove(h)
	vc.Logger().Debug("vc: handle destroyed", "kind", t.Kind(), "handle", uintptr(h))
	return v
}

// LiveHandles returns the number of live handles per object kind. Kinds
// without live handles are omitted, so an empty map means nothing leaked.
func LiveHandles() map[string]int {
	live := make(map[string]int)
	for _, t := range tables {
		if n := t.Len(); n > 0 {
			live[t.Kind()] = n
		}
	}
	return live
}

// TotalLive returns the total number of live handles of all kinds.
func TotalLive() int {
	n := 0
	for v := range maps.Values(LiveHandles()) {
		n += v
	}
	return n
}
