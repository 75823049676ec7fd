package capi

import (
	"github.com/gogpu/vc"
	"github.com/gogpu/vc/internal/handle"
)

// PixmapCreate returns a handle to a new transparent pixmap.
func PixmapCreate(width, height uint32) Pixmap {
	return Pixmap(insert(pixmaps, vc.NewPixmap(width, height)))
}

func (p Pixmap) get() *vc.Pixmap { return pixmaps.Get(handle.Handle(p)) }

// PixmapDestroy releases the pixmap.
func PixmapDestroy(p Pixmap) { remove(pixmaps, handle.Handle(p)).Destroy() }

// PixmapFromData copies width*height*4 bytes of premultiplied RGBA8 data
// into new shared pixel data and returns a handle to one reference to it.
// It returns the zero handle if data has the wrong length.
func PixmapFromData(data []byte, width, height uint32) SharedPixmap {
	sp, err := vc.PixmapFromData(data, width, height)
	if err != nil {
		vc.Logger().Warn("vc: pixmap_from_data rejected", "err", err)
		return 0
	}
	return SharedPixmap(insert(sharedPixmaps, sp))
}

func (s SharedPixmap) get() *vc.SharedPixmap { return sharedPixmaps.Get(handle.Handle(s)) }

// SharedPixmapDestroy drops this handle's reference. Images created from it
// keep the pixel data alive.
func SharedPixmapDestroy(s SharedPixmap) { remove(sharedPixmaps, handle.Handle(s)).Destroy() }

// Data returns a handle to a snapshot of pm with bytes 0 and 2 of every
// pixel swapped.
func Data(pm Pixmap) ARGB { return ARGB(insert(argbs, vc.NewARGB(pm.get()))) }

// ARGBData returns the snapshot's bytes. The slice stays valid until
// ARGBDestroy and must not be modified.
func ARGBData(a ARGB) []byte { return argbs.Get(handle.Handle(a)).Bytes() }

// ARGBDestroy releases the snapshot.
func ARGBDestroy(a ARGB) { remove(argbs, handle.Handle(a)).Destroy() }
