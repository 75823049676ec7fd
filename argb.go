package vc

// ARGB is a snapshot of a pixmap with the first and third byte of every
// pixel swapped, turning premultiplied R, G, B, A into B, G, R, A. This is
// the layout of a little-endian 0xAARRGGBB word, as expected by most
// windowing systems.
type ARGB struct {
	data     []byte
	width    int
	height   int
	released bool
}

// NewARGB copies pm into a new snapshot. Later renders into pm do not
// affect it.
func NewARGB(pm *Pixmap) *ARGB {
	src := pm.live()
	in := src.DataAsU8()
	out := make([]byte, len(in))
	for i := 0; i+3 < len(in); i += 4 {
		out[i+0] = in[i+2]
		out[i+1] = in[i+1]
		out[i+2] = in[i+0]
		out[i+3] = in[i+3]
	}
	return &ARGB{data: out, width: int(src.Width()), height: int(src.Height())}
}

func (a *ARGB) live() *ARGB {
	checkNil(a, "argb")
	if a.released {
		violation(ErrReleased, "argb")
	}
	return a
}

// Bytes returns the snapshot, four bytes per pixel, rows top to bottom.
// The slice must not be modified.
func (a *ARGB) Bytes() []byte { return a.live().data }

// Width returns the width in pixels.
func (a *ARGB) Width() int { return a.live().width }

// Height returns the height in pixels.
func (a *ARGB) Height() int { return a.live().height }

// Destroy frees the snapshot.
func (a *ARGB) Destroy() {
	a.live()
	a.released = true
	a.data = nil
}
