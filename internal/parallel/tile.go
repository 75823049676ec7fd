// Package parallel provides the tile grid and worker pool used to render a
// canvas in independent 64x64 pieces.
//
// Each tile owns a premultiplied float32 RGBA accumulator, so tiles can be
// rendered concurrently without sharing any mutable state.
//
// Thread safety: TileGrid is NOT thread-safe. Distinct tiles may be used
// from different goroutines at the same time.
package parallel

// Tile size constants.
const (
	// TileWidth is the width of a tile in pixels.
	TileWidth = 64

	// TileHeight is the height of a tile in pixels.
	TileHeight = 64

	// TilePixels is the number of pixels in a full tile.
	TilePixels = TileWidth * TileHeight
)

// Tile is a rectangular region of the canvas that renders independently.
// Edge tiles are smaller when the canvas is not a multiple of the tile size.
type Tile struct {
	// X and Y are the tile column and row (0-based).
	X, Y int

	// Width and Height are the actual pixel dimensions of the tile.
	Width, Height int

	// Color is the premultiplied RGBA accumulator, 4 floats per pixel.
	Color []float32

	// Coverage is per-pixel scratch space for the rasterizer.
	Coverage []float32

	// Commands lists the indices of the draw commands touching this tile,
	// in issue order.
	Commands []int
}

func newTile(x, y, w, h int) *Tile {
	return &Tile{
		X:        x,
		Y:        y,
		Width:    w,
		Height:   h,
		Color:    make([]float32, w*h*4),
		Coverage: make([]float32, w*h),
	}
}

// Clear resets the accumulator to transparent.
func (t *Tile) Clear() {
	clear(t.Color)
}

// Bounds returns the pixel bounds of this tile in canvas space.
// Returns (x, y, width, height) where x,y is the top-left corner.
func (t *Tile) Bounds() (x, y, w, h int) {
	return t.X * TileWidth, t.Y * TileHeight, t.Width, t.Height
}

// PixelOffset returns the index into Color of the tile-local pixel (px, py),
// or -1 if it lies outside the tile.
func (t *Tile) PixelOffset(px, py int) int {
	if px < 0 || px >= t.Width || py < 0 || py >= t.Height {
		return -1
	}
	return (py*t.Width + px) * 4
}
