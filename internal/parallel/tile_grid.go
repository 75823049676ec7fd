package parallel

import "math"

// TileGrid divides a canvas into 64x64 tiles.
//
// Tiles are stored in a flat slice in row-major order:
// index = ty * tilesX + tx.
type TileGrid struct {
	tiles  []*Tile
	tilesX int
	tilesY int
	width  int
	height int
}

// NewTileGrid creates a tile grid covering a width × height canvas.
// A canvas with a zero dimension has no tiles.
func NewTileGrid(width, height int) *TileGrid {
	g := &TileGrid{width: max(width, 0), height: max(height, 0)}
	if g.width == 0 || g.height == 0 {
		return g
	}

	g.tilesX = (g.width + TileWidth - 1) / TileWidth
	g.tilesY = (g.height + TileHeight - 1) / TileHeight
	g.tiles = make([]*Tile, 0, g.tilesX*g.tilesY)
	for ty := range g.tilesY {
		for tx := range g.tilesX {
			w := min(TileWidth, g.width-tx*TileWidth)
			h := min(TileHeight, g.height-ty*TileHeight)
			g.tiles = append(g.tiles, newTile(tx, ty, w, h))
		}
	}
	return g
}

// TileAt returns the tile at tile coordinates (tx, ty).
// Returns nil if coordinates are out of bounds.
func (g *TileGrid) TileAt(tx, ty int) *Tile {
	if tx < 0 || tx >= g.tilesX || ty < 0 || ty >= g.tilesY {
		return nil
	}
	return g.tiles[ty*g.tilesX+tx]
}

// TileRange returns the inclusive range of tile coordinates overlapped by
// the canvas-space box [x0, x1) × [y0, y1). ok is false when the box misses
// the canvas entirely.
func (g *TileGrid) TileRange(x0, y0, x1, y1 float64) (tx0, ty0, tx1, ty1 int, ok bool) {
	if len(g.tiles) == 0 || !(x1 > 0 && y1 > 0 && x0 < float64(g.width) && y0 < float64(g.height)) {
		return 0, 0, 0, 0, false
	}
	// Clamp before converting: out-of-range float to int is undefined.
	px0 := int(math.Floor(max(x0, 0)))
	py0 := int(math.Floor(max(y0, 0)))
	px1 := int(math.Ceil(min(x1, float64(g.width))))
	py1 := int(math.Ceil(min(y1, float64(g.height))))
	if px0 >= px1 || py0 >= py1 {
		return 0, 0, 0, 0, false
	}
	return px0 / TileWidth, py0 / TileHeight, (px1 - 1) / TileWidth, (py1 - 1) / TileHeight, true
}

// ResetCommands empties the command bins of every tile.
func (g *TileGrid) ResetCommands() {
	for _, t := range g.tiles {
		t.Commands = t.Commands[:0]
	}
}

// TileCount returns the total number of tiles in the grid.
func (g *TileGrid) TileCount() int {
	return len(g.tiles)
}

// Width returns the canvas width in pixels.
func (g *TileGrid) Width() int {
	return g.width
}

// Height returns the canvas height in pixels.
func (g *TileGrid) Height() int {
	return g.height
}

// AllTiles returns all tiles in the grid.
// The returned slice should not be modified.
func (g *TileGrid) AllTiles() []*Tile {
	return g.tiles
}
