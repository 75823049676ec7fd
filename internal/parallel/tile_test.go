package parallel

import "testing"

// =============================================================================
// TileGrid Tests
// =============================================================================

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		tilesX, tilesY int
	}{
		{"exact", 128, 128, 2, 2},
		{"partial", 100, 50, 2, 1},
		{"single pixel", 1, 1, 1, 1},
		{"zero width", 0, 10, 0, 0},
		{"negative", -5, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewTileGrid(tt.width, tt.height)
			if tt.tilesX > 0 && g.TileAt(tt.tilesX-1, tt.tilesY-1) == nil {
				t.Errorf("TileAt(%d, %d) = nil, want last tile", tt.tilesX-1, tt.tilesY-1)
			}
			if g.TileAt(tt.tilesX, 0) != nil || g.TileAt(0, tt.tilesY) != nil {
				t.Errorf("grid is larger than %dx%d tiles", tt.tilesX, tt.tilesY)
			}
			if g.TileCount() != tt.tilesX*tt.tilesY {
				t.Errorf("TileCount() = %d, want %d", g.TileCount(), tt.tilesX*tt.tilesY)
			}
		})
	}
}

func TestTileGrid_EdgeTiles(t *testing.T) {
	g := NewTileGrid(100, 70)

	edge := g.TileAt(1, 1)
	if edge == nil {
		t.Fatal("TileAt(1, 1) = nil")
	}
	x, y, w, h := edge.Bounds()
	if x != 64 || y != 64 || w != 36 || h != 6 {
		t.Errorf("Bounds() = (%d, %d, %d, %d), want (64, 64, 36, 6)", x, y, w, h)
	}
	if len(edge.Color) != 36*6*4 || len(edge.Coverage) != 36*6 {
		t.Errorf("buffer sizes = %d/%d, want %d/%d", len(edge.Color), len(edge.Coverage), 36*6*4, 36*6)
	}

	covered := 0
	for _, tile := range g.AllTiles() {
		covered += tile.Width * tile.Height
	}
	if covered != 100*70 {
		t.Errorf("tiles cover %d pixels, want %d", covered, 100*70)
	}
}

func TestTileGrid_TileAtOutOfBounds(t *testing.T) {
	g := NewTileGrid(128, 128)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if g.TileAt(c[0], c[1]) != nil {
			t.Errorf("TileAt(%d, %d) should be nil", c[0], c[1])
		}
	}
}

func TestTileGrid_TileRange(t *testing.T) {
	g := NewTileGrid(200, 130)

	tests := []struct {
		name               string
		x0, y0, x1, y1     float64
		tx0, ty0, tx1, ty1 int
		ok                 bool
	}{
		{"whole canvas", 0, 0, 200, 130, 0, 0, 3, 2, true},
		{"inside one tile", 10, 10, 20, 20, 0, 0, 0, 0, true},
		{"crosses boundary", 60.5, 10, 64.5, 70, 0, 0, 1, 1, true},
		{"ends on boundary", 0, 0, 64, 64, 0, 0, 0, 0, true},
		{"clamped", -50, -50, 1000, 1000, 0, 0, 3, 2, true},
		{"huge", -1e300, -1e300, 1e300, 1e300, 0, 0, 3, 2, true},
		{"left of canvas", -20, 0, -1, 10, 0, 0, 0, 0, false},
		{"below canvas", 0, 130, 10, 140, 0, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx0, ty0, tx1, ty1, ok := g.TileRange(tt.x0, tt.y0, tt.x1, tt.y1)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if tx0 != tt.tx0 || ty0 != tt.ty0 || tx1 != tt.tx1 || ty1 != tt.ty1 {
				t.Errorf("range = (%d,%d)-(%d,%d), want (%d,%d)-(%d,%d)",
					tx0, ty0, tx1, ty1, tt.tx0, tt.ty0, tt.tx1, tt.ty1)
			}
		})
	}
}

func TestTileGrid_ResetCommands(t *testing.T) {
	g := NewTileGrid(128, 64)
	for _, tile := range g.AllTiles() {
		tile.Commands = append(tile.Commands, 1, 2)
	}
	g.ResetCommands()
	for _, tile := range g.AllTiles() {
		if len(tile.Commands) != 0 {
			t.Errorf("tile (%d,%d) still has %d commands", tile.X, tile.Y, len(tile.Commands))
		}
	}
}

// =============================================================================
// Tile Tests
// =============================================================================

func TestTile_PixelOffset(t *testing.T) {
	tile := newTile(0, 0, 10, 5)

	tests := []struct {
		px, py int
		want   int
	}{
		{0, 0, 0},
		{1, 0, 4},
		{0, 1, 40},
		{9, 4, (4*10 + 9) * 4},
		{10, 0, -1},
		{0, 5, -1},
		{-1, 0, -1},
	}
	for _, tt := range tests {
		if got := tile.PixelOffset(tt.px, tt.py); got != tt.want {
			t.Errorf("PixelOffset(%d, %d) = %d, want %d", tt.px, tt.py, got, tt.want)
		}
	}
}

func TestTile_Clear(t *testing.T) {
	tile := newTile(0, 0, 4, 4)
	for i := range tile.Color {
		tile.Color[i] = 1
	}
	tile.Clear()
	for i, v := range tile.Color {
		if v != 0 {
			t.Fatalf("Color[%d] = %v after Clear, want 0", i, v)
		}
	}
}
