package raster

import "testing"

func TestNewEdge(t *testing.T) {
	tests := []struct {
		name       string
		p0, p1     Point
		wantOK     bool
		wantYMin   float64
		wantYMax   float64
		wantDir    int
		wantXAtMid float64
	}{
		{"downward", Point{0, 0}, Point{10, 10}, true, 0, 10, 1, 5},
		{"upward normalized", Point{10, 10}, Point{0, 0}, true, 0, 10, -1, 5},
		{"vertical", Point{5, 0}, Point{5, 20}, true, 0, 20, 1, 5},
		{"horizontal", Point{0, 5}, Point{10, 5}, false, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := NewEdge(tt.p0, tt.p1)
			if ok != tt.wantOK {
				t.Fatalf("NewEdge ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if e.YMin() != tt.wantYMin || e.YMax() != tt.wantYMax {
				t.Errorf("y range = [%v, %v], want [%v, %v]", e.YMin(), e.YMax(), tt.wantYMin, tt.wantYMax)
			}
			if e.Dir() != tt.wantDir {
				t.Errorf("Dir() = %d, want %d", e.Dir(), tt.wantDir)
			}
			mid := (tt.wantYMin + tt.wantYMax) / 2
			if got := e.XAtY(mid); got != tt.wantXAtMid {
				t.Errorf("XAtY(%v) = %v, want %v", mid, got, tt.wantXAtMid)
			}
		})
	}
}

func TestEdgeBuilder_ClosesImplicitly(t *testing.T) {
	var b EdgeBuilder
	b.MoveTo(Point{0, 0})
	b.LineTo(Point{10, 0})
	b.LineTo(Point{10, 10})
	b.LineTo(Point{0, 10})

	edges := b.Edges()
	// The top and bottom sides are horizontal; the closing edge is added.
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(edges))
	}
	sum := 0
	for _, e := range edges {
		sum += e.Dir()
	}
	if sum != 0 {
		t.Errorf("winding directions sum to %d, want 0", sum)
	}
}

func TestEdgeBuilder_MultipleSubpaths(t *testing.T) {
	var b EdgeBuilder
	for _, off := range []float64{0, 20} {
		b.MoveTo(Point{off, 0})
		b.LineTo(Point{off + 5, 10})
		b.LineTo(Point{off, 10})
		b.Close()
	}
	if got := len(b.Edges()); got != 4 {
		t.Errorf("got %d edges, want 4", got)
	}
}

func TestEdgeBuilder_LineToWithoutMoveTo(t *testing.T) {
	var b EdgeBuilder
	b.LineTo(Point{0, 10})
	b.LineTo(Point{10, 10})
	if got := len(b.Edges()); got != 2 {
		t.Errorf("got %d edges, want 2", got)
	}
}
