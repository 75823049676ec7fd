package raster

// Point represents a 2D point in device space.
type Point struct {
	X, Y float64
}

// Edge is a non-horizontal line segment, normalized so that y0 < y1.
type Edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // change in x per unit of y
	dir    int     // +1 if the segment pointed downward before normalization, -1 otherwise
}

// NewEdge creates an edge from p0 to p1. It reports false for horizontal
// segments, which never cross a sample row.
func NewEdge(p0, p1 Point) (Edge, bool) {
	if p0.Y == p1.Y {
		return Edge{}, false
	}

	// Direction is taken before the swap so that winding follows the
	// original orientation.
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}

	return Edge{
		x0:   p0.X,
		y0:   p0.Y,
		x1:   p1.X,
		y1:   p1.Y,
		dxdy: (p1.X - p0.X) / (p1.Y - p0.Y),
		dir:  dir,
	}, true
}

// XAtY returns the x coordinate of the edge at y.
func (e *Edge) XAtY(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dxdy
}

// YMin returns the top of the edge.
func (e *Edge) YMin() float64 { return e.y0 }

// YMax returns the bottom of the edge.
func (e *Edge) YMax() float64 { return e.y1 }

// Dir returns the winding direction of the edge.
func (e *Edge) Dir() int { return e.dir }

// Bounds returns the bounding box of the edge.
func (e *Edge) Bounds() (x0, y0, x1, y1 float64) {
	return min(e.x0, e.x1), e.y0, max(e.x0, e.x1), e.y1
}

// EdgeBuilder turns a polyline stream into edges.
// Open subpaths are closed implicitly, as fills require.
type EdgeBuilder struct {
	edges []Edge
	start Point
	cur   Point
	open  bool
}

// MoveTo starts a new subpath, closing the current one.
func (b *EdgeBuilder) MoveTo(p Point) {
	b.Close()
	b.start = p
	b.cur = p
	b.open = true
}

// LineTo adds a segment from the current point to p.
func (b *EdgeBuilder) LineTo(p Point) {
	if !b.open {
		b.MoveTo(b.cur)
	}
	if e, ok := NewEdge(b.cur, p); ok {
		b.edges = append(b.edges, e)
	}
	b.cur = p
}

// Close closes the current subpath back to its start.
func (b *EdgeBuilder) Close() {
	if !b.open {
		return
	}
	if b.cur != b.start {
		if e, ok := NewEdge(b.cur, b.start); ok {
			b.edges = append(b.edges, e)
		}
	}
	b.cur = b.start
	b.open = false
}

// Edges closes any open subpath and returns the accumulated edges.
func (b *EdgeBuilder) Edges() []Edge {
	b.Close()
	return b.edges
}
