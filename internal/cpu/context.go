package cpu

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"sync"

	"honnef.co/go/curve"

	"github.com/gogpu/vc/internal/parallel"
	"github.com/gogpu/vc/internal/raster"
)

// ErrDimensionMismatch is the panic value, wrapped, when a context renders
// into a pixmap of a different size.
var ErrDimensionMismatch = errors.New("vc: pixmap size does not match render context")

// DefaultTolerance is the default curve flattening tolerance in pixels.
const DefaultTolerance = 0.25

// FillRule selects how path interiors are determined.
type FillRule uint8

const (
	// NonZero fills where the winding number is not zero.
	NonZero FillRule = iota
	// EvenOdd fills where the winding number is odd.
	EvenOdd
)

// RenderMode trades speed for antialiasing quality.
type RenderMode uint8

const (
	// OptimizeSpeed samples 4 sub-scanlines per pixel row.
	OptimizeSpeed RenderMode = iota
	// OptimizeQuality samples 16 sub-scanlines per pixel row.
	OptimizeQuality
)

func (m RenderMode) samples() int {
	if m == OptimizeQuality {
		return 16
	}
	return 4
}

// RenderSettings configures a RenderContext.
type RenderSettings struct {
	// NumThreads is the number of worker goroutines used by RenderToPixmap.
	// Zero renders on the calling goroutine.
	NumThreads uint16
	RenderMode RenderMode
	// Tolerance is the curve flattening tolerance; zero means DefaultTolerance.
	Tolerance float64
}

type command struct {
	edges  []raster.Edge
	rule   raster.FillRule
	shader shader
	// device-space bounding box of edges
	x0, y0, x1, y1 float64
}

// RenderContext records drawing commands for a fixed-size surface.
//
// A RenderContext is not safe for concurrent use. Rendering is parallel
// internally when NumThreads > 0.
type RenderContext struct {
	width, height uint16
	settings      RenderSettings

	transform      curve.Affine
	paintTransform curve.Affine
	fillRule       FillRule
	paint          Paint
	stroke         curve.Stroke

	commands []command
	binned   int
	grid     *parallel.TileGrid
	pool     *parallel.WorkerPool

	rasterizers sync.Pool
}

// DefaultStroke is the stroke a new context starts with: width 1, bevel
// joins, butt caps.
var DefaultStroke = curve.Stroke{
	Width:      1,
	Join:       curve.BevelJoin,
	MiterLimit: 4,
	StartCap:   curve.ButtCap,
	EndCap:     curve.ButtCap,
}

// NewRenderContext creates a context for a width × height surface.
func NewRenderContext(width, height uint16, settings RenderSettings) *RenderContext {
	if settings.Tolerance <= 0 {
		settings.Tolerance = DefaultTolerance
	}
	ctx := &RenderContext{
		width:          width,
		height:         height,
		settings:       settings,
		transform:      curve.Identity,
		paintTransform: curve.Identity,
		fillRule:       NonZero,
		paint:          AlphaColor{A: 1},
		stroke:         DefaultStroke,
		grid:           parallel.NewTileGrid(int(width), int(height)),
	}
	samples := settings.RenderMode.samples()
	ctx.rasterizers.New = func() any { return raster.NewRasterizer(samples) }
	if settings.NumThreads > 0 {
		ctx.pool = parallel.NewWorkerPool(int(settings.NumThreads))
	}
	return ctx
}

// Width returns the surface width.
func (ctx *RenderContext) Width() uint16 { return ctx.width }

// Height returns the surface height.
func (ctx *RenderContext) Height() uint16 { return ctx.height }

// Settings returns the settings the context was created with.
func (ctx *RenderContext) Settings() RenderSettings { return ctx.settings }

// Threads returns the number of render workers, 0 if rendering is inline.
func (ctx *RenderContext) Threads() int {
	if ctx.pool == nil {
		return 0
	}
	return ctx.pool.Workers()
}

// SetTransform sets the user-to-device transform for subsequent draws.
func (ctx *RenderContext) SetTransform(t curve.Affine) { ctx.transform = t }

// Transform returns the current transform.
func (ctx *RenderContext) Transform() curve.Affine { return ctx.transform }

// SetPaintTransform sets the paint-to-user transform for subsequent draws.
func (ctx *RenderContext) SetPaintTransform(t curve.Affine) { ctx.paintTransform = t }

// ResetPaintTransform restores the identity paint transform.
func (ctx *RenderContext) ResetPaintTransform() { ctx.paintTransform = curve.Identity }

// PaintTransform returns the current paint transform.
func (ctx *RenderContext) PaintTransform() curve.Affine { return ctx.paintTransform }

// SetFillRule sets the fill rule for subsequent fills.
func (ctx *RenderContext) SetFillRule(r FillRule) { ctx.fillRule = r }

// FillRule returns the current fill rule.
func (ctx *RenderContext) FillRule() FillRule { return ctx.fillRule }

// SetPaint sets the paint for subsequent draws. The paint is retained by
// every command recorded while it is current.
func (ctx *RenderContext) SetPaint(p Paint) { ctx.paint = p }

// Paint returns the current paint.
func (ctx *RenderContext) Paint() Paint { return ctx.paint }

// SetStroke sets the stroke style for subsequent strokes.
func (ctx *RenderContext) SetStroke(s curve.Stroke) { ctx.stroke = s }

// Stroke returns the current stroke style.
func (ctx *RenderContext) Stroke() curve.Stroke { return ctx.stroke }

// Commands returns the number of recorded commands.
func (ctx *RenderContext) Commands() int { return len(ctx.commands) }

// FillPath records a fill of path.
func (ctx *RenderContext) FillPath(path curve.BezPath) {
	ctx.fill(path.Elements(), rasterRule(ctx.fillRule))
}

// FillRect records a fill of r.
func (ctx *RenderContext) FillRect(r curve.Rect) {
	ctx.fill(r.PathElements(ctx.settings.Tolerance), rasterRule(ctx.fillRule))
}

// StrokePath records a stroke of path.
func (ctx *RenderContext) StrokePath(path curve.BezPath) {
	ctx.strokeElements(path.Elements())
}

// StrokeRect records a stroke of the outline of r.
func (ctx *RenderContext) StrokeRect(r curve.Rect) {
	ctx.strokeElements(r.PathElements(ctx.settings.Tolerance))
}

func (ctx *RenderContext) strokeElements(els iter.Seq[curve.PathElement]) {
	// Expansion happens in user space, so the tolerance is scaled to keep
	// the device-space error within bounds.
	tol := ctx.settings.Tolerance
	if scale := math.Sqrt(math.Abs(ctx.transform.Determinant())); scale > 1e-9 {
		tol /= scale
	}
	outline := curve.StrokePath(els, ctx.stroke, curve.StrokeOpts{}, tol)
	ctx.fill(outline, raster.FillRuleNonZero)
}

func (ctx *RenderContext) fill(els iter.Seq[curve.PathElement], rule raster.FillRule) {
	device := curve.Transform(els, ctx.transform)

	var b raster.EdgeBuilder
	for el := range curve.Flatten(device, ctx.settings.Tolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			b.MoveTo(raster.Point{X: el.P0.X, Y: el.P0.Y})
		case curve.LineToKind:
			b.LineTo(raster.Point{X: el.P0.X, Y: el.P0.Y})
		case curve.ClosePathKind:
			b.Close()
		}
	}
	edges := b.Edges()
	if len(edges) == 0 {
		return
	}

	cmd := command{
		edges:  edges,
		rule:   rule,
		shader: newShader(ctx.paint, ctx.transform.Mul(ctx.paintTransform)),
		x0:     math.Inf(1),
		y0:     math.Inf(1),
		x1:     math.Inf(-1),
		y1:     math.Inf(-1),
	}
	for i := range edges {
		ex0, ey0, ex1, ey1 := edges[i].Bounds()
		cmd.x0 = min(cmd.x0, ex0)
		cmd.y0 = min(cmd.y0, ey0)
		cmd.x1 = max(cmd.x1, ex1)
		cmd.y1 = max(cmd.y1, ey1)
	}
	ctx.commands = append(ctx.commands, cmd)
}

func rasterRule(r FillRule) raster.FillRule {
	if r == EvenOdd {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}

// Reset discards all recorded commands. The transform, paint, stroke and
// fill rule are kept.
func (ctx *RenderContext) Reset() {
	clear(ctx.commands)
	ctx.commands = ctx.commands[:0]
	ctx.binned = 0
	ctx.grid.ResetCommands()
}

// Flush bins every command recorded since the last flush into the tiles
// it touches. Flush is idempotent.
func (ctx *RenderContext) Flush() {
	for i := ctx.binned; i < len(ctx.commands); i++ {
		cmd := &ctx.commands[i]
		tx0, ty0, tx1, ty1, ok := ctx.grid.TileRange(cmd.x0, cmd.y0, cmd.x1, cmd.y1)
		if !ok {
			continue
		}
		for ty := ty0; ty <= ty1; ty++ {
			for tx := tx0; tx <= tx1; tx++ {
				t := ctx.grid.TileAt(tx, ty)
				t.Commands = append(t.Commands, i)
			}
		}
	}
	ctx.binned = len(ctx.commands)
}

// RenderToPixmap rasterizes all recorded commands into pm, replacing its
// contents. Unflushed commands are flushed first. It panics with
// ErrDimensionMismatch if pm is not the size of the context.
func (ctx *RenderContext) RenderToPixmap(pm *Pixmap) {
	if pm.width != ctx.width || pm.height != ctx.height {
		panic(fmt.Errorf("%w: pixmap is %dx%d, context is %dx%d",
			ErrDimensionMismatch, pm.width, pm.height, ctx.width, ctx.height))
	}
	ctx.Flush()

	tiles := ctx.grid.AllTiles()
	if ctx.pool == nil {
		for _, t := range tiles {
			ctx.renderTile(t, pm)
		}
		return
	}

	work := make([]func(), ctx.grid.TileCount())
	for i, t := range tiles {
		work[i] = func() { ctx.renderTile(t, pm) }
	}
	ctx.pool.ExecuteAll(work)
}

// renderTile composites the tile's commands in issue order and writes the
// result into its region of pm. Tiles cover disjoint pixels.
func (ctx *RenderContext) renderTile(t *parallel.Tile, pm *Pixmap) {
	t.Clear()
	x0, y0, w, h := t.Bounds()

	if len(t.Commands) > 0 {
		r := ctx.rasterizers.Get().(*raster.Rasterizer)
		for _, ci := range t.Commands {
			cmd := &ctx.commands[ci]
			if !r.Coverage(t.Coverage, x0, y0, w, h, cmd.edges, cmd.rule) {
				continue
			}
			composite(t, cmd, x0, y0)
		}
		ctx.rasterizers.Put(r)
	}

	stride := int(pm.width)
	for py := range h {
		row := pm.data[(y0+py)*stride+x0 : (y0+py)*stride+x0+w]
		for px := range row {
			c := t.Color[t.PixelOffset(px, py):]
			row[px] = PremulColor{c[0], c[1], c[2], c[3]}.ToRGBA8()
		}
	}
}

// composite blends cmd over the tile with source-over, weighted by the
// coverage already in t.Coverage.
func composite(t *parallel.Tile, cmd *command, x0, y0 int) {
	w := t.Width
	for i, cov := range t.Coverage {
		if cov == 0 {
			continue
		}
		px, py := i%w, i/w
		src := cmd.shader.at(float64(x0+px)+0.5, float64(y0+py)+0.5)
		inv := 1 - src[3]*cov
		off := t.PixelOffset(px, py)
		dst := t.Color[off : off+4]
		dst[0] = src[0]*cov + dst[0]*inv
		dst[1] = src[1]*cov + dst[1]*inv
		dst[2] = src[2]*cov + dst[2]*inv
		dst[3] = src[3]*cov + dst[3]*inv
	}
}

// Close stops the render workers. The context must not be used afterwards.
func (ctx *RenderContext) Close() {
	if ctx.pool != nil && ctx.pool.IsRunning() {
		ctx.pool.Close()
	}
	clear(ctx.commands)
	ctx.commands = nil
	ctx.paint = nil
}
