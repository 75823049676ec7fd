package cpu

import (
	"errors"
	"math"
	"testing"

	"honnef.co/go/curve"
)

func premul8(r, g, b, a uint8) PremulRGBA8 {
	p := func(c uint8) uint8 { return uint8((int(c)*int(a) + 127) / 255) }
	return PremulRGBA8{p(r), p(g), p(b), a}
}

func render(ctx *RenderContext) *Pixmap {
	pm := NewPixmap(ctx.Width(), ctx.Height())
	ctx.RenderToPixmap(pm)
	return pm
}

// =============================================================================
// Fill Tests
// =============================================================================

func TestFillRect_Full(t *testing.T) {
	for _, threads := range []uint16{0, 4} {
		ctx := NewRenderContext(128, 128, RenderSettings{NumThreads: threads})
		ctx.SetPaint(AlphaColorFromRGBA8(10, 20, 30, 40))
		ctx.FillRect(curve.Rect{X0: 0, Y0: 0, X1: 128, Y1: 128})
		pm := render(ctx)
		ctx.Close()

		want := premul8(10, 20, 30, 40)
		for i, got := range pm.Data() {
			if got != want {
				t.Fatalf("threads=%d: pixel %d = %+v, want %+v", threads, i, got, want)
			}
		}
	}
}

func TestFillRect_Partial(t *testing.T) {
	ctx := NewRenderContext(100, 70, RenderSettings{})
	ctx.SetPaint(AlphaColor{R: 1, A: 1})
	ctx.FillRect(curve.Rect{X0: 60, Y0: 60, X1: 70, Y1: 65})
	pm := render(ctx)

	red := PremulRGBA8{255, 0, 0, 255}
	for y := range 70 {
		for x := range 100 {
			want := PremulRGBA8{}
			if x >= 60 && x < 70 && y >= 60 && y < 65 {
				want = red
			}
			if got := pm.Pixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestFillPath_Transform(t *testing.T) {
	ctx := NewRenderContext(32, 32, RenderSettings{})
	ctx.SetTransform(curve.Translate(curve.Vec(10, 10)).Mul(curve.Scale(2, 2)))

	var p curve.BezPath
	p.MoveTo(curve.Pt(0, 0))
	p.LineTo(curve.Pt(4, 0))
	p.LineTo(curve.Pt(4, 4))
	p.LineTo(curve.Pt(0, 4))
	p.ClosePath()
	ctx.FillPath(p)
	pm := render(ctx)

	if got := pm.Pixel(10, 10).A; got != 255 {
		t.Errorf("alpha at (10,10) = %d, want 255", got)
	}
	if got := pm.Pixel(17, 17).A; got != 255 {
		t.Errorf("alpha at (17,17) = %d, want 255", got)
	}
	if got := pm.Pixel(18, 18).A; got != 0 {
		t.Errorf("alpha at (18,18) = %d, want 0", got)
	}
	if got := pm.Pixel(9, 9).A; got != 0 {
		t.Errorf("alpha at (9,9) = %d, want 0", got)
	}
}

func TestFillPath_FillRule(t *testing.T) {
	var p curve.BezPath
	for _, r := range []curve.Rect{{X0: 0, Y0: 0, X1: 12, Y1: 12}, {X0: 4, Y0: 4, X1: 8, Y1: 8}} {
		p.MoveTo(curve.Pt(r.X0, r.Y0))
		p.LineTo(curve.Pt(r.X1, r.Y0))
		p.LineTo(curve.Pt(r.X1, r.Y1))
		p.LineTo(curve.Pt(r.X0, r.Y1))
		p.ClosePath()
	}

	tests := []struct {
		rule FillRule
		want uint8
	}{
		{NonZero, 255},
		{EvenOdd, 0},
	}
	for _, tt := range tests {
		ctx := NewRenderContext(12, 12, RenderSettings{})
		ctx.SetFillRule(tt.rule)
		ctx.FillPath(p)
		if got := render(ctx).Pixel(6, 6).A; got != tt.want {
			t.Errorf("rule %d: center alpha = %d, want %d", tt.rule, got, tt.want)
		}
	}
}

func TestFill_SourceOverOrder(t *testing.T) {
	ctx := NewRenderContext(4, 4, RenderSettings{})
	ctx.SetPaint(AlphaColor{R: 1, A: 1})
	ctx.FillRect(curve.Rect{X1: 4, Y1: 4})
	ctx.SetPaint(AlphaColor{B: 1, A: 1})
	ctx.FillRect(curve.Rect{X1: 2, Y1: 4})
	pm := render(ctx)

	if got := pm.Pixel(0, 0); got != (PremulRGBA8{0, 0, 255, 255}) {
		t.Errorf("left pixel = %+v, want blue", got)
	}
	if got := pm.Pixel(3, 0); got != (PremulRGBA8{255, 0, 0, 255}) {
		t.Errorf("right pixel = %+v, want red", got)
	}
}

// =============================================================================
// Stroke Tests
// =============================================================================

func TestStrokeRect(t *testing.T) {
	ctx := NewRenderContext(20, 20, RenderSettings{})
	s := DefaultStroke
	s.Width = 2
	ctx.SetStroke(s)
	ctx.StrokeRect(curve.Rect{X0: 5, Y0: 5, X1: 15, Y1: 15})
	pm := render(ctx)

	if got := pm.Pixel(10, 5).A; got != 255 {
		t.Errorf("alpha on outline = %d, want 255", got)
	}
	if got := pm.Pixel(10, 10).A; got != 0 {
		t.Errorf("alpha inside = %d, want 0", got)
	}
	if got := pm.Pixel(1, 1).A; got != 0 {
		t.Errorf("alpha outside = %d, want 0", got)
	}
}

func TestStrokePath_ButtCaps(t *testing.T) {
	ctx := NewRenderContext(20, 10, RenderSettings{})
	s := DefaultStroke
	s.Width = 4
	ctx.SetStroke(s)

	var p curve.BezPath
	p.MoveTo(curve.Pt(5, 5))
	p.LineTo(curve.Pt(15, 5))
	ctx.StrokePath(p)
	pm := render(ctx)

	if got := pm.Pixel(10, 4).A; got != 255 {
		t.Errorf("alpha on line = %d, want 255", got)
	}
	// Butt caps end exactly at the endpoints.
	if got := pm.Pixel(4, 5).A; got != 0 {
		t.Errorf("alpha before start = %d, want 0", got)
	}
	if got := pm.Pixel(15, 5).A; got != 0 {
		t.Errorf("alpha after end = %d, want 0", got)
	}
}

// =============================================================================
// State Tests
// =============================================================================

func TestReset_ClearsCommandsKeepsState(t *testing.T) {
	ctx := NewRenderContext(8, 8, RenderSettings{})
	green := AlphaColor{G: 1, A: 1}
	ctx.SetPaint(green)
	ctx.SetFillRule(EvenOdd)
	ctx.FillRect(curve.Rect{X1: 8, Y1: 8})
	ctx.Flush()

	ctx.Reset()
	if ctx.Commands() != 0 {
		t.Fatalf("Commands() = %d after Reset, want 0", ctx.Commands())
	}
	for i, px := range render(ctx).Data() {
		if px != (PremulRGBA8{}) {
			t.Fatalf("pixel %d = %+v after Reset, want transparent", i, px)
		}
	}
	if ctx.Paint() != Paint(green) || ctx.FillRule() != EvenOdd {
		t.Error("Reset changed the draw state")
	}
}

func TestFlush_Idempotent(t *testing.T) {
	ctx := NewRenderContext(64, 64, RenderSettings{})
	ctx.SetPaint(AlphaColor{R: 1, A: 0.5})
	ctx.FillRect(curve.Rect{X1: 64, Y1: 64})
	ctx.Flush()
	ctx.Flush()
	a := render(ctx)
	ctx.Flush()
	b := render(ctx)

	if a.Pixel(0, 0) != b.Pixel(0, 0) {
		t.Errorf("repeated flush changed output: %+v vs %+v", a.Pixel(0, 0), b.Pixel(0, 0))
	}
	if got := a.Pixel(0, 0); got != (PremulRGBA8{128, 0, 0, 128}) {
		t.Errorf("pixel = %+v, want half-alpha red drawn once", got)
	}
}

func TestRenderToPixmap_DimensionMismatch(t *testing.T) {
	ctx := NewRenderContext(10, 10, RenderSettings{})
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("recovered %v, want ErrDimensionMismatch", err)
		}
	}()
	ctx.RenderToPixmap(NewPixmap(10, 11))
}

func TestRender_ParallelMatchesInline(t *testing.T) {
	draw := func(threads uint16) *Pixmap {
		ctx := NewRenderContext(200, 150, RenderSettings{NumThreads: threads})
		defer ctx.Close()
		ctx.SetTransform(curve.RotateAbout(0.3, curve.Pt(100, 75)))
		ctx.SetPaint(Gradient{
			Kind:  LinearKind{Start: curve.Pt(0, 0), End: curve.Pt(200, 0)},
			Stops: []ColorStop{{0, AlphaColor{R: 1, A: 1}}, {1, AlphaColor{B: 1, A: 1}}},
		})
		var p curve.BezPath
		p.MoveTo(curve.Pt(20, 20))
		p.CubicTo(curve.Pt(180, 0), curve.Pt(200, 150), curve.Pt(30, 130))
		p.ClosePath()
		ctx.FillPath(p)
		return render(ctx)
	}

	a, b := draw(0), draw(3)
	for i := range a.Data() {
		if a.Data()[i] != b.Data()[i] {
			t.Fatalf("pixel %d differs: inline %+v, parallel %+v", i, a.Data()[i], b.Data()[i])
		}
	}
}

func TestClose_StopsWorkers(t *testing.T) {
	ctx := NewRenderContext(64, 64, RenderSettings{NumThreads: 2})
	pool := ctx.pool
	if pool == nil || !pool.IsRunning() {
		t.Fatal("expected a running worker pool")
	}
	ctx.Close()
	if pool.IsRunning() {
		t.Error("pool still running after Close")
	}
	ctx.Close()
}

func TestRenderMode_Samples(t *testing.T) {
	if OptimizeSpeed.samples() != 4 || OptimizeQuality.samples() != 16 {
		t.Error("unexpected sample counts")
	}
	ctx := NewRenderContext(4, 4, RenderSettings{})
	if ctx.Settings().Tolerance != DefaultTolerance {
		t.Errorf("Tolerance = %v, want default", ctx.Settings().Tolerance)
	}
	if ctx.Threads() != 0 {
		t.Errorf("Threads() = %d, want 0", ctx.Threads())
	}
}

func TestZeroSizedContext(t *testing.T) {
	ctx := NewRenderContext(0, 5, RenderSettings{NumThreads: 2})
	defer ctx.Close()
	ctx.FillRect(curve.Rect{X1: 10, Y1: 10})
	pm := NewPixmap(0, 5)
	ctx.RenderToPixmap(pm)
	if len(pm.Data()) != 0 {
		t.Errorf("len(Data()) = %d, want 0", len(pm.Data()))
	}
}

func TestPaintTransform(t *testing.T) {
	// A pad-extended gradient from x=0 to x=1, stretched by the paint
	// transform across the whole surface.
	ctx := NewRenderContext(100, 1, RenderSettings{})
	ctx.SetPaint(Gradient{
		Kind:  LinearKind{Start: curve.Pt(0, 0), End: curve.Pt(1, 0)},
		Stops: []ColorStop{{0, AlphaColor{A: 0}}, {1, AlphaColor{A: 1}}},
	})
	ctx.SetPaintTransform(curve.Scale(100, 1))
	ctx.FillRect(curve.Rect{X1: 100, Y1: 1})
	pm := render(ctx)

	mid := float64(pm.Pixel(50, 0).A)
	if math.Abs(mid-128) > 3 {
		t.Errorf("alpha at middle = %v, want ~128", mid)
	}

	ctx.Reset()
	ctx.ResetPaintTransform()
	ctx.FillRect(curve.Rect{X1: 100, Y1: 1})
	pm = render(ctx)
	if got := pm.Pixel(50, 0).A; got != 255 {
		t.Errorf("alpha after ResetPaintTransform = %d, want 255 (padded)", got)
	}
}
