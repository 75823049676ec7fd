package main

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/vc"
)

// drawDemo draws the built-in demonstration. texture is an optional image
// file used for the image paint; a checkerboard is used without one.
func drawDemo(ctx *vc.Context, texture string) error {
	drawBackground(ctx)
	drawShapes(ctx)
	drawRotatedSquares(ctx)
	drawPaths(ctx)
	drawGradients(ctx)
	return drawTexture(ctx, texture)
}

func drawBackground(ctx *vc.Context) {
	h := float64(ctx.Height())
	g := vc.NewLinearGradient(vc.Pt(0, 0), vc.Pt(0, h), vc.ExtendPad)
	defer g.Destroy()
	g.PushStop(vc.GradientStop{Offset: 0, Color: vc.Color{R: 26, G: 51, B: 102, A: 255}})
	g.PushStop(vc.GradientStop{Offset: 1, Color: vc.Color{R: 128, G: 128, B: 153, A: 255}})
	ctx.SetPaint(g)
	ctx.FillRect(vc.Rect{X1: float64(ctx.Width()), Y1: h})
}

// circle returns a circle built from four cubic arcs.
func circle(cx, cy, r float64) *vc.Path {
	const k = 0.5522847498
	p := vc.NewPath()
	p.MoveTo(vc.Pt(cx+r, cy))
	p.CubicTo(vc.Pt(cx+r, cy+k*r), vc.Pt(cx+k*r, cy+r), vc.Pt(cx, cy+r))
	p.CubicTo(vc.Pt(cx-k*r, cy+r), vc.Pt(cx-r, cy+k*r), vc.Pt(cx-r, cy))
	p.CubicTo(vc.Pt(cx-r, cy-k*r), vc.Pt(cx-k*r, cy-r), vc.Pt(cx, cy-r))
	p.CubicTo(vc.Pt(cx+k*r, cy-r), vc.Pt(cx+r, cy-k*r), vc.Pt(cx+r, cy))
	p.Close()
	return p
}

func drawShapes(ctx *vc.Context) {
	circles := []struct {
		x, y float64
		c    vc.Color
	}{
		{150, 150, vc.Color{R: 255, G: 77, B: 77, A: 204}},
		{200, 150, vc.Color{R: 77, G: 255, B: 77, A: 204}},
		{175, 200, vc.Color{R: 77, G: 77, B: 255, A: 204}},
	}
	for _, c := range circles {
		p := circle(c.x, c.y, 60)
		ctx.SetPaint(c.c)
		ctx.FillPath(p)
		p.Destroy()
	}

	rr := vc.RoundedRect(vc.Rect{X0: 350, Y0: 100, X1: 470, Y1: 180}, 15)
	ctx.SetPaint(vc.Color{R: 255, G: 204, A: 255})
	ctx.FillPath(rr)
	rr.Destroy()

	ctx.SetPaint(vc.White)
	ctx.SetStroke(vc.Stroke{Width: 4})
	ctx.StrokeRect(vc.Rect{X0: 350, Y0: 100, X1: 470, Y1: 180})
}

func drawRotatedSquares(ctx *vc.Context) {
	const cx, cy = 600.0, 150.0
	for i := range 8 {
		angle := float64(i) * math.Pi / 4
		ctx.SetTransform(vc.Combine(vc.Translate(cx, cy), vc.Rotate(angle)))
		ctx.SetPaint(hsl(float64(i)*45, 0.8, 0.6))
		ctx.FillRect(vc.Rect{X0: -30, Y0: -30, X1: 30, Y1: 30})
	}
	ctx.SetTransform(vc.Identity())
}

func drawPaths(ctx *vc.Context) {
	ctx.SetTransform(vc.Translate(150, 400))
	defer ctx.SetTransform(vc.Identity())

	wave := vc.NewPath()
	wave.MoveTo(vc.Pt(0, 0))
	wave.CubicTo(vc.Pt(50, -50), vc.Pt(100, 50), vc.Pt(150, 0))
	wave.CubicTo(vc.Pt(200, -30), vc.Pt(250, 30), vc.Pt(300, 0))
	ctx.SetPaint(vc.Color{R: 255, G: 128, A: 255})
	ctx.SetStroke(vc.Stroke{Width: 6})
	ctx.StrokePath(wave)
	wave.Destroy()

	// A self-intersecting star shows the even-odd rule.
	star := vc.NewPath()
	for i := range 5 {
		a := float64(i*2)*2*math.Pi/5 - math.Pi/2
		pt := vc.Pt(400+60*math.Cos(a), 60*math.Sin(a))
		if i == 0 {
			star.MoveTo(pt)
		} else {
			star.LineTo(pt)
		}
	}
	star.Close()
	ctx.SetPaint(vc.Color{R: 255, G: 255, A: 255})
	ctx.SetFillRule(vc.FillEvenOdd)
	ctx.FillPath(star)
	ctx.SetFillRule(vc.FillWinding)
	star.Destroy()
}

func drawGradients(ctx *vc.Context) {
	rg := vc.NewRadialGradient(vc.Pt(110, 500), 5, vc.Pt(120, 510), 60, vc.ExtendPad)
	rg.PushStop(vc.GradientStop{Offset: 0, Color: vc.White})
	rg.PushStop(vc.GradientStop{Offset: 1, Color: vc.Color{R: 200, G: 30, B: 90, A: 255}})
	ctx.SetPaint(rg)
	rg.Destroy()
	disc := circle(120, 510, 60)
	ctx.FillPath(disc)
	disc.Destroy()

	sg := vc.NewSweepGradient(vc.Pt(300, 510), 0, 2*math.Pi, vc.ExtendRepeat)
	for i, c := range []vc.Color{
		{R: 255, A: 255}, {R: 255, G: 255, A: 255}, {G: 255, A: 255},
		{G: 255, B: 255, A: 255}, {B: 255, A: 255}, {R: 255, B: 255, A: 255}, {R: 255, A: 255},
	} {
		sg.PushStop(vc.GradientStop{Offset: float64(i) / 6, Color: c})
	}
	ctx.SetPaint(sg)
	sg.Destroy()
	wheel := circle(300, 510, 60)
	ctx.FillPath(wheel)
	wheel.Destroy()
}

func drawTexture(ctx *vc.Context, path string) error {
	var (
		tex *vc.SharedPixmap
		err error
	)
	if path != "" {
		tex, err = loadTexture(path)
	} else {
		tex, err = textureFromImage(checkerboard(16, 8))
	}
	if err != nil {
		return err
	}
	img := vc.NewImage(tex, vc.ExtendRepeat, vc.ExtendRepeat, vc.QualityMedium)
	tex.Destroy()

	ctx.SetPaint(img)
	img.Destroy()
	ctx.SetPaintTransform(vc.Combine(vc.Translate(450, 450), vc.Rotate(math.Pi/12)))
	ctx.FillRect(vc.Rect{X0: 450, Y0: 450, X1: 750, Y1: 570})
	ctx.ResetPaintTransform()
	return nil
}

func checkerboard(size, cell int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			c := color.RGBA{R: 240, G: 240, B: 240, A: 255}
			if (x/cell+y/cell)%2 == 1 {
				c = color.RGBA{R: 40, G: 40, B: 60, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// hsl converts hue in degrees, saturation and lightness in [0, 1] to an
// opaque color.
func hsl(h, s, l float64) vc.Color {
	c := (1 - math.Abs(2*l-1)) * s
	hp := math.Mod(h, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g = c, x
	case hp < 2:
		r, g = x, c
	case hp < 3:
		g, b = c, x
	case hp < 4:
		g, b = x, c
	case hp < 5:
		r, b = x, c
	default:
		r, b = c, x
	}
	m := l - c/2
	u := func(v float64) uint8 { return uint8(math.Round((v + m) * 255)) }
	return vc.Color{R: u(r), G: u(g), B: u(b), A: 255}
}
