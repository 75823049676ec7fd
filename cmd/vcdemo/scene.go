package main

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/vc"
)

// scene is a drawing described in TOML.
//
//	width = 256
//	height = 256
//	threads = 4
//	background = [255, 255, 255, 255]
//
//	[[shape]]
//	kind = "rounded_rect"
//	rect = [16, 16, 240, 240]
//	radius = 24
//	stroke = 0
//	[shape.paint]
//	gradient = "linear"
//	start = [0, 0]
//	end = [256, 0]
//	stops = [{ offset = 0, color = [255, 0, 0, 255] }, { offset = 1, color = [0, 0, 255, 255] }]
type scene struct {
	Width      uint32
	Height     uint32
	Threads    uint32
	Quality    string
	Tolerance  float64
	Background []uint8
	Shape      []shape

	// dir resolves relative texture paths.
	dir string
}

type shape struct {
	// Kind is "rect", "rounded_rect" or "polygon".
	Kind     string
	Rect     []float64
	Radius   float64
	Points   [][]float64
	Stroke   float64
	FillRule string `toml:"fill_rule"`

	Translate []float64
	Rotate    float64 // degrees, about Origin
	Origin    []float64
	Scale     []float64

	Paint paintSpec
}

type paintSpec struct {
	Color []uint8

	// Gradient is "linear", "radial" or "sweep".
	Gradient   string
	Start      []float64
	End        []float64
	Center     []float64
	Center0    []float64
	Center1    []float64
	Radius0    float64
	Radius1    float64
	StartAngle float64 `toml:"start_angle"` // degrees
	EndAngle   float64 `toml:"end_angle"`   // degrees
	Stops      []stopSpec
	Extend     string

	Image   string
	ExtendY string `toml:"extend_y"`
	Filter  string
	Offset  []float64
	Scale   []float64
}

type stopSpec struct {
	Offset float64
	Color  []uint8
}

// loadScene reads a scene file. Unknown keys are logged and ignored.
func loadScene(path string) (*scene, error) {
	sc := &scene{}
	md, err := toml.DecodeFile(path, sc)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	for _, k := range md.Undecoded() {
		vc.Logger().Warn("vcdemo: unknown scene key", "key", k.String())
	}
	sc.dir = filepath.Dir(path)
	return sc, nil
}

// parseScene decodes a scene from TOML text.
func parseScene(text string) (*scene, error) {
	sc := &scene{}
	if _, err := toml.Decode(text, sc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return sc, nil
}

func (sc *scene) options() []vc.ContextOption {
	var opts []vc.ContextOption
	if strings.EqualFold(sc.Quality, "quality") {
		opts = append(opts, vc.WithRenderMode(vc.OptimizeQuality))
	}
	if sc.Tolerance > 0 {
		opts = append(opts, vc.WithTolerance(sc.Tolerance))
	}
	return opts
}

// draw records every shape of the scene into ctx.
func (sc *scene) draw(ctx *vc.Context) error {
	if len(sc.Background) > 0 {
		bg, err := colorOf(sc.Background)
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
		ctx.SetPaint(bg)
		ctx.FillRect(vc.Rect{X1: float64(ctx.Width()), Y1: float64(ctx.Height())})
	}
	for i := range sc.Shape {
		if err := sc.drawShape(ctx, &sc.Shape[i]); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return nil
}

func (sc *scene) drawShape(ctx *vc.Context, s *shape) error {
	t, err := s.transform()
	if err != nil {
		return err
	}
	ctx.SetTransform(t)

	rule := vc.FillWinding
	switch strings.ToLower(s.FillRule) {
	case "", "winding", "nonzero":
	case "evenodd", "even_odd":
		rule = vc.FillEvenOdd
	default:
		return fmt.Errorf("unknown fill rule %q", s.FillRule)
	}
	ctx.SetFillRule(rule)

	release, err := sc.bindPaint(ctx, &s.Paint)
	if err != nil {
		return err
	}
	defer release()

	if s.Stroke > 0 {
		ctx.SetStroke(vc.Stroke{Width: s.Stroke})
	}

	switch s.Kind {
	case "rect":
		r, err := rectOf(s.Rect)
		if err != nil {
			return err
		}
		if s.Stroke > 0 {
			ctx.StrokeRect(r)
		} else {
			ctx.FillRect(r)
		}
		return nil
	case "rounded_rect":
		r, err := rectOf(s.Rect)
		if err != nil {
			return err
		}
		p := vc.RoundedRect(r, s.Radius)
		defer p.Destroy()
		s.drawPath(ctx, p)
		return nil
	case "polygon":
		if len(s.Points) < 2 {
			return fmt.Errorf("polygon needs at least 2 points, got %d", len(s.Points))
		}
		p := vc.NewPath()
		defer p.Destroy()
		for i, pt := range s.Points {
			v, err := pointOf(pt)
			if err != nil {
				return fmt.Errorf("point %d: %w", i, err)
			}
			if i == 0 {
				p.MoveTo(v)
			} else {
				p.LineTo(v)
			}
		}
		p.Close()
		s.drawPath(ctx, p)
		return nil
	default:
		return fmt.Errorf("unknown shape kind %q", s.Kind)
	}
}

func (s *shape) drawPath(ctx *vc.Context, p *vc.Path) {
	if s.Stroke > 0 {
		ctx.StrokePath(p)
	} else {
		ctx.FillPath(p)
	}
}

func (s *shape) transform() (vc.Transform, error) {
	t := vc.Identity()
	if len(s.Translate) > 0 {
		v, err := pointOf(s.Translate)
		if err != nil {
			return t, fmt.Errorf("translate: %w", err)
		}
		t = vc.Combine(t, vc.Translate(v.X, v.Y))
	}
	if s.Rotate != 0 {
		var o vc.Point
		if len(s.Origin) > 0 {
			v, err := pointOf(s.Origin)
			if err != nil {
				return t, fmt.Errorf("origin: %w", err)
			}
			o = v
		}
		t = vc.Combine(t, vc.RotateAt(s.Rotate*math.Pi/180, o.X, o.Y))
	}
	if len(s.Scale) > 0 {
		v, err := pointOf(s.Scale)
		if err != nil {
			return t, fmt.Errorf("scale: %w", err)
		}
		t = vc.Combine(t, vc.Scale(v.X, v.Y))
	}
	return t, nil
}

// bindPaint sets the shape's paint on ctx. The returned func releases
// objects created for it; the context keeps its own copy.
func (sc *scene) bindPaint(ctx *vc.Context, p *paintSpec) (func(), error) {
	nop := func() {}
	ctx.ResetPaintTransform()

	switch {
	case p.Image != "":
		path := p.Image
		if !filepath.IsAbs(path) && sc.dir != "" {
			path = filepath.Join(sc.dir, path)
		}
		tex, err := loadTexture(path)
		if err != nil {
			return nop, err
		}
		defer tex.Destroy()
		xExt, err := extendOf(p.Extend)
		if err != nil {
			return nop, err
		}
		yExt := xExt
		if p.ExtendY != "" {
			if yExt, err = extendOf(p.ExtendY); err != nil {
				return nop, err
			}
		}
		q, err := qualityOf(p.Filter)
		if err != nil {
			return nop, err
		}
		img := vc.NewImage(tex, xExt, yExt, q)
		pt := vc.Identity()
		if len(p.Offset) > 0 {
			v, err := pointOf(p.Offset)
			if err != nil {
				img.Destroy()
				return nop, fmt.Errorf("offset: %w", err)
			}
			pt = vc.Translate(v.X, v.Y)
		}
		if len(p.Scale) > 0 {
			v, err := pointOf(p.Scale)
			if err != nil {
				img.Destroy()
				return nop, fmt.Errorf("scale: %w", err)
			}
			pt = vc.Combine(pt, vc.Scale(v.X, v.Y))
		}
		ctx.SetPaintTransform(pt)
		ctx.SetPaint(img)
		return img.Destroy, nil

	case p.Gradient != "":
		return sc.bindGradient(ctx, p)

	default:
		c := vc.Black
		if len(p.Color) > 0 {
			var err error
			if c, err = colorOf(p.Color); err != nil {
				return nop, err
			}
		}
		ctx.SetPaint(c)
		return nop, nil
	}
}

func (sc *scene) bindGradient(ctx *vc.Context, p *paintSpec) (func(), error) {
	nop := func() {}
	ext, err := extendOf(p.Extend)
	if err != nil {
		return nop, err
	}
	stops := make([]vc.GradientStop, len(p.Stops))
	for i, s := range p.Stops {
		c, err := colorOf(s.Color)
		if err != nil {
			return nop, fmt.Errorf("stop %d: %w", i, err)
		}
		stops[i] = vc.GradientStop{Offset: s.Offset, Color: c}
	}

	switch strings.ToLower(p.Gradient) {
	case "linear":
		start, err := pointOf(p.Start)
		if err != nil {
			return nop, fmt.Errorf("start: %w", err)
		}
		end, err := pointOf(p.End)
		if err != nil {
			return nop, fmt.Errorf("end: %w", err)
		}
		g := vc.NewLinearGradient(start, end, ext)
		for _, s := range stops {
			g.PushStop(s)
		}
		ctx.SetPaint(g)
		return g.Destroy, nil
	case "radial":
		c0, err := pointOf(p.Center0)
		if err != nil {
			return nop, fmt.Errorf("center0: %w", err)
		}
		c1 := c0
		if len(p.Center1) > 0 {
			if c1, err = pointOf(p.Center1); err != nil {
				return nop, fmt.Errorf("center1: %w", err)
			}
		}
		g := vc.NewRadialGradient(c0, p.Radius0, c1, p.Radius1, ext)
		for _, s := range stops {
			g.PushStop(s)
		}
		ctx.SetPaint(g)
		return g.Destroy, nil
	case "sweep":
		c, err := pointOf(p.Center)
		if err != nil {
			return nop, fmt.Errorf("center: %w", err)
		}
		g := vc.NewSweepGradient(c, p.StartAngle*math.Pi/180, p.EndAngle*math.Pi/180, ext)
		for _, s := range stops {
			g.PushStop(s)
		}
		ctx.SetPaint(g)
		return g.Destroy, nil
	default:
		return nop, fmt.Errorf("unknown gradient %q", p.Gradient)
	}
}

func colorOf(v []uint8) (vc.Color, error) {
	switch len(v) {
	case 3:
		return vc.Color{R: v[0], G: v[1], B: v[2], A: 255}, nil
	case 4:
		return vc.Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
	default:
		return vc.Color{}, fmt.Errorf("color needs 3 or 4 components, got %d", len(v))
	}
}

func pointOf(v []float64) (vc.Point, error) {
	if len(v) != 2 {
		return vc.Point{}, fmt.Errorf("point needs 2 components, got %d", len(v))
	}
	return vc.Pt(v[0], v[1]), nil
}

func rectOf(v []float64) (vc.Rect, error) {
	if len(v) != 4 {
		return vc.Rect{}, fmt.Errorf("rect needs 4 components, got %d", len(v))
	}
	return vc.Rect{X0: v[0], Y0: v[1], X1: v[2], Y1: v[3]}, nil
}

func extendOf(s string) (vc.Extend, error) {
	switch strings.ToLower(s) {
	case "", "pad":
		return vc.ExtendPad, nil
	case "repeat":
		return vc.ExtendRepeat, nil
	case "reflect":
		return vc.ExtendReflect, nil
	default:
		return vc.ExtendPad, fmt.Errorf("unknown extend %q", s)
	}
}

func qualityOf(s string) (vc.ImageQuality, error) {
	switch strings.ToLower(s) {
	case "", "low", "nearest":
		return vc.QualityLow, nil
	case "medium", "bilinear":
		return vc.QualityMedium, nil
	case "high", "bicubic":
		return vc.QualityHigh, nil
	default:
		return vc.QualityLow, fmt.Errorf("unknown image filter %q", s)
	}
}

func logScene(sc *scene) {
	vc.Logger().Info("vcdemo: scene loaded",
		slog.Int("shapes", len(sc.Shape)),
		slog.Any("size", []uint32{sc.Width, sc.Height}))
}
