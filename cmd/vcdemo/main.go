// Command vcdemo renders a scene with vc and writes it as PNG or BMP.
//
// Without -scene it draws a built-in demonstration. With -scene it draws
// the shapes listed in a TOML file (see scene.go for the format).
//
//	vcdemo -output demo.png -threads 4
//	vcdemo -scene logo.toml -output logo.bmp -v
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/vc"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "vcdemo:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("vcdemo", flag.ContinueOnError)
	var (
		width     = fs.Uint("width", 800, "image width")
		height    = fs.Uint("height", 600, "image height")
		threads   = fs.Uint("threads", 0, "render worker goroutines (0 renders inline)")
		output    = fs.String("output", "demo.png", "output file (.png or .bmp)")
		scenePath = fs.String("scene", "", "TOML scene file")
		texture   = fs.String("texture", "", "texture for the built-in demo (PNG, BMP or WebP)")
		quality   = fs.Bool("quality", false, "use 16 samples per pixel row")
		verbose   = fs.Bool("v", false, "log debug output to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		vc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var opts []vc.ContextOption
	if *quality {
		opts = append(opts, vc.WithRenderMode(vc.OptimizeQuality))
	}

	var draw func(*vc.Context) error
	w, h, n := uint32(*width), uint32(*height), uint32(*threads)
	if *scenePath != "" {
		sc, err := loadScene(*scenePath)
		if err != nil {
			return err
		}
		logScene(sc)
		if sc.Width > 0 && sc.Height > 0 {
			w, h = sc.Width, sc.Height
		}
		if sc.Threads > 0 {
			n = sc.Threads
		}
		opts = append(opts, sc.options()...)
		draw = sc.draw
	} else {
		draw = func(ctx *vc.Context) error { return drawDemo(ctx, *texture) }
	}

	pm, err := render(w, h, n, draw, opts...)
	if err != nil {
		return err
	}
	defer pm.Destroy()

	if err := writeImage(*output, pm); err != nil {
		return err
	}
	vc.Logger().Info("vcdemo: saved", "output", *output, "width", pm.Width(), "height", pm.Height())
	return nil
}

// render draws into a new context and returns the rendered pixmap.
func render(w, h, threads uint32, draw func(*vc.Context) error, opts ...vc.ContextOption) (*vc.Pixmap, error) {
	ctx := vc.NewContext(w, h, threads, opts...)
	defer ctx.Destroy()

	start := time.Now()
	if err := draw(ctx); err != nil {
		return nil, err
	}
	pm := vc.NewPixmap(w, h)
	ctx.RenderToPixmap(pm)
	vc.Logger().Debug("vcdemo: frame done",
		"commands", ctx.Commands(), "elapsed", time.Since(start))
	return pm, nil
}
