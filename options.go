package vc

import "github.com/gogpu/vc/internal/cpu"

// RenderMode trades rendering speed for antialiasing quality.
type RenderMode uint8

const (
	// OptimizeSpeed samples 4 sub-scanlines per pixel row. This is the default.
	OptimizeSpeed RenderMode = iota
	// OptimizeQuality samples 16 sub-scanlines per pixel row.
	OptimizeQuality
)

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Default settings
//	ctx := vc.NewContext(800, 600, 4)
//
//	// Finer antialiasing and curve flattening
//	ctx := vc.NewContext(800, 600, 4,
//	    vc.WithRenderMode(vc.OptimizeQuality),
//	    vc.WithTolerance(0.1))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
// Options survive Resize.
type contextOptions struct {
	mode      RenderMode
	tolerance float64
}

func defaultOptions() contextOptions {
	return contextOptions{
		mode:      OptimizeSpeed,
		tolerance: cpu.DefaultTolerance,
	}
}

// WithRenderMode selects the antialiasing quality.
func WithRenderMode(m RenderMode) ContextOption {
	return func(o *contextOptions) {
		o.mode = m
	}
}

// WithTolerance sets the maximum distance, in pixels, between a curve and
// the line segments that approximate it. Non-positive values are ignored.
func WithTolerance(tol float64) ContextOption {
	return func(o *contextOptions) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

func (o contextOptions) settings(threads uint32) cpu.RenderSettings {
	mode := cpu.OptimizeSpeed
	if o.mode == OptimizeQuality {
		mode = cpu.OptimizeQuality
	}
	return cpu.RenderSettings{
		NumThreads: uint16(threads),
		RenderMode: mode,
		Tolerance:  o.tolerance,
	}
}
