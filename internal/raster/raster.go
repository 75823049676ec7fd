// Package raster computes anti-aliased coverage masks for filled polygons.
//
// Coverage is sampled on a fixed number of sub-scanlines per pixel row.
// Along each sub-scanline the covered spans are accumulated with exact
// fractional ends, so axis-aligned edges on pixel boundaries produce fully
// opaque or fully empty pixels.
package raster

import (
	"cmp"
	"math"
	"slices"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// DefaultSamples is the number of sub-scanlines per pixel row used when
// a rasterizer is created with a non-positive sample count.
const DefaultSamples = 4

type crossing struct {
	x   float64
	dir int
}

// Rasterizer computes coverage for a window of the canvas.
//
// A Rasterizer keeps scratch buffers between calls and must not be used
// from multiple goroutines at once.
type Rasterizer struct {
	samples   int
	active    []*Edge
	crossings []crossing
}

// NewRasterizer creates a rasterizer that samples each pixel row on the
// given number of sub-scanlines.
func NewRasterizer(samples int) *Rasterizer {
	if samples <= 0 {
		samples = DefaultSamples
	}
	return &Rasterizer{samples: samples}
}

// Samples returns the number of sub-scanlines per pixel row.
func (r *Rasterizer) Samples() int { return r.samples }

// Coverage writes the coverage of edges inside the window
// [x, x+w) × [y, y+h) into dst, row-major with stride w. Values are in [0, 1].
// It reports whether any pixel received coverage.
func (r *Rasterizer) Coverage(dst []float32, x, y, w, h int, edges []Edge, rule FillRule) bool {
	dst = dst[:w*h]
	clear(dst)

	top, bottom := float64(y), float64(y+h)
	r.active = r.active[:0]
	for i := range edges {
		e := &edges[i]
		if e.YMax() > top && e.YMin() < bottom {
			r.active = append(r.active, e)
		}
	}
	if len(r.active) < 2 {
		return false
	}

	step := 1 / float64(r.samples)
	weight := float32(step)
	left := float64(x)
	touched := false

	for row := range h {
		line := dst[row*w : (row+1)*w]
		for s := range r.samples {
			sy := float64(y+row) + (float64(s)+0.5)*step

			r.crossings = r.crossings[:0]
			for _, e := range r.active {
				if sy >= e.YMin() && sy < e.YMax() {
					r.crossings = append(r.crossings, crossing{x: e.XAtY(sy), dir: e.Dir()})
				}
			}
			if len(r.crossings) < 2 {
				continue
			}
			slices.SortFunc(r.crossings, func(a, b crossing) int { return cmp.Compare(a.x, b.x) })

			winding := 0
			for i := 0; i < len(r.crossings)-1; i++ {
				winding += r.crossings[i].dir
				if inside(winding, rule) {
					if addSpan(line, r.crossings[i].x-left, r.crossings[i+1].x-left, weight) {
						touched = true
					}
				}
			}
		}
		for i, v := range line {
			if v > 1 {
				line[i] = 1
			}
		}
	}
	return touched
}

func inside(winding int, rule FillRule) bool {
	if rule == FillRuleEvenOdd {
		return winding&1 != 0
	}
	return winding != 0
}

// addSpan adds weight to every pixel of line covered by [xa, xb),
// scaled by the covered fraction for the two end pixels.
func addSpan(line []float32, xa, xb float64, weight float32) bool {
	w := float64(len(line))
	xa = max(xa, 0)
	xb = min(xb, w)
	if xb <= xa {
		return false
	}

	ia := int(math.Floor(xa))
	ib := int(math.Floor(xb))
	if ia == ib {
		line[ia] += weight * float32(xb-xa)
		return true
	}

	line[ia] += weight * float32(float64(ia+1)-xa)
	for i := ia + 1; i < ib; i++ {
		line[i] += weight
	}
	if ib < len(line) {
		line[ib] += weight * float32(xb-float64(ib))
	}
	return true
}
