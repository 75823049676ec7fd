package cpu

import (
	lru "github.com/hashicorp/golang-lru"
	"honnef.co/go/safeish"
)

// rampSize is the number of samples in a gradient lookup table.
const rampSize = 256

// rampCacheSize bounds the number of distinct stop lists kept alive.
const rampCacheSize = 64

// ramp is a premultiplied gradient lookup table over t in [0, 1].
type ramp [rampSize]PremulColor

// rampCache maps the raw bytes of a stop list to its ramp. Ramps are
// immutable once built, so a cached ramp can be shared by every context.
var rampCache *lru.Cache

func init() {
	var err error
	rampCache, err = lru.New(rampCacheSize)
	if err != nil {
		panic(err)
	}
}

// rampFor returns the lookup table for stops, building it on a cache miss.
func rampFor(stops []ColorStop) *ramp {
	// ColorStop is five float32s with no padding, so its bytes identify it.
	key := string(safeish.SliceCast[[]byte](stops))
	if v, ok := rampCache.Get(key); ok {
		return v.(*ramp)
	}
	r := makeRamp(stops)
	rampCache.Add(key, r)
	return r
}

// makeRamp samples the stops in the order given. Before the first stop the
// first color is used, after the last stop the last color. Between stops
// colors are interpolated in premultiplied sRGB.
func makeRamp(stops []ColorStop) *ramp {
	r := new(ramp)
	if len(stops) == 0 {
		return r
	}

	first, last := stops[0], stops[len(stops)-1]
	for i := range rampSize {
		u := float32(i) / (rampSize - 1)
		switch {
		case u <= first.Offset:
			r[i] = first.Color.Premultiply()
		case u >= last.Offset:
			r[i] = last.Color.Premultiply()
		default:
			r[i] = sampleStops(stops, u)
		}
	}
	return r
}

func sampleStops(stops []ColorStop, u float32) PremulColor {
	for j := 0; j+1 < len(stops); j++ {
		a, b := stops[j], stops[j+1]
		if u < a.Offset || u > b.Offset {
			continue
		}
		du := b.Offset - a.Offset
		if du < 1e-9 {
			return b.Color.Premultiply()
		}
		return a.Color.Premultiply().Lerp(b.Color.Premultiply(), (u-a.Offset)/du)
	}

	// Out-of-order stops can leave u outside every segment; use the last
	// stop that starts at or before u.
	c := stops[0].Color
	for _, s := range stops {
		if s.Offset <= u {
			c = s.Color
		}
	}
	return c.Premultiply()
}

// at returns the ramp color at t, which must already be in [0, 1].
func (r *ramp) at(t float64) PremulColor {
	return r[int(t*(rampSize-1)+0.5)]
}
