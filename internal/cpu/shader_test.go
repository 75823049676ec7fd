package cpu

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"honnef.co/go/curve"
)

var (
	red   = AlphaColor{R: 1, A: 1}
	blue  = AlphaColor{B: 1, A: 1}
	green = AlphaColor{G: 1, A: 1}
)

// =============================================================================
// Extend Tests
// =============================================================================

func TestExtend_Apply(t *testing.T) {
	tests := []struct {
		extend Extend
		in     float64
		want   float64
	}{
		{Pad, -0.5, 0},
		{Pad, 0.25, 0.25},
		{Pad, 1.5, 1},
		{Repeat, 1.25, 0.25},
		{Repeat, -0.25, 0.75},
		{Reflect, 1.25, 0.75},
		{Reflect, 2.25, 0.25},
		{Reflect, -0.25, 0.25},
	}
	for _, tt := range tests {
		if got := tt.extend.apply(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Extend(%d).apply(%v) = %v, want %v", tt.extend, tt.in, got, tt.want)
		}
	}
}

func TestExtend_Index(t *testing.T) {
	tests := []struct {
		extend Extend
		in     int
		want   int
	}{
		{Pad, -3, 0},
		{Pad, 7, 3},
		{Repeat, 5, 1},
		{Repeat, -1, 3},
		{Reflect, 4, 3},
		{Reflect, 5, 2},
		{Reflect, -1, 0},
		{Reflect, 8, 0},
	}
	for _, tt := range tests {
		if got := tt.extend.index(tt.in, 4); got != tt.want {
			t.Errorf("Extend(%d).index(%d, 4) = %d, want %d", tt.extend, tt.in, got, tt.want)
		}
	}
}

// =============================================================================
// Ramp Tests
// =============================================================================

func TestMakeRamp(t *testing.T) {
	r := makeRamp([]ColorStop{{0, red}, {1, blue}})

	approx := cmpopts.EquateApprox(0, 1e-6)
	if diff := cmp.Diff(red.Premultiply(), r[0], approx); diff != "" {
		t.Errorf("ramp start mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(blue.Premultiply(), r[rampSize-1], approx); diff != "" {
		t.Errorf("ramp end mismatch (-want +got):\n%s", diff)
	}
	mid := r[rampSize/2]
	if mid[0] <= 0.4 || mid[2] <= 0.4 {
		t.Errorf("ramp middle = %v, want a red/blue mix", mid)
	}
}

func TestMakeRamp_OutsideStops(t *testing.T) {
	r := makeRamp([]ColorStop{{0.25, red}, {0.75, blue}})
	if r[10] != red.Premultiply() {
		t.Errorf("before first stop = %v, want red", r[10])
	}
	if r[250] != blue.Premultiply() {
		t.Errorf("after last stop = %v, want blue", r[250])
	}
}

func TestMakeRamp_UsesInsertionOrder(t *testing.T) {
	// Stops are not sorted: the segment from the first to the second stop
	// is used as given.
	a := makeRamp([]ColorStop{{0, red}, {0.5, green}, {1, blue}})
	b := makeRamp([]ColorStop{{0, red}, {1, blue}, {0.5, green}})
	if *a == *b {
		t.Error("ramps for differently ordered stops are identical")
	}
}

func TestMakeRamp_Empty(t *testing.T) {
	r := makeRamp(nil)
	for i, c := range r {
		if c != (PremulColor{}) {
			t.Fatalf("ramp[%d] = %v, want transparent", i, c)
		}
	}
}

func TestRampFor_Cached(t *testing.T) {
	stops := []ColorStop{{0, red}, {0.3, green}, {1, blue}}
	a := rampFor(stops)
	b := rampFor(append([]ColorStop(nil), stops...))
	if a != b {
		t.Error("equal stop lists produced different ramps")
	}
	c := rampFor([]ColorStop{{0, red}, {0.4, green}, {1, blue}})
	if a == c {
		t.Error("different stop lists share a ramp")
	}
}

// =============================================================================
// Gradient Shader Tests
// =============================================================================

func evalAt(g Gradient, x, y float64) PremulColor {
	s := newShader(g, curve.Identity)
	return s.at(x, y)
}

func TestLinearGradient(t *testing.T) {
	g := Gradient{
		Kind:  LinearKind{Start: curve.Pt(0, 0), End: curve.Pt(10, 0)},
		Stops: []ColorStop{{0, red}, {1, blue}},
	}
	if got := evalAt(g, -5, 3); got != red.Premultiply() {
		t.Errorf("before start = %v, want red", got)
	}
	if got := evalAt(g, 15, 3); got != blue.Premultiply() {
		t.Errorf("after end = %v, want blue", got)
	}

	g.Extend = Repeat
	near := evalAt(g, 10.1, 0)
	if near[0] < 0.9 {
		t.Errorf("repeat just past end = %v, want near red", near)
	}
}

func TestLinearGradient_Degenerate(t *testing.T) {
	g := Gradient{
		Kind:  LinearKind{Start: curve.Pt(5, 5), End: curve.Pt(5, 5)},
		Stops: []ColorStop{{0, green}, {1, blue}},
	}
	if got := evalAt(g, 100, 100); got != green.Premultiply() {
		t.Errorf("degenerate gradient = %v, want first stop", got)
	}
}

func TestRadialGradient(t *testing.T) {
	g := Gradient{
		Kind: RadialKind{
			StartCenter: curve.Pt(0, 0), StartRadius: 0,
			EndCenter: curve.Pt(0, 0), EndRadius: 10,
		},
		Stops: []ColorStop{{0, red}, {1, blue}},
	}
	if got := evalAt(g, 0, 0); got != red.Premultiply() {
		t.Errorf("center = %v, want red", got)
	}
	if got := evalAt(g, 20, 0); got != blue.Premultiply() {
		t.Errorf("outside = %v, want blue (pad)", got)
	}
	mid := evalAt(g, 0, 5)
	if math.Abs(float64(mid[0])-0.5) > 0.01 {
		t.Errorf("halfway = %v, want an even mix", mid)
	}
}

func TestRadialGradient_TwoPointNoSolution(t *testing.T) {
	// Two equal circles side by side: points far above them lie on no
	// interpolated circle with a valid radius.
	g := Gradient{
		Kind: RadialKind{
			StartCenter: curve.Pt(0, 0), StartRadius: 1,
			EndCenter: curve.Pt(10, 0), EndRadius: 1,
		},
		Stops: []ColorStop{{0, red}, {1, blue}},
	}
	if got := evalAt(g, 5, 50); got != (PremulColor{}) {
		t.Errorf("unreachable point = %v, want transparent", got)
	}
	if got := evalAt(g, 5, 0); got[3] != 1 {
		t.Errorf("point between circles = %v, want opaque", got)
	}
}

func TestSweepGradient(t *testing.T) {
	g := Gradient{
		Kind:  SweepKind{Center: curve.Pt(0, 0), StartAngle: 0, EndAngle: 2 * math.Pi},
		Stops: []ColorStop{{0, red}, {0.5, green}, {1, blue}},
	}
	if got := evalAt(g, 10, 0.0001); got[0] < 0.99 {
		t.Errorf("angle 0 = %v, want red", got)
	}
	// Angle π is halfway around.
	if got := evalAt(g, -10, 0.0001); got[1] < 0.98 {
		t.Errorf("angle π = %v, want green", got)
	}
	// Just below 2π, approaching the end of the sweep.
	if got := evalAt(g, 10, -0.0001); got[2] < 0.99 {
		t.Errorf("angle ~2π = %v, want blue", got)
	}
}

func TestGradient_NoStops(t *testing.T) {
	g := Gradient{Kind: LinearKind{End: curve.Pt(1, 0)}}
	if got := evalAt(g, 0.5, 0); got != (PremulColor{}) {
		t.Errorf("gradient without stops = %v, want transparent", got)
	}
}

func TestShader_SingularTransform(t *testing.T) {
	g := Gradient{
		Kind:  LinearKind{End: curve.Pt(1, 0)},
		Stops: []ColorStop{{0, red}},
	}
	s := newShader(g, curve.Scale(0, 1))
	if got := s.at(1, 1); got != (PremulColor{}) {
		t.Errorf("singular paint transform = %v, want transparent", got)
	}
}

// =============================================================================
// Image Shader Tests
// =============================================================================

func checker() *Pixmap {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, PremulRGBA8{255, 0, 0, 255})
	pm.SetPixel(1, 0, PremulRGBA8{0, 255, 0, 255})
	pm.SetPixel(0, 1, PremulRGBA8{0, 0, 255, 255})
	pm.SetPixel(1, 1, PremulRGBA8{255, 255, 255, 255})
	return pm
}

func TestImage_Nearest(t *testing.T) {
	img := Image{Source: checker(), XExtend: Repeat, YExtend: Pad}
	s := newShader(img, curve.Identity)

	tests := []struct {
		x, y float64
		want PremulRGBA8
	}{
		{0.5, 0.5, PremulRGBA8{255, 0, 0, 255}},
		{1.5, 0.5, PremulRGBA8{0, 255, 0, 255}},
		{2.5, 0.5, PremulRGBA8{255, 0, 0, 255}}, // repeated in x
		{0.5, 5.5, PremulRGBA8{0, 0, 255, 255}}, // padded in y
	}
	for _, tt := range tests {
		if got := s.at(tt.x, tt.y).ToRGBA8(); got != tt.want {
			t.Errorf("at(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestImage_Bilinear(t *testing.T) {
	img := Image{Source: checker(), Quality: QualityMedium}
	s := newShader(img, curve.Identity)

	// Exactly between the two top texels.
	got := s.at(1, 0.5).ToRGBA8()
	if got != (PremulRGBA8{128, 128, 0, 255}) {
		t.Errorf("bilinear midpoint = %+v, want {128 128 0 255}", got)
	}
}

func TestImage_BicubicStaysPremultiplied(t *testing.T) {
	pm := NewPixmap(4, 1)
	pm.SetPixel(1, 0, PremulRGBA8{255, 255, 255, 255})
	img := Image{Source: pm, Quality: QualityHigh}
	s := newShader(img, curve.Identity)

	for x := 0.0; x < 4; x += 0.25 {
		c := s.at(x, 0.5)
		for ch := range 3 {
			if c[ch] < 0 || c[ch] > c[3] {
				t.Fatalf("at(%v) = %v is not a valid premultiplied color", x, c)
			}
		}
	}
	if got := s.at(1.5, 0.5).ToRGBA8(); got != (PremulRGBA8{255, 255, 255, 255}) {
		t.Errorf("texel center = %+v, want white", got)
	}
}

func TestImage_PaintTransform(t *testing.T) {
	img := Image{Source: checker()}
	s := newShader(img, curve.Scale(10, 10))
	if got := s.at(15, 5).ToRGBA8(); got != (PremulRGBA8{0, 255, 0, 255}) {
		t.Errorf("scaled lookup = %+v, want green", got)
	}
}
