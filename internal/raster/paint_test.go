package raster

import (
	"math"
	"testing"
)

func TestApplySpread(t *testing.T) {
	tests := []struct {
		name   string
		t0     float64
		spread SpreadMethod
		want   float64
	}{
		{"pad below", -0.5, SpreadPad, 0},
		{"pad above", 1.5, SpreadPad, 1},
		{"pad inside", 0.3, SpreadPad, 0.3},
		{"repeat", 1.25, SpreadRepeat, 0.25},
		{"repeat negative", -0.25, SpreadRepeat, 0.75},
		{"reflect forward", 0.25, SpreadReflect, 0.25},
		{"reflect back", 1.25, SpreadReflect, 0.75},
		{"reflect second period", 2.25, SpreadReflect, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := applySpread(tt.t0, tt.spread); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("applySpread(%v) = %v, want %v", tt.t0, got, tt.want)
			}
		})
	}
}

func TestColorAtOffset(t *testing.T) {
	stops := []Stop{
		{Offset: 0, R: 0, A: 1},
		{Offset: 1, R: 1, A: 1},
	}
	r, _, _, a := colorAtOffset(stops, 0.5, SpreadPad)
	if math.Abs(r-0.5) > 1e-9 || a != 1 {
		t.Errorf("midpoint = (r=%v, a=%v), want (0.5, 1)", r, a)
	}

	r, _, _, _ = colorAtOffset(stops, -5, SpreadPad)
	if r != 0 {
		t.Errorf("below range r = %v, want first stop", r)
	}
	r, _, _, _ = colorAtOffset(stops, 5, SpreadPad)
	if r != 1 {
		t.Errorf("above range r = %v, want last stop", r)
	}
}

func TestColorAtOffsetUnsortedStops(t *testing.T) {
	// Samplers sort defensively; unordered input still interpolates.
	g := NewLinearGradient(0, 0, 1, 0, SpreadPad, []Stop{
		{Offset: 1, R: 1, A: 1},
		{Offset: 0, R: 0, A: 1},
	}, IdentityMatrix())
	r, _, _, _ := g.ColorAt(0.5, 0)
	if math.Abs(r-0.5) > 1e-9 {
		t.Errorf("unsorted stops r = %v, want 0.5", r)
	}
}

func TestLinearGradientWithMatrix(t *testing.T) {
	// The gradient spans x in [0,1] of gradient space, stretched to
	// [0,10] of user space by its own matrix.
	g := NewLinearGradient(0, 0, 1, 0, SpreadPad, []Stop{
		{Offset: 0, R: 0, A: 1},
		{Offset: 1, R: 1, A: 1},
	}, Matrix{A: 10, D: 1})
	r, _, _, _ := g.ColorAt(5, 0)
	if math.Abs(r-0.5) > 1e-9 {
		t.Errorf("r at user 5 = %v, want 0.5", r)
	}
}

func TestRadialGradientCentered(t *testing.T) {
	g := NewRadialGradient(0, 0, 10, 0, 0, SpreadPad, []Stop{
		{Offset: 0, R: 1, A: 1},
		{Offset: 1, R: 0, A: 1},
	}, IdentityMatrix())

	r, _, _, _ := g.ColorAt(0, 0)
	if r != 1 {
		t.Errorf("center r = %v, want 1", r)
	}
	r, _, _, _ = g.ColorAt(5, 0)
	if math.Abs(r-0.5) > 1e-9 {
		t.Errorf("half radius r = %v, want 0.5", r)
	}
	r, _, _, _ = g.ColorAt(20, 0)
	if r != 0 {
		t.Errorf("outside r = %v, want last stop", r)
	}
}

func TestTexturePaintPlain(t *testing.T) {
	src := NewSurface(2, 2)
	src.SetPixel(0, 0, 255, 0, 0, 255)
	src.SetPixel(1, 1, 0, 0, 255, 255)

	p := NewTexture(src, TexturePlain, 1, IdentityMatrix())

	r, _, b, a := p.ColorAt(0.5, 0.5)
	if r != 1 || b != 0 || a != 1 {
		t.Errorf("pixel (0,0) sample = (%v,%v,%v)", r, b, a)
	}
	_, _, b, _ = p.ColorAt(1.5, 1.5)
	if b != 1 {
		t.Errorf("pixel (1,1) sample b = %v, want 1", b)
	}
	_, _, _, a = p.ColorAt(5, 5)
	if a != 0 {
		t.Errorf("outside plain texture a = %v, want 0", a)
	}
}

func TestTexturePaintTiled(t *testing.T) {
	src := NewSurface(2, 2)
	src.SetPixel(0, 0, 255, 0, 0, 255)

	p := NewTexture(src, TextureTiled, 1, IdentityMatrix())
	r, _, _, a := p.ColorAt(2.5, 2.5) // wraps to (0,0)
	if r != 1 || a != 1 {
		t.Errorf("tiled wrap sample = (r=%v, a=%v), want (1,1)", r, a)
	}
	r, _, _, a = p.ColorAt(-1.5, -1.5) // wraps to (0,0)
	if r != 1 || a != 1 {
		t.Errorf("negative tiled wrap sample = (r=%v, a=%v)", r, a)
	}
}

func TestTexturePaintOpacity(t *testing.T) {
	src := NewSurface(1, 1)
	src.SetPixel(0, 0, 255, 0, 0, 255)

	p := NewTexture(src, TexturePlain, 0.5, IdentityMatrix())
	_, _, _, a := p.ColorAt(0.5, 0.5)
	if math.Abs(a-0.5) > 1e-9 {
		t.Errorf("opacity-scaled alpha = %v, want 0.5", a)
	}
}

func TestTexturePaintUnpremultiplies(t *testing.T) {
	src := NewSurface(1, 1)
	src.SetPixel(0, 0, 64, 0, 0, 128) // half-transparent red, premultiplied

	p := NewTexture(src, TexturePlain, 1, IdentityMatrix())
	r, _, _, a := p.ColorAt(0.5, 0.5)
	if math.Abs(a-128.0/255) > 1e-9 {
		t.Errorf("alpha = %v", a)
	}
	if math.Abs(r-0.5) > 0.01 {
		t.Errorf("unpremultiplied r = %v, want ~0.5", r)
	}
}
