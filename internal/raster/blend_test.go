package raster

import "testing"

func TestBlendSrcOver(t *testing.T) {
	// Opaque source replaces the destination entirely.
	r, g, b, a := blendSrcOver(10, 20, 30, 255, 200, 200, 200, 255)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("opaque src over = (%d,%d,%d,%d)", r, g, b, a)
	}

	// Transparent source leaves the destination alone.
	r, g, b, a = blendSrcOver(0, 0, 0, 0, 40, 50, 60, 255)
	if r != 40 || g != 50 || b != 60 || a != 255 {
		t.Errorf("transparent src over = (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestBlendOperators(t *testing.T) {
	const (
		sr, sg, sb, sa = 100, 0, 0, 100
		dr, dg, db, da = 0, 200, 0, 200
	)
	tests := []struct {
		name string
		op   Op
		want [4]uint8
	}{
		{"clear", OpClear, [4]uint8{0, 0, 0, 0}},
		{"src", OpSrc, [4]uint8{sr, sg, sb, sa}},
		{"dst", OpDst, [4]uint8{dr, dg, db, da}},
		{"src-in", OpSrcIn, [4]uint8{mulDiv255(sr, da), 0, 0, mulDiv255(sa, da)}},
		{"dst-in", OpDstIn, [4]uint8{0, mulDiv255(dg, sa), 0, mulDiv255(da, sa)}},
		{"src-out", OpSrcOut, [4]uint8{mulDiv255(sr, 255-da), 0, 0, mulDiv255(sa, 255-da)}},
		{"dst-out", OpDstOut, [4]uint8{0, mulDiv255(dg, 255-sa), 0, mulDiv255(da, 255-sa)}},
		{"plus", OpPlus, [4]uint8{100, 200, 0, 255}},
		{"modulate", OpModulate, [4]uint8{0, 0, 0, mulDiv255(sa, da)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := blendFunc(tt.op)
			r, g, b, a := f(sr, sg, sb, sa, dr, dg, db, da)
			got := [4]uint8{r, g, b, a}
			if got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestBlendAtopAlpha(t *testing.T) {
	// Src-atop keeps the destination alpha; dst-atop takes the source's.
	f := blendFunc(OpSrcAtop)
	_, _, _, a := f(10, 0, 0, 100, 0, 0, 0, 200)
	if a != 200 {
		t.Errorf("src-atop alpha = %d, want 200", a)
	}
	f = blendFunc(OpDstAtop)
	_, _, _, a = f(10, 0, 0, 100, 0, 0, 0, 200)
	if a != 100 {
		t.Errorf("dst-atop alpha = %d, want 100", a)
	}
}

func TestMulDiv255(t *testing.T) {
	if got := mulDiv255(255, 255); got != 255 {
		t.Errorf("mulDiv255(255,255) = %d", got)
	}
	if got := mulDiv255(255, 0); got != 0 {
		t.Errorf("mulDiv255(255,0) = %d", got)
	}
	if got := mulDiv255(128, 128); got != 64 {
		t.Errorf("mulDiv255(128,128) = %d, want 64", got)
	}
}

func TestClampAdd(t *testing.T) {
	if got := clampAdd(200, 100); got != 255 {
		t.Errorf("clampAdd(200,100) = %d", got)
	}
	if got := clampAdd(10, 20); got != 30 {
		t.Errorf("clampAdd(10,20) = %d", got)
	}
}
