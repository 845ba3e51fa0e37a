package raster

import (
	"math"
	"testing"
)

func matNear(a, b Matrix) bool {
	const eps = 1e-9
	return math.Abs(a.A-b.A) < eps && math.Abs(a.B-b.B) < eps &&
		math.Abs(a.C-b.C) < eps && math.Abs(a.D-b.D) < eps &&
		math.Abs(a.E-b.E) < eps && math.Abs(a.F-b.F) < eps
}

func TestMatrixMulOrder(t *testing.T) {
	translate := TranslationMatrix(10, 0)
	scale := Matrix{A: 2, D: 2}

	// Mul applies the argument first: scale then translate.
	m := translate.Mul(scale)
	x, y := m.Map(1, 1)
	if x != 12 || y != 2 {
		t.Errorf("Map(1,1) = (%v,%v), want (12,2)", x, y)
	}
}

func TestMatrixInvertRoundtrip(t *testing.T) {
	m := TranslationMatrix(3, 4).Mul(Matrix{A: 2, B: 1, C: -1, D: 3})
	inv := m.Invert()

	for _, p := range []Point{{0, 0}, {1, 0}, {-7, 11}} {
		q := inv.MapPoint(m.MapPoint(p))
		if p.Distance(q) > 1e-9 {
			t.Errorf("roundtrip moved %+v to %+v", p, q)
		}
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	singular := Matrix{A: 1, B: 2, C: 2, D: 4}
	if got := singular.Invert(); !matNear(got, IdentityMatrix()) {
		t.Errorf("singular invert = %+v, want identity", got)
	}
}

func TestScaleFactor(t *testing.T) {
	m := Matrix{A: 2, D: 4}
	if got := m.ScaleFactor(); math.Abs(got-3) > 1e-9 {
		t.Errorf("ScaleFactor = %v, want 3", got)
	}
}

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.Normalize().Length(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Normalize length = %v", got)
	}
	if got := (Point{}).Normalize(); got != (Point{}) {
		t.Errorf("zero Normalize = %+v", got)
	}
	if got := Pt(1, 0).Cross(Pt(0, 1)); got != 1 {
		t.Errorf("Cross = %v, want 1", got)
	}
}
