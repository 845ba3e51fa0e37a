package raster

import "testing"

func rectTestPath(x, y, w, h float64) *Path {
	return rectPath(x, y, w, h)
}

// renderCoverage rasterizes into a dense w x h coverage grid.
func renderCoverage(p *Path, rule FillRule, w, h int) []float32 {
	grid := make([]float32, w*h)
	Rasterize(p, rule, w, h, func(y, x0 int, cov []float32) {
		copy(grid[y*w+x0:], cov)
	})
	return grid
}

func TestRasterizeRect(t *testing.T) {
	grid := renderCoverage(rectTestPath(2, 2, 4, 4), FillNonZero, 8, 8)

	if got := grid[4*8+4]; got < 0.999 {
		t.Errorf("interior coverage = %v, want 1", got)
	}
	if got := grid[0]; got != 0 {
		t.Errorf("exterior coverage = %v, want 0", got)
	}
	if got := grid[4*8+1]; got != 0 {
		t.Errorf("left of rect coverage = %v, want 0", got)
	}
}

func TestRasterizeHalfPixel(t *testing.T) {
	// A rect covering the left half of pixel column 2 should read ~0.5.
	grid := renderCoverage(rectTestPath(0, 0, 2.5, 4), FillNonZero, 8, 8)
	got := grid[1*8+2]
	if got < 0.45 || got > 0.55 {
		t.Errorf("fractional coverage = %v, want ~0.5", got)
	}
}

func TestRasterizeFillRules(t *testing.T) {
	// Nested same-direction rectangles: the overlap has winding 2.
	p := &Path{}
	for _, r := range [][4]float64{{0, 0, 8, 8}, {2, 2, 4, 4}} {
		q := rectTestPath(r[0], r[1], r[2], r[3])
		p.Verbs = append(p.Verbs, q.Verbs...)
		p.Points = append(p.Points, q.Points...)
	}

	nz := renderCoverage(p, FillNonZero, 8, 8)
	if got := nz[4*8+4]; got < 0.999 {
		t.Errorf("nonzero inner coverage = %v, want 1", got)
	}

	eo := renderCoverage(p, FillEvenOdd, 8, 8)
	if got := eo[4*8+4]; got != 0 {
		t.Errorf("even-odd inner coverage = %v, want 0", got)
	}
	if got := eo[4*8+1]; got < 0.999 {
		t.Errorf("even-odd ring coverage = %v, want 1", got)
	}
}

func TestRasterizeOpenSubpathImplicitlyClosed(t *testing.T) {
	p := &Path{}
	p.Append(MoveTo, Pt(0, 0))
	p.Append(LineTo, Pt(8, 0))
	p.Append(LineTo, Pt(8, 8))
	p.Append(LineTo, Pt(0, 8))
	// no Close

	grid := renderCoverage(p, FillNonZero, 8, 8)
	if got := grid[4*8+4]; got < 0.999 {
		t.Errorf("open subpath coverage = %v, want 1", got)
	}
}

func TestRasterizeClipsToSurface(t *testing.T) {
	// A path extending past the grid must not write out of range and
	// must still cover the visible part.
	grid := renderCoverage(rectTestPath(-10, -10, 30, 30), FillNonZero, 8, 8)
	for i, c := range grid {
		if c < 0.999 {
			t.Fatalf("pixel %d coverage = %v, want 1", i, c)
		}
	}
}

func TestRasterizeHugeCoordinates(t *testing.T) {
	// Sentinel-sized rectangles (1e20) are far beyond fixed-point range;
	// they must clamp and cover the whole grid, not wrap to nothing.
	grid := renderCoverage(rectTestPath(-1e20, -1e20, 2e20, 2e20), FillNonZero, 8, 8)
	for i, c := range grid {
		if c < 0.999 {
			t.Fatalf("pixel %d coverage = %v, want 1", i, c)
		}
	}
}

func TestRasterizeEmptyPath(t *testing.T) {
	called := false
	Rasterize(&Path{}, FillNonZero, 8, 8, func(int, int, []float32) { called = true })
	if called {
		t.Error("empty path produced rows")
	}
}

func TestFlattenCubicEndpoints(t *testing.T) {
	p := &Path{}
	p.Append(MoveTo, Pt(0, 0))
	p.Append(CubicTo, Pt(0, 10), Pt(10, 10), Pt(10, 0))

	polys := Flatten(p)
	if len(polys) != 1 {
		t.Fatalf("got %d polylines, want 1", len(polys))
	}
	pts := polys[0].Points
	if pts[0] != Pt(0, 0) || pts[len(pts)-1] != Pt(10, 0) {
		t.Errorf("curve endpoints %v .. %v", pts[0], pts[len(pts)-1])
	}
	if len(pts) < 4 {
		t.Errorf("curve flattened to only %d points", len(pts))
	}
}

func TestFlattenCloseSeparatesSubpaths(t *testing.T) {
	p := &Path{}
	p.Append(MoveTo, Pt(0, 0))
	p.Append(LineTo, Pt(4, 0))
	p.Append(LineTo, Pt(4, 4))
	p.Append(Close, Pt(0, 0))
	p.Append(MoveTo, Pt(10, 10))
	p.Append(LineTo, Pt(14, 10))

	polys := Flatten(p)
	if len(polys) != 2 {
		t.Fatalf("got %d polylines, want 2", len(polys))
	}
	if !polys[0].Closed {
		t.Error("first subpath should be closed")
	}
	if polys[1].Closed {
		t.Error("second subpath should be open")
	}
}
