package raster

import (
	"math"
	"sort"

	"golang.org/x/image/math/fixed"
)

// FillRule selects how self-intersecting paths determine interior
// regions.
type FillRule uint8

const (
	FillNonZero FillRule = iota
	FillEvenOdd
)

// subsamples is the number of vertical sample rows per scanline.
// Horizontal coverage is exact per span, so only vertical resolution
// needs supersampling.
const subsamples = 4

// rowFunc receives the antialiased coverage for one scanline. cov[i]
// is the coverage in [0, 1] for pixel (x0+i, y).
type rowFunc func(y, x0 int, cov []float32)

type edge struct {
	x0, y0 float64
	x1, y1 float64
	dir    int // +1 if the original segment pointed down, -1 up
}

type crossing struct {
	x   float64
	dir int
}

// maxFixCoord bounds coordinates entering fixed-point quantization so
// the Int26_6 conversion cannot overflow. It lies far outside any
// surface (extents cap at 2^24), so clamped geometry is unchanged
// everywhere it can be seen; arbitrarily large rectangles still cover
// the whole surface instead of collapsing.
const maxFixCoord = 1<<25 - 1

// fixPoint snaps a point to 1/64 pixel precision. Quantizing before
// edge setup keeps shared subpath endpoints exactly coincident so no
// sample row falls between two edges that should meet.
func fixPoint(p Point) Point {
	return Point{X: fixCoord(p.X), Y: fixCoord(p.Y)}
}

func fixCoord(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v > maxFixCoord {
		v = maxFixCoord
	} else if v < -maxFixCoord {
		v = -maxFixCoord
	}
	f := fixed.Int26_6(math.Round(v * 64))
	return float64(f) / 64
}

// buildEdges converts flattened polylines to y-monotonic edges,
// closing each polyline. Horizontal edges never cross a sample row and
// are dropped.
func buildEdges(polys []Polyline) []edge {
	var edges []edge
	addEdge := func(a, b Point) {
		if a.Y == b.Y {
			return
		}
		if a.Y < b.Y {
			edges = append(edges, edge{a.X, a.Y, b.X, b.Y, 1})
		} else {
			edges = append(edges, edge{b.X, b.Y, a.X, a.Y, -1})
		}
	}
	for _, poly := range polys {
		pts := poly.Points
		if len(pts) < 2 {
			continue
		}
		prev := fixPoint(pts[0])
		first := prev
		for _, pt := range pts[1:] {
			cur := fixPoint(pt)
			addEdge(prev, cur)
			prev = cur
		}
		// Filling treats every subpath as closed.
		addEdge(prev, first)
	}
	return edges
}

// Rasterize fills a flattened path within the (0,0,clipW,clipH) pixel
// grid and streams per-scanline coverage to row. The path must already
// be in device space.
func Rasterize(p *Path, rule FillRule, clipW, clipH int, row rowFunc) {
	edges := buildEdges(Flatten(p))
	if len(edges) == 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, e := range edges {
		minX = math.Min(minX, math.Min(e.x0, e.x1))
		maxX = math.Max(maxX, math.Max(e.x0, e.x1))
		minY = math.Min(minY, e.y0)
		maxY = math.Max(maxY, e.y1)
	}

	x0 := int(math.Floor(minX))
	y0 := int(math.Floor(minY))
	x1 := int(math.Ceil(maxX))
	y1 := int(math.Ceil(maxY))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > clipW {
		x1 = clipW
	}
	if y1 > clipH {
		y1 = clipH
	}
	if x0 >= x1 || y0 >= y1 {
		return
	}

	width := x1 - x0
	cov := make([]float32, width)
	crossings := make([]crossing, 0, 32)

	for y := y0; y < y1; y++ {
		for i := range cov {
			cov[i] = 0
		}
		covered := false
		for s := 0; s < subsamples; s++ {
			sy := float64(y) + (float64(s)+0.5)/subsamples
			crossings = crossings[:0]
			for _, e := range edges {
				if sy < e.y0 || sy >= e.y1 {
					continue
				}
				t := (sy - e.y0) / (e.y1 - e.y0)
				crossings = append(crossings, crossing{
					x:   e.x0 + t*(e.x1-e.x0),
					dir: e.dir,
				})
			}
			if len(crossings) < 2 {
				continue
			}
			sort.Slice(crossings, func(i, j int) bool {
				return crossings[i].x < crossings[j].x
			})

			if rule == FillEvenOdd {
				for i := 0; i+1 < len(crossings); i += 2 {
					if addSpan(cov, x0, crossings[i].x, crossings[i+1].x) {
						covered = true
					}
				}
			} else {
				winding := 0
				spanStart := 0.0
				for _, c := range crossings {
					if winding == 0 {
						spanStart = c.x
					}
					winding += c.dir
					if winding == 0 {
						if addSpan(cov, x0, spanStart, c.x) {
							covered = true
						}
					}
				}
			}
		}
		if covered {
			row(y, x0, cov)
		}
	}
}

// addSpan accumulates one subsample span [sx, ex) into the coverage
// row starting at pixel x0, with fractional coverage at the ends.
// Reports whether anything was added.
func addSpan(cov []float32, x0 int, sx, ex float64) bool {
	if ex <= sx {
		return false
	}
	lo := sx - float64(x0)
	hi := ex - float64(x0)
	if hi <= 0 || lo >= float64(len(cov)) {
		return false
	}
	if lo < 0 {
		lo = 0
	}
	if hi > float64(len(cov)) {
		hi = float64(len(cov))
	}

	const weight = 1.0 / subsamples
	i0 := int(lo)
	i1 := int(hi)
	if i0 == i1 {
		cov[i0] += float32((hi - lo) * weight)
		return true
	}
	cov[i0] += float32((float64(i0+1) - lo) * weight)
	for i := i0 + 1; i < i1; i++ {
		cov[i] += weight
	}
	if i1 < len(cov) {
		cov[i1] += float32((hi - float64(i1)) * weight)
	}
	return true
}
