package raster

import (
	"math"
	"sort"
)

// SpreadMethod defines gradient behavior beyond the stop range.
type SpreadMethod uint8

const (
	SpreadPad SpreadMethod = iota
	SpreadReflect
	SpreadRepeat
)

// TextureType selects how a texture paint samples outside its source.
type TextureType uint8

const (
	TexturePlain TextureType = iota
	TextureTiled
)

// Stop is one gradient color stop with non-premultiplied channels.
type Stop struct {
	Offset     float64
	R, G, B, A float64
}

// Paint produces a color for a user-space position. Channels are
// non-premultiplied floats in [0, 1].
type Paint interface {
	ColorAt(x, y float64) (r, g, b, a float64)
}

// SolidPaint is a single-color paint.
type SolidPaint struct {
	R, G, B, A float64
}

// ColorAt implements Paint.
func (p SolidPaint) ColorAt(_, _ float64) (float64, float64, float64, float64) {
	return p.R, p.G, p.B, p.A
}

// applySpread maps a raw gradient parameter into [0, 1].
func applySpread(t float64, spread SpreadMethod) float64 {
	switch spread {
	case SpreadRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case SpreadReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return t
}

// sortStops returns the stops ordered by offset. Callers pass them
// non-decreasing by convention; this is defensive.
func sortStops(stops []Stop) []Stop {
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// colorAtOffset interpolates the stop colors at parameter t.
func colorAtOffset(stops []Stop, t float64, spread SpreadMethod) (float64, float64, float64, float64) {
	if len(stops) == 0 {
		return 0, 0, 0, 0
	}
	if len(stops) == 1 {
		s := stops[0]
		return s.R, s.G, s.B, s.A
	}

	t = applySpread(t, spread)
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		s := stops[0]
		return s.R, s.G, s.B, s.A
	}
	if idx >= len(stops) {
		s := stops[len(stops)-1]
		return s.R, s.G, s.B, s.A
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Offset == s1.Offset {
		return s1.R, s1.G, s1.B, s1.A
	}
	local := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return s1.R + (s2.R-s1.R)*local,
		s1.G + (s2.G-s1.G)*local,
		s1.B + (s2.B-s1.B)*local,
		s1.A + (s2.A-s1.A)*local
}

// LinearGradientPaint is a linear color transition between two points
// in gradient space. inv maps user space back into gradient space.
type LinearGradientPaint struct {
	start, end Point
	spread     SpreadMethod
	stops      []Stop
	inv        Matrix
}

// NewLinearGradient creates a linear gradient paint. matrix maps
// gradient space into user space.
func NewLinearGradient(x1, y1, x2, y2 float64, spread SpreadMethod, stops []Stop, matrix Matrix) *LinearGradientPaint {
	return &LinearGradientPaint{
		start:  Pt(x1, y1),
		end:    Pt(x2, y2),
		spread: spread,
		stops:  sortStops(stops),
		inv:    matrix.Invert(),
	}
}

// ColorAt implements Paint.
func (p *LinearGradientPaint) ColorAt(x, y float64) (float64, float64, float64, float64) {
	gp := p.inv.MapPoint(Pt(x, y))
	d := p.end.Sub(p.start)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		if len(p.stops) == 0 {
			return 0, 0, 0, 0
		}
		s := p.stops[0]
		return s.R, s.G, s.B, s.A
	}
	t := gp.Sub(p.start).Dot(d) / lenSq
	return colorAtOffset(p.stops, t, p.spread)
}

// RadialGradientPaint radiates colors from a focal point within the
// circle (cx, cy, r). inv maps user space back into gradient space.
type RadialGradientPaint struct {
	center Point
	radius float64
	focus  Point
	spread SpreadMethod
	stops  []Stop
	inv    Matrix
}

// NewRadialGradient creates a radial gradient paint. matrix maps
// gradient space into user space.
func NewRadialGradient(cx, cy, r, fx, fy float64, spread SpreadMethod, stops []Stop, matrix Matrix) *RadialGradientPaint {
	return &RadialGradientPaint{
		center: Pt(cx, cy),
		radius: r,
		focus:  Pt(fx, fy),
		spread: spread,
		stops:  sortStops(stops),
		inv:    matrix.Invert(),
	}
}

// ColorAt implements Paint.
func (p *RadialGradientPaint) ColorAt(x, y float64) (float64, float64, float64, float64) {
	if p.radius <= 0 {
		if len(p.stops) == 0 {
			return 0, 0, 0, 0
		}
		s := p.stops[len(p.stops)-1]
		return s.R, s.G, s.B, s.A
	}
	gp := p.inv.MapPoint(Pt(x, y))
	t := p.gradientT(gp)
	return colorAtOffset(p.stops, t, p.spread)
}

// gradientT computes the gradient parameter for a point in gradient
// space. The simple case measures distance from the center; a focal
// point off center solves a ray-circle intersection.
func (p *RadialGradientPaint) gradientT(gp Point) float64 {
	if p.focus == p.center {
		return gp.Distance(p.center) / p.radius
	}

	d := gp.Sub(p.focus)
	f := p.center.Sub(p.focus)

	a := d.Dot(d)
	if a == 0 {
		return 0
	}
	b := -2 * d.Dot(f)
	c := f.Dot(f) - p.radius*p.radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 1
	}
	sqrtD := math.Sqrt(disc)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	var t float64
	switch {
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return 0
	}

	dist := math.Sqrt(a)
	edge := t * dist
	if edge == 0 {
		return 0
	}
	return dist / edge
}

// TexturePaint samples another surface. inv maps user space back into
// source pixel space.
type TexturePaint struct {
	src     *Surface
	typ     TextureType
	opacity float64
	inv     Matrix
}

// NewTexture creates a texture paint over a shared surface. matrix
// maps source pixels into user space; opacity in [0, 1] scales alpha.
func NewTexture(src *Surface, typ TextureType, opacity float64, matrix Matrix) *TexturePaint {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return &TexturePaint{
		src:     src,
		typ:     typ,
		opacity: opacity,
		inv:     matrix.Invert(),
	}
}

// ColorAt implements Paint.
func (p *TexturePaint) ColorAt(x, y float64) (float64, float64, float64, float64) {
	tx, ty := p.inv.Map(x, y)
	ix := int(math.Floor(tx))
	iy := int(math.Floor(ty))

	w, h := p.src.Width(), p.src.Height()
	switch p.typ {
	case TextureTiled:
		ix = ((ix % w) + w) % w
		iy = ((iy % h) + h) % h
	default:
		if ix < 0 || ix >= w || iy < 0 || iy >= h {
			return 0, 0, 0, 0
		}
	}

	pr, pg, pb, pa := p.src.Pixel(ix, iy)
	if pa == 0 {
		return 0, 0, 0, 0
	}
	// Stored premultiplied; samplers speak non-premultiplied floats.
	return float64(pr) / float64(pa),
		float64(pg) / float64(pa),
		float64(pb) / float64(pa),
		float64(pa) / 255 * p.opacity
}
