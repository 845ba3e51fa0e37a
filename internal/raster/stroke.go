package raster

import "math"

// LineCap styles the ends of open stroked subpaths.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin styles the corners between stroked segments.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// StrokeStyle carries the pen parameters for stroking.
type StrokeStyle struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	DashArray  []float64
	DashOffset float64
}

// StrokePath builds the outline of a stroked path as a fill path. Each
// segment, join and cap is stamped as a convex polygon with a uniform
// winding, so rasterizing the result with the nonzero rule yields the
// union of the stamps. The output lives in the same space as the
// input; callers transform it to device space before filling.
func StrokePath(p *Path, style StrokeStyle) *Path {
	out := &Path{}
	if style.Width <= 0 {
		return out
	}
	r := style.Width / 2

	polys := Dash(Flatten(p), style.DashArray, style.DashOffset)
	for _, poly := range polys {
		strokePolyline(out, poly, r, style)
	}
	return out
}

func strokePolyline(out *Path, poly Polyline, r float64, style StrokeStyle) {
	pts := dedupe(poly.Points)
	if len(pts) == 0 {
		return
	}
	if len(pts) == 1 {
		// Degenerate subpath: caps decide whether a dot appears.
		switch style.Cap {
		case CapRound:
			stampDisc(out, pts[0], r)
		case CapSquare:
			c := pts[0]
			stampPolygon(out, []Point{
				{c.X - r, c.Y - r},
				{c.X + r, c.Y - r},
				{c.X + r, c.Y + r},
				{c.X - r, c.Y + r},
			})
		}
		return
	}

	closed := poly.Closed
	n := len(pts)

	segment := func(i int) (Point, Point) {
		return pts[i], pts[(i+1)%n]
	}
	segCount := n - 1
	if closed {
		segCount = n
	}

	for i := 0; i < segCount; i++ {
		a, b := segment(i)
		stampSegment(out, a, b, r)
	}

	// Joins at interior vertices; a closed ring also joins at the seam.
	for i := 1; i < segCount; i++ {
		prev, v := segment(i - 1)
		_, next := segment(i)
		stampJoin(out, prev, v, next, r, style)
	}
	if closed {
		prev, v := segment(segCount - 1)
		_, next := segment(0)
		stampJoin(out, prev, v, next, r, style)
		return
	}

	// Caps on the open ends.
	switch style.Cap {
	case CapRound:
		stampDisc(out, pts[0], r)
		stampDisc(out, pts[n-1], r)
	case CapSquare:
		stampSquareCap(out, pts[1], pts[0], r)
		stampSquareCap(out, pts[n-2], pts[n-1], r)
	}
}

// dedupe drops consecutive coincident points.
func dedupe(pts []Point) []Point {
	if len(pts) == 0 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	// A ring whose last point returned to the first collapses it.
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// stampSegment emits the rectangle swept by the pen along a -> b.
func stampSegment(out *Path, a, b Point, r float64) {
	d := b.Sub(a).Normalize()
	if d == (Point{}) {
		return
	}
	nrm := Point{X: -d.Y, Y: d.X}.Mul(r)
	stampPolygon(out, []Point{
		a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm),
	})
}

// stampJoin fills the outer corner at vertex v between segments
// prev -> v and v -> next.
func stampJoin(out *Path, prev, v, next Point, r float64, style StrokeStyle) {
	d0 := v.Sub(prev).Normalize()
	d1 := next.Sub(v).Normalize()
	cross := d0.Cross(d1)
	if cross == 0 {
		// Collinear or reversing; segments already overlap here and a
		// round join would need a disc only on reversal.
		if style.Join == JoinRound && d0.Dot(d1) < 0 {
			stampDisc(out, v, r)
		}
		return
	}

	if style.Join == JoinRound {
		stampDisc(out, v, r)
		return
	}

	// Outer normals point away from the turn.
	sign := 1.0
	if cross > 0 {
		sign = -1
	}
	n0 := Point{X: -d0.Y, Y: d0.X}.Mul(r * sign)
	n1 := Point{X: -d1.Y, Y: d1.X}.Mul(r * sign)
	p0 := v.Add(n0)
	p1 := v.Add(n1)

	if style.Join == JoinMiter {
		// Miter length relative to the half width is 1/sin(phi/2),
		// phi being the interior angle: cos(phi) = -d0.d1.
		cosTheta := d0.Dot(d1)
		sinHalf := math.Sqrt(math.Max(0, (1+cosTheta)/2))
		if sinHalf > 0 && 1/sinHalf <= style.MiterLimit {
			bisect := n0.Add(n1).Normalize()
			miter := v.Add(bisect.Mul(r / sinHalf))
			stampPolygon(out, []Point{v, p0, miter, p1})
			return
		}
		// Over the limit: fall through to bevel.
	}
	stampPolygon(out, []Point{v, p0, p1})
}

// stampSquareCap extends the segment a -> end past end by the half
// width, covering the cap area.
func stampSquareCap(out *Path, a, end Point, r float64) {
	d := end.Sub(a).Normalize()
	if d == (Point{}) {
		return
	}
	stampSegment(out, end, end.Add(d.Mul(r)), r)
}

// stampDisc approximates a filled circle with a polygon whose chord
// error stays within the flattening tolerance.
func stampDisc(out *Path, c Point, r float64) {
	if r <= 0 {
		return
	}
	steps := 8
	if r > flattenTolerance {
		steps = int(math.Ceil(math.Pi / math.Acos(1-flattenTolerance/r)))
		if steps < 8 {
			steps = 8
		}
	}
	pts := make([]Point, steps)
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		pts[i] = Point{X: c.X + r*math.Cos(theta), Y: c.Y + r*math.Sin(theta)}
	}
	stampPolygon(out, pts)
}

// stampPolygon appends a closed polygon, normalizing its orientation
// so every stamp winds the same way and the nonzero rule unions them.
func stampPolygon(out *Path, pts []Point) {
	if len(pts) < 3 {
		return
	}
	area := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].Cross(pts[j])
	}
	if area < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	out.Append(MoveTo, pts[0])
	for _, p := range pts[1:] {
		out.Append(LineTo, p)
	}
	out.Append(Close, pts[0])
}
