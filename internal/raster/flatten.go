package raster

// flattenTolerance is the maximum distance between a curve and its
// line-segment approximation, in the space the path is flattened in.
const flattenTolerance = 0.1

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts a path into polylines, one per subpath, replacing
// cubic curves with line segments within flattenTolerance.
func Flatten(p *Path) []Polyline {
	var out []Polyline
	var cur []Point
	var start Point
	var current Point

	flush := func(closed bool) {
		if len(cur) >= 2 {
			out = append(out, Polyline{Points: cur, Closed: closed})
		}
		cur = nil
	}

	pi := 0
	for _, v := range p.Verbs {
		switch v {
		case MoveTo:
			flush(false)
			start = p.Points[pi]
			current = start
			cur = append(cur, current)
		case LineTo:
			current = p.Points[pi]
			cur = append(cur, current)
		case CubicTo:
			c1, c2, end := p.Points[pi], p.Points[pi+1], p.Points[pi+2]
			flattenCubic(current, c1, c2, end, &cur)
			current = end
		case Close:
			if len(cur) > 0 {
				current = start
				flush(true)
				// A command after Close continues from the subpath start.
				cur = append(cur, start)
			}
		}
		pi += v.PointCount()
	}
	flush(false)
	return out
}

// flattenCubic recursively subdivides a cubic Bezier curve until the
// control points are within tolerance of the chord, appending the
// resulting endpoints to out.
func flattenCubic(p0, p1, p2, p3 Point, out *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if max(d1, d2) < flattenTolerance {
		*out = append(*out, p3)
		return
	}

	// de Casteljau subdivision at t = 0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, out)
	flattenCubic(s, r1, q2, p3, out)
}

// distanceToLine returns the distance from p to the segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
