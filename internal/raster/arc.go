package raster

import "math"

// Cubic is one cubic Bezier segment produced by arc conversion. The
// start point is implicit.
type Cubic struct {
	C1, C2, End Point
}

// ArcToCubics converts an endpoint-parameterized elliptical arc from
// start to end into cubic segments of at most a quarter turn each.
// rotDeg is the ellipse x-axis rotation in degrees.
//
// Degenerate inputs follow SVG arc rules: coincident endpoints produce
// nothing, a zero or non-finite radius asks the caller for a straight
// line (line true), and undersized radii are scaled up uniformly until
// the arc fits.
func ArcToCubics(start Point, rx, ry, rotDeg float64, largeArc, sweep bool, end Point) (segs []Cubic, line bool) {
	if start == end {
		return nil, false
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0 || ry == 0 || math.IsInf(rx, 0) || math.IsInf(ry, 0) ||
		math.IsNaN(rx) || math.IsNaN(ry) {
		return nil, true
	}

	phi := rotDeg * math.Pi / 180
	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)

	// Transform the midpoint into the ellipse frame.
	dx := (start.X - end.X) / 2
	dy := (start.Y - end.Y) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	// Scale up radii that cannot span the endpoints.
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Center in the ellipse frame.
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	var coef float64
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (start.X+end.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (start.Y+end.Y)/2

	theta1 := vectorAngle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dtheta := vectorAngle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(dtheta) / (math.Pi / 2)))
	if n == 0 {
		return nil, false
	}
	delta := dtheta / float64(n)
	// Cubic approximation constant for a delta-radian circular arc.
	alpha := 4.0 / 3.0 * math.Tan(delta/4)

	pointAt := func(theta float64) Point {
		ex := rx * math.Cos(theta)
		ey := ry * math.Sin(theta)
		return Point{
			X: cosPhi*ex - sinPhi*ey + cx,
			Y: sinPhi*ex + cosPhi*ey + cy,
		}
	}
	derivAt := func(theta float64) Point {
		ex := -rx * math.Sin(theta)
		ey := ry * math.Cos(theta)
		return Point{
			X: cosPhi*ex - sinPhi*ey,
			Y: sinPhi*ex + cosPhi*ey,
		}
	}

	segs = make([]Cubic, 0, n)
	p0 := start
	t0 := theta1
	for i := 0; i < n; i++ {
		t1 := t0 + delta
		p1 := pointAt(t1)
		if i == n-1 {
			p1 = end // avoid accumulated drift at the join
		}
		segs = append(segs, Cubic{
			C1:  p0.Add(derivAt(t0).Mul(alpha)),
			C2:  p1.Sub(derivAt(t1).Mul(alpha)),
			End: p1,
		})
		p0 = p1
		t0 = t1
	}
	return segs, false
}

// vectorAngle returns the signed angle from vector u to vector v.
func vectorAngle(ux, uy, vx, vy float64) float64 {
	dot := ux*vx + uy*vy
	norm := math.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
	if norm == 0 {
		return 0
	}
	cos := dot / norm
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	angle := math.Acos(cos)
	if ux*vy-uy*vx < 0 {
		angle = -angle
	}
	return angle
}
