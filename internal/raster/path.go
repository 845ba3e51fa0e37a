package raster

// Verb identifies one drawing command in an engine path.
type Verb uint8

// Engine path verbs. MoveTo, LineTo and Close carry one point,
// CubicTo carries three (control1, control2, endpoint). Quadratics and
// arcs are elevated to cubics before they reach the engine.
const (
	MoveTo Verb = iota
	LineTo
	CubicTo
	Close
)

// PointCount returns the number of points the verb carries.
func (v Verb) PointCount() int {
	if v == CubicTo {
		return 3
	}
	return 1
}

// Path is the engine-side command buffer: a verb list and a parallel
// point list with 1 or 3 points per verb.
type Path struct {
	Verbs  []Verb
	Points []Point
}

// Append adds one command to the path.
func (p *Path) Append(v Verb, pts ...Point) {
	p.Verbs = append(p.Verbs, v)
	p.Points = append(p.Points, pts...)
}

// Empty reports whether the path has no commands.
func (p *Path) Empty() bool { return len(p.Verbs) == 0 }

// Transform returns a copy of the path with every point mapped by m.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{
		Verbs:  p.Verbs,
		Points: make([]Point, len(p.Points)),
	}
	for i, pt := range p.Points {
		out.Points[i] = m.MapPoint(pt)
	}
	return out
}
