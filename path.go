package vg

import (
	"math"
	"sync/atomic"

	"github.com/govg/vg/internal/raster"
)

// PathCommand tags one drawing command in a path. MoveTo, LineTo and
// Close carry one point; CubicTo carries three (control1, control2,
// endpoint).
type PathCommand uint8

const (
	MoveTo PathCommand = iota
	LineTo
	CubicTo
	Close
)

func (c PathCommand) pointCount() int {
	if c == CubicTo {
		return 3
	}
	return 1
}

// pathData is the shared command buffer behind Path values. It is
// immutable while its reference count is above one; mutators clone it
// first.
type pathData struct {
	commands []PathCommand
	points   []Point
	start    Point // current subpath origin
	current  Point // pen position after the last command
	refs     atomic.Int32
}

func newPathData() *pathData {
	d := &pathData{}
	d.refs.Store(1)
	return d
}

func (d *pathData) clone() *pathData {
	out := &pathData{
		commands: append([]PathCommand(nil), d.commands...),
		points:   append([]Point(nil), d.points...),
		start:    d.start,
		current:  d.current,
	}
	out.refs.Store(1)
	return out
}

// emptyPathData is the canonical buffer every fresh Path aliases. Its
// count is pinned above one so it never appears unique and mutation
// always clones.
var emptyPathData = func() *pathData {
	d := &pathData{}
	d.refs.Store(2)
	return d
}()

// Path is an ordered sequence of drawing commands backed by a single
// reference-counted buffer. The zero value is an empty path.
//
// Copy with Clone: the copy shares the buffer until either value is
// mutated, at which point the mutating value clones it privately.
// Assigning a Path with = bypasses the reference count and is not
// supported.
type Path struct {
	data *pathData // nil aliases emptyPathData
}

func (p *Path) buffer() *pathData {
	if p.data == nil {
		return emptyPathData
	}
	return p.data
}

// ensureUnique makes the backing buffer exclusively owned before a
// mutation, cloning a shared one. The released reference returns the
// other holders to a smaller share count.
func (p *Path) ensureUnique() *pathData {
	if p.data == nil {
		p.data = newPathData()
		return p.data
	}
	if p.data.refs.Load() > 1 {
		d := p.data.clone()
		p.data.refs.Add(-1)
		p.data = d
	}
	return p.data
}

// Clone returns a copy sharing the backing buffer. The copy is O(1);
// the buffer splits only when one of the values is mutated.
func (p *Path) Clone() Path {
	if p.data == nil {
		return Path{}
	}
	p.data.refs.Add(1)
	return Path{data: p.data}
}

// IsUnique reports whether this value is the backing buffer's only
// holder. A fresh path aliases the shared canonical empty buffer and
// is never unique.
func (p *Path) IsUnique() bool {
	return p.data != nil && p.data.refs.Load() == 1
}

// IsEmpty reports whether the path records no commands.
func (p *Path) IsEmpty() bool {
	return len(p.buffer().commands) == 0
}

// Reset drops all commands, leaving an exclusively owned empty buffer.
func (p *Path) Reset() {
	d := p.ensureUnique()
	d.commands = d.commands[:0]
	d.points = d.points[:0]
	d.start = Point{}
	d.current = Point{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	d := p.ensureUnique()
	pt := Point{X: x, Y: y}
	d.commands = append(d.commands, MoveTo)
	d.points = append(d.points, pt)
	d.start = pt
	d.current = pt
}

// LineTo adds a straight segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	d := p.ensureUnique()
	pt := Point{X: x, Y: y}
	d.commands = append(d.commands, LineTo)
	d.points = append(d.points, pt)
	d.current = pt
}

// CubicTo adds a cubic Bezier segment with control points (x1, y1) and
// (x2, y2) ending at (x3, y3).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	d := p.ensureUnique()
	d.commands = append(d.commands, CubicTo)
	d.points = append(d.points, Point{x1, y1}, Point{x2, y2}, Point{x3, y3})
	d.current = Point{X: x3, Y: y3}
}

// QuadTo adds a quadratic Bezier segment, stored as the equivalent
// elevated cubic.
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	cur := p.buffer().current
	c1x := cur.X + 2.0/3.0*(x1-cur.X)
	c1y := cur.Y + 2.0/3.0*(y1-cur.Y)
	c2x := x2 + 2.0/3.0*(x1-x2)
	c2y := y2 + 2.0/3.0*(y1-y2)
	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// ArcTo adds an elliptical arc from the current point to (x, y) using
// the SVG endpoint parameterization, converted to cubic segments. A
// zero radius degrades to a straight line; coincident endpoints add
// nothing.
func (p *Path) ArcTo(rx, ry, xAxisRotation float64, largeArc, sweep bool, x, y float64) {
	cur := p.buffer().current
	segs, line := raster.ArcToCubics(
		raster.Pt(cur.X, cur.Y), rx, ry, xAxisRotation, largeArc, sweep, raster.Pt(x, y))
	if line {
		p.LineTo(x, y)
		return
	}
	for _, s := range segs {
		p.CubicTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.End.X, s.End.Y)
	}
}

// Close closes the current subpath back to its starting point. Closing
// an empty path is a no-op.
func (p *Path) Close() {
	if p.IsEmpty() {
		return
	}
	d := p.ensureUnique()
	d.commands = append(d.commands, Close)
	d.points = append(d.points, d.start)
	d.current = d.start
}

// AddRect appends a closed rectangle subpath.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.X+r.W, r.Y)
	p.LineTo(r.X+r.W, r.Y+r.H)
	p.LineTo(r.X, r.Y+r.H)
	p.Close()
}

// kappa scales a radius to the cubic control distance approximating a
// quarter circle.
const kappa = 0.55228474983079

// AddRoundRect appends a closed rectangle subpath with elliptical
// corners of radii (rx, ry), clamped to half the extent. Zero radii
// degrade to AddRect.
func (p *Path) AddRoundRect(r Rect, rx, ry float64) {
	rx = math.Min(rx, r.W/2)
	ry = math.Min(ry, r.H/2)
	if rx <= 0 || ry <= 0 {
		p.AddRect(r)
		return
	}

	cx := rx * (1 - kappa)
	cy := ry * (1 - kappa)
	right := r.X + r.W
	bottom := r.Y + r.H

	p.MoveTo(r.X+rx, r.Y)
	p.LineTo(right-rx, r.Y)
	p.CubicTo(right-cx, r.Y, right, r.Y+cy, right, r.Y+ry)
	p.LineTo(right, bottom-ry)
	p.CubicTo(right, bottom-cy, right-cx, bottom, right-rx, bottom)
	p.LineTo(r.X+rx, bottom)
	p.CubicTo(r.X+cx, bottom, r.X, bottom-cy, r.X, bottom-ry)
	p.LineTo(r.X, r.Y+ry)
	p.CubicTo(r.X, r.Y+cy, r.X+cx, r.Y, r.X+rx, r.Y)
	p.Close()
}

// AddEllipse appends a closed ellipse subpath centered at (cx, cy).
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	dx := rx * kappa
	dy := ry * kappa

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+dy, cx+dx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-dx, cy+ry, cx-rx, cy+dy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-dy, cx-dx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+dx, cy-ry, cx+rx, cy-dy, cx+rx, cy)
	p.Close()
}

// BoundingRect returns the tight bounds over every recorded point,
// including curve control points. Curve extrema inside the control
// hull may make this an overestimate. An empty path has empty bounds.
func (p *Path) BoundingRect() Rect {
	pts := p.buffer().points
	if len(pts) == 0 {
		return RectEmpty
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, pt := range pts[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// rasterPath converts the commands into the engine's buffer layout.
func (p *Path) rasterPath() *raster.Path {
	d := p.buffer()
	out := &raster.Path{
		Verbs:  make([]raster.Verb, len(d.commands)),
		Points: make([]raster.Point, len(d.points)),
	}
	for i, c := range d.commands {
		switch c {
		case MoveTo:
			out.Verbs[i] = raster.MoveTo
		case LineTo:
			out.Verbs[i] = raster.LineTo
		case CubicTo:
			out.Verbs[i] = raster.CubicTo
		case Close:
			out.Verbs[i] = raster.Close
		}
	}
	for i, pt := range d.points {
		out.Points[i] = raster.Pt(pt.X, pt.Y)
	}
	return out
}
