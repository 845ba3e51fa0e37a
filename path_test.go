package vg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains a path through its iterator.
func collect(p *Path) (cmds []PathCommand, pts []Point) {
	it := NewPathIterator(p)
	for it.HasNext() {
		cmd, ps := it.Next()
		cmds = append(cmds, cmd)
		pts = append(pts, ps[:cmd.pointCount()]...)
	}
	return cmds, pts
}

func TestPathZeroValue(t *testing.T) {
	var p Path
	assert.True(t, p.IsEmpty())
	assert.False(t, p.IsUnique(), "a fresh path aliases the shared empty buffer")
	assert.Equal(t, RectEmpty, p.BoundingRect())
}

func TestPathCopyOnWrite(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(10, 10)
	require.True(t, p.IsUnique())

	p2 := p.Clone()
	assert.False(t, p.IsUnique(), "copies share one buffer")
	assert.False(t, p2.IsUnique())

	p2.LineTo(20, 20)

	cmds, pts := collect(&p)
	assert.Equal(t, []PathCommand{MoveTo, LineTo}, cmds, "mutating the copy must not touch the original")
	assert.Equal(t, []Point{{0, 0}, {10, 10}}, pts)

	cmds2, _ := collect(&p2)
	assert.Equal(t, []PathCommand{MoveTo, LineTo, LineTo}, cmds2)

	assert.True(t, p.IsUnique(), "the split buffer leaves the original sole owner")
	assert.True(t, p2.IsUnique())
}

func TestPathCloneOfEmpty(t *testing.T) {
	var p Path
	p2 := p.Clone()
	p2.MoveTo(1, 1)
	assert.True(t, p.IsEmpty())
	assert.False(t, p2.IsEmpty())
}

func TestPathParse(t *testing.T) {
	var p Path
	require.True(t, p.Parse("M0,0 L10,10 Z"))

	cmds, pts := collect(&p)
	assert.Equal(t, []PathCommand{MoveTo, LineTo, Close}, cmds)
	assert.Equal(t, []Point{{0, 0}, {10, 10}, {0, 0}}, pts)
	assert.Equal(t, Rect{0, 0, 10, 10}, p.BoundingRect())
}

func TestPathParseMalformed(t *testing.T) {
	inputs := []string{
		"M10",                 // missing coordinate
		"L10,10",              // must start with a move
		"M0,0 X5,5",           // unknown command
		"M0,0 L10,,5",         // double comma
		"M0,0 Z 5",            // close cannot repeat with numbers
		"M0,0 A1,1,0,2,0,5,5", // arc flag out of range
	}
	for _, in := range inputs {
		var p Path
		p.MoveTo(1, 2) // pre-existing content must not survive
		assert.False(t, p.Parse(in), "input %q", in)
		assert.True(t, p.IsEmpty(), "failed parse must leave the path empty, input %q", in)
	}
}

func TestPathParseRelativeAndShorthand(t *testing.T) {
	var p Path
	require.True(t, p.Parse("m10,10 l5,0 v5 h-5 z"))

	cmds, pts := collect(&p)
	assert.Equal(t, []PathCommand{MoveTo, LineTo, LineTo, LineTo, Close}, cmds)
	assert.Equal(t, []Point{{10, 10}, {15, 10}, {15, 15}, {10, 15}, {10, 10}}, pts)
}

func TestPathParseImplicitLineTo(t *testing.T) {
	var p Path
	require.True(t, p.Parse("M0,0 10,10 20,0"))

	cmds, _ := collect(&p)
	assert.Equal(t, []PathCommand{MoveTo, LineTo, LineTo}, cmds)
}

func TestPathParseArcFlagsWithoutSeparators(t *testing.T) {
	// SVG allows "A1 1 0 011 5 5": the flags are single digits.
	var p Path
	require.True(t, p.Parse("M0,0 A1 1 0 0 1 2 0"))
	assert.False(t, p.IsEmpty())

	cmds, _ := collect(&p)
	assert.Equal(t, MoveTo, cmds[0])
	for _, cmd := range cmds[1:] {
		assert.Equal(t, CubicTo, cmd, "arcs are stored as cubics")
	}
}

func TestPathQuadToElevation(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.QuadTo(3, 6, 6, 0)

	cmds, pts := collect(&p)
	require.Equal(t, []PathCommand{MoveTo, CubicTo}, cmds)
	assert.InDelta(t, 2.0, pts[1].X, 1e-9)
	assert.InDelta(t, 4.0, pts[1].Y, 1e-9)
	assert.InDelta(t, 4.0, pts[2].X, 1e-9)
	assert.InDelta(t, 4.0, pts[2].Y, 1e-9)
	assert.Equal(t, Point{6, 0}, pts[3])
}

func TestPathArcToDegenerate(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.ArcTo(0, 5, 0, false, false, 10, 0)

	cmds, pts := collect(&p)
	assert.Equal(t, []PathCommand{MoveTo, LineTo}, cmds, "zero radius degrades to a line")
	assert.Equal(t, Point{10, 0}, pts[1])

	before := len(cmds)
	p.ArcTo(5, 5, 0, false, false, 10, 0) // coincident endpoints
	cmds, _ = collect(&p)
	assert.Len(t, cmds, before, "coincident endpoints add nothing")
}

func TestPathReset(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(5, 5)
	p2 := p.Clone()

	p.Reset()
	assert.True(t, p.IsEmpty())
	assert.False(t, p2.IsEmpty(), "reset must not clear a shared copy")
	assert.True(t, p.IsUnique())
}

func TestPathCloseTracksSubpathStart(t *testing.T) {
	var p Path
	p.MoveTo(2, 3)
	p.LineTo(10, 3)
	p.Close()
	p.LineTo(5, 5) // continues from the subpath start

	_, pts := collect(&p)
	assert.Equal(t, Point{2, 3}, pts[2], "close records the subpath origin")
}

func TestPathShapeHelpers(t *testing.T) {
	var rect Path
	rect.AddRect(Rect{1, 2, 3, 4})
	assert.Equal(t, Rect{1, 2, 3, 4}, rect.BoundingRect())

	var ellipse Path
	ellipse.AddEllipse(5, 5, 3, 2)
	assert.Equal(t, Rect{2, 3, 6, 4}, ellipse.BoundingRect())

	var round Path
	round.AddRoundRect(Rect{0, 0, 10, 10}, 2, 2)
	assert.Equal(t, Rect{0, 0, 10, 10}, round.BoundingRect())

	var degenerate Path
	degenerate.AddRoundRect(Rect{0, 0, 10, 10}, 0, 5)
	cmds, _ := collect(&degenerate)
	assert.Equal(t, []PathCommand{MoveTo, LineTo, LineTo, LineTo, Close}, cmds,
		"zero corner radius degrades to a plain rectangle")
}

func TestPathBoundingRectIncludesControls(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.CubicTo(5, 20, 10, 20, 10, 0)
	// Control points count toward the bounds even though the curve
	// itself stays below y=20.
	assert.Equal(t, Rect{0, 0, 10, 20}, p.BoundingRect())
}
