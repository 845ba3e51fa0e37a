package vg

// PathIterator is a forward-only cursor over a path's commands. It
// snapshots the backing buffer at construction, so it stays valid
// while the source Path value is left alone; mutating that same value
// in place during traversal invalidates the iterator. Re-traversal
// requires a new iterator.
type PathIterator struct {
	commands []PathCommand
	points   []Point
	ci, pi   int
}

// NewPathIterator returns an iterator positioned at the first command.
func NewPathIterator(p *Path) *PathIterator {
	d := p.buffer()
	return &PathIterator{commands: d.commands, points: d.points}
}

// HasNext reports whether another command remains.
func (it *PathIterator) HasNext() bool {
	return it.ci < len(it.commands)
}

// Next returns the current command and its points, then advances.
// MoveTo, LineTo and Close fill only pts[0]; CubicTo fills all three
// with control1, control2 and the endpoint.
func (it *PathIterator) Next() (cmd PathCommand, pts [3]Point) {
	cmd = it.commands[it.ci]
	n := cmd.pointCount()
	copy(pts[:], it.points[it.pi:it.pi+n])
	it.ci++
	it.pi += n
	return cmd, pts
}
