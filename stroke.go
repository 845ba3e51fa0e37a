package vg

// LineCap styles the ends of open stroked subpaths.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin styles the corners between stroked segments.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// DashArray is an ordered sequence of on/off run lengths in user
// space. An odd-length array repeats itself; an empty or all-zero
// array strokes solid.
type DashArray []float64

// StrokeData carries the pen parameters for StrokePath.
type StrokeData struct {
	LineWidth  float64
	MiterLimit float64
	LineCap    LineCap
	LineJoin   LineJoin
	DashOffset float64
	DashArray  DashArray
}

// DefaultStrokeData returns the SVG stroke defaults: width 1, miter
// limit 4, butt caps and miter joins.
func DefaultStrokeData() StrokeData {
	return StrokeData{
		LineWidth:  1,
		MiterLimit: 4,
	}
}
