package vg

// Point is a location or vector in user space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Size is a width/height extent.
type Size struct {
	W, H float64
}

// Box is an axis-aligned bounding box in origin/extent form,
// interchangeable with Rect.
type Box struct {
	X, Y, W, H float64
}

// Rect returns the box as a Rect.
func (b Box) Rect() Rect { return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H} }

// Rect is an axis-aligned rectangle with origin and extent.
//
// Negative extents mark a rectangle as invalid. Invalid and infinite
// rectangles propagate through geometric operations; they are never
// silently repaired.
type Rect struct {
	X, Y, W, H float64
}

// Rect sentinels. RectInvalid marks an absent or unbounded extent;
// RectInfinite covers all of user space.
var (
	RectEmpty    = Rect{}
	RectInvalid  = Rect{0, 0, -1, -1}
	RectInfinite = Rect{-1e20, -1e20, 2e20, 2e20}
)

// RectFromBox converts a bounding box to a Rect.
func RectFromBox(b Box) Rect { return b.Rect() }

// IsValid reports whether both extents are non-negative.
func (r Rect) IsValid() bool { return r.W >= 0 && r.H >= 0 }

// IsEmpty reports whether the rectangle has zero area along an axis.
func (r Rect) IsEmpty() bool { return r.W == 0 || r.H == 0 }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Box returns the rectangle in bounding-box form.
func (r Rect) Box() Box { return Box{X: r.X, Y: r.Y, W: r.W, H: r.H} }
