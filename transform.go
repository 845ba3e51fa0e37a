package vg

import (
	"math"

	"github.com/govg/vg/internal/raster"
)

// Transform is a 2D affine transformation:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transformation.
var Identity = Transform{A: 1, D: 1}

func (t Transform) matrix() raster.Matrix {
	return raster.Matrix{A: t.A, B: t.B, C: t.C, D: t.D, E: t.E, F: t.F}
}

func fromMatrix(m raster.Matrix) Transform {
	return Transform{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
}

// Multiply composes other into the receiver so that other acts first,
// in the receiver's local space. Under a prior transform, a multiplied
// rotation orbits the local origin rather than the final one.
func (t *Transform) Multiply(other Transform) {
	*t = fromMatrix(t.matrix().Mul(other.matrix()))
}

// PostMultiply composes other into the receiver so that the receiver's
// prior effect acts first and other acts in the outer space.
func (t *Transform) PostMultiply(other Transform) {
	*t = fromMatrix(other.matrix().Mul(t.matrix()))
}

// Rotate composes a rotation by angle degrees in local space.
func (t *Transform) Rotate(angle float64) { t.Multiply(Rotated(angle)) }

// Scale composes a scale in local space.
func (t *Transform) Scale(sx, sy float64) { t.Multiply(Scaled(sx, sy)) }

// Shear composes a shear by angles in degrees in local space.
func (t *Transform) Shear(shx, shy float64) { t.Multiply(Sheared(shx, shy)) }

// Translate composes a translation in local space.
func (t *Transform) Translate(tx, ty float64) { t.Multiply(Translated(tx, ty)) }

// PostRotate composes a rotation by angle degrees in the outer space.
func (t *Transform) PostRotate(angle float64) { t.PostMultiply(Rotated(angle)) }

// PostScale composes a scale in the outer space.
func (t *Transform) PostScale(sx, sy float64) { t.PostMultiply(Scaled(sx, sy)) }

// PostShear composes a shear by angles in degrees in the outer space.
func (t *Transform) PostShear(shx, shy float64) { t.PostMultiply(Sheared(shx, shy)) }

// PostTranslate composes a translation in the outer space.
func (t *Transform) PostTranslate(tx, ty float64) { t.PostMultiply(Translated(tx, ty)) }

// Reset restores the identity transformation.
func (t *Transform) Reset() { *t = Identity }

// Invert replaces the receiver with its inverse. A singular transform
// inverts to Identity.
func (t *Transform) Invert() { *t = t.Inverse() }

// Inverse returns the inverse transformation. A singular transform
// inverts to Identity.
func (t Transform) Inverse() Transform {
	return fromMatrix(t.matrix().Invert())
}

// MapPoint applies the transformation to a point.
func (t Transform) MapPoint(p Point) Point {
	x, y := t.matrix().Map(p.X, p.Y)
	return Point{X: x, Y: y}
}

// Map applies the transformation to coordinates.
func (t Transform) Map(x, y float64) (float64, float64) {
	return t.matrix().Map(x, y)
}

// MapRect returns the axis-aligned bounds of the transformed
// rectangle. An invalid rectangle maps to RectInvalid under every
// transform; an unbounded extent has no transformed bounds.
func (t Transform) MapRect(r Rect) Rect {
	if !r.IsValid() {
		return RectInvalid
	}
	corners := [4]Point{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X + r.W, r.Y + r.H},
		{r.X, r.Y + r.H},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		p := t.MapPoint(c)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// XScale returns the scale magnitude along the local x basis vector.
func (t Transform) XScale() float64 { return math.Hypot(t.A, t.B) }

// YScale returns the scale magnitude along the local y basis vector.
func (t Transform) YScale() float64 { return math.Hypot(t.C, t.D) }

// Rotated returns a rotation by angle degrees.
func Rotated(angle float64) Transform {
	rad := angle * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return Transform{A: c, B: s, C: -s, D: c}
}

// RotatedAround returns a rotation by angle degrees about the pivot
// (cx, cy).
func RotatedAround(angle, cx, cy float64) Transform {
	t := Translated(cx, cy)
	t.Rotate(angle)
	t.Translate(-cx, -cy)
	return t
}

// Scaled returns a scale by (sx, sy).
func Scaled(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// Sheared returns a shear by angles in degrees along each axis.
func Sheared(shx, shy float64) Transform {
	return Transform{
		A: 1, D: 1,
		C: math.Tan(shx * math.Pi / 180),
		B: math.Tan(shy * math.Pi / 180),
	}
}

// Translated returns a translation by (tx, ty).
func Translated(tx, ty float64) Transform {
	return Transform{A: 1, D: 1, E: tx, F: ty}
}
