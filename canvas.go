package vg

import (
	"log/slog"
	"math"

	"github.com/govg/vg/internal/raster"
)

// maxCanvasSize caps surface extents; anything larger clamps to 1x1.
const maxCanvasSize = 1 << 24

// Canvas is a compositing target: one premultiplied RGBA surface plus
// an immutable integer offset locating it in a larger virtual space.
// The offset is what lets a canvas represent a cropped region, such as
// an isolated group or a clipped sub-image, while callers keep issuing
// coordinates in the outer space.
//
// Drawing state (clip, paint, matrix, stroke parameters, operator)
// lives in a save/restore stack managed by the engine context.
type Canvas struct {
	ctx     *raster.Context
	surface *raster.Surface
	x, y    int
}

func newCanvas(x, y, width, height int) *Canvas {
	surface := raster.NewSurface(width, height)
	return &Canvas{
		ctx:     raster.NewContext(surface),
		surface: surface,
		x:       x,
		y:       y,
	}
}

// NewCanvas creates a canvas covering the given region of virtual
// space. The surface spans the integer pixel bounds of the region
// (origin floored, far edge ceiled). Construction never fails:
// non-positive or oversized extents degrade to a 1x1 surface at the
// origin.
func NewCanvas(x, y, width, height float64) *Canvas {
	if width <= 0 || height <= 0 || width > maxCanvasSize || height > maxCanvasSize {
		Logger().Warn("vg: clamping canvas to 1x1",
			slog.Float64("width", width), slog.Float64("height", height))
		return newCanvas(0, 0, 1, 1)
	}
	l := int(math.Floor(x))
	t := int(math.Floor(y))
	r := int(math.Ceil(x + width))
	b := int(math.Ceil(y + height))
	return newCanvas(l, t, r-l, b-t)
}

// NewCanvasRect creates a canvas covering a rectangle of virtual
// space, with the same clamping as NewCanvas.
func NewCanvasRect(rect Rect) *Canvas {
	return NewCanvas(rect.X, rect.Y, rect.W, rect.H)
}

// NewCanvasForBitmap wraps a bitmap's surface with no offset. The
// canvas and the bitmap share pixels; drawing through both without
// external synchronization is undefined.
func NewCanvasForBitmap(b *Bitmap) *Canvas {
	surface := b.surface.Reference()
	return &Canvas{
		ctx:     raster.NewContext(surface),
		surface: surface,
	}
}

// X returns the horizontal offset of the surface in virtual space.
func (c *Canvas) X() int { return c.x }

// Y returns the vertical offset of the surface in virtual space.
func (c *Canvas) Y() int { return c.y }

// Width returns the surface width in pixels.
func (c *Canvas) Width() int { return c.surface.Width() }

// Height returns the surface height in pixels.
func (c *Canvas) Height() int { return c.surface.Height() }

// Rect returns the region of virtual space the canvas covers.
func (c *Canvas) Rect() Rect {
	return Rect{
		X: float64(c.x),
		Y: float64(c.y),
		W: float64(c.surface.Width()),
		H: float64(c.surface.Height()),
	}
}

// SetColor installs a solid paint for subsequent fills and strokes.
func (c *Canvas) SetColor(color Color) {
	c.ctx.SetPaint(raster.SolidPaint{
		R: color.RedF(),
		G: color.GreenF(),
		B: color.BlueF(),
		A: color.AlphaF(),
	})
}

// SetLinearGradient installs a linear gradient paint between (x1, y1)
// and (x2, y2). The gradient carries its own transform, composed
// independently of the transforms passed to draw calls.
func (c *Canvas) SetLinearGradient(x1, y1, x2, y2 float64, spread SpreadMethod, stops GradientStops, transform Transform) {
	c.ctx.SetPaint(raster.NewLinearGradient(
		x1, y1, x2, y2, spread.raster(), rasterStops(stops), transform.matrix()))
}

// SetRadialGradient installs a radial gradient paint over the circle
// (cx, cy, r) with focal point (fx, fy). The gradient carries its own
// transform, composed independently of the transforms passed to draw
// calls.
func (c *Canvas) SetRadialGradient(cx, cy, r, fx, fy float64, spread SpreadMethod, stops GradientStops, transform Transform) {
	c.ctx.SetPaint(raster.NewRadialGradient(
		cx, cy, r, fx, fy, spread.raster(), rasterStops(stops), transform.matrix()))
}

// SetTexture installs another canvas's surface as the paint. The
// surface is shared, not copied; the texture carries its own transform.
func (c *Canvas) SetTexture(source *Canvas, typ TextureType, opacity float64, transform Transform) {
	c.ctx.SetPaint(raster.NewTexture(source.surface, typ.raster(), opacity, transform.matrix()))
}

// applyTransform rebuilds the engine matrix for one draw call: the
// surface offset is always outermost, then the caller's transform.
func (c *Canvas) applyTransform(transform Transform) {
	c.ctx.ResetMatrix()
	c.ctx.Translate(float64(-c.x), float64(-c.y))
	c.ctx.Transform(transform.matrix())
}

// FillPath fills a path with the active paint under the given rule and
// transform, compositing source-over.
func (c *Canvas) FillPath(path *Path, fillRule FillRule, transform Transform) {
	c.applyTransform(transform)
	c.ctx.SetFillRule(fillRule.raster())
	c.ctx.SetOp(raster.OpSrcOver)
	c.ctx.FillPath(path.rasterPath())
}

// StrokePath strokes a path with the active paint and the given pen
// parameters, compositing source-over. Pen width and dash lengths are
// in user space and follow the transform.
func (c *Canvas) StrokePath(path *Path, strokeData StrokeData, transform Transform) {
	c.applyTransform(transform)
	c.ctx.SetStrokeStyle(raster.StrokeStyle{
		Width:      strokeData.LineWidth,
		Cap:        strokeData.LineCap.raster(),
		Join:       strokeData.LineJoin.raster(),
		MiterLimit: strokeData.MiterLimit,
		DashArray:  strokeData.DashArray,
		DashOffset: strokeData.DashOffset,
	})
	c.ctx.SetOp(raster.OpSrcOver)
	c.ctx.StrokePath(path.rasterPath())
}

// ClipPath intersects the clip region with a path under the given rule
// and transform. Clip regions compose by intersection, never union,
// across nested save/restore scopes.
func (c *Canvas) ClipPath(path *Path, clipRule FillRule, transform Transform) {
	c.applyTransform(transform)
	c.ctx.ClipPath(path.rasterPath(), clipRule.raster())
}

// ClipRect intersects the clip region with a rectangle under the given
// rule and transform.
func (c *Canvas) ClipRect(rect Rect, clipRule FillRule, transform Transform) {
	c.applyTransform(transform)
	c.ctx.ClipRect(rect.X, rect.Y, rect.W, rect.H, clipRule.raster())
}

// BlendCanvas composites another canvas onto this one, positioned by
// the other canvas's own offset, with the given operator and opacity.
// The active paint is not used and no caller transform applies.
// Operators that replace the destination see a transparent source
// outside the other canvas's extent.
func (c *Canvas) BlendCanvas(other *Canvas, blendMode BlendMode, opacity float64) {
	transform := Translated(float64(other.x), float64(other.y))
	c.applyTransform(transform)
	c.ctx.SetPaint(raster.NewTexture(other.surface, raster.TexturePlain, opacity, raster.IdentityMatrix()))
	c.ctx.SetOp(blendMode.raster())
	c.ctx.Paint()
}

// DrawImage paints the srcRect portion of a bitmap into dstRect under
// the given transform, scaling axis-aligned from the rect size ratios
// and compositing source-over. Empty source or destination rectangles
// are silent no-ops.
func (c *Canvas) DrawImage(image *Bitmap, dstRect, srcRect Rect, transform Transform) {
	if dstRect.IsEmpty() || srcRect.IsEmpty() {
		return
	}

	xScale := dstRect.W / srcRect.W
	yScale := dstRect.H / srcRect.H
	sampling := raster.Matrix{
		A: xScale, D: yScale,
		E: -srcRect.X * xScale,
		F: -srcRect.Y * yScale,
	}

	c.applyTransform(transform)
	c.ctx.Translate(dstRect.X, dstRect.Y)
	c.ctx.SetPaint(raster.NewTexture(image.surface, raster.TexturePlain, 1, sampling))
	c.ctx.ClipRect(0, 0, dstRect.W, dstRect.H, raster.FillNonZero)
	c.ctx.SetOp(raster.OpSrcOver)
	c.ctx.Paint()
}

// Save pushes the drawing state (clip, paint, matrix, stroke
// parameters, operator) as one atomic checkpoint.
func (c *Canvas) Save() {
	c.ctx.Save()
}

// Restore pops the most recent checkpoint, reinstating the prior
// state including the clip region.
func (c *Canvas) Restore() {
	c.ctx.Restore()
}

// Clear fills the whole surface with a color, ignoring clip and paint.
func (c *Canvas) Clear(color Color) {
	a := color.AlphaF()
	c.surface.Clear(
		floatByte(color.RedF()*a),
		floatByte(color.GreenF()*a),
		floatByte(color.BlueF()*a),
		color.A(),
	)
}

// ConvertToLuminanceMask rewrites every pixel in place: the alpha
// channel becomes the luminance (2R + 3G + B) / 6 of the stored color
// channels and the color channels are zeroed. Used to derive a soft
// mask from a rendered group.
func (c *Canvas) ConvertToLuminanceMask() {
	pix := c.surface.Pix()
	for i := 0; i+3 < len(pix); i += 4 {
		r := uint32(pix[i])
		g := uint32(pix[i+1])
		b := uint32(pix[i+2])
		l := (2*r + 3*g + b) / 6
		pix[i] = 0
		pix[i+1] = 0
		pix[i+2] = 0
		pix[i+3] = uint8(l)
	}
}
