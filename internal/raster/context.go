package raster

// state is one snapshot of the context's drawing parameters.
type state struct {
	matrix   Matrix
	op       Op
	fillRule FillRule
	paint    Paint
	stroke   StrokeStyle
	clip     *ClipMask // nil means unclipped
}

func defaultState() state {
	return state{
		matrix:   IdentityMatrix(),
		op:       OpSrcOver,
		fillRule: FillNonZero,
		paint:    SolidPaint{A: 1},
		stroke: StrokeStyle{
			Width:      1,
			MiterLimit: 10,
		},
	}
}

// Context draws paths onto a surface. Paths are given in user space;
// the current matrix maps them to device pixels at draw time. State
// changes between Save and Restore are discarded on Restore.
type Context struct {
	surface *Surface
	state   state
	stack   []state
}

// NewContext creates a drawing context over a surface.
func NewContext(s *Surface) *Context {
	return &Context{surface: s, state: defaultState()}
}

// Surface returns the render target.
func (c *Context) Surface() *Surface { return c.surface }

// Save pushes the current state. Clip masks are copy-on-write: the
// snapshot shares the mask until a later clip operation replaces it.
func (c *Context) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recently saved state. Restoring past the
// bottom of the stack is a no-op.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// ResetMatrix replaces the current matrix with the identity.
func (c *Context) ResetMatrix() { c.state.matrix = IdentityMatrix() }

// SetMatrix replaces the current matrix.
func (c *Context) SetMatrix(m Matrix) { c.state.matrix = m }

// Matrix returns the current matrix.
func (c *Context) Matrix() Matrix { return c.state.matrix }

// Translate prepends a translation to the current matrix.
func (c *Context) Translate(tx, ty float64) {
	c.state.matrix = c.state.matrix.Mul(TranslationMatrix(tx, ty))
}

// Transform prepends m to the current matrix, so m maps into the
// previous user space.
func (c *Context) Transform(m Matrix) {
	c.state.matrix = c.state.matrix.Mul(m)
}

// SetOp sets the compositing operator for subsequent draws.
func (c *Context) SetOp(op Op) { c.state.op = op }

// SetFillRule sets the rule used by FillPath and ClipPath.
func (c *Context) SetFillRule(rule FillRule) { c.state.fillRule = rule }

// SetPaint sets the active paint. A nil paint draws opaque black.
func (c *Context) SetPaint(p Paint) {
	if p == nil {
		p = SolidPaint{A: 1}
	}
	c.state.paint = p
}

// SetStrokeStyle sets the pen for StrokePath.
func (c *Context) SetStrokeStyle(s StrokeStyle) { c.state.stroke = s }

// FillPath fills a user-space path with the current paint, rule,
// operator and clip.
func (c *Context) FillPath(p *Path) {
	c.fillDevicePath(p.Transform(c.state.matrix), c.state.fillRule)
}

// StrokePath strokes a user-space path with the current pen. The
// outline is built in user space so dash lengths and the pen width
// follow the current matrix, then filled nonzero.
func (c *Context) StrokePath(p *Path) {
	outline := StrokePath(p, c.state.stroke)
	c.fillDevicePath(outline.Transform(c.state.matrix), FillNonZero)
}

// ClipPath intersects the clip with a user-space path under the given
// rule. Clipping only ever narrows the visible region.
func (c *Context) ClipPath(p *Path, rule FillRule) {
	dev := p.Transform(c.state.matrix)
	if c.state.clip == nil {
		c.state.clip = maskFromPath(dev, rule, c.surface.Width(), c.surface.Height())
		return
	}
	next := c.state.clip.Clone()
	next.IntersectPath(dev, rule)
	c.state.clip = next
}

// ClipRect intersects the clip with a user-space rectangle.
func (c *Context) ClipRect(x, y, w, h float64, rule FillRule) {
	c.ClipPath(rectPath(x, y, w, h), rule)
}

// FillRect fills a user-space rectangle with the current paint.
func (c *Context) FillRect(x, y, w, h float64) {
	c.FillPath(rectPath(x, y, w, h))
}

func rectPath(x, y, w, h float64) *Path {
	p := &Path{}
	p.Append(MoveTo, Pt(x, y))
	p.Append(LineTo, Pt(x+w, y))
	p.Append(LineTo, Pt(x+w, y+h))
	p.Append(LineTo, Pt(x, y+h))
	p.Append(Close, Pt(x, y))
	return p
}

// Paint composites the current paint over every pixel of the surface,
// restricted by the clip. Unlike FillPath, pixels outside the paint's
// reach still see a transparent source, which matters for operators
// that replace the destination.
func (c *Context) Paint() {
	bf := blendFunc(c.state.op)
	inv := c.state.matrix.Invert()
	paint := c.state.paint
	clip := c.state.clip
	surf := c.surface

	for y := 0; y < surf.Height(); y++ {
		for x := 0; x < surf.Width(); x++ {
			ca := 1.0
			if clip != nil {
				ca = float64(clip.At(x, y)) / 255
				if ca <= 0 {
					continue
				}
			}

			ux, uy := inv.Map(float64(x)+0.5, float64(y)+0.5)
			pr, pg, pb, pa := paint.ColorAt(ux, uy)

			sa := uint8(clamp01(pa)*255 + 0.5)
			sr := uint8(clamp01(pr*pa)*255 + 0.5)
			sg := uint8(clamp01(pg*pa)*255 + 0.5)
			sb := uint8(clamp01(pb*pa)*255 + 0.5)

			dr, dg, db, da := surf.Pixel(x, y)
			br, bg, bb, ba := bf(sr, sg, sb, sa, dr, dg, db, da)

			m := uint32(ca*255 + 0.5)
			surf.SetPixel(x, y,
				lerpByte(dr, br, m),
				lerpByte(dg, bg, m),
				lerpByte(db, bb, m),
				lerpByte(da, ba, m))
		}
	}
}

// fillDevicePath rasterizes a device-space path and composites each
// covered pixel: sample the paint in user space, premultiply, apply
// the operator against the destination, then mix by coverage.
func (c *Context) fillDevicePath(dev *Path, rule FillRule) {
	bf := blendFunc(c.state.op)
	inv := c.state.matrix.Invert()
	paint := c.state.paint
	clip := c.state.clip
	surf := c.surface

	Rasterize(dev, rule, surf.Width(), surf.Height(), func(y, x0 int, cov []float32) {
		for i, cv := range cov {
			if cv <= 0 {
				continue
			}
			x := x0 + i
			ca := float64(cv)
			if ca > 1 {
				ca = 1
			}
			if clip != nil {
				ca *= float64(clip.At(x, y)) / 255
				if ca <= 0 {
					continue
				}
			}

			ux, uy := inv.Map(float64(x)+0.5, float64(y)+0.5)
			pr, pg, pb, pa := paint.ColorAt(ux, uy)
			if pa <= 0 && c.state.op == OpSrcOver {
				continue
			}

			sa := uint8(clamp01(pa)*255 + 0.5)
			sr := uint8(clamp01(pr*pa)*255 + 0.5)
			sg := uint8(clamp01(pg*pa)*255 + 0.5)
			sb := uint8(clamp01(pb*pa)*255 + 0.5)

			dr, dg, db, da := surf.Pixel(x, y)
			br, bg, bb, ba := bf(sr, sg, sb, sa, dr, dg, db, da)

			m := uint32(ca*255 + 0.5)
			surf.SetPixel(x, y,
				lerpByte(dr, br, m),
				lerpByte(dg, bg, m),
				lerpByte(db, bb, m),
				lerpByte(da, ba, m))
		}
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerpByte mixes d toward b by m/255.
func lerpByte(d, b uint8, m uint32) uint8 {
	return uint8((uint32(d)*(255-m) + uint32(b)*m + 127) / 255)
}
