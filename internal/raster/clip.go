package raster

// ClipMask is a per-pixel coverage mask. A nil *ClipMask means
// everything passes.
type ClipMask struct {
	cov           []uint8
	width, height int
}

// NewClipMask returns a mask covering the full w x h grid.
func NewClipMask(w, h int) *ClipMask {
	m := &ClipMask{
		cov:    make([]uint8, w*h),
		width:  w,
		height: h,
	}
	for i := range m.cov {
		m.cov[i] = 255
	}
	return m
}

// Clone returns an independent copy of the mask.
func (m *ClipMask) Clone() *ClipMask {
	out := &ClipMask{
		cov:    make([]uint8, len(m.cov)),
		width:  m.width,
		height: m.height,
	}
	copy(out.cov, m.cov)
	return out
}

// At returns the coverage at (x, y), or 0 outside the mask.
func (m *ClipMask) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return 0
	}
	return m.cov[y*m.width+x]
}

// maskFromPath rasterizes a device-space path into a fresh coverage
// buffer of the given size.
func maskFromPath(p *Path, rule FillRule, w, h int) *ClipMask {
	m := &ClipMask{
		cov:    make([]uint8, w*h),
		width:  w,
		height: h,
	}
	Rasterize(p, rule, w, h, func(y, x0 int, cov []float32) {
		rowOff := y * w
		for i, c := range cov {
			if c <= 0 {
				continue
			}
			if c > 1 {
				c = 1
			}
			m.cov[rowOff+x0+i] = uint8(c*255 + 0.5)
		}
	})
	return m
}

// IntersectPath narrows the mask to the intersection with a
// device-space path. Clips only ever shrink.
func (m *ClipMask) IntersectPath(p *Path, rule FillRule) {
	other := maskFromPath(p, rule, m.width, m.height)
	for i := range m.cov {
		m.cov[i] = mulDiv255(m.cov[i], other.cov[i])
	}
}
