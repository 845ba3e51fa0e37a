// Package raster is the drawing engine behind the vg value layer.
//
// It owns the pixel surface memory layout (row-major, premultiplied-alpha
// RGBA, fixed stride) and supplies the primitives the canvas composes:
// curve flattening, scanline fill for both fill rules, stroke expansion,
// dash segmentation, arc-to-cubic conversion, paint samplers, and
// Porter-Duff compositing.
package raster

import "sync/atomic"

// Surface is a rectangular pixel buffer in premultiplied RGBA order,
// 4 bytes per pixel. Surfaces are shared between a render target and a
// texture source via Reference; concurrent drawing through two handles
// is the caller's problem to serialize.
type Surface struct {
	pix    []uint8
	width  int
	height int
	stride int
	refs   atomic.Int32
}

// NewSurface creates a surface of the given dimensions, cleared to
// transparent black. Dimensions must be positive; callers clamp first.
func NewSurface(width, height int) *Surface {
	s := &Surface{
		pix:    make([]uint8, width*height*4),
		width:  width,
		height: height,
		stride: width * 4,
	}
	s.refs.Store(1)
	return s
}

// NewSurfaceForPix wraps an existing packed premultiplied RGBA buffer
// without copying. len(pix) must be at least width*height*4 and rows
// must be contiguous.
func NewSurfaceForPix(pix []uint8, width, height int) *Surface {
	s := &Surface{
		pix:    pix,
		width:  width,
		height: height,
		stride: width * 4,
	}
	s.refs.Store(1)
	return s
}

// Reference registers another shared owner and returns the surface.
func (s *Surface) Reference() *Surface {
	s.refs.Add(1)
	return s
}

// RefCount returns the number of live shared owners.
func (s *Surface) RefCount() int {
	return int(s.refs.Load())
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Stride returns the number of bytes per row.
func (s *Surface) Stride() int { return s.stride }

// Pix returns the raw premultiplied RGBA pixel data.
func (s *Surface) Pix() []uint8 { return s.pix }

// Pixel returns the premultiplied RGBA bytes at (x, y).
// Out-of-bounds reads return transparent black.
func (s *Surface) Pixel(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, 0, 0, 0
	}
	i := y*s.stride + x*4
	return s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3]
}

// SetPixel stores premultiplied RGBA bytes at (x, y).
// Out-of-bounds writes are ignored.
func (s *Surface) SetPixel(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.stride + x*4
	s.pix[i] = r
	s.pix[i+1] = g
	s.pix[i+2] = b
	s.pix[i+3] = a
}

// Clear fills the whole surface with a premultiplied color.
func (s *Surface) Clear(r, g, b, a uint8) {
	for i := 0; i < len(s.pix); i += 4 {
		s.pix[i] = r
		s.pix[i+1] = g
		s.pix[i+2] = b
		s.pix[i+3] = a
	}
}
