package vg

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/govg/vg/internal/raster"
)

// Bitmap is a premultiplied RGBA pixel buffer. Its surface may be
// shared with a Canvas via NewCanvasForBitmap; drawing through the
// canvas is then visible through the bitmap without copying.
type Bitmap struct {
	surface *raster.Surface
}

// NewBitmap creates a transparent bitmap. Non-positive dimensions
// clamp to 1.
func NewBitmap(width, height int) *Bitmap {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Bitmap{surface: raster.NewSurface(width, height)}
}

// NewBitmapFromImage converts an image into a bitmap, premultiplying
// through the standard RGBA representation.
func NewBitmapFromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, bounds.Min, xdraw.Src)
	return &Bitmap{surface: raster.NewSurfaceForPix(rgba.Pix, bounds.Dx(), bounds.Dy())}
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.surface.Width() }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.surface.Height() }

// Stride returns the number of bytes per pixel row.
func (b *Bitmap) Stride() int { return b.surface.Stride() }

// Data returns the raw premultiplied RGBA bytes, aliasing the surface.
func (b *Bitmap) Data() []uint8 { return b.surface.Pix() }

// ToImage wraps the pixel data as an image.RGBA without copying. The
// returned image aliases the bitmap.
func (b *Bitmap) ToImage() *image.RGBA {
	return &image.RGBA{
		Pix:    b.surface.Pix(),
		Stride: b.surface.Stride(),
		Rect:   image.Rect(0, 0, b.surface.Width(), b.surface.Height()),
	}
}

// WritePNG encodes the bitmap as PNG.
func (b *Bitmap) WritePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToImage()); err != nil {
		return fmt.Errorf("vg: encoding png: %w", err)
	}
	return nil
}

// SavePNG writes the bitmap to a PNG file.
func (b *Bitmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vg: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := b.WritePNG(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("vg: closing %s: %w", path, err)
	}
	return nil
}
