package raster

import "testing"

func TestSurfacePixelRoundTrip(t *testing.T) {
	s := NewSurface(4, 3)
	if s.Width() != 4 || s.Height() != 3 || s.Stride() != 16 {
		t.Fatalf("dims = %dx%d stride %d", s.Width(), s.Height(), s.Stride())
	}

	s.SetPixel(2, 1, 10, 20, 30, 40)
	r, g, b, a := s.Pixel(2, 1)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("Pixel(2,1) = (%d,%d,%d,%d)", r, g, b, a)
	}

	// Out-of-bounds reads come back transparent, writes are dropped.
	if _, _, _, a := s.Pixel(-1, 0); a != 0 {
		t.Error("negative read not transparent")
	}
	if _, _, _, a := s.Pixel(4, 2); a != 0 {
		t.Error("past-edge read not transparent")
	}
	s.SetPixel(100, 100, 255, 255, 255, 255)
	s.SetPixel(-1, -1, 255, 255, 255, 255)
}

func TestSurfaceClear(t *testing.T) {
	s := NewSurface(3, 3)
	s.Clear(0, 128, 0, 128)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if _, g, _, a := s.Pixel(x, y); g != 128 || a != 128 {
				t.Fatalf("pixel (%d,%d) = (g=%d,a=%d) after Clear", x, y, g, a)
			}
		}
	}
}

func TestSurfaceReference(t *testing.T) {
	s := NewSurface(1, 1)
	if s.RefCount() != 1 {
		t.Fatalf("fresh refcount = %d", s.RefCount())
	}
	if s.Reference() != s {
		t.Error("Reference must return the same surface")
	}
	if s.RefCount() != 2 {
		t.Errorf("refcount after Reference = %d, want 2", s.RefCount())
	}
}

func TestNewSurfaceForPixShares(t *testing.T) {
	pix := make([]uint8, 2*2*4)
	s := NewSurfaceForPix(pix, 2, 2)

	s.SetPixel(1, 0, 1, 2, 3, 4)
	if pix[4] != 1 || pix[7] != 4 {
		t.Error("SetPixel must write through to the wrapped buffer")
	}
	pix[0] = 99
	if r, _, _, _ := s.Pixel(0, 0); r != 99 {
		t.Error("Pixel must read from the wrapped buffer")
	}
}
