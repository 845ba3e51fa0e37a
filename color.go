package vg

// Color is a packed 32-bit ARGB color, non-premultiplied.
type Color uint32

// Common colors.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xff000000
	White       Color = 0xffffffff
	Red         Color = 0xffff0000
	Green       Color = 0xff00ff00
	Blue        Color = 0xff0000ff
)

// RGB packs opaque byte channels into a Color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xff)
}

// RGBA packs byte channels into a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromRGBA packs float channels in [0, 1] into a Color. Out-of-range
// values are clamped.
func FromRGBA(r, g, b, a float64) Color {
	return RGBA(floatByte(r), floatByte(g), floatByte(b), floatByte(a))
}

func floatByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*255 + 0.5)
}

// R returns the red channel byte.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel byte.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel byte.
func (c Color) B() uint8 { return uint8(c) }

// A returns the alpha channel byte.
func (c Color) A() uint8 { return uint8(c >> 24) }

// RedF returns the red channel in [0, 1].
func (c Color) RedF() float64 { return float64(c.R()) / 255 }

// GreenF returns the green channel in [0, 1].
func (c Color) GreenF() float64 { return float64(c.G()) / 255 }

// BlueF returns the blue channel in [0, 1].
func (c Color) BlueF() float64 { return float64(c.B()) / 255 }

// AlphaF returns the alpha channel in [0, 1].
func (c Color) AlphaF() float64 { return float64(c.A()) / 255 }

// WithAlpha returns the color with its alpha replaced, keeping the
// color channels.
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(floatByte(a))<<24 | uint32(c)&0x00ffffff)
}
