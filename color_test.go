package vg

import "testing"

func TestColorChannels(t *testing.T) {
	c := RGBA(0x11, 0x22, 0x33, 0x44)
	if c != Color(0x44112233) {
		t.Fatalf("RGBA packed %08x, want 44112233", uint32(c))
	}
	if c.R() != 0x11 || c.G() != 0x22 || c.B() != 0x33 || c.A() != 0x44 {
		t.Errorf("channel accessors = %02x %02x %02x %02x", c.R(), c.G(), c.B(), c.A())
	}
}

func TestColorConstants(t *testing.T) {
	if Black.AlphaF() != 1 || Black.RedF() != 0 {
		t.Errorf("Black = %08x", uint32(Black))
	}
	if White.RedF() != 1 || White.GreenF() != 1 || White.BlueF() != 1 {
		t.Errorf("White = %08x", uint32(White))
	}
	if Transparent.A() != 0 {
		t.Errorf("Transparent = %08x", uint32(Transparent))
	}
}

func TestFromRGBAClamps(t *testing.T) {
	c := FromRGBA(2, -1, 0.5, 1)
	if c.R() != 0xff || c.G() != 0 || c.A() != 0xff {
		t.Errorf("FromRGBA clamp = %08x", uint32(c))
	}
	if got := c.B(); got != 128 {
		t.Errorf("B() = %d, want 128", got)
	}
}

func TestWithAlpha(t *testing.T) {
	c := Red.WithAlpha(0.5)
	if c.R() != 0xff || c.G() != 0 || c.B() != 0 {
		t.Errorf("WithAlpha touched color channels: %08x", uint32(c))
	}
	if got := c.A(); got != 128 {
		t.Errorf("A() = %d, want 128", got)
	}
}
