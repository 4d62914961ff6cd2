package raster2d

import (
	"image/color"
	"testing"
)

// Verify at compile time that ARGB32 implements color.Color.
var _ color.Color = ARGB32(0)

func TestARGB32Channels(t *testing.T) {
	c := NewARGB32(0x80, 0x10, 0x20, 0x30)
	if c.A() != 0x80 || c.R() != 0x10 || c.G() != 0x20 || c.B() != 0x30 {
		t.Fatalf("channels = %02x/%02x/%02x/%02x, want 80/10/20/30", c.A(), c.R(), c.G(), c.B())
	}
}

func TestARGB32IsOpaque(t *testing.T) {
	if !White.IsOpaque() {
		t.Error("White should be opaque")
	}
	if Transparent.IsOpaque() {
		t.Error("Transparent should not be opaque")
	}
}

func TestARGB32Lerp(t *testing.T) {
	black := NewARGB32(0xFF, 0, 0, 0)
	white := NewARGB32(0xFF, 0xFF, 0xFF, 0xFF)

	if got := black.Lerp(white, 0); got != black {
		t.Errorf("Lerp(t=0) = %08x, want %08x", uint32(got), uint32(black))
	}
	mid := black.Lerp(white, 0.5)
	if mid.R() < 0x7A || mid.R() > 0x85 {
		t.Errorf("Lerp(t=0.5).R = %d, want close to 127", mid.R())
	}
}

func TestARGB32RGBAInterface(t *testing.T) {
	r, g, b, a := White.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("White.RGBA() = %v,%v,%v,%v, want all 0xFFFF", r, g, b, a)
	}

	r, g, b, a = Transparent.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("Transparent.RGBA() = %v,%v,%v,%v, want all 0", r, g, b, a)
	}
}
