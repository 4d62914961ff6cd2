package raster2d

import "testing"

func rectPath(x0, y0, x1, y1 float64) *Path {
	p := NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y0)
	p.LineTo(x1, y1)
	p.LineTo(x0, y1)
	p.Close()
	return p
}

func TestDrawSolidSquare(t *testing.T) {
	c := NewCanvas(32, 32)
	c.Draw(rectPath(8, 8, 24, 24), NewSolidPaint(NewARGB32(0xFF, 0xFF, 0, 0)))

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			inside := x >= 8 && x < 24 && y >= 8 && y < 24
			got := c.ARGBAt(x, y)
			if inside && got != NewARGB32(0xFF, 0xFF, 0, 0) {
				t.Fatalf("(%d,%d) = %#x, want opaque red", x, y, uint32(got))
			}
			if !inside && got != Transparent {
				t.Fatalf("(%d,%d) = %#x, want transparent", x, y, uint32(got))
			}
		}
	}
}

func TestDrawEvenOddDonut(t *testing.T) {
	c := NewCanvas(64, 64)
	p := NewPath()
	p.MoveTo(8, 8)
	p.LineTo(56, 8)
	p.LineTo(56, 56)
	p.LineTo(8, 56)
	p.Close()
	p.MoveTo(20, 20)
	p.LineTo(44, 20)
	p.LineTo(44, 44)
	p.LineTo(20, 44)
	p.Close()

	green := NewARGB32(0xFF, 0, 0xFF, 0)
	c.Draw(p, NewSolidPaintWithWinding(green, EvenOdd))

	if got := c.ARGBAt(32, 32); got != Transparent {
		t.Errorf("center (32,32) = %#x, want transparent under EvenOdd", uint32(got))
	}
	if got := c.ARGBAt(12, 32); got != green {
		t.Errorf("ring (12,32) = %#x, want opaque green", uint32(got))
	}
}

func TestDrawLinearGradientSpan(t *testing.T) {
	c := NewCanvas(256, 1)
	g := NewGradient(256)
	g.AddStop(0, NewARGB32(0xFF, 0, 0, 0))
	g.AddStop(1, NewARGB32(0xFF, 0xFF, 0xFF, 0xFF))
	paint := NewLinearPaint(Pt(0, 0), Pt(256, 0), g, Pad, NonZero)

	c.Draw(rectPath(0, 0, 256, 1), paint)

	if got := c.ARGBAt(0, 0); got.R() != 0 {
		t.Errorf("pixel 0 red channel = %d, want 0", got.R())
	}
	if got := c.ARGBAt(255, 0); got.R() < 250 {
		t.Errorf("pixel 255 red channel = %d, want near 255", got.R())
	}

	prev := c.ARGBAt(0, 0).R()
	for x := 1; x < 256; x++ {
		cur := c.ARGBAt(x, 0).R()
		if cur < prev {
			t.Fatalf("red channel not monotone at x=%d: %d -> %d", x, prev, cur)
		}
		prev = cur
	}
}

func TestDrawClipShortCircuit(t *testing.T) {
	c := NewCanvas(32, 32)
	fill := NewARGB32(0xFF, 0xAB, 0xCD, 0xEF)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			o := y*c.stride + x*4
			c.pix[o+0] = fill.R()
			c.pix[o+1] = fill.G()
			c.pix[o+2] = fill.B()
			c.pix[o+3] = fill.A()
		}
	}

	c.SetView(10, 10, 10, 10)
	c.SetClip(100, 100, 10, 10) // disjoint from the view: clip collapses to empty

	c.Draw(rectPath(-1000, -1000, 1000, 1000), NewSolidPaint(Red))

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if got := c.ARGBAt(x, y); got != fill {
				t.Fatalf("(%d,%d) changed to %#x despite empty clip", x, y, uint32(got))
			}
		}
	}
}

func TestClipIntersectionIdempotent(t *testing.T) {
	c := NewCanvas(100, 100)
	c.SetClip(10, 10, 40, 40)
	first := c.clip.Clip()
	c.SetClip(10, 10, 40, 40)
	second := c.clip.Clip()
	if first != second {
		t.Errorf("repeating an identical SetClip changed the clip: %v -> %v", first, second)
	}
}

func TestPushPopStateRestoresViewAndClip(t *testing.T) {
	c := NewCanvas(100, 100)
	wantX, wantY, wantW, wantH := c.View()

	c.PushState()
	c.SetView(5, 5, 10, 10)
	c.PopState()

	gotX, gotY, gotW, gotH := c.View()
	if gotX != wantX || gotY != wantY || gotW != wantW || gotH != wantH {
		t.Errorf("view after push/pop = (%d,%d,%d,%d), want (%d,%d,%d,%d)", gotX, gotY, gotW, gotH, wantX, wantY, wantW, wantH)
	}
}

func TestCanvasIsImageImage(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Draw(rectPath(0, 0, 4, 4), NewSolidPaint(Blue))

	bounds := c.Bounds()
	if bounds.Dx() != 4 || bounds.Dy() != 4 {
		t.Fatalf("Bounds = %v, want 4x4", bounds)
	}
	r, g, b, a := c.At(0, 0).RGBA()
	if r != 0 || g != 0 || b == 0 || a == 0 {
		t.Errorf("At(0,0) = (%d,%d,%d,%d), want opaque blue", r, g, b, a)
	}
}

func TestNewCanvasFromBufferRejectsBadStride(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a stride that is not a multiple of 16 bytes")
		}
	}()
	pix := make([]byte, 100)
	NewCanvasFromBuffer(pix, 10, 10, 17)
}
