package raster2d

import "testing"

func TestGradientLUTCoverageAndMonotonicity(t *testing.T) {
	g := NewGradient(256)
	g.AddStop(0, NewARGB32(0xFF, 0, 0, 0))
	g.AddStop(1, NewARGB32(0xFF, 0xFF, 0, 0))

	if got := g.Lookup(0); got.R() != 0 {
		t.Errorf("lut[0].R = %d, want 0", got.R())
	}
	if got := g.Lookup(g.Length() - 1); got.R() < 250 {
		t.Errorf("lut[L-1].R = %d, want ~255", got.R())
	}

	prev := g.Lookup(0).R()
	for i := 1; i < g.Length(); i++ {
		cur := g.Lookup(i).R()
		if cur < prev {
			t.Fatalf("lut[%d].R = %d is less than lut[%d].R = %d: not monotone", i, cur, i-1, prev)
		}
		prev = cur
	}
}

func TestGradientLengthRoundsToPowerOfTwo(t *testing.T) {
	g := NewGradient(100)
	if l := g.Length(); l != 128 {
		t.Errorf("Length() = %d, want 128", l)
	}
}

func TestGradientEmptyStopsIsTransparent(t *testing.T) {
	g := NewGradient(16)
	if got := g.Lookup(0); got != Transparent {
		t.Errorf("Lookup(0) on an empty gradient = %#x, want transparent", uint32(got))
	}
}

func TestGradientIsOpaque(t *testing.T) {
	opaque := NewGradient(4)
	opaque.AddStop(0, Red)
	opaque.AddStop(1, Blue)
	if !opaque.IsOpaque() {
		t.Error("gradient of two opaque stops should be opaque")
	}

	translucent := NewGradient(4)
	translucent.AddStop(0, Red)
	translucent.AddStop(1, NewARGB32(0x80, 0, 0, 0xFF))
	if translucent.IsOpaque() {
		t.Error("gradient with a translucent stop should not be opaque")
	}
}

func TestGradientResolvePadClampsAtEnds(t *testing.T) {
	g := NewGradient(8)
	g.AddStop(0, Red)
	g.AddStop(1, Blue)
	L := g.Length()

	if got := g.Resolve(-5, Pad); got != g.Lookup(0) {
		t.Errorf("Pad(idx<0) = %#x, want lut[0]", uint32(got))
	}
	if got := g.Resolve(L+5, Pad); got != g.Lookup(L-1) {
		t.Errorf("Pad(idx>=L) = %#x, want lut[L-1]", uint32(got))
	}
}

func TestGradientResolveRepeatPeriodicity(t *testing.T) {
	g := NewGradient(16)
	g.AddStop(0, Red)
	g.AddStop(0.5, Green)
	g.AddStop(1, Blue)
	L := g.Length()

	for _, idx := range []int{0, 3, 7, L - 1} {
		a := g.Resolve(idx, Repeat)
		b := g.Resolve(idx+L, Repeat)
		c := g.Resolve(idx-L, Repeat)
		if a != b || a != c {
			t.Errorf("Repeat(%d) = %#x, Repeat(%d+L) = %#x, Repeat(%d-L) = %#x: not period-L", idx, uint32(a), idx, uint32(b), idx, uint32(c))
		}
	}
}

func TestGradientResolveMirrorSymmetry(t *testing.T) {
	g := NewGradient(16)
	g.AddStop(0, Red)
	g.AddStop(0.5, Green)
	g.AddStop(1, Blue)
	L := g.Length()

	for _, idx := range []int{0, 3, 7, L - 1} {
		fwd := g.Resolve(idx, Mirror)
		back := g.Resolve(-idx, Mirror)
		reflected := g.Resolve(2*L-idx, Mirror)
		if fwd != back {
			t.Errorf("Mirror(%d) = %#x != Mirror(%d) = %#x", idx, uint32(fwd), -idx, uint32(back))
		}
		if fwd != reflected {
			t.Errorf("Mirror(%d) = %#x != Mirror(2L-%d) = %#x", idx, uint32(fwd), idx, uint32(reflected))
		}
	}
}

func TestGradientSetLookupLengthInvalidatesCache(t *testing.T) {
	g := NewGradient(4)
	g.AddStop(0, Red)
	g.AddStop(1, Blue)
	_ = g.Length()

	g.SetLookupLength(64)
	if got := g.Length(); got != 64 {
		t.Errorf("Length() after SetLookupLength(64) = %d, want 64", got)
	}
}
