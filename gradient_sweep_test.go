package raster2d

import "testing"

func TestAtan2ApproxRangeIsUnitInterval(t *testing.T) {
	samples := []struct{ x, y float64 }{
		{1, 0}, {0, 1}, {-1, 0}, {0, -1},
		{1, 1}, {-1, 1}, {-1, -1}, {1, -1},
		{0.01, 5}, {5, 0.01}, {0, 0},
	}
	for _, s := range samples {
		got := atan2Approx(s.x, s.y)
		if got < 0 || got >= 1 {
			t.Errorf("atan2Approx(%v, %v) = %v, want in [0, 1)", s.x, s.y, got)
		}
	}
}

func TestAtan2ApproxOppositeQuadrantIsHalfTurn(t *testing.T) {
	samples := []struct{ x, y float64 }{
		{1, 0.5}, {2, 3}, {0.2, 0.9}, {4, 1},
	}
	for _, s := range samples {
		fwd := atan2Approx(s.x, s.y)
		back := atan2Approx(-s.x, -s.y)
		diff := back - fwd
		if diff < 0 {
			diff += 1
		}
		if diff < 0.499 || diff > 0.501 {
			t.Errorf("atan2Approx(%v,%v)=%v and atan2Approx(%v,%v)=%v differ by %v, want 0.5",
				s.x, s.y, fwd, -s.x, -s.y, back, diff)
		}
	}
}

func TestAngularPaintParamAtBoundedByNumRepeats(t *testing.T) {
	ap := NewAngularPaint(Pt(0, 0), Pt(1, 0), Pt(0, 1), 3, nil, Pad, NonZero)
	points := []Point{Pt(10, 0), Pt(0, 10), Pt(-10, 0), Pt(0, -10), Pt(7, -3), Pt(-4, 9)}
	for _, p := range points {
		got := ap.ParamAt(p.X, p.Y)
		if got < 0 || got >= 3 {
			t.Errorf("ParamAt(%v) = %v, want in [0, 3)", p, got)
		}
	}
}

func TestAngularPaintNumRepeatsScalesLinearly(t *testing.T) {
	one := NewAngularPaint(Pt(0, 0), Pt(1, 0), Pt(0, 1), 1, nil, Pad, NonZero)
	two := NewAngularPaint(Pt(0, 0), Pt(1, 0), Pt(0, 1), 2, nil, Pad, NonZero)

	p := Pt(5, 3)
	gotOne := one.ParamAt(p.X, p.Y)
	gotTwo := two.ParamAt(p.X, p.Y)
	want := gotOne * 2
	if diff := gotTwo - want; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("ParamAt with NumRepeats=2 = %v, want %v (2x NumRepeats=1 value)", gotTwo, want)
	}
}

func TestAngularPaintNumRepeatsClampsToOne(t *testing.T) {
	ap := NewAngularPaint(Pt(0, 0), Pt(1, 0), Pt(0, 1), 0, nil, Pad, NonZero)
	if ap.NumRepeats != 1 {
		t.Errorf("NumRepeats = %v, want clamped to 1", ap.NumRepeats)
	}
}
