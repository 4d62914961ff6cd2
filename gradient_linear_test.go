package raster2d

import "testing"

func TestLinearPaintParamAtEndpoints(t *testing.T) {
	lp := NewLinearPaint(Pt(0, 0), Pt(100, 0), nil, Pad, NonZero)
	if got := lp.ParamAt(0, 0); got != 0 {
		t.Errorf("ParamAt(P0) = %v, want 0", got)
	}
	if got := lp.ParamAt(100, 0); got != 1 {
		t.Errorf("ParamAt(P1) = %v, want 1", got)
	}
	if got := lp.ParamAt(50, 0); got != 0.5 {
		t.Errorf("ParamAt(midpoint) = %v, want 0.5", got)
	}
}

func TestLinearPaintParamAtIgnoresOffAxisComponent(t *testing.T) {
	lp := NewLinearPaint(Pt(0, 0), Pt(100, 0), nil, Pad, NonZero)
	onAxis := lp.ParamAt(50, 0)
	offAxis := lp.ParamAt(50, 1000)
	if onAxis != offAxis {
		t.Errorf("ParamAt should only depend on projection onto the axis: %v != %v", onAxis, offAxis)
	}
}

func TestLinearPaintDegenerateAxisDoesNotPanic(t *testing.T) {
	lp := NewLinearPaint(Pt(5, 5), Pt(5, 5), nil, Pad, NonZero)
	got := lp.ParamAt(5, 5)
	if got != got {
		t.Fatal("ParamAt returned NaN for a degenerate axis")
	}
}
