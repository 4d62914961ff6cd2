package raster2d

// LinearPaint fills along the axis from P0 to P1: a point's gradient
// parameter is its projection onto that axis, normalized to [0,1] between
// the two endpoints before RepeatMode extends it beyond that range.
type LinearPaint struct {
	P0, P1   Point
	Gradient *Gradient
	Repeat   RepeatMode
	Winding  WindingRule
}

func (LinearPaint) paintKind() paintKind { return paintLinear }

// NewLinearPaint creates a LinearPaint from p0 to p1 against gradient.
func NewLinearPaint(p0, p1 Point, gradient *Gradient, repeat RepeatMode, winding WindingRule) LinearPaint {
	return LinearPaint{P0: p0, P1: p1, Gradient: gradient, Repeat: repeat, Winding: winding}
}

// axisLength returns the distance between P0 and P1, floored to a small
// epsilon so a degenerate (coincident) axis cannot divide by zero —
// spec's documented policy for paint-parameter degeneracy.
func (lp LinearPaint) axisLength() (dx, dy, lenSq float64) {
	dx = lp.P1.X - lp.P0.X
	dy = lp.P1.Y - lp.P0.Y
	lenSq = dx*dx + dy*dy
	if lenSq < 1e-12 {
		lenSq = 1e-12
	}
	return
}

// ParamAt returns the unnormalized gradient parameter t ∈ [0,1]-ish for
// (x, y), before RepeatMode remaps it to a LUT index.
func (lp LinearPaint) ParamAt(x, y float64) float64 {
	dx, dy, lenSq := lp.axisLength()
	px := x - lp.P0.X
	py := y - lp.P0.Y
	return (px*dx + py*dy) / lenSq
}
