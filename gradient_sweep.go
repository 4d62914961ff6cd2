package raster2d

import "math"

// AngularPaint is a sweep (conic) gradient: colors rotate around Center.
// AxisX/AxisY establish the zero-angle direction and the ellipse aspect
// the sweep is measured against; NumRepeats controls how many full sweeps
// map across the LUT before RepeatMode takes over.
type AngularPaint struct {
	Center           Point
	AxisX, AxisY     Point
	NumRepeats       int
	Gradient         *Gradient
	Repeat           RepeatMode
	Winding          WindingRule
}

func (AngularPaint) paintKind() paintKind { return paintAngular }

// NewAngularPaint creates an AngularPaint. numRepeats must be at least 1.
func NewAngularPaint(center, axisX, axisY Point, numRepeats int, gradient *Gradient, repeat RepeatMode, winding WindingRule) AngularPaint {
	if numRepeats < 1 {
		numRepeats = 1
	}
	return AngularPaint{Center: center, AxisX: axisX, AxisY: axisY, NumRepeats: numRepeats, Gradient: gradient, Repeat: repeat, Winding: winding}
}

// angularEpsilon keeps the atan2 approximation's denominator away from
// zero at the origin.
const angularEpsilon = 1e-12

// ParamAt returns the angular gradient parameter in [0, numRepeats),
// using the no-transcendentals atan2 approximation the blit pipeline
// evaluates per pixel: g = (|x|-|y|)/max(|x|+|y|, ε), p(g) = c0 - c1·g +
// c3·g³, then a quadrant fix-up by XORing the sign of p with
// sign(x)^sign(y) and nudging by 0.5 when x<0.
func (ap AngularPaint) ParamAt(x, y float64) float64 {
	lx := ap.AxisX.Length()
	ly := ap.AxisY.Length()
	if lx < 1e-6 {
		lx = 1e-6
	}
	if ly < 1e-6 {
		ly = 1e-6
	}
	dx := x - ap.Center.X
	dy := y - ap.Center.Y

	ux, uy := ap.AxisX.X/lx, ap.AxisX.Y/lx
	vx, vy := ap.AxisY.X/ly, ap.AxisY.Y/ly

	lx2 := (dx*ux + dy*uy) / lx
	ly2 := (dx*vx + dy*vy) / ly

	frac := atan2Approx(lx2, ly2) // in [0,1)
	return frac * float64(ap.NumRepeats)
}

// atan2Approx returns an approximation of atan2(y, x)/(2π), normalized to
// [0, 1), using the polynomial fast-path described by the gradient math:
// no transcendental calls per pixel.
func atan2Approx(x, y float64) float64 {
	const c0, c1, c3 = 0.125, 0.1591549, 0.0341549

	ax, ay := math.Abs(x), math.Abs(y)
	denom := ax + ay
	if denom < angularEpsilon {
		denom = angularEpsilon
	}
	g := (ax - ay) / denom

	p := c0 - c1*g + c3*g*g*g

	signX := 0.0
	if x < 0 {
		signX = 1.0
	}
	signY := 0.0
	if y < 0 {
		signY = 1.0
	}
	quadrantFlip := (signX != signY)

	if quadrantFlip {
		p = -p
	}
	if x < 0 {
		p += 0.5
	}

	// Fold atan2's [-0.5, 0.5) result into [0, 1).
	p = math.Mod(p+1.0, 1.0)
	return p
}
