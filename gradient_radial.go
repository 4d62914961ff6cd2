package raster2d

import "math"

// RadialPaint is an elliptical radial gradient: Center plus two radius
// vectors (RadiusX, RadiusY) describing the ellipse's axes. A point's
// gradient parameter is its elliptical distance from Center, normalized
// so 1.0 lands on the ellipse boundary.
type RadialPaint struct {
	Center           Point
	RadiusX, RadiusY Point
	Gradient         *Gradient
	Repeat           RepeatMode
	Winding          WindingRule
}

func (RadialPaint) paintKind() paintKind { return paintRadial }

// NewRadialPaint creates a RadialPaint. radiusX and radiusY are vectors
// from center along the ellipse's two axes (for a circle, perpendicular
// and equal length).
func NewRadialPaint(center, radiusX, radiusY Point, gradient *Gradient, repeat RepeatMode, winding WindingRule) RadialPaint {
	return RadialPaint{Center: center, RadiusX: radiusX, RadiusY: radiusY, Gradient: gradient, Repeat: repeat, Winding: winding}
}

// ParamAt returns the elliptical radial parameter t at (x, y): the
// per-axis projections are combined as sqrt(Δt0² + Δt1²). It is evaluated
// from scratch for each pixel.
func (rp RadialPaint) ParamAt(x, y float64) float64 {
	dx := x - rp.Center.X
	dy := y - rp.Center.Y

	lx := rp.RadiusX.Length()
	ly := rp.RadiusY.Length()
	if lx < 1e-6 {
		lx = 1e-6
	}
	if ly < 1e-6 {
		ly = 1e-6
	}

	ux := rp.RadiusX.X/lx
	uy := rp.RadiusX.Y/lx
	vx := rp.RadiusY.X/ly
	vy := rp.RadiusY.Y/ly

	t0 := (dx*ux + dy*uy) / lx
	t1 := (dx*vx + dy*vy) / ly
	return math.Sqrt(t0*t0 + t1*t1)
}

// biradialUndefinedFillsLastStop records the rewrite's explicit policy
// decision for pixels outside the biradial gradient's defined region: the
// last LUT entry, same as the source, but now a named choice rather than
// an implicit fallthrough.
const biradialUndefinedFillsLastStop = true

// BiradialPaint interpolates between two circles (C0, R0) and (C1, R1):
// for a pixel q, t is the position along the circle-to-circle
// interpolation whose boundary passes through q.
type BiradialPaint struct {
	C0       Point
	R0       float64
	C1       Point
	R1       float64
	Gradient *Gradient
	Repeat   RepeatMode
	Winding  WindingRule
}

func (BiradialPaint) paintKind() paintKind { return paintBiradial }

// NewBiradialPaint creates a BiradialPaint between circle (c0, r0) and
// circle (c1, r1).
func NewBiradialPaint(c0 Point, r0 float64, c1 Point, r1 float64, gradient *Gradient, repeat RepeatMode, winding WindingRule) BiradialPaint {
	return BiradialPaint{C0: c0, R0: r0, C1: c1, R1: r1, Gradient: gradient, Repeat: repeat, Winding: winding}
}

// ParamAt solves At² + Bt + C = 0 for the near root along the circle
// interpolation, per the gradient math formula: d = c1-c0, Δr = r1-r0,
// A = |d|²-Δr², B = 2·((c0-q)·d - r0·Δr), C = |c0-q|²-r0². When A < 0
// (the focus circle is not enclosed) some pixels have no real root; ok
// reports false for those, and the caller applies the undefined-region
// policy above.
func (bp BiradialPaint) ParamAt(x, y float64) (t float64, ok bool) {
	q := Pt(x, y)
	d := Point{X: bp.C1.X - bp.C0.X, Y: bp.C1.Y - bp.C0.Y}
	dr := bp.R1 - bp.R0

	A := d.X*d.X + d.Y*d.Y - dr*dr
	cq := Point{X: bp.C0.X - q.X, Y: bp.C0.Y - q.Y}
	B := 2 * (cq.X*d.X + cq.Y*d.Y - bp.R0*dr)
	C := cq.X*cq.X + cq.Y*cq.Y - bp.R0*bp.R0

	if math.Abs(A) < 1e-9 {
		if math.Abs(B) < 1e-9 {
			return 0, false
		}
		return -C / B, true
	}

	disc := B*B - 4*A*C
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	return (-B + sq) / (2 * A), true
}
