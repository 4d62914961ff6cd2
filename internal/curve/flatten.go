// Package curve flattens quadratic and cubic Bezier segments into line
// segments within a fixed visual tolerance, the way a font rasterizer
// flattens glyph outlines before handing them to a scanline filler.
//
// Point is a local copy of the 2-D point type to avoid an import cycle with
// the root package, mirroring how the teacher's internal packages carry
// their own minimal geometry types.
package curve

import "math"

// Tolerance is the maximum perpendicular deviation, in pixels, a curve's
// control points may have from its chord before it is subdivided again.
// Roughly a quarter of a pixel, matching common font-rasterizer practice.
const Tolerance = 0.25

// Point is a 2-D point.
type Point struct {
	X, Y float64
}

func sub(p, q Point) Point   { return Point{p.X - q.X, p.Y - q.Y} }
func lerp(p, q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// normalDeviation returns |d . n| where n is the unit normal of (p2 - p0)
// and d = c - p0. This is the spec's flatness test: the perpendicular
// distance of a control point c from the chord p0-p2.
func normalDeviation(p0, p2, c Point) float64 {
	chord := sub(p2, p0)
	length := math.Hypot(chord.X, chord.Y)
	if length < 1e-12 {
		// Degenerate chord: fall back to the distance from p0.
		d := sub(c, p0)
		return math.Hypot(d.X, d.Y)
	}
	nx, ny := -chord.Y/length, chord.X/length
	d := sub(c, p0)
	return math.Abs(d.X*nx + d.Y*ny)
}

// maxRecursion bounds the de Casteljau subdivision depth so a degenerate
// or enormous curve cannot recurse unboundedly; 32 halvings is far more
// than any screen-space curve needs.
const maxRecursion = 32

// Quad flattens a quadratic Bezier (p0, p1, p2) into line segments and calls
// emit(p) for each vertex after p0, ending with p2. It is reentrant and
// allocation-free: emit is expected to forward points directly into the
// rasterizer's edge list. tolerance <= 0 falls back to Tolerance.
func Quad(p0, p1, p2 Point, tolerance float64, emit func(Point)) {
	if tolerance <= 0 {
		tolerance = Tolerance
	}
	quadRec(p0, p1, p2, tolerance, 0, emit)
}

func quadRec(p0, p1, p2 Point, tolerance float64, depth int, emit func(Point)) {
	if depth >= maxRecursion || normalDeviation(p0, p2, p1) <= tolerance {
		emit(p2)
		return
	}
	// de Casteljau subdivision at t=0.5.
	p01 := lerp(p0, p1, 0.5)
	p12 := lerp(p1, p2, 0.5)
	mid := lerp(p01, p12, 0.5)
	quadRec(p0, p01, mid, tolerance, depth+1, emit)
	quadRec(mid, p12, p2, tolerance, depth+1, emit)
}

// Cubic flattens a cubic Bezier (p0, p1, p2, p3) into line segments and
// calls emit(p) for each vertex after p0, ending with p3. tolerance <= 0
// falls back to Tolerance.
func Cubic(p0, p1, p2, p3 Point, tolerance float64, emit func(Point)) {
	if tolerance <= 0 {
		tolerance = Tolerance
	}
	cubicRec(p0, p1, p2, p3, tolerance, 0, emit)
}

func cubicRec(p0, p1, p2, p3 Point, tolerance float64, depth int, emit func(Point)) {
	if depth >= maxRecursion || (normalDeviation(p0, p3, p1) <= tolerance && normalDeviation(p0, p3, p2) <= tolerance) {
		emit(p3)
		return
	}
	p01 := lerp(p0, p1, 0.5)
	p12 := lerp(p1, p2, 0.5)
	p23 := lerp(p2, p3, 0.5)
	p012 := lerp(p01, p12, 0.5)
	p123 := lerp(p12, p23, 0.5)
	mid := lerp(p012, p123, 0.5)
	cubicRec(p0, p01, p012, mid, tolerance, depth+1, emit)
	cubicRec(mid, p123, p23, p3, tolerance, depth+1, emit)
}
