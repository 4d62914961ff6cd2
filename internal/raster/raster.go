// Package raster is the scanline rasterizer core: it ingests path edges
// and resolves them into per-row signed-area delta buffers and 4-pixel
// change masks, handing each finished row to a caller-supplied blit
// function. It knows nothing about paints or pixels — only geometry and
// winding.
package raster

import (
	"math"

	"github.com/rasterforge/raster2d/internal/clip"
	"github.com/rasterforge/raster2d/internal/curve"
	"github.com/rasterforge/raster2d/internal/fixedpoint"
)

// AreaFull is one full pixel's worth of winding contribution, expressed
// in the delta buffer's fixed-point units. Integrating delta[] across a
// row recovers a winding number where a single fully-covered crossing
// equals AreaFull (0x8000) — the scale internal/coverage's NonZero and
// EvenOdd formulas expect.
const AreaFull = 1 << 15

// edge is a single ingested line segment, in sub-pixel fixed point.
type edge struct {
	x0, y0, x1, y1 fixedpoint.Scalar
}

// BlitFunc receives one finished row's delta and change-mask buffers,
// covering the half-open column range [x0, x1) relative to the
// rasterizer's clip rectangle. Before returning, it must zero every
// delta slot and clear every mask bit it read, since neither buffer is
// cleared by the rasterizer between rows.
type BlitFunc func(delta []int32, mask []uint32, x0, x1, y int)

// PathSource is the minimal path-walking surface AddPath needs. It is
// narrower than the root package's path view interface by design, so
// this package never has to import it; callers adapt their own path
// views to this shape at the call site.
type PathSource interface {
	Len() int
	Cmd(i int) int // 0 = Move, 1 = Line, 2 = Quad, 3 = Cubic
	PointAt(i, k int) (x, y float64)
}

// Rasterizer accumulates edges for one draw and resolves them into
// per-row coverage buffers on Rasterize. It is reusable across draws via
// Initialise.
type Rasterizer struct {
	clip  clip.Rect
	edges []edge

	curX, curY           float64
	subStartX, subStartY float64
	hasSub               bool

	tolerance float64

	delta []int32
	mask  []uint32
	width int // len(delta): clip.Width() rounded up to a multiple of 4
}

// NewRasterizer creates an empty Rasterizer. Call Initialise before
// feeding it any path data.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// SetTolerance overrides the perpendicular-deviation tolerance QuadTo and
// CubicTo flatten against. A value <= 0 restores internal/curve's default.
func (r *Rasterizer) SetTolerance(tolerance float64) {
	r.tolerance = tolerance
}

// Initialise resets the rasterizer for a new draw clipped to rect,
// discarding any edges from a previous draw.
func (r *Rasterizer) Initialise(rect clip.Rect) {
	r.clip = rect
	r.edges = r.edges[:0]
	r.hasSub = false

	w := rect.Width()
	if w < 0 {
		w = 0
	}
	r.width = fixedpoint.RoundUp4(w)

	if cap(r.delta) < r.width {
		r.delta = make([]int32, r.width)
	} else {
		r.delta = r.delta[:r.width]
		for i := range r.delta {
			r.delta[i] = 0
		}
	}

	groups := r.width / 4
	words := (groups + 31) / 32
	if cap(r.mask) < words {
		r.mask = make([]uint32, words)
	} else {
		r.mask = r.mask[:words]
		for i := range r.mask {
			r.mask[i] = 0
		}
	}
}

// MoveTo starts a new subpath at (x, y). If the previous subpath was
// left open, it is implicitly closed first with a straight edge back to
// its own start — winding is only well defined for closed contours.
func (r *Rasterizer) MoveTo(x, y float64) {
	r.closeSubpath()
	r.curX, r.curY = x, y
	r.subStartX, r.subStartY = x, y
	r.hasSub = true
}

// LineTo appends a straight edge from the current point to (x, y).
func (r *Rasterizer) LineTo(x, y float64) {
	r.addEdge(r.curX, r.curY, x, y)
	r.curX, r.curY = x, y
}

// QuadTo flattens a quadratic Bezier from the current point through
// (cx, cy) to (x, y) into line edges.
func (r *Rasterizer) QuadTo(cx, cy, x, y float64) {
	p0 := curve.Point{X: r.curX, Y: r.curY}
	p1 := curve.Point{X: cx, Y: cy}
	p2 := curve.Point{X: x, Y: y}
	curve.Quad(p0, p1, p2, r.tolerance, func(p curve.Point) {
		r.addEdge(r.curX, r.curY, p.X, p.Y)
		r.curX, r.curY = p.X, p.Y
	})
}

// CubicTo flattens a cubic Bezier from the current point through (c1,
// c2) to (x, y) into line edges.
func (r *Rasterizer) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p0 := curve.Point{X: r.curX, Y: r.curY}
	p1 := curve.Point{X: c1x, Y: c1y}
	p2 := curve.Point{X: c2x, Y: c2y}
	p3 := curve.Point{X: x, Y: y}
	curve.Cubic(p0, p1, p2, p3, r.tolerance, func(p curve.Point) {
		r.addEdge(r.curX, r.curY, p.X, p.Y)
		r.curX, r.curY = p.X, p.Y
	})
}

// AddPath walks src end to end, driving MoveTo/LineTo/QuadTo/CubicTo.
func (r *Rasterizer) AddPath(src PathSource) {
	n := src.Len()
	for i := 0; i < n; i++ {
		switch src.Cmd(i) {
		case 0:
			x, y := src.PointAt(i, 0)
			r.MoveTo(x, y)
		case 1:
			x, y := src.PointAt(i, 0)
			r.LineTo(x, y)
		case 2:
			cx, cy := src.PointAt(i, 0)
			x, y := src.PointAt(i, 1)
			r.QuadTo(cx, cy, x, y)
		case 3:
			c1x, c1y := src.PointAt(i, 0)
			c2x, c2y := src.PointAt(i, 1)
			x, y := src.PointAt(i, 2)
			r.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
}

// Close ends the current subpath with a straight edge back to its
// start, the same as an implicit close at the next MoveTo or Rasterize.
func (r *Rasterizer) Close() {
	r.closeSubpath()
}

func (r *Rasterizer) closeSubpath() {
	if r.hasSub && (r.curX != r.subStartX || r.curY != r.subStartY) {
		r.addEdge(r.curX, r.curY, r.subStartX, r.subStartY)
	}
	r.hasSub = false
}

// addEdge stores one segment in fixed point, dropping horizontal and
// zero-length segments: they carry no area and would only waste work in
// the per-row walk.
func (r *Rasterizer) addEdge(x0, y0, x1, y1 float64) {
	if y0 == y1 {
		return
	}
	r.edges = append(r.edges, edge{
		x0: fixedpoint.FromFloat64(x0),
		y0: fixedpoint.FromFloat64(y0),
		x1: fixedpoint.FromFloat64(x1),
		y1: fixedpoint.FromFloat64(y1),
	})
}

// Rasterize closes any still-open subpath, then walks the clip
// rectangle row by row: each row is resolved independently from
// whichever edges intersect its [y, y+1) span, and rows no edge touches
// are skipped entirely (their winding is uniformly zero, so there is
// nothing for a blit to do).
func (r *Rasterizer) Rasterize(blit BlitFunc) {
	r.closeSubpath()
	if r.clip.IsEmpty() || len(r.edges) == 0 {
		return
	}

	for row := r.clip.MinY; row < r.clip.MaxY; row++ {
		minCol, touched := r.accumulateRow(row)
		if !touched {
			continue
		}
		x0 := minCol - r.clip.MinX
		if x0 < 0 {
			x0 = 0
		}
		// r.width is the delta/mask buffers' 4-pixel-group-padded length;
		// the blit must never see columns beyond the clip's true width,
		// since those padding slots have no corresponding pixel.
		blit(r.delta, r.mask, x0, r.clip.Width(), row)
	}
}

// accumulateRow deposits every edge's contribution to row's delta
// buffer and reports the leftmost column touched, so Rasterize can pass
// a tight x0 to the blit. The top-inclusive tie-break for a vertex
// landing exactly on a scanline boundary falls out of using a half-open
// [row, row+1) span for every row: y == row belongs here, y == row+1
// belongs to the next row down.
func (r *Rasterizer) accumulateRow(row int) (minCol int, touched bool) {
	rowTop := float64(row)
	rowBot := float64(row + 1)
	minCol = r.clip.MaxX

	for _, e := range r.edges {
		x0 := fixedpoint.ToFloat64(e.x0)
		y0 := fixedpoint.ToFloat64(e.y0)
		x1 := fixedpoint.ToFloat64(e.x1)
		y1 := fixedpoint.ToFloat64(e.y1)

		dir := 1.0
		if y1 < y0 {
			dir = -1
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		if y1 <= rowTop || y0 >= rowBot {
			continue
		}

		segTop := math.Max(y0, rowTop)
		segBot := math.Min(y1, rowBot)
		if segBot <= segTop {
			continue
		}

		invSlope := (x1 - x0) / (y1 - y0)
		xAtTop := x0 + invSlope*(segTop-y0)
		xAtBot := x0 + invSlope*(segBot-y0)

		c := r.depositRowSegment(segBot-segTop, xAtTop, xAtBot, dir)
		if c < minCol {
			minCol = c
		}
		touched = true
	}
	return minCol, touched
}

// depositRowSegment integrates one edge's contribution to this row
// across the one or more pixel columns it spans, and returns the
// leftmost column it touched. Out-of-clip x is collapsed onto the clip
// boundary first: a segment entirely left of the clip contributes its
// full winding change at the left boundary column, while a segment
// entirely right of the clip contributes nothing and returns MaxX.
func (r *Rasterizer) depositRowSegment(h, xa, xb, dir float64) int {
	left := float64(r.clip.MinX)
	right := float64(r.clip.MaxX)
	xa = clampF(xa, left, right)
	xb = clampF(xb, left, right)

	xlo, xhi := xa, xb
	if xlo > xhi {
		xlo, xhi = xhi, xlo
	}

	colLo := int(math.Floor(xlo))
	colHi := int(math.Floor(xhi))
	if colLo < r.clip.MinX {
		colLo = r.clip.MinX
	}
	if colHi >= r.clip.MaxX {
		colHi = r.clip.MaxX - 1
	}
	if colHi < colLo {
		return r.clip.MaxX
	}

	span := xhi - xlo
	if colLo == colHi || span < 1e-9 {
		c := colLo
		r.depositColumn(c, dir, h, xa-float64(c), xb-float64(c))
		return c
	}

	for c := colLo; c <= colHi; c++ {
		segLo := math.Max(xlo, float64(c))
		segHi := math.Min(xhi, float64(c+1))
		if segHi <= segLo {
			continue
		}
		frac := (segHi - segLo) / span
		r.depositColumn(c, dir, h*frac, segLo-float64(c), segHi-float64(c))
	}
	return colLo
}

// depositColumn adds this edge-row segment's contribution to column c:
// the local trapezoid area to the right of the edge within the column
// itself, and a carry of whatever remains of a full winding unit one
// column to the right, so that summing delta[] left to right reproduces
// the winding number at every pixel.
func (r *Rasterizer) depositColumn(c int, dir, h, fa, fb float64) {
	idx := c - r.clip.MinX
	if idx < 0 || idx >= r.width {
		return
	}
	colArea := h * (1 - (fa+fb)/2)
	hereDelta := int32(dir * colArea * AreaFull)
	fullDelta := int32(dir * h * AreaFull)
	carryDelta := fullDelta - hereDelta

	r.delta[idx] += hereDelta
	r.markGroup(idx)

	next := idx + 1
	if next < r.width {
		r.delta[next] += carryDelta
		r.markGroup(next)
	}
}

func (r *Rasterizer) markGroup(idx int) {
	group := idx / 4
	word := group / 32
	bit := uint(group % 32)
	r.mask[word] |= 1 << bit
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
