package raster2d

import (
	"fmt"

	"github.com/rasterforge/raster2d/internal/curve"
)

// PathCmd identifies a path command kind.
type PathCmd uint8

const (
	CmdMove PathCmd = iota
	CmdLine
	CmdQuad
	CmdCubic
)

// NumPoints returns how many explicit points a command carries. The
// implicit start point (the previous command's last point) is not
// counted, per the path store's "linked" point protocol.
func (c PathCmd) NumPoints() int {
	switch c {
	case CmdMove, CmdLine:
		return 1
	case CmdQuad:
		return 2
	case CmdCubic:
		return 3
	default:
		return 0
	}
}

func (c PathCmd) String() string {
	switch c {
	case CmdMove:
		return "Move"
	case CmdLine:
		return "Line"
	case CmdQuad:
		return "Quad"
	case CmdCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// ErrPathNotStarted is the contract violation raised when a non-Move
// command is appended before any Move. It is never recovered from — a
// well-formed caller cannot produce it.
var ErrPathNotStarted = fmt.Errorf("raster2d: path: command appended before Move")

// Path is an append-only sequence of (command, point) records: the command
// set is Move, Line, Quad, Cubic. Every non-Move command implicitly
// consumes the previous command's last point as its own first point. A
// Path owns its point and command storage and is itself a PathSource
// (InPlace always true, Identity the Path's own address), so lazy views
// built over it (offset, scale, rotate, retro, slice, concat) can be
// assigned back into it via AssignFrom.
type Path struct {
	cmds    []PathCmd
	pts     []Point
	offsets []int // offsets[i] is the start index into pts for command i
	started bool
	moveAt  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		cmds:    make([]PathCmd, 0, 16),
		pts:     make([]Point, 0, 32),
		offsets: make([]int, 0, 16),
	}
}

func (p *Path) append(cmd PathCmd, pts ...Point) {
	if !p.started && cmd != CmdMove {
		panic(ErrPathNotStarted)
	}
	p.offsets = append(p.offsets, len(p.pts))
	p.cmds = append(p.cmds, cmd)
	p.pts = append(p.pts, pts...)
}

// MoveTo starts a new sub-path at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.append(CmdMove, pt)
	p.started = true
	p.moveAt = pt
}

// LineTo appends a line segment ending at (x, y).
func (p *Path) LineTo(x, y float64) {
	p.append(CmdLine, Pt(x, y))
}

// QuadTo appends a quadratic Bézier ending at (x, y) with control (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.append(CmdQuad, Pt(cx, cy), Pt(x, y))
}

// CubicTo appends a cubic Bézier ending at (x, y) with controls
// (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.append(CmdCubic, Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y))
}

// Close appends a Line back to the last MoveTo point — semantically a
// closing edge, not a distinct command kind.
func (p *Path) Close() {
	if !p.started {
		panic(ErrPathNotStarted)
	}
	p.append(CmdLine, p.moveAt)
}

// Reset discards all commands and points, returning the path to its
// initial empty state.
func (p *Path) Reset() {
	p.cmds = p.cmds[:0]
	p.pts = p.pts[:0]
	p.offsets = p.offsets[:0]
	p.started = false
	p.moveAt = Point{}
}

// Len returns the number of commands in the path.
func (p *Path) Len() int { return len(p.cmds) }

// Cmd returns the command at index i.
func (p *Path) Cmd(i int) PathCmd { return p.cmds[i] }

// PointAt returns the k-th explicit point of command i.
func (p *Path) PointAt(i, k int) Point { return p.pts[p.offsets[i]+k] }

// InPlace reports whether this PathSource can be overwritten in place when
// assigned back into its own root. A root Path is always in place.
func (p *Path) InPlace() bool { return true }

// Identity returns the path's own address, the aliasing key lazy views use
// to detect a self-referential assignment.
func (p *Path) Identity() any { return p }

// LastMoveTo returns the point of the most recent MoveTo.
func (p *Path) LastMoveTo() Point { return p.moveAt }

// AssignFrom evaluates src and installs the result into p. If src is
// in-place and its ultimate identity is p itself, every point is
// overwritten in its existing storage slot (valid because offset/scale/
// rotate views compute each output point from exactly one input point,
// so a single forward pass is safe). Otherwise src is materialized into a
// temporary path and swapped in, matching the path store's aliasing rule
// for non-in-place views such as Retro and Concat.
func (p *Path) AssignFrom(src PathSource) {
	if src.InPlace() {
		if id, ok := src.Identity().(*Path); ok && id == p {
			n := src.Len()
			for i := 0; i < n; i++ {
				np := src.Cmd(i).NumPoints()
				base := p.offsets[i]
				for k := 0; k < np; k++ {
					p.pts[base+k] = src.PointAt(i, k)
				}
			}
			return
		}
	}

	tmp := materialize(src)
	p.cmds, p.pts, p.offsets, p.started, p.moveAt = tmp.cmds, tmp.pts, tmp.offsets, tmp.started, tmp.moveAt
}

// materialize walks a PathSource end to end and builds a standalone Path
// from it via the ordinary append API.
func materialize(src PathSource) *Path {
	tmp := NewPath()
	n := src.Len()
	for i := 0; i < n; i++ {
		switch cmd := src.Cmd(i); cmd {
		case CmdMove:
			pt := src.PointAt(i, 0)
			tmp.MoveTo(pt.X, pt.Y)
		case CmdLine:
			pt := src.PointAt(i, 0)
			tmp.LineTo(pt.X, pt.Y)
		case CmdQuad:
			c := src.PointAt(i, 0)
			pt := src.PointAt(i, 1)
			tmp.QuadTo(c.X, c.Y, pt.X, pt.Y)
		case CmdCubic:
			c1 := src.PointAt(i, 0)
			c2 := src.PointAt(i, 1)
			pt := src.PointAt(i, 2)
			tmp.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		}
	}
	return tmp
}

// Flatten walks the path, flattening every Quad/Cubic command through the
// curve package, and calls moveTo/lineTo for each resulting vertex.
// Canvas drawing does not go through it: the rasterizer flattens curves
// itself when a path is added.
func Flatten(src PathSource, moveTo func(Point), lineTo func(Point)) {
	var cur, start Point
	n := src.Len()
	for i := 0; i < n; i++ {
		switch cmd := src.Cmd(i); cmd {
		case CmdMove:
			cur = src.PointAt(i, 0)
			start = cur
			moveTo(cur)
		case CmdLine:
			cur = src.PointAt(i, 0)
			lineTo(cur)
		case CmdQuad:
			ctrl := src.PointAt(i, 0)
			end := src.PointAt(i, 1)
			flattenQuad(cur, ctrl, end, lineTo)
			cur = end
		case CmdCubic:
			c1 := src.PointAt(i, 0)
			c2 := src.PointAt(i, 1)
			end := src.PointAt(i, 2)
			flattenCubic(cur, c1, c2, end, lineTo)
			cur = end
		}
	}
	_ = start
}

func toCurvePoint(p Point) curve.Point { return curve.Point{X: p.X, Y: p.Y} }
func fromCurvePoint(p curve.Point) Point { return Point{X: p.X, Y: p.Y} }

func flattenQuad(p0, p1, p2 Point, lineTo func(Point)) {
	curve.Quad(toCurvePoint(p0), toCurvePoint(p1), toCurvePoint(p2), curve.Tolerance, func(pt curve.Point) {
		lineTo(fromCurvePoint(pt))
	})
}

func flattenCubic(p0, p1, p2, p3 Point, lineTo func(Point)) {
	curve.Cubic(toCurvePoint(p0), toCurvePoint(p1), toCurvePoint(p2), toCurvePoint(p3), curve.Tolerance, func(pt curve.Point) {
		lineTo(fromCurvePoint(pt))
	})
}
