package raster2d

import "math"

// PathSource is the lazy path-view adaptor protocol. Every adaptor exposes
// the same read-only surface a root Path does — length, per-index command,
// per-index point lookup — plus an InPlace marker and an opaque source
// Identity so a chain of views can be assigned back into a root Path
// without copying unless aliasing forces it.
type PathSource interface {
	Len() int
	Cmd(i int) PathCmd
	PointAt(i, k int) Point
	InPlace() bool
	Identity() any
}

var _ PathSource = (*Path)(nil)

// Offset returns a view of src translated by (dx, dy). It preserves
// InPlace/Identity, so chains built only from Offset/Scale/Rotate over a
// root Path can be assigned back into that Path in place.
func Offset(src PathSource, dx, dy float64) PathSource {
	return &offsetView{src: src, dx: dx, dy: dy}
}

type offsetView struct {
	src    PathSource
	dx, dy float64
}

func (v *offsetView) Len() int          { return v.src.Len() }
func (v *offsetView) Cmd(i int) PathCmd { return v.src.Cmd(i) }
func (v *offsetView) PointAt(i, k int) Point {
	p := v.src.PointAt(i, k)
	return Point{X: p.X + v.dx, Y: p.Y + v.dy}
}
func (v *offsetView) InPlace() bool { return v.src.InPlace() }
func (v *offsetView) Identity() any { return v.src.Identity() }

// Scale returns a view of src scaled by (sx, sy) about the origin.
func Scale(src PathSource, sx, sy float64) PathSource {
	return &scaleView{src: src, sx: sx, sy: sy}
}

type scaleView struct {
	src    PathSource
	sx, sy float64
}

func (v *scaleView) Len() int          { return v.src.Len() }
func (v *scaleView) Cmd(i int) PathCmd { return v.src.Cmd(i) }
func (v *scaleView) PointAt(i, k int) Point {
	p := v.src.PointAt(i, k)
	return Point{X: p.X * v.sx, Y: p.Y * v.sy}
}
func (v *scaleView) InPlace() bool { return v.src.InPlace() }
func (v *scaleView) Identity() any { return v.src.Identity() }

// Rotate returns a view of src rotated by angle radians about the origin.
func Rotate(src PathSource, angle float64) PathSource {
	return &rotateView{src: src, cos: math.Cos(angle), sin: math.Sin(angle)}
}

type rotateView struct {
	src      PathSource
	cos, sin float64
}

func (v *rotateView) Len() int          { return v.src.Len() }
func (v *rotateView) Cmd(i int) PathCmd { return v.src.Cmd(i) }
func (v *rotateView) PointAt(i, k int) Point {
	p := v.src.PointAt(i, k)
	return Point{X: p.X*v.cos - p.Y*v.sin, Y: p.X*v.sin + p.Y*v.cos}
}
func (v *rotateView) InPlace() bool { return v.src.InPlace() }
func (v *rotateView) Identity() any { return v.src.Identity() }

// Slice returns a view of the commands src[start:end]. Because the
// resulting length differs from src's own length in the general case, a
// Slice view is never in place; assigning it back into a root Path always
// materializes into a temporary first.
func Slice(src PathSource, start, end int) PathSource {
	return &sliceView{src: src, start: start, end: end}
}

type sliceView struct {
	src        PathSource
	start, end int
}

func (v *sliceView) Len() int          { return v.end - v.start }
func (v *sliceView) Cmd(i int) PathCmd { return v.src.Cmd(v.start + i) }
func (v *sliceView) PointAt(i, k int) Point {
	return v.src.PointAt(v.start+i, k)
}
func (v *sliceView) InPlace() bool { return false }
func (v *sliceView) Identity() any { return v.src.Identity() }

// Concat returns a view that is a and then b, in sequence. Never in place:
// the combined length belongs to neither source.
func Concat(a, b PathSource) PathSource {
	return &concatView{a: a, b: b}
}

type concatView struct {
	a, b PathSource
}

func (v *concatView) Len() int { return v.a.Len() + v.b.Len() }
func (v *concatView) Cmd(i int) PathCmd {
	if n := v.a.Len(); i < n {
		return v.a.Cmd(i)
	}
	return v.b.Cmd(i - v.a.Len())
}
func (v *concatView) PointAt(i, k int) Point {
	if n := v.a.Len(); i < n {
		return v.a.PointAt(i, k)
	}
	return v.b.PointAt(i-v.a.Len(), k)
}
func (v *concatView) InPlace() bool { return false }
func (v *concatView) Identity() any { return v }

// Retro returns src traversed in reverse: sub-paths are emitted in
// reverse order, and within each sub-path the segments reverse direction
// (a Line/Quad/Cubic ending at p now starts at p and ends at its old
// start; a Cubic's two controls swap order). Never in place, since the
// reversed command at index j generally reads points from a different
// original index than j.
func Retro(src PathSource) PathSource {
	v := &retroView{src: src}
	v.build()
	return v
}

type retroSubpath struct {
	start, end int // [start, end) command range in src, in original order
}

type retroView struct {
	src      PathSource
	subpaths []retroSubpath // in OUTPUT order (reverse of appearance)
	// cmdSub[j] is the index into subpaths that output command j belongs to;
	// cmdLocal[j] is its position within that subpath's output (0 == the
	// synthesized Move).
	cmdSub, cmdLocal []int
}

func (v *retroView) build() {
	n := v.src.Len()
	var subs []retroSubpath
	start := 0
	for i := 0; i < n; i++ {
		if v.src.Cmd(i) == CmdMove && i != start {
			subs = append(subs, retroSubpath{start: start, end: i})
			start = i
		}
	}
	if n > 0 {
		subs = append(subs, retroSubpath{start: start, end: n})
	}
	// Reverse sub-path order for output.
	for i, j := 0, len(subs)-1; i < j; i, j = i+1, j-1 {
		subs[i], subs[j] = subs[j], subs[i]
	}
	v.subpaths = subs

	v.cmdSub = make([]int, n)
	v.cmdLocal = make([]int, n)
	j := 0
	for si, sp := range subs {
		length := sp.end - sp.start
		for local := 0; local < length; local++ {
			v.cmdSub[j] = si
			v.cmdLocal[j] = local
			j++
		}
	}
}

func (v *retroView) Len() int { return len(v.cmdSub) }

func (v *retroView) Cmd(j int) PathCmd {
	sp := v.subpaths[v.cmdSub[j]]
	local := v.cmdLocal[j]
	if local == 0 {
		return CmdMove
	}
	origIdx := sp.end - local
	return v.src.Cmd(origIdx)
}

func (v *retroView) PointAt(j, k int) Point {
	sp := v.subpaths[v.cmdSub[j]]
	local := v.cmdLocal[j]
	if local == 0 {
		// Synthesized Move to the sub-path's former endpoint.
		return v.endpointOf(sp.end - 1)
	}
	origIdx := sp.end - local
	switch cmd := v.src.Cmd(origIdx); cmd {
	case CmdLine:
		return v.endpointOf(origIdx - 1)
	case CmdQuad:
		if k == 0 {
			return v.src.PointAt(origIdx, 0) // control, unchanged
		}
		return v.endpointOf(origIdx - 1)
	case CmdCubic:
		switch k {
		case 0:
			return v.src.PointAt(origIdx, 1) // old ctrl2 becomes ctrl1
		case 1:
			return v.src.PointAt(origIdx, 0) // old ctrl1 becomes ctrl2
		default:
			return v.endpointOf(origIdx - 1)
		}
	default:
		return v.src.PointAt(origIdx, k)
	}
}

// endpointOf returns the last explicit point of command i — the point a
// following command implicitly chains from.
func (v *retroView) endpointOf(i int) Point {
	np := v.src.Cmd(i).NumPoints()
	return v.src.PointAt(i, np-1)
}

func (v *retroView) InPlace() bool { return false }
func (v *retroView) Identity() any { return v }
