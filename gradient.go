package raster2d

import (
	"sort"

	"github.com/rasterforge/raster2d/internal/fixedpoint"
)

// GradientStop is a single (position, color) pair in a Gradient's stop
// list.
type GradientStop struct {
	Pos   float64
	Color ARGB32
}

// Gradient is an ordered list of stops plus a power-of-two color LUT,
// lazily rebuilt whenever a stop or the LUT length changes. Linear,
// Radial, Angular, and Biradial paints all reference a Gradient and
// differ only in how they map a point to a LUT parameter t.
type Gradient struct {
	stops  []GradientStop
	length int
	lut    []ARGB32
	opaque bool
	dirty  bool
}

// NewGradient creates an empty gradient with the given initial LUT
// length, rounded up to a power of two within [2, 8192].
func NewGradient(length int) *Gradient {
	return &Gradient{
		length: fixedpoint.ClipPow2(length, 2, 8192),
		dirty:  true,
	}
}

// AddStop appends a stop, clipping pos to [0,1] and marking the LUT dirty.
func (g *Gradient) AddStop(pos float64, c ARGB32) {
	if pos < 0 {
		pos = 0
	} else if pos > 1 {
		pos = 1
	}
	g.stops = append(g.stops, GradientStop{Pos: pos, Color: c})
	g.dirty = true
}

// SetLookupLength sets the LUT length, rounded up to a power of two within
// [2, 8192].
func (g *Gradient) SetLookupLength(n int) {
	n = fixedpoint.ClipPow2(n, 2, 8192)
	if n != g.length {
		g.length = n
		g.dirty = true
	}
}

// Length returns the current LUT length (always a power of two).
func (g *Gradient) Length() int {
	g.rebuild()
	return g.length
}

// IsOpaque reports whether every stop's alpha is 0xFF. The blit code does
// not consult it; blit.Row skips the destination read per pixel when both
// coverage and the pixel's alpha are 0xFF.
func (g *Gradient) IsOpaque() bool {
	g.rebuild()
	return g.opaque
}

// Lookup returns the LUT entry at idx, rebuilding the table first if any
// stop or the length has changed since the last lookup.
func (g *Gradient) Lookup(idx int) ARGB32 {
	g.rebuild()
	return g.lut[idx]
}

func (g *Gradient) rebuild() {
	if !g.dirty {
		return
	}
	g.dirty = false

	if cap(g.lut) < g.length {
		g.lut = make([]ARGB32, g.length)
	} else {
		g.lut = g.lut[:g.length]
	}

	if len(g.stops) == 0 {
		for i := range g.lut {
			g.lut[i] = Transparent
		}
		g.opaque = false
		return
	}

	sorted := make([]GradientStop, len(g.stops))
	copy(sorted, g.stops)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Pos < sorted[j].Pos })

	g.opaque = true
	for _, s := range sorted {
		if !s.Color.IsOpaque() {
			g.opaque = false
			break
		}
	}

	L := g.length
	first, last := sorted[0], sorted[len(sorted)-1]
	si := 0
	for i := 0; i < L; i++ {
		t := float64(i) / float64(L-1)
		switch {
		case t <= first.Pos:
			g.lut[i] = first.Color
		case t >= last.Pos:
			g.lut[i] = last.Color
		default:
			for si < len(sorted)-1 && sorted[si+1].Pos < t {
				si++
			}
			a, b := sorted[si], sorted[si+1]
			if b.Pos == a.Pos {
				g.lut[i] = a.Color
				continue
			}
			localT := (t - a.Pos) / (b.Pos - a.Pos)
			g.lut[i] = a.Color.Lerp(b.Color, localT)
		}
	}
}

// Resolve maps a gradient parameter t (in LUT-index units, i.e. already
// scaled by length) to a LUT index according to mode, applying the three
// repeat-mode laws: Pad clamps, Repeat wraps with period L, Mirror
// reflects with period 2L such that Mirror(idx) == Mirror(-idx) ==
// Mirror(2L - idx) for every idx.
func (g *Gradient) Resolve(idx int, mode RepeatMode) ARGB32 {
	L := g.Length()
	switch mode {
	case Repeat:
		idx = idx & (L - 1)
	case Mirror:
		period := 2 * L
		j := idx % period
		if j < 0 {
			j += period
		}
		if j >= L {
			j = period - j
		}
		if j >= L {
			j = L - 1
		}
		idx = j
	default: // Pad
		if idx < 0 {
			idx = 0
		} else if idx >= L {
			idx = L - 1
		}
	}
	return g.Lookup(idx)
}
