package raster2d

// WindingRule selects how a signed winding accumulator is converted to
// coverage.
type WindingRule int

const (
	// NonZero is the default winding rule: any non-zero winding number is
	// inside.
	NonZero WindingRule = iota
	// EvenOdd treats odd winding parity as inside.
	EvenOdd
)

// RepeatMode selects how a gradient parameter outside [0,1] maps back
// into the LUT.
type RepeatMode int

const (
	// Pad clamps the parameter to the LUT's first/last entry.
	Pad RepeatMode = iota
	// Repeat wraps the parameter with period 1.
	Repeat
	// Mirror reflects the parameter back and forth with period 2.
	Mirror
)

// Paint is a closed set of paint descriptors the blit pipeline dispatches
// on. It is implemented only by the five kinds named in the data model:
// SolidPaint, LinearPaint, RadialPaint, AngularPaint, BiradialPaint.
type Paint interface {
	paintKind() paintKind
}

type paintKind int

const (
	paintSolid paintKind = iota
	paintLinear
	paintRadial
	paintAngular
	paintBiradial
)

// SolidPaint fills with a single ARGB32 color. Its visual result is
// identical under either winding rule for any non-self-overlapping
// path, but Winding is still carried so the Canvas's blit dispatch
// never needs a paint-kind special case to find it.
type SolidPaint struct {
	Color   ARGB32
	Winding WindingRule
}

func (SolidPaint) paintKind() paintKind { return paintSolid }

// NewSolidPaint returns a SolidPaint for the given color under NonZero.
func NewSolidPaint(c ARGB32) SolidPaint { return SolidPaint{Color: c, Winding: NonZero} }

// NewSolidPaintWithWinding returns a SolidPaint for the given color and
// winding rule.
func NewSolidPaintWithWinding(c ARGB32, winding WindingRule) SolidPaint {
	return SolidPaint{Color: c, Winding: winding}
}
