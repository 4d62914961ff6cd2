// Package clip provides the integer view/clip rectangle arithmetic used by
// the Canvas façade. Unlike a general path-clip stack, the rasterizer core
// only ever clips to axis-aligned integer rectangles: the intersection of
// the current view and the accumulated clip.
package clip

// Rect is an axis-aligned integer rectangle, half-open on Max.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// NewRect creates a Rect from position and size. A negative size produces
// an empty rectangle.
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// Width returns the rectangle's width.
func (r Rect) Width() int { return r.MaxX - r.MinX }

// Height returns the rectangle's height.
func (r Rect) Height() int { return r.MaxY - r.MinY }

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Intersect returns the intersection of r and other. The result IsEmpty if
// the rectangles do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		MinX: maxInt(r.MinX, other.MinX),
		MinY: maxInt(r.MinY, other.MinY),
		MaxX: minInt(r.MaxX, other.MaxX),
		MaxY: minInt(r.MaxY, other.MaxY),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// Contains reports whether the integer point (x, y) lies within r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
