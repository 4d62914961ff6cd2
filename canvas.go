package raster2d

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"unsafe"

	"github.com/rasterforge/raster2d/internal/blit"
	"github.com/rasterforge/raster2d/internal/clip"
	"github.com/rasterforge/raster2d/internal/fixedpoint"
	"github.com/rasterforge/raster2d/internal/raster"
)

// Canvas is a 2-D raster surface: a 16-byte-aligned premultiplied pixel
// buffer holding four bytes per pixel in R, G, B, A order (not packed
// ARGB words), a view/clip rectangle stack, and a reusable rasterizer.
// It owns its buffer and temporary arenas exclusively and is not safe
// for concurrent use — a caller wishing to parallelize draws creates one
// Canvas per thread.
type Canvas struct {
	width, height int
	stride        int // bytes per row, a multiple of 16
	pix           []byte

	clip *clip.Stack
	ras  *raster.Rasterizer
}

// NewCanvas allocates a width×height Canvas with its own aligned pixel
// buffer, cleared to transparent.
func NewCanvas(width, height int) *Canvas {
	stride := fixedpoint.RoundUp4(width) * 4
	pix := alignedBuffer(stride * height)
	return NewCanvasFromBuffer(pix, width, height, stride)
}

// NewCanvasFromBuffer wraps a caller-supplied premultiplied buffer laid
// out as R, G, B, A bytes per pixel.
// pix must be 16-byte aligned and stride must be a multiple of 16 bytes
// (4 pixels); violating either panics with ErrMisalignedBuffer or
// ErrInvalidStride respectively. The stride error carries the offending
// stride; the alignment error carries no value.
func NewCanvasFromBuffer(pix []byte, width, height, stride int) *Canvas {
	if stride%16 != 0 {
		panic(fmt.Errorf("%w: stride=%d", ErrInvalidStride, stride))
	}
	if !isAligned16(pix) {
		panic(fmt.Errorf("%w", ErrMisalignedBuffer))
	}
	if height > 0 && len(pix) < stride*height {
		panic(fmt.Errorf("%w: buffer length %d too small for stride=%d height=%d", ErrInvalidStride, len(pix), stride, height))
	}
	return &Canvas{
		width:  width,
		height: height,
		stride: stride,
		pix:    pix,
		clip:   clip.NewStack(clip.NewRect(0, 0, width, height)),
		ras:    raster.NewRasterizer(),
	}
}

// alignedBuffer allocates n bytes starting on a 16-byte boundary. Go's
// allocator gives no alignment guarantee finer than pointer size, so the
// backing array is over-allocated by up to 15 bytes and sliced forward
// to the first aligned byte.
func alignedBuffer(n int) []byte {
	raw := make([]byte, n+15)
	off := (16 - int(uintptr(unsafe.Pointer(&raw[0]))%16)) % 16
	return raw[off : off+n : off+n]
}

func isAligned16(pix []byte) bool {
	if len(pix) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&pix[0]))%16 == 0
}

// Width returns the canvas's pixel width.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas's pixel height.
func (c *Canvas) Height() int { return c.height }

// SetFlattenTolerance overrides the internal rasterizer's curve
// flattening tolerance in pixels. A value <= 0 restores the default
// (internal/curve.Tolerance).
func (c *Canvas) SetFlattenTolerance(px float64) {
	c.ras.SetTolerance(px)
}

// PushState saves the current view/clip rectangles onto the stack.
func (c *Canvas) PushState() { c.clip.Push() }

// PopState restores the most recently pushed view/clip rectangles.
func (c *Canvas) PopState() { c.clip.Pop() }

// SetView intersects (x, y, w, h) with the current clip and installs the
// result as both the new view and the new clip.
func (c *Canvas) SetView(x, y, w, h int) {
	c.clip.SetView(clip.NewRect(x, y, w, h))
}

// SetClip intersects (x, y, w, h) with the current clip.
func (c *Canvas) SetClip(x, y, w, h int) {
	c.clip.SetClip(clip.NewRect(x, y, w, h))
}

// View returns the current view rectangle.
func (c *Canvas) View() (x, y, w, h int) {
	r := c.clip.View()
	return r.MinX, r.MinY, r.Width(), r.Height()
}

// Clip returns the current clip rectangle.
func (c *Canvas) Clip() (x, y, w, h int) {
	r := c.clip.Clip()
	return r.MinX, r.MinY, r.Width(), r.Height()
}

// Draw offsets path by the current view origin, rasterizes it against
// the current clip rectangle, and composites paint over the pixel
// buffer wherever the path's winding is inside under paint's own
// WindingRule. This is the Canvas's single entry point: every other
// method only adjusts state Draw reads.
func (c *Canvas) Draw(path PathSource, paint Paint) {
	viewX, viewY, _, _ := c.View()
	offsetPath := Offset(path, float64(viewX), float64(viewY))

	clipRect := c.clip.Clip().Intersect(clip.NewRect(0, 0, c.width, c.height))
	if clipRect.IsEmpty() {
		return
	}

	c.ras.Initialise(clipRect)
	c.ras.AddPath(rasterPathAdapter{offsetPath})

	winding, colorFn, solid := c.pixelSource(paint)
	nonZero := winding == NonZero
	originX := clipRect.MinX

	c.ras.Rasterize(func(delta []int32, mask []uint32, x0, x1, y int) {
		rowStart := y * c.stride
		rowWidth := clipRect.Width()
		row := c.pix[rowStart+originX*4 : rowStart+(originX+rowWidth)*4]
		if solid != nil {
			blit.SolidRow(row, delta, mask, x0, x1, nonZero, solid.R(), solid.G(), solid.B(), solid.A())
			return
		}
		blit.Row(row, delta, mask, x0, x1, nonZero, func(i int) (r, g, b, a uint8) {
			return colorFn(originX+i, y)
		})
	})
}

// rasterPathAdapter adapts the root package's PathSource to
// internal/raster's narrower, root-independent PathSource.
type rasterPathAdapter struct{ src PathSource }

func (a rasterPathAdapter) Len() int { return a.src.Len() }

func (a rasterPathAdapter) Cmd(i int) int {
	switch a.src.Cmd(i) {
	case CmdMove:
		return 0
	case CmdLine:
		return 1
	case CmdQuad:
		return 2
	default:
		return 3
	}
}

func (a rasterPathAdapter) PointAt(i, k int) (x, y float64) {
	p := a.src.PointAt(i, k)
	return p.X, p.Y
}

// pixelSource dispatches on paint's concrete kind and returns its
// WindingRule plus either a constant color (solid fast path, colorFn
// nil) or a per-pixel color function evaluated at the pixel center.
func (c *Canvas) pixelSource(paint Paint) (winding WindingRule, colorFn func(x, y int) (r, g, b, a uint8), solid *ARGB32) {
	switch p := paint.(type) {
	case SolidPaint:
		col := p.Color
		return p.Winding, nil, &col

	case LinearPaint:
		return p.Winding, func(x, y int) (uint8, uint8, uint8, uint8) {
			t := p.ParamAt(float64(x)+0.5, float64(y)+0.5)
			return sampleGradient(p.Gradient, t, p.Repeat)
		}, nil

	case RadialPaint:
		return p.Winding, func(x, y int) (uint8, uint8, uint8, uint8) {
			t := p.ParamAt(float64(x)+0.5, float64(y)+0.5)
			return sampleGradient(p.Gradient, t, p.Repeat)
		}, nil

	case AngularPaint:
		return p.Winding, func(x, y int) (uint8, uint8, uint8, uint8) {
			t := p.ParamAt(float64(x)+0.5, float64(y)+0.5)
			return sampleGradient(p.Gradient, t, p.Repeat)
		}, nil

	case BiradialPaint:
		return p.Winding, func(x, y int) (uint8, uint8, uint8, uint8) {
			t, ok := p.ParamAt(float64(x)+0.5, float64(y)+0.5)
			if !ok {
				col := p.Gradient.Lookup(p.Gradient.Length() - 1)
				return col.R(), col.G(), col.B(), col.A()
			}
			return sampleGradient(p.Gradient, t, p.Repeat)
		}, nil

	default:
		return NonZero, func(x, y int) (uint8, uint8, uint8, uint8) { return 0, 0, 0, 0 }, nil
	}
}

// sampleGradient scales a paint's [0,1]-ish parameter into LUT-index
// units and resolves it against mode.
func sampleGradient(g *Gradient, t float64, mode RepeatMode) (r, g8, b, a uint8) {
	idx := int(math.Floor(t * float64(g.Length())))
	col := g.Resolve(idx, mode)
	return col.R(), col.G(), col.B(), col.A()
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At implements image.Image, converting the internal premultiplied
// pixel back to straight alpha.
func (c *Canvas) At(x, y int) color.Color {
	return c.ARGBAt(x, y)
}

// ARGBAt returns the straight-alpha color at (x, y) as an ARGB32.
func (c *Canvas) ARGBAt(x, y int) ARGB32 {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Transparent
	}
	o := y*c.stride + x*4
	pr, pg, pb, pa := c.pix[o], c.pix[o+1], c.pix[o+2], c.pix[o+3]
	if pa == 0 {
		return Transparent
	}
	unmul := func(p byte) uint8 {
		v := (uint16(p)*255 + uint16(pa)/2) / uint16(pa)
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return NewARGB32(pa, unmul(pr), unmul(pg), unmul(pb))
}

// WritePNG encodes the canvas's current contents as a PNG to w.
func (c *Canvas) WritePNG(w io.Writer) error {
	img := image.NewNRGBA(c.Bounds())
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			col := c.ARGBAt(x, y)
			o := img.PixOffset(x, y)
			img.Pix[o+0] = col.R()
			img.Pix[o+1] = col.G()
			img.Pix[o+2] = col.B()
			img.Pix[o+3] = col.A()
		}
	}
	return png.Encode(w, img)
}
