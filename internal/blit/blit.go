// Package blit turns a rasterizer row's delta/change-mask buffers into
// composited pixels. It knows nothing about paint kinds or gradients —
// only how to integrate winding, resolve coverage, and blend a
// per-pixel color over a premultiplied destination row — so it never
// needs to import the root package; callers supply colors through a
// PixelFunc closure built from whatever paint they're evaluating.
package blit

import (
	"github.com/rasterforge/raster2d/internal/blend"
	"github.com/rasterforge/raster2d/internal/coverage"
	"github.com/rasterforge/raster2d/internal/wide"
)

// PixelFunc returns the straight-alpha color a paint resolves to at
// column x of the row slice passed to Row — the same index as delta[x],
// relative to the start of that slice, not an absolute canvas column.
type PixelFunc func(x int) (r, g, b, a uint8)

// Row integrates delta[x0:x1] into per-pixel winding numbers, resolves
// coverage under the given fill rule, fetches each pixel's color via
// color, and composites it over row — a slice of premultiplied RGBA
// bytes where row[i*4:i*4+4] holds the pixel at column i, aligned with
// delta[i]. It consumes and zeroes every delta slot and mask bit in
// [x0, x1), satisfying the rasterizer's cooperative blit contract.
//
// Groups of 4 columns whose change-mask bit is clear carry a constant
// winding (and therefore constant coverage) across all four pixels,
// letting Row skip both the per-pixel prefix sum and, when that
// coverage is zero, the blend entirely.
func Row(row []byte, delta []int32, mask []uint32, x0, x1 int, nonZero bool, color PixelFunc) {
	var acc int32
	i := x0
	for i < x1 {
		group := i / 4
		groupEnd := (group + 1) * 4
		if groupEnd > x1 {
			groupEnd = x1
		}
		word, bit := group/32, uint(group%32)
		dirty := mask[word]&(1<<bit) != 0

		if dirty {
			for ; i < groupEnd; i++ {
				acc += delta[i]
				delta[i] = 0
				blendPixel(row, i, coverage.Resolve(acc, nonZero), color)
			}
			mask[word] &^= 1 << bit
			continue
		}

		cov := coverage.Resolve(acc, nonZero)
		if cov != 0 {
			for j := i; j < groupEnd; j++ {
				blendPixel(row, j, cov, color)
			}
		}
		i = groupEnd
	}
}

func blendPixel(row []byte, i int, cov uint16, color PixelFunc) {
	covAlpha := coverage.Alpha(cov)
	if covAlpha == 0 {
		return
	}
	r, g, b, a := color(i)
	o := i * 4
	if covAlpha == 0xFF && a == 0xFF {
		pr := blend.MulDiv255(r, a)
		pg := blend.MulDiv255(g, a)
		pb := blend.MulDiv255(b, a)
		row[o+0], row[o+1], row[o+2], row[o+3] = pr, pg, pb, 0xFF
		return
	}
	sa := blend.MulDiv255(a, covAlpha)
	sr := blend.MulDiv255(blend.MulDiv255(r, a), covAlpha)
	sg := blend.MulDiv255(blend.MulDiv255(g, a), covAlpha)
	sb := blend.MulDiv255(blend.MulDiv255(b, a), covAlpha)
	inv := blend.Inv255(sa)
	row[o+0] = blend.AddClamp(sr, blend.MulDiv255(row[o+0], inv))
	row[o+1] = blend.AddClamp(sg, blend.MulDiv255(row[o+1], inv))
	row[o+2] = blend.AddClamp(sb, blend.MulDiv255(row[o+2], inv))
	row[o+3] = blend.AddClamp(sa, blend.MulDiv255(row[o+3], inv))
}

// SolidRow is Row specialized for a paint whose color never varies
// across the row (SolidPaint, and any gradient that has degenerated to
// a single flat-filled color). Winding (and so coverage) is constant
// across every run of consecutive mask-clear groups, so those groups
// are coalesced into one span before composite: runs of 16 or more
// pixels go through wide.BlendSolidColorSpanAA instead of the scalar
// blendPixel loop.
func SolidRow(row []byte, delta []int32, mask []uint32, x0, x1 int, nonZero bool, r, g, b, a uint8) {
	pr := blend.MulDiv255(r, a)
	pg := blend.MulDiv255(g, a)
	pb := blend.MulDiv255(b, a)
	pa := a

	var acc int32
	i := x0
	for i < x1 {
		group := i / 4
		groupEnd := (group + 1) * 4
		if groupEnd > x1 {
			groupEnd = x1
		}
		word, bit := group/32, uint(group%32)
		dirty := mask[word]&(1<<bit) != 0

		if dirty {
			for ; i < groupEnd; i++ {
				acc += delta[i]
				delta[i] = 0
				blendSolidPixel(row, i, pr, pg, pb, pa, coverage.Alpha(coverage.Resolve(acc, nonZero)))
			}
			mask[word] &^= 1 << bit
			continue
		}

		runEnd := groupEnd
		for runEnd < x1 {
			g2 := runEnd / 4
			w2, b2 := g2/32, uint(g2%32)
			if mask[w2]&(1<<b2) != 0 {
				break
			}
			runEnd += 4
			if runEnd > x1 {
				runEnd = x1
			}
		}

		covAlpha := coverage.Alpha(coverage.Resolve(acc, nonZero))
		if covAlpha != 0 {
			blendSolidRun(row, i, runEnd, pr, pg, pb, pa, covAlpha)
		}
		i = runEnd
	}
}

func blendSolidRun(row []byte, from, to int, pr, pg, pb, pa, covAlpha uint8) {
	n := to - from
	if n >= 16 {
		batchN := (n / 16) * 16
		wide.BlendSolidColorSpanAA(row[from*4:], batchN, pr, pg, pb, pa, covAlpha)
		from += batchN
	}
	for ; from < to; from++ {
		blendSolidPixel(row, from, pr, pg, pb, pa, covAlpha)
	}
}

func blendSolidPixel(row []byte, i int, pr, pg, pb, pa, covAlpha uint8) {
	if covAlpha == 0 {
		return
	}
	o := i * 4
	sa := blend.MulDiv255(pa, covAlpha)
	sr := blend.MulDiv255(pr, covAlpha)
	sg := blend.MulDiv255(pg, covAlpha)
	sb := blend.MulDiv255(pb, covAlpha)
	inv := blend.Inv255(sa)
	row[o+0] = blend.AddClamp(sr, blend.MulDiv255(row[o+0], inv))
	row[o+1] = blend.AddClamp(sg, blend.MulDiv255(row[o+1], inv))
	row[o+2] = blend.AddClamp(sb, blend.MulDiv255(row[o+2], inv))
	row[o+3] = blend.AddClamp(sa, blend.MulDiv255(row[o+3], inv))
}

// BatchGroup reports whether the 4-pixel group containing column x
// (indexed like delta and the mask, not an absolute canvas column) has
// its change-mask bit set, i.e. whether an edge crossed
// within it on the current row. Exposed for canvas-level fast paths
// that want to decide, before calling Row, whether a whole span is
// trivially empty or trivially opaque.
func BatchGroup(mask []uint32, x int) bool {
	group := x / 4
	word, bit := group/32, uint(group%32)
	return mask[word]&(1<<bit) != 0
}
