// Package fixedpoint provides the scalar and arena utilities shared by the
// rasterizer: power-of-two rounding for gradient LUT lengths, bit-scan
// helpers, and a small reusable arena for per-scanline temporaries.
//
// Edge coordinates inside the rasterizer are carried in
// golang.org/x/image/math/fixed.Int26_6, the sub-pixel fixed-point type
// already used throughout the x/image ecosystem; it plays the role the
// specification calls "24.8 (or 16.16)".
package fixedpoint

import "golang.org/x/image/math/fixed"

// Scalar is the sub-pixel fixed-point type used by the rasterizer's edge
// arithmetic.
type Scalar = fixed.Int26_6

// FromFloat64 converts a float64 canvas coordinate to the rasterizer's
// fixed-point representation.
func FromFloat64(v float64) Scalar {
	return fixed.Int26_6(v * 64)
}

// ToFloat64 converts a fixed-point value back to float64.
func ToFloat64(v Scalar) float64 {
	return float64(v) / 64
}

// Ntz returns the number of trailing zero bits in v, or 32 if v is zero.
// Used to find the log2 of an already-power-of-two length.
func Ntz(v uint32) int {
	if v == 0 {
		return 32
	}
	n := 0
	for v&1 == 0 {
		v >>= 1
		n++
	}
	return n
}

// IsPow2 reports whether v is a power of two (v > 0).
func IsPow2(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// NextPow2 rounds v up to the next power of two. v <= 1 rounds to 1.
func NextPow2(v int) int {
	if v <= 1 {
		return 1
	}
	n := 1
	for n < v {
		n <<= 1
	}
	return n
}

// ClipPow2 clamps v to [lo, hi] and rounds the result up to a power of two.
// lo and hi must themselves be powers of two. This is the rule the gradient
// table uses to derive its LUT length: clip(n, 2, 8192) then round to pow2.
func ClipPow2(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return NextPow2(v)
}

// Arena is a reusable scratch buffer for per-scanline temporaries, grown
// on demand; callers are responsible for zeroing the portion they use
// between scanlines. The rasterizer does not use it: Rasterizer.Initialise
// allocates its own delta and change-mask arrays.
type Arena struct {
	ints  []int32
	bits  []uint32
	fused []float64
}

// Ints returns an int32 slice of at least length n, reusing backing storage
// across calls when possible.
func (a *Arena) Ints(n int) []int32 {
	if cap(a.ints) < n {
		a.ints = make([]int32, n)
	}
	return a.ints[:n]
}

// Bits returns a uint32 slice of at least length n, reusing backing storage
// across calls when possible.
func (a *Arena) Bits(n int) []uint32 {
	if cap(a.bits) < n {
		a.bits = make([]uint32, n)
	}
	return a.bits[:n]
}

// Floats returns a float64 slice of at least length n, reusing backing
// storage across calls when possible.
func (a *Arena) Floats(n int) []float64 {
	if cap(a.fused) < n {
		a.fused = make([]float64, n)
	}
	return a.fused[:n]
}

// RoundUp4 rounds n up to the next multiple of 4, matching the rasterizer's
// 4-pixel group width and the Canvas stride invariant.
func RoundUp4(n int) int {
	return (n + 3) &^ 3
}
