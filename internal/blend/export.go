package blend

// MulDiv255 multiplies two bytes and divides by 255 using the fast
// approximation — exported so internal/blit can composite premultiplied
// pixels without duplicating the div255 family.
func MulDiv255(a, b byte) byte { return mulDiv255(a, b) }

// MulDiv255Exact is the exact counterpart of MulDiv255, for callers that
// cannot tolerate the fast approximation's +1 error.
func MulDiv255Exact(a, b byte) byte { return mulDiv255Exact(a, b) }

// Inv255 computes 255 - x (inverse alpha).
func Inv255(x byte) byte { return inv255(x) }

// AddClamp adds two bytes, clamping the sum to 255.
func AddClamp(a, b byte) byte { return addClamp(a, b) }

// Clamp255 clamps a uint16 to byte range [0, 255].
func Clamp255(x uint16) byte { return clamp255(x) }
