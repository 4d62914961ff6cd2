package raster2d

import "errors"

// Contract-violation sentinels. Per the core's error taxonomy these are
// never returned — they are wrapped into a panic and exist only so a
// recovering caller (typically a test) can errors.Is against something
// specific instead of matching on a panic message.
var (
	ErrMisalignedBuffer = errors.New("raster2d: pixel buffer is not 16-byte aligned")
	ErrInvalidStride    = errors.New("raster2d: stride is not a multiple of 4 pixels")
)
