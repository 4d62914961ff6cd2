// Package raster2d is a software-only 2D vector graphics rasterizer: a
// path model, a quadratic/cubic Bezier flattener, a scanline rasterizer
// using analytic per-pixel coverage, and a paint/blit pipeline
// supporting solid fills and linear, radial, angular, and biradial
// gradients.
//
// # Quick start
//
//	c := raster2d.NewCanvas(256, 256)
//
//	p := raster2d.NewPath()
//	p.MoveTo(32, 32)
//	p.LineTo(224, 32)
//	p.LineTo(224, 224)
//	p.LineTo(32, 224)
//	p.Close()
//
//	c.Draw(p, raster2d.NewSolidPaint(raster2d.Red))
//
//	f, _ := os.Create("out.png")
//	defer f.Close()
//	c.WritePNG(f)
//
// # Architecture
//
// The public surface is Path (append-only command/point storage),
// PathSource and its lazy views (Offset, Scale, Rotate, Slice, Concat,
// Retro), Gradient (a stop list plus a power-of-two color LUT), the five
// Paint kinds (SolidPaint, LinearPaint, RadialPaint, AngularPaint,
// BiradialPaint), and Canvas (the pixel buffer, view/clip stack, and
// Draw entry point). The rasterizer core (internal/raster), coverage
// resolver (internal/coverage), and blit pipeline (internal/blit) are
// internal: Canvas.Draw is the only bridge between a Path and a Paint.
//
// # Coordinate system
//
// Origin (0,0) at top-left, x increases right, y increases down. Pixel
// (x, y) occupies [x, x+1) × [y, y+1); paints sample at the pixel
// center, (x+0.5, y+0.5).
package raster2d
