package imageproc

import (
	"image"
	"image/color"
)

// Raster implements image.Image so it can be handed to any standard
// encoder or drawing routine.
var _ image.Image = (*Raster)(nil)

// ColorModel returns color.RGBA64Model.
func (r *Raster) ColorModel() color.Model {
	return color.RGBA64Model
}

// Bounds returns the rectangle (0, 0)-(Width, Height).
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// At returns the pixel at (x, y) scaled to 16 bits per channel. Points
// outside the raster are transparent black.
func (r *Raster) At(x, y int) color.Color {
	p, ok := r.PixelAt(x, y)
	if !ok {
		return color.RGBA64{}
	}
	return p.RGBA64()
}

// RGBA64 converts p to an opaque 16-bit color, mapping max to 0xffff.
func (p Pixel) RGBA64() color.RGBA64 {
	return color.RGBA64{
		R: scale16(p.r, p.max),
		G: scale16(p.g, p.max),
		B: scale16(p.b, p.max),
		A: 0xffff,
	}
}

func scale16(v, max int) uint16 {
	if max == 0 {
		return 0
	}
	return uint16(v * 0xffff / max)
}
