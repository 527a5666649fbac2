package imageutil

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/varseus/imageproc"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom, which gives good quality for
	// downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize scales r to width x height. The result keeps r's max value.
func Resize(r *imageproc.Raster, width, height int, interp Interpolation) (*imageproc.Raster, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: target size %dx%d", imageproc.ErrInvalidImage, width, height)
	}
	dst := image.NewRGBA64(image.Rect(0, 0, width, height))
	interp.scaler().Scale(dst, dst.Bounds(), r, r.Bounds(), draw.Src, nil)
	return FromImageMax(dst, r.MaxValue())
}

// Downscale shrinks r to width x height with InterpolationArea
// (Catmull-Rom). Neither dimension may grow.
func Downscale(r *imageproc.Raster, width, height int) (*imageproc.Raster, error) {
	if width > r.Width() || height > r.Height() {
		return nil, fmt.Errorf("%w: cannot downscale %dx%d to %dx%d",
			imageproc.ErrInvalidImage, r.Width(), r.Height(), width, height)
	}
	return Resize(r, width, height, InterpolationArea)
}

// ResizeToWidth resizes r to the given width while maintaining aspect
// ratio.
func ResizeToWidth(r *imageproc.Raster, width int, interp Interpolation) (*imageproc.Raster, error) {
	aspectRatio := float64(r.Width()) / float64(r.Height())
	height := max(1, int(float64(width)/aspectRatio))
	return Resize(r, width, height, interp)
}
