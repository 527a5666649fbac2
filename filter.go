package imageproc

import (
	"errors"
	"fmt"
	"math"
)

// Kernel is an odd-sized square matrix of convolution weights. Kernels are
// immutable once built.
type Kernel struct {
	weights []float64
	size    int
}

// NewKernel creates a kernel from a square 2D slice with an odd side.
func NewKernel(values [][]float64) (*Kernel, error) {
	size := len(values)
	if size == 0 || size%2 == 0 {
		return nil, fmt.Errorf("kernel size %d is not odd", size)
	}
	k := &Kernel{weights: make([]float64, 0, size*size), size: size}
	for _, row := range values {
		if len(row) != size {
			return nil, errors.New("kernel is not square")
		}
		k.weights = append(k.weights, row...)
	}
	return k, nil
}

func mustKernel(values [][]float64) *Kernel {
	k, err := NewKernel(values)
	if err != nil {
		panic(err)
	}
	return k
}

// Size returns the side length of the kernel.
func (k *Kernel) Size() int { return k.size }

// At returns the weight in kernel column kx and row ky.
func (k *Kernel) At(kx, ky int) float64 {
	return k.weights[ky*k.size+kx]
}

var (
	// BlurKernel is a 3x3 Gaussian.
	BlurKernel = mustKernel([][]float64{
		{1.0 / 16, 1.0 / 8, 1.0 / 16},
		{1.0 / 8, 1.0 / 4, 1.0 / 8},
		{1.0 / 16, 1.0 / 8, 1.0 / 16},
	})

	// SharpenKernel is a 5x5 unsharp kernel: a negative outer ring around
	// a positive inner ring and a unit centre.
	SharpenKernel = mustKernel([][]float64{
		{-1.0 / 8, -1.0 / 8, -1.0 / 8, -1.0 / 8, -1.0 / 8},
		{-1.0 / 8, 1.0 / 4, 1.0 / 4, 1.0 / 4, -1.0 / 8},
		{-1.0 / 8, 1.0 / 4, 1, 1.0 / 4, -1.0 / 8},
		{-1.0 / 8, 1.0 / 4, 1.0 / 4, 1.0 / 4, -1.0 / 8},
		{-1.0 / 8, -1.0 / 8, -1.0 / 8, -1.0 / 8, -1.0 / 8},
	})
)

// Convolve applies kernel k to every channel of r.
//
// Near the border, kernel cells that fall outside the raster are skipped:
// they are neither zero-padded nor compensated for by renormalizing the
// remaining weights, so edges and corners receive less total weight than
// the interior. Each in-bounds term is floor(channel*weight); the sum is
// rounded down and clamped to [0, max].
func Convolve(r *Raster, k *Kernel) *Raster {
	half := k.size / 2
	pix := make([]Pixel, len(r.pix))

	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			var sum [3]float64

			for ky := 0; ky < k.size; ky++ {
				for kx := 0; kx < k.size; kx++ {
					src, ok := r.PixelAt(x+kx-half, y+ky-half)
					if !ok {
						continue
					}
					w := k.At(kx, ky)
					sum[0] += src.WeightedContribution(w, Red)
					sum[1] += src.WeightedContribution(w, Green)
					sum[2] += src.WeightedContribution(w, Blue)
				}
			}

			pix[y*r.width+x] = Pixel{
				r:   clampInt(int(math.Floor(sum[0])), 0, r.max),
				g:   clampInt(int(math.Floor(sum[1])), 0, r.max),
				b:   clampInt(int(math.Floor(sum[2])), 0, r.max),
				max: r.max,
			}
		}
	}

	return &Raster{pix: pix, width: r.width, height: r.height, max: r.max}
}

// Blur applies BlurKernel.
func Blur(r *Raster) *Raster {
	return Convolve(r, BlurKernel)
}

// Sharpen applies SharpenKernel.
func Sharpen(r *Raster) *Raster {
	return Convolve(r, SharpenKernel)
}
