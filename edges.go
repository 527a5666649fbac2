package imageproc

import "math"

// Default Canny thresholds, expressed for 8-bit rasters. Edges scales them
// by max/255 for other max values.
const (
	DefaultLowThreshold  = 50
	DefaultHighThreshold = 150
)

var (
	sobelX = mustKernel([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})
	sobelY = mustKernel([][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})
)

// plane is a single-channel float image indexed [y][x].
type plane [][]float64

// lumaPlane returns the luma of every pixel of r.
func lumaPlane(r *Raster) plane {
	p := make(plane, r.height)
	for y := range p {
		p[y] = make([]float64, r.width)
		for x := range p[y] {
			p[y][x] = float64(r.at(x, y).LumaPixel().r)
		}
	}
	return p
}

// convolve applies k to p without rounding or clamping. Out-of-bounds
// kernel cells are skipped, as in Convolve.
func (p plane) convolve(k *Kernel) plane {
	height, width := len(p), len(p[0])
	half := k.size / 2
	dst := make(plane, height)
	for y := 0; y < height; y++ {
		dst[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var sum float64
			for ky := 0; ky < k.size; ky++ {
				sy := y + ky - half
				if sy < 0 || sy >= height {
					continue
				}
				for kx := 0; kx < k.size; kx++ {
					sx := x + kx - half
					if sx < 0 || sx >= width {
						continue
					}
					sum += p[sy][sx] * k.At(kx, ky)
				}
			}
			dst[y][x] = sum
		}
	}
	return dst
}

// SobelMagnitude returns the greyscale raster of the Sobel gradient
// magnitude of r's luma, clamped to [0, max].
func SobelMagnitude(r *Raster) *Raster {
	l := lumaPlane(r)
	gx, gy := l.convolve(sobelX), l.convolve(sobelY)
	pix := make([]Pixel, len(r.pix))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			mag := math.Hypot(gx[y][x], gy[y][x])
			pix[y*r.width+x] = grey(clampInt(int(mag), 0, r.max), r.max)
		}
	}
	return &Raster{pix: pix, width: r.width, height: r.height, max: r.max}
}

// Edges performs Canny edge detection on r's luma. Gradient magnitudes of
// at least high are edges; magnitudes of at least low are edges when
// 8-connected to another edge. Thresholds are in 8-bit units. Edge pixels
// are set to max, all others to 0.
func Edges(r *Raster, low, high float64) *Raster {
	scale := float64(r.max) / 255
	low, high = low*scale, high*scale

	blurred := lumaPlane(r).convolve(BlurKernel)
	gx, gy := blurred.convolve(sobelX), blurred.convolve(sobelY)

	magnitude := make(plane, r.height)
	direction := make(plane, r.height)
	for y := 0; y < r.height; y++ {
		magnitude[y] = make([]float64, r.width)
		direction[y] = make([]float64, r.width)
		for x := 0; x < r.width; x++ {
			magnitude[y][x] = math.Hypot(gx[y][x], gy[y][x])
			direction[y][x] = math.Atan2(gy[y][x], gx[y][x])
		}
	}

	suppressed := nonMaxSuppression(magnitude, direction)
	edges := hysteresis(suppressed, low, high)

	pix := make([]Pixel, len(r.pix))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			v := 0
			if edges[y][x] {
				v = r.max
			}
			pix[y*r.width+x] = grey(v, r.max)
		}
	}
	return &Raster{pix: pix, width: r.width, height: r.height, max: r.max}
}

// nonMaxSuppression keeps only magnitudes that are local maxima along the
// gradient direction, quantized to 0, 45, 90 and 135 degrees. The one-pixel
// border is always suppressed.
func nonMaxSuppression(magnitude, direction plane) plane {
	height, width := len(magnitude), len(magnitude[0])
	out := make(plane, height)
	for y := range out {
		out[y] = make([]float64, width)
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			angle := direction[y][x] * 180 / math.Pi
			if angle < 0 {
				angle += 180
			}

			var q, r float64
			switch {
			case angle < 22.5 || angle >= 157.5:
				q, r = magnitude[y][x+1], magnitude[y][x-1]
			case angle < 67.5:
				q, r = magnitude[y+1][x+1], magnitude[y-1][x-1]
			case angle < 112.5:
				q, r = magnitude[y+1][x], magnitude[y-1][x]
			default:
				q, r = magnitude[y+1][x-1], magnitude[y-1][x+1]
			}

			if mag := magnitude[y][x]; mag >= q && mag >= r {
				out[y][x] = mag
			}
		}
	}
	return out
}

// hysteresis classifies strong and weak edges and grows strong edges into
// connected weak ones until nothing changes.
func hysteresis(m plane, low, high float64) [][]bool {
	height, width := len(m), len(m[0])
	edges := make([][]bool, height)
	for y := range edges {
		edges[y] = make([]bool, width)
		for x := range edges[y] {
			edges[y][x] = m[y][x] >= high && m[y][x] > 0
		}
	}

	for changed := true; changed; {
		changed = false
		for y := 1; y < height-1; y++ {
			for x := 1; x < width-1; x++ {
				if edges[y][x] || m[y][x] < low || m[y][x] == 0 {
					continue
				}
			neighbours:
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if edges[y+dy][x+dx] {
							edges[y][x] = true
							changed = true
							break neighbours
						}
					}
				}
			}
		}
	}
	return edges
}
