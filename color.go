package imageproc

import "fmt"

// ColorMatrix maps an input (r, g, b) vector to an output (r, g, b) vector.
// Row i holds the weights of output channel i.
type ColorMatrix [3][3]float64

var (
	// GreyscaleMatrix applies Rec. 709 luma weights to every output channel.
	GreyscaleMatrix = ColorMatrix{
		{0.2126, 0.7152, 0.0722},
		{0.2126, 0.7152, 0.0722},
		{0.2126, 0.7152, 0.0722},
	}

	// SepiaMatrix gives a warm brown tone. Its row sums exceed 1, so bright
	// pixels saturate.
	SepiaMatrix = ColorMatrix{
		{0.393, 0.769, 0.189},
		{0.349, 0.686, 0.168},
		{0.272, 0.534, 0.131},
	}

	RedMatrix   = ColorMatrix{{1, 0, 0}, {1, 0, 0}, {1, 0, 0}}
	GreenMatrix = ColorMatrix{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}}
	BlueMatrix  = ColorMatrix{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}}
)

// uniform reports whether all three rows are identical.
func (m ColorMatrix) uniform() bool {
	return m[0] == m[1] && m[1] == m[2]
}

// Transform applies m to every pixel of r.
func Transform(r *Raster, m ColorMatrix) *Raster {
	return r.mapPixels(func(p Pixel) Pixel { return p.ApplyColorMatrix(m) })
}

// Greyscale converts r with GreyscaleMatrix. The result is greyscale and
// converting it again leaves it unchanged.
func Greyscale(r *Raster) *Raster {
	return Transform(r, GreyscaleMatrix)
}

// Sepia converts r with SepiaMatrix.
func Sepia(r *Raster) *Raster {
	return Transform(r, SepiaMatrix)
}

// Project replaces every pixel of r with the greyscale projection c
// (red, green, blue, value, intensity or luma).
func Project(r *Raster, c Channel) (*Raster, error) {
	if c < Red || c > Luma {
		return nil, fmt.Errorf("%w: %v", ErrUnknownChannel, c)
	}
	return r.MapGreyscale(func(p Pixel) Pixel {
		g, _ := p.Project(c)
		return g
	})
}
