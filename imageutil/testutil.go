package imageutil

import (
	"math"

	"github.com/varseus/imageproc"
)

// RGB is an 8-bit color used by the pattern generators.
type RGB struct {
	R, G, B uint8
}

// generate builds a max-255 raster from a color function. The generators
// below only produce in-range values, so construction cannot fail.
func generate(width, height int, f func(x, y int) RGB) *imageproc.Raster {
	rows := make([][]imageproc.Pixel, height)
	for y := range rows {
		rows[y] = make([]imageproc.Pixel, width)
		for x := range rows[y] {
			c := f(x, y)
			p, err := imageproc.NewPixel(int(c.R), int(c.G), int(c.B), 255)
			if err != nil {
				panic(err)
			}
			rows[y][x] = p
		}
	}
	r, err := imageproc.NewRaster(rows)
	if err != nil {
		panic(err)
	}
	return r
}

// Gradient creates a horizontal black-to-white gradient.
func Gradient(width, height int) *imageproc.Raster {
	return generate(width, height, func(x, _ int) RGB {
		v := uint8(255 * x / max(1, width-1))
		return RGB{v, v, v}
	})
}

// VerticalGradient creates a vertical black-to-white gradient.
func VerticalGradient(width, height int) *imageproc.Raster {
	return generate(width, height, func(_, y int) RGB {
		v := uint8(255 * y / max(1, height-1))
		return RGB{v, v, v}
	})
}

// Checkerboard creates a black and white checkerboard of square cells.
func Checkerboard(width, height, squareSize int) *imageproc.Raster {
	squareSize = max(1, squareSize)
	return generate(width, height, func(x, y int) RGB {
		if ((x/squareSize)+(y/squareSize))%2 == 0 {
			return RGB{255, 255, 255}
		}
		return RGB{}
	})
}

// Solid creates a raster of a single color.
func Solid(width, height int, c RGB) *imageproc.Raster {
	return generate(width, height, func(_, _ int) RGB { return c })
}

var colorBars = []RGB{
	{255, 255, 255}, // White
	{255, 255, 0},   // Yellow
	{0, 255, 255},   // Cyan
	{0, 255, 0},     // Green
	{255, 0, 255},   // Magenta
	{255, 0, 0},     // Red
	{0, 0, 255},     // Blue
	{0, 0, 0},       // Black
}

// ColorBars creates the eight-bar color test pattern.
func ColorBars(width, height int) *imageproc.Raster {
	barWidth := max(1, width/len(colorBars))
	return generate(width, height, func(x, _ int) RGB {
		return colorBars[min(x/barWidth, len(colorBars)-1)]
	})
}

// EdgePattern creates a grey field with a white centre rectangle and a
// black diagonal line, for exercising edge detection.
func EdgePattern(width, height int) *imageproc.Raster {
	rx1, ry1 := width/4, height/4
	rx2, ry2 := 3*width/4, 3*height/4
	diag := min(width, height) / 2
	return generate(width, height, func(x, y int) RGB {
		switch {
		case x == y && x < diag:
			return RGB{}
		case x >= rx1 && x < rx2 && y >= ry1 && y < ry2:
			return RGB{255, 255, 255}
		}
		return RGB{128, 128, 128}
	})
}

// Patterns maps pattern names to generators, for tools that take the name
// from the command line.
var Patterns = map[string]func(width, height int) *imageproc.Raster{
	"gradient":     Gradient,
	"vgradient":    VerticalGradient,
	"checkerboard": func(w, h int) *imageproc.Raster { return Checkerboard(w, h, max(1, min(w, h)/8)) },
	"colorbars":    ColorBars,
	"edges":        EdgePattern,
}

// MSE returns the mean squared channel error between two rasters, or
// math.MaxFloat64 if their sizes differ.
func MSE(a, b *imageproc.Raster) float64 {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return math.MaxFloat64
	}

	var sumSq float64
	count := float64(a.Width() * a.Height() * 3)
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			p, _ := a.PixelAt(x, y)
			q, _ := b.PixelAt(x, y)
			dr := float64(p.R() - q.R())
			dg := float64(p.G() - q.G())
			db := float64(p.B() - q.B())
			sumSq += dr*dr + dg*dg + db*db
		}
	}
	return sumSq / count
}

// MaxDiff returns the largest absolute channel difference between two
// rasters, or -1 if their sizes differ.
func MaxDiff(a, b *imageproc.Raster) int {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return -1
	}

	maxDiff := 0
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			p, _ := a.PixelAt(x, y)
			q, _ := b.PixelAt(x, y)
			maxDiff = max(maxDiff, abs(p.R()-q.R()), abs(p.G()-q.G()), abs(p.B()-q.B()))
		}
	}
	return maxDiff
}
