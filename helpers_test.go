package imageproc_test

import (
	"testing"

	"github.com/varseus/imageproc"
)

// rasterOf builds a raster from rows of (r, g, b) triples.
func rasterOf(t *testing.T, max int, rows [][][3]int) *imageproc.Raster {
	t.Helper()
	grid := make([][]imageproc.Pixel, len(rows))
	for y, row := range rows {
		grid[y] = make([]imageproc.Pixel, len(row))
		for x, c := range row {
			p, err := imageproc.NewPixel(c[0], c[1], c[2], max)
			if err != nil {
				t.Fatalf("NewPixel%v: %v", c, err)
			}
			grid[y][x] = p
		}
	}
	r, err := imageproc.NewRaster(grid)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	return r
}

// greyRaster builds a greyscale raster from rows of values.
func greyRaster(t *testing.T, max int, rows [][]int) *imageproc.Raster {
	t.Helper()
	triples := make([][][3]int, len(rows))
	for y, row := range rows {
		triples[y] = make([][3]int, len(row))
		for x, v := range row {
			triples[y][x] = [3]int{v, v, v}
		}
	}
	return rasterOf(t, max, triples)
}

// sampleRaster is a small non-symmetric color raster.
func sampleRaster(t *testing.T) *imageproc.Raster {
	return rasterOf(t, 255, [][][3]int{
		{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}},
		{{10, 20, 30}, {100, 150, 200}, {250, 125, 5}},
	})
}

func pixel(t *testing.T, r, g, b, max int) imageproc.Pixel {
	t.Helper()
	p, err := imageproc.NewPixel(r, g, b, max)
	if err != nil {
		t.Fatalf("NewPixel(%d,%d,%d,%d): %v", r, g, b, max, err)
	}
	return p
}
