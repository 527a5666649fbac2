package imageproc_test

import (
	"testing"

	"github.com/varseus/imageproc"
)

// stepRaster is black on the left half and white on the right.
func stepRaster(t *testing.T, size int) *imageproc.Raster {
	rows := make([][]int, size)
	for y := range rows {
		rows[y] = make([]int, size)
		for x := size / 2; x < size; x++ {
			rows[y][x] = 255
		}
	}
	return greyRaster(t, 255, rows)
}

func TestEdgesFindsStep(t *testing.T) {
	r := stepRaster(t, 16)
	edges := imageproc.Edges(r, imageproc.DefaultLowThreshold, imageproc.DefaultHighThreshold)

	if edges.Width() != r.Width() || edges.Height() != r.Height() {
		t.Fatal("Edge raster should have same dimensions")
	}
	if !edges.IsGreyscale() {
		t.Error("Edge raster should be greyscale")
	}

	found := false
	for x := 6; x <= 9; x++ {
		if p, _ := edges.PixelAt(x, 8); p.R() == 255 {
			found = true
		}
	}
	if !found {
		t.Error("Expected an edge near the step in the middle row")
	}
	for _, x := range []int{2, 13} {
		if p, _ := edges.PixelAt(x, 8); p.R() != 0 {
			t.Errorf("Expected no edge at (%d,8), got %v", x, p)
		}
	}
}

func TestEdgesOnBlack(t *testing.T) {
	r := greyRaster(t, 255, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	edges := imageproc.Edges(r, imageproc.DefaultLowThreshold, imageproc.DefaultHighThreshold)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if p, _ := edges.PixelAt(x, y); p.R() != 0 {
				t.Errorf("Expected no edges in a black raster, got %v at (%d,%d)", p, x, y)
			}
		}
	}
}

func TestSobelMagnitude(t *testing.T) {
	r := stepRaster(t, 8)
	mag := imageproc.SobelMagnitude(r)
	if p, _ := mag.PixelAt(1, 4); p.R() != 0 {
		t.Errorf("Flat interior should have zero gradient, got %v", p)
	}
	if p, _ := mag.PixelAt(4, 4); p.R() != 255 {
		t.Errorf("Step should saturate the gradient, got %v", p)
	}
}
