package imageproc_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/varseus/imageproc"
)

func TestBlurSkipsOutOfBoundsCells(t *testing.T) {
	r := greyRaster(t, 255, [][]int{
		{10, 20},
		{30, 40},
	})

	// (0,0): floor(10/4) + floor(20/8) + floor(30/8) + floor(40/16) = 2+2+3+2.
	want := greyRaster(t, 255, [][]int{
		{9, 12},
		{14, 15},
	})
	if diff := cmp.Diff(want, imageproc.Blur(r)); diff != "" {
		t.Errorf("Blur mismatch (-want +got):\n%s", diff)
	}
}

func TestBlurInterior(t *testing.T) {
	row := []int{100, 100, 100, 100, 100}
	r := greyRaster(t, 255, [][]int{row, row, row, row, row})
	blurred := imageproc.Blur(r)

	// 4*floor(6.25) + 4*floor(12.5) + 25
	if p, _ := blurred.PixelAt(2, 2); p.R() != 97 {
		t.Errorf("Expected interior 97, got %v", p)
	}
	// Corner sees four of nine cells: 25 + 2*12 + 6.
	if p, _ := blurred.PixelAt(0, 0); p.R() != 55 {
		t.Errorf("Expected corner 55, got %v", p)
	}
}

func TestSharpen(t *testing.T) {
	row := []int{100, 100, 100, 100, 100}
	r := greyRaster(t, 255, [][]int{row, row, row, row, row})
	sharpened := imageproc.Sharpen(r)

	if sharpened.Width() != 5 || sharpened.Height() != 5 {
		t.Fatal("Sharpened raster should have same dimensions")
	}
	// 16*floor(-12.5) + 8*25 + 100
	if p, _ := sharpened.PixelAt(2, 2); p.R() != 92 {
		t.Errorf("Expected centre 92, got %v", p)
	}
	// 100 + 3*25 + 5*floor(-12.5)
	if p, _ := sharpened.PixelAt(0, 0); p.R() != 110 {
		t.Errorf("Expected corner 110, got %v", p)
	}
}

func TestSharpenClamps(t *testing.T) {
	r := greyRaster(t, 255, [][]int{
		{0, 0, 0},
		{0, 255, 0},
		{0, 0, 0},
	})
	s := imageproc.Sharpen(r)
	if p, _ := s.PixelAt(1, 1); p.R() != 255 {
		t.Errorf("Expected bright centre to clamp at 255, got %v", p)
	}
	// 255/4 from the inner ring.
	if p, _ := s.PixelAt(0, 0); p.R() != 63 {
		t.Errorf("Expected corner 63, got %v", p)
	}

	dark := greyRaster(t, 255, [][]int{{255, 0, 0, 0, 255}})
	if p, _ := imageproc.Sharpen(dark).PixelAt(2, 0); p.R() != 0 {
		t.Errorf("Expected negative sum to clamp at 0, got %v", p)
	}
}

func TestConvolveIdentity(t *testing.T) {
	identity, err := imageproc.NewKernel([][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	r := sampleRaster(t)
	if diff := cmp.Diff(r, imageproc.Convolve(r, identity)); diff != "" {
		t.Errorf("Identity kernel should preserve pixels (-want +got):\n%s", diff)
	}
}

func TestNewKernelValidation(t *testing.T) {
	if _, err := imageproc.NewKernel([][]float64{{1, 1}, {1, 1}}); err == nil {
		t.Error("Even-sized kernel should be rejected")
	}
	if _, err := imageproc.NewKernel([][]float64{{1}, {1, 1}, {1}}); err == nil {
		t.Error("Non-square kernel should be rejected")
	}
	if imageproc.BlurKernel.Size() != 3 || imageproc.SharpenKernel.Size() != 5 {
		t.Error("Unexpected kernel sizes")
	}
	if got := imageproc.SharpenKernel.At(2, 2); got != 1 {
		t.Errorf("Sharpen centre weight should be 1, got %v", got)
	}
}
