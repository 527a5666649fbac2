package imageproc_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/varseus/imageproc"
)

func TestGreyscaleIsIdempotent(t *testing.T) {
	r := sampleRaster(t)
	g := imageproc.Greyscale(r)
	if !g.IsGreyscale() {
		t.Fatal("Greyscale output should be greyscale")
	}
	if diff := cmp.Diff(g, imageproc.Greyscale(g)); diff != "" {
		t.Errorf("Greyscale should be idempotent (-once +twice):\n%s", diff)
	}
}

func TestGreyscaleMatchesLuma(t *testing.T) {
	r := sampleRaster(t)
	luma, err := imageproc.Project(r, imageproc.Luma)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(luma, imageproc.Greyscale(r)); diff != "" {
		t.Errorf("Greyscale should equal the luma projection (-luma +greyscale):\n%s", diff)
	}
}

func TestSepiaSaturatesWhite(t *testing.T) {
	white := rasterOf(t, 255, [][][3]int{{{255, 255, 255}}})
	if got := imageproc.Sepia(white); !got.Equal(white) {
		t.Errorf("Expected white, got %v", got.Rows())
	}
}

func TestProject(t *testing.T) {
	r := sampleRaster(t)
	tests := []struct {
		channel imageproc.Channel
		want    [][]int
	}{
		{imageproc.Red, [][]int{{255, 0, 0}, {10, 100, 250}}},
		{imageproc.Green, [][]int{{0, 255, 0}, {20, 150, 125}}},
		{imageproc.Blue, [][]int{{0, 0, 255}, {30, 200, 5}}},
		{imageproc.Value, [][]int{{255, 255, 255}, {30, 200, 250}}},
		{imageproc.Intensity, [][]int{{85, 85, 85}, {20, 150, 126}}},
	}
	for _, tt := range tests {
		t.Run(tt.channel.String(), func(t *testing.T) {
			got, err := imageproc.Project(r, tt.channel)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(greyRaster(t, 255, tt.want), got); diff != "" {
				t.Errorf("Project mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := imageproc.Project(r, imageproc.Channel(-1)); !errors.Is(err, imageproc.ErrUnknownChannel) {
		t.Errorf("Expected ErrUnknownChannel, got %v", err)
	}
}

func TestComponentMatricesAgreeWithProjection(t *testing.T) {
	r := sampleRaster(t)
	for c, m := range map[imageproc.Channel]imageproc.ColorMatrix{
		imageproc.Red:   imageproc.RedMatrix,
		imageproc.Green: imageproc.GreenMatrix,
		imageproc.Blue:  imageproc.BlueMatrix,
	} {
		want, err := imageproc.Project(r, c)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, imageproc.Transform(r, m)); diff != "" {
			t.Errorf("%v matrix mismatch (-want +got):\n%s", c, diff)
		}
	}
}
