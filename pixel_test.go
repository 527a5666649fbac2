package imageproc_test

import (
	"errors"
	"testing"

	"github.com/varseus/imageproc"
)

func TestNewPixelValidation(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, m int
		wantErr    bool
	}{
		{"black", 0, 0, 0, 255, false},
		{"at max", 255, 255, 255, 255, false},
		{"zero max", 0, 0, 0, 0, false},
		{"negative red", -1, 0, 0, 255, true},
		{"green over max", 0, 256, 0, 255, true},
		{"blue over small max", 0, 0, 2, 1, true},
		{"negative max", 0, 0, 0, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := imageproc.NewPixel(tt.r, tt.g, tt.b, tt.m)
			if tt.wantErr {
				if !errors.Is(err, imageproc.ErrInvalidPixel) {
					t.Errorf("Expected ErrInvalidPixel, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestPixelProjections(t *testing.T) {
	p := pixel(t, 10, 200, 31, 255)
	tests := []struct {
		channel imageproc.Channel
		want    int
	}{
		{imageproc.Red, 10},
		{imageproc.Green, 200},
		{imageproc.Blue, 31},
		{imageproc.Value, 200},
		{imageproc.Intensity, 80}, // 241/3
		{imageproc.Luma, 147},     // 2.126 + 143.04 + 2.2382
	}
	for _, tt := range tests {
		got, err := p.Project(tt.channel)
		if err != nil {
			t.Fatalf("Project(%v): %v", tt.channel, err)
		}
		if !got.IsGrey() || got.R() != tt.want || got.MaxValue() != 255 {
			t.Errorf("Project(%v) = %v, expected grey %d", tt.channel, got, tt.want)
		}
	}

	if _, err := p.Project(imageproc.Channel(42)); !errors.Is(err, imageproc.ErrUnknownChannel) {
		t.Errorf("Expected ErrUnknownChannel, got %v", err)
	}
}

func TestPixelComponent(t *testing.T) {
	p := pixel(t, 1, 2, 3, 9)
	got, err := p.Component(imageproc.Blue)
	if err != nil {
		t.Fatal(err)
	}
	if want := pixel(t, 3, 3, 3, 9); !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if _, err := p.Component(imageproc.Luma); !errors.Is(err, imageproc.ErrUnknownChannel) {
		t.Errorf("Component(Luma) should fail with ErrUnknownChannel, got %v", err)
	}
}

func TestLumaPrimaries(t *testing.T) {
	tests := []struct {
		r, g, b, want int
	}{
		{255, 0, 0, 54},
		{0, 255, 0, 182},
		{0, 0, 255, 18},
		{255, 255, 255, 255},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		got := pixel(t, tt.r, tt.g, tt.b, 255).LumaPixel().R()
		if got != tt.want {
			t.Errorf("Luma(%d,%d,%d) = %d, expected %d", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestPixelBrightnessClamps(t *testing.T) {
	p := pixel(t, 250, 10, 0, 255)
	if got, want := p.Brighten(10), pixel(t, 255, 20, 10, 255); !got.Equal(want) {
		t.Errorf("Brighten: expected %v, got %v", want, got)
	}
	if got, want := p.Darken(20), pixel(t, 230, 0, 0, 255); !got.Equal(want) {
		t.Errorf("Darken: expected %v, got %v", want, got)
	}
}

func TestApplyColorMatrix(t *testing.T) {
	white := pixel(t, 255, 255, 255, 255)
	if got := white.ApplyColorMatrix(imageproc.SepiaMatrix); !got.Equal(white) {
		t.Errorf("Sepia white should saturate to white, got %v", got)
	}

	got := pixel(t, 100, 50, 20, 255).ApplyColorMatrix(imageproc.SepiaMatrix)
	if want := pixel(t, 81, 72, 56, 255); !got.Equal(want) {
		t.Errorf("Sepia(100,50,20): expected %v, got %v", want, got)
	}

	for v := 0; v <= 255; v++ {
		g := pixel(t, v, v, v, 255).ApplyColorMatrix(imageproc.GreyscaleMatrix)
		if !g.IsGrey() || g.R() != v {
			t.Fatalf("Greyscale of grey %d should be unchanged, got %v", v, g)
		}
	}

	red := pixel(t, 7, 8, 9, 255).ApplyColorMatrix(imageproc.RedMatrix)
	if want := pixel(t, 7, 7, 7, 255); !red.Equal(want) {
		t.Errorf("RedMatrix: expected %v, got %v", want, red)
	}
}

func TestWeightedContribution(t *testing.T) {
	p := pixel(t, 10, 30, 40, 255)
	tests := []struct {
		weight  float64
		channel imageproc.Channel
		want    float64
	}{
		{0.25, imageproc.Red, 2},
		{0.125, imageproc.Green, 3},
		{1.0 / 16, imageproc.Blue, 2},
		{-0.125, imageproc.Red, -2},
		{1, imageproc.Intensity, 0},
	}
	for _, tt := range tests {
		if got := p.WeightedContribution(tt.weight, tt.channel); got != tt.want {
			t.Errorf("WeightedContribution(%v, %v) = %v, expected %v",
				tt.weight, tt.channel, got, tt.want)
		}
	}
}

func TestParseChannel(t *testing.T) {
	for _, c := range []imageproc.Channel{
		imageproc.Red, imageproc.Green, imageproc.Blue,
		imageproc.Value, imageproc.Intensity, imageproc.Luma,
	} {
		got, err := imageproc.ParseChannel(" " + c.String() + " ")
		if err != nil || got != c {
			t.Errorf("ParseChannel(%q) = %v, %v", c.String(), got, err)
		}
	}
	if got, err := imageproc.ParseChannel("LUMA"); err != nil || got != imageproc.Luma {
		t.Errorf("ParseChannel should ignore case, got %v, %v", got, err)
	}
	if _, err := imageproc.ParseChannel("alpha"); !errors.Is(err, imageproc.ErrUnknownChannel) {
		t.Errorf("Expected ErrUnknownChannel, got %v", err)
	}
}
