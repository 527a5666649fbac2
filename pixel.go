package imageproc

import (
	"fmt"
	"math"
)

// floorEpsilon absorbs binary rounding error in weighted sums whose exact
// value is an integer, e.g. 0.2126*v + 0.7152*v + 0.0722*v == v.
const floorEpsilon = 1e-9

// Pixel is an RGB triple bounded by a maximum channel value. The max value
// is shared by every pixel of a Raster; it is stored per pixel so that a
// Pixel can validate itself. Pixels are values and never change after
// construction.
//
// A greyscale pixel is simply a Pixel whose three channels are equal.
type Pixel struct {
	r, g, b int
	max     int
}

// NewPixel returns the pixel (r, g, b) with the given max value. It fails
// with ErrInvalidPixel if max is negative or any channel is outside
// [0, max].
func NewPixel(r, g, b, max int) (Pixel, error) {
	if max < 0 {
		return Pixel{}, fmt.Errorf("%w: negative max value %d", ErrInvalidPixel, max)
	}
	for _, c := range [3]int{r, g, b} {
		if c < 0 || c > max {
			return Pixel{}, fmt.Errorf("%w: channel value %d outside [0, %d]",
				ErrInvalidPixel, c, max)
		}
	}
	return Pixel{r: r, g: g, b: b, max: max}, nil
}

// Grey returns the greyscale pixel (v, v, v).
func Grey(v, max int) (Pixel, error) {
	return NewPixel(v, v, v, max)
}

// grey builds a greyscale pixel from a value already known to be in range.
func grey(v, max int) Pixel {
	return Pixel{r: v, g: v, b: v, max: max}
}

func (p Pixel) R() int        { return p.r }
func (p Pixel) G() int        { return p.g }
func (p Pixel) B() int        { return p.b }
func (p Pixel) MaxValue() int { return p.max }

// IsGrey reports whether all three channels are equal.
func (p Pixel) IsGrey() bool {
	return p.r == p.g && p.g == p.b
}

// Equal reports whether p and q have the same channels and max value.
func (p Pixel) Equal(q Pixel) bool {
	return p == q
}

func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d,%d)/%d", p.r, p.g, p.b, p.max)
}

// channel returns the stored value of a color channel.
func (p Pixel) channel(c Channel) int {
	switch c {
	case Red:
		return p.r
	case Green:
		return p.g
	default:
		return p.b
	}
}

// Component returns the given color channel as a greyscale pixel. Only Red,
// Green and Blue are accepted.
func (p Pixel) Component(c Channel) (Pixel, error) {
	if !c.isColor() {
		return Pixel{}, fmt.Errorf("%w: %v is not a color channel", ErrUnknownChannel, c)
	}
	return grey(p.channel(c), p.max), nil
}

// ValuePixel returns the greyscale pixel of max(r, g, b).
func (p Pixel) ValuePixel() Pixel {
	return grey(max(p.r, p.g, p.b), p.max)
}

// IntensityPixel returns the greyscale pixel of the mean of the channels,
// rounded down.
func (p Pixel) IntensityPixel() Pixel {
	return grey((p.r+p.g+p.b)/3, p.max)
}

// LumaPixel returns the greyscale pixel of the Rec. 709 luma
// 0.2126r + 0.7152g + 0.0722b, rounded down and capped at the max value.
func (p Pixel) LumaPixel() Pixel {
	l := 0.2126*float64(p.r) + 0.7152*float64(p.g) + 0.0722*float64(p.b)
	return grey(min(floorTol(l), p.max), p.max)
}

// Project returns the greyscale pixel of any channel projection.
func (p Pixel) Project(c Channel) (Pixel, error) {
	switch c {
	case Red, Green, Blue:
		return grey(p.channel(c), p.max), nil
	case Value:
		return p.ValuePixel(), nil
	case Intensity:
		return p.IntensityPixel(), nil
	case Luma:
		return p.LumaPixel(), nil
	}
	return Pixel{}, fmt.Errorf("%w: %v", ErrUnknownChannel, c)
}

// Brighten adds amount to every channel, clamping to [0, max]. Negative
// amounts darken.
func (p Pixel) Brighten(amount int) Pixel {
	return Pixel{
		r:   clampInt(p.r+amount, 0, p.max),
		g:   clampInt(p.g+amount, 0, p.max),
		b:   clampInt(p.b+amount, 0, p.max),
		max: p.max,
	}
}

// Darken is Brighten(-amount).
func (p Pixel) Darken(amount int) Pixel {
	return p.Brighten(-amount)
}

// ApplyColorMatrix multiplies (r, g, b) by m. Each output channel is
// rounded down and clamped to [0, max]. A matrix whose rows are all equal
// always yields a greyscale pixel.
func (p Pixel) ApplyColorMatrix(m ColorMatrix) Pixel {
	in := [3]float64{float64(p.r), float64(p.g), float64(p.b)}
	var out [3]int
	for i, row := range m {
		out[i] = clampInt(floorTol(row[0]*in[0]+row[1]*in[1]+row[2]*in[2]), 0, p.max)
	}
	if m.uniform() {
		return grey(out[0], p.max)
	}
	return Pixel{r: out[0], g: out[1], b: out[2], max: p.max}
}

// WeightedContribution returns floor(channel * weight), one term of a
// convolution sum. The result is not clamped; clamping happens once the
// whole neighbourhood has been accumulated. Projections other than the
// three color channels contribute nothing.
func (p Pixel) WeightedContribution(weight float64, c Channel) float64 {
	if !c.isColor() {
		return 0
	}
	return math.Floor(float64(p.channel(c)) * weight)
}

func floorTol(v float64) int {
	return int(math.Floor(v + floorEpsilon))
}

// clampInt clamps an integer to the given range.
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
