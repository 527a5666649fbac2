package imageproc

import (
	"fmt"
	"slices"
)

// Histogram maps a channel value to its rescaled frequency. Values that
// never occur are absent.
type Histogram map[int]int

// NewHistogram counts how often each value of channel c occurs in r and
// rescales the counts so that the most frequent value maps to n. Each
// count becomes floor(count*n/maxCount).
//
// c must be Red, Green, Blue or Intensity.
func NewHistogram(r *Raster, c Channel, n int) (Histogram, error) {
	switch c {
	case Red, Green, Blue, Intensity:
	default:
		return nil, fmt.Errorf("%w: histograms support red, green, blue and intensity, not %v",
			ErrUnknownChannel, c)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative histogram normalization %d", ErrInvalidArgument, n)
	}

	counts := make(map[int]int)
	for _, p := range r.pix {
		v, _ := p.Project(c)
		counts[v.r]++
	}

	peak := 0
	for _, count := range counts {
		peak = max(peak, count)
	}

	h := make(Histogram, len(counts))
	for v, count := range counts {
		h[v] = count * n / peak
	}
	return h, nil
}

// Keys returns the channel values present, in ascending order.
func (h Histogram) Keys() []int {
	var keys []int
	for k := range h {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Max returns the largest rescaled frequency, or 0 for an empty histogram.
func (h Histogram) Max() int {
	m := 0
	for _, f := range h {
		m = max(m, f)
	}
	return m
}
