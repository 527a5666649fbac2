package imageproc

import "fmt"

// Raster is an immutable rectangular grid of pixels sharing one max value.
// Pixels are stored row-major. Every operation on a Raster returns a new
// Raster; the receiver is never modified.
type Raster struct {
	pix           []Pixel
	width, height int
	max           int
}

// NewRaster builds a Raster from rows of pixels. It fails with
// ErrInvalidImage if the grid is empty, if rows differ in length, or if
// the pixels do not all share the same max value. The rows are copied.
func NewRaster(rows [][]Pixel) (*Raster, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty pixel grid", ErrInvalidImage)
	}
	width, height := len(rows[0]), len(rows)
	max := rows[0][0].max
	pix := make([]Pixel, 0, width*height)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d pixels, expected %d",
				ErrInvalidImage, y, len(row), width)
		}
		pix = append(pix, row...)
	}
	r := &Raster{pix: pix, width: width, height: height, max: max}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// validate checks that every pixel is well formed and shares the raster's
// max value.
func (r *Raster) validate() error {
	for i, p := range r.pix {
		if p.max != r.max {
			return fmt.Errorf("%w: pixel (%d,%d) has max value %d, expected %d",
				ErrInvalidImage, i%r.width, i/r.width, p.max, r.max)
		}
		if _, err := NewPixel(p.r, p.g, p.b, p.max); err != nil {
			return fmt.Errorf("pixel (%d,%d): %w", i%r.width, i/r.width, err)
		}
	}
	return nil
}

// Width returns the number of columns.
func (r *Raster) Width() int { return r.width }

// Height returns the number of rows.
func (r *Raster) Height() int { return r.height }

// MaxValue returns the max channel value shared by every pixel.
func (r *Raster) MaxValue() int { return r.max }

// PixelAt returns the pixel in column x and row y. ok is false if the
// coordinate lies outside the raster.
func (r *Raster) PixelAt(x, y int) (p Pixel, ok bool) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return Pixel{}, false
	}
	return r.pix[y*r.width+x], true
}

// at is PixelAt without the bounds check.
func (r *Raster) at(x, y int) Pixel {
	return r.pix[y*r.width+x]
}

// Rows returns a copy of the pixel grid.
func (r *Raster) Rows() [][]Pixel {
	rows := make([][]Pixel, r.height)
	for y := range rows {
		rows[y] = make([]Pixel, r.width)
		copy(rows[y], r.pix[y*r.width:(y+1)*r.width])
	}
	return rows
}

// IsGreyscale reports whether every pixel is grey.
func (r *Raster) IsGreyscale() bool {
	for _, p := range r.pix {
		if !p.IsGrey() {
			return false
		}
	}
	return true
}

// Equal reports whether r and o have the same dimensions, max value and
// pixels.
func (r *Raster) Equal(o *Raster) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.width != o.width || r.height != o.height || r.max != o.max {
		return false
	}
	for i := range r.pix {
		if r.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

func (r *Raster) String() string {
	return fmt.Sprintf("Raster(%dx%d, max %d)", r.width, r.height, r.max)
}

// mapPixels applies f to every pixel without validating the result. f must
// preserve the max value.
func (r *Raster) mapPixels(f func(Pixel) Pixel) *Raster {
	pix := make([]Pixel, len(r.pix))
	for i, p := range r.pix {
		pix[i] = f(p)
	}
	return &Raster{pix: pix, width: r.width, height: r.height, max: r.max}
}

// Map applies f independently to every pixel and validates the result.
func (r *Raster) Map(f func(Pixel) Pixel) (*Raster, error) {
	out := r.mapPixels(f)
	if err := out.validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// MapGreyscale is Map for projections: every pixel produced by f must be
// grey, otherwise ErrInvalidImage is returned.
func (r *Raster) MapGreyscale(f func(Pixel) Pixel) (*Raster, error) {
	out, err := r.Map(f)
	if err != nil {
		return nil, err
	}
	for i, p := range out.pix {
		if !p.IsGrey() {
			return nil, fmt.Errorf("%w: pixel (%d,%d) %v is not grey",
				ErrInvalidImage, i%r.width, i/r.width, p)
		}
	}
	return out, nil
}

// FlipHorizontal mirrors the raster left to right.
func (r *Raster) FlipHorizontal() *Raster {
	pix := make([]Pixel, len(r.pix))
	for y := 0; y < r.height; y++ {
		row := y * r.width
		for x := 0; x < r.width; x++ {
			pix[row+x] = r.pix[row+r.width-1-x]
		}
	}
	return &Raster{pix: pix, width: r.width, height: r.height, max: r.max}
}

// FlipVertical mirrors the raster top to bottom.
func (r *Raster) FlipVertical() *Raster {
	pix := make([]Pixel, len(r.pix))
	for y := 0; y < r.height; y++ {
		copy(pix[y*r.width:(y+1)*r.width], r.pix[(r.height-1-y)*r.width:(r.height-y)*r.width])
	}
	return &Raster{pix: pix, width: r.width, height: r.height, max: r.max}
}

// Brighten adds amount to every channel of every pixel, clamping to
// [0, max].
func (r *Raster) Brighten(amount int) *Raster {
	return r.mapPixels(func(p Pixel) Pixel { return p.Brighten(amount) })
}

// Darken is Brighten(-amount).
func (r *Raster) Darken(amount int) *Raster {
	return r.Brighten(-amount)
}

// Masked returns a raster that takes edited's pixel wherever mask is black
// and r's pixel everywhere else. It is how an operation is confined to a
// region: run it on the whole raster, then combine.
func (r *Raster) Masked(mask, edited *Raster) (*Raster, error) {
	if mask == nil || edited == nil {
		return nil, fmt.Errorf("%w: nil mask or edited raster", ErrInvalidImage)
	}
	for _, o := range []*Raster{mask, edited} {
		if o.width != r.width || o.height != r.height {
			return nil, fmt.Errorf("%w: %dx%d does not match %dx%d",
				ErrInvalidImage, o.width, o.height, r.width, r.height)
		}
	}
	if edited.max != r.max {
		return nil, fmt.Errorf("%w: edited max value %d does not match %d",
			ErrInvalidImage, edited.max, r.max)
	}
	pix := make([]Pixel, len(r.pix))
	for i, m := range mask.pix {
		if m.r == 0 && m.g == 0 && m.b == 0 {
			pix[i] = edited.pix[i]
		} else {
			pix[i] = r.pix[i]
		}
	}
	return &Raster{pix: pix, width: r.width, height: r.height, max: r.max}, nil
}
