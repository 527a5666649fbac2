package imageutil

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/varseus/imageproc"
)

// ChartSeries is one histogram drawn as a line.
type ChartSeries struct {
	Label     string
	Histogram imageproc.Histogram
	Color     color.RGBA
}

// ChartOptions controls RenderHistogram. Zero fields take the defaults
// noted on each field.
type ChartOptions struct {
	Width, Height int     // 512 x 320
	Domain        int     // largest channel value on the x axis; 255
	FontSize      float64 // points at 72 DPI; 12
}

func (o ChartOptions) withDefaults() ChartOptions {
	if o.Width == 0 {
		o.Width = 512
	}
	if o.Height == 0 {
		o.Height = 320
	}
	if o.Domain == 0 {
		o.Domain = 255
	}
	if o.FontSize == 0 {
		o.FontSize = 12
	}
	return o
}

// Series colors for the usual red, green, blue and intensity histograms.
var (
	ChartRed       = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	ChartGreen     = color.RGBA{R: 40, G: 160, B: 40, A: 255}
	ChartBlue      = color.RGBA{R: 40, G: 80, B: 220, A: 255}
	ChartIntensity = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

const chartMargin = 32

var parseGoRegular = sync.OnceValues(func() (*truetype.Font, error) {
	return freetype.ParseFont(goregular.TTF)
})

// RenderHistogram draws the series as line graphs over a shared value
// axis and returns the chart as a raster with max value 255. Each series
// is scaled so the tallest frequency of all series reaches the top of the
// plot area.
func RenderHistogram(series []ChartSeries, opts ChartOptions) (*imageproc.Raster, error) {
	opts = opts.withDefaults()
	if len(series) == 0 {
		return nil, errors.New("imageutil: no histogram to render")
	}
	if opts.Width <= 2*chartMargin || opts.Height <= 2*chartMargin {
		return nil, fmt.Errorf("imageutil: chart size %dx%d is too small", opts.Width, opts.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	plot := image.Rect(chartMargin, chartMargin/2, opts.Width-chartMargin/2, opts.Height-chartMargin)

	peak := 1
	for _, s := range series {
		peak = max(peak, s.Histogram.Max())
	}

	px := func(v int) int {
		return plot.Min.X + v*(plot.Dx()-1)/max(1, opts.Domain)
	}
	py := func(f int) int {
		return plot.Max.Y - f*(plot.Dy()-1)/peak
	}
	for _, s := range series {
		prevX, prevY := px(0), py(s.Histogram[0])
		for v := 1; v <= opts.Domain; v++ {
			x, y := px(v), py(s.Histogram[v])
			drawLine(img, prevX, prevY, x, y, s.Color)
			prevX, prevY = x, y
		}
	}

	black := color.RGBA{A: 255}
	drawLine(img, plot.Min.X, plot.Max.Y, plot.Max.X, plot.Max.Y, black)
	drawLine(img, plot.Min.X, plot.Min.Y, plot.Min.X, plot.Max.Y, black)

	ttf, err := parseGoRegular()
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(opts.FontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetHinting(font.HintingFull)

	label := func(text string, x, y int, c color.Color) error {
		ctx.SetSrc(image.NewUniform(c))
		_, err := ctx.DrawString(text, freetype.Pt(x, y))
		return err
	}

	baseline := plot.Max.Y + int(opts.FontSize) + 4
	if err := label("0", plot.Min.X, baseline, black); err != nil {
		return nil, err
	}
	domain := strconv.Itoa(opts.Domain)
	if err := label(domain, plot.Max.X-len(domain)*int(opts.FontSize)/2, baseline, black); err != nil {
		return nil, err
	}
	if err := label(strconv.Itoa(peak), 2, plot.Min.Y+int(opts.FontSize), black); err != nil {
		return nil, err
	}
	for i, s := range series {
		if s.Label == "" {
			continue
		}
		y := plot.Min.Y + (i+1)*int(opts.FontSize+4)
		if err := label(s.Label, plot.Max.X-8*int(opts.FontSize), y, s.Color); err != nil {
			return nil, err
		}
	}

	return FromImage(img)
}

// drawLine plots a Bresenham line from (x0, y0) to (x1, y1).
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		img.SetRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
