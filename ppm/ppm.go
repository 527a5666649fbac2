// Package ppm reads and writes rasters in the plain-text PPM "P3" format:
//
//	P3
//	<width>
//	<height>
//	<max value>
//	<r> <g> <b>   (width*height times, row-major)
//
// A line whose first non-blank character is '#' is a comment, so
// indented comments are skipped too; a '#' after a token is not. Any
// whitespace separates tokens.
package ppm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/varseus/imageproc"
)

// Magic is the token that starts every P3 file.
const Magic = "P3"

// ErrFormat is returned for text that does not follow the P3 grammar.
var ErrFormat = errors.New("ppm: invalid format")

// tokenizer yields the whitespace-separated tokens of the non-comment
// lines of a reader.
type tokenizer struct {
	rd     *bufio.Reader
	fields []string
	eof    bool
}

func newTokenizer(rd io.Reader) *tokenizer {
	return &tokenizer{rd: bufio.NewReader(rd)}
}

// next returns the next token, or io.EOF when the input is exhausted.
func (t *tokenizer) next() (string, error) {
	for len(t.fields) == 0 {
		if t.eof {
			return "", io.EOF
		}
		line, err := t.rd.ReadString('\n')
		if err == io.EOF {
			t.eof = true
		} else if err != nil {
			return "", err
		}
		if strings.HasPrefix(strings.TrimLeft(line, " \t\r\v\f"), "#") {
			continue
		}
		t.fields = strings.Fields(line)
	}
	tok := t.fields[0]
	t.fields = t.fields[1:]
	return tok, nil
}

// integer reads the next token as a decimal integer. what names the field in
// error messages.
func (t *tokenizer) integer(what string) (int, error) {
	tok, err := t.next()
	if err == io.EOF {
		return 0, fmt.Errorf("%w: missing %s", ErrFormat, what)
	} else if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrFormat, what, tok)
	}
	return v, nil
}

// Decode reads a P3 image. Malformed text yields ErrFormat; a non-positive
// width or height yields imageproc.ErrInvalidImage and out-of-range
// channel values yield imageproc.ErrInvalidPixel. Anything after the last
// pixel is ignored.
func Decode(rd io.Reader) (*imageproc.Raster, error) {
	t := newTokenizer(rd)

	magic, err := t.next()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ErrFormat)
	} else if err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, fmt.Errorf("%w: expecting magic %s, got %q", ErrFormat, Magic, magic)
	}

	width, err := t.integer("width")
	if err != nil {
		return nil, err
	}
	height, err := t.integer("height")
	if err != nil {
		return nil, err
	}
	maxValue, err := t.integer("max value")
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", imageproc.ErrInvalidImage, width, height)
	}

	// Rows grow as pixels arrive; the header alone never sizes an allocation.
	var rows [][]imageproc.Pixel
	for y := 0; y < height; y++ {
		var row []imageproc.Pixel
		for x := 0; x < width; x++ {
			var rgb [3]int
			for i := range rgb {
				rgb[i], err = t.integer("pixel value")
				if err != nil {
					return nil, fmt.Errorf("pixel (%d,%d): %w", x, y, err)
				}
			}
			p, err := imageproc.NewPixel(rgb[0], rgb[1], rgb[2], maxValue)
			if err != nil {
				return nil, fmt.Errorf("pixel (%d,%d): %w", x, y, err)
			}
			row = append(row, p)
		}
		rows = append(rows, row)
	}

	return imageproc.NewRaster(rows)
}

// DecodeBytes decodes a P3 image held in memory.
func DecodeBytes(data []byte) (*imageproc.Raster, error) {
	return Decode(bytes.NewReader(data))
}

// Encode writes r as P3 text: the magic, width, height and max value on
// their own lines, then one "r g b" line per pixel in row-major order.
func Encode(w io.Writer, r *imageproc.Raster) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d\n%d\n%d\n", Magic, r.Width(), r.Height(), r.MaxValue())

	var line []byte
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			p, _ := r.PixelAt(x, y)
			line = strconv.AppendInt(line[:0], int64(p.R()), 10)
			line = append(line, ' ')
			line = strconv.AppendInt(line, int64(p.G()), 10)
			line = append(line, ' ')
			line = strconv.AppendInt(line, int64(p.B()), 10)
			line = append(line, '\n')
			if _, err := bw.Write(line); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// EncodeBytes returns the P3 text of r.
func EncodeBytes(r *imageproc.Raster) []byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer do not fail.
	_ = Encode(&buf, r)
	return buf.Bytes()
}
