package imageutil

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/varseus/imageproc"
	"github.com/varseus/imageproc/ppm"
)

// ErrUnsupportedFormat is returned when a file extension or format is not
// known, or the format cannot be written.
var ErrUnsupportedFormat = errors.New("imageutil: unsupported format")

// Format identifies a file format.
type Format int

const (
	FormatPPM     Format = iota // plain-text P3
	FormatPPMZstd               // zstd-compressed P3
	FormatPNG
	FormatJPEG
	FormatGIF
	FormatTIFF
	FormatBMP
	FormatWebP // decode only
)

var formatNames = map[Format]string{
	FormatPPM:     "ppm",
	FormatPPMZstd: "ppm.zst",
	FormatPNG:     "png",
	FormatJPEG:    "jpeg",
	FormatGIF:     "gif",
	FormatTIFF:    "tiff",
	FormatBMP:     "bmp",
	FormatWebP:    "webp",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Binary reports whether the format's encoding is not plain text.
func (f Format) Binary() bool {
	return f != FormatPPM
}

// FormatFromPath determines the format from a file name's extension.
func FormatFromPath(path string) (Format, error) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".ppm.zst") {
		return FormatPPMZstd, nil
	}
	switch filepath.Ext(lower) {
	case ".ppm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".gif":
		return FormatGIF, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".bmp":
		return FormatBMP, nil
	case ".webp":
		return FormatWebP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Base(path))
}

// SaveOptions tunes encoders. The zero value selects the defaults.
type SaveOptions struct {
	// JPEGQuality ranges over 1..100; 0 means 95.
	JPEGQuality int
}

func (o *SaveOptions) jpegQuality() int {
	if o == nil || o.JPEGQuality == 0 {
		return 95
	}
	return o.JPEGQuality
}

// Load reads a raster from path, choosing the decoder by extension.
func Load(path string) (*imageproc.Raster, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	r, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return r, nil
}

// Decode reads a raster in the given format. Non-PPM formats produce
// rasters with max value 255.
func Decode(rd io.Reader, format Format) (*imageproc.Raster, error) {
	switch format {
	case FormatPPM:
		return ppm.Decode(rd)
	case FormatPPMZstd:
		dec, err := zstd.NewReader(rd)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return ppm.Decode(dec)
	}

	decode := map[Format]func(io.Reader) (image.Image, error){
		FormatPNG:  png.Decode,
		FormatJPEG: jpeg.Decode,
		FormatGIF:  gif.Decode,
		FormatTIFF: tiff.Decode,
		FormatBMP:  bmp.Decode,
		FormatWebP: webp.Decode,
	}[format]
	if decode == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	img, err := decode(rd)
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// Save writes r to path, choosing the encoder by extension. opts may be
// nil.
func Save(r *imageproc.Raster, path string, opts *SaveOptions) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Encode(f, r, format, opts); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// Encode writes r in the given format. Formats other than PPM store 8 bits
// per channel, so rasters with another max value are rescaled.
func Encode(w io.Writer, r *imageproc.Raster, format Format, opts *SaveOptions) error {
	switch format {
	case FormatPPM:
		return ppm.Encode(w, r)
	case FormatPPMZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if err := ppm.Encode(enc, r); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	case FormatPNG:
		return png.Encode(w, ToRGBA(r))
	case FormatJPEG:
		return jpeg.Encode(w, ToRGBA(r), &jpeg.Options{Quality: opts.jpegQuality()})
	case FormatGIF:
		return gif.Encode(w, ToRGBA(r), nil)
	case FormatTIFF:
		return tiff.Encode(w, ToRGBA(r), &tiff.Options{Compression: tiff.Deflate})
	case FormatBMP:
		return bmp.Encode(w, ToRGBA(r))
	}
	return fmt.Errorf("%w: cannot write %v", ErrUnsupportedFormat, format)
}
