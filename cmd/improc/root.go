package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/varseus/imageproc"
	"github.com/varseus/imageproc/imageutil"
)

// stdio is the path that selects standard input or output.
const stdio = "-"

// options holds the persistent flags shared by every subcommand.
type options struct {
	verbose     bool
	jpegQuality int
	format      string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "improc",
		Short:         "Apply color transforms, filters and histograms to raster images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Report timing for each step")
	root.PersistentFlags().IntVar(&opts.jpegQuality, "jpeg-quality", 95, "JPEG quality (1-100)")
	root.PersistentFlags().StringVar(&opts.format, "format", "ppm",
		"Format for standard input/output: ppm, ppm.zst, png, jpeg, gif, tiff, bmp")

	root.AddCommand(
		newBrightenCmd(opts, "brighten", "Add --amount to every channel", 1),
		newBrightenCmd(opts, "darken", "Subtract --amount from every channel", -1),
		newFlipCmd(opts),
		newComponentCmd(opts),
		newSimpleCmd(opts, "greyscale", "Convert to greyscale with luma weights", imageproc.Greyscale),
		newSimpleCmd(opts, "sepia", "Apply a sepia tone", imageproc.Sepia),
		newSimpleCmd(opts, "blur", "Blur with a 3x3 Gaussian kernel", imageproc.Blur),
		newSimpleCmd(opts, "sharpen", "Sharpen with a 5x5 kernel", imageproc.Sharpen),
		newSimpleCmd(opts, "sobel", "Sobel gradient magnitude of the luma", imageproc.SobelMagnitude),
		newEdgesCmd(opts),
		newDownscaleCmd(opts),
		newMaskCmd(opts),
		newHistogramCmd(opts),
		newPatternCmd(opts),
		newInfoCmd(opts),
	)
	return root
}

func (o *options) stdioFormat() (imageutil.Format, error) {
	return imageutil.FormatFromPath("stdio." + o.format)
}

// load reads a raster from path, or from standard input for "-".
func (o *options) load(cmd *cobra.Command, path string) (*imageproc.Raster, error) {
	start := time.Now()
	var (
		r   *imageproc.Raster
		err error
	)
	if path == stdio {
		var format imageutil.Format
		if format, err = o.stdioFormat(); err == nil {
			r, err = imageutil.Decode(cmd.InOrStdin(), format)
		}
	} else {
		r, err = imageutil.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	o.report(cmd, start, "loaded %s (%dx%d, max %d)", path, r.Width(), r.Height(), r.MaxValue())
	return r, nil
}

// save writes r to path, or to standard output for "-". Binary formats
// are not written to a terminal.
func (o *options) save(cmd *cobra.Command, r *imageproc.Raster, path string) error {
	start := time.Now()
	saveOpts := &imageutil.SaveOptions{JPEGQuality: o.jpegQuality}
	if path == stdio {
		format, err := o.stdioFormat()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if format.Binary() && isTerminal(out) {
			return fmt.Errorf("refusing to write %v to a terminal", format)
		}
		if err := imageutil.Encode(out, r, format, saveOpts); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
	if err := imageutil.Save(r, path, saveOpts); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	o.report(cmd, start, "saved %s", path)
	return nil
}

// report prints a progress line with the time elapsed since start when
// --verbose is set.
func (o *options) report(cmd *cobra.Command, start time.Time, format string, args ...any) {
	if !o.verbose {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s in %v\n", fmt.Sprintf(format, args...), time.Since(start))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ioFlags registers the --input and --output flags.
func ioFlags(cmd *cobra.Command, input, output *string) {
	cmd.Flags().StringVarP(input, "input", "i", "", `Input image ("-" for standard input)`)
	cmd.Flags().StringVarP(output, "output", "o", "", `Output image ("-" for standard output)`)
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
}

// transform runs load, op and save for the common single-image commands.
func (o *options) transform(cmd *cobra.Command, input, output string,
	op func(*imageproc.Raster) (*imageproc.Raster, error)) error {
	src, err := o.load(cmd, input)
	if err != nil {
		return err
	}
	start := time.Now()
	dst, err := op(src)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	o.report(cmd, start, "%s", cmd.Name())
	return o.save(cmd, dst, output)
}
