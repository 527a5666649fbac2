package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varseus/imageproc"
	"github.com/varseus/imageproc/imageutil"
)

// newSimpleCmd wraps an operation that takes no parameters.
func newSimpleCmd(opts *options, name, short string, op func(*imageproc.Raster) *imageproc.Raster) *cobra.Command {
	var input, output string
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.transform(cmd, input, output, func(r *imageproc.Raster) (*imageproc.Raster, error) {
				return op(r), nil
			})
		},
	}
	ioFlags(cmd, &input, &output)
	return cmd
}

// newBrightenCmd builds brighten (sign 1) or darken (sign -1).
func newBrightenCmd(opts *options, name, short string, sign int) *cobra.Command {
	var input, output string
	var amount int
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.transform(cmd, input, output, func(r *imageproc.Raster) (*imageproc.Raster, error) {
				return r.Brighten(sign * amount), nil
			})
		},
	}
	ioFlags(cmd, &input, &output)
	cmd.Flags().IntVarP(&amount, "amount", "a", 10, "Amount added to (brighten) or subtracted from (darken) each channel")
	return cmd
}

func newFlipCmd(opts *options) *cobra.Command {
	var input, output, direction string
	cmd := &cobra.Command{
		Use:   "flip",
		Short: "Mirror horizontally or vertically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.transform(cmd, input, output, func(r *imageproc.Raster) (*imageproc.Raster, error) {
				switch direction {
				case "horizontal", "h":
					return r.FlipHorizontal(), nil
				case "vertical", "v":
					return r.FlipVertical(), nil
				}
				return nil, fmt.Errorf("unknown direction %q (horizontal, vertical)", direction)
			})
		},
	}
	ioFlags(cmd, &input, &output)
	cmd.Flags().StringVarP(&direction, "direction", "d", "horizontal", "horizontal or vertical")
	return cmd
}

func newComponentCmd(opts *options) *cobra.Command {
	var input, output, channel string
	cmd := &cobra.Command{
		Use:   "component",
		Short: "Extract a greyscale projection: red, green, blue, value, intensity or luma",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := imageproc.ParseChannel(channel)
			if err != nil {
				return err
			}
			return opts.transform(cmd, input, output, func(r *imageproc.Raster) (*imageproc.Raster, error) {
				return imageproc.Project(r, c)
			})
		},
	}
	ioFlags(cmd, &input, &output)
	cmd.Flags().StringVarP(&channel, "channel", "c", "luma", "Projection to extract")
	return cmd
}

func newEdgesCmd(opts *options) *cobra.Command {
	var input, output string
	var low, high float64
	cmd := &cobra.Command{
		Use:   "edges",
		Short: "Canny edge detection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if low > high {
				return fmt.Errorf("--low %v exceeds --high %v", low, high)
			}
			return opts.transform(cmd, input, output, func(r *imageproc.Raster) (*imageproc.Raster, error) {
				return imageproc.Edges(r, low, high), nil
			})
		},
	}
	ioFlags(cmd, &input, &output)
	cmd.Flags().Float64Var(&low, "low", imageproc.DefaultLowThreshold, "Weak edge threshold (8-bit units)")
	cmd.Flags().Float64Var(&high, "high", imageproc.DefaultHighThreshold, "Strong edge threshold (8-bit units)")
	return cmd
}

func newDownscaleCmd(opts *options) *cobra.Command {
	var input, output string
	var width, height int
	cmd := &cobra.Command{
		Use:   "downscale",
		Short: "Shrink to --width x --height",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.transform(cmd, input, output, func(r *imageproc.Raster) (*imageproc.Raster, error) {
				w, h := width, height
				if w == 0 {
					w = r.Width()
				}
				if h == 0 {
					h = r.Height()
				}
				return imageutil.Downscale(r, w, h)
			})
		},
	}
	ioFlags(cmd, &input, &output)
	cmd.Flags().IntVar(&width, "width", 0, "Target width (0 keeps the current width)")
	cmd.Flags().IntVar(&height, "height", 0, "Target height (0 keeps the current height)")
	return cmd
}

func newMaskCmd(opts *options) *cobra.Command {
	var input, output, maskPath, editedPath string
	cmd := &cobra.Command{
		Use:   "mask",
		Short: "Take --edited pixels where --mask is black and --input pixels elsewhere",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, err := opts.load(cmd, maskPath)
			if err != nil {
				return err
			}
			edited, err := opts.load(cmd, editedPath)
			if err != nil {
				return err
			}
			return opts.transform(cmd, input, output, func(r *imageproc.Raster) (*imageproc.Raster, error) {
				return r.Masked(mask, edited)
			})
		},
	}
	ioFlags(cmd, &input, &output)
	cmd.Flags().StringVarP(&maskPath, "mask", "m", "", "Mask image")
	cmd.Flags().StringVarP(&editedPath, "edited", "e", "", "Edited version of the input")
	cmd.MarkFlagRequired("mask")
	cmd.MarkFlagRequired("edited")
	return cmd
}
