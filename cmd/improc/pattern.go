package main

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/varseus/imageproc/imageutil"
)

func newPatternCmd(opts *options) *cobra.Command {
	var output, name string
	var width, height int
	var names []string
	for k := range imageutil.Patterns {
		names = append(names, k)
	}
	slices.Sort(names)
	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Generate a synthetic test image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := imageutil.Patterns[name]
			if !ok {
				return fmt.Errorf("unknown pattern %q (%s)", name, strings.Join(names, ", "))
			}
			if width < 1 || height < 1 {
				return fmt.Errorf("invalid size %dx%d", width, height)
			}
			start := time.Now()
			r := gen(width, height)
			opts.report(cmd, start, "generated %s", name)
			return opts.save(cmd, r, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", `Output image ("-" for standard output)`)
	cmd.Flags().StringVarP(&name, "name", "p", "colorbars", "Pattern: "+strings.Join(names, ", "))
	cmd.Flags().IntVar(&width, "width", 256, "Width")
	cmd.Flags().IntVar(&height, "height", 256, "Height")
	cmd.MarkFlagRequired("output")
	return cmd
}

func newInfoCmd(opts *options) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print dimensions and max value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.load(cmd, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "width: %d\nheight: %d\nmax value: %d\ngreyscale: %t\n",
				r.Width(), r.Height(), r.MaxValue(), r.IsGreyscale())
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", `Input image ("-" for standard input)`)
	cmd.MarkFlagRequired("input")
	return cmd
}
