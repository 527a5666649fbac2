package main

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/varseus/imageproc"
	"github.com/varseus/imageproc/imageutil"
)

var seriesColors = map[imageproc.Channel]imageutil.ChartSeries{
	imageproc.Red:       {Label: "red", Color: imageutil.ChartRed},
	imageproc.Green:     {Label: "green", Color: imageutil.ChartGreen},
	imageproc.Blue:      {Label: "blue", Color: imageutil.ChartBlue},
	imageproc.Intensity: {Label: "intensity", Color: imageutil.ChartIntensity},
}

func newHistogramCmd(opts *options) *cobra.Command {
	var input, output string
	var channels []string
	var normalize, width, height int
	cmd := &cobra.Command{
		Use:   "histogram",
		Short: "Chart or print channel histograms",
		Long: "Counts the values of each --channel, rescales so the most frequent " +
			"value maps to --normalize, and either renders a chart to --output " +
			"or prints the table when --output is empty.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.load(cmd, input)
			if err != nil {
				return err
			}

			var series []imageutil.ChartSeries
			for _, name := range channels {
				c, err := imageproc.ParseChannel(name)
				if err != nil {
					return err
				}
				h, err := imageproc.NewHistogram(r, c, normalize)
				if err != nil {
					return err
				}
				s := seriesColors[c]
				s.Histogram = h
				series = append(series, s)
			}

			if output == "" {
				return printHistograms(cmd, series)
			}
			chart, err := imageutil.RenderHistogram(series, imageutil.ChartOptions{
				Width:  width,
				Height: height,
				Domain: r.MaxValue(),
			})
			if err != nil {
				return err
			}
			return opts.save(cmd, chart, output)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", `Input image ("-" for standard input)`)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Chart image; prints a table when empty")
	cmd.Flags().StringSliceVarP(&channels, "channel", "c",
		[]string{"red", "green", "blue", "intensity"}, "Channels to count")
	cmd.Flags().IntVarP(&normalize, "normalize", "n", 100, "Value the most frequent bin is scaled to")
	cmd.Flags().IntVar(&width, "width", 512, "Chart width")
	cmd.Flags().IntVar(&height, "height", 320, "Chart height")
	cmd.MarkFlagRequired("input")
	return cmd
}

// printHistograms writes one row per observed value and one column per
// channel.
func printHistograms(cmd *cobra.Command, series []imageutil.ChartSeries) error {
	values := map[int]bool{}
	for _, s := range series {
		for v := range s.Histogram {
			values[v] = true
		}
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "value")
	for _, s := range series {
		fmt.Fprintf(tw, "\t%s", s.Label)
	}
	fmt.Fprintln(tw)
	var keys []int
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, v := range keys {
		fmt.Fprintf(tw, "%d", v)
		for _, s := range series {
			fmt.Fprintf(tw, "\t%d", s.Histogram[v])
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
