package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glyphworks/glyphviz/pkg/pipeline"
)

// renderCommand creates the render command, the main entry point from
// a graph file to rendered output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		configPath string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Render a graph as an arc, circos, hive, matrix, geo, or parallel plot",
		Long: `Render a graph file as a network visualization.

The graph is laid out according to --form, node and edge attributes are
mapped onto visual channels (color, size, alpha, width), and the result
is written as SVG, PNG, or PDF.

Channel flags name graph attributes. A TOML config file given with
--config provides defaults for any flag not set on the command line.

Rendered artifacts are cached locally for faster subsequent runs.

Examples:
  glyphviz render graph.json --form circos --group-by cluster
  glyphviz render graph.json --form arc --node-color-by degree -f svg,png
  glyphviz render graph.json --config plot.toml -o out.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			opts.Formats = parseFormats(formatsStr)
			if configPath != "" {
				cfg, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				mergeConfig(cmd.Flags(), &opts, cfg)
			}
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML plot configuration file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "skip cache reads, forcing a re-render")

	cmd.Flags().StringVar(&opts.Form, "form", "circos", "plot form: "+strings.Join(pipeline.Forms, ", "))

	addChannelFlags(cmd, &opts)
	addGeometryFlags(cmd, &opts)

	return cmd
}

// addChannelFlags registers the attribute-to-channel mapping flags.
func addChannelFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().StringVar(&opts.Plot.GroupBy, "group-by", "", "node attribute to group by")
	cmd.Flags().StringVar(&opts.Plot.SortBy, "sort-by", "", "node attribute to sort by within groups")
	cmd.Flags().StringVar(&opts.Plot.NodeColorBy, "node-color-by", "", "node attribute mapped to color")
	cmd.Flags().StringVar(&opts.Plot.NodeSizeBy, "node-size-by", "", "node attribute mapped to size")
	cmd.Flags().StringVar(&opts.Plot.NodeAlphaBy, "node-alpha-by", "", "node attribute mapped to transparency")
	cmd.Flags().StringVar(&opts.Plot.EdgeColorBy, "edge-color-by", "", "edge attribute mapped to color")
	cmd.Flags().StringVar(&opts.Plot.EdgeWidthBy, "edge-width-by", "", "edge attribute mapped to line width")
	cmd.Flags().StringVar(&opts.Plot.EdgeAlphaBy, "edge-alpha-by", "", "edge attribute mapped to transparency")
}

// addGeometryFlags registers the form-specific geometry flags.
func addGeometryFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().Float64Var(&opts.Plot.Radius, "radius", 0, "circos radius (0 = derive from node count)")
	cmd.Flags().Float64Var(&opts.Plot.PadFraction, "pad-fraction", 0, "circos fraction of the circle reserved for group gaps")
	cmd.Flags().Float64Var(&opts.Plot.InnerRadius, "inner-radius", 0, "hive inner radius (0 = default)")
	cmd.Flags().Float64Var(&opts.Plot.Spacing, "spacing", 0, "hive spacing between nodes on an axis (0 = default)")
	cmd.Flags().Float64Var(&opts.Plot.Rotation, "rotation", 0, "hive axis rotation in radians")
	cmd.Flags().StringVar(&opts.Plot.LonColumn, "lon", "", "geo longitude attribute (default: longitude)")
	cmd.Flags().StringVar(&opts.Plot.LatColumn, "lat", "", "geo latitude attribute (default: latitude)")
}

// runRender executes the pipeline and writes the artifacts to disk.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s plot...", opts.Form))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	for _, w := range result.Plot.Warnings {
		printWarning("%s", w.String())
	}

	printSuccess("Rendered %s plot", opts.Form)
	multi := len(opts.Formats) > 1
	for _, format := range opts.Formats {
		path := outputPath(output, opts.Input, format, multi)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)
	printNewline()
	printNextStep("Inspect attributes", appName+" inspect "+opts.Input)

	return nil
}
