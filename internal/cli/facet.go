package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glyphworks/glyphviz/pkg/facet"
	"github.com/glyphworks/glyphviz/pkg/graph"
	"github.com/glyphworks/glyphviz/pkg/pipeline"
)

// Facet split modes.
const (
	splitEdge = "edge" // one panel per edge attribute value, full node set
	splitNode = "node" // induced subgraph per node attribute value
	splitHive = "hive" // one hive panel per group triplet
)

// facetCommand creates the facet command for small-multiple panels.
func (c *CLI) facetCommand() *cobra.Command {
	var (
		by         string
		split      string
		output     string
		formatsStr string
		configPath string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "facet [graph.json]",
		Short: "Split a graph into panels and render each one",
		Long: `Split a graph into small-multiple panels and render each panel.

Split modes:
  edge   one panel per value of an edge attribute, keeping every node
  node   one induced subgraph per value of a node attribute
  hive   one hive plot per triplet of node groups (more than three
         groups produce one panel per combination)

Each panel is written as <base>_<label>.<format>.

Examples:
  glyphviz facet graph.json --by relation --split edge --form circos
  glyphviz facet graph.json --by cluster --split hive --group-by cluster`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if configPath != "" {
				cfg, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				mergeConfig(cmd.Flags(), &opts, cfg)
			}
			if split == splitHive && !cmd.Flags().Changed("form") {
				opts.Form = "hive"
			}
			return c.runFacet(cmd.Context(), args[0], by, split, opts, output, noCache)
		},
	}

	cmd.Flags().StringVar(&by, "by", "", "attribute to split panels on (required)")
	cmd.Flags().StringVar(&split, "split", splitEdge, "split mode: edge, node, hive")
	cmd.Flags().StringVarP(&output, "output", "o", "", "base output path (default: input file base)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML plot configuration file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.Form, "form", "circos", "plot form for each panel")

	addChannelFlags(cmd, &opts)
	addGeometryFlags(cmd, &opts)

	_ = cmd.MarkFlagRequired("by")

	return cmd
}

// runFacet decomposes the graph and renders every panel.
func (c *CLI) runFacet(ctx context.Context, input, by, split string, opts pipeline.Options, output string, noCache bool) error {
	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	panels, err := panelsFor(g, by, split)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}

	track := newProgress(c.Logger)
	for _, panel := range panels {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		panelOpts := opts
		panelOpts.Graph = panel.Graph

		result, err := runner.Execute(ctx, panelOpts)
		if err != nil {
			return fmt.Errorf("panel %q: %w", panel.Label, err)
		}

		for _, format := range opts.Formats {
			path := fmt.Sprintf("%s_%s.%s", base, slug(panel.Label), format)
			if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
				return fmt.Errorf("write output %s: %w", path, err)
			}
			printFile(path)
		}
	}
	track.done(fmt.Sprintf("Rendered %d panels", len(panels)))

	printSuccess("Faceted by %s (%s split)", by, split)
	return nil
}

func panelsFor(g graph.Graph, by, split string) ([]facet.Panel, error) {
	switch split {
	case splitEdge:
		return facet.EdgeGroups(g, by)
	case splitNode:
		return facet.NodeGroups(g, by)
	case splitHive:
		return facet.HiveTriplets(g, by)
	}
	return nil, fmt.Errorf("unknown split mode: %s (must be 'edge', 'node', or 'hive')", split)
}

// slug converts a panel label into a filename-safe fragment.
func slug(label string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
