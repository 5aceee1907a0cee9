package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/glyphworks/glyphviz/pkg/palette"
	"github.com/glyphworks/glyphviz/pkg/pipeline"
)

// fileConfig mirrors the TOML plot configuration file. Every field is
// optional; flags given on the command line take precedence over the
// file.
//
// Example:
//
//	form = "circos"
//	formats = ["svg", "png"]
//
//	[channels]
//	group_by = "group"
//	node_color_by = "group"
//	edge_width_by = "weight"
//
//	[geometry]
//	pad_fraction = 0.1
//
//	[palette]
//	qualitative = "Set3"
//	sequential = "YlGnBu"
type fileConfig struct {
	Form    string   `toml:"form"`
	Formats []string `toml:"formats"`

	Channels struct {
		GroupBy     string `toml:"group_by"`
		SortBy      string `toml:"sort_by"`
		NodeColorBy string `toml:"node_color_by"`
		NodeSizeBy  string `toml:"node_size_by"`
		NodeAlphaBy string `toml:"node_alpha_by"`
		EdgeColorBy string `toml:"edge_color_by"`
		EdgeWidthBy string `toml:"edge_width_by"`
		EdgeAlphaBy string `toml:"edge_alpha_by"`
	} `toml:"channels"`

	Geometry struct {
		Radius      float64 `toml:"radius"`
		PadFraction float64 `toml:"pad_fraction"`
		InnerRadius float64 `toml:"inner_radius"`
		Spacing     float64 `toml:"spacing"`
		Rotation    float64 `toml:"rotation"`
		Lon         string  `toml:"lon"`
		Lat         string  `toml:"lat"`
	} `toml:"geometry"`

	Palette struct {
		Qualitative string `toml:"qualitative"`
		Sequential  string `toml:"sequential"`
	} `toml:"palette"`
}

// loadConfig reads and decodes a TOML plot configuration file.
func loadConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return &cfg, nil
}

// mergeConfig applies config file values into opts for every setting
// whose flag was not given explicitly.
func mergeConfig(flags *pflag.FlagSet, opts *pipeline.Options, cfg *fileConfig) {
	setString(flags, "form", &opts.Form, cfg.Form)
	if !flags.Changed("format") && len(cfg.Formats) > 0 {
		opts.Formats = cfg.Formats
	}

	setString(flags, "group-by", &opts.Plot.GroupBy, cfg.Channels.GroupBy)
	setString(flags, "sort-by", &opts.Plot.SortBy, cfg.Channels.SortBy)
	setString(flags, "node-color-by", &opts.Plot.NodeColorBy, cfg.Channels.NodeColorBy)
	setString(flags, "node-size-by", &opts.Plot.NodeSizeBy, cfg.Channels.NodeSizeBy)
	setString(flags, "node-alpha-by", &opts.Plot.NodeAlphaBy, cfg.Channels.NodeAlphaBy)
	setString(flags, "edge-color-by", &opts.Plot.EdgeColorBy, cfg.Channels.EdgeColorBy)
	setString(flags, "edge-width-by", &opts.Plot.EdgeWidthBy, cfg.Channels.EdgeWidthBy)
	setString(flags, "edge-alpha-by", &opts.Plot.EdgeAlphaBy, cfg.Channels.EdgeAlphaBy)

	setFloat(flags, "radius", &opts.Plot.Radius, cfg.Geometry.Radius)
	setFloat(flags, "pad-fraction", &opts.Plot.PadFraction, cfg.Geometry.PadFraction)
	setFloat(flags, "inner-radius", &opts.Plot.InnerRadius, cfg.Geometry.InnerRadius)
	setFloat(flags, "spacing", &opts.Plot.Spacing, cfg.Geometry.Spacing)
	setFloat(flags, "rotation", &opts.Plot.Rotation, cfg.Geometry.Rotation)
	setString(flags, "lon", &opts.Plot.LonColumn, cfg.Geometry.Lon)
	setString(flags, "lat", &opts.Plot.LatColumn, cfg.Geometry.Lat)

	if cfg.Palette.Qualitative != "" || cfg.Palette.Sequential != "" {
		scheme := palette.Default()
		if cfg.Palette.Qualitative != "" {
			scheme.Qualitative = cfg.Palette.Qualitative
		}
		if cfg.Palette.Sequential != "" {
			scheme.Sequential = cfg.Palette.Sequential
		}
		opts.Plot.Palette = scheme
	}
}

func setString(flags *pflag.FlagSet, name string, dst *string, value string) {
	if value != "" && !flags.Changed(name) {
		*dst = value
	}
}

func setFloat(flags *pflag.FlagSet, name string, dst *float64, value float64) {
	if value != 0 && !flags.Changed(name) {
		*dst = value
	}
}
