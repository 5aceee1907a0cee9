package plot

import (
	"github.com/glyphworks/glyphviz/pkg/palette"
)

// Options selects the data channels and geometry for a plot. The zero
// value renders with default colors, full node opacity, faint edges,
// and no grouping.
type Options struct {
	// Ordering.
	GroupBy string
	SortBy  string

	// Node channels, each naming a node attribute or empty for the
	// channel default.
	NodeColorBy string
	NodeSizeBy  string
	NodeAlphaBy string

	// Edge channels.
	EdgeColorBy string
	EdgeWidthBy string
	EdgeAlphaBy string

	// Palette overrides the default color scheme.
	Palette palette.Provider

	// Circos geometry.
	Radius      float64
	PadFraction float64

	// Hive geometry.
	InnerRadius float64
	Spacing     float64
	Rotation    float64

	// Geo coordinate columns.
	LonColumn string
	LatColumn string
}

func (o Options) withDefaults() Options {
	if o.Palette == nil {
		o.Palette = palette.Default()
	}
	if o.LonColumn == "" {
		o.LonColumn = "longitude"
	}
	if o.LatColumn == "" {
		o.LatColumn = "latitude"
	}
	return o
}
