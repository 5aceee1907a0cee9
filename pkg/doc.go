// Package pkg provides the core libraries for glyphviz network visualization.
//
// # Overview
//
// Glyphviz turns a graph plus a declarative channel configuration into
// a rendered plot. A plot is defined by three choices: a layout form
// (where nodes go), channel encodings (what attributes map to color,
// size, alpha, and width), and edge path geometry (how connections are
// drawn). The packages compose along that flow:
//
//	graph JSON
//	     ↓
//	[graph] package (validated node and edge lists)
//	     ↓
//	[table] package (attribute columns, grouping, family inference)
//	     ↓
//	[layout] + [encoding] + [paths] (positions, styles, edge shapes)
//	     ↓
//	[plot] package (assembled drawable description)
//	     ↓
//	[render/sink] package (SVG, PNG, PDF bytes)
//
// The [pipeline] package orchestrates the whole flow with caching and
// instrumentation, and is what the CLI drives.
//
// # Quick Start
//
// Build a circos plot and render it to SVG:
//
//	import (
//	    "github.com/glyphworks/glyphviz/pkg/graph"
//	    "github.com/glyphworks/glyphviz/pkg/plot"
//	    "github.com/glyphworks/glyphviz/pkg/render/sink"
//	)
//
//	g := graph.New()
//	g.AddNode("a", graph.Attrs{"group": "x"})
//	g.AddNode("b", graph.Attrs{"group": "y"})
//	g.AddEdge("a", "b", graph.Attrs{"weight": 2.0})
//
//	p, _ := plot.Circos(g, plot.Options{
//	    GroupBy:     "group",
//	    NodeColorBy: "group",
//	    EdgeWidthBy: "weight",
//	})
//	svg := sink.RenderSVG(p)
//
// # Main Packages
//
//   - [graph]: graph model, builders, JSON serialization
//   - [table]: attribute tables, group-and-sort, value family inference
//   - [layout]: node placement for arc, circos, hive, matrix, geo, parallel
//   - [encoding]: attribute-to-channel mapping (color, size, alpha, width)
//   - [paths]: edge path geometry (lines, arcs, beziers, matrix cells)
//   - [annotate]: group labels, legends, colorbars
//   - [facet]: panel decomposition for small multiples
//   - [plot]: plot assembly tying layouts, encodings, and paths together
//   - [palette]: ColorBrewer-backed discrete palettes and continuous ramps
//   - [render/sink]: SVG, PNG, and PDF output
//   - [pipeline]: cached load-plot-render orchestration
//   - [cache], [errors], [observability], [buildinfo]: shared infrastructure
//
// [graph]: github.com/glyphworks/glyphviz/pkg/graph
// [table]: github.com/glyphworks/glyphviz/pkg/table
// [layout]: github.com/glyphworks/glyphviz/pkg/layout
// [encoding]: github.com/glyphworks/glyphviz/pkg/encoding
// [paths]: github.com/glyphworks/glyphviz/pkg/paths
// [annotate]: github.com/glyphworks/glyphviz/pkg/annotate
// [facet]: github.com/glyphworks/glyphviz/pkg/facet
// [plot]: github.com/glyphworks/glyphviz/pkg/plot
// [palette]: github.com/glyphworks/glyphviz/pkg/palette
// [render/sink]: github.com/glyphworks/glyphviz/pkg/render/sink
// [pipeline]: github.com/glyphworks/glyphviz/pkg/pipeline
// [cache]: github.com/glyphworks/glyphviz/pkg/cache
// [errors]: github.com/glyphworks/glyphviz/pkg/errors
// [observability]: github.com/glyphworks/glyphviz/pkg/observability
// [buildinfo]: github.com/glyphworks/glyphviz/pkg/buildinfo
package pkg
