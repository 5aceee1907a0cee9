// Package plot assembles layouts, encodings, paths, and annotations
// into a complete drawable description of one graph.
//
// Each plot form has one entry point. All of them extract node and
// edge tables from the graph, resolve the visual channels the options
// select, run the form's layout and path builder, and attach group
// annotations. The result is pure data; the render sinks turn it into
// files.
package plot

import (
	"image/color"

	"github.com/glyphworks/glyphviz/pkg/annotate"
	"github.com/glyphworks/glyphviz/pkg/encoding"
	"github.com/glyphworks/glyphviz/pkg/errors"
	"github.com/glyphworks/glyphviz/pkg/graph"
	"github.com/glyphworks/glyphviz/pkg/layout"
	"github.com/glyphworks/glyphviz/pkg/paths"
	"github.com/glyphworks/glyphviz/pkg/table"
)

// NodeStyle is one node with its resolved position and channels.
type NodeStyle struct {
	ID    string
	At    layout.Position
	Color color.Color
	Size  float64
	Alpha float64
}

// EdgeStyle is one drawable edge path with its resolved channels.
type EdgeStyle struct {
	Path  paths.EdgePath
	Color color.Color
	Width float64
	Alpha float64
}

// Plot is the complete drawable description of one graph rendering.
type Plot struct {
	Form        string
	Positions   layout.PositionMap
	Cells       layout.CellMap
	Nodes       []NodeStyle
	Edges       []EdgeStyle
	GroupLabels []annotate.GroupLabel
	Blocks      []annotate.Block
	Legend      []annotate.LegendEntry
	Colorbar    *annotate.Colorbar
	Warnings    []errors.Warning
}

// Arc renders the graph as a linear arc plot.
func Arc(g graph.Graph, opts Options) (*Plot, error) {
	a, err := newAssembly(g, opts)
	if err != nil {
		return nil, err
	}
	pos, err := layout.Arc(a.nodes, opts.GroupBy, opts.SortBy)
	if err != nil {
		return nil, err
	}
	edgePaths, err := paths.Arc(g.Edges(), pos)
	if err != nil {
		return nil, err
	}
	p := a.build("arc", pos, edgePaths)
	if opts.GroupBy != "" {
		labels, err := annotate.ArcGroupLabels(a.nodes, opts.GroupBy, pos, 0)
		if err != nil {
			return nil, err
		}
		p.GroupLabels = labels
	}
	return p, nil
}

// Circos renders the graph as a circular plot with optional group gaps.
func Circos(g graph.Graph, opts Options) (*Plot, error) {
	a, err := newAssembly(g, opts)
	if err != nil {
		return nil, err
	}
	pos, err := layout.Circos(a.nodes, opts.GroupBy, opts.SortBy, layout.CircosOptions{
		Radius:      opts.Radius,
		PadFraction: opts.PadFraction,
	})
	if err != nil {
		return nil, err
	}
	edgePaths, err := paths.Circos(g.Edges(), pos)
	if err != nil {
		return nil, err
	}
	p := a.build("circos", pos, edgePaths)
	if opts.GroupBy != "" {
		labels, err := annotate.CircosGroupLabels(a.nodes, opts.GroupBy, pos, 0)
		if err != nil {
			return nil, err
		}
		p.GroupLabels = labels
	}
	return p, nil
}

// Hive renders the graph on radial axes, one per group.
func Hive(g graph.Graph, opts Options) (*Plot, error) {
	a, err := newAssembly(g, opts)
	if err != nil {
		return nil, err
	}
	pos, err := layout.Hive(a.nodes, opts.GroupBy, opts.SortBy, layout.HiveOptions{
		InnerRadius: opts.InnerRadius,
		Spacing:     opts.Spacing,
		Rotation:    opts.Rotation,
	})
	if err != nil {
		return nil, err
	}
	edgePaths, err := paths.Hive(g.Edges(), pos)
	if err != nil {
		return nil, err
	}
	return a.build("hive", pos, edgePaths), nil
}

// Matrix renders the graph as an adjacency matrix.
func Matrix(g graph.Graph, opts Options) (*Plot, error) {
	a, err := newAssembly(g, opts)
	if err != nil {
		return nil, err
	}
	cells, err := layout.Matrix(a.nodes, opts.GroupBy, opts.SortBy)
	if err != nil {
		return nil, err
	}

	pos := make(layout.PositionMap, len(cells))
	for id, cell := range cells {
		pos[id] = layout.Position{X: float64(cell.Col), Y: float64(cell.Row)}
	}
	p := a.build("matrix", pos, nil)
	p.Cells = cells
	for i, e := range g.Edges() {
		edgePaths, err := paths.Matrix([]graph.Edge{e}, cells, g.Directed())
		if err != nil {
			return nil, err
		}
		for _, ep := range edgePaths {
			p.Edges = append(p.Edges, a.edgeStyle(ep, i))
		}
	}
	if opts.GroupBy != "" {
		blocks, err := annotate.MatrixGroupBlocks(a.nodes, opts.GroupBy, opts.SortBy)
		if err != nil {
			return nil, err
		}
		p.Blocks = blocks
	}
	return p, nil
}

// Geo renders the graph at longitude/latitude coordinates.
func Geo(g graph.Graph, opts Options) (*Plot, error) {
	a, err := newAssembly(g, opts)
	if err != nil {
		return nil, err
	}
	pos, err := layout.Geo(a.nodes, opts.LonColumn, opts.LatColumn)
	if err != nil {
		return nil, err
	}
	edgePaths, err := paths.Line(g.Edges(), pos)
	if err != nil {
		return nil, err
	}
	return a.build("geo", pos, edgePaths), nil
}

// Parallel renders the graph as grouped vertical columns.
func Parallel(g graph.Graph, opts Options) (*Plot, error) {
	a, err := newAssembly(g, opts)
	if err != nil {
		return nil, err
	}
	pos, err := layout.Parallel(a.nodes, opts.GroupBy, opts.SortBy)
	if err != nil {
		return nil, err
	}
	edgePaths, err := paths.Line(g.Edges(), pos)
	if err != nil {
		return nil, err
	}
	return a.build("parallel", pos, edgePaths), nil
}

// assembly holds the tables and resolved channels shared by all forms.
type assembly struct {
	opts  Options
	nodes *table.Table
	edges *table.Table

	nodeColors []color.Color
	nodeSizes  []float64
	nodeAlphas []float64

	edgeColors []color.Color
	edgeWidths []float64
	edgeAlphas []float64

	legend   []annotate.LegendEntry
	colorbar *annotate.Colorbar
	warnings []errors.Warning
}

func newAssembly(g graph.Graph, opts Options) (*assembly, error) {
	opts = opts.withDefaults()
	nodes, err := table.FromNodes(g)
	if err != nil {
		return nil, err
	}
	a := &assembly{opts: opts, nodes: nodes, edges: table.FromEdges(g)}
	if err := a.resolveChannels(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *assembly) resolveChannels() error {
	opts := a.opts
	var warns []errors.Warning
	var err error

	if a.nodeColors, warns, err = encoding.Colors(a.nodes, opts.NodeColorBy, opts.Palette, encoding.DefaultNodeColor); err != nil {
		return err
	}
	a.warnings = append(a.warnings, warns...)
	if a.nodeSizes, warns, err = encoding.Sizes(a.nodes, opts.NodeSizeBy, encoding.DefaultSize); err != nil {
		return err
	}
	a.warnings = append(a.warnings, warns...)
	if a.nodeAlphas, warns, err = encoding.Alphas(a.nodes, opts.NodeAlphaBy, encoding.DefaultNodeAlpha); err != nil {
		return err
	}
	a.warnings = append(a.warnings, warns...)

	if a.edgeColors, warns, err = encoding.Colors(a.edges, opts.EdgeColorBy, opts.Palette, encoding.DefaultEdgeColor); err != nil {
		return err
	}
	a.warnings = append(a.warnings, warns...)
	if a.edgeWidths, warns, err = encoding.Widths(a.edges, opts.EdgeWidthBy, encoding.DefaultWidth); err != nil {
		return err
	}
	a.warnings = append(a.warnings, warns...)
	if a.edgeAlphas, warns, err = encoding.Alphas(a.edges, opts.EdgeAlphaBy, encoding.DefaultEdgeAlpha); err != nil {
		return err
	}
	a.warnings = append(a.warnings, warns...)

	if opts.NodeColorBy != "" {
		if err := a.resolveColorKey(); err != nil {
			return err
		}
	}
	return nil
}

// resolveColorKey attaches the legend or colorbar describing the node
// color encoding.
func (a *assembly) resolveColorKey() error {
	col, err := a.nodes.Column(a.opts.NodeColorBy)
	if err != nil {
		return err
	}
	if table.InferFamily(col) == table.FamilyCategorical {
		entries, warns, err := annotate.Legend(a.nodes, a.opts.NodeColorBy, a.opts.Palette)
		if err != nil {
			return err
		}
		a.legend = entries
		a.warnings = append(a.warnings, warns...)
		return nil
	}
	cb, err := annotate.ColorbarFor(a.nodes, a.opts.NodeColorBy)
	if err != nil {
		return err
	}
	a.colorbar = &cb
	return nil
}

// build assembles the common plot parts. Edge paths must align with
// the edge table's row order.
func (a *assembly) build(form string, pos layout.PositionMap, edgePaths []paths.EdgePath) *Plot {
	p := &Plot{
		Form:      form,
		Positions: pos,
		Legend:    a.legend,
		Colorbar:  a.colorbar,
		Warnings:  a.warnings,
	}
	if p.Positions == nil {
		p.Positions = layout.PositionMap{}
	}

	p.Nodes = make([]NodeStyle, a.nodes.Len())
	for i, id := range a.nodes.IDs() {
		p.Nodes[i] = NodeStyle{
			ID:    id,
			At:    p.Positions[id],
			Color: a.nodeColors[i],
			Size:  a.nodeSizes[i],
			Alpha: a.nodeAlphas[i],
		}
	}
	for i, ep := range edgePaths {
		p.Edges = append(p.Edges, a.edgeStyle(ep, i))
	}
	return p
}

func (a *assembly) edgeStyle(ep paths.EdgePath, row int) EdgeStyle {
	return EdgeStyle{
		Path:  ep,
		Color: a.edgeColors[row],
		Width: a.edgeWidths[row],
		Alpha: a.edgeAlphas[row],
	}
}
