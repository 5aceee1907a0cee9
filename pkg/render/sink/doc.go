// Package sink turns assembled plots into output files.
//
// A sink consumes a [plot.Plot] and produces bytes in one format:
//
//   - SVG via [RenderSVG]: vector output, smallest files, no extra deps
//   - PNG via [RenderPNG]: raster output drawn with a 2D canvas
//   - PDF via [RenderPDF]: single-page print-ready output
//
// All three share the same viewport logic: the plot's data-space
// bounding box is scaled uniformly to fit the canvas inside the
// configured margin, with the y axis flipped so data-space up points
// up on screen. Matrix plots keep y pointing down so row zero renders
// at the top, matching how adjacency matrices read.
//
// Usage:
//
//	svg := sink.RenderSVG(p, sink.WithSize(1000, 1000), sink.WithLabels())
//	png, err := sink.RenderPNG(p, sink.WithNodeScale(8))
//
// # Adding new formats
//
// A new sink needs one function in the RenderXXX(p *plot.Plot, opts
// ...Option) shape. Switch over the [paths.Shape] variants for edges,
// draw nodes from plot.Nodes unless the form is "matrix", and honor
// Blocks, GroupLabels, and Legend. Register the format in
// internal/cli for command-line support.
//
// [plot.Plot]: github.com/glyphworks/glyphviz/pkg/plot.Plot
// [paths.Shape]: github.com/glyphworks/glyphviz/pkg/paths.Shape
package sink
