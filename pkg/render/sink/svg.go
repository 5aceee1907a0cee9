package sink

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo/float"

	"github.com/glyphworks/glyphviz/pkg/annotate"
	"github.com/glyphworks/glyphviz/pkg/geometry"
	"github.com/glyphworks/glyphviz/pkg/paths"
	"github.com/glyphworks/glyphviz/pkg/plot"
)

// RenderSVG draws the plot as a standalone SVG document.
func RenderSVG(p *plot.Plot, opts ...Option) []byte {
	r := newRenderer(opts...)
	v := r.fit(p)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(r.width, r.height)

	for _, e := range p.Edges {
		drawSVGEdge(canvas, v, r, e)
	}
	if p.Form != "matrix" {
		for _, n := range p.Nodes {
			x, y := v.point(geometry.Point{X: n.At.X, Y: n.At.Y})
			canvas.Circle(x, y, n.Size*r.nodeScale, fmt.Sprintf(
				"fill:%s;fill-opacity:%.3f;stroke:none", hexColor(n.Color), n.Alpha))
			if r.labels {
				canvas.Text(x, y-n.Size*r.nodeScale-2, n.ID,
					"font-size:10px;text-anchor:middle;font-family:sans-serif")
			}
		}
	}
	for _, b := range p.Blocks {
		drawSVGBlock(canvas, v, b.Start, b.End, b.Label)
	}
	for _, l := range p.GroupLabels {
		x, y := v.point(l.At)
		canvas.Text(x, y, l.Label, fmt.Sprintf(
			"font-size:12px;font-family:sans-serif;text-anchor:%s", svgAnchor(l.HAlign)))
	}
	drawSVGLegend(canvas, r, p)

	canvas.End()
	return buf.Bytes()
}

func drawSVGEdge(canvas *svg.SVG, v viewport, r renderer, e plot.EdgeStyle) {
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%.3f;stroke-width:%.2f",
		hexColor(e.Color), e.Alpha, e.Width*r.edgeScale)

	switch sh := e.Path.Shape.(type) {
	case paths.LineSegment:
		x1, y1 := v.point(sh.From)
		x2, y2 := v.point(sh.To)
		canvas.Line(x1, y1, x2, y2, style)
	case paths.QuadCurve:
		x1, y1 := v.point(sh.From)
		cx, cy := v.point(sh.Control)
		x2, y2 := v.point(sh.To)
		canvas.Qbez(x1, y1, cx, cy, x2, y2, style)
	case paths.CubicCurve:
		x1, y1 := v.point(sh.From)
		c1x, c1y := v.point(sh.Control1)
		c2x, c2y := v.point(sh.Control2)
		x2, y2 := v.point(sh.To)
		canvas.Bezier(x1, y1, c1x, c1y, c2x, c2y, x2, y2, style)
	case paths.ArcSegment:
		pts := flattenArc(sh, 32)
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for i, pt := range pts {
			xs[i], ys[i] = v.point(pt)
		}
		canvas.Polyline(xs, ys, style)
	case paths.MatrixCell:
		x, y := v.point(geometry.Point{X: float64(sh.Col), Y: float64(sh.Row)})
		canvas.Rect(x, y, v.scale, v.scale, fmt.Sprintf(
			"fill:%s;fill-opacity:%.3f;stroke:none", hexColor(e.Color), e.Alpha))
	}
}

func drawSVGBlock(canvas *svg.SVG, v viewport, start, end int, label string) {
	x, y := v.point(geometry.Point{X: float64(start), Y: float64(start)})
	size := float64(end-start) * v.scale
	canvas.Rect(x, y, size, size,
		"fill:none;stroke:#888888;stroke-width:1;stroke-dasharray:4 2")
	canvas.Text(x+2, y-4, label, "font-size:11px;font-family:sans-serif")
}

func drawSVGLegend(canvas *svg.SVG, r renderer, p *plot.Plot) {
	if len(p.Legend) == 0 {
		return
	}
	x := r.margin / 2
	y := r.margin / 2
	for _, entry := range p.Legend {
		canvas.Rect(x, y, 12, 12, fmt.Sprintf("fill:%s;stroke:none", hexColor(entry.Color)))
		canvas.Text(x+16, y+10, entry.Label, "font-size:11px;font-family:sans-serif")
		y += 16
	}
}

func svgAnchor(h annotate.HAlign) string {
	switch h {
	case annotate.AlignLeft:
		return "start"
	case annotate.AlignRight:
		return "end"
	}
	return "middle"
}
