package sink

import (
	"bytes"

	"git.sr.ht/~sbinet/gg"

	"github.com/glyphworks/glyphviz/pkg/annotate"
	"github.com/glyphworks/glyphviz/pkg/geometry"
	"github.com/glyphworks/glyphviz/pkg/paths"
	"github.com/glyphworks/glyphviz/pkg/plot"
)

// RenderPNG draws the plot as a raster PNG image.
func RenderPNG(p *plot.Plot, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	v := r.fit(p)

	ctx := gg.NewContext(int(r.width), int(r.height))
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	for _, e := range p.Edges {
		drawPNGEdge(ctx, v, r, e)
	}
	if p.Form != "matrix" {
		for _, n := range p.Nodes {
			cr, cg, cb := rgb(n.Color)
			ctx.SetRGBA255(int(cr), int(cg), int(cb), int(n.Alpha*255))
			x, y := v.point(geometry.Point{X: n.At.X, Y: n.At.Y})
			ctx.DrawCircle(x, y, n.Size*r.nodeScale)
			ctx.Fill()
			if r.labels {
				ctx.SetRGB(0, 0, 0)
				ctx.DrawStringAnchored(n.ID, x, y-n.Size*r.nodeScale-2, 0.5, 1)
			}
		}
	}
	for _, b := range p.Blocks {
		x, y := v.point(geometry.Point{X: float64(b.Start), Y: float64(b.Start)})
		size := float64(b.End-b.Start) * v.scale
		ctx.SetRGBA255(136, 136, 136, 255)
		ctx.SetLineWidth(1)
		ctx.DrawRectangle(x, y, size, size)
		ctx.Stroke()
		ctx.SetRGB(0, 0, 0)
		ctx.DrawString(b.Label, x+2, y-4)
	}
	for _, l := range p.GroupLabels {
		x, y := v.point(l.At)
		ctx.SetRGB(0, 0, 0)
		ctx.DrawStringAnchored(l.Label, x, y, anchorX(l.HAlign), 0.5)
	}
	drawPNGLegend(ctx, r, p)

	var buf bytes.Buffer
	if err := ctx.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawPNGEdge(ctx *gg.Context, v viewport, r renderer, e plot.EdgeStyle) {
	cr, cg, cb := rgb(e.Color)
	ctx.SetRGBA255(int(cr), int(cg), int(cb), int(e.Alpha*255))
	ctx.SetLineWidth(e.Width * r.edgeScale)

	switch sh := e.Path.Shape.(type) {
	case paths.LineSegment:
		x1, y1 := v.point(sh.From)
		x2, y2 := v.point(sh.To)
		ctx.DrawLine(x1, y1, x2, y2)
		ctx.Stroke()
	case paths.QuadCurve:
		x1, y1 := v.point(sh.From)
		cx, cy := v.point(sh.Control)
		x2, y2 := v.point(sh.To)
		ctx.MoveTo(x1, y1)
		ctx.QuadraticTo(cx, cy, x2, y2)
		ctx.Stroke()
	case paths.CubicCurve:
		x1, y1 := v.point(sh.From)
		c1x, c1y := v.point(sh.Control1)
		c2x, c2y := v.point(sh.Control2)
		x2, y2 := v.point(sh.To)
		ctx.MoveTo(x1, y1)
		ctx.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
		ctx.Stroke()
	case paths.ArcSegment:
		pts := flattenArc(sh, 32)
		x0, y0 := v.point(pts[0])
		ctx.MoveTo(x0, y0)
		for _, pt := range pts[1:] {
			x, y := v.point(pt)
			ctx.LineTo(x, y)
		}
		ctx.Stroke()
	case paths.MatrixCell:
		x, y := v.point(geometry.Point{X: float64(sh.Col), Y: float64(sh.Row)})
		ctx.DrawRectangle(x, y, v.scale, v.scale)
		ctx.Fill()
	}
}

func drawPNGLegend(ctx *gg.Context, r renderer, p *plot.Plot) {
	if len(p.Legend) == 0 {
		return
	}
	x := r.margin / 2
	y := r.margin / 2
	for _, entry := range p.Legend {
		cr, cg, cb := rgb(entry.Color)
		ctx.SetRGBA255(int(cr), int(cg), int(cb), 255)
		ctx.DrawRectangle(x, y, 12, 12)
		ctx.Fill()
		ctx.SetRGB(0, 0, 0)
		ctx.DrawString(entry.Label, x+16, y+10)
		y += 16
	}
}

func anchorX(h annotate.HAlign) float64 {
	switch h {
	case annotate.AlignLeft:
		return 0
	case annotate.AlignRight:
		return 1
	}
	return 0.5
}
