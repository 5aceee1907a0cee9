package sink

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/glyphworks/glyphviz/pkg/geometry"
	"github.com/glyphworks/glyphviz/pkg/paths"
	"github.com/glyphworks/glyphviz/pkg/plot"
)

// RenderPDF draws the plot as a single-page PDF document.
func RenderPDF(p *plot.Plot, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	v := r.fit(p)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: r.width, Ht: r.height},
	})
	pdf.SetFont("Helvetica", "", 10)
	pdf.AddPage()

	for _, e := range p.Edges {
		drawPDFEdge(pdf, v, r, e)
	}
	pdf.SetAlpha(1, "Normal")
	if p.Form != "matrix" {
		for _, n := range p.Nodes {
			cr, cg, cb := rgb(n.Color)
			pdf.SetFillColor(int(cr), int(cg), int(cb))
			pdf.SetAlpha(n.Alpha, "Normal")
			x, y := v.point(geometry.Point{X: n.At.X, Y: n.At.Y})
			pdf.Circle(x, y, n.Size*r.nodeScale, "F")
			if r.labels {
				pdf.SetAlpha(1, "Normal")
				pdf.SetTextColor(0, 0, 0)
				pdf.Text(x, y-n.Size*r.nodeScale-2, n.ID)
			}
		}
	}
	pdf.SetAlpha(1, "Normal")
	for _, b := range p.Blocks {
		x, y := v.point(geometry.Point{X: float64(b.Start), Y: float64(b.Start)})
		size := float64(b.End-b.Start) * v.scale
		pdf.SetDrawColor(136, 136, 136)
		pdf.SetLineWidth(1)
		pdf.Rect(x, y, size, size, "D")
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(x+2, y-4, b.Label)
	}
	for _, l := range p.GroupLabels {
		x, y := v.point(l.At)
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(x, y, l.Label)
	}
	drawPDFLegend(pdf, r, p)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawPDFEdge(pdf *gofpdf.Fpdf, v viewport, r renderer, e plot.EdgeStyle) {
	cr, cg, cb := rgb(e.Color)
	pdf.SetDrawColor(int(cr), int(cg), int(cb))
	pdf.SetFillColor(int(cr), int(cg), int(cb))
	pdf.SetAlpha(e.Alpha, "Normal")
	pdf.SetLineWidth(e.Width * r.edgeScale)

	switch sh := e.Path.Shape.(type) {
	case paths.LineSegment:
		x1, y1 := v.point(sh.From)
		x2, y2 := v.point(sh.To)
		pdf.Line(x1, y1, x2, y2)
	case paths.QuadCurve:
		x1, y1 := v.point(sh.From)
		cx, cy := v.point(sh.Control)
		x2, y2 := v.point(sh.To)
		pdf.MoveTo(x1, y1)
		pdf.CurveTo(cx, cy, x2, y2)
		pdf.DrawPath("D")
	case paths.CubicCurve:
		x1, y1 := v.point(sh.From)
		c1x, c1y := v.point(sh.Control1)
		c2x, c2y := v.point(sh.Control2)
		x2, y2 := v.point(sh.To)
		pdf.MoveTo(x1, y1)
		pdf.CurveBezierCubicTo(c1x, c1y, c2x, c2y, x2, y2)
		pdf.DrawPath("D")
	case paths.ArcSegment:
		pts := flattenArc(sh, 32)
		x0, y0 := v.point(pts[0])
		pdf.MoveTo(x0, y0)
		for _, pt := range pts[1:] {
			x, y := v.point(pt)
			pdf.LineTo(x, y)
		}
		pdf.DrawPath("D")
	case paths.MatrixCell:
		x, y := v.point(geometry.Point{X: float64(sh.Col), Y: float64(sh.Row)})
		pdf.Rect(x, y, v.scale, v.scale, "F")
	}
}

func drawPDFLegend(pdf *gofpdf.Fpdf, r renderer, p *plot.Plot) {
	if len(p.Legend) == 0 {
		return
	}
	x := r.margin / 2
	y := r.margin / 2
	for _, entry := range p.Legend {
		cr, cg, cb := rgb(entry.Color)
		pdf.SetFillColor(int(cr), int(cg), int(cb))
		pdf.Rect(x, y, 12, 12, "F")
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(x+16, y+10, entry.Label)
		y += 16
	}
}
