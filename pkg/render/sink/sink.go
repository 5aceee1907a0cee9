package sink

import (
	"fmt"
	"image/color"
	"math"

	"github.com/glyphworks/glyphviz/pkg/geometry"
	"github.com/glyphworks/glyphviz/pkg/paths"
	"github.com/glyphworks/glyphviz/pkg/plot"
)

// Option configures a render sink.
type Option func(*renderer)

type renderer struct {
	width     float64
	height    float64
	margin    float64
	nodeScale float64
	edgeScale float64
	labels    bool
}

// WithSize sets the output canvas size in pixels.
func WithSize(width, height float64) Option {
	return func(r *renderer) { r.width, r.height = width, height }
}

// WithMargin sets the blank border around the drawing.
func WithMargin(m float64) Option {
	return func(r *renderer) { r.margin = m }
}

// WithNodeScale sets the pixel radius of a size-1 node.
func WithNodeScale(s float64) Option {
	return func(r *renderer) { r.nodeScale = s }
}

// WithEdgeScale sets the pixel width of a width-1 edge.
func WithEdgeScale(s float64) Option {
	return func(r *renderer) { r.edgeScale = s }
}

// WithLabels draws node IDs next to their markers.
func WithLabels() Option {
	return func(r *renderer) { r.labels = true }
}

func newRenderer(opts ...Option) renderer {
	r := renderer{
		width:     800,
		height:    800,
		margin:    40,
		nodeScale: 6,
		edgeScale: 1.5,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// viewport maps data coordinates onto the canvas with uniform scale
// and a flipped y axis, so data-space up is canvas-space up.
type viewport struct {
	scale   float64
	offsetX float64
	offsetY float64
	flipY   bool
}

func (v viewport) point(p geometry.Point) (float64, float64) {
	x := v.offsetX + p.X*v.scale
	var y float64
	if v.flipY {
		y = v.offsetY - p.Y*v.scale
	} else {
		y = v.offsetY + p.Y*v.scale
	}
	return x, y
}

// fit computes the viewport covering every drawable element of the
// plot. Matrix plots keep y pointing down so row 0 renders at the top.
func (r renderer) fit(p *plot.Plot) viewport {
	b := plotBounds(p)
	dataW := b.maxX - b.minX
	dataH := b.maxY - b.minY
	if dataW <= 0 {
		dataW = 1
	}
	if dataH <= 0 {
		dataH = 1
	}

	scale := math.Min((r.width-2*r.margin)/dataW, (r.height-2*r.margin)/dataH)
	v := viewport{scale: scale, flipY: p.Form != "matrix"}

	// Center the drawing on the canvas.
	cx := (b.minX + b.maxX) / 2
	cy := (b.minY + b.maxY) / 2
	v.offsetX = r.width/2 - cx*scale
	if v.flipY {
		v.offsetY = r.height/2 + cy*scale
	} else {
		v.offsetY = r.height/2 - cy*scale
	}
	return v
}

type bounds struct {
	minX, minY, maxX, maxY float64
}

func (b *bounds) add(p geometry.Point) {
	b.minX = math.Min(b.minX, p.X)
	b.minY = math.Min(b.minY, p.Y)
	b.maxX = math.Max(b.maxX, p.X)
	b.maxY = math.Max(b.maxY, p.Y)
}

func plotBounds(p *plot.Plot) bounds {
	b := bounds{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}
	for _, n := range p.Nodes {
		b.add(geometry.Point{X: n.At.X, Y: n.At.Y})
	}
	for _, e := range p.Edges {
		for _, pt := range shapeExtent(e.Path.Shape) {
			b.add(pt)
		}
	}
	for _, l := range p.GroupLabels {
		b.add(l.At)
	}
	if !math.IsInf(b.minX, 1) {
		return b
	}
	return bounds{minX: -1, minY: -1, maxX: 1, maxY: 1}
}

// shapeExtent returns points spanning a shape's bounding region.
func shapeExtent(s paths.Shape) []geometry.Point {
	switch sh := s.(type) {
	case paths.LineSegment:
		return []geometry.Point{sh.From, sh.To}
	case paths.QuadCurve:
		return []geometry.Point{sh.From, sh.Control, sh.To}
	case paths.CubicCurve:
		return []geometry.Point{sh.From, sh.Control1, sh.Control2, sh.To}
	case paths.ArcSegment:
		return []geometry.Point{
			{X: sh.Center.X - sh.Radius, Y: sh.Center.Y - sh.Radius},
			{X: sh.Center.X + sh.Radius, Y: sh.Center.Y + sh.Radius},
		}
	case paths.MatrixCell:
		return []geometry.Point{
			{X: float64(sh.Col), Y: float64(sh.Row)},
			{X: float64(sh.Col) + 1, Y: float64(sh.Row) + 1},
		}
	}
	return nil
}

// flattenArc samples an arc segment into a polyline in data space.
func flattenArc(a paths.ArcSegment, segments int) []geometry.Point {
	pts := make([]geometry.Point, segments+1)
	for i := 0; i <= segments; i++ {
		t := a.StartAngle + (a.EndAngle-a.StartAngle)*float64(i)/float64(segments)
		pts[i] = geometry.Point{
			X: a.Center.X + a.Radius*math.Cos(t),
			Y: a.Center.Y + a.Radius*math.Sin(t),
		}
	}
	return pts
}

// rgb splits a color into 8-bit channels, dropping its alpha. Channel
// opacity comes from the style's Alpha value instead.
func rgb(c color.Color) (uint8, uint8, uint8) {
	r, g, b, _ := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func hexColor(c color.Color) string {
	r, g, b := rgb(c)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
