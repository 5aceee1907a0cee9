// Package paths builds drawable edge shapes from node positions.
//
// Each builder pairs with one layout: straight segments for geo and
// parallel plots, semicircles for arc plots, center-bent curves for
// circos, axis-to-axis curves for hive, and index cells for matrix
// plots. Builders consume graph edges plus the layout's position map
// and fail fast on edges whose endpoints never got a position.
package paths

import (
	"github.com/glyphworks/glyphviz/pkg/errors"
	"github.com/glyphworks/glyphviz/pkg/geometry"
	"github.com/glyphworks/glyphviz/pkg/graph"
	"github.com/glyphworks/glyphviz/pkg/layout"
)

// Shape is one drawable edge geometry.
type Shape interface {
	shape()
}

// LineSegment is a straight edge between two points.
type LineSegment struct {
	From geometry.Point
	To   geometry.Point
}

// QuadCurve is a quadratic Bezier edge.
type QuadCurve struct {
	From    geometry.Point
	Control geometry.Point
	To      geometry.Point
}

// CubicCurve is a cubic Bezier edge.
type CubicCurve struct {
	From     geometry.Point
	Control1 geometry.Point
	Control2 geometry.Point
	To       geometry.Point
}

// ArcSegment is a circular arc between two angles on a circle.
type ArcSegment struct {
	Center     geometry.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// MatrixCell marks one cell of the adjacency matrix.
type MatrixCell struct {
	Row int
	Col int
}

func (LineSegment) shape() {}
func (QuadCurve) shape()   {}
func (CubicCurve) shape()  {}
func (ArcSegment) shape()  {}
func (MatrixCell) shape()  {}

// EdgePath pairs an edge with its drawable shape.
type EdgePath struct {
	Source string
	Target string
	Shape  Shape
}

// endpoints resolves both positions of an edge or fails with a
// dangling-edge error naming the missing node.
func endpoints(e graph.Edge, pos layout.PositionMap) (geometry.Point, geometry.Point, error) {
	src, ok := pos[e.Source]
	if !ok {
		return geometry.Point{}, geometry.Point{}, errors.New(errors.ErrCodeDanglingEdge,
			"edge %s->%s: no position for source %q", e.Source, e.Target, e.Source)
	}
	dst, ok := pos[e.Target]
	if !ok {
		return geometry.Point{}, geometry.Point{}, errors.New(errors.ErrCodeDanglingEdge,
			"edge %s->%s: no position for target %q", e.Source, e.Target, e.Target)
	}
	return geometry.Point{X: src.X, Y: src.Y}, geometry.Point{X: dst.X, Y: dst.Y}, nil
}

// Line builds straight-segment paths, used by the geo and parallel
// plot forms.
func Line(edges []graph.Edge, pos layout.PositionMap) ([]EdgePath, error) {
	out := make([]EdgePath, 0, len(edges))
	for _, e := range edges {
		from, to, err := endpoints(e, pos)
		if err != nil {
			return nil, err
		}
		out = append(out, EdgePath{
			Source: e.Source,
			Target: e.Target,
			Shape:  LineSegment{From: from, To: to},
		})
	}
	return out, nil
}
