package paths

import (
	"math"

	"github.com/glyphworks/glyphviz/pkg/geometry"
	"github.com/glyphworks/glyphviz/pkg/graph"
	"github.com/glyphworks/glyphviz/pkg/layout"
)

// Arc builds semicircular paths over the x axis for arc plots. Each
// edge sweeps over the top half of the circle whose diameter is the
// span between its endpoints.
func Arc(edges []graph.Edge, pos layout.PositionMap) ([]EdgePath, error) {
	out := make([]EdgePath, 0, len(edges))
	for _, e := range edges {
		from, to, err := endpoints(e, pos)
		if err != nil {
			return nil, err
		}
		center := geometry.Point{X: (from.X + to.X) / 2, Y: 0}
		radius := math.Abs(to.X-from.X) / 2

		// The leftmost endpoint sits at angle pi, the rightmost at 0.
		start, end := math.Pi, 0.0
		if from.X > to.X {
			start, end = 0.0, math.Pi
		}
		out = append(out, EdgePath{
			Source: e.Source,
			Target: e.Target,
			Shape: ArcSegment{
				Center:     center,
				Radius:     radius,
				StartAngle: start,
				EndAngle:   end,
			},
		})
	}
	return out, nil
}

// Circos builds quadratic curves that bow toward the circle center.
// The control point is the chord midpoint pulled inward in proportion
// to how far apart the endpoints sit on the circle, so neighbors get
// shallow curves and opposite nodes get deep ones.
func Circos(edges []graph.Edge, pos layout.PositionMap) ([]EdgePath, error) {
	out := make([]EdgePath, 0, len(edges))
	for _, e := range edges {
		from, to, err := endpoints(e, pos)
		if err != nil {
			return nil, err
		}

		_, thetaFrom := geometry.ToPolar(from)
		_, thetaTo := geometry.ToPolar(to)
		delta := math.Abs(geometry.CorrectNegativeAngle(thetaTo) - geometry.CorrectNegativeAngle(thetaFrom))
		if delta > math.Pi {
			delta = 2*math.Pi - delta
		}

		pull := 1 - delta/math.Pi
		control := geometry.Point{
			X: (from.X + to.X) / 2 * pull,
			Y: (from.Y + to.Y) / 2 * pull,
		}
		out = append(out, EdgePath{
			Source: e.Source,
			Target: e.Target,
			Shape:  QuadCurve{From: from, Control: control, To: to},
		})
	}
	return out, nil
}

// Hive builds cubic curves between hive axes. Control points sit at
// each endpoint's radius but at the angular midpoint between the two
// axes, so curves leave one axis, swing through the wedge between
// them, and land on the other.
func Hive(edges []graph.Edge, pos layout.PositionMap) ([]EdgePath, error) {
	out := make([]EdgePath, 0, len(edges))
	for _, e := range edges {
		from, to, err := endpoints(e, pos)
		if err != nil {
			return nil, err
		}

		rFrom, thetaFrom := geometry.ToPolar(from)
		rTo, thetaTo := geometry.ToPolar(to)
		thetaFrom = geometry.CorrectNegativeAngle(thetaFrom)
		thetaTo = geometry.CorrectNegativeAngle(thetaTo)
		thetaFrom, thetaTo = geometry.CorrectHiveAngles(thetaFrom, thetaTo)
		mid := (thetaFrom + thetaTo) / 2

		out = append(out, EdgePath{
			Source: e.Source,
			Target: e.Target,
			Shape: CubicCurve{
				From:     from,
				Control1: geometry.ToCartesian(rFrom, mid),
				Control2: geometry.ToCartesian(rTo, mid),
				To:       to,
			},
		})
	}
	return out, nil
}
