// Package annotate derives label and legend placements for plots.
//
// Group labels land at the visual center of each group with text
// alignment chosen so labels grow away from the figure. Matrix blocks
// mark the index span each group covers on both axes. Legends and
// colorbars describe a color encoding for readers.
package annotate

import (
	"math"

	"github.com/glyphworks/glyphviz/pkg/errors"
	"github.com/glyphworks/glyphviz/pkg/geometry"
	"github.com/glyphworks/glyphviz/pkg/layout"
	"github.com/glyphworks/glyphviz/pkg/table"
)

// HAlign is a horizontal text anchor.
type HAlign string

// VAlign is a vertical text anchor.
type VAlign string

const (
	AlignLeft   HAlign = "left"
	AlignCenter HAlign = "center"
	AlignRight  HAlign = "right"

	AlignTop    VAlign = "top"
	AlignMiddle VAlign = "middle"
	AlignBottom VAlign = "bottom"
)

// TextAlignment picks anchors so text at p extends away from the
// origin: right of center in the right half-plane, above center in the
// top half, and centered on an axis.
func TextAlignment(p geometry.Point) (HAlign, VAlign) {
	h := AlignCenter
	if p.X > 1e-9 {
		h = AlignLeft
	} else if p.X < -1e-9 {
		h = AlignRight
	}
	v := AlignMiddle
	if p.Y > 1e-9 {
		v = AlignBottom
	} else if p.Y < -1e-9 {
		v = AlignTop
	}
	return h, v
}

// GroupLabel is one placed group annotation.
type GroupLabel struct {
	Label  string
	At     geometry.Point
	HAlign HAlign
	VAlign VAlign
}

// CircosGroupLabels places one label per group just outside the node
// circle, at the group's angular midpoint. The offset fraction pushes
// labels beyond the largest node radius.
func CircosGroupLabels(t *table.Table, groupBy string, pos layout.PositionMap, offset float64) ([]GroupLabel, error) {
	sorted, err := t.GroupAndSort(groupBy, "")
	if err != nil {
		return nil, err
	}
	groups, err := sorted.Groups(groupBy)
	if err != nil {
		return nil, err
	}
	if offset <= 0 {
		offset = 0.15
	}

	labels := make([]GroupLabel, 0, len(groups))
	for _, g := range groups {
		first, last, radius, err := groupSpan(g, pos)
		if err != nil {
			return nil, err
		}
		mid := midAngle(first, last)
		at := geometry.ToCartesian(radius*(1+offset), mid)
		h, v := TextAlignment(at)
		labels = append(labels, GroupLabel{Label: g.Label, At: at, HAlign: h, VAlign: v})
	}
	return labels, nil
}

// groupSpan returns the angles of a group's first and last node and the
// largest radius among them.
func groupSpan(g table.Group, pos layout.PositionMap) (first, last, radius float64, err error) {
	for i, row := range g.Rows {
		p, ok := pos[row.ID]
		if !ok {
			return 0, 0, 0, errors.New(errors.ErrCodeUnknownNode,
				"no position for node %q in group %q", row.ID, g.Label)
		}
		r, theta := geometry.ToPolar(geometry.Point{X: p.X, Y: p.Y})
		theta = geometry.CorrectNegativeAngle(theta)
		if i == 0 {
			first = theta
		}
		last = theta
		if r > radius {
			radius = r
		}
	}
	return first, last, radius, nil
}

// midAngle bisects the arc from first to last, sweeping forward even
// when the span crosses the zero axis.
func midAngle(first, last float64) float64 {
	if last < first {
		last += 2 * math.Pi
	}
	return geometry.CorrectNegativeAngle((first + last) / 2)
}

// ArcGroupLabels places one label per group below the axis, centered
// on the group's x extent.
func ArcGroupLabels(t *table.Table, groupBy string, pos layout.PositionMap, offset float64) ([]GroupLabel, error) {
	sorted, err := t.GroupAndSort(groupBy, "")
	if err != nil {
		return nil, err
	}
	groups, err := sorted.Groups(groupBy)
	if err != nil {
		return nil, err
	}
	if offset <= 0 {
		offset = 1
	}

	labels := make([]GroupLabel, 0, len(groups))
	for _, g := range groups {
		minX, maxX := math.Inf(1), math.Inf(-1)
		for _, row := range g.Rows {
			p, ok := pos[row.ID]
			if !ok {
				return nil, errors.New(errors.ErrCodeUnknownNode,
					"no position for node %q in group %q", row.ID, g.Label)
			}
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
		}
		labels = append(labels, GroupLabel{
			Label:  g.Label,
			At:     geometry.Point{X: (minX + maxX) / 2, Y: -offset},
			HAlign: AlignCenter,
			VAlign: AlignTop,
		})
	}
	return labels, nil
}

// Block is a group's contiguous index span on the matrix axes. Start
// is inclusive, End exclusive.
type Block struct {
	Label string
	Start int
	End   int
}

// MatrixGroupBlocks returns the index span each group occupies after
// grouping and sorting, for drawing block outlines along the diagonal.
func MatrixGroupBlocks(t *table.Table, groupBy, sortBy string) ([]Block, error) {
	sorted, err := t.GroupAndSort(groupBy, sortBy)
	if err != nil {
		return nil, err
	}
	groups, err := sorted.Groups(groupBy)
	if err != nil {
		return nil, err
	}

	blocks := make([]Block, 0, len(groups))
	start := 0
	for _, g := range groups {
		end := start + len(g.Rows)
		blocks = append(blocks, Block{Label: g.Label, Start: start, End: end})
		start = end
	}
	return blocks, nil
}
