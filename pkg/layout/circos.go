package layout

import (
	"math"

	"github.com/glyphworks/glyphviz/pkg/errors"
	"github.com/glyphworks/glyphviz/pkg/geometry"
	"github.com/glyphworks/glyphviz/pkg/table"
)

// CircosOptions tunes the circular layout.
type CircosOptions struct {
	// Radius of the node circle. Zero picks the smallest radius that
	// keeps adjacent nodes two units apart.
	Radius float64

	// PadFraction is the total share of the circle spent on gaps
	// between adjacent groups, in [0, 0.5]. Zero means no gaps.
	// Ignored without grouping.
	PadFraction float64
}

// Circos places nodes evenly around a circle. With grouping, an angular
// gap separates adjacent groups so group boundaries read at a glance.
func Circos(t *table.Table, groupBy, sortBy string, opts CircosOptions) (PositionMap, error) {
	if opts.PadFraction < 0 || opts.PadFraction > 0.5 {
		return nil, errors.New(errors.ErrCodeBadValue,
			"pad fraction %g outside [0, 0.5]", opts.PadFraction)
	}

	sorted, err := t.GroupAndSort(groupBy, sortBy)
	if err != nil {
		return nil, err
	}
	n := sorted.Len()
	if n == 0 {
		return PositionMap{}, nil
	}

	radius := opts.Radius
	if radius <= 0 {
		radius = geometry.CircosRadius(n, 2)
	}

	thetas, err := circosAngles(sorted, groupBy, opts.PadFraction)
	if err != nil {
		return nil, err
	}

	pos := make(PositionMap, n)
	for i, id := range sorted.IDs() {
		p := geometry.ToCartesian(radius, thetas[i])
		pos[id] = Position{X: p.X, Y: p.Y}
	}
	return pos, nil
}

// circosAngles assigns one angle per row. Without grouping or padding
// the nodes split the circle evenly. With G groups, the padded share of
// the circle splits into G equal gaps and the remaining arc splits
// evenly across nodes.
func circosAngles(sorted *table.Table, groupBy string, padFraction float64) ([]float64, error) {
	n := sorted.Len()
	if groupBy == "" || padFraction == 0 {
		thetas := make([]float64, n)
		for i := range thetas {
			theta, err := geometry.ItemTheta(i, n)
			if err != nil {
				return nil, err
			}
			thetas[i] = theta
		}
		return thetas, nil
	}

	groups, err := sorted.Groups(groupBy)
	if err != nil {
		return nil, err
	}
	g := len(groups)
	totalPad := padFraction * 2 * math.Pi
	nodeStep := (2*math.Pi - totalPad) / float64(n)
	gapStep := totalPad / float64(g)

	thetas := make([]float64, 0, n)
	i := 0
	for gi, group := range groups {
		for range group.Rows {
			thetas = append(thetas, float64(i)*nodeStep+float64(gi)*gapStep)
			i++
		}
	}
	return thetas, nil
}
