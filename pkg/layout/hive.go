package layout

import (
	"math"

	"github.com/glyphworks/glyphviz/pkg/errors"
	"github.com/glyphworks/glyphviz/pkg/geometry"
	"github.com/glyphworks/glyphviz/pkg/table"
)

// Hive axes can render at most this many groups before they overlap
// into an unreadable star.
const MaxHiveGroups = 3

// HiveOptions tunes the hive layout.
type HiveOptions struct {
	// InnerRadius offsets the first node on each axis away from the
	// center so edge curves have room. Zero picks the default of 8.
	InnerRadius float64

	// Spacing is the radial distance between consecutive nodes on an
	// axis. Zero picks the default of 1.
	Spacing float64

	// Rotation rotates all axes by the given angle in radians.
	Rotation float64
}

// Hive places each group on its own radial axis. Grouping is required
// and at most MaxHiveGroups groups are allowed.
func Hive(t *table.Table, groupBy, sortBy string, opts HiveOptions) (PositionMap, error) {
	if groupBy == "" {
		return nil, errors.New(errors.ErrCodeBadValue, "hive layout requires a group column")
	}
	if opts.InnerRadius == 0 {
		opts.InnerRadius = 8
	}
	if opts.Spacing == 0 {
		opts.Spacing = 1
	}

	sorted, err := t.GroupAndSort(groupBy, sortBy)
	if err != nil {
		return nil, err
	}
	groups, err := sorted.Groups(groupBy)
	if err != nil {
		return nil, err
	}
	if len(groups) > MaxHiveGroups {
		return nil, errors.New(errors.ErrCodeTooManyGroups,
			"hive layout supports at most %d groups, got %d", MaxHiveGroups, len(groups))
	}

	pos := make(PositionMap, sorted.Len())
	for g, group := range groups {
		theta := AxisAngle(g, len(groups), opts.Rotation)
		for i, row := range group.Rows {
			r := opts.InnerRadius + float64(i)*opts.Spacing
			p := geometry.ToCartesian(r, theta)
			pos[row.ID] = Position{X: p.X, Y: p.Y}
		}
	}
	return pos, nil
}

// AxisAngle returns the angle of hive axis g out of n axes.
func AxisAngle(g, n int, rotation float64) float64 {
	return geometry.CorrectNegativeAngle(float64(g)*2*math.Pi/float64(n) + rotation)
}
