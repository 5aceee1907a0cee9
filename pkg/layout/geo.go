package layout

import (
	"github.com/glyphworks/glyphviz/pkg/errors"
	"github.com/glyphworks/glyphviz/pkg/table"
)

// Geo places nodes at coordinates read from node attributes, with the
// first column on the x axis and the second on the y axis. Values pass
// through untouched, so both longitude/latitude and projected x/y
// coordinates work; only presence and numeric type are checked.
func Geo(t *table.Table, lonColumn, latColumn string) (PositionMap, error) {
	lon, err := coordColumn(t, lonColumn)
	if err != nil {
		return nil, err
	}
	lat, err := coordColumn(t, latColumn)
	if err != nil {
		return nil, err
	}

	pos := make(PositionMap, t.Len())
	for i, id := range t.IDs() {
		pos[id] = Position{X: lon[i], Y: lat[i]}
	}
	return pos, nil
}

func coordColumn(t *table.Table, name string) ([]float64, error) {
	if name == "" {
		return nil, errors.New(errors.ErrCodeBadCoordinates, "coordinate column not set")
	}
	col, err := t.Column(name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeBadCoordinates, err,
			"coordinate column %q", name)
	}

	out := make([]float64, col.Len())
	for i, v := range col.Values {
		f, ok := table.AsFloat(v)
		if !ok {
			return nil, errors.New(errors.ErrCodeBadCoordinates,
				"node %q has non-numeric %s value %v", t.Row(i).ID, name, v)
		}
		out[i] = f
	}
	return out, nil
}
