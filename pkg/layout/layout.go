// Package layout computes node positions for each plot form.
//
// Every layout first orders the node table with GroupAndSort, so group
// membership and sort keys control where nodes land. Layouts return
// plain coordinate maps; they know nothing about colors, sizes, or
// output devices.
package layout

import (
	"github.com/glyphworks/glyphviz/pkg/table"
)

// Position is a node location in plot coordinates.
type Position struct {
	X float64
	Y float64
}

// PositionMap maps node IDs to their computed positions.
type PositionMap map[string]Position

// Cell is a node's slot on the matrix axes.
type Cell struct {
	Row int
	Col int
}

// CellMap maps node IDs to their matrix cells.
type CellMap map[string]Cell

// Arc places nodes along the x axis in grouped, sorted order. Node i
// sits at (i, 0); edges sweep above the axis.
func Arc(t *table.Table, groupBy, sortBy string) (PositionMap, error) {
	sorted, err := t.GroupAndSort(groupBy, sortBy)
	if err != nil {
		return nil, err
	}
	pos := make(PositionMap, sorted.Len())
	for i, id := range sorted.IDs() {
		pos[id] = Position{X: float64(i), Y: 0}
	}
	return pos, nil
}

// Parallel arranges each group as a vertical column of nodes. Columns
// sit three units apart so edges between adjacent groups have room.
func Parallel(t *table.Table, groupBy, sortBy string) (PositionMap, error) {
	sorted, err := t.GroupAndSort(groupBy, sortBy)
	if err != nil {
		return nil, err
	}
	groups, err := sortedGroups(sorted, groupBy)
	if err != nil {
		return nil, err
	}

	pos := make(PositionMap, sorted.Len())
	for g, group := range groups {
		for i, row := range group.Rows {
			pos[row.ID] = Position{X: float64(g) * 3, Y: float64(i)}
		}
	}
	return pos, nil
}

// sortedGroups partitions an already grouped-and-sorted table. With no
// group column everything lands in a single unnamed group.
func sortedGroups(t *table.Table, groupBy string) ([]table.Group, error) {
	if groupBy == "" {
		return []table.Group{{Rows: t.Rows()}}, nil
	}
	return t.Groups(groupBy)
}
