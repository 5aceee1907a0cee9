package layout

import (
	"github.com/glyphworks/glyphviz/pkg/table"
)

// Matrix assigns each node one slot shared by the row and column axes.
// Node i in grouped, sorted order occupies row i and column i, so an
// edge between nodes maps to the cell at their index pair.
func Matrix(t *table.Table, groupBy, sortBy string) (CellMap, error) {
	sorted, err := t.GroupAndSort(groupBy, sortBy)
	if err != nil {
		return nil, err
	}
	cells := make(CellMap, sorted.Len())
	for i, id := range sorted.IDs() {
		cells[id] = Cell{Row: i, Col: i}
	}
	return cells, nil
}
