package table

import (
	"sort"

	"github.com/glyphworks/glyphviz/pkg/errors"
)

// Group is one partition of a table by an attribute value.
type Group struct {
	Value any    // the shared attribute value (nil for rows lacking the column)
	Label string // display form of Value
	Rows  []Row  // rows in the group, preserving their relative order
}

// GroupAndSort partitions and orders a table.
//
// When groupBy is non-empty, rows are stably partitioned by that
// attribute's distinct values; groups keep the first-seen order of their
// value in the original table. When sortBy is non-empty, rows are stably
// sorted ascending by that attribute within each group (or globally when
// no grouping is requested); ties preserve original relative order. With
// neither set, the original row order is returned unchanged.
//
// The receiver is never mutated; the result is a new Table.
// Returns a CONFIG_MISSING_ATTRIBUTE error when a requested attribute is
// absent from the table.
func (t *Table) GroupAndSort(groupBy, sortBy string) (*Table, error) {
	groups, err := t.grouped(groupBy)
	if err != nil {
		return nil, err
	}

	if sortBy != "" {
		if !t.HasColumn(sortBy) {
			return nil, missingColumn(sortBy, t.columns)
		}
		for _, g := range groups {
			sortRows(g.Rows, sortBy)
		}
	}

	var rows []Row
	for _, g := range groups {
		rows = append(rows, g.Rows...)
	}
	return FromRows(rows), nil
}

// Groups partitions the table by the named attribute, preserving the
// first-seen order of distinct values. Rows lacking the attribute form a
// single group with a nil value, positioned where the first such row
// appears. Returns a CONFIG_MISSING_ATTRIBUTE error for an unknown column.
func (t *Table) Groups(by string) ([]Group, error) {
	groups, err := t.grouped(by)
	if err != nil {
		return nil, err
	}
	if by == "" && len(groups) == 1 {
		groups[0].Label = ""
	}
	return groups, nil
}

// grouped returns the partition for by, or a single all-rows group when by
// is empty.
func (t *Table) grouped(by string) ([]Group, error) {
	if by == "" {
		rows := slicesCloneRows(t.rows)
		return []Group{{Rows: rows}}, nil
	}
	if !t.HasColumn(by) {
		return nil, missingColumn(by, t.columns)
	}

	index := make(map[string]int)
	var groups []Group
	for _, r := range t.rows {
		v := r.Attrs[by]
		key := valueKey(v)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Value: v, Label: Format(v)})
		}
		groups[i].Rows = append(groups[i].Rows, r)
	}
	return groups, nil
}

// sortRows stably sorts rows ascending by the named attribute.
func sortRows(rows []Row, by string) {
	sort.SliceStable(rows, func(i, j int) bool {
		return Compare(rows[i].Attrs[by], rows[j].Attrs[by]) < 0
	})
}

func slicesCloneRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	return out
}

func missingColumn(name string, have []string) error {
	return errors.New(errors.ErrCodeMissingAttribute, "no column %q in table (have %v)", name, have)
}
