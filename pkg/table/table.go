package table

import (
	"slices"

	"github.com/glyphworks/glyphviz/pkg/errors"
	"github.com/glyphworks/glyphviz/pkg/graph"
)

// Row is one record of a node or edge table. Node-table rows carry ID;
// edge-table rows carry Source and Target. Attrs holds the scalar
// attribute values keyed by column name; rows may miss columns that other
// rows define.
type Row struct {
	ID     string
	Source string
	Target string
	Attrs  map[string]any
}

// Table is an ordered sequence of rows plus the set of attribute columns
// observed across them, in first-seen order. Tables are derived fresh from
// a graph per plot call and never mutated in place: every transformation
// returns a new Table sharing row attribute maps.
type Table struct {
	rows    []Row
	columns []string
	colSet  map[string]struct{}
}

// FromNodes extracts the node table of a graph: one row per node in the
// graph's node order. Returns a DATA_DUPLICATE_NODE error when the graph
// yields the same identifier twice.
func FromNodes(g graph.Graph) (*Table, error) {
	t := &Table{colSet: make(map[string]struct{})}
	seen := make(map[string]struct{})
	for _, n := range g.Nodes() {
		if _, dup := seen[n.ID]; dup {
			return nil, errors.New(errors.ErrCodeDuplicateNode, "node %q appears twice in graph", n.ID)
		}
		seen[n.ID] = struct{}{}
		t.rows = append(t.rows, Row{ID: n.ID, Attrs: n.Attrs})
		t.observeColumns(n.Attrs)
	}
	return t, nil
}

// FromEdges extracts the edge table of a graph: one row per edge in the
// graph's edge order, endpoints under Source and Target.
func FromEdges(g graph.Graph) *Table {
	t := &Table{colSet: make(map[string]struct{})}
	for _, e := range g.Edges() {
		t.rows = append(t.rows, Row{Source: e.Source, Target: e.Target, Attrs: e.Attrs})
		t.observeColumns(e.Attrs)
	}
	return t
}

// FromRows builds a table directly from rows. Intended for tests and for
// derived tables produced by transformations.
func FromRows(rows []Row) *Table {
	t := &Table{colSet: make(map[string]struct{})}
	for _, r := range rows {
		t.rows = append(t.rows, r)
		t.observeColumns(r.Attrs)
	}
	return t
}

func (t *Table) observeColumns(attrs map[string]any) {
	// Deterministic column order needs a deterministic walk over the
	// attribute map, so new names are adopted in sorted order per row.
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		if _, ok := t.colSet[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	for _, name := range names {
		t.colSet[name] = struct{}{}
		t.columns = append(t.columns, name)
	}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns the rows in order. The slice is a copy; attribute maps are
// shared and must not be mutated.
func (t *Table) Rows() []Row { return slices.Clone(t.rows) }

// Row returns the i-th row.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Columns returns the attribute column names in first-seen order.
func (t *Table) Columns() []string { return slices.Clone(t.columns) }

// HasColumn reports whether any row defines the named attribute.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.colSet[name]
	return ok
}

// Column returns the named attribute as a column of values aligned with
// row order; rows lacking the attribute contribute a nil value.
// Returns a CONFIG_MISSING_ATTRIBUTE error when no row defines the name.
func (t *Table) Column(name string) (Column, error) {
	if !t.HasColumn(name) {
		return Column{}, errors.New(errors.ErrCodeMissingAttribute, "no column %q in table (have %v)", name, t.columns)
	}
	values := make([]any, len(t.rows))
	for i, r := range t.rows {
		values[i] = r.Attrs[name]
	}
	return Column{Name: name, Values: values}, nil
}

// IDs returns the node identifiers of a node table, in row order.
func (t *Table) IDs() []string {
	ids := make([]string, len(t.rows))
	for i, r := range t.rows {
		ids[i] = r.ID
	}
	return ids
}
