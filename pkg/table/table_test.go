package table

import (
	"testing"

	"github.com/glyphworks/glyphviz/pkg/errors"
	"github.com/glyphworks/glyphviz/pkg/graph"
)

// demoGraph builds the 4-node, 2-group graph used across layout tests.
func demoGraph(t *testing.T) *graph.Builder {
	t.Helper()
	g := graph.New()
	nodes := []struct {
		id    string
		group string
		value int
	}{
		{"A", "x", 4},
		{"B", "x", 2},
		{"C", "y", 3},
		{"D", "y", 1},
	}
	for _, n := range nodes {
		if err := g.AddNode(n.id, graph.Attrs{"group": n.group, "value": n.value}); err != nil {
			t.Fatalf("AddNode(%s): %v", n.id, err)
		}
	}
	if err := g.AddEdge("A", "C", graph.Attrs{"kind": "cross"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge("B", "D", graph.Attrs{"kind": "cross"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	return g
}

func TestFromNodes(t *testing.T) {
	nt, err := FromNodes(demoGraph(t))
	if err != nil {
		t.Fatalf("FromNodes: %v", err)
	}

	if nt.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", nt.Len())
	}
	if got := nt.IDs(); got[0] != "A" || got[3] != "D" {
		t.Errorf("IDs() = %v, want graph order", got)
	}
	if !nt.HasColumn("group") || !nt.HasColumn("value") {
		t.Errorf("Columns() = %v, want group and value", nt.Columns())
	}
}

func TestFromEdges(t *testing.T) {
	et := FromEdges(demoGraph(t))

	if et.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", et.Len())
	}
	r := et.Row(0)
	if r.Source != "A" || r.Target != "C" {
		t.Errorf("Row(0) = (%s, %s), want (A, C)", r.Source, r.Target)
	}
	if r.Attrs["kind"] != "cross" {
		t.Errorf("kind = %v, want cross", r.Attrs["kind"])
	}
}

func TestColumnMissing(t *testing.T) {
	nt, _ := FromNodes(demoGraph(t))

	_, err := nt.Column("nonexistent")
	if !errors.Is(err, errors.ErrCodeMissingAttribute) {
		t.Errorf("Column error = %v, want CONFIG_MISSING_ATTRIBUTE", err)
	}
}

func TestGroupAndSortNoOp(t *testing.T) {
	nt, _ := FromNodes(demoGraph(t))

	got, err := nt.GroupAndSort("", "")
	if err != nil {
		t.Fatalf("GroupAndSort: %v", err)
	}
	want := []string{"A", "B", "C", "D"}
	for i, id := range got.IDs() {
		if id != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, id, want[i])
		}
	}
}

func TestGroupAndSortGroupsFirstSeen(t *testing.T) {
	// Group values first appear in the order y, x; the groups must keep
	// that order, not alphabetical.
	rows := []Row{
		{ID: "n1", Attrs: map[string]any{"g": "y"}},
		{ID: "n2", Attrs: map[string]any{"g": "x"}},
		{ID: "n3", Attrs: map[string]any{"g": "y"}},
		{ID: "n4", Attrs: map[string]any{"g": "x"}},
	}
	tab := FromRows(rows)

	got, err := tab.GroupAndSort("g", "")
	if err != nil {
		t.Fatalf("GroupAndSort: %v", err)
	}
	want := []string{"n1", "n3", "n2", "n4"}
	for i, id := range got.IDs() {
		if id != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, id, want[i])
		}
	}
}

func TestGroupAndSortStableTies(t *testing.T) {
	rows := []Row{
		{ID: "a", Attrs: map[string]any{"v": 2}},
		{ID: "b", Attrs: map[string]any{"v": 1}},
		{ID: "c", Attrs: map[string]any{"v": 2}},
		{ID: "d", Attrs: map[string]any{"v": 1}},
	}
	tab := FromRows(rows)

	got, err := tab.GroupAndSort("", "v")
	if err != nil {
		t.Fatalf("GroupAndSort: %v", err)
	}
	// Ties (b,d) and (a,c) must preserve original relative order.
	want := []string{"b", "d", "a", "c"}
	for i, id := range got.IDs() {
		if id != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, id, want[i])
		}
	}
}

func TestGroupAndSortWithinGroups(t *testing.T) {
	nt, _ := FromNodes(demoGraph(t))

	got, err := nt.GroupAndSort("group", "value")
	if err != nil {
		t.Fatalf("GroupAndSort: %v", err)
	}
	// Group x first (B=2 before A=4), then group y (D=1 before C=3).
	want := []string{"B", "A", "D", "C"}
	for i, id := range got.IDs() {
		if id != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, id, want[i])
		}
	}
}

func TestGroupAndSortMissingAttribute(t *testing.T) {
	nt, _ := FromNodes(demoGraph(t))

	if _, err := nt.GroupAndSort("nonexistent", ""); !errors.Is(err, errors.ErrCodeMissingAttribute) {
		t.Errorf("group error = %v, want CONFIG_MISSING_ATTRIBUTE", err)
	}
	if _, err := nt.GroupAndSort("", "nonexistent"); !errors.Is(err, errors.ErrCodeMissingAttribute) {
		t.Errorf("sort error = %v, want CONFIG_MISSING_ATTRIBUTE", err)
	}
}

func TestGroupAndSortPure(t *testing.T) {
	nt, _ := FromNodes(demoGraph(t))
	before := nt.IDs()

	if _, err := nt.GroupAndSort("group", "value"); err != nil {
		t.Fatalf("GroupAndSort: %v", err)
	}

	after := nt.IDs()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("input table mutated at row %d", i)
		}
	}
}

func TestGroupAndSortDeterminism(t *testing.T) {
	nt, _ := FromNodes(demoGraph(t))

	a, err := nt.GroupAndSort("group", "value")
	if err != nil {
		t.Fatalf("GroupAndSort: %v", err)
	}
	b, err := nt.GroupAndSort("group", "value")
	if err != nil {
		t.Fatalf("GroupAndSort: %v", err)
	}
	ia, ib := a.IDs(), b.IDs()
	for i := range ia {
		if ia[i] != ib[i] {
			t.Fatalf("order differs at %d: %q vs %q", i, ia[i], ib[i])
		}
	}
}

func TestGroups(t *testing.T) {
	nt, _ := FromNodes(demoGraph(t))

	groups, err := nt.Groups("group")
	if err != nil {
		t.Fatalf("Groups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	if groups[0].Label != "x" || groups[1].Label != "y" {
		t.Errorf("labels = %q, %q, want x, y", groups[0].Label, groups[1].Label)
	}
	if len(groups[0].Rows) != 2 || len(groups[1].Rows) != 2 {
		t.Errorf("group sizes = %d, %d, want 2, 2", len(groups[0].Rows), len(groups[1].Rows))
	}
}
