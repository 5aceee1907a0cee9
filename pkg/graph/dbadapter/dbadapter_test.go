package dbadapter

import (
	"testing"

	dbgraph "github.com/dominikbraun/graph"
)

func buildGraph(t *testing.T) dbgraph.Graph[string, string] {
	t.Helper()
	g := dbgraph.New(dbgraph.StringHash, dbgraph.Directed())
	for _, v := range []struct {
		id    string
		group string
	}{
		{"gamma", "x"},
		{"alpha", "x"},
		{"beta", "y"},
	} {
		if err := g.AddVertex(v.id, dbgraph.VertexAttribute("group", v.group)); err != nil {
			t.Fatalf("AddVertex(%s): %v", v.id, err)
		}
	}
	if err := g.AddEdge("alpha", "beta", dbgraph.EdgeWeight(3), dbgraph.EdgeAttribute("kind", "ref")); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge("gamma", "alpha"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	return g
}

func TestWrapNodesSorted(t *testing.T) {
	a, err := Wrap(buildGraph(t))
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}

	nodes := a.Nodes()
	want := []string{"alpha", "beta", "gamma"}
	if len(nodes) != len(want) {
		t.Fatalf("len(nodes) = %d, want %d", len(nodes), len(want))
	}
	for i, id := range want {
		if nodes[i].ID != id {
			t.Errorf("nodes[%d] = %q, want %q", i, nodes[i].ID, id)
		}
	}
	if nodes[0].Attrs["group"] != "x" {
		t.Errorf("alpha group = %v, want x", nodes[0].Attrs["group"])
	}
}

func TestWrapEdges(t *testing.T) {
	a, err := Wrap(buildGraph(t))
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}

	edges := a.Edges()
	if len(edges) != 2 {
		t.Fatalf("len(edges) = %d, want 2", len(edges))
	}
	// Sorted by (source, target): alpha→beta before gamma→alpha.
	if edges[0].Source != "alpha" || edges[0].Target != "beta" {
		t.Errorf("edges[0] = (%s, %s), want (alpha, beta)", edges[0].Source, edges[0].Target)
	}
	if w, ok := edges[0].Attrs["weight"].(int); !ok || w != 3 {
		t.Errorf("weight = %#v, want int 3", edges[0].Attrs["weight"])
	}
	if edges[0].Attrs["kind"] != "ref" {
		t.Errorf("kind = %v, want ref", edges[0].Attrs["kind"])
	}
	if !a.Directed() {
		t.Error("Directed() = false, want true")
	}
}

func TestWrapDeterminism(t *testing.T) {
	g := buildGraph(t)
	a1, err := Wrap(g)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	a2, err := Wrap(g)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}

	n1, n2 := a1.Nodes(), a2.Nodes()
	for i := range n1 {
		if n1[i].ID != n2[i].ID {
			t.Fatalf("node order differs at %d: %q vs %q", i, n1[i].ID, n2[i].ID)
		}
	}
	e1, e2 := a1.Edges(), a2.Edges()
	for i := range e1 {
		if e1[i].Source != e2[i].Source || e1[i].Target != e2[i].Target {
			t.Fatalf("edge order differs at %d", i)
		}
	}
}
