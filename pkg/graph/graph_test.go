package graph

import (
	"bytes"
	"strings"
	"testing"

	"github.com/glyphworks/glyphviz/pkg/errors"
)

func TestBuilderAddNode(t *testing.T) {
	b := New()
	if err := b.AddNode("a", Attrs{"group": "x"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	if err := b.AddNode("a", nil); !errors.Is(err, errors.ErrCodeDuplicateNode) {
		t.Errorf("duplicate AddNode error = %v, want DATA_DUPLICATE_NODE", err)
	}
	if err := b.AddNode("", nil); !errors.Is(err, errors.ErrCodeBadValue) {
		t.Errorf("empty ID error = %v, want CONFIG_BAD_VALUE", err)
	}

	n, ok := b.Node("a")
	if !ok {
		t.Fatal("Node(a) not found")
	}
	if n.Attrs["group"] != "x" {
		t.Errorf("group = %v, want x", n.Attrs["group"])
	}
}

func TestBuilderAddEdge(t *testing.T) {
	b := New()
	b.AddNode("a", nil)
	b.AddNode("b", nil)

	if err := b.AddEdge("a", "b", Attrs{"weight": 2}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := b.AddEdge("a", "z", nil); !errors.Is(err, errors.ErrCodeUnknownNode) {
		t.Errorf("unknown target error = %v, want DATA_UNKNOWN_NODE", err)
	}
	if err := b.AddEdge("z", "a", nil); !errors.Is(err, errors.ErrCodeUnknownNode) {
		t.Errorf("unknown source error = %v, want DATA_UNKNOWN_NODE", err)
	}

	if got := b.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1", got)
	}
}

func TestBuilderStableOrder(t *testing.T) {
	b := New()
	for _, id := range []string{"delta", "alpha", "charlie", "bravo"} {
		b.AddNode(id, nil)
	}

	first := b.Nodes()
	second := b.Nodes()
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("node order not stable at %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
	// Insertion order, not sorted order.
	if first[0].ID != "delta" || first[3].ID != "bravo" {
		t.Errorf("node order = %v, want insertion order", first)
	}
}

func TestGraphRoundTrip(t *testing.T) {
	b := NewDirected()
	b.AddNode("a", Attrs{"group": "x", "value": 3, "score": 1.5})
	b.AddNode("b", Attrs{"group": "y", "flag": true})
	b.AddEdge("a", "b", Attrs{"kind": "follows", "weight": 7})

	data, err := MarshalGraph(b)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}

	got, err := ReadGraph(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}

	if !got.Directed() {
		t.Error("Directed() = false, want true")
	}
	if got.NodeCount() != 2 || got.EdgeCount() != 1 {
		t.Fatalf("counts = (%d, %d), want (2, 1)", got.NodeCount(), got.EdgeCount())
	}

	a, _ := got.Node("a")
	if v, ok := a.Attrs["value"].(int); !ok || v != 3 {
		t.Errorf("value = %#v, want int 3", a.Attrs["value"])
	}
	if f, ok := a.Attrs["score"].(float64); !ok || f != 1.5 {
		t.Errorf("score = %#v, want float64 1.5", a.Attrs["score"])
	}
	bNode, _ := got.Node("b")
	if fl, ok := bNode.Attrs["flag"].(bool); !ok || !fl {
		t.Errorf("flag = %#v, want true", bNode.Attrs["flag"])
	}

	e := got.Edges()[0]
	if e.Source != "a" || e.Target != "b" {
		t.Errorf("edge = (%s, %s), want (a, b)", e.Source, e.Target)
	}
	if w, ok := e.Attrs["weight"].(int); !ok || w != 7 {
		t.Errorf("weight = %#v, want int 7", e.Attrs["weight"])
	}
}

func TestReadGraphRejectsDanglingEdge(t *testing.T) {
	in := `{"nodes":[{"id":"a"}],"edges":[{"source":"a","target":"missing"}]}`
	_, err := ReadGraph(strings.NewReader(in))
	if !errors.Is(err, errors.ErrCodeUnknownNode) {
		t.Errorf("ReadGraph error = %v, want DATA_UNKNOWN_NODE", err)
	}
}
