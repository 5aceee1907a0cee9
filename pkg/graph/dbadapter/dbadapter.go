// Package dbadapter exposes a github.com/dominikbraun/graph graph through
// the glyphviz graph boundary interface.
//
// dominikbraun/graph stores vertices and edges in hash maps, so it has no
// meaningful insertion order. The adapter therefore presents nodes in
// sorted-hash order and edges in sorted (source, target) order, which keeps
// layouts deterministic across calls on the same graph.
//
// Vertex and edge attributes come through as string values. A non-zero
// vertex or edge weight is surfaced under the "weight" attribute as an int,
// so it can drive size, alpha, or line-width encodings.
package dbadapter

import (
	"cmp"
	"fmt"
	"slices"

	dbgraph "github.com/dominikbraun/graph"

	"github.com/glyphworks/glyphviz/pkg/graph"
)

// Adapter wraps a string-hashed dominikbraun graph.
// The node and edge snapshots are taken once at construction; mutate the
// underlying graph only before wrapping.
type Adapter struct {
	directed bool
	nodes    []graph.Node
	edges    []graph.Edge
}

var _ graph.Graph = (*Adapter)(nil)

// Wrap snapshots g into an Adapter.
// Returns an error when the underlying graph cannot be enumerated.
func Wrap(g dbgraph.Graph[string, string]) (*Adapter, error) {
	adj, err := g.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("adjacency map: %w", err)
	}

	hashes := make([]string, 0, len(adj))
	for h := range adj {
		hashes = append(hashes, h)
	}
	slices.Sort(hashes)

	a := &Adapter{directed: g.Traits().IsDirected}
	for _, h := range hashes {
		_, props, err := g.VertexWithProperties(h)
		if err != nil {
			return nil, fmt.Errorf("vertex %q: %w", h, err)
		}
		a.nodes = append(a.nodes, graph.Node{ID: h, Attrs: convertAttrs(props.Attributes, props.Weight)})
	}

	edges, err := g.Edges()
	if err != nil {
		return nil, fmt.Errorf("edges: %w", err)
	}
	slices.SortFunc(edges, func(x, y dbgraph.Edge[string]) int {
		if c := cmp.Compare(x.Source, y.Source); c != 0 {
			return c
		}
		return cmp.Compare(x.Target, y.Target)
	})
	for _, e := range edges {
		a.edges = append(a.edges, graph.Edge{
			Source: e.Source,
			Target: e.Target,
			Attrs:  convertAttrs(e.Properties.Attributes, e.Properties.Weight),
		})
	}
	return a, nil
}

// Directed reports whether the wrapped graph is directed.
func (a *Adapter) Directed() bool { return a.directed }

// Nodes returns the node snapshot in sorted-hash order.
func (a *Adapter) Nodes() []graph.Node { return slices.Clone(a.nodes) }

// Edges returns the edge snapshot in sorted (source, target) order.
func (a *Adapter) Edges() []graph.Edge { return slices.Clone(a.edges) }

func convertAttrs(attrs map[string]string, weight int) graph.Attrs {
	out := make(graph.Attrs, len(attrs)+1)
	for k, v := range attrs {
		out[k] = v
	}
	if weight != 0 {
		out["weight"] = weight
	}
	return out
}
