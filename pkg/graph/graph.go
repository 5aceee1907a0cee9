package graph

import (
	"slices"

	"github.com/glyphworks/glyphviz/pkg/errors"
)

// Attrs stores scalar attribute values keyed by attribute name.
// Values are strings, numbers (int or float64), or booleans.
// Attrs maps are never nil after AddNode/AddEdge.
type Attrs map[string]any

// Node is a graph vertex: an opaque identifier plus named attributes.
type Node struct {
	ID    string
	Attrs Attrs
}

// Edge is a connection between two nodes plus named attributes.
// For undirected graphs the (Source, Target) order is the insertion order.
type Edge struct {
	Source string
	Target string
	Attrs  Attrs
}

// Graph is the boundary interface consumed by the layout and encoding
// pipeline. Implementations must return nodes and edges in a stable order:
// two calls on an unmodified graph yield identical sequences. The pipeline
// never mutates a Graph it is handed.
type Graph interface {
	// Directed reports whether edges are directional. Matrix rendering
	// mirrors cells only for undirected graphs.
	Directed() bool
	// Nodes returns all nodes in stable order.
	Nodes() []Node
	// Edges returns all edges in stable order.
	Edges() []Edge
}

// Builder is an in-memory Graph implementation that preserves insertion
// order. The zero value is not usable - use New or NewDirected.
//
// Builder is not safe for concurrent mutation; concurrent reads are fine
// once construction is complete.
type Builder struct {
	directed bool
	nodes    []Node
	edges    []Edge
	index    map[string]int // node ID -> position in nodes
}

// New creates an empty undirected graph builder.
func New() *Builder {
	return &Builder{index: make(map[string]int)}
}

// NewDirected creates an empty directed graph builder.
func NewDirected() *Builder {
	return &Builder{directed: true, index: make(map[string]int)}
}

// AddNode adds a node with the given attributes.
// Returns a DATA_DUPLICATE_NODE error if the identifier is already present,
// or a CONFIG_BAD_VALUE error for an empty identifier.
func (b *Builder) AddNode(id string, attrs Attrs) error {
	if id == "" {
		return errors.New(errors.ErrCodeBadValue, "node ID must not be empty")
	}
	if _, exists := b.index[id]; exists {
		return errors.New(errors.ErrCodeDuplicateNode, "node %q already exists", id)
	}
	if attrs == nil {
		attrs = Attrs{}
	}
	b.index[id] = len(b.nodes)
	b.nodes = append(b.nodes, Node{ID: id, Attrs: attrs})
	return nil
}

// AddEdge adds an edge between two existing nodes.
// Returns a DATA_UNKNOWN_NODE error when either endpoint has not been added.
func (b *Builder) AddEdge(source, target string, attrs Attrs) error {
	if _, ok := b.index[source]; !ok {
		return errors.New(errors.ErrCodeUnknownNode, "edge source %q is not a node", source)
	}
	if _, ok := b.index[target]; !ok {
		return errors.New(errors.ErrCodeUnknownNode, "edge target %q is not a node", target)
	}
	if attrs == nil {
		attrs = Attrs{}
	}
	b.edges = append(b.edges, Edge{Source: source, Target: target, Attrs: attrs})
	return nil
}

// Directed reports whether the graph is directed.
func (b *Builder) Directed() bool { return b.directed }

// Nodes returns all nodes in insertion order.
// The returned slice is a copy; attribute maps are shared.
func (b *Builder) Nodes() []Node { return slices.Clone(b.nodes) }

// Edges returns all edges in insertion order.
// The returned slice is a copy; attribute maps are shared.
func (b *Builder) Edges() []Edge { return slices.Clone(b.edges) }

// NodeCount returns the number of nodes.
func (b *Builder) NodeCount() int { return len(b.nodes) }

// EdgeCount returns the number of edges.
func (b *Builder) EdgeCount() int { return len(b.edges) }

// Node returns the node with the given ID and true, or a zero Node and
// false when absent.
func (b *Builder) Node(id string) (Node, bool) {
	i, ok := b.index[id]
	if !ok {
		return Node{}, false
	}
	return b.nodes[i], true
}

// HasNode reports whether a node with the given ID exists.
func (b *Builder) HasNode(id string) bool {
	_, ok := b.index[id]
	return ok
}
