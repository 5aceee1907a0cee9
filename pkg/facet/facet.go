// Package facet splits a graph into panels for small-multiple plots.
//
// Decomposers never mutate the input graph; each panel carries its own
// graph rebuilt from the relevant nodes and edges, plus a label naming
// the slice of data it shows. Panel order follows first appearance of
// the group values in the source graph.
package facet

import (
	"fmt"

	"github.com/glyphworks/glyphviz/pkg/errors"
	"github.com/glyphworks/glyphviz/pkg/graph"
	"github.com/glyphworks/glyphviz/pkg/table"
)

// Panel is one small-multiple: a subgraph and its display label.
type Panel struct {
	Graph graph.Graph
	Label string
}

// EdgeGroups partitions edges by an edge attribute. Every panel keeps
// the full node set so node positions stay comparable across panels;
// only the edges differ.
func EdgeGroups(g graph.Graph, by string) ([]Panel, error) {
	groups, err := groupValues(attrOf(g.Edges(), by), by)
	if err != nil {
		return nil, err
	}

	panels := make([]Panel, 0, len(groups))
	for _, gv := range groups {
		b := builderFor(g)
		for _, n := range g.Nodes() {
			if err := b.AddNode(n.ID, n.Attrs); err != nil {
				return nil, err
			}
		}
		for _, e := range g.Edges() {
			if table.Key(e.Attrs[by]) != gv.key {
				continue
			}
			if err := b.AddEdge(e.Source, e.Target, e.Attrs); err != nil {
				return nil, err
			}
		}
		panels = append(panels, Panel{Graph: b, Label: gv.label})
	}
	return panels, nil
}

// NodeGroups partitions nodes by a node attribute. Each panel holds
// one group's induced subgraph: its nodes plus the edges with both
// endpoints inside the group.
func NodeGroups(g graph.Graph, by string) ([]Panel, error) {
	groups, err := groupValues(nodeAttrOf(g.Nodes(), by), by)
	if err != nil {
		return nil, err
	}

	panels := make([]Panel, 0, len(groups))
	for _, gv := range groups {
		panel, err := induced(g, func(n graph.Node) bool {
			return table.Key(n.Attrs[by]) == gv.key
		})
		if err != nil {
			return nil, err
		}
		panels = append(panels, Panel{Graph: panel, Label: gv.label})
	}
	return panels, nil
}

// HiveTriplets enumerates every three-group combination of a node
// attribute, in first-seen order, so each hive panel gets exactly
// three axes. Fewer than three groups yield a single panel with all
// of them.
func HiveTriplets(g graph.Graph, by string) ([]Panel, error) {
	groups, err := groupValues(nodeAttrOf(g.Nodes(), by), by)
	if err != nil {
		return nil, err
	}

	combos := tripletCombos(len(groups))
	panels := make([]Panel, 0, len(combos))
	for _, combo := range combos {
		keys := make(map[string]struct{}, len(combo))
		label := ""
		for _, gi := range combo {
			keys[groups[gi].key] = struct{}{}
			if label != "" {
				label += ", "
			}
			label += groups[gi].label
		}
		panel, err := induced(g, func(n graph.Node) bool {
			_, ok := keys[table.Key(n.Attrs[by])]
			return ok
		})
		if err != nil {
			return nil, err
		}
		panels = append(panels, Panel{Graph: panel, Label: label})
	}
	return panels, nil
}

// tripletCombos lists index triples {i<j<k} in lexicographic order.
// With fewer than three indices the single all-index combination is
// returned.
func tripletCombos(n int) [][]int {
	if n == 0 {
		return nil
	}
	if n <= 3 {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return [][]int{all}
	}
	var out [][]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				out = append(out, []int{i, j, k})
			}
		}
	}
	return out
}

// induced builds the subgraph of nodes matched by keep plus all edges
// whose endpoints both survive.
func induced(g graph.Graph, keep func(graph.Node) bool) (graph.Graph, error) {
	b := builderFor(g)
	for _, n := range g.Nodes() {
		if !keep(n) {
			continue
		}
		if err := b.AddNode(n.ID, n.Attrs); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		if !b.HasNode(e.Source) || !b.HasNode(e.Target) {
			continue
		}
		if err := b.AddEdge(e.Source, e.Target, e.Attrs); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func builderFor(g graph.Graph) *graph.Builder {
	if g.Directed() {
		return graph.NewDirected()
	}
	return graph.New()
}

type groupValue struct {
	key   string
	label string
}

// groupValues collects the distinct values of an attribute in
// first-seen order. An attribute no row defines is a configuration
// error.
func groupValues(values []any, by string) ([]groupValue, error) {
	if by == "" {
		return nil, errors.New(errors.ErrCodeMissingAttribute, "facet attribute not set")
	}
	seen := make(map[string]struct{})
	var out []groupValue
	defined := false
	for _, v := range values {
		if v == nil {
			continue
		}
		defined = true
		key := table.Key(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, groupValue{key: key, label: fmt.Sprintf("%v", v)})
	}
	if !defined {
		return nil, errors.New(errors.ErrCodeMissingAttribute,
			"no node or edge defines facet attribute %q", by)
	}
	return out, nil
}

func attrOf(edges []graph.Edge, by string) []any {
	out := make([]any, len(edges))
	for i, e := range edges {
		out[i] = e.Attrs[by]
	}
	return out
}

func nodeAttrOf(nodes []graph.Node, by string) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = n.Attrs[by]
	}
	return out
}
