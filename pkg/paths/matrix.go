package paths

import (
	"github.com/glyphworks/glyphviz/pkg/errors"
	"github.com/glyphworks/glyphviz/pkg/graph"
	"github.com/glyphworks/glyphviz/pkg/layout"
)

// Matrix marks the adjacency cell for each edge. Undirected edges fill
// both the (source, target) cell and its mirror so the matrix stays
// symmetric.
func Matrix(edges []graph.Edge, cells layout.CellMap, directed bool) ([]EdgePath, error) {
	out := make([]EdgePath, 0, len(edges))
	for _, e := range edges {
		src, ok := cells[e.Source]
		if !ok {
			return nil, errors.New(errors.ErrCodeDanglingEdge,
				"edge %s->%s: no cell for source %q", e.Source, e.Target, e.Source)
		}
		dst, ok := cells[e.Target]
		if !ok {
			return nil, errors.New(errors.ErrCodeDanglingEdge,
				"edge %s->%s: no cell for target %q", e.Source, e.Target, e.Target)
		}

		out = append(out, EdgePath{
			Source: e.Source,
			Target: e.Target,
			Shape:  MatrixCell{Row: src.Row, Col: dst.Col},
		})
		if !directed && src.Row != dst.Col {
			out = append(out, EdgePath{
				Source: e.Target,
				Target: e.Source,
				Shape:  MatrixCell{Row: dst.Row, Col: src.Col},
			})
		}
	}
	return out, nil
}
