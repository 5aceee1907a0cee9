package pipeline

import (
	"context"
	"testing"

	"github.com/glyphworks/glyphviz/pkg/cache"
	"github.com/glyphworks/glyphviz/pkg/errors"
	"github.com/glyphworks/glyphviz/pkg/graph"
	"github.com/glyphworks/glyphviz/pkg/plot"
)

func demoGraph(t *testing.T) *graph.Builder {
	t.Helper()
	g := graph.New()
	nodes := []struct {
		id    string
		group string
	}{
		{"A", "x"}, {"B", "x"}, {"C", "y"}, {"D", "y"},
	}
	for _, n := range nodes {
		if err := g.AddNode(n.id, graph.Attrs{"group": n.group}); err != nil {
			t.Fatalf("AddNode(%s): %v", n.id, err)
		}
	}
	edges := [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], graph.Attrs{"weight": 2.0}); err != nil {
			t.Fatalf("AddEdge(%s, %s): %v", e[0], e[1], err)
		}
	}
	return g
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode errors.Code
	}{
		{
			name:     "no input",
			opts:     Options{Form: "circos"},
			wantCode: errors.ErrCodeBadValue,
		},
		{
			name:     "unknown form",
			opts:     Options{Input: "g.json", Form: "starburst"},
			wantCode: errors.ErrCodeBadValue,
		},
		{
			name:     "unknown format",
			opts:     Options{Input: "g.json", Form: "arc", Formats: []string{"bmp"}},
			wantCode: errors.ErrCodeBadFormat,
		},
		{
			name: "valid",
			opts: Options{Input: "g.json", Form: "arc", Formats: []string{"svg", "png"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("ValidateAndSetDefaults() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Fatalf("ValidateAndSetDefaults() = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestValidateDefaultsFormat(t *testing.T) {
	opts := Options{Input: "g.json", Form: "arc"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() = %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != "svg" {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
}

func TestExecuteInMemory(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Graph:   demoGraph(t),
		Form:    "circos",
		Formats: []string{"svg"},
		Plot: plot.Options{
			GroupBy:     "group",
			NodeColorBy: "group",
			EdgeWidthBy: "weight",
		},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Stats.NodeCount != 4 {
		t.Errorf("NodeCount = %d, want 4", result.Stats.NodeCount)
	}
	if result.Stats.EdgeCount != 3 {
		t.Errorf("EdgeCount = %d, want 3", result.Stats.EdgeCount)
	}
	if result.GraphHash == "" {
		t.Error("GraphHash is empty")
	}
	if result.Plot == nil || len(result.Plot.Nodes) != 4 {
		t.Fatalf("Plot missing or wrong node count: %+v", result.Plot)
	}
	if len(result.Artifacts["svg"]) == 0 {
		t.Error("svg artifact is empty")
	}
	if result.CacheInfo.RenderHit {
		t.Error("RenderHit = true on first run with NullCache")
	}
}

func TestExecuteAllFormats(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Graph:   demoGraph(t),
		Form:    "arc",
		Formats: []string{"svg", "png", "pdf"},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, format := range []string{"svg", "png", "pdf"} {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("%s artifact is empty", format)
		}
	}
}

func TestExecuteRenderCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil, nil)
	defer runner.Close()

	opts := Options{
		Graph:   demoGraph(t),
		Form:    "matrix",
		Formats: []string{"svg"},
	}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run reported a render cache hit")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run did not hit the render cache")
	}
	if string(second.Artifacts["svg"]) != string(first.Artifacts["svg"]) {
		t.Error("cached artifact differs from original")
	}

	opts.Refresh = true
	third, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("refresh Execute() error = %v", err)
	}
	if third.CacheInfo.RenderHit {
		t.Error("refresh run reported a render cache hit")
	}
}

func TestExecuteBadForm(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Options{
		Graph: demoGraph(t),
		Form:  "sunburst",
	})
	if !errors.Is(err, errors.ErrCodeBadValue) {
		t.Fatalf("Execute() = %v, want code %s", err, errors.ErrCodeBadValue)
	}
}

func TestExecuteMissingInputFile(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Options{
		Input: "/nonexistent/graph.json",
		Form:  "arc",
	})
	if err == nil {
		t.Fatal("Execute() succeeded for a missing input file")
	}
}
