package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/glyphworks/glyphviz/pkg/cache"
	"github.com/glyphworks/glyphviz/pkg/graph"
	"github.com/glyphworks/glyphviz/pkg/observability"
	"github.com/glyphworks/glyphviz/pkg/plot"
	"github.com/glyphworks/glyphviz/pkg/render/sink"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the complete load → plot → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if opts.Logger != nil {
		r = &Runner{Cache: r.Cache, Keyer: r.Keyer, Logger: opts.Logger}
	}

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Load
	loadStart := time.Now()
	g, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Graph = g
	result.Stats.LoadTime = time.Since(loadStart)

	nodes := len(g.Nodes())
	edges := len(g.Edges())
	result.Stats.NodeCount = nodes
	result.Stats.EdgeCount = edges

	if data, err := graph.MarshalGraph(g); err == nil {
		result.GraphHash = cache.Hash(data)
	}

	r.Logger.Info("loaded graph",
		"nodes", nodes,
		"edges", edges,
		"duration", result.Stats.LoadTime)

	// Stage 2: Plot
	plotStart := time.Now()
	p, err := r.BuildPlot(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}
	result.Plot = p
	result.Stats.PlotTime = time.Since(plotStart)

	for _, w := range p.Warnings {
		r.Logger.Warn("degenerate encoding input", "detail", w.String())
	}
	r.Logger.Info("assembled plot",
		"form", opts.Form,
		"duration", result.Stats.PlotTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, p, result.GraphHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load returns the input graph, reading it from disk when needed.
func (r *Runner) Load(ctx context.Context, opts Options) (graph.Graph, error) {
	source := opts.Input
	if opts.Graph != nil {
		source = "in-memory"
	}
	start := time.Now()
	observability.Pipeline().OnExtractStart(ctx, source)

	g := opts.Graph
	var err error
	if g == nil {
		g, err = graph.ReadGraphFile(opts.Input)
	}

	nodes, edges := 0, 0
	if g != nil {
		nodes, edges = len(g.Nodes()), len(g.Edges())
	}
	observability.Pipeline().OnExtractComplete(ctx, source, nodes, edges, time.Since(start), err)
	return g, err
}

// BuildPlot assembles the drawable plot for the configured form.
func (r *Runner) BuildPlot(ctx context.Context, g graph.Graph, opts Options) (*plot.Plot, error) {
	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.Form, len(g.Nodes()))

	p, err := buildPlot(g, opts.Form, opts.Plot)

	observability.Pipeline().OnLayoutComplete(ctx, opts.Form, time.Since(start), err)
	return p, err
}

// RenderWithCacheInfo renders every requested format, serving from the
// artifact cache when possible, and reports whether all formats hit.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, p *plot.Plot, graphHash string, opts Options) (map[string][]byte, bool, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := graphHash != "" && !opts.Refresh

	if allCached {
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(graphHash, opts.Form, format, opts.Plot)
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				allCached = false
				break
			}
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if allCached {
			return artifacts, true, nil
		}
	}

	for _, format := range opts.Formats {
		data, err := r.renderFormat(ctx, p, format)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = data

		if graphHash != "" {
			key := r.Keyer.ArtifactKey(graphHash, opts.Form, format, opts.Plot)
			if err := r.Cache.Set(ctx, key, data, TTLArtifact); err == nil {
				observability.Cache().OnCacheSet(ctx, "artifact", len(data))
			}
		}
	}
	return artifacts, false, nil
}

func (r *Runner) renderFormat(ctx context.Context, p *plot.Plot, format string) ([]byte, error) {
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, format)

	var data []byte
	var err error
	switch format {
	case "svg":
		data = sink.RenderSVG(p)
	case "png":
		data, err = sink.RenderPNG(p)
	case "pdf":
		data, err = sink.RenderPDF(p)
	}

	observability.Pipeline().OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	return data, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
