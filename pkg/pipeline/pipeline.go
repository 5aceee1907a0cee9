// Package pipeline provides the load → plot → render pipeline.
//
// This package centralizes the steps between a graph file on disk and
// rendered artifacts, so the CLI and library callers share one code
// path with consistent caching, logging, and instrumentation. The
// stages:
//
//  1. Load: read and validate the graph (JSON)
//  2. Plot: group, sort, lay out, and encode into a drawable plot
//  3. Render: draw the plot into each requested output format
//
// Rendered artifacts are cached keyed by graph content, plot form, and
// render options; loading and plotting are cheap enough to recompute.
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/glyphworks/glyphviz/pkg/errors"
	"github.com/glyphworks/glyphviz/pkg/graph"
	"github.com/glyphworks/glyphviz/pkg/plot"
)

// Cache TTL for rendered artifacts.
const TTLArtifact = 7 * 24 * time.Hour

// Forms supported by the pipeline.
var Forms = []string{"arc", "circos", "hive", "matrix", "geo", "parallel"}

// Formats supported by the render stage.
var Formats = []string{"svg", "png", "pdf"}

// Options configures one pipeline execution.
type Options struct {
	// Input is the path of the graph JSON file. Ignored when Graph is
	// set directly.
	Input string

	// Graph overrides Input with an already-loaded graph.
	Graph graph.Graph

	// Form selects the plot type, one of Forms.
	Form string

	// Formats lists the outputs to render, each one of Formats.
	// Empty defaults to svg.
	Formats []string

	// Plot carries the channel and geometry options.
	Plot plot.Options

	// Refresh skips cache reads, forcing a re-render.
	Refresh bool

	// Logger for stage progress. Nil uses the runner's logger.
	Logger *log.Logger
}

// ValidateAndSetDefaults checks the options and fills defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Graph == nil && o.Input == "" {
		return errors.New(errors.ErrCodeBadValue, "no input graph given")
	}
	if !contains(Forms, o.Form) {
		return errors.New(errors.ErrCodeBadValue, "unknown plot form %q", o.Form)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{"svg"}
	}
	for _, f := range o.Formats {
		if !contains(Formats, f) {
			return errors.New(errors.ErrCodeBadFormat, "unknown output format %q", f)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Result holds everything one pipeline execution produced.
type Result struct {
	Graph     graph.Graph
	GraphHash string
	Plot      *plot.Plot

	// Artifacts maps each requested format to its rendered bytes.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats records per-stage timings and input sizes.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LoadTime   time.Duration
	PlotTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo reports which stages were served from cache.
type CacheInfo struct {
	RenderHit bool
}

// buildPlot dispatches to the plot form's entry point.
func buildPlot(g graph.Graph, form string, opts plot.Options) (*plot.Plot, error) {
	switch form {
	case "arc":
		return plot.Arc(g, opts)
	case "circos":
		return plot.Circos(g, opts)
	case "hive":
		return plot.Hive(g, opts)
	case "matrix":
		return plot.Matrix(g, opts)
	case "geo":
		return plot.Geo(g, opts)
	case "parallel":
		return plot.Parallel(g, opts)
	}
	return nil, errors.New(errors.ErrCodeBadValue, "unknown plot form %q", form)
}
