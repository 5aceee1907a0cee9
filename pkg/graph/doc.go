// Package graph defines the input-graph boundary of the visualization
// pipeline.
//
// The pipeline does not own a graph data structure; it consumes anything
// satisfying the [Graph] interface: a stable iteration over nodes with
// scalar attributes and over (source, target) edges with scalar attributes.
// [Builder] is the reference in-memory implementation, preserving insertion
// order so downstream layouts are deterministic.
//
// JSON serialization (ReadGraph/WriteGraph) round-trips a Builder for CLI
// usage; packages under graph/ adapt third-party graph libraries to the
// same interface.
package graph
