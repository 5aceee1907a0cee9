// Package table provides the row-oriented node and edge tables the layout
// and encoding pipeline operates on.
//
// A Table is derived fresh from a graph at the start of a plot call
// (FromNodes, FromEdges), holds no back-reference to the graph, and is
// never mutated in place: GroupAndSort and friends return new tables.
// Attribute columns are accessed through the checked Column API; asking
// for a column no row defines is a Configuration error, never a silent
// no-op.
//
// InferFamily classifies a column as categorical, ordinal, continuous, or
// divergent from its statistics alone, which drives the choice of palette
// and scale in pkg/encoding.
package table
