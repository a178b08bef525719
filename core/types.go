// Package core defines the central Graph, Edge, and Neighbor types.
//
// This file declares the data types, sentinel errors, and graph construction
// options. Graph methods live in graph.go.
package core

import (
	"cmp"
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNilGraph indicates a nil *Graph was passed to an operation that requires one.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Edge represents a weighted arc From→To.
//
// Edges are directed at the representation level; an undirected connection is
// simply the pair of arcs (u,v,w) and (v,u,w). Weight may be negative — each
// algorithm documents its own precondition on weights.
type Edge[V cmp.Ordered] struct {
	// From is the source vertex identifier.
	From V

	// To is the destination vertex identifier.
	To V

	// Weight is the cost of traversing this arc.
	Weight float64
}

// Neighbor is the adjacency-list view of an outgoing arc: the far endpoint
// and the weight, with the near endpoint implied by the list it lives in.
type Neighbor[V cmp.Ordered] struct {
	// To is the far endpoint of the arc.
	To V

	// Weight is the cost of traversing the arc.
	Weight float64
}

// graphConfig collects construction-time behavior flags. It is deliberately
// not generic so GraphOption stays free of type parameters.
type graphConfig struct {
	undirected bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*graphConfig)

// WithUndirected makes AddEdge insert both arcs (u,v,w) and (v,u,w), giving
// the graph undirected semantics. Without this option every AddEdge call
// inserts a single directed arc.
func WithUndirected() GraphOption {
	return func(c *graphConfig) { c.undirected = true }
}
