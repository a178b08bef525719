package core

import (
	"cmp"
	"fmt"
	"slices"
)

// Graph is the in-memory weighted-graph representation: an adjacency list
// over a fixed vertex set, plus the flat list of every inserted arc.
//
// Graph is pure data. It performs no locking and runs no algorithms; build
// it once, then treat it as read-only while any algorithm consumes it.
type Graph[V cmp.Ordered] struct {
	// undirected, when true, makes AddEdge insert the reverse arc as well.
	undirected bool

	// adjacency maps each vertex to its outgoing arcs in insertion order.
	adjacency map[V][]Neighbor[V]

	// edges records every inserted arc in insertion order. This is the
	// deterministic tie-break source for Kruskal's stable sort.
	edges []Edge[V]
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is directed. Complexity: O(1).
func NewGraph[V cmp.Ordered](opts ...GraphOption) *Graph[V] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V]{
		undirected: cfg.undirected,
		adjacency:  make(map[V][]Neighbor[V]),
	}
}

// Undirected reports whether AddEdge inserts both arcs of each connection.
func (g *Graph[V]) Undirected() bool { return g.undirected }

// AddVertex registers v with an empty adjacency list. Adding an existing
// vertex is a no-op, so callers may register vertices unconditionally.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) {
	if _, ok := g.adjacency[v]; ok {
		return
	}
	g.adjacency[v] = nil
}

// AddEdge inserts the arc from→to with the given weight, registering both
// endpoints if they are not yet present. On an undirected graph the reverse
// arc to→from is inserted as well, and both arcs appear in Edges().
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(from, to V, weight float64) {
	g.AddVertex(from)
	g.AddVertex(to)

	g.adjacency[from] = append(g.adjacency[from], Neighbor[V]{To: to, Weight: weight})
	g.edges = append(g.edges, Edge[V]{From: from, To: to, Weight: weight})

	if g.undirected {
		g.adjacency[to] = append(g.adjacency[to], Neighbor[V]{To: from, Weight: weight})
		g.edges = append(g.edges, Edge[V]{From: to, To: from, Weight: weight})
	}
}

// HasVertex reports whether v is registered in the graph. Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.adjacency[v]

	return ok
}

// Vertices returns all vertex identifiers in ascending order. The returned
// slice is owned by the caller. Complexity: O(V log V).
func (g *Graph[V]) Vertices() []V {
	ids := make([]V, 0, len(g.adjacency))
	for v := range g.adjacency {
		ids = append(ids, v)
	}
	slices.Sort(ids)

	return ids
}

// Edges returns every inserted arc in insertion order. On an undirected
// graph both arcs of each connection are present. The returned slice is
// owned by the caller. Complexity: O(E).
func (g *Graph[V]) Edges() []Edge[V] {
	out := make([]Edge[V], len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns v's outgoing arcs in insertion order, or
// ErrVertexNotFound if v is not registered. The returned slice is owned by
// the caller. Complexity: O(deg(v)).
func (g *Graph[V]) Neighbors(v V) ([]Neighbor[V], error) {
	adj, ok := g.adjacency[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	out := make([]Neighbor[V], len(adj))
	copy(out, adj)

	return out, nil
}

// VertexCount returns the number of registered vertices. Complexity: O(1).
func (g *Graph[V]) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of stored arcs (two per connection on an
// undirected graph). Complexity: O(1).
func (g *Graph[V]) EdgeCount() int { return len(g.edges) }
