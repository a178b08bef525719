// Package core provides the fundamental graph representation shared by every
// algorithm package in spanpath: a generic adjacency-list Graph plus its
// derivable flat edge view.
//
// Overview:
//
//   - Graph[V] maps each vertex to its outgoing (neighbor, weight) list and
//     additionally records every inserted arc in a flat edge list.
//   - Vertex identifiers are any ordered comparable type (cmp.Ordered). The
//     total order is what makes Vertices() deterministic and gives Kruskal a
//     stable, documented tie-break.
//   - Edges are directed arcs From→To. Undirected semantics come from
//     inserting both (u,v,w) and (v,u,w); construct the graph with
//     WithUndirected() to have AddEdge do that for you.
//   - Weights are float64 and may be negative; individual algorithms state
//     their own weight preconditions (Dijkstra rejects negative weights,
//     Bellman–Ford accepts them).
//
// Determinism:
//
//   - Vertices() returns identifiers in ascending order.
//   - Edges() returns arcs in insertion order. Kruskal's stable sort relies
//     on exactly this order to break equal-weight ties predictably.
//   - Neighbors(v) returns a vertex's adjacency in insertion order.
//
// Mutability contract:
//
//	Graph carries no locking and no hidden state. Build it up front, then
//	treat it as read-only for the duration of any algorithm run. Every
//	accessor returns a fresh copy, so results cannot alias internal storage.
//
// Errors (sentinel):
//
//	– ErrVertexNotFound if an operation references a vertex absent from the graph.
//	– ErrNilGraph       if a nil *Graph reaches an operation that requires one.
//
// Complexity: AddVertex/AddEdge/HasVertex are O(1) amortized; Vertices() is
// O(V log V) for the sort; Edges() and Neighbors(v) are linear copies.
package core
