// Package minspan provides two algorithms for computing minimum spanning
// trees of undirected, weighted graphs: Kruskal (edge-sorted, union-find)
// and Prim (frontier growth, min-heap). Both share the accepted-edge /
// total-weight result model.
//
// Algorithms provided:
//
//   - Kruskal(nodes, edges) — sort all edges ascending by weight with a
//     STABLE sort, so equal weights keep their input order: this is the
//     documented tie-break policy, and it decides which of several
//     equal-weight minimum spanning trees is produced. Iterate the sorted
//     edges, rejecting any edge whose endpoints are already connected (it
//     would close a cycle, detected via unionfind) and accepting the rest.
//     Stops early once |V|−1 edges are accepted. On a DISCONNECTED input the
//     loop simply exhausts all edges and returns a minimum spanning FOREST
//     with fewer than |V|−1 edges — expected behavior, not an error.
//     Complexity: O(E log E + α(V)·E) ≈ O(E log V).
//
//   - Prim(g, root) — grow a single tree outward from root. A min-heap
//     holds frontier entries (weight, vertex, parent); the root is seeded
//     with a zero-weight, parentless entry. Entries whose vertex is already
//     in-tree are discarded at extraction (lazy deletion). Vertices not
//     reachable from root are silently excluded — a scope limitation of
//     frontier growth, not a defect; callers needing a full forest over a
//     disconnected graph run Prim once per component.
//     Complexity: O(E log V) time, O(V + E) space.
//
// Input shapes:
//
//	Kruskal takes an explicit node set and edge list — exactly the data the
//	edge-centric algorithm consumes. Prim takes a *core.Graph and a root,
//	since it walks adjacency. The Compute dispatcher bridges the two: it
//	derives Kruskal's inputs from the graph via Vertices() and Edges().
//
//	Both algorithms expect undirected semantics. A graph built with
//	core.WithUndirected() stores both arcs of every connection; Kruskal
//	handles the mirrored duplicates naturally (the second arc of a pair is
//	always rejected as a cycle), so Compute works on such graphs unchanged.
//
// Errors (sentinel):
//
//	– ErrNilGraph                 if the provided graph pointer is nil.
//	– ErrVertexNotFound           if Prim's root does not exist in the graph.
//	– ErrUnknownMethod            if Compute is given an unrecognized method name.
//	– unionfind.ErrUnknownElement if a Kruskal edge references a node absent
//	  from the node set — surfaced immediately, never silently skipped.
//
// For runnable examples, see example_test.go in this package.
package minspan
