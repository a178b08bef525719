// Package shortestpath provides two single-source shortest-path algorithms
// on weighted graphs, sharing one distance/predecessor data model, plus path
// reconstruction over that model.
//
// Algorithms provided:
//
//   - Dijkstra(g, source, opts...) — greedy relaxation for graphs with
//     non-negative weights. Vertices move Unvisited → Frontier → Finalized;
//     the first extraction of a vertex from the min-heap is final because no
//     later relaxation can improve it once all weights are non-negative.
//     Runs in O((V + E) log V) time, O(V + E) space (the heap holds up to
//     E entries under lazy deletion).
//
//   - BellmanFord(g, source) — iterative relaxation for general weights,
//     including negative ones. Performs |V|−1 full passes over the edge
//     list (any finite shortest path uses at most |V|−1 edges, so that many
//     passes always suffice), then one detection pass: if any edge still
//     relaxes, a negative-weight cycle is reachable from the source and the
//     returned flag is true — the distance and predecessor tables are then
//     not well-defined and must not be trusted. Runs in O(V·E) time. A pass
//     that relaxes nothing ends the loop early; the optimization never
//     changes observable results.
//
// Shared data model:
//
//   - dist: map from vertex to best-known distance from the source. Every
//     graph vertex has an entry; unreached vertices carry Unreachable
//     (positive infinity, which no finite weight can collide with).
//   - prev: map from vertex to its predecessor on the best-known path. An
//     absent key means "no predecessor" — the source, or an unreached vertex.
//     dist and prev entries are always updated together.
//
// Path reconstruction:
//
//	Reconstruct(dist, prev, target) walks prev back from target and reverses
//	the collected sequence. It fails with a defined error — never an
//	infinite loop — when the target is absent from the table, unreachable,
//	or the chain revisits a vertex (possible only if the caller ignored a
//	true negative-cycle flag, which must be checked before reconstruction).
//
// Preconditions:
//
//	Dijkstra's non-negativity requirement is validated eagerly: an O(E)
//	pre-scan rejects the graph with ErrNegativeWeight instead of silently
//	producing a wrong answer. BellmanFord has no weight precondition.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrVertexNotFound    if the source vertex does not exist in the graph.
//	– ErrNegativeWeight    if Dijkstra finds a negative edge weight.
//	– ErrBadMaxDistance    (via panic) if WithMaxDistance is given a negative cap.
//	– ErrTargetNotFound    if Reconstruct's target is absent from the distance table.
//	– ErrUnreachableTarget if Reconstruct's target carries the Unreachable sentinel.
//	– ErrPredecessorCycle  if Reconstruct detects a cycle in the predecessor chain.
//
// Example usage:
//
//	dist, prev, err := shortestpath.Dijkstra(g, "A")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := shortestpath.Reconstruct(dist, prev, "C")
//
// For runnable examples, see example_test.go in this package.
package shortestpath
