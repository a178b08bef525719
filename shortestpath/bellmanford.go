package shortestpath

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/spanpath/core"
)

// BellmanFord computes shortest distances from source to all other vertices
// in the weighted graph g. Unlike Dijkstra it supports negative edge weights
// and detects negative-weight cycles reachable from the source.
//
// Returns:
//
//   - dist: map from vertex to minimum distance (Unreachable if no path exists).
//   - prev: map from vertex to its predecessor on the shortest path; absent
//     key means no predecessor.
//   - negCycle: true if a negative-weight cycle is reachable from source.
//     When true, dist and prev are not well-defined and must not be trusted
//     or handed to Reconstruct.
//   - err: error if g is nil or source is not a vertex of g.
//
// Algorithm: |V|−1 full passes over the edge list, each attempting to relax
// every edge (u, v, w): when dist[u] is finite and dist[u]+w < dist[v], set
// dist[v] and prev[v] together. The bound is exact — a finite shortest path
// in a cycle-free graph uses at most |V|−1 edges — so the passes always
// propagate the optimum. A pass that relaxes nothing ends the loop early;
// whenever that happens a fixed point was reached and further passes could
// not change anything, so results are observably identical.
//
// Complexity: O(V·E) time, O(V) space. Fully deterministic.
func BellmanFord[V cmp.Ordered](g *core.Graph[V], source V) (map[V]float64, map[V]V, bool, error) {
	// 1) Validate graph is non-nil.
	if g == nil {
		return nil, nil, false, ErrNilGraph
	}

	// 2) Validate source exists in the graph.
	if !g.HasVertex(source) {
		return nil, nil, false, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	// 3) Initialize distances to the Unreachable sentinel, source to 0.
	vertices := g.Vertices()
	edges := g.Edges()
	dist := make(map[V]float64, len(vertices))
	prev := make(map[V]V, len(vertices))
	for _, v := range vertices {
		dist[v] = Unreachable
	}
	dist[source] = 0

	// 4) Relax all edges |V|−1 times. Edges whose tail is still unreachable
	//    cannot relax anything; skipping them also keeps +Inf arithmetic out.
	for pass := 1; pass < len(vertices); pass++ {
		relaxed := false
		for _, e := range edges {
			if IsUnreachable(dist[e.From]) {
				continue
			}
			if newDist := dist[e.From] + e.Weight; newDist < dist[e.To] {
				dist[e.To] = newDist
				prev[e.To] = e.From
				relaxed = true
			}
		}
		// Fixed point: no edge relaxed this pass, none will relax later.
		if !relaxed {
			break
		}
	}

	// 5) Detection pass: any edge that still relaxes proves a negative-weight
	//    cycle reachable from the source.
	for _, e := range edges {
		if IsUnreachable(dist[e.From]) {
			continue
		}
		if dist[e.From]+e.Weight < dist[e.To] {
			return dist, prev, true, nil
		}
	}

	return dist, prev, false, nil
}
