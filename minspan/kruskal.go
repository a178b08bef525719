package minspan

import (
	"cmp"
	"sort"

	"github.com/katalvlaran/spanpath/core"
	"github.com/katalvlaran/spanpath/unionfind"
)

// Kruskal computes a minimum spanning tree — or, on disconnected input, a
// minimum spanning forest — over the given node set and edge list.
//
// Steps:
//  1. Stable-sort a copy of the edges by ascending weight. Equal weights
//     keep their input order; this tie-break decides which of several
//     equal-weight minimum spanning trees is produced, so it is a documented
//     policy, not an accident.
//  2. Initialize a disjoint set over all nodes.
//  3. Iterate sorted edges: an edge whose endpoints are already connected is
//     rejected (it would close a cycle); otherwise it is accepted into the
//     result and its endpoints' sets are merged.
//  4. Stop early once |V|−1 edges are accepted — the spanning tree of a
//     connected graph is then complete. A disconnected input simply exhausts
//     the edge list and yields a forest with fewer edges; the accepted count
//     equals |V| minus the number of connected components.
//
// Self-loops can never join two components and are skipped outright. An edge
// referencing a node absent from the node set surfaces
// unionfind.ErrUnknownElement immediately.
//
// Returns the accepted edges in acceptance order and their total weight.
// Complexity: O(E log E + α(V)·E) time, O(V + E) space.
func Kruskal[V cmp.Ordered](nodes []V, edges []core.Edge[V]) ([]core.Edge[V], float64, error) {
	// An empty node set spans nothing: the empty forest.
	if len(nodes) == 0 {
		return []core.Edge[V]{}, 0, nil
	}

	// 1. Sort a copy — the caller's slice must stay untouched. The stable
	//    sort keeps equal-weight edges in input order (the tie-break policy).
	sorted := make([]core.Edge[V], len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 2. One disjoint set per call, discarded on return.
	ds := unionfind.New(nodes)

	// 3. Greedy accept/reject over the sorted edges.
	forest := make([]core.Edge[V], 0, len(nodes)-1)
	var totalWeight float64
	for _, e := range sorted {
		if e.From == e.To {
			// Self-loop: cannot be part of any spanning tree.
			continue
		}

		merged, err := ds.Union(e.From, e.To)
		if err != nil {
			// Unknown endpoint: invalid input, reported at the point of detection.
			return nil, 0, err
		}
		if !merged {
			// Endpoints already share a component: accepting would close a cycle.
			continue
		}

		forest = append(forest, e)
		totalWeight += e.Weight

		// 4. |V|−1 accepted edges complete the spanning tree of a connected graph.
		if len(forest) == len(nodes)-1 {
			break
		}
	}

	return forest, totalWeight, nil
}
