package shortestpath

import "fmt"

// Reconstruct walks the predecessor table backwards from target and returns
// the path source…target in forward order.
//
// dist and prev must come from the same Dijkstra or BellmanFord run; dist
// supplies the vertex membership ("is target known at all?") and the
// reachability check, prev supplies the chain itself.
//
// Failure modes — each a defined error, never an infinite loop:
//
//   - ErrTargetNotFound: target has no entry in dist (it was not a vertex of
//     the graph the tables were computed on).
//   - ErrUnreachableTarget: target carries the Unreachable sentinel; there is
//     no path to walk.
//   - ErrPredecessorCycle: the chain revisited a vertex before terminating.
//     Only a table computed under a negative cycle can produce this; callers
//     must check BellmanFord's flag before reconstructing.
//
// Complexity: O(L) for a path of L vertices.
func Reconstruct[V comparable](dist map[V]float64, prev map[V]V, target V) ([]V, error) {
	// 1) Membership: a vertex the run never saw cannot be walked to.
	d, ok := dist[target]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrTargetNotFound, target)
	}

	// 2) Reachability: an infinite distance means no chain exists.
	if IsUnreachable(d) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachableTarget, target)
	}

	// 3) Walk backwards, collecting vertices until a node with no
	//    predecessor (the source) is reached. The seen set guards against
	//    cycles in a tainted table.
	path := make([]V, 0, 8)
	seen := make(map[V]bool, 8)
	node := target
	for {
		if seen[node] {
			return nil, fmt.Errorf("%w: revisited %v", ErrPredecessorCycle, node)
		}
		seen[node] = true
		path = append(path, node)

		p, hasPrev := prev[node]
		if !hasPrev {
			break
		}
		node = p
	}

	// 4) Reverse in place: the walk collected target→source.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
