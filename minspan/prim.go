package minspan

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/spanpath/core"
	"github.com/katalvlaran/spanpath/pqueue"
)

// frontierEntry is a candidate for joining the growing tree: a vertex plus
// the tree vertex it would attach under. The attachment weight travels as
// the priority of the queue entry. The seed entry for the root has no parent.
type frontierEntry[V cmp.Ordered] struct {
	node      V
	parent    V
	hasParent bool
}

// Prim computes the minimum spanning tree of the component of g containing
// root, growing outward from root with a lazy-deletion min-heap.
//
// Steps:
//  1. Validate: g non-nil (ErrNilGraph), root present (ErrVertexNotFound).
//  2. Seed the frontier with a zero-weight, parentless entry for root.
//  3. Repeatedly extract the minimum-weight entry. If its vertex is already
//     in-tree, discard it (lazy deletion). Otherwise place the vertex, and —
//     unless it is the parentless seed — accept the edge (parent, vertex,
//     weight) into the result. Then push a frontier entry for every arc from
//     the new vertex to a not-yet-in-tree neighbor.
//  4. Terminate when the frontier empties: every vertex reachable from root
//     is placed.
//
// Vertices not reachable from root are silently excluded from the result —
// frontier growth only ever sees root's component. Callers needing a full
// spanning forest over a disconnected graph invoke Prim once per component
// (or use Kruskal, which handles disconnection natively).
//
// Returns the accepted edges in discovery order and their total weight.
// Complexity: O(E log V) time, O(V + E) space — the frontier is bounded by
// the number of pushes, not the vertex count.
func Prim[V cmp.Ordered](g *core.Graph[V], root V) ([]core.Edge[V], float64, error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: %v", ErrVertexNotFound, root)
	}

	// 2. Per-call state: the in-tree set, the accumulating result, and the
	//    frontier seeded with the parentless root entry.
	inTree := make(map[V]bool, g.VertexCount())
	tree := make([]core.Edge[V], 0, g.VertexCount()-1)
	var totalWeight float64

	frontier := pqueue.NewMin[frontierEntry[V]]()
	frontier.Push(0, frontierEntry[V]{node: root})

	// 3. Main loop: place the cheapest frontier vertex, accept its edge,
	//    expand its neighborhood.
	for frontier.Len() > 0 {
		item, _ := frontier.Pop()
		entry := item.Value

		// Lazy deletion: a cheaper entry already placed this vertex.
		if inTree[entry.node] {
			continue
		}
		inTree[entry.node] = true

		// The root's seed entry carries no edge; every other placement does.
		if entry.hasParent {
			tree = append(tree, core.Edge[V]{From: entry.parent, To: entry.node, Weight: item.Priority})
			totalWeight += item.Priority
		}

		neighbors, err := g.Neighbors(entry.node)
		if err != nil {
			return nil, 0, err
		}
		for _, nb := range neighbors {
			if !inTree[nb.To] {
				frontier.Push(nb.Weight, frontierEntry[V]{node: nb.To, parent: entry.node, hasParent: true})
			}
		}
	}

	// 4. The frontier drained: root's entire component is spanned.
	return tree, totalWeight, nil
}
