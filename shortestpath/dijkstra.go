package shortestpath

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/spanpath/core"
	"github.com/katalvlaran/spanpath/pqueue"
)

// Dijkstra computes shortest distances from source to all other vertices in
// the weighted graph g, which must contain no negative edge weights.
//
// Returns:
//
//   - dist: map from vertex to minimum distance (Unreachable if no path exists).
//   - prev: map from vertex to its predecessor on the shortest path; absent
//     key means no predecessor (the source itself, or an unreached vertex).
//   - err:  error if inputs are invalid or a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrVertexNotFound).
//  3. No edge in g may have negative weight (ErrNegativeWeight, O(E) pre-scan).
//
// Options customization:
//
//   - WithMaxDistance(x): vertices with distance > x are not finalized (x ≥ 0).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) — the frontier holds up to E entries under lazy deletion.
func Dijkstra[V cmp.Ordered](g *core.Graph[V], source V, opts ...Option) (map[V]float64, map[V]V, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 3) Validate source exists in the graph.
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	// 4) Pre-scan all edges to detect negative weights. Fail fast: the
	//    eager-finalization invariant is void once any weight is negative.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 5) Prepare per-call state: distance/predecessor tables, the finalized
	//    set, and the lazy-deletion frontier. All of it is discarded on return.
	n := g.VertexCount()
	r := &dijkstraRun[V]{
		g:         g,
		options:   cfg,
		source:    source,
		dist:      make(map[V]float64, n),
		prev:      make(map[V]V, n),
		finalized: make(map[V]bool, n),
		frontier:  pqueue.NewMin[V](),
	}

	// 6) Seed the state and run the main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// dijkstraRun holds the mutable state for a single Dijkstra execution.
type dijkstraRun[V cmp.Ordered] struct {
	g         *core.Graph[V]  // input graph; read-only during the run
	options   Options         // distance cap configuration
	source    V               // fixed source vertex
	dist      map[V]float64   // vertex → current best distance from source
	prev      map[V]V         // vertex → predecessor on the best-known path
	finalized map[V]bool      // vertex → distance is final, skip stale entries
	frontier  *pqueue.Min[V]  // lazy-deletion min-heap of (distance, vertex)
}

// init seeds every vertex at the Unreachable sentinel, sets the source to
// zero, and pushes the source onto the frontier.
func (r *dijkstraRun[V]) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = Unreachable
	}
	r.dist[r.source] = 0
	r.frontier.Push(0, r.source)
}

// process repeatedly extracts the minimum-distance unfinalized vertex,
// finalizes it, and relaxes its outgoing edges.
//
// Loop termination: the frontier empties (every reachable vertex finalized),
// or the minimum distance on the frontier exceeds the MaxDistance cap.
func (r *dijkstraRun[V]) process() error {
	for r.frontier.Len() > 0 {
		// 1) Pop the smallest-distance entry.
		item, _ := r.frontier.Pop()
		u := item.Value

		// 2) Lazy deletion: a finalized vertex was already popped at a
		//    better distance, so this entry is stale — discard unprocessed.
		if r.finalized[u] {
			continue
		}

		// 3) Past the cap, nothing nearer can ever surface again: stop.
		if item.Priority > r.options.MaxDistance {
			break
		}

		// 4) First extraction at minimum priority is final. With all weights
		//    non-negative, no later relaxation can improve dist[u].
		r.finalized[u] = true

		// 5) Relax all outgoing edges of u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each outgoing arc (u, v, w) and, when dist[u]+w strictly
// improves dist[v], updates dist[v] and prev[v] together and pushes the new
// candidate. Superseded frontier entries stay queued and are discarded later.
func (r *dijkstraRun[V]) relax(u V) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("shortestpath: neighbors of %v: %w", u, err)
	}

	for _, nb := range neighbors {
		// Finalized endpoints cannot improve: their distance is already minimal.
		if r.finalized[nb.To] {
			continue
		}

		newDist := r.dist[u] + nb.Weight

		// Respect the exploration cap.
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict improvement only; equal candidates would just pile up stale entries.
		if newDist >= r.dist[nb.To] {
			continue
		}

		// Update distance and predecessor atomically, then push the candidate.
		r.dist[nb.To] = newDist
		r.prev[nb.To] = u
		r.frontier.Push(newDist, nb.To)
	}

	return nil
}
