package shortestpath_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanpath/core"
	"github.com/katalvlaran/spanpath/shortestpath"
)

// buildTriangle constructs the simple undirected, weighted triangle graph
//
//	A—B (weight 1), B—C (weight 2), A—C (weight 5).
//
// Shortest paths from A: dist[B]=1, dist[C]=3 via A→B→C.
func buildTriangle() *core.Graph[string] {
	g := core.NewGraph[string](core.WithUndirected())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	return g
}

// buildCityNetwork constructs a larger undirected graph with known shortest
// distances from A:
//
//	A --5-- B --1-- D --3-- F --4-- H
//	|       |       |               |
//	2       8       2               3
//	|       |       |               |
//	C --4-- E --1-- G ──────────────┘
//	|
//	└──6── D  (edge C-D)
func buildCityNetwork() *core.Graph[string] {
	g := core.NewGraph[string](core.WithUndirected())
	g.AddEdge("A", "B", 5)
	g.AddEdge("A", "C", 2)
	g.AddEdge("B", "D", 1)
	g.AddEdge("B", "F", 8)
	g.AddEdge("C", "E", 4)
	g.AddEdge("C", "D", 6)
	g.AddEdge("D", "F", 3)
	g.AddEdge("D", "G", 2)
	g.AddEdge("E", "G", 1)
	g.AddEdge("F", "H", 4)
	g.AddEdge("G", "H", 3)

	return g
}

// buildRandomGraph creates a connected, undirected, weighted graph with n
// vertices and edgesCount total connections: a spanning chain guarantees
// connectivity, then extra random edges are layered on. The generator is
// seeded deterministically for reproducibility.
func buildRandomGraph(n, edgesCount int) *core.Graph[string] {
	g := core.NewGraph[string](core.WithUndirected())
	r := rand.New(rand.NewSource(42))

	name := func(i int) string { return fmt.Sprintf("V%02d", i) }

	// Chain V00—V01—…—V(n-1) with weights in [1, 10).
	for i := 1; i < n; i++ {
		g.AddEdge(name(i-1), name(i), 1+9*r.Float64())
	}

	// Extra random edges; self-loops are skipped, parallel edges tolerated.
	for added := n - 1; added < edgesCount; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		g.AddEdge(name(u), name(v), 1+99*r.Float64())
		added++
	}

	return g
}

// bruteForceDistances enumerates every simple path from source by DFS and
// returns the minimum total weight per vertex. Exponential, so only for
// small cross-check graphs.
func bruteForceDistances(g *core.Graph[string], source string) map[string]float64 {
	dist := make(map[string]float64)
	for _, v := range g.Vertices() {
		dist[v] = shortestpath.Unreachable
	}

	visited := make(map[string]bool)
	var walk func(u string, cost float64)
	walk = func(u string, cost float64) {
		if cost < dist[u] {
			dist[u] = cost
		}
		visited[u] = true
		neighbors, _ := g.Neighbors(u)
		for _, nb := range neighbors {
			if !visited[nb.To] {
				walk(nb.To, cost+nb.Weight)
			}
		}
		visited[u] = false
	}
	walk(source, 0)

	return dist
}

// TestDijkstra_Triangle checks the canonical three-vertex scenario: the
// two-hop route A→B→C beats the direct 5-weight edge.
func TestDijkstra_Triangle(t *testing.T) {
	g := buildTriangle()

	dist, prev, err := shortestpath.Dijkstra(g, "A")
	require.NoError(t, err)

	assert.Equal(t, 0.0, dist["A"])
	assert.Equal(t, 1.0, dist["B"])
	assert.Equal(t, 3.0, dist["C"])

	// Predecessors spell out A→B→C; the source itself has none.
	assert.Equal(t, "B", prev["C"])
	assert.Equal(t, "A", prev["B"])
	_, hasPrev := prev["A"]
	assert.False(t, hasPrev, "source must carry no predecessor")
}

// TestDijkstra_CityNetwork pins the full distance table of a known graph.
func TestDijkstra_CityNetwork(t *testing.T) {
	g := buildCityNetwork()

	dist, _, err := shortestpath.Dijkstra(g, "A")
	require.NoError(t, err)

	want := map[string]float64{
		"A": 0, "B": 5, "C": 2, "D": 6, "E": 6, "F": 9, "G": 7, "H": 10,
	}
	for v, w := range want {
		assert.Equal(t, w, dist[v], "dist[%s]", v)
	}
}

// TestDijkstra_MatchesBruteForce cross-checks Dijkstra against exhaustive
// simple-path enumeration on a small random graph, from every source.
func TestDijkstra_MatchesBruteForce(t *testing.T) {
	g := buildRandomGraph(9, 14)

	for _, source := range g.Vertices() {
		dist, _, err := shortestpath.Dijkstra(g, source)
		require.NoError(t, err)

		want := bruteForceDistances(g, source)
		for _, v := range g.Vertices() {
			assert.InDelta(t, want[v], dist[v], 1e-9, "source=%s target=%s", source, v)
		}
	}
}

// TestDijkstra_UnreachableVertex verifies that vertices without a path keep
// the Unreachable sentinel and no predecessor entry.
func TestDijkstra_UnreachableVertex(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", 1)
	g.AddVertex("Z") // isolated

	dist, prev, err := shortestpath.Dijkstra(g, "A")
	require.NoError(t, err)

	assert.True(t, shortestpath.IsUnreachable(dist["Z"]))
	_, hasPrev := prev["Z"]
	assert.False(t, hasPrev)
}

// TestDijkstra_DirectedArcs verifies that directed graphs are not walked
// backwards: B cannot reach A over the arc A→B.
func TestDijkstra_DirectedArcs(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", 1)

	dist, _, err := shortestpath.Dijkstra(g, "B")
	require.NoError(t, err)
	assert.True(t, shortestpath.IsUnreachable(dist["A"]))
}

// TestDijkstra_NegativeWeightRejected verifies the eager precondition check:
// a single negative edge anywhere in the graph rejects the whole run.
func TestDijkstra_NegativeWeightRejected(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", 2)
	g.AddEdge("B", "C", -1)

	_, _, err := shortestpath.Dijkstra(g, "A")
	assert.ErrorIs(t, err, shortestpath.ErrNegativeWeight)
}

// TestDijkstra_InputValidation verifies the nil-graph and unknown-source errors.
func TestDijkstra_InputValidation(t *testing.T) {
	_, _, err := shortestpath.Dijkstra[string](nil, "A")
	assert.ErrorIs(t, err, shortestpath.ErrNilGraph)

	g := buildTriangle()
	_, _, err = shortestpath.Dijkstra(g, "Z")
	assert.ErrorIs(t, err, shortestpath.ErrVertexNotFound)
}

// TestDijkstra_MaxDistance verifies the exploration cap: vertices beyond the
// cap stay Unreachable while nearer results are unchanged.
func TestDijkstra_MaxDistance(t *testing.T) {
	g := buildTriangle()

	dist, _, err := shortestpath.Dijkstra(g, "A", shortestpath.WithMaxDistance(1))
	require.NoError(t, err)

	assert.Equal(t, 0.0, dist["A"])
	assert.Equal(t, 1.0, dist["B"])
	assert.True(t, shortestpath.IsUnreachable(dist["C"]), "C lies past the cap")
}

// TestWithMaxDistance_PanicsOnNegative verifies that an invalid cap fails
// loudly at configuration time.
func TestWithMaxDistance_PanicsOnNegative(t *testing.T) {
	assert.PanicsWithValue(t, shortestpath.ErrBadMaxDistance.Error(), func() {
		shortestpath.WithMaxDistance(-1)(&shortestpath.Options{})
	})
}
