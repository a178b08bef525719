package shortestpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanpath/core"
	"github.com/katalvlaran/spanpath/shortestpath"
)

// arcWeight returns the cheapest stored arc u→v, for summing path costs.
func arcWeight(t *testing.T, g *core.Graph[string], u, v string) float64 {
	t.Helper()
	neighbors, err := g.Neighbors(u)
	require.NoError(t, err)

	best := shortestpath.Unreachable
	for _, nb := range neighbors {
		if nb.To == v && nb.Weight < best {
			best = nb.Weight
		}
	}
	require.False(t, shortestpath.IsUnreachable(best), "no arc %s→%s", u, v)

	return best
}

// TestReconstruct_TrianglePath verifies the canonical path A→B→C.
func TestReconstruct_TrianglePath(t *testing.T) {
	g := buildTriangle()
	dist, prev, err := shortestpath.Dijkstra(g, "A")
	require.NoError(t, err)

	path, err := shortestpath.Reconstruct(dist, prev, "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
}

// TestReconstruct_SourceOnly verifies that the path to the source itself is
// the single-vertex sequence.
func TestReconstruct_SourceOnly(t *testing.T) {
	g := buildTriangle()
	dist, prev, err := shortestpath.Dijkstra(g, "A")
	require.NoError(t, err)

	path, err := shortestpath.Reconstruct(dist, prev, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

// TestReconstruct_WeightsSumToDistance verifies the consistency property:
// summing edge weights along the reconstructed path reproduces the distance
// table entry, for every reachable target.
func TestReconstruct_WeightsSumToDistance(t *testing.T) {
	g := buildRandomGraph(10, 18)
	dist, prev, err := shortestpath.Dijkstra(g, "V00")
	require.NoError(t, err)

	for _, target := range g.Vertices() {
		path, err := shortestpath.Reconstruct(dist, prev, target)
		require.NoError(t, err)
		require.NotEmpty(t, path)
		assert.Equal(t, "V00", path[0], "every path starts at the source")

		var total float64
		for i := 1; i < len(path); i++ {
			total += arcWeight(t, g, path[i-1], path[i])
		}
		assert.InDelta(t, dist[target], total, 1e-9, "target %s", target)
	}
}

// TestReconstruct_TargetNotFound verifies the membership failure mode.
func TestReconstruct_TargetNotFound(t *testing.T) {
	g := buildTriangle()
	dist, prev, err := shortestpath.Dijkstra(g, "A")
	require.NoError(t, err)

	_, err = shortestpath.Reconstruct(dist, prev, "Z")
	assert.ErrorIs(t, err, shortestpath.ErrTargetNotFound)
}

// TestReconstruct_UnreachableTarget verifies that an isolated vertex fails
// cleanly instead of producing a bogus single-vertex path.
func TestReconstruct_UnreachableTarget(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", 1)
	g.AddVertex("Z")

	dist, prev, err := shortestpath.Dijkstra(g, "A")
	require.NoError(t, err)

	_, err = shortestpath.Reconstruct(dist, prev, "Z")
	assert.ErrorIs(t, err, shortestpath.ErrUnreachableTarget)
}

// TestReconstruct_PredecessorCycle verifies that a tainted table — the kind
// only a negative cycle can produce — terminates with a defined error
// rather than looping forever.
func TestReconstruct_PredecessorCycle(t *testing.T) {
	dist := map[string]float64{"X": -1, "Y": -2}
	prev := map[string]string{"X": "Y", "Y": "X"}

	_, err := shortestpath.Reconstruct(dist, prev, "X")
	assert.ErrorIs(t, err, shortestpath.ErrPredecessorCycle)
}
