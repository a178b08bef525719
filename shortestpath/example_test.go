// Package shortestpath_test provides examples demonstrating the shortest-path
// algorithms. Each example is runnable via “go test -run Example”, showing
// both code and expected output.
package shortestpath_test

import (
	"fmt"

	"github.com/katalvlaran/spanpath/core"
	"github.com/katalvlaran/spanpath/shortestpath"
)

// ExampleDijkstra demonstrates computing shortest paths on a simple triangle
// graph: the two-hop route A→B→C (cost 3) beats the direct edge (cost 5).
func ExampleDijkstra() {
	// 1) Build an undirected, weighted triangle.
	g := core.NewGraph[string](core.WithUndirected())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	// 2) Compute distances from source "A".
	dist, prev, err := shortestpath.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Reconstruct the route to C from the predecessor table.
	path, _ := shortestpath.Reconstruct(dist, prev, "C")

	fmt.Printf("dist[A]=%.0f, dist[B]=%.0f, dist[C]=%.0f\n", dist["A"], dist["B"], dist["C"])
	fmt.Println("path to C:", path)
	// Output:
	// dist[A]=0, dist[B]=1, dist[C]=3
	// path to C: [A B C]
}

// ExampleBellmanFord demonstrates negative-cycle detection: the loop
// A→B→A with weights −1 each can be toured forever, so no shortest path exists.
func ExampleBellmanFord() {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", -1)
	g.AddEdge("B", "A", -1)

	_, _, negCycle, err := shortestpath.BellmanFord(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("negative cycle:", negCycle)
	// Output: negative cycle: true
}

// ExampleReconstruct demonstrates the failure mode for unreachable targets:
// reconstruction fails cleanly instead of returning a bogus path.
func ExampleReconstruct() {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", 1)
	g.AddVertex("Z") // isolated vertex, no path from A

	dist, prev, _ := shortestpath.Dijkstra(g, "A")

	_, err := shortestpath.Reconstruct(dist, prev, "Z")
	fmt.Println(err)
	// Output: shortestpath: target vertex unreachable from source: Z
}
