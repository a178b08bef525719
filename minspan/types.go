// Package minspan defines configuration and sentinel errors for MST
// computation, and the Compute dispatcher for selecting between Kruskal
// and Prim.
package minspan

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/spanpath/core"
)

// Sentinel errors returned by the MST implementations.
var (
	// ErrNilGraph indicates that a nil graph was passed to Prim or Compute.
	ErrNilGraph = errors.New("minspan: graph is nil")

	// ErrVertexNotFound indicates that the requested root vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("minspan: root vertex not found in graph")

	// ErrUnknownMethod indicates that Compute was given a method name other
	// than MethodKruskal or MethodPrim.
	ErrUnknownMethod = errors.New("minspan: unknown MST method")
)

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MSTOptions configures which MST algorithm Compute runs, and for Prim,
// which starting vertex to use.
//
// Fields:
//
//	Method string — one of MethodKruskal or MethodPrim.
//	Root   V      — start vertex for Prim; ignored when Method == MethodKruskal.
type MSTOptions[V cmp.Ordered] struct {
	// Method to use: MethodKruskal or MethodPrim.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root V
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default
// (Root is the zero identifier, which Kruskal ignores).
func DefaultOptions[V cmp.Ordered]() MSTOptions[V] {
	return MSTOptions[V]{Method: MethodKruskal}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//   - MethodKruskal: derives the node set and edge list from g and calls
//     Kruskal. On an undirected graph the edge list carries both arcs of
//     each connection; the mirrored duplicates are rejected as cycles, so
//     the resulting forest is unaffected.
//   - MethodPrim: calls Prim(g, opts.Root).
//   - Anything else: ErrUnknownMethod.
//
// Returns the accepted edges, their total weight, and any error. This is
// optional scaffolding — Kruskal and Prim can still be called directly.
func Compute[V cmp.Ordered](g *core.Graph[V], opts MSTOptions[V]) ([]core.Edge[V], float64, error) {
	switch opts.Method {
	case MethodKruskal:
		if g == nil {
			return nil, 0, ErrNilGraph
		}

		return Kruskal(g.Vertices(), g.Edges())
	case MethodPrim:
		return Prim(g, opts.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}
