// Package spanpath is a compact toolkit of classic weighted-graph algorithms:
// single-source shortest paths and minimum spanning trees, together with the
// two working structures they lean on.
//
// 🚀 What is spanpath?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Core primitives: a generic adjacency-list Graph with a flat edge view
//		• Shortest paths: Dijkstra (non-negative weights) and
//		  Bellman–Ford (general weights + negative-cycle detection)
//		• Minimum spanning trees: Kruskal (edge-sorted, union-find) and
//		  Prim (frontier growth, min-heap)
//		• Union-Find: disjoint sets with path compression and union by rank
//		• Priority queue: a lazy-deletion min-heap shared by Dijkstra and Prim
//
// ✨ Why choose spanpath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – sorted vertex iteration, documented tie-break policies
//   - Pure Go – no cgo, generics over any ordered identifier type
//   - Honest results – structured distance/predecessor tables and edge lists,
//     no formatting or I/O concerns in the core
//
// Everything is organized under five subpackages:
//
//	core/         — fundamental Graph, Edge, Neighbor types
//	unionfind/    — disjoint-set structure (cycle detection for Kruskal)
//	pqueue/       — min-priority queue under the lazy-deletion discipline
//	shortestpath/ — Dijkstra, Bellman–Ford, path reconstruction
//	minspan/      — Kruskal, Prim, and a method dispatcher
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    5     2
//	    │     │
//	    └──C──┘
//
//	Dijkstra from A yields dist[C]=3 via A→B→C; Kruskal keeps A–B and B–C.
//
// Dive into each package's doc.go for contracts, complexity notes, and
// runnable examples.
//
//	go get github.com/katalvlaran/spanpath
package spanpath
