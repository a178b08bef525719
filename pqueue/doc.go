// Package pqueue provides the min-priority queue that Dijkstra and Prim
// drive under the lazy-deletion discipline.
//
// The discipline:
//
//	Neither algorithm needs a decrease-key operation. When a better priority
//	for a value is discovered, the caller simply pushes a fresh entry; the
//	superseded entry stays in the heap. On extraction the caller checks
//	whether the popped value is already finalized (Dijkstra's visited set,
//	Prim's in-tree set) and discards stale entries without processing them.
//
// Consequences an implementer must size for:
//
//   - Queue length is bounded by the number of pushes — O(E) in both
//     algorithms — not by the vertex count.
//   - Every entry is popped exactly once, so total heap work stays
//     O(E log E) even with stale entries present.
//
// Ordering:
//
//	Strictly min-by-priority. Entries with equal priority pop in an
//	unspecified (but deterministic for a fixed push sequence) order; callers
//	that need a documented tie-break must encode it in the priority or apply
//	their own discipline, as Kruskal does with its stable edge sort.
//
// Min is a thin generic wrapper over the standard container/heap machinery;
// it carries no locking and is meant to live and die inside one algorithm call.
package pqueue
