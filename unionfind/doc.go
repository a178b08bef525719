// Package unionfind implements a disjoint-set (union-find) structure with
// path compression and union by rank.
//
// Overview:
//
//   - DisjointSet partitions a fixed element set into disjoint subsets and
//     answers connectivity queries in amortized near-constant time.
//   - Find returns the canonical root of an element's set, fully compressing
//     the traversed path: every visited element is re-pointed directly at the
//     discovered root, so later lookups short-circuit.
//   - Union merges two sets by rank; when both endpoints already share a
//     root it reports "no merge", which is exactly the cycle signal Kruskal
//     consumes.
//   - Connected is a read-only query over two Find calls (the compression a
//     Find performs is an internal optimization, not an observable mutation).
//
// Membership contract:
//
//	The element set is fixed at construction. Referencing an element absent
//	from that set is an error (ErrUnknownElement), never a silent insert —
//	a mistyped identifier must surface immediately.
//
// Implementation notes:
//
//   - Find is iterative: it walks to the root first, then re-points each
//     visited element in a second pass. No recursion, so arbitrarily deep
//     parent chains cannot exhaust the stack.
//   - Union ties (equal ranks) attach y's root under x's root and increment
//     x's root rank by one. Rank is a tree-height estimate; it never
//     decreases and only changes when a root wins a tied union.
//
// Complexity: a sequence of n Find/Union/Connected operations costs
// O(n·α(n)) total, where α is the inverse Ackermann function — effectively
// constant per operation. This bound is the structural reason Kruskal runs
// in O(E log E).
package unionfind
