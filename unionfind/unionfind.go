package unionfind

import (
	"errors"
	"fmt"
)

// ErrUnknownElement indicates that an operation referenced an element that
// was not part of the set handed to New. Absent elements are an error,
// never a silent insert.
var ErrUnknownElement = errors.New("unionfind: element not in set")

// DisjointSet partitions a fixed element set into disjoint subsets.
//
// Each element starts in its own singleton set. The structure keeps a parent
// pointer per element (self-parented = root) and a rank per element (a
// tree-height estimate used to keep union trees shallow).
type DisjointSet[V comparable] struct {
	parent map[V]V
	rank   map[V]int
}

// New creates a DisjointSet over the given elements, each in its own set.
// Duplicate elements are tolerated and collapse to a single entry.
// Complexity: O(len(elements)).
func New[V comparable](elements []V) *DisjointSet[V] {
	d := &DisjointSet[V]{
		parent: make(map[V]V, len(elements)),
		rank:   make(map[V]int, len(elements)),
	}
	for _, x := range elements {
		d.parent[x] = x
		d.rank[x] = 0
	}

	return d
}

// Contains reports whether x is a member of the element set. Complexity: O(1).
func (d *DisjointSet[V]) Contains(x V) bool {
	_, ok := d.parent[x]

	return ok
}

// Len returns the number of elements in the structure. Complexity: O(1).
func (d *DisjointSet[V]) Len() int { return len(d.parent) }

// Find returns the canonical root of x's set, compressing the traversed
// path so that every visited element points directly at the root.
// Returns ErrUnknownElement if x is not a member.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet[V]) Find(x V) (V, error) {
	if !d.Contains(x) {
		var zero V

		return zero, fmt.Errorf("%w: %v", ErrUnknownElement, x)
	}

	// First pass: walk parent pointers up to the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// Second pass: re-point every element on the walked path at the root.
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root, nil
}

// Union merges the sets containing x and y.
//
// Returns (true, nil) when two distinct sets were merged, and (false, nil)
// when x and y were already connected — the caller's cycle indicator.
// The lower-rank root attaches under the higher-rank root; on equal ranks,
// y's root attaches under x's root and x's root rank increments by one.
// Returns ErrUnknownElement if either argument is not a member.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet[V]) Union(x, y V) (bool, error) {
	rootX, err := d.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := d.Find(y)
	if err != nil {
		return false, err
	}

	// Same root: the pair is already connected, report "no merge".
	if rootX == rootY {
		return false, nil
	}

	// Union by rank: attach the shallower tree under the deeper root.
	switch {
	case d.rank[rootX] < d.rank[rootY]:
		d.parent[rootX] = rootY
	case d.rank[rootX] > d.rank[rootY]:
		d.parent[rootY] = rootX
	default:
		// Tie: y's root goes under x's root, whose height estimate grows by one.
		d.parent[rootY] = rootX
		d.rank[rootX]++
	}

	return true, nil
}

// Connected reports whether x and y currently belong to the same set.
// Returns ErrUnknownElement if either argument is not a member.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet[V]) Connected(x, y V) (bool, error) {
	rootX, err := d.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rootX == rootY, nil
}
