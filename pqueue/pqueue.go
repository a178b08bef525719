package pqueue

import "container/heap"

// Item pairs a queued value with the priority it was pushed at.
type Item[T any] struct {
	// Priority orders the queue; lower pops first.
	Priority float64

	// Value is the caller's payload, opaque to the queue.
	Value T
}

// Min is a min-priority queue of Items. The zero value is not ready for use;
// construct with NewMin.
type Min[T any] struct {
	h itemHeap[T]
}

// NewMin returns an empty min-priority queue.
func NewMin[T any]() *Min[T] {
	return &Min[T]{h: make(itemHeap[T], 0)}
}

// Len returns the number of entries currently queued, stale ones included.
// Complexity: O(1).
func (q *Min[T]) Len() int { return q.h.Len() }

// Push enqueues value at the given priority. Pushing a value that is already
// queued is the expected usage: the lazy-deletion discipline discards the
// superseded entry at extraction time. Complexity: O(log N).
func (q *Min[T]) Push(priority float64, value T) {
	heap.Push(&q.h, Item[T]{Priority: priority, Value: value})
}

// Pop removes and returns the minimum-priority entry, or ok=false when the
// queue is empty. Complexity: O(log N).
func (q *Min[T]) Pop() (item Item[T], ok bool) {
	if q.h.Len() == 0 {
		return item, false
	}

	return heap.Pop(&q.h).(Item[T]), true
}

// itemHeap implements heap.Interface for a min-heap of Item, ordered by
// Priority ascending.
type itemHeap[T any] []Item[T]

// Len returns the number of items in the heap.
func (h itemHeap[T]) Len() int { return len(h) }

// Less defines the comparison: smaller Priority → higher priority.
func (h itemHeap[T]) Less(i, j int) bool { return h[i].Priority < h[j].Priority }

// Swap swaps two elements in the heap.
func (h itemHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type Item[T].
func (h *itemHeap[T]) Push(x interface{}) { *h = append(*h, x.(Item[T])) }

// Pop removes and returns the last element after heap adjustments.
// Called by heap.Pop.
func (h *itemHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
