// Package shortestpath defines the shared sentinel errors, the unreachable
// sentinel, and configuration options for the shortest-path algorithms.
package shortestpath

import (
	"errors"
	"math"
)

// Sentinel errors returned by the shortest-path implementations.
var (
	// ErrNilGraph indicates that a nil graph was passed to an algorithm.
	ErrNilGraph = errors.New("shortestpath: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("shortestpath: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected
	// by Dijkstra's pre-scan. Dijkstra's eager-finalization invariant does
	// not hold under negative weights, so the input is rejected outright.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// value, which is not meaningful for a distance cap.
	ErrBadMaxDistance = errors.New("shortestpath: MaxDistance must be non-negative")

	// ErrTargetNotFound indicates that Reconstruct was given a target absent
	// from the distance table.
	ErrTargetNotFound = errors.New("shortestpath: target vertex not in distance table")

	// ErrUnreachableTarget indicates that Reconstruct was given a target the
	// source never reached (its distance is the Unreachable sentinel).
	ErrUnreachableTarget = errors.New("shortestpath: target vertex unreachable from source")

	// ErrPredecessorCycle indicates that the predecessor chain revisited a
	// vertex. This can only happen with a table computed under a negative
	// cycle; check BellmanFord's flag before reconstructing.
	ErrPredecessorCycle = errors.New("shortestpath: predecessor chain contains a cycle")
)

// Unreachable is the distance assigned to vertices no path from the source
// reaches: positive infinity. No finite edge weight can sum to it, so it is
// unambiguous as a sentinel.
var Unreachable = math.Inf(1)

// IsUnreachable reports whether d is the Unreachable sentinel.
func IsUnreachable(d float64) bool { return math.IsInf(d, 1) }

// Options configures the behavior of Dijkstra.
//
// MaxDistance – cap on distances to explore; vertices whose best distance
// exceeds the cap are left Unreachable. Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold. Vertices whose shortest
// distance exceeds this value are not finalized and keep the Unreachable
// sentinel. Must pass a non-negative value; negative values panic with
// ErrBadMaxDistance. Default (if not set) is +Inf (no cap).
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// MaxDistance = +Inf (explore everything reachable).
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}
