package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/pathpad/core"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that start or goal does not exist in the graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNoPath indicates that goal cannot be reached from start
	// (within MaxCost, when one is set).
	ErrNoPath = errors.New("dijkstra: no path between nodes")

	// ErrNegativeCost indicates an adjacency list holding a negative cost.
	// core never produces one; a foreign Graph implementation might.
	ErrNegativeCost = errors.New("dijkstra: negative edge cost encountered")

	// ErrCostOverflow indicates an accumulated path cost that no longer fits in an int64.
	ErrCostOverflow = errors.New("dijkstra: path cost overflows int64")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Graph is the read-only view ShortestPath needs.
// Both *core.Graph and *core.Snapshot satisfy it.
type Graph interface {
	NodeCount() int
	Neighbors(id core.NodeID) ([]core.Edge, error)
}

// infinity marks a node whose distance is not yet known.
const infinity int64 = math.MaxInt64

// Options configures ShortestPath.
//
// MaxCost – budget on the accumulated cost; nodes that can only be reached
//
//	above it are never settled, so a goal beyond it yields ErrNoPath.
//	Must be ≥ 0. Default is math.MaxInt64 (no budget).
type Options struct {
	MaxCost int64 // Largest accumulated cost worth exploring
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxCost caps the accumulated cost ShortestPath explores.
// Negative values panic with ErrBadMaxCost.
func WithMaxCost(limit int64) Option {
	return func(o *Options) {
		if limit < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = limit
	}
}

// DefaultOptions returns the options ShortestPath starts from:
// MaxCost = math.MaxInt64.
func DefaultOptions() Options {
	return Options{MaxCost: infinity}
}
