// File: types.go
// Role: NodeID, Node, Edge, EdgeRecord, Pair, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - mu guards positions and adjacency; see doc.go for the locking model.

package core

import (
	"errors"
	"sync"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced an id outside 0..N-1.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNotSquare indicates an adjacency matrix whose rows differ in length from its height.
	ErrNotSquare = errors.New("core: adjacency matrix is not square")

	// ErrAsymmetric indicates an adjacency matrix with m[i][j] != m[j][i].
	ErrAsymmetric = errors.New("core: adjacency matrix is not symmetric")

	// ErrNegativeCost indicates a negative entry in an adjacency matrix.
	ErrNegativeCost = errors.New("core: negative edge cost")

	// ErrBadPosition indicates a node position with a NaN or infinite coordinate.
	ErrBadPosition = errors.New("core: position must be finite")

	// ErrCostOverflow indicates two positions too far apart for an int64 cost.
	ErrCostOverflow = errors.New("core: edge cost overflows int64")
)

// NodeID is the dense, zero-based identity of a node, assigned in creation order.
type NodeID int

// NoNode marks the absence of a node wherever an optional NodeID is stored.
const NoNode NodeID = -1

// Node pairs an id with its position.
type Node struct {
	ID       NodeID
	Position orb.Point
}

// Edge is one entry of an adjacency list: the neighbor and the cost to reach it.
type Edge struct {
	// To is the neighbor node id.
	To NodeID

	// Cost is floor(Euclidean distance) between the endpoints, fixed at creation.
	Cost int64
}

// EdgeRecord describes one undirected edge with A < B.
type EdgeRecord struct {
	A, B NodeID
	Cost int64
}

// Pair is an unordered pair of node ids, normalised so that Lo <= Hi.
type Pair struct {
	Lo, Hi NodeID
}

// MakePair returns the normalised unordered pair {a, b}.
func MakePair(a, b NodeID) Pair {
	if a < b {
		return Pair{Lo: a, Hi: b}
	}

	return Pair{Lo: b, Hi: a}
}

// Graph is the append-only, thread-safe graph model.
//
// positions[i] and adjacency[i] belong to node i; both slices always have the
// same length, which is also the next id to assign.
type Graph struct {
	mu sync.RWMutex // guards everything below

	positions []orb.Point
	adjacency [][]Edge
	edgeCount int // undirected pairs
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{}
}
