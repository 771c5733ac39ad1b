// Package core provides the thread-safe, append-only graph model behind pathpad.
//
// A Graph G = (V,E) is stored as an ordered sequence of adjacency lists indexed by
// a dense, zero-based NodeID. Every node carries a 2-D position (orb.Point); the
// position exists so that edge costs can be derived from geometry:
//
//	cost(a, b) = floor(planar.Distance(pos(a), pos(b)))
//
// Edges are created in reciprocal pairs, so the graph is logically undirected
// while being represented as a symmetric directed structure:
//
//	AddEdge(A, B)  ⇒  adj[A] += {B, cost}; adj[B] += {A, cost}
//
// Guarantees:
//
//   - Node ids are contiguous 0..N-1 and never reused (there is no removal).
//   - No edge references an id ≥ N.
//   - Positions are finite and edge costs fit in an int64 (never negative).
//   - Edge cost is computed once and never changes.
//   - AddEdge does NOT detect duplicates; callers decide via AreAdjacent.
//
// Concurrency:
//
//	A single sync.RWMutex guards positions and adjacency. AddNode/AddEdge take the
//	write lock; every query (including Snapshot) takes the read lock and returns
//	copies, so no lock outlives a call.
//
// Core Methods:
//
//	AddNode(p orb.Point) (NodeID, error)          // O(1) amortized
//	AddEdge(a, b NodeID) (cost int64, err error)  // O(1) amortized
//	AreAdjacent(a, b NodeID) bool                 // O(deg(a))
//	Neighbors(id NodeID) ([]Edge, error)          // O(deg(id))
//	Position(id NodeID) (orb.Point, error)        // O(1)
//	Nodes() []Node / Edges() []EdgeRecord         // O(V) / O(V+E)
//	Snapshot() *Snapshot                          // O(V+E)
//
// Errors:
//
//	ErrNodeNotFound    - an id outside 0..N-1 was referenced.
//	ErrLoopNotAllowed  - AddEdge(a, a).
//	ErrNotSquare       - FromAdjacencyMatrix input is not square.
//	ErrAsymmetric      - FromAdjacencyMatrix input is not symmetric.
//	ErrNegativeCost    - FromAdjacencyMatrix input holds a negative cost.
//	ErrBadPosition     - AddNode with a NaN or infinite coordinate.
//	ErrCostOverflow    - AddEdge between points too far apart for an int64 cost.
package core
