// File: snapshot.go
// Role: Immutable point-in-time copy of a Graph for readers that need a consistent view
//       across many calls (path queries, presenter frames).

package core

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Snapshot is a deep copy of a Graph taken under a single read lock.
// It is never mutated after creation, so it needs no locking.
type Snapshot struct {
	positions []orb.Point
	adjacency [][]Edge
	edgeCount int
}

// Snapshot copies positions and adjacency under one read lock.
// Complexity: O(V + E).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := make([][]Edge, len(g.adjacency))
	for i, list := range g.adjacency {
		adj[i] = append([]Edge(nil), list...)
	}

	return &Snapshot{
		positions: append([]orb.Point(nil), g.positions...),
		adjacency: adj,
		edgeCount: g.edgeCount,
	}
}

// NodeCount returns the number of nodes in the snapshot.
func (s *Snapshot) NodeCount() int { return len(s.adjacency) }

// EdgeCount returns the number of undirected edges in the snapshot.
func (s *Snapshot) EdgeCount() int { return s.edgeCount }

// Neighbors returns a copy of id's adjacency list.
func (s *Snapshot) Neighbors(id NodeID) ([]Edge, error) {
	if id < 0 || int(id) >= len(s.adjacency) {
		return nil, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	return append([]Edge(nil), s.adjacency[id]...), nil
}

// Position returns the position of node id.
func (s *Snapshot) Position(id NodeID) (orb.Point, error) {
	if id < 0 || int(id) >= len(s.positions) {
		return orb.Point{}, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	return s.positions[id], nil
}

// Nodes returns every node ordered by id.
func (s *Snapshot) Nodes() []Node { return nodesOf(s.positions) }

// Edges returns every undirected edge once, with A < B.
func (s *Snapshot) Edges() []EdgeRecord { return edgesOf(s.adjacency, s.edgeCount) }

// String renders the snapshot the same way Graph.String does.
func (s *Snapshot) String() string { return formatAdjacency(s.adjacency) }
