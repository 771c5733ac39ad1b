// File: methods.go
// Role: Node/edge lifecycle (AddNode, AddEdge) and read queries.
// Determinism:
//   - Nodes() is ordered by id; Edges() by A then insertion order in adj[A].
//   - Neighbors() preserves insertion order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
//   - Every returned slice is a fresh copy.

package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/pathpad/label"
)

// AddNode appends a node at p with an empty adjacency list and returns its id.
// A NaN or infinite coordinate is rejected with ErrBadPosition and no id is used.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(p orb.Point) (NodeID, error) {
	if !finite(p) {
		return NoNode, fmt.Errorf("%w: %v", ErrBadPosition, p)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.positions = append(g.positions, p)
	g.adjacency = append(g.adjacency, nil)

	return NodeID(len(g.adjacency) - 1), nil
}

// AddEdge connects a and b with cost floor(distance(a, b)) and returns that cost.
//
// Steps:
//  1. Reject a == b (ErrLoopNotAllowed).
//  2. Under the write lock, validate both ids (ErrNodeNotFound).
//  3. Compute the cost once from the stored positions (ErrCostOverflow if it
//     does not fit in an int64).
//  4. Push {b, cost} onto adj[a] and {a, cost} onto adj[b].
//
// AddEdge does not look for an existing a–b edge; callers that need to avoid
// parallel edges check AreAdjacent first.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b NodeID) (int64, error) {
	if a == b {
		return 0, fmt.Errorf("%w: node %d", ErrLoopNotAllowed, a)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.has(a) {
		return 0, fmt.Errorf("%w: id %d (have %d nodes)", ErrNodeNotFound, a, len(g.adjacency))
	}
	if !g.has(b) {
		return 0, fmt.Errorf("%w: id %d (have %d nodes)", ErrNodeNotFound, b, len(g.adjacency))
	}

	cost, err := edgeCost(g.positions[a], g.positions[b])
	if err != nil {
		return 0, fmt.Errorf("%w: %d–%d", err, a, b)
	}
	g.adjacency[a] = append(g.adjacency[a], Edge{To: b, Cost: cost})
	g.adjacency[b] = append(g.adjacency[b], Edge{To: a, Cost: cost})
	g.edgeCount++

	return cost, nil
}

// AreAdjacent reports whether b appears in a's adjacency list.
// Unknown ids are never adjacent to anything.
//
// Complexity: O(deg(a)).
func (g *Graph) AreAdjacent(a, b NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(a) {
		return false
	}

	return containsNeighbor(g.adjacency[a], b)
}

// Neighbors returns a copy of id's adjacency list in insertion order.
func (g *Graph) Neighbors(id NodeID) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return nil, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	return append([]Edge(nil), g.adjacency[id]...), nil
}

// Position returns the position node id was created at.
func (g *Graph) Position(id NodeID) (orb.Point, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return orb.Point{}, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	return g.positions[id], nil
}

// NodeCount returns the number of nodes, which is also the next id to be assigned.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges (reciprocal pairs count once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Nodes returns every node ordered by id.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return nodesOf(g.positions)
}

// Edges returns every undirected edge once, with A < B.
// Complexity: O(V + E).
func (g *Graph) Edges() []EdgeRecord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return edgesOf(g.adjacency, g.edgeCount)
}

// String renders one line per node listing its adjacency, e.g.
//
//	A: [ Edge { node: B, cost 6 }, Edge { node: C, cost 4 }, ]
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return formatAdjacency(g.adjacency)
}

// has reports whether id is in range. Caller must hold mu.
func (g *Graph) has(id NodeID) bool {
	return id >= 0 && int(id) < len(g.adjacency)
}

// maxCost is 2^63, the first float64 that no longer converts to an int64.
const maxCost = float64(math.MaxInt64)

func edgeCost(a, b orb.Point) (int64, error) {
	d := math.Floor(planar.Distance(a, b))
	// NaN fails every comparison, so test for the valid range.
	if !(d >= 0 && d < maxCost) {
		return 0, fmt.Errorf("%w: distance %v", ErrCostOverflow, d)
	}

	return int64(d), nil
}

func finite(p orb.Point) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

func containsNeighbor(list []Edge, id NodeID) bool {
	for _, e := range list {
		if e.To == id {
			return true
		}
	}

	return false
}

func nodesOf(positions []orb.Point) []Node {
	out := make([]Node, len(positions))
	for i, p := range positions {
		out[i] = Node{ID: NodeID(i), Position: p}
	}

	return out
}

func edgesOf(adjacency [][]Edge, count int) []EdgeRecord {
	out := make([]EdgeRecord, 0, count)
	for i, list := range adjacency {
		from := NodeID(i)
		for _, e := range list {
			// each reciprocal pair is reported from its lower endpoint
			if from < e.To {
				out = append(out, EdgeRecord{A: from, B: e.To, Cost: e.Cost})
			}
		}
	}

	return out
}

func formatAdjacency(adjacency [][]Edge) string {
	var b strings.Builder
	for i, list := range adjacency {
		b.WriteString(label.Of(i))
		b.WriteString(": [ ")
		for _, e := range list {
			fmt.Fprintf(&b, "Edge { node: %s, cost %d }, ", label.Of(e.To), e.Cost)
		}
		b.WriteString("]\n")
	}

	return b.String()
}
