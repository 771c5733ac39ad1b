// File: matrix.go
// Role: Build a Graph from an explicit cost matrix (fixtures, demos, tests).

package core

import (
	"fmt"

	"github.com/paulmach/orb"
)

// FromAdjacencyMatrix builds a Graph whose node i has an edge to j with cost m[i][j]
// whenever m[i][j] != 0. Costs are taken verbatim instead of being derived from
// positions, and every node sits at the zero point.
//
// The matrix must be square, symmetric, non-negative and have a zero diagonal.
// Edges are appended to adj[i] in ascending j, matching a row scan.
//
// Complexity: O(V²).
func FromAdjacencyMatrix(m [][]int64) (*Graph, error) {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNotSquare, i, len(row), n)
		}
	}

	g := &Graph{
		positions: make([]orb.Point, n),
		adjacency: make([][]Edge, n),
	}
	for i := 0; i < n; i++ {
		if m[i][i] != 0 {
			return nil, fmt.Errorf("%w: m[%d][%d]=%d", ErrLoopNotAllowed, i, i, m[i][i])
		}
		for j := 0; j < n; j++ {
			c := m[i][j]
			if c < 0 {
				return nil, fmt.Errorf("%w: m[%d][%d]=%d", ErrNegativeCost, i, j, c)
			}
			if c != m[j][i] {
				return nil, fmt.Errorf("%w: m[%d][%d]=%d, m[%d][%d]=%d", ErrAsymmetric, i, j, c, j, i, m[j][i])
			}
			if c == 0 {
				continue
			}
			g.adjacency[i] = append(g.adjacency[i], Edge{To: NodeID(j), Cost: c})
			if i < j {
				g.edgeCount++
			}
		}
	}

	return g, nil
}
