package session

import (
	"sort"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/pathpad/core"
	"github.com/katalvlaran/pathpad/label"
)

// NodeView is a node as a presenter draws it.
type NodeView struct {
	ID       core.NodeID
	Label    string
	Position orb.Point
}

// EdgeView is an undirected edge as a presenter draws it, with A < B.
type EdgeView struct {
	A, B        core.NodeID
	Cost        int64
	Highlighted bool
}

// Frame is a read-only picture of the session for one render tick.
// It shares nothing with the session; presenters may keep it.
type Frame struct {
	Nodes    []NodeView
	Edges    []EdgeView
	Selected core.NodeID
	Start    core.NodeID
	Goal     core.NodeID
	Radius   float64
}

// Frame captures the graph (under one read lock) together with the selection,
// markers and highlighted edges.
func (s *Session) Frame() Frame {
	snap := s.graph.Snapshot()

	nodes := snap.Nodes()
	f := Frame{
		Nodes:    make([]NodeView, len(nodes)),
		Selected: s.selected,
		Start:    s.start,
		Goal:     s.goal,
		Radius:   s.index.Radius(),
	}
	for i, n := range nodes {
		f.Nodes[i] = NodeView{ID: n.ID, Label: label.Of(n.ID), Position: n.Position}
	}

	edges := snap.Edges()
	f.Edges = make([]EdgeView, len(edges))
	for i, e := range edges {
		_, on := s.highlighted[core.MakePair(e.A, e.B)]
		f.Edges[i] = EdgeView{A: e.A, B: e.B, Cost: e.Cost, Highlighted: on}
	}

	return f
}

func sortedPairs(set map[core.Pair]struct{}) []core.Pair {
	out := make([]core.Pair, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Lo != out[j].Lo {
			return out[i].Lo < out[j].Lo
		}
		return out[i].Hi < out[j].Hi
	})

	return out
}
