package session

import (
	"errors"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/pathpad/core"
	"github.com/katalvlaran/pathpad/dijkstra"
	"github.com/katalvlaran/pathpad/label"
)

// Click applies a pointer click at world position p.
//
// Only ButtonLeft is interpreted. On empty space a click deselects when a node
// is selected and otherwise creates a node at p. On a node it selects it, or,
// with another node already selected, connects the two unless they are
// already neighbors, in which case the clicked node becomes the selection.
//
// The returned error is non-nil only for invariant violations.
func (s *Session) Click(b Button, p orb.Point) error {
	if b != ButtonLeft {
		return nil
	}

	id, onNode := s.index.Hit(p)
	if !onNode {
		return s.clickEmpty(p)
	}

	return s.clickNode(id)
}

func (s *Session) clickEmpty(p orb.Point) error {
	if s.selected != core.NoNode {
		s.log.Debug("deselect", "node", label.Of(s.selected))
		s.selected = core.NoNode
		return nil
	}

	id, err := s.graph.AddNode(p)
	if err != nil {
		return s.invariant("place node at %v: %w", p, err)
	}
	if err := s.index.Insert(id, p); err != nil {
		return s.invariant("index node %d: %w", id, err)
	}
	s.log.Debug("node created", "node", label.Of(id), "x", p.X(), "y", p.Y())

	return nil
}

func (s *Session) clickNode(id core.NodeID) error {
	prev := s.selected
	switch {
	case prev == core.NoNode:
		s.selected = id
		s.log.Debug("select", "node", label.Of(id))

	case prev == id:
		// clicking the selected node again changes nothing

	case s.graph.AreAdjacent(id, prev):
		s.selected = id
		s.log.Debug("reselect neighbor", "from", label.Of(prev), "node", label.Of(id))

	default:
		cost, err := s.graph.AddEdge(prev, id)
		if err != nil {
			return s.invariant("connect %d-%d: %w", prev, id, err)
		}
		s.selected = core.NoNode
		s.log.Debug("edge created", "a", label.Of(prev), "b", label.Of(id), "cost", cost)
	}

	return nil
}

// Press applies a key press and returns what should be shown to the user.
//
// KeyMarkStart/KeyMarkGoal act on the selected node (and do nothing when idle):
// the node takes the marker, the other marker is cleared if it pointed to the
// same node, and the selection is cleared. KeyComputePath runs a path query
// and never changes the selection.
//
// The returned error is non-nil only for invariant violations.
func (s *Session) Press(k Key) (Report, error) {
	switch k {
	case KeyMarkStart:
		s.markStart()
		return Report{}, nil
	case KeyMarkGoal:
		s.markGoal()
		return Report{}, nil
	case KeyComputePath:
		return s.computePath()
	default:
		return Report{}, nil
	}
}

func (s *Session) markStart() {
	id := s.selected
	if id == core.NoNode {
		return
	}
	s.start = id
	if s.goal == id {
		s.goal = core.NoNode
	}
	s.selected = core.NoNode
	s.log.Debug("start marked", "node", label.Of(id))
}

func (s *Session) markGoal() {
	id := s.selected
	if id == core.NoNode {
		return
	}
	s.goal = id
	if s.start == id {
		s.start = core.NoNode
	}
	s.selected = core.NoNode
	s.log.Debug("goal marked", "node", label.Of(id))
}

func (s *Session) computePath() (Report, error) {
	if s.start == core.NoNode || s.goal == core.NoNode {
		return s.report(missingEndpoints()), nil
	}

	cost, path, err := dijkstra.ShortestPath(s.graph.Snapshot(), s.start, s.goal)
	if errors.Is(err, dijkstra.ErrNoPath) {
		return s.report(noPath()), nil
	}
	if err != nil {
		return Report{}, s.invariant("path %d→%d: %w", s.start, s.goal, err)
	}

	clear(s.highlighted)
	for i := 1; i < len(path); i++ {
		s.highlighted[core.MakePair(path[i-1], path[i])] = struct{}{}
	}
	s.log.Info("path found", "from", label.Of(s.start), "to", label.Of(s.goal), "cost", cost, "hops", len(path)-1)

	return s.report(found(cost, path)), nil
}
