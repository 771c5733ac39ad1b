// Package session turns pointer clicks and key presses into graph and
// selection mutations.
//
// A Session is the single interaction state of the program: the currently
// selected node, the start and goal markers, and the set of edges highlighted
// by the last successful path query. It owns the hit index used to decide
// whether a click landed on a node, and it is the only writer of its graph.
//
// States:
//
//	Idle             no node selected
//	NodeSelected(id) id is selected and the next node click may connect to it
//
// Events are expected one at a time from a single goroutine; a Session holds
// no lock of its own. The underlying core.Graph is still safe to read from
// other goroutines (presenters) while events are applied.
package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/pathpad/core"
	"github.com/katalvlaran/pathpad/spatial"
)

// ErrInvariant wraps every error a Session returns. It signals a bug (an id
// the graph does not know, an index that cannot hold a node), never a user
// mistake; callers should stop processing events.
var ErrInvariant = errors.New("session: invariant violated")

// DefaultRadius is the node disc radius in world units.
const DefaultRadius = 20.0

// State is the selection state of a Session.
type State int

const (
	// Idle means no node is selected.
	Idle State = iota
	// NodeSelected means Selected() holds a node id.
	NodeSelected
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case NodeSelected:
		return "node-selected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Button identifies the pointer button of a click.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Key is a command key understood by the session.
type Key int

const (
	// KeyMarkStart marks the selected node as the path start.
	KeyMarkStart Key = iota
	// KeyMarkGoal marks the selected node as the path goal.
	KeyMarkGoal
	// KeyComputePath runs a shortest-path query from start to goal.
	KeyComputePath
)

// Option configures a Session before creation.
type Option func(*settings)

type settings struct {
	radius float64
	logger *slog.Logger
	out    io.Writer
}

// WithRadius sets the node disc radius used for click hit-testing.
func WithRadius(r float64) Option {
	return func(s *settings) { s.radius = r }
}

// WithLogger sets the structured logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithReportWriter sets where path reports are printed, one line each.
// Nil (the default) disables printing; reports are still returned by Press.
func WithReportWriter(w io.Writer) Option {
	return func(s *settings) { s.out = w }
}

// Session is the interaction state machine. Create it with New.
type Session struct {
	graph *core.Graph
	index *spatial.Index
	log   *slog.Logger
	out   io.Writer

	selected core.NodeID
	start    core.NodeID
	goal     core.NodeID

	// highlighted is replaced wholesale by every successful path query.
	highlighted map[core.Pair]struct{}
}

// New creates a Session driving g. Nodes already present in g are indexed so
// they can be clicked.
func New(g *core.Graph, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrInvariant)
	}

	cfg := settings{
		radius: DefaultRadius,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	ix, err := spatial.NewIndex(cfg.radius)
	if err != nil {
		return nil, err
	}
	for _, n := range g.Nodes() {
		if err := ix.Insert(n.ID, n.Position); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvariant, err)
		}
	}

	return &Session{
		graph:       g,
		index:       ix,
		log:         cfg.logger,
		out:         cfg.out,
		selected:    core.NoNode,
		start:       core.NoNode,
		goal:        core.NoNode,
		highlighted: make(map[core.Pair]struct{}),
	}, nil
}

// Graph returns the graph this session mutates.
func (s *Session) Graph() *core.Graph { return s.graph }

// Radius returns the node disc radius.
func (s *Session) Radius() float64 { return s.index.Radius() }

// State reports Idle or NodeSelected.
func (s *Session) State() State {
	if s.selected == core.NoNode {
		return Idle
	}

	return NodeSelected
}

// Selected returns the selected node or core.NoNode.
func (s *Session) Selected() core.NodeID { return s.selected }

// Start returns the start marker or core.NoNode.
func (s *Session) Start() core.NodeID { return s.start }

// Goal returns the goal marker or core.NoNode.
func (s *Session) Goal() core.NodeID { return s.goal }

// Highlighted returns the highlighted edges ordered by (Lo, Hi).
func (s *Session) Highlighted() []core.Pair {
	return sortedPairs(s.highlighted)
}

func (s *Session) invariant(format string, args ...any) error {
	err := fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...)
	s.log.Error("invariant violated", "err", err)

	return err
}
