package core_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathpad/core"
)

func TestSnapshotIsIsolatedFromLaterWrites(t *testing.T) {
	g := core.NewGraph()
	a := addNode(t, g, orb.Point{0, 0})
	b := addNode(t, g, orb.Point{0, 2})
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)

	snap := g.Snapshot()

	c := addNode(t, g, orb.Point{5, 5})
	_, err = g.AddEdge(a, c)
	require.NoError(t, err)

	require.Equal(t, 2, snap.NodeCount())
	require.Equal(t, 1, snap.EdgeCount())
	na, err := snap.Neighbors(a)
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{To: b, Cost: 2}}, na)

	_, err = snap.Neighbors(c)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = snap.Position(c)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 2, g.EdgeCount())
}

func TestSnapshotMirrorsGraph(t *testing.T) {
	g := core.NewGraph()
	a := addNode(t, g, orb.Point{0, 0})
	b := addNode(t, g, orb.Point{3, 4})
	_, _ = g.AddEdge(a, b)

	snap := g.Snapshot()
	require.Equal(t, g.Nodes(), snap.Nodes())
	require.Equal(t, g.Edges(), snap.Edges())
	require.Equal(t, g.String(), snap.String())

	p, err := snap.Position(b)
	require.NoError(t, err)
	require.Equal(t, orb.Point{3, 4}, p)
}
