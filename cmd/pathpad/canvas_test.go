package main

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathpad/config"
	"github.com/katalvlaran/pathpad/core"
	"github.com/katalvlaran/pathpad/session"
)

var testView = config.View{CellWidth: 10, CellHeight: 20}

// plain returns the grid's runes without styling, one line per row.
func plain(g *grid) string {
	rows := make([]string, g.h)
	for y := 0; y < g.h; y++ {
		var b strings.Builder
		for x := 0; x < g.w; x++ {
			b.WriteRune(g.at(x, y).r)
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

func TestWorldCellMapping(t *testing.T) {
	x, y := worldToCell(orb.Point{25, 30}, testView)
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)

	p := cellToWorld(2, 1, testView)
	assert.Equal(t, orb.Point{25, 30}, p)

	x, y = worldToCell(cellToWorld(17, 4, testView), testView)
	assert.Equal(t, 17, x)
	assert.Equal(t, 4, y)
}

func TestRasterizeHorizontalPath(t *testing.T) {
	f := session.Frame{
		Nodes: []session.NodeView{
			{ID: 0, Label: "A", Position: orb.Point{25, 30}},
			{ID: 1, Label: "B", Position: orb.Point{125, 30}},
		},
		Edges:    []session.EdgeView{{A: 0, B: 1, Cost: 100, Highlighted: true}},
		Selected: 1,
		Start:    0,
		Goal:     core.NoNode,
	}

	g := rasterize(f, testView, 20, 3)
	lines := strings.Split(plain(g), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  A───100──[B]      ", lines[1])
	assert.Equal(t, strings.Repeat(" ", 20), lines[0])

	assert.Equal(t, kindStart, g.at(2, 1).kind)
	assert.Equal(t, kindNode, g.at(12, 1).kind)
	assert.Equal(t, kindSelected, g.at(11, 1).kind)
	assert.Equal(t, kindPath, g.at(4, 1).kind)
	assert.Equal(t, kindCost, g.at(7, 1).kind)
}

func TestRasterizeClipsOffscreen(t *testing.T) {
	f := session.Frame{
		Nodes: []session.NodeView{
			{ID: 0, Label: "A", Position: orb.Point{5, 10}},
			{ID: 1, Label: "B", Position: orb.Point{5000, 10}},
		},
		Edges:    []session.EdgeView{{A: 0, B: 1, Cost: 4995}},
		Selected: core.NoNode,
		Start:    core.NoNode,
		Goal:     1,
	}

	g := rasterize(f, testView, 5, 1)
	assert.Equal(t, "A────", plain(g))
	assert.Equal(t, kindEdge, g.at(1, 0).kind)
}

func TestEdgeGlyph(t *testing.T) {
	assert.Equal(t, '─', edgeGlyph(5, 0))
	assert.Equal(t, '│', edgeGlyph(0, -3))
	assert.Equal(t, '╲', edgeGlyph(2, 2))
	assert.Equal(t, '╲', edgeGlyph(-2, -2))
	assert.Equal(t, '╱', edgeGlyph(2, -2))
}

func TestLineEndpoints(t *testing.T) {
	var pts [][2]int
	line(0, 0, 3, 2, func(x, y int) { pts = append(pts, [2]int{x, y}) })
	require.NotEmpty(t, pts)
	assert.Equal(t, [2]int{0, 0}, pts[0])
	assert.Equal(t, [2]int{3, 2}, pts[len(pts)-1])
	assert.Len(t, pts, 4, "one cell per step along the major axis")

	pts = nil
	line(1, 1, 1, 1, func(x, y int) { pts = append(pts, [2]int{x, y}) })
	assert.Equal(t, [][2]int{{1, 1}}, pts)
}

func TestPaintKeepsText(t *testing.T) {
	g := newGrid(3, 2)
	g.set(0, 0, 'A', kindNode)
	g.set(1, 0, '─', kindEdge)
	out := paint(g)
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "─")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}
