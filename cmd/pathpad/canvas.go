package main

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/pathpad/config"
	"github.com/katalvlaran/pathpad/core"
	"github.com/katalvlaran/pathpad/session"
)

// cellKind decides how a canvas cell is styled.
type cellKind int

const (
	kindBlank cellKind = iota
	kindEdge
	kindPath
	kindCost
	kindNode
	kindStart
	kindGoal
	kindSelected
)

var kindStyles = map[cellKind]lipgloss.Style{
	kindEdge:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	kindPath:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	kindCost:     lipgloss.NewStyle().Faint(true),
	kindNode:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	kindStart:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	kindGoal:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	kindSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

type cell struct {
	r    rune
	kind cellKind
}

// grid is a width×height raster of the canvas area.
type grid struct {
	w, h  int
	cells []cell
}

func newGrid(w, h int) *grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &grid{w: w, h: h, cells: make([]cell, w*h)}
	for i := range g.cells {
		g.cells[i] = cell{r: ' '}
	}

	return g
}

// set writes r at (x, y); writes outside the grid are dropped.
func (g *grid) set(x, y int, r rune, kind cellKind) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = cell{r: r, kind: kind}
}

func (g *grid) at(x, y int) cell {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return cell{r: ' '}
	}

	return g.cells[y*g.w+x]
}

// worldToCell maps a world position to the terminal cell containing it.
func worldToCell(p orb.Point, v config.View) (int, int) {
	return int(math.Floor(p.X() / v.CellWidth)), int(math.Floor(p.Y() / v.CellHeight))
}

// cellToWorld maps a terminal cell to the world position of its centre.
func cellToWorld(col, row int, v config.View) orb.Point {
	return orb.Point{(float64(col) + 0.5) * v.CellWidth, (float64(row) + 0.5) * v.CellHeight}
}

// rasterize draws edges, then path edges, then cost labels, then nodes, so
// later layers win where they overlap.
func rasterize(f session.Frame, v config.View, w, h int) *grid {
	g := newGrid(w, h)

	cellOf := func(id core.NodeID) (int, int) {
		return worldToCell(f.Nodes[id].Position, v)
	}

	edges := append([]session.EdgeView(nil), f.Edges...)
	sort.SliceStable(edges, func(i, j int) bool {
		return !edges[i].Highlighted && edges[j].Highlighted
	})
	for _, e := range edges {
		ax, ay := cellOf(e.A)
		bx, by := cellOf(e.B)
		kind := kindEdge
		if e.Highlighted {
			kind = kindPath
		}
		glyph := edgeGlyph(bx-ax, by-ay)
		line(ax, ay, bx, by, func(x, y int) { g.set(x, y, glyph, kind) })
	}

	for _, e := range edges {
		ax, ay := cellOf(e.A)
		bx, by := cellOf(e.B)
		text := strconv.FormatInt(e.Cost, 10)
		mx, my := (ax+bx)/2-len(text)/2, (ay+by)/2
		for i, r := range text {
			g.set(mx+i, my, r, kindCost)
		}
	}

	for _, n := range f.Nodes {
		x, y := worldToCell(n.Position, v)
		kind := kindNode
		switch n.ID {
		case f.Start:
			kind = kindStart
		case f.Goal:
			kind = kindGoal
		}
		for i, r := range n.Label {
			g.set(x+i, y, r, kind)
		}
		if n.ID == f.Selected {
			g.set(x-1, y, '[', kindSelected)
			g.set(x+len(n.Label), y, ']', kindSelected)
		}
	}

	return g
}

// paint renders the grid row by row, styling runs of equal kind together.
func paint(g *grid) string {
	var b strings.Builder
	var run strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		cur := kindBlank
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if style, ok := kindStyles[cur]; ok {
				b.WriteString(style.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < g.w; x++ {
			c := g.at(x, y)
			if c.kind != cur {
				flush()
				cur = c.kind
			}
			run.WriteRune(c.r)
		}
		flush()
	}

	return b.String()
}

func edgeGlyph(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// line plots every cell of the Bresenham segment (x0,y0)→(x1,y1), endpoints included.
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx, sx := abs(x1-x0), 1
	if x0 > x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
