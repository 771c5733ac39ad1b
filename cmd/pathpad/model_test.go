package main

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathpad/core"
	"github.com/katalvlaran/pathpad/session"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	sess, err := session.New(core.NewGraph(), session.WithRadius(20))
	require.NoError(t, err)

	m := initialModel(sess, testView, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return send(t, m, tea.WindowSizeMsg{Width: 120, Height: 10})
}

func send(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(model)
	require.True(t, ok)
	return out
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_BuildAndQuery(t *testing.T) {
	m := newTestModel(t)

	// cells (2,1) and (12,1) are world (25,30) and (125,30)
	m = send(t, m, leftClick(2, 1))
	m = send(t, m, leftClick(12, 1))
	require.Equal(t, 2, m.sess.Graph().NodeCount())

	m = send(t, m, leftClick(2, 1))
	m = send(t, m, leftClick(12, 1))
	require.Equal(t, 1, m.sess.Graph().EdgeCount())

	m = send(t, m, key('p'))
	assert.Equal(t, "Missing starting or goal node!", m.status)

	m = send(t, m, leftClick(2, 1))
	m = send(t, m, key('s'))
	m = send(t, m, leftClick(12, 1))
	m = send(t, m, key('g'))
	m = send(t, m, key('p'))
	assert.Equal(t, "Path length: 100, Path: A -> B", m.status)
	assert.Equal(t, []core.Pair{{Lo: 0, Hi: 1}}, m.sess.Highlighted())

	view := m.View()
	assert.Contains(t, view, "2 nodes, 1 edges")
	assert.Contains(t, view, "Path length: 100")
}

func TestModel_IgnoresNonPressAndFooter(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = send(t, m, tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	m = send(t, m, leftClick(3, 9)) // status bar row
	assert.Equal(t, 0, m.sess.Graph().NodeCount())

	m = send(t, m, tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.Equal(t, 0, m.sess.Graph().NodeCount(), "right clicks are ignored by the session")
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)
	for _, msg := range []tea.KeyMsg{key('q'), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_ViewBeforeReady(t *testing.T) {
	sess, err := session.New(core.NewGraph())
	require.NoError(t, err)
	m := initialModel(sess, testView, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Equal(t, "Loading...", m.View())
}
