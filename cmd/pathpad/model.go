package main

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathpad/config"
	"github.com/katalvlaran/pathpad/session"
)

const helpText = "click: add/select/connect  s: start  g: goal  p: path  q: quit"

// footerHeight is the status bar below the canvas.
const footerHeight = 1

type model struct {
	sess   *session.Session
	view   config.View
	log    *slog.Logger
	status string
	err    error
	width  int
	height int
	ready  bool
}

func initialModel(sess *session.Session, view config.View, log *slog.Logger) model {
	return model{sess: sess, view: view, log: log}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var key session.Key
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "s":
		key = session.KeyMarkStart
	case "g":
		key = session.KeyMarkGoal
	case "p":
		key = session.KeyComputePath
	default:
		return m, nil
	}

	r, err := m.sess.Press(key)
	if err != nil {
		return m.fail(err)
	}
	if r.Text != "" {
		m.status = r.Text
	}

	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	button, ok := mouseButton(msg.Button)
	if !ok {
		return m, nil
	}
	if msg.Y >= m.canvasHeight() {
		// clicks on the status bar are not canvas clicks
		return m, nil
	}

	if err := m.sess.Click(button, cellToWorld(msg.X, msg.Y, m.view)); err != nil {
		return m.fail(err)
	}

	return m, nil
}

func mouseButton(b tea.MouseButton) (session.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return session.ButtonLeft, true
	case tea.MouseButtonMiddle:
		return session.ButtonMiddle, true
	case tea.MouseButtonRight:
		return session.ButtonRight, true
	default:
		return 0, false
	}
}

// fail records an invariant violation and stops the program.
func (m model) fail(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.log.Error("stopping", "err", err)

	return m, tea.Quit
}

func (m model) canvasHeight() int {
	h := m.height - footerHeight
	if h < 0 {
		return 0
	}

	return h
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(paint(rasterize(m.sess.Frame(), m.view, m.width, m.canvasHeight())))
	b.WriteByte('\n')
	b.WriteString(m.statusBarView())

	return b.String()
}

func (m model) statusBarView() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1)

	if m.err != nil {
		return style.Foreground(lipgloss.Color("9")).Render("Error: " + m.err.Error())
	}

	g := m.sess.Graph()
	parts := []string{
		fmt.Sprintf("[%s]", m.sess.State()),
		fmt.Sprintf("%d nodes, %d edges", g.NodeCount(), g.EdgeCount()),
	}
	if m.status == "" {
		parts = append(parts, helpText)
		return style.Faint(true).Render(strings.Join(parts, "  "))
	}
	parts = append(parts, m.status)

	return style.Render(strings.Join(parts, "  "))
}
