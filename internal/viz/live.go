// Package viz provides a terminal live view of an integration run.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/skoret/odelab/internal/ode"
)

const (
	historyCapacity = 240
	stepsPerFrame   = 5
	maxTracked      = 3
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps the integration one frame at a time over a two-slot
// window buffer: the engine fills the work slot from the current
// state, which then becomes the new current state.
type Model struct {
	name      string
	scheme    ode.Scheme
	f         ode.VectorField
	dim       int
	dt        float64
	buf       []float64 // two slots: current | work
	initial   []float64
	t         float64
	stepCount int
	histories [][]float64
	running   bool
	err       error
}

func NewModel(name string, scheme ode.Scheme, f ode.VectorField, x0 []float64, dt float64) Model {
	dim := len(x0)
	buf := make([]float64, 2*dim)
	copy(buf, x0)

	tracked := dim
	if tracked > maxTracked {
		tracked = maxTracked
	}

	return Model{
		name:      name,
		scheme:    scheme,
		f:         f,
		dim:       dim,
		dt:        dt,
		buf:       buf,
		initial:   append([]float64(nil), x0...),
		histories: make([][]float64, tracked),
		running:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running && m.err == nil {
			for i := 0; i < stepsPerFrame; i++ {
				m.step()
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	work := m.buf[m.dim:]
	clear(work)

	if err := ode.Integrate(m.buf, m.dim, 2, m.dt, m.scheme, m.f); err != nil {
		m.err = err
		return
	}

	copy(m.buf[:m.dim], work)
	m.t += m.dt
	m.stepCount++

	for c := range m.histories {
		m.histories[c] = append(m.histories[c], m.buf[c])
		if len(m.histories[c]) > historyCapacity {
			m.histories[c] = m.histories[c][1:]
		}
	}
}

func (m *Model) reset() {
	copy(m.buf[:m.dim], m.initial)
	clear(m.buf[m.dim:])
	m.t = 0
	m.stepCount = 0
	m.err = nil
	for c := range m.histories {
		m.histories[c] = m.histories[c][:0]
	}
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render(fmt.Sprintf("%s  [%s]", strings.ToUpper(m.name), m.scheme)) + "\n")

	status := "RUNNING"
	if m.err != nil {
		status = errorStyle.Render("ERROR: " + m.err.Error())
	} else if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n")

	for c := range m.histories {
		if len(m.histories[c]) > 1 {
			chart := asciigraph.Plot(m.histories[c],
				asciigraph.Height(6),
				asciigraph.Width(60),
				asciigraph.Caption(fmt.Sprintf("x%d", c)),
			)
			s.WriteString(graphStyle.Render(chart) + "\n")
		}
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Steps") + valueStyle.Render(fmt.Sprintf("%d", m.stepCount)) + "\n")
	s.WriteString(labelStyle.Render("dt") + valueStyle.Render(fmt.Sprintf("%g", m.dt)) + "\n")
	s.WriteString(helpStyle.Render("SP:Pause  R:Reset  Q:Quit"))

	return s.String()
}
