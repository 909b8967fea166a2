// ABOUTME: Bubbletea model for the asset pipeline progress view
// ABOUTME: Tracks step states and the most recent log lines
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tictactech/assetgen/internal/version"
)

// maxLines is how many log lines the view keeps
const maxLines = 8

// StepState is the progress of one pipeline step
type StepState int

const (
	StepPending StepState = iota
	StepRunning
	StepDone
	StepFailed
)

// String returns the state name
func (s StepState) String() string {
	switch s {
	case StepPending:
		return "pending"
	case StepRunning:
		return "running"
	case StepDone:
		return "done"
	case StepFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// StepStartedMsg marks a step as running
type StepStartedMsg struct {
	Index int
}

// StepDoneMsg marks a step as finished, failed when Err is set
type StepDoneMsg struct {
	Index int
	Err   error
}

// LogMsg carries one progress line
type LogMsg struct {
	Line string
}

// FinishedMsg ends the run
type FinishedMsg struct {
	Err error
}

// Model represents the TUI state
type Model struct {
	steps  []string
	states []StepState
	errs   []error

	lines []string

	finished bool
	err      error
	quitting bool

	width int
}

// NewModel creates a model with every step pending
func NewModel(steps []string) Model {
	return Model{
		steps:  steps,
		states: make([]StepState, len(steps)),
		errs:   make([]error, len(steps)),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case StepStartedMsg:
		m.setState(msg.Index, StepRunning, nil)
	case StepDoneMsg:
		if msg.Err != nil {
			m.setState(msg.Index, StepFailed, msg.Err)
		} else {
			m.setState(msg.Index, StepDone, nil)
		}
	case LogMsg:
		m.appendLine(msg.Line)
	case FinishedMsg:
		m.finished = true
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// Err returns the error the run finished with
func (m Model) Err() error {
	return m.err
}

// Finished reports whether the run completed before the view closed
func (m Model) Finished() bool {
	return m.finished
}

func (m *Model) setState(i int, s StepState, err error) {
	if i < 0 || i >= len(m.states) {
		return
	}
	m.states[i] = s
	m.errs[i] = err
}

func (m *Model) appendLine(line string) {
	m.lines = append(m.lines, line)
	if len(m.lines) > maxLines {
		m.lines = m.lines[len(m.lines)-maxLines:]
	}
}

// View renders the TUI
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	stepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	logStyle := lipgloss.NewStyle().Faint(true)

	var b strings.Builder

	b.WriteString(titleStyle.Render(version.String()))
	b.WriteString("\n\n")

	for i, name := range m.steps {
		b.WriteString(stateStyle(m.states[i]).Render(stateIcon(m.states[i])))
		b.WriteString(" ")
		b.WriteString(stepStyle.Render(name))
		if m.errs[i] != nil {
			b.WriteString(stateStyle(StepFailed).Render(": " + truncate(m.errs[i].Error(), 60)))
		}
		b.WriteString("\n")
	}

	if len(m.lines) > 0 {
		b.WriteString("\n")
		for _, line := range m.lines {
			b.WriteString(logStyle.Render(truncate(line, m.lineWidth())))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.finished && m.err != nil:
		b.WriteString(stateStyle(StepFailed).Render("Asset generation failed"))
	case m.finished:
		b.WriteString(stateStyle(StepDone).Render("All assets generated"))
	default:
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("Press 'q' or Ctrl+C to quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) lineWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

func stateIcon(s StepState) string {
	switch s {
	case StepRunning:
		return "…"
	case StepDone:
		return "✓"
	case StepFailed:
		return "✗"
	default:
		return "·"
	}
}

func stateStyle(s StepState) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch s {
	case StepRunning:
		return style.Foreground(lipgloss.Color("220"))
	case StepDone:
		return style.Foreground(lipgloss.Color("86"))
	case StepFailed:
		return style.Foreground(lipgloss.Color("196"))
	default:
		return style.Faint(true)
	}
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	if length <= 3 {
		return s[:length]
	}
	return s[:length-3] + "..."
}
